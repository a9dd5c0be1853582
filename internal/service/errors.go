package service

import (
	"errors"

	"github.com/emrgen/pagebuilder/internal/page"
	"github.com/emrgen/pagebuilder/internal/registry"
	"github.com/emrgen/pagebuilder/internal/store"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrComponentTypeNotFound is returned when a component type is not in the catalog.
	ErrComponentTypeNotFound = errors.New("component type not found")
	// ErrNoHomePage is returned when the home page is rendered before one is selected.
	ErrNoHomePage = errors.New("no home page is selected")
	// ErrInvalidTheme is returned when a site theme update holds invalid values.
	ErrInvalidTheme = errors.New("invalid site theme")
)

// toStatus maps domain errors to grpc status errors.
func toStatus(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := status.FromError(err); ok {
		return err
	}

	var code codes.Code
	var pe *store.PersistenceError
	switch {
	case errors.Is(err, page.ErrPageNotFound),
		errors.Is(err, page.ErrComponentNotFound),
		errors.Is(err, ErrComponentTypeNotFound),
		errors.Is(err, ErrNoHomePage):
		code = codes.NotFound
	case errors.Is(err, page.ErrUnknownComponentType),
		errors.Is(err, page.ErrInvalidReorder),
		errors.Is(err, page.ErrInvalidDocument),
		errors.Is(err, page.ErrInvalidSlug),
		errors.Is(err, page.ErrInvalidParent),
		errors.Is(err, registry.ErrInvalidProperty),
		errors.Is(err, ErrInvalidTheme):
		code = codes.InvalidArgument
	case errors.Is(err, page.ErrSlugConflict):
		code = codes.AlreadyExists
	case errors.Is(err, page.ErrHomePageDelete),
		errors.Is(err, page.ErrPageHasChildren):
		code = codes.FailedPrecondition
	case errors.Is(err, page.ErrStaleWrite):
		code = codes.Aborted
	case errors.As(err, &pe):
		logrus.Errorf("persistence failure: %v", err)
		code = codes.Internal
	default:
		logrus.Errorf("unexpected error: %v", err)
		code = codes.Internal
	}

	return status.Error(code, err.Error())
}
