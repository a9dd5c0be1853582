package service

import (
	"context"
	"fmt"
	"net/url"

	v1 "github.com/emrgen/pagebuilder/apis/v1"
	"github.com/emrgen/pagebuilder/internal/model"
	"github.com/emrgen/pagebuilder/internal/registry"
	"github.com/emrgen/pagebuilder/internal/store"
	"github.com/sirupsen/logrus"
)

var (
	_ v1.SiteServiceServer = (*SiteService)(nil)
)

// NewSiteService creates a new SiteService.
func NewSiteService(store store.Store) *SiteService {
	return &SiteService{store: store}
}

// SiteService manages the site theme.
type SiteService struct {
	store store.Store
	v1.UnimplementedSiteServiceServer
}

// GetSiteTheme returns the site theme.
func (s *SiteService) GetSiteTheme(ctx context.Context, request *v1.GetSiteThemeRequest) (*v1.SiteThemeResponse, error) {
	theme, err := s.store.GetSiteTheme(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	return &v1.SiteThemeResponse{Theme: themeToProto(theme)}, nil
}

// UpdateSiteTheme replaces the site theme. The selected home page must be a
// live page.
func (s *SiteService) UpdateSiteTheme(ctx context.Context, request *v1.UpdateSiteThemeRequest) (*v1.SiteThemeResponse, error) {
	in := request.Theme
	if in == nil {
		return nil, toStatus(fmt.Errorf("%w: missing theme", ErrInvalidTheme))
	}
	if in.PrimaryColor != "" && !registry.ValidColor(in.PrimaryColor) {
		return nil, toStatus(fmt.Errorf("%w: primary color %q", ErrInvalidTheme, in.PrimaryColor))
	}
	if in.BaseUrl != "" {
		if u, err := url.Parse(in.BaseUrl); err != nil || u.Scheme == "" || u.Host == "" {
			return nil, toStatus(fmt.Errorf("%w: base url %q", ErrInvalidTheme, in.BaseUrl))
		}
	}

	theme := &model.SiteTheme{
		ID:           model.SiteThemeID,
		SiteName:     in.SiteName,
		Locale:       in.Locale,
		BaseURL:      in.BaseUrl,
		PrimaryColor: in.PrimaryColor,
		Logo:         in.Logo,
	}
	if in.SelectedHomePage != "" {
		home := in.SelectedHomePage
		theme.SelectedHomePage = &home
	}

	err := s.store.Transaction(ctx, func(tx store.Store) error {
		if theme.SelectedHomePage != nil {
			if _, err := tx.FindPageByID(ctx, *theme.SelectedHomePage); err != nil {
				return err
			}
		}

		return tx.SaveSiteTheme(ctx, theme)
	})
	if err != nil {
		return nil, toStatus(err)
	}

	logrus.Infof("updated site theme, home page %q", theme.HomePageID())

	return &v1.SiteThemeResponse{Theme: themeToProto(theme)}, nil
}
