package service

import (
	"context"
	"fmt"

	v1 "github.com/emrgen/pagebuilder/apis/v1"
	"github.com/emrgen/pagebuilder/internal/registry"
)

var (
	_ v1.ComponentServiceServer = (*ComponentService)(nil)
)

// NewComponentService creates a new ComponentService.
func NewComponentService(registry *registry.Registry) *ComponentService {
	return &ComponentService{registry: registry}
}

// ComponentService exposes the component catalog to editors.
type ComponentService struct {
	registry *registry.Registry
	v1.UnimplementedComponentServiceServer
}

// ListComponentTypes lists the catalog, optionally one category only.
func (c *ComponentService) ListComponentTypes(ctx context.Context, request *v1.ListComponentTypesRequest) (*v1.ListComponentTypesResponse, error) {
	types := c.registry.ListAll()
	if request.Category != "" {
		types = c.registry.ListByCategory(registry.Category(request.Category))
	}

	out := make([]*v1.ComponentType, 0, len(types))
	for _, ct := range types {
		out = append(out, componentTypeToProto(ct))
	}

	return &v1.ListComponentTypesResponse{ComponentTypes: out}, nil
}

// GetComponentType returns one component type.
func (c *ComponentService) GetComponentType(ctx context.Context, request *v1.GetComponentTypeRequest) (*v1.GetComponentTypeResponse, error) {
	ct, ok := c.registry.Lookup(request.TypeId)
	if !ok {
		return nil, toStatus(fmt.Errorf("%w: %s", ErrComponentTypeNotFound, request.TypeId))
	}

	return &v1.GetComponentTypeResponse{ComponentType: componentTypeToProto(ct)}, nil
}
