package cache

import (
	"context"

	"github.com/emrgen/pagebuilder/internal/compositor"
)

// RenderCache is a cache for page compositions. Entries are keyed by page id
// and version, so a saved page never hits an older entry.
type RenderCache interface {
	// GetComposition gets a composition from the cache, nil on a miss.
	GetComposition(ctx context.Context, pageID string, version int64) (*compositor.Composition, error)
	// SetComposition sets a composition in the cache.
	SetComposition(ctx context.Context, comp *compositor.Composition) error
	// DeletePage drops every cached composition of a page.
	DeletePage(ctx context.Context, pageID string) error
}

var _ RenderCache = NopRenderCache{}

// NopRenderCache caches nothing.
type NopRenderCache struct{}

func (NopRenderCache) GetComposition(context.Context, string, int64) (*compositor.Composition, error) {
	return nil, nil
}

func (NopRenderCache) SetComposition(context.Context, *compositor.Composition) error {
	return nil
}

func (NopRenderCache) DeletePage(context.Context, string) error {
	return nil
}
