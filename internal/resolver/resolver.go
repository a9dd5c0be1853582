package resolver

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/emrgen/pagebuilder/internal/page"
	"github.com/emrgen/pagebuilder/internal/registry"
	"github.com/sirupsen/logrus"
)

// ErrNotInCatalog is returned when registering a renderer for a type the registry does not know.
var ErrNotInCatalog = errors.New("component type is not in the catalog")

// Renderer writes the markup of one component from its merged properties.
type Renderer interface {
	Render(w io.Writer, props page.Properties) error
}

// RendererFunc adapts a function to a Renderer.
type RendererFunc func(w io.Writer, props page.Properties) error

func (f RendererFunc) Render(w io.Writer, props page.Properties) error {
	return f(w, props)
}

// Handler is what a type id resolves to.
type Handler struct {
	Type     *registry.ComponentType
	Renderer Renderer
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithFallback renders catalog types that have no registered renderer with r.
func WithFallback(r Renderer) Option {
	return func(res *Resolver) {
		res.fallback = r
	}
}

// Resolver maps component type ids to handlers. Registration happens at
// process start; afterwards it is only read.
type Resolver struct {
	catalog   registry.Catalog
	renderers map[string]Renderer
	fallback  Renderer
}

// New creates a resolver over the catalog.
func New(catalog registry.Catalog, opts ...Option) *Resolver {
	r := &Resolver{
		catalog:   catalog,
		renderers: make(map[string]Renderer),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Register binds a renderer to a catalog type.
func (r *Resolver) Register(typeID string, renderer Renderer) error {
	if _, ok := r.catalog.Lookup(typeID); !ok {
		return fmt.Errorf("%w: %s", ErrNotInCatalog, typeID)
	}
	r.renderers[typeID] = renderer

	return nil
}

// Resolve returns the handler of typeID. The second result is false when the
// type is unresolved, either because it left the catalog or because nothing
// renders it; the caller decides how to degrade.
func (r *Resolver) Resolve(typeID string) (Handler, bool) {
	ct, ok := r.catalog.Lookup(typeID)
	if !ok {
		logrus.WithField("type", typeID).Warn("component type is not in the catalog")
		return Handler{}, false
	}

	renderer, ok := r.renderers[typeID]
	if !ok {
		renderer = r.fallback
	}
	if renderer == nil {
		logrus.WithField("type", typeID).Warn("component type has no renderer")
		return Handler{}, false
	}

	return Handler{Type: ct, Renderer: renderer}, true
}

// Registered returns the sorted type ids with an explicit renderer.
func (r *Resolver) Registered() []string {
	ids := make([]string, 0, len(r.renderers))
	for id := range r.renderers {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}
