package service

import (
	"context"
	"io"
	"sync"
	"testing"

	v1 "github.com/emrgen/pagebuilder/apis/v1"
	"github.com/emrgen/pagebuilder/internal/cache"
	"github.com/emrgen/pagebuilder/internal/compositor"
	"github.com/emrgen/pagebuilder/internal/page"
	"github.com/emrgen/pagebuilder/internal/queue"
	"github.com/emrgen/pagebuilder/internal/registry"
	"github.com/emrgen/pagebuilder/internal/resolver"
	"github.com/emrgen/pagebuilder/internal/store"
	"github.com/emrgen/pagebuilder/internal/tester"
	"github.com/stretchr/testify/require"
)

var noop = resolver.RendererFunc(func(io.Writer, page.Properties) error { return nil })

type recordingPublisher struct {
	mu     sync.Mutex
	events []*queue.PageEvent
}

func (r *recordingPublisher) Publish(_ context.Context, event *queue.PageEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingPublisher) Close() {}

func (r *recordingPublisher) kinds() []queue.EventKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	kinds := make([]queue.EventKind, 0, len(r.events))
	for _, e := range r.events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

type fixture struct {
	store     store.Store
	pages     *PageService
	sites     *SiteService
	publisher *recordingPublisher
}

func newFixture(t *testing.T, renderCache cache.RenderCache) *fixture {
	t.Helper()
	tester.Setup()

	s := store.NewGormStore(tester.TestDB())
	reg := registry.Default()
	res := resolver.New(reg, resolver.WithFallback(noop))
	if renderCache == nil {
		renderCache = cache.NopRenderCache{}
	}
	publisher := &recordingPublisher{}

	return &fixture{
		store:     s,
		pages:     NewPageService(s, reg, compositor.New(res), renderCache, publisher),
		sites:     NewSiteService(s),
		publisher: publisher,
	}
}

func (f *fixture) create(t *testing.T, title, parentID string) *v1.Page {
	t.Helper()
	res, err := f.pages.CreatePage(context.TODO(), &v1.CreatePageRequest{Title: title, ParentId: parentID})
	require.NoError(t, err)
	return res.Page
}

func (f *fixture) setHome(t *testing.T, id string) {
	t.Helper()
	_, err := f.sites.UpdateSiteTheme(context.TODO(), &v1.UpdateSiteThemeRequest{Theme: &v1.SiteTheme{
		SelectedHomePage: id,
		SiteName:         "City Cabs",
		BaseUrl:          "https://citycabs.example",
	}})
	require.NoError(t, err)
}

func version(v int64) *int64 {
	return &v
}
