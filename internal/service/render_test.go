package service

import (
	"context"
	"testing"
	"time"

	v1 "github.com/emrgen/pagebuilder/apis/v1"
	"github.com/emrgen/pagebuilder/internal/cache"
	"github.com/emrgen/pagebuilder/internal/compositor"
	"github.com/emrgen/pagebuilder/internal/compress"
	"github.com/emrgen/pagebuilder/internal/registry"
	"github.com/emrgen/pagebuilder/internal/resolver"
	"github.com/emrgen/pagebuilder/internal/tester"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageService_RenderCache(t *testing.T) {
	ctx := context.TODO()
	client, closer := tester.Redis()
	defer closer()

	renderCache := cache.NewRedisRenderCache(client, compress.NewGZip(), time.Minute, registry.Default().Fingerprint())
	f := newFixture(t, renderCache)

	p := f.create(t, "Fleet", "")
	added, err := f.pages.AddComponent(ctx, &v1.AddComponentRequest{PageId: p.Id, TypeId: "fleetShowcase"})
	require.NoError(t, err)

	first, err := f.pages.Render(ctx, "fleet")
	require.NoError(t, err)
	require.Len(t, first.Composition.Instructions, 1)

	cached, err := renderCache.GetComposition(ctx, p.Id, added.Page.Version)
	require.NoError(t, err)
	require.NotNil(t, cached)
	assert.Equal(t, added.Instance.InstanceId, cached.Instructions[0].InstanceID)

	_, err = f.pages.RemoveComponent(ctx, &v1.RemoveComponentRequest{PageId: p.Id, InstanceId: added.Instance.InstanceId})
	require.NoError(t, err)

	cached, err = renderCache.GetComposition(ctx, p.Id, added.Page.Version)
	require.NoError(t, err)
	assert.Nil(t, cached)

	second, err := f.pages.Render(ctx, "fleet")
	require.NoError(t, err)
	assert.Empty(t, second.Composition.Instructions)
	assert.Equal(t, added.Page.Version+1, second.Composition.Version)
}

func TestPageService_RenderCacheAcrossCatalogs(t *testing.T) {
	ctx := context.TODO()
	client, closer := tester.Redis()
	defer closer()

	f := newFixture(t, cache.NewRedisRenderCache(client, compress.NewGZip(), time.Minute, registry.Default().Fingerprint()))

	p := f.create(t, "Fleet", "")
	_, err := f.pages.AddComponent(ctx, &v1.AddComponentRequest{PageId: p.Id, TypeId: "fleetShowcase"})
	require.NoError(t, err)

	before, err := f.pages.Render(ctx, "fleet")
	require.NoError(t, err)
	require.Len(t, before.Composition.Instructions, 1)

	// the next build no longer ships fleetShowcase
	types := make([]*registry.ComponentType, 0)
	for _, ct := range registry.Default().ListAll() {
		if ct.TypeID != "fleetShowcase" {
			types = append(types, ct)
		}
	}
	reg, err := registry.New(types...)
	require.NoError(t, err)

	res := resolver.New(reg, resolver.WithFallback(noop))
	next := NewPageService(f.store, reg, compositor.New(res),
		cache.NewRedisRenderCache(client, compress.NewGZip(), time.Minute, reg.Fingerprint()), f.publisher)

	after, err := next.RenderPage(ctx, &v1.RenderPageRequest{Slug: "fleet"})
	require.NoError(t, err)
	assert.Empty(t, after.Instructions)
	require.Len(t, after.Diagnostics, 1)
	assert.Equal(t, "fleetShowcase", after.Diagnostics[0].TypeId)

	// the old build still reads its own entry
	again, err := f.pages.Render(ctx, "fleet")
	require.NoError(t, err)
	assert.Len(t, again.Composition.Instructions, 1)
}
