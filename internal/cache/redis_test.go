package cache

import (
	"context"
	"testing"
	"time"

	"github.com/emrgen/pagebuilder/internal/compositor"
	"github.com/emrgen/pagebuilder/internal/compress"
	"github.com/emrgen/pagebuilder/internal/page"
	"github.com/emrgen/pagebuilder/internal/tester"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func composition(version int64) *compositor.Composition {
	return &compositor.Composition{
		PageID:  "page-1",
		Version: version,
		Instructions: []compositor.RenderInstruction{
			{InstanceID: "i1", TypeID: "heroBanner", Properties: page.Properties{"title": "Book a ride", "image": ""}},
		},
	}
}

func TestRedisRenderCache(t *testing.T) {
	ctx := context.TODO()

	for _, name := range []string{"", "gzip", "brotli", "lz4"} {
		t.Run(name, func(t *testing.T) {
			client, done := tester.Redis()
			defer done()

			encoder, err := compress.New(name)
			require.NoError(t, err)
			c := NewRedisRenderCache(client, encoder, time.Minute, "c1")

			got, err := c.GetComposition(ctx, "page-1", 1)
			require.NoError(t, err)
			assert.Nil(t, got)

			require.NoError(t, c.SetComposition(ctx, composition(1)))

			got, err = c.GetComposition(ctx, "page-1", 1)
			require.NoError(t, err)
			assert.Equal(t, composition(1), got)

			// another version is a miss
			got, err = c.GetComposition(ctx, "page-1", 2)
			require.NoError(t, err)
			assert.Nil(t, got)
		})
	}
}

func TestRedisRenderCache_NewVersionReplacesOld(t *testing.T) {
	ctx := context.TODO()
	client, done := tester.Redis()
	defer done()

	c := NewRedisRenderCache(client, compress.NewGZip(), time.Minute, "c1")
	require.NoError(t, c.SetComposition(ctx, composition(1)))
	require.NoError(t, c.SetComposition(ctx, composition(2)))

	old, err := c.GetComposition(ctx, "page-1", 1)
	require.NoError(t, err)
	assert.Nil(t, old)

	ttl := client.TTL(ctx, renderKey("c1", "page-1", 2)).Val()
	assert.Greater(t, ttl, time.Duration(0))

	require.NoError(t, c.DeletePage(ctx, "page-1"))
	got, err := c.GetComposition(ctx, "page-1", 2)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, c.DeletePage(ctx, "page-1"))
}

func TestRedisRenderCache_CatalogsAreSeparate(t *testing.T) {
	ctx := context.TODO()
	client, done := tester.Redis()
	defer done()

	oldBuild := NewRedisRenderCache(client, compress.NewGZip(), time.Minute, "c1")
	newBuild := NewRedisRenderCache(client, compress.NewGZip(), time.Minute, "c2")
	require.NoError(t, oldBuild.SetComposition(ctx, composition(1)))

	got, err := newBuild.GetComposition(ctx, "page-1", 1)
	require.NoError(t, err)
	assert.Nil(t, got)

	require.NoError(t, newBuild.DeletePage(ctx, "page-1"))
	got, err = oldBuild.GetComposition(ctx, "page-1", 1)
	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestNopRenderCache(t *testing.T) {
	var c RenderCache = NopRenderCache{}
	require.NoError(t, c.SetComposition(context.TODO(), composition(1)))

	got, err := c.GetComposition(context.TODO(), "page-1", 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}
