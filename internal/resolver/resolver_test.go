package resolver

import (
	"bytes"
	"fmt"
	"io"
	"testing"

	"github.com/emrgen/pagebuilder/internal/page"
	"github.com/emrgen/pagebuilder/internal/registry"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func textRenderer(name string) Renderer {
	return RendererFunc(func(w io.Writer, props page.Properties) error {
		_, err := fmt.Fprintf(w, "%s:%v", name, props["title"])
		return err
	})
}

func TestResolver(t *testing.T) {
	reg := registry.Default()
	r := New(reg)

	require.NoError(t, r.Register("heroBanner", textRenderer("hero")))
	assert.ErrorIs(t, r.Register("carousel", textRenderer("carousel")), ErrNotInCatalog)
	assert.Equal(t, []string{"heroBanner"}, r.Registered())

	h, ok := r.Resolve("heroBanner")
	require.True(t, ok)
	assert.Equal(t, "heroBanner", h.Type.TypeID)

	var buf bytes.Buffer
	require.NoError(t, h.Renderer.Render(&buf, page.Properties{"title": "Hi"}))
	assert.Equal(t, "hero:Hi", buf.String())

	_, ok = r.Resolve("carousel")
	assert.False(t, ok)

	// in the catalog but nothing renders it
	_, ok = r.Resolve("textBlock")
	assert.False(t, ok)
}

func TestResolver_Fallback(t *testing.T) {
	r := New(registry.Default(), WithFallback(textRenderer("generic")))

	h, ok := r.Resolve("textBlock")
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, h.Renderer.Render(&buf, page.Properties{"title": "x"}))
	assert.Equal(t, "generic:x", buf.String())

	_, ok = r.Resolve("carousel")
	assert.False(t, ok)
}

func TestResolver_WarnsOnEveryMiss(t *testing.T) {
	hook := test.NewGlobal()
	defer hook.Reset()

	r := New(registry.Default())
	require.NoError(t, r.Register("heroBanner", textRenderer("hero")))

	_, ok := r.Resolve("heroBanner")
	require.True(t, ok)
	assert.Empty(t, hook.AllEntries())

	for _, typeID := range []string{"carousel", "textBlock", "carousel"} {
		_, ok := r.Resolve(typeID)
		assert.False(t, ok)
	}

	entries := hook.AllEntries()
	require.Len(t, entries, 3)
	for i, typeID := range []string{"carousel", "textBlock", "carousel"} {
		assert.Equal(t, logrus.WarnLevel, entries[i].Level)
		assert.Equal(t, typeID, entries[i].Data["type"])
	}
}
