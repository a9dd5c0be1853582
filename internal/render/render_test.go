package render

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/emrgen/pagebuilder/internal/compositor"
	"github.com/emrgen/pagebuilder/internal/page"
	"github.com/emrgen/pagebuilder/internal/registry"
	"github.com/emrgen/pagebuilder/internal/resolver"
	"github.com/emrgen/pagebuilder/internal/seo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*Templates, *resolver.Resolver) {
	t.Helper()

	tmpl, err := LoadTemplates()
	require.NoError(t, err)

	res := resolver.New(registry.Default())
	require.NoError(t, RegisterDefaults(res, registry.Default(), tmpl))

	return tmpl, res
}

func TestRegisterDefaults(t *testing.T) {
	_, res := setup(t)
	assert.ElementsMatch(t, registry.Default().TypeIDs(), res.Registered())
}

func TestPage(t *testing.T) {
	tmpl, res := setup(t)
	reg := registry.Default()

	doc := page.CreateDraft("Fares")
	doc.Slug = "fares"
	hero, err := doc.AddComponent(reg, "heroBanner")
	require.NoError(t, err)
	require.NoError(t, doc.SetProperties(reg, hero.InstanceID, page.Properties{"title": "Fixed airport fares"}, false))

	fees, err := doc.AddComponent(reg, "feeTable")
	require.NoError(t, err)
	require.NoError(t, doc.SetProperties(reg, fees.InstanceID, page.Properties{
		"currency": "GBP",
		"rows":     []any{map[string]any{"route": "Airport - Centre", "price": 35, "note": "flat"}},
	}, false))

	comp := compositor.New(res).ComposeForRender(doc)
	meta := seo.Resolve(doc, seo.Site{Name: "City Cabs", BaseURL: "https://citycabs.example"})

	var buf bytes.Buffer
	require.NoError(t, tmpl.Page(&buf, comp, res, meta, Theme{PrimaryColor: "#ffc107"}))

	out := buf.String()
	assert.Contains(t, out, "<title>Fares</title>")
	assert.Contains(t, out, `<link rel="canonical" href="https://citycabs.example/p/fares">`)
	assert.Contains(t, out, "<h1>Fixed airport fares</h1>")
	assert.Contains(t, out, "£35.00")
	assert.Contains(t, out, `<html lang="en">`)
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("<h1>")), bytes.Index(buf.Bytes(), []byte("<table>")))
	assert.NotContains(t, out, "Nothing to display")
}

func TestPage_Empty(t *testing.T) {
	tmpl, res := setup(t)

	doc := page.CreateDraft("Blank")
	comp := compositor.New(res).ComposeForRender(doc)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Page(&buf, comp, res, seo.Resolve(doc, seo.Site{}), Theme{Lang: "de"}))
	assert.Contains(t, buf.String(), "Nothing to display yet.")
	assert.Contains(t, buf.String(), `<html lang="de">`)
}

func TestPage_FailingComponentSkipped(t *testing.T) {
	tmpl, _ := setup(t)
	reg := registry.Default()

	res := resolver.New(reg)
	require.NoError(t, res.Register("textBlock", tmpl.Renderer("textBlock")))
	require.NoError(t, res.Register("imageBlock", resolver.RendererFunc(func(io.Writer, page.Properties) error {
		return errors.New("broken")
	})))

	doc := page.CreateDraft("Mixed")
	text, err := doc.AddComponent(reg, "textBlock")
	require.NoError(t, err)
	require.NoError(t, doc.SetProperties(reg, text.InstanceID, page.Properties{"heading": "About us"}, false))
	_, err = doc.AddComponent(reg, "imageBlock")
	require.NoError(t, err)

	comp := compositor.New(res).ComposeForRender(doc)
	require.Len(t, comp.Instructions, 2)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Page(&buf, comp, res, seo.Resolve(doc, seo.Site{}), Theme{}))
	assert.Contains(t, buf.String(), "<h2>About us</h2>")
	assert.NotContains(t, buf.String(), "<figure")
}

func TestRenderer_Generic(t *testing.T) {
	tmpl, _ := setup(t)

	var buf bytes.Buffer
	require.NoError(t, tmpl.Renderer("promoStrip").Render(&buf, page.Properties{"headline": "<b>50% off</b>"}))
	assert.Contains(t, buf.String(), `class="component component-promoStrip"`)
	assert.Contains(t, buf.String(), "&lt;b&gt;50% off&lt;/b&gt;")
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "€12.50", money(12.5, "EUR"))
	assert.Equal(t, "$3.00", money("3", "USD"))
	assert.Equal(t, "7.00 CHF", money(7, "CHF"))
	assert.Equal(t, "on request", money("on request", "EUR"))
}
