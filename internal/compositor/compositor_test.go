package compositor

import (
	"io"
	"testing"

	"github.com/emrgen/pagebuilder/internal/page"
	"github.com/emrgen/pagebuilder/internal/registry"
	"github.com/emrgen/pagebuilder/internal/resolver"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noop = resolver.RendererFunc(func(io.Writer, page.Properties) error { return nil })

func setup(t *testing.T) (*registry.Registry, *Compositor) {
	t.Helper()

	reg, err := registry.New(
		&registry.ComponentType{
			TypeID:   "heroBanner",
			Category: registry.CategoryContent,
			Properties: []registry.PropertyDefinition{
				{Name: "title", Kind: registry.KindText},
				{Name: "image", Kind: registry.KindImage},
			},
			Defaults: map[string]any{"title": "Welcome", "image": ""},
		},
		&registry.ComponentType{
			TypeID:   "faqList",
			Category: registry.CategoryContent,
			Properties: []registry.PropertyDefinition{
				{Name: "heading", Kind: registry.KindText, Default: "FAQ"},
				{Name: "items", Kind: registry.KindList, Fields: []registry.PropertyDefinition{
					{Name: "question", Kind: registry.KindText},
				}},
			},
		},
	)
	require.NoError(t, err)

	return reg, New(resolver.New(reg, resolver.WithFallback(noop)))
}

func TestCompositor_DefaultMerge(t *testing.T) {
	reg, c := setup(t)

	doc := &page.Document{ID: "p", Components: []page.ComponentInstance{
		{InstanceID: "1", TypeID: "heroBanner", Properties: page.Properties{}},
		{InstanceID: "2", TypeID: "faqList"},
	}}

	comp := c.ComposeForRender(doc)
	require.Len(t, comp.Instructions, 2)

	hero, _ := reg.Lookup("heroBanner")
	faq, _ := reg.Lookup("faqList")
	assert.Equal(t, page.Properties(hero.Defaults), comp.Instructions[0].Properties)
	assert.Equal(t, page.Properties(faq.Defaults), comp.Instructions[1].Properties)
	assert.Empty(t, comp.Diagnostics)
}

func TestCompositor_Override(t *testing.T) {
	_, c := setup(t)

	doc := &page.Document{Components: []page.ComponentInstance{
		{InstanceID: "1", TypeID: "heroBanner", Properties: page.Properties{"title": "Book a ride", "extra": 1}},
	}}

	comp := c.ComposeForRender(doc)
	require.Len(t, comp.Instructions, 1)
	assert.Equal(t, page.Properties{"title": "Book a ride", "image": "", "extra": 1}, comp.Instructions[0].Properties)
}

func TestCompositor_OrderAndDegradation(t *testing.T) {
	_, c := setup(t)

	doc := &page.Document{ID: "p", Components: []page.ComponentInstance{
		{InstanceID: "a", TypeID: "faqList"},
		{InstanceID: "b", TypeID: "retiredSlider"},
		{InstanceID: "c", TypeID: "heroBanner"},
		{InstanceID: "d", TypeID: ""},
		{InstanceID: "e", TypeID: "faqList"},
	}}

	comp := c.ComposeForRender(doc)

	ids := make([]string, 0)
	for _, in := range comp.Instructions {
		ids = append(ids, in.InstanceID)
	}
	assert.Equal(t, []string{"a", "c", "e"}, ids)

	require.Len(t, comp.Diagnostics, 2)
	assert.Equal(t, "b", comp.Diagnostics[0].InstanceID)
	assert.Equal(t, "retiredSlider", comp.Diagnostics[0].TypeID)
	assert.Equal(t, "d", comp.Diagnostics[1].InstanceID)
}

func TestCompositor_LogsEverySkippedInstance(t *testing.T) {
	_, c := setup(t)
	hook := test.NewGlobal()
	defer hook.Reset()

	doc := &page.Document{ID: "p", Components: []page.ComponentInstance{
		{InstanceID: "a", TypeID: "heroBanner"},
		{InstanceID: "b", TypeID: "retiredSlider"},
		{InstanceID: "c", TypeID: "faqList"},
		{InstanceID: "d", TypeID: "retiredSlider"},
		{InstanceID: "e", TypeID: "oldMap"},
	}}

	comp := c.ComposeForRender(doc)
	assert.Len(t, comp.Instructions, 2)

	skipped := make([]*logrus.Entry, 0)
	for _, e := range hook.AllEntries() {
		if _, ok := e.Data["instance"]; ok {
			skipped = append(skipped, e)
		}
	}

	want := []struct{ instance, typeID string }{{"b", "retiredSlider"}, {"d", "retiredSlider"}, {"e", "oldMap"}}
	require.Len(t, skipped, len(want))
	for i, w := range want {
		assert.Equal(t, logrus.WarnLevel, skipped[i].Level)
		assert.Equal(t, "p", skipped[i].Data["page"])
		assert.Equal(t, w.instance, skipped[i].Data["instance"])
		assert.Equal(t, w.typeID, skipped[i].Data["type"])
	}
}

func TestCompositor_Empty(t *testing.T) {
	_, c := setup(t)

	comp := c.ComposeForRender(&page.Document{})
	assert.NotNil(t, comp.Instructions)
	assert.Empty(t, comp.Instructions)

	comp = c.ComposeForRender(&page.Document{Components: []page.ComponentInstance{
		{InstanceID: "x", TypeID: "gone"},
	}})
	assert.Empty(t, comp.Instructions)
	assert.Len(t, comp.Diagnostics, 1)
}

func TestCompositor_MergedPropertiesAreCopies(t *testing.T) {
	reg, c := setup(t)

	items := []any{map[string]any{"question": "How much?"}}
	doc := &page.Document{Components: []page.ComponentInstance{
		{InstanceID: "1", TypeID: "faqList", Properties: page.Properties{"items": items}},
	}}

	comp := c.ComposeForRender(doc)
	comp.Instructions[0].Properties["heading"] = "changed"
	comp.Instructions[0].Properties["items"].([]any)[0].(map[string]any)["question"] = "changed"

	faq, _ := reg.Lookup("faqList")
	assert.Equal(t, "FAQ", faq.Defaults["heading"])
	assert.Equal(t, "How much?", items[0].(map[string]any)["question"])
}

func TestCompositor_EndToEnd(t *testing.T) {
	reg, c := setup(t)

	doc := page.CreateDraft("Home")
	hero, err := doc.AddComponent(reg, "heroBanner")
	require.NoError(t, err)
	assert.Equal(t, page.Properties{"title": "Welcome", "image": ""}, hero.Properties)

	require.NoError(t, doc.SetProperties(reg, hero.InstanceID, page.Properties{"title": "Book a ride"}, false))

	comp := c.ComposeForRender(doc)
	require.Len(t, comp.Instructions, 1)
	assert.Equal(t, RenderInstruction{
		InstanceID: hero.InstanceID,
		TypeID:     "heroBanner",
		Properties: page.Properties{"title": "Book a ride", "image": ""},
	}, comp.Instructions[0])
}
