package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_CatalogLoads(t *testing.T) {
	reg := Default()
	require.NotNil(t, reg)

	types := reg.ListAll()
	assert.NotEmpty(t, types)

	for _, ct := range types {
		for _, def := range ct.Properties {
			_, ok := ct.Defaults[def.Name]
			assert.Truef(t, ok, "%s.%s has no default", ct.TypeID, def.Name)
		}
	}

	hero, ok := reg.Lookup("heroBanner")
	require.True(t, ok)
	assert.Equal(t, "Welcome", hero.Defaults["title"])
	assert.Equal(t, "", hero.Defaults["image"])
	assert.Equal(t, CategoryContent, hero.Category)

	mapEmbed, ok := reg.Lookup("mapEmbed")
	require.True(t, ok)
	assert.Equal(t, float64(400), mapEmbed.Defaults["height"])
}

func TestRegistry_Lookup(t *testing.T) {
	reg, err := New(&ComponentType{
		TypeID:   "heroBanner",
		Category: CategoryContent,
		Properties: []PropertyDefinition{
			{Name: "title", Kind: KindText},
			{Name: "image", Kind: KindImage},
		},
		Defaults: map[string]any{"title": "Welcome"},
	})
	require.NoError(t, err)

	ct, ok := reg.Lookup("heroBanner")
	require.True(t, ok)
	assert.Equal(t, map[string]any{"title": "Welcome", "image": ""}, ct.Defaults)
	assert.Equal(t, "heroBanner", ct.DisplayName)

	_, ok = reg.Lookup("missing")
	assert.False(t, ok)
}

func TestRegistry_ListByCategory(t *testing.T) {
	reg := Default()

	layout := reg.ListByCategory(CategoryLayout)
	require.NotEmpty(t, layout)
	for _, ct := range layout {
		assert.Equal(t, CategoryLayout, ct.Category)
	}

	assert.Len(t, reg.ListByCategory(""), len(reg.ListAll()))
	assert.Empty(t, reg.ListByCategory("unknown"))
}

func TestNew_Rejects(t *testing.T) {
	tests := []struct {
		name  string
		types []*ComponentType
	}{
		{
			name: "duplicate type",
			types: []*ComponentType{
				{TypeID: "a", Category: CategoryContent},
				{TypeID: "a", Category: CategoryLayout},
			},
		},
		{
			name:  "unknown category",
			types: []*ComponentType{{TypeID: "a", Category: "sidebar"}},
		},
		{
			name: "unknown kind",
			types: []*ComponentType{{TypeID: "a", Category: CategoryContent, Properties: []PropertyDefinition{
				{Name: "x", Kind: "slider"},
			}}},
		},
		{
			name: "default for undeclared property",
			types: []*ComponentType{{TypeID: "a", Category: CategoryContent, Defaults: map[string]any{"x": "y"}}},
		},
		{
			name: "select without options",
			types: []*ComponentType{{TypeID: "a", Category: CategoryContent, Properties: []PropertyDefinition{
				{Name: "x", Kind: KindSelect},
			}}},
		},
		{
			name: "default does not fit kind",
			types: []*ComponentType{{TypeID: "a", Category: CategoryContent, Properties: []PropertyDefinition{
				{Name: "x", Kind: KindColor, Default: "red"},
			}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.types...)
			assert.Error(t, err)
		})
	}
}

func TestComponentType_DefaultPropertiesIsACopy(t *testing.T) {
	ct, ok := Default().Lookup("navbar")
	require.True(t, ok)

	props := ct.DefaultProperties()
	links := props["links"].([]any)
	links[0].(map[string]any)["label"] = "changed"

	again := ct.DefaultProperties()
	assert.Equal(t, "Home", again["links"].([]any)[0].(map[string]any)["label"])
}

func TestRegistry_Fingerprint(t *testing.T) {
	again, err := Load(catalogData)
	require.NoError(t, err)
	assert.NotEmpty(t, Default().Fingerprint())
	assert.Equal(t, Default().Fingerprint(), again.Fingerprint())

	without := make([]*ComponentType, 0)
	for _, ct := range Default().ListAll() {
		if ct.TypeID != "fleetShowcase" {
			without = append(without, ct)
		}
	}
	smaller, err := New(without...)
	require.NoError(t, err)
	assert.NotEqual(t, Default().Fingerprint(), smaller.Fingerprint())

	hero := func(title string) *Registry {
		r, err := New(&ComponentType{
			TypeID:     "heroBanner",
			Category:   CategoryContent,
			Properties: []PropertyDefinition{{Name: "title", Kind: KindText, Default: title}},
		})
		require.NoError(t, err)
		return r
	}
	assert.Equal(t, hero("Welcome").Fingerprint(), hero("Welcome").Fingerprint())
	assert.NotEqual(t, hero("Welcome").Fingerprint(), hero("Hello").Fingerprint())
}
