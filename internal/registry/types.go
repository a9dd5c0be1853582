package registry

// Category groups component types in the page builder picker.
type Category string

const (
	CategoryLayout       Category = "layout"
	CategoryContent      Category = "content"
	CategoryPageSpecific Category = "page-specific"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryLayout, CategoryContent, CategoryPageSpecific:
		return true
	}
	return false
}

// PropertyKind selects the editing widget for a property.
type PropertyKind string

const (
	KindText      PropertyKind = "text"
	KindMultiline PropertyKind = "multiline"
	KindImage     PropertyKind = "image"
	KindList      PropertyKind = "list"
	KindSelect    PropertyKind = "select"
	KindColor     PropertyKind = "color"
	KindNumber    PropertyKind = "number"
	KindEmail     PropertyKind = "email"
)

// Valid reports whether k is one of the known kinds.
func (k PropertyKind) Valid() bool {
	switch k {
	case KindText, KindMultiline, KindImage, KindList, KindSelect, KindColor, KindNumber, KindEmail:
		return true
	}
	return false
}

// ZeroValue is the default used for a property that declares none.
func (k PropertyKind) ZeroValue() any {
	switch k {
	case KindNumber:
		return float64(0)
	case KindList:
		return []any{}
	default:
		return ""
	}
}

// PropertyDefinition describes one editable property of a component type.
type PropertyDefinition struct {
	Name    string               `yaml:"name" json:"name"`
	Kind    PropertyKind         `yaml:"kind" json:"kind"`
	Label   string               `yaml:"label" json:"label"`
	Default any                  `yaml:"default,omitempty" json:"default,omitempty"`
	Options []string             `yaml:"options,omitempty" json:"options,omitempty"`
	Fields  []PropertyDefinition `yaml:"fields,omitempty" json:"fields,omitempty"` // item fields of a list
}

// ComponentType is a catalog entry.
type ComponentType struct {
	TypeID      string               `yaml:"type" json:"typeId"`
	DisplayName string               `yaml:"name" json:"displayName"`
	Category    Category             `yaml:"category" json:"category"`
	Description string               `yaml:"description,omitempty" json:"description,omitempty"`
	Properties  []PropertyDefinition `yaml:"properties" json:"propertyDefinitions"`
	Defaults    map[string]any       `yaml:"defaults,omitempty" json:"defaultProperties"`
}

// Property returns the definition of a property by name.
func (ct *ComponentType) Property(name string) (PropertyDefinition, bool) {
	for _, def := range ct.Properties {
		if def.Name == name {
			return def, true
		}
	}
	return PropertyDefinition{}, false
}

// DefaultProperties returns a deep copy of the defaults, safe to hand to a new
// component instance.
func (ct *ComponentType) DefaultProperties() map[string]any {
	return CloneProperties(ct.Defaults)
}

// CloneProperties deep copies a property bag.
func CloneProperties(props map[string]any) map[string]any {
	out := make(map[string]any, len(props))
	for k, v := range props {
		out[k] = CloneValue(v)
	}
	return out
}

// CloneValue deep copies maps and slices of a property value.
func CloneValue(v any) any {
	switch val := v.(type) {
	case map[string]any:
		return CloneProperties(val)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = CloneValue(item)
		}
		return out
	case []map[string]any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = CloneProperties(item)
		}
		return out
	default:
		return v
	}
}
