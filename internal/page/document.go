package page

import (
	"fmt"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/emrgen/pagebuilder/internal/registry"
	"github.com/google/uuid"
)

// Properties is the property bag of a component instance. It is a sparse
// overlay on the defaults of the instance's component type.
type Properties map[string]any

// ComponentInstance is one placed component of a page.
type ComponentInstance struct {
	InstanceID string     `json:"instanceId"`
	TypeID     string     `json:"typeId"`
	Properties Properties `json:"properties"`
}

// Document is a page as authored in the page builder.
type Document struct {
	ID          string
	Title       string
	Slug        string
	Description string
	ParentID    string
	Components  []ComponentInstance
	Seo         SeoData
	// IsHomePage is derived from the site theme and never stored on the page.
	IsHomePage bool
	Deleted    bool
	Version    int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CreateDraft returns an unsaved page with a derived slug, no components and
// SEO data defaulted from the title.
func CreateDraft(title string) *Document {
	return &Document{
		Title:      title,
		Slug:       DeriveSlug(title),
		Components: make([]ComponentInstance, 0),
		Seo:        DefaultSeo(title, ""),
	}
}

// AddComponent appends a new instance of typeID with properties seeded from
// the type defaults. Nothing changes when the type is unknown.
func (d *Document) AddComponent(catalog registry.Catalog, typeID string) (ComponentInstance, error) {
	ct, ok := catalog.Lookup(typeID)
	if !ok {
		return ComponentInstance{}, fmt.Errorf("%w: %s", ErrUnknownComponentType, typeID)
	}

	instance := ComponentInstance{
		InstanceID: uuid.New().String(),
		TypeID:     typeID,
		Properties: ct.DefaultProperties(),
	}
	d.Components = append(d.Components, instance)

	return instance, nil
}

// RemoveComponent removes an instance and reports whether it was present.
func (d *Document) RemoveComponent(instanceID string) bool {
	for i, c := range d.Components {
		if c.InstanceID == instanceID {
			d.Components = append(d.Components[:i:i], d.Components[i+1:]...)
			return true
		}
	}

	return false
}

// Component returns the instance with the given id.
func (d *Document) Component(instanceID string) (*ComponentInstance, bool) {
	for i := range d.Components {
		if d.Components[i].InstanceID == instanceID {
			return &d.Components[i], true
		}
	}

	return nil, false
}

// Reorder puts the components in the order of ids. The ids must be exactly the
// page's current instance ids, each once; otherwise the order is unchanged.
func (d *Document) Reorder(ids []string) error {
	current := mapset.NewSetWithSize[string](len(d.Components))
	byID := make(map[string]ComponentInstance, len(d.Components))
	for _, c := range d.Components {
		current.Add(c.InstanceID)
		byID[c.InstanceID] = c
	}

	requested := mapset.NewSet(ids...)
	if len(ids) != len(d.Components) || requested.Cardinality() != len(ids) || !requested.Equal(current) {
		return ErrInvalidReorder
	}

	ordered := make([]ComponentInstance, 0, len(ids))
	for _, id := range ids {
		ordered = append(ordered, byID[id])
	}
	d.Components = ordered

	return nil
}

// SetProperties overlays props on an instance. With replace the instance's bag
// is replaced instead. A null value removes the property so the type default
// applies again. Known types are validated against their definitions.
func (d *Document) SetProperties(catalog registry.Catalog, instanceID string, props Properties, replace bool) error {
	instance, ok := d.Component(instanceID)
	if !ok {
		return fmt.Errorf("%w: %s", ErrComponentNotFound, instanceID)
	}

	values := make(Properties, len(props))
	reset := make([]string, 0)
	for k, v := range props {
		if v == nil {
			reset = append(reset, k)
			continue
		}
		values[k] = v
	}

	if ct, ok := catalog.Lookup(instance.TypeID); ok {
		if err := registry.ValidateProperties(ct, values); err != nil {
			return err
		}
	}

	if replace || instance.Properties == nil {
		instance.Properties = make(Properties, len(values))
	}
	for _, k := range reset {
		delete(instance.Properties, k)
	}
	for k, v := range values {
		instance.Properties[k] = registry.CloneValue(v)
	}

	return nil
}

// Validate checks a full document before it is saved: instance ids must be
// present and unique, and instances of known types must hold valid properties.
// Instances whose type left the registry are kept as they are.
func (d *Document) Validate(catalog registry.Catalog) error {
	seen := mapset.NewSetWithSize[string](len(d.Components))
	for _, c := range d.Components {
		if c.InstanceID == "" {
			return fmt.Errorf("%w: component without instance id", ErrInvalidDocument)
		}
		if !seen.Add(c.InstanceID) {
			return fmt.Errorf("%w: duplicate instance id %s", ErrInvalidDocument, c.InstanceID)
		}
		if ct, ok := catalog.Lookup(c.TypeID); ok {
			if err := registry.ValidateProperties(ct, c.Properties); err != nil {
				return fmt.Errorf("component %s: %w", c.InstanceID, err)
			}
		}
	}

	return nil
}

// Clone returns a deep copy of the document.
func (d *Document) Clone() *Document {
	out := *d
	out.Components = make([]ComponentInstance, len(d.Components))
	for i, c := range d.Components {
		out.Components[i] = ComponentInstance{
			InstanceID: c.InstanceID,
			TypeID:     c.TypeID,
			Properties: registry.CloneProperties(c.Properties),
		}
	}

	return &out
}
