package compositor

import (
	"github.com/emrgen/pagebuilder/internal/page"
	"github.com/emrgen/pagebuilder/internal/registry"
	"github.com/emrgen/pagebuilder/internal/resolver"
	"github.com/sirupsen/logrus"
)

// Resolver resolves a component type id to its handler.
type Resolver interface {
	Resolve(typeID string) (resolver.Handler, bool)
}

// RenderInstruction tells the presentation layer to render one component.
type RenderInstruction struct {
	InstanceID string          `json:"instanceId"`
	TypeID     string          `json:"typeId"`
	Properties page.Properties `json:"mergedProperties"`
}

// Diagnostic records a component that was left out of a composition.
type Diagnostic struct {
	InstanceID string `json:"instanceId"`
	TypeID     string `json:"typeId"`
	Reason     string `json:"reason"`
}

// Composition is the render plan of one page.
type Composition struct {
	PageID       string              `json:"pageId"`
	Version      int64               `json:"version"`
	Instructions []RenderInstruction `json:"instructions"`
	Diagnostics  []Diagnostic        `json:"diagnostics,omitempty"`
}

// Compositor turns page documents into render instructions.
type Compositor struct {
	resolver Resolver
}

// New creates a compositor.
func New(resolver Resolver) *Compositor {
	return &Compositor{resolver: resolver}
}

// ComposeForRender walks the page's components in order. Each resolvable
// component yields one instruction whose properties are the type defaults
// overlaid with the instance properties. Unresolvable components are skipped
// and recorded as diagnostics; they never fail the page.
func (c *Compositor) ComposeForRender(doc *page.Document) *Composition {
	comp := &Composition{
		PageID:       doc.ID,
		Version:      doc.Version,
		Instructions: make([]RenderInstruction, 0, len(doc.Components)),
	}

	for _, instance := range doc.Components {
		handler, ok := c.resolver.Resolve(instance.TypeID)
		if !ok {
			logrus.WithFields(logrus.Fields{
				"page":     doc.ID,
				"instance": instance.InstanceID,
				"type":     instance.TypeID,
			}).Warn("skipping unresolved component")

			comp.Diagnostics = append(comp.Diagnostics, Diagnostic{
				InstanceID: instance.InstanceID,
				TypeID:     instance.TypeID,
				Reason:     "unresolved component type",
			})
			continue
		}

		comp.Instructions = append(comp.Instructions, RenderInstruction{
			InstanceID: instance.InstanceID,
			TypeID:     instance.TypeID,
			Properties: MergeProperties(handler.Type.Defaults, instance.Properties),
		})
	}

	return comp
}

// MergeProperties returns a copy of defaults overlaid with props. Values of
// props win on key collision.
func MergeProperties(defaults map[string]any, props page.Properties) page.Properties {
	merged := make(page.Properties, len(defaults)+len(props))
	for k, v := range defaults {
		merged[k] = registry.CloneValue(v)
	}
	for k, v := range props {
		merged[k] = registry.CloneValue(v)
	}

	return merged
}
