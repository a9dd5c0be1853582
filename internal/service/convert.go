package service

import (
	v1 "github.com/emrgen/pagebuilder/apis/v1"
	"github.com/emrgen/pagebuilder/internal/compositor"
	"github.com/emrgen/pagebuilder/internal/model"
	"github.com/emrgen/pagebuilder/internal/page"
	"github.com/emrgen/pagebuilder/internal/registry"
	"github.com/emrgen/pagebuilder/internal/seo"
	"github.com/google/uuid"
)

func pageToProto(doc *page.Document) *v1.Page {
	components := make([]*v1.ComponentInstance, 0, len(doc.Components))
	for _, c := range doc.Components {
		props := c.Properties
		if props == nil {
			props = page.Properties{}
		}
		components = append(components, &v1.ComponentInstance{
			InstanceId: c.InstanceID,
			TypeId:     c.TypeID,
			Properties: props,
		})
	}

	return &v1.Page{
		Id:          doc.ID,
		Title:       doc.Title,
		Slug:        doc.Slug,
		Description: doc.Description,
		ParentId:    doc.ParentID,
		Components:  components,
		SeoData:     seoToProto(doc.Seo),
		IsHomePage:  doc.IsHomePage,
		Deleted:     doc.Deleted,
		Version:     doc.Version,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
}

func seoToProto(s page.SeoData) *v1.SeoData {
	return &v1.SeoData{
		BasicSeo: &v1.BasicSeo{
			Title:        s.Basic.Title,
			Description:  s.Basic.Description,
			Keywords:     s.Basic.Keywords,
			CanonicalUrl: s.Basic.CanonicalURL,
			Robots:       s.Basic.Robots,
			Viewport:     s.Basic.Viewport,
			Author:       s.Basic.Author,
		},
		OgSeo: &v1.OgSeo{
			Title:          s.Og.Title,
			Description:    s.Og.Description,
			Image:          s.Og.Image,
			Type:           s.Og.Type,
			Url:            s.Og.URL,
			SiteName:       s.Og.SiteName,
			Locale:         s.Og.Locale,
			TwitterCard:    s.Og.TwitterCard,
			TwitterCreator: s.Og.TwitterCreator,
		},
	}
}

// seoFromProto converts the request SEO data and fills what is unset from
// the page title and description.
func seoFromProto(s *v1.SeoData, title, description string) page.SeoData {
	var out page.SeoData
	if s != nil && s.BasicSeo != nil {
		b := s.BasicSeo
		out.Basic = page.BasicSeo{
			Title:        b.Title,
			Description:  b.Description,
			Keywords:     b.Keywords,
			CanonicalURL: b.CanonicalUrl,
			Robots:       b.Robots,
			Viewport:     b.Viewport,
			Author:       b.Author,
		}
	}
	if s != nil && s.OgSeo != nil {
		o := s.OgSeo
		out.Og = page.OgSeo{
			Title:          o.Title,
			Description:    o.Description,
			Image:          o.Image,
			Type:           o.Type,
			URL:            o.Url,
			SiteName:       o.SiteName,
			Locale:         o.Locale,
			TwitterCard:    o.TwitterCard,
			TwitterCreator: o.TwitterCreator,
		}
	}

	return out.WithDefaults(title, description)
}

// componentsFromProto converts request components. Instances without id get
// a fresh one.
func componentsFromProto(in []*v1.ComponentInstance) []page.ComponentInstance {
	out := make([]page.ComponentInstance, 0, len(in))
	for _, c := range in {
		id := c.InstanceId
		if id == "" {
			id = uuid.New().String()
		}
		props := page.Properties(registry.CloneProperties(c.Properties))
		if props == nil {
			props = page.Properties{}
		}
		out = append(out, page.ComponentInstance{
			InstanceID: id,
			TypeID:     c.TypeId,
			Properties: props,
		})
	}

	return out
}

func componentTypeToProto(ct *registry.ComponentType) *v1.ComponentType {
	return &v1.ComponentType{
		TypeId:              ct.TypeID,
		DisplayName:         ct.DisplayName,
		Category:            string(ct.Category),
		Description:         ct.Description,
		PropertyDefinitions: propertyDefinitionsToProto(ct.Properties),
		DefaultProperties:   ct.DefaultProperties(),
	}
}

func propertyDefinitionsToProto(defs []registry.PropertyDefinition) []*v1.PropertyDefinition {
	if len(defs) == 0 {
		return nil
	}

	out := make([]*v1.PropertyDefinition, 0, len(defs))
	for _, def := range defs {
		out = append(out, &v1.PropertyDefinition{
			Name:    def.Name,
			Kind:    string(def.Kind),
			Label:   def.Label,
			Default: registry.CloneValue(def.Default),
			Options: def.Options,
			Fields:  propertyDefinitionsToProto(def.Fields),
		})
	}

	return out
}

func compositionToProto(comp *compositor.Composition) ([]*v1.RenderInstruction, []*v1.Diagnostic) {
	instructions := make([]*v1.RenderInstruction, 0, len(comp.Instructions))
	for _, in := range comp.Instructions {
		instructions = append(instructions, &v1.RenderInstruction{
			InstanceId:       in.InstanceID,
			TypeId:           in.TypeID,
			MergedProperties: in.Properties,
		})
	}

	var diagnostics []*v1.Diagnostic
	for _, d := range comp.Diagnostics {
		diagnostics = append(diagnostics, &v1.Diagnostic{
			InstanceId: d.InstanceID,
			TypeId:     d.TypeID,
			Reason:     d.Reason,
		})
	}

	return instructions, diagnostics
}

func metaToProto(m seo.Meta) *v1.SeoMeta {
	return &v1.SeoMeta{
		Title:              m.Title,
		Description:        m.Description,
		Keywords:           m.Keywords,
		Canonical:          m.Canonical,
		Robots:             m.Robots,
		Viewport:           m.Viewport,
		Author:             m.Author,
		OgTitle:            m.OgTitle,
		OgDescription:      m.OgDescription,
		OgImage:            m.OgImage,
		OgType:             m.OgType,
		OgUrl:              m.OgURL,
		OgSiteName:         m.OgSiteName,
		OgLocale:           m.OgLocale,
		TwitterCard:        m.TwitterCard,
		TwitterCreator:     m.TwitterCreator,
		TwitterTitle:       m.TwitterTitle,
		TwitterDescription: m.TwitterDescription,
		TwitterImage:       m.TwitterImage,
	}
}

func revisionToProto(rev *model.PageRevision) *v1.PageRevision {
	return &v1.PageRevision{
		PageId:    rev.PageID,
		Version:   rev.Version,
		Title:     rev.Title,
		Slug:      rev.Slug,
		CreatedAt: rev.CreatedAt,
	}
}

func themeToProto(theme *model.SiteTheme) *v1.SiteTheme {
	return &v1.SiteTheme{
		SelectedHomePage: theme.HomePageID(),
		SiteName:         theme.SiteName,
		Locale:           theme.Locale,
		BaseUrl:          theme.BaseURL,
		PrimaryColor:     theme.PrimaryColor,
		Logo:             theme.Logo,
		UpdatedAt:        theme.UpdatedAt,
	}
}

func themeSite(theme *model.SiteTheme) seo.Site {
	return seo.Site{
		Name:    theme.SiteName,
		Locale:  theme.Locale,
		BaseURL: theme.BaseURL,
	}
}
