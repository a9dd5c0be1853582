package service

import (
	"context"

	v1 "github.com/emrgen/pagebuilder/apis/v1"
	"github.com/emrgen/pagebuilder/internal/compositor"
	"github.com/emrgen/pagebuilder/internal/model"
	"github.com/emrgen/pagebuilder/internal/page"
	"github.com/emrgen/pagebuilder/internal/seo"
	"github.com/sirupsen/logrus"
)

// RenderedPage is everything the presentation layer needs to draw a page.
type RenderedPage struct {
	Page        *page.Document
	Composition *compositor.Composition
	Meta        seo.Meta
	Theme       *model.SiteTheme
}

// Render resolves a live page by slug and composes it. An empty slug selects
// the home page. Compositions are served from the render cache while the page
// version is unchanged.
func (p *PageService) Render(ctx context.Context, slug string) (*RenderedPage, error) {
	theme, err := p.store.GetSiteTheme(ctx)
	if err != nil {
		return nil, err
	}

	var doc *page.Document
	if slug == "" {
		if theme.HomePageID() == "" {
			return nil, ErrNoHomePage
		}
		doc, err = p.store.FindPageByID(ctx, theme.HomePageID())
	} else {
		doc, err = p.store.FindPageBySlug(ctx, page.DeriveSlug(slug))
	}
	if err != nil {
		return nil, err
	}
	doc.IsHomePage = doc.ID == theme.HomePageID()

	comp, err := p.cache.GetComposition(ctx, doc.ID, doc.Version)
	if err != nil {
		logrus.Warnf("error reading cached render of page %s: %v", doc.ID, err)
	}
	if comp == nil {
		comp = p.compositor.ComposeForRender(doc)
		if err := p.cache.SetComposition(ctx, comp); err != nil {
			logrus.Warnf("error caching render of page %s: %v", doc.ID, err)
		}
	}

	return &RenderedPage{
		Page:        doc,
		Composition: comp,
		Meta:        seo.Resolve(doc, themeSite(theme)),
		Theme:       theme,
	}, nil
}

// RenderPage returns the render instructions and resolved meta tags of a page.
func (p *PageService) RenderPage(ctx context.Context, request *v1.RenderPageRequest) (*v1.RenderPageResponse, error) {
	rendered, err := p.Render(ctx, request.Slug)
	if err != nil {
		return nil, toStatus(err)
	}

	instructions, diagnostics := compositionToProto(rendered.Composition)

	return &v1.RenderPageResponse{
		Page:         pageToProto(rendered.Page),
		Instructions: instructions,
		Diagnostics:  diagnostics,
		Seo:          metaToProto(rendered.Meta),
	}, nil
}
