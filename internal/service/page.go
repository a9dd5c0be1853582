package service

import (
	"context"
	"fmt"

	v1 "github.com/emrgen/pagebuilder/apis/v1"
	"github.com/emrgen/pagebuilder/internal/cache"
	"github.com/emrgen/pagebuilder/internal/compositor"
	"github.com/emrgen/pagebuilder/internal/model"
	"github.com/emrgen/pagebuilder/internal/page"
	"github.com/emrgen/pagebuilder/internal/queue"
	"github.com/emrgen/pagebuilder/internal/registry"
	"github.com/emrgen/pagebuilder/internal/store"
	"github.com/sirupsen/logrus"
)

var (
	_ v1.PageServiceServer = (*PageService)(nil)
)

// NewPageService creates a new PageService.
func NewPageService(store store.Store, registry *registry.Registry, compositor *compositor.Compositor, cache cache.RenderCache, publisher queue.PagePublisher) *PageService {
	return &PageService{
		store:      store,
		registry:   registry,
		compositor: compositor,
		cache:      cache,
		publisher:  publisher,
	}
}

// PageService authors and renders pages.
type PageService struct {
	store      store.Store
	registry   *registry.Registry
	compositor *compositor.Compositor
	cache      cache.RenderCache
	publisher  queue.PagePublisher
	v1.UnimplementedPageServiceServer
}

// editFunc applies one authoring operation to a loaded page and reports
// whether the page changed.
type editFunc func(tx store.Store, doc *page.Document) (bool, error)

// edit loads a page, applies fn and saves the result in one transaction.
// Nothing is written when fn fails or leaves the page unchanged.
func (p *PageService) edit(ctx context.Context, id string, version *int64, fn editFunc) (*page.Document, error) {
	var result *page.Document
	changed := false

	err := p.store.Transaction(ctx, func(tx store.Store) error {
		doc, err := tx.FindPageByID(ctx, id, store.ForUpdate())
		if err != nil {
			return err
		}
		if err := checkVersion(doc, version); err != nil {
			return err
		}

		before := doc.Clone()
		changed, err = fn(tx, doc)
		if err != nil {
			return err
		}
		if !changed {
			result, err = p.withHomeFlag(ctx, tx, doc)
			return err
		}

		result, err = p.save(ctx, tx, before, doc)
		return err
	})
	if err != nil {
		return nil, toStatus(err)
	}

	if changed {
		p.saved(ctx, result)
	}

	return result, nil
}

// save snapshots the previous state of the page, bumps the version and
// writes the page. before is nil for a new page.
func (p *PageService) save(ctx context.Context, tx store.Store, before, doc *page.Document) (*page.Document, error) {
	doc.Version = 1
	var opts []store.SaveOption
	if before != nil {
		rev, err := model.NewPageRevision(before)
		if err != nil {
			return nil, err
		}
		if err := tx.CreatePageRevision(ctx, rev); err != nil {
			return nil, err
		}
		doc.Version = before.Version + 1
		opts = append(opts, store.ExpectVersion(before.Version))
	}

	saved, err := tx.SavePage(ctx, doc, opts...)
	if err != nil {
		return nil, err
	}

	return p.withHomeFlag(ctx, tx, saved)
}

// saved runs after a committed save. Failures here never fail the request.
func (p *PageService) saved(ctx context.Context, doc *page.Document) {
	if err := p.cache.DeletePage(ctx, doc.ID); err != nil {
		logrus.Warnf("error dropping cached render of page %s: %v", doc.ID, err)
	}

	event := queue.NewPageEvent(queue.PageSaved, doc.ID, doc.Slug, doc.Version)
	if err := p.publisher.Publish(ctx, event); err != nil {
		logrus.Errorf("error publishing %s for page %s: %v", event.Kind, doc.ID, err)
	}
}

func (p *PageService) withHomeFlag(ctx context.Context, s store.SiteThemeStore, doc *page.Document) (*page.Document, error) {
	theme, err := s.GetSiteTheme(ctx)
	if err != nil {
		return nil, err
	}
	doc.IsHomePage = doc.ID == theme.HomePageID()

	return doc, nil
}

func checkVersion(doc *page.Document, version *int64) error {
	if version == nil || *version == v1.OverwriteVersion {
		return nil
	}
	if *version != doc.Version {
		return fmt.Errorf("%w: page %s is at version %d, request has %d", page.ErrStaleWrite, doc.ID, doc.Version, *version)
	}

	return nil
}

// checkParent verifies that parentID is a live page and that it is not the
// page itself or one of its descendants.
func checkParent(ctx context.Context, tx store.PageStore, pageID, parentID string) error {
	if parentID == "" {
		return nil
	}

	if _, err := tx.FindPageByID(ctx, parentID); err != nil {
		return fmt.Errorf("%w: %v", page.ErrInvalidParent, err)
	}

	parents, err := tx.PageParents(ctx)
	if err != nil {
		return err
	}

	return page.ValidateParent(pageID, parentID, parents)
}

// CreatePage creates a new page.
func (p *PageService) CreatePage(ctx context.Context, request *v1.CreatePageRequest) (*v1.CreatePageResponse, error) {
	doc := page.CreateDraft(request.Title)
	doc.Description = request.Description
	doc.ParentID = request.ParentId
	doc.Seo = seoFromProto(request.SeoData, request.Title, request.Description)
	doc.Components = componentsFromProto(request.Components)

	for _, c := range doc.Components {
		if _, ok := p.registry.Lookup(c.TypeID); !ok {
			return nil, toStatus(fmt.Errorf("%w: %s", page.ErrUnknownComponentType, c.TypeID))
		}
	}
	if err := doc.Validate(p.registry); err != nil {
		return nil, toStatus(err)
	}

	candidate := request.Slug
	if candidate == "" {
		candidate = request.Title
	}

	var saved *page.Document
	err := p.store.Transaction(ctx, func(tx store.Store) error {
		if err := checkParent(ctx, tx, "", doc.ParentID); err != nil {
			return err
		}
		if err := doc.SetSlug(ctx, candidate, tx); err != nil {
			return err
		}

		var err error
		saved, err = p.save(ctx, tx, nil, doc)
		return err
	})
	if err != nil {
		return nil, toStatus(err)
	}

	logrus.Infof("created page %s with slug %s", saved.ID, saved.Slug)
	p.saved(ctx, saved)

	return &v1.CreatePageResponse{Page: pageToProto(saved)}, nil
}

// GetPage retrieves a page by id.
func (p *PageService) GetPage(ctx context.Context, request *v1.GetPageRequest) (*v1.GetPageResponse, error) {
	var opts []store.QueryOption
	if request.IncludeDeleted {
		opts = append(opts, store.IncludeDeleted())
	}

	doc, err := p.store.FindPageByID(ctx, request.Id, opts...)
	if err != nil {
		return nil, toStatus(err)
	}
	if doc, err = p.withHomeFlag(ctx, p.store, doc); err != nil {
		return nil, toStatus(err)
	}

	return &v1.GetPageResponse{Page: pageToProto(doc)}, nil
}

// GetPageBySlug retrieves a live page by slug.
func (p *PageService) GetPageBySlug(ctx context.Context, request *v1.GetPageBySlugRequest) (*v1.GetPageResponse, error) {
	doc, err := p.store.FindPageBySlug(ctx, page.DeriveSlug(request.Slug))
	if err != nil {
		return nil, toStatus(err)
	}
	if doc, err = p.withHomeFlag(ctx, p.store, doc); err != nil {
		return nil, toStatus(err)
	}

	return &v1.GetPageResponse{Page: pageToProto(doc)}, nil
}

// ListPages lists pages, optionally under one parent.
func (p *PageService) ListPages(ctx context.Context, request *v1.ListPagesRequest) (*v1.ListPagesResponse, error) {
	filter := store.ListFilter{IncludeDeleted: request.IncludeDeleted}
	if request.RootsOnly {
		root := ""
		filter.ParentID = &root
	} else if request.ParentId != "" {
		filter.ParentID = &request.ParentId
	}

	docs, err := p.store.ListPages(ctx, filter)
	if err != nil {
		return nil, toStatus(err)
	}

	theme, err := p.store.GetSiteTheme(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	pages := make([]*v1.Page, 0, len(docs))
	for _, doc := range docs {
		doc.IsHomePage = doc.ID == theme.HomePageID()
		pages = append(pages, pageToProto(doc))
	}

	return &v1.ListPagesResponse{Pages: pages, Total: int32(len(pages))}, nil
}

// ListPageTree lists the pages in hierarchy order.
func (p *PageService) ListPageTree(ctx context.Context, request *v1.ListPageTreeRequest) (*v1.ListPageTreeResponse, error) {
	docs, err := p.store.ListPages(ctx, store.ListFilter{IncludeDeleted: request.IncludeDeleted})
	if err != nil {
		return nil, toStatus(err)
	}

	theme, err := p.store.GetSiteTheme(ctx)
	if err != nil {
		return nil, toStatus(err)
	}

	tree := page.FlattenTree(docs)
	entries := make([]*v1.PageTreeEntry, 0, len(tree))
	for _, entry := range tree {
		entry.Page.IsHomePage = entry.Page.ID == theme.HomePageID()
		entries = append(entries, &v1.PageTreeEntry{
			Page:  pageToProto(entry.Page),
			Depth: int32(entry.Depth),
			Path:  entry.Path,
		})
	}

	return &v1.ListPageTreeResponse{Entries: entries}, nil
}

// UpdatePage replaces the document of a page. Instances of types that left
// the registry are only accepted when the stored page already has them
// unchanged.
func (p *PageService) UpdatePage(ctx context.Context, request *v1.UpdatePageRequest) (*v1.UpdatePageResponse, error) {
	doc, err := p.edit(ctx, request.Id, request.Version, func(tx store.Store, doc *page.Document) (bool, error) {
		components := componentsFromProto(request.Components)
		if err := p.checkComponentTypes(doc, components); err != nil {
			return false, err
		}

		if request.ParentId != doc.ParentID {
			if err := checkParent(ctx, tx, doc.ID, request.ParentId); err != nil {
				return false, err
			}
		}

		candidate := request.Slug
		if candidate == "" {
			candidate = request.Title
		}
		if err := doc.SetSlug(ctx, candidate, tx); err != nil {
			return false, err
		}

		doc.Title = request.Title
		doc.Description = request.Description
		doc.ParentID = request.ParentId
		doc.Components = components
		doc.Seo = seoFromProto(request.SeoData, request.Title, request.Description)

		return true, doc.Validate(p.registry)
	})
	if err != nil {
		return nil, err
	}

	return &v1.UpdatePageResponse{Page: pageToProto(doc)}, nil
}

func (p *PageService) checkComponentTypes(stored *page.Document, components []page.ComponentInstance) error {
	for i, c := range components {
		if _, ok := p.registry.Lookup(c.TypeID); ok {
			continue
		}
		old, ok := stored.Component(c.InstanceID)
		if !ok || old.TypeID != c.TypeID {
			return fmt.Errorf("%w: %s", page.ErrUnknownComponentType, c.TypeID)
		}
		components[i].Properties = old.Properties
	}

	return nil
}

// DeletePage soft deletes a page. The home page and pages with live children
// cannot be deleted.
func (p *PageService) DeletePage(ctx context.Context, request *v1.DeletePageRequest) (*v1.DeletePageResponse, error) {
	var doc *page.Document
	err := p.store.Transaction(ctx, func(tx store.Store) error {
		var err error
		doc, err = tx.FindPageByID(ctx, request.Id, store.ForUpdate())
		if err != nil {
			return err
		}
		if err := checkVersion(doc, request.Version); err != nil {
			return err
		}

		theme, err := tx.GetSiteTheme(ctx)
		if err != nil {
			return err
		}
		children, err := tx.CountChildren(ctx, doc.ID)
		if err != nil {
			return err
		}
		if err := page.CheckDeletable(doc, theme.HomePageID(), children); err != nil {
			return err
		}

		return tx.SoftDeletePage(ctx, doc.ID)
	})
	if err != nil {
		return nil, toStatus(err)
	}

	logrus.Infof("deleted page %s", doc.ID)
	if err := p.cache.DeletePage(ctx, doc.ID); err != nil {
		logrus.Warnf("error dropping cached render of page %s: %v", doc.ID, err)
	}
	event := queue.NewPageEvent(queue.PageDeleted, doc.ID, doc.Slug, doc.Version)
	if err := p.publisher.Publish(ctx, event); err != nil {
		logrus.Errorf("error publishing %s for page %s: %v", event.Kind, doc.ID, err)
	}

	return &v1.DeletePageResponse{}, nil
}

// AddComponent appends a new component seeded with its type defaults.
func (p *PageService) AddComponent(ctx context.Context, request *v1.AddComponentRequest) (*v1.AddComponentResponse, error) {
	var instance page.ComponentInstance
	doc, err := p.edit(ctx, request.PageId, request.Version, func(_ store.Store, doc *page.Document) (bool, error) {
		var err error
		instance, err = doc.AddComponent(p.registry, request.TypeId)
		return err == nil, err
	})
	if err != nil {
		return nil, err
	}

	return &v1.AddComponentResponse{
		Page: pageToProto(doc),
		Instance: &v1.ComponentInstance{
			InstanceId: instance.InstanceID,
			TypeId:     instance.TypeID,
			Properties: instance.Properties,
		},
	}, nil
}

// RemoveComponent removes a component. Removing a missing component is not an error.
func (p *PageService) RemoveComponent(ctx context.Context, request *v1.RemoveComponentRequest) (*v1.PageResponse, error) {
	doc, err := p.edit(ctx, request.PageId, request.Version, func(_ store.Store, doc *page.Document) (bool, error) {
		return doc.RemoveComponent(request.InstanceId), nil
	})
	if err != nil {
		return nil, err
	}

	return &v1.PageResponse{Page: pageToProto(doc)}, nil
}

// ReorderComponents puts the components in the requested order.
func (p *PageService) ReorderComponents(ctx context.Context, request *v1.ReorderComponentsRequest) (*v1.PageResponse, error) {
	doc, err := p.edit(ctx, request.PageId, request.Version, func(_ store.Store, doc *page.Document) (bool, error) {
		before := make([]string, 0, len(doc.Components))
		for _, c := range doc.Components {
			before = append(before, c.InstanceID)
		}
		if err := doc.Reorder(request.InstanceIds); err != nil {
			return false, err
		}

		for i, c := range doc.Components {
			if before[i] != c.InstanceID {
				return true, nil
			}
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}

	return &v1.PageResponse{Page: pageToProto(doc)}, nil
}

// SetComponentProperties edits the properties of one component.
func (p *PageService) SetComponentProperties(ctx context.Context, request *v1.SetComponentPropertiesRequest) (*v1.PageResponse, error) {
	doc, err := p.edit(ctx, request.PageId, request.Version, func(_ store.Store, doc *page.Document) (bool, error) {
		err := doc.SetProperties(p.registry, request.InstanceId, request.Properties, request.Replace)
		return err == nil, err
	})
	if err != nil {
		return nil, err
	}

	return &v1.PageResponse{Page: pageToProto(doc)}, nil
}

// SetSlug normalizes and assigns a new slug.
func (p *PageService) SetSlug(ctx context.Context, request *v1.SetSlugRequest) (*v1.PageResponse, error) {
	doc, err := p.edit(ctx, request.PageId, request.Version, func(tx store.Store, doc *page.Document) (bool, error) {
		old := doc.Slug
		if err := doc.SetSlug(ctx, request.Slug, tx); err != nil {
			return false, err
		}
		return doc.Slug != old, nil
	})
	if err != nil {
		return nil, err
	}

	return &v1.PageResponse{Page: pageToProto(doc)}, nil
}

// CheckSlug reports whether a slug is free for a page.
func (p *PageService) CheckSlug(ctx context.Context, request *v1.CheckSlugRequest) (*v1.CheckSlugResponse, error) {
	slug := page.DeriveSlug(request.Slug)
	if slug == "" {
		return nil, toStatus(fmt.Errorf("%w: %q", page.ErrInvalidSlug, request.Slug))
	}

	taken, err := p.store.SlugTaken(ctx, slug, request.ExcludeId)
	if err != nil {
		return nil, toStatus(err)
	}

	return &v1.CheckSlugResponse{Slug: slug, Available: !taken}, nil
}

// SetParent moves a page under another page, or to the root with an empty parent.
func (p *PageService) SetParent(ctx context.Context, request *v1.SetParentRequest) (*v1.PageResponse, error) {
	doc, err := p.edit(ctx, request.PageId, request.Version, func(tx store.Store, doc *page.Document) (bool, error) {
		if request.ParentId == doc.ParentID {
			return false, nil
		}
		if err := checkParent(ctx, tx, doc.ID, request.ParentId); err != nil {
			return false, err
		}
		doc.ParentID = request.ParentId
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	return &v1.PageResponse{Page: pageToProto(doc)}, nil
}

// ListPageRevisions lists the saved revisions of a page, newest first.
func (p *PageService) ListPageRevisions(ctx context.Context, request *v1.ListPageRevisionsRequest) (*v1.ListPageRevisionsResponse, error) {
	if _, err := p.store.FindPageByID(ctx, request.PageId, store.IncludeDeleted()); err != nil {
		return nil, toStatus(err)
	}

	revs, err := p.store.ListPageRevisions(ctx, request.PageId)
	if err != nil {
		return nil, toStatus(err)
	}

	revisions := make([]*v1.PageRevision, 0, len(revs))
	for _, rev := range revs {
		revisions = append(revisions, revisionToProto(rev))
	}

	return &v1.ListPageRevisionsResponse{Revisions: revisions}, nil
}
