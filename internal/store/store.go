package store

import (
	"context"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/emrgen/pagebuilder/internal/model"
	"github.com/emrgen/pagebuilder/internal/page"
)

type Store interface {
	PageStore
	PageRevisionStore
	SiteThemeStore
	Transaction(ctx context.Context, f func(tx Store) error) error
	Migrate() error
}

type PageStore interface {
	// FindPageBySlug retrieves a non-deleted page by slug.
	FindPageBySlug(ctx context.Context, slug string, opts ...QueryOption) (*page.Document, error)
	// FindPageByID retrieves a non-deleted page by ID.
	FindPageByID(ctx context.Context, id string, opts ...QueryOption) (*page.Document, error)
	// ListPages retrieves the pages matching the filter ordered by title.
	ListPages(ctx context.Context, filter ListFilter) ([]*page.Document, error)
	// SavePage inserts or replaces a page. A page without ID gets one. A
	// second live page with the same slug fails with page.ErrSlugConflict.
	SavePage(ctx context.Context, doc *page.Document, opts ...SaveOption) (*page.Document, error)
	// SoftDeletePage flags a page as deleted.
	SoftDeletePage(ctx context.Context, id string) error
	// SlugTaken reports whether another non-deleted page uses slug.
	SlugTaken(ctx context.Context, slug, excludeID string) (bool, error)
	// CountChildren counts the non-deleted pages whose parent is id.
	CountChildren(ctx context.Context, id string) (int64, error)
	// PageParents maps every non-deleted page to its parent.
	PageParents(ctx context.Context) (map[string]string, error)
}

type PageRevisionStore interface {
	// CreatePageRevision stores a snapshot of a page.
	CreatePageRevision(ctx context.Context, rev *model.PageRevision) error
	// ListPageRevisions retrieves the revisions of a page, newest first.
	ListPageRevisions(ctx context.Context, pageID string) ([]*model.PageRevision, error)
	// ListRevisionVersions maps page IDs to their revision versions, newest first.
	ListRevisionVersions(ctx context.Context) (map[string][]int64, error)
	// DeletePageRevisions deletes the given versions per page.
	DeletePageRevisions(ctx context.Context, versions map[string]mapset.Set[int64]) (int64, error)
}

type SiteThemeStore interface {
	// GetSiteTheme retrieves the site theme, an empty one when none was saved.
	GetSiteTheme(ctx context.Context) (*model.SiteTheme, error)
	// SaveSiteTheme replaces the site theme.
	SaveSiteTheme(ctx context.Context, theme *model.SiteTheme) error
}

// ListFilter narrows ListPages. A nil ParentID lists every page, a pointer to
// "" lists the root pages.
type ListFilter struct {
	ParentID       *string
	IncludeDeleted bool
}

type queryOptions struct {
	includeDeleted bool
	forUpdate      bool
}

// QueryOption changes how a single page is looked up.
type QueryOption func(*queryOptions)

// IncludeDeleted makes a lookup return soft deleted pages too.
func IncludeDeleted() QueryOption {
	return func(o *queryOptions) {
		o.includeDeleted = true
	}
}

// ForUpdate locks the row until the surrounding transaction ends. Databases
// without row locks ignore it.
func ForUpdate() QueryOption {
	return func(o *queryOptions) {
		o.forUpdate = true
	}
}

func applyOptions(opts []QueryOption) queryOptions {
	var o queryOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

type saveOptions struct {
	expectVersion *int64
}

// SaveOption changes how a page is written.
type SaveOption func(*saveOptions)

// ExpectVersion makes a save replace the stored page only while it is still
// at version. Otherwise the save fails with page.ErrStaleWrite.
func ExpectVersion(version int64) SaveOption {
	return func(o *saveOptions) {
		o.expectVersion = &version
	}
}
