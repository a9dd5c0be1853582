package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/emrgen/pagebuilder/internal/model"
	"github.com/emrgen/pagebuilder/internal/page"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db: db,
	}
}

var _ Store = (*GormStore)(nil)

type GormStore struct {
	db *gorm.DB
}

func (g *GormStore) pages(ctx context.Context, includeDeleted bool) *gorm.DB {
	tx := g.db.WithContext(ctx).Model(&model.Page{})
	if !includeDeleted {
		tx = tx.Where("deleted = ?", false)
	}
	return tx
}

func (g *GormStore) findPage(ctx context.Context, op, column, value string, opts []QueryOption) (*page.Document, error) {
	o := applyOptions(opts)

	tx := g.pages(ctx, o.includeDeleted).Where(column+" = ?", value)
	if o.forUpdate && g.db.Dialector.Name() != "sqlite" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var row model.Page
	err := tx.First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: %s", page.ErrPageNotFound, value)
	}
	if err != nil {
		return nil, wrap(op, err)
	}

	return row.Document(), nil
}

func (g *GormStore) FindPageBySlug(ctx context.Context, slug string, opts ...QueryOption) (*page.Document, error) {
	return g.findPage(ctx, "find page by slug", "slug", slug, opts)
}

func (g *GormStore) FindPageByID(ctx context.Context, id string, opts ...QueryOption) (*page.Document, error) {
	return g.findPage(ctx, "find page by id", "id", id, opts)
}

func (g *GormStore) ListPages(ctx context.Context, filter ListFilter) ([]*page.Document, error) {
	tx := g.pages(ctx, filter.IncludeDeleted)
	if filter.ParentID != nil {
		if *filter.ParentID == "" {
			tx = tx.Where("parent_id IS NULL")
		} else {
			tx = tx.Where("parent_id = ?", *filter.ParentID)
		}
	}

	var rows []*model.Page
	if err := tx.Order("title asc").Order("id asc").Find(&rows).Error; err != nil {
		return nil, wrap("list pages", err)
	}

	docs := make([]*page.Document, 0, len(rows))
	for _, row := range rows {
		docs = append(docs, row.Document())
	}

	return docs, nil
}

func (g *GormStore) SavePage(ctx context.Context, doc *page.Document, opts ...SaveOption) (*page.Document, error) {
	var o saveOptions
	for _, opt := range opts {
		opt(&o)
	}

	now := time.Now().UTC()
	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.CreatedAt.IsZero() {
		doc.CreatedAt = now
	}
	doc.UpdatedAt = now

	row := model.NewPage(doc)
	db := g.db.WithContext(ctx)
	if o.expectVersion == nil {
		if err := db.Save(row).Error; err != nil {
			return nil, g.saveError(doc, err)
		}
	} else {
		res := db.Model(&model.Page{}).
			Where("id = ? AND version = ?", row.ID, *o.expectVersion).
			Updates(map[string]any{
				"title":       row.Title,
				"slug":        row.Slug,
				"description": row.Description,
				"parent_id":   row.ParentID,
				"components":  row.Components,
				"seo":         row.Seo,
				"version":     row.Version,
				"deleted":     row.Deleted,
				"updated_at":  row.UpdatedAt,
			})
		if res.Error != nil {
			return nil, g.saveError(doc, res.Error)
		}
		if res.RowsAffected == 0 {
			return nil, fmt.Errorf("%w: page %s is no longer at version %d", page.ErrStaleWrite, doc.ID, *o.expectVersion)
		}
	}

	saved := row.Document()
	saved.IsHomePage = doc.IsHomePage

	return saved, nil
}

func (g *GormStore) saveError(doc *page.Document, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %s", page.ErrSlugConflict, doc.Slug)
	}
	return wrap("save page", err)
}

func (g *GormStore) SoftDeletePage(ctx context.Context, id string) error {
	res := g.pages(ctx, false).Where("id = ?", id).Updates(map[string]any{
		"deleted":    true,
		"updated_at": time.Now().UTC(),
	})
	if res.Error != nil {
		return wrap("soft delete page", res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", page.ErrPageNotFound, id)
	}

	return nil
}

func (g *GormStore) SlugTaken(ctx context.Context, slug, excludeID string) (bool, error) {
	tx := g.pages(ctx, false).Where("slug = ?", slug)
	if excludeID != "" {
		tx = tx.Where("id <> ?", excludeID)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return false, wrap("check slug", err)
	}

	return count > 0, nil
}

func (g *GormStore) CountChildren(ctx context.Context, id string) (int64, error) {
	var count int64
	if err := g.pages(ctx, false).Where("parent_id = ?", id).Count(&count).Error; err != nil {
		return 0, wrap("count children", err)
	}

	return count, nil
}

func (g *GormStore) PageParents(ctx context.Context) (map[string]string, error) {
	var rows []struct {
		ID       string
		ParentID *string
	}
	if err := g.pages(ctx, false).Select("id", "parent_id").Find(&rows).Error; err != nil {
		return nil, wrap("list page parents", err)
	}

	parents := make(map[string]string, len(rows))
	for _, row := range rows {
		if row.ParentID != nil {
			parents[row.ID] = *row.ParentID
		} else {
			parents[row.ID] = ""
		}
	}

	return parents, nil
}

func (g *GormStore) CreatePageRevision(ctx context.Context, rev *model.PageRevision) error {
	return wrap("create page revision", g.db.WithContext(ctx).Create(rev).Error)
}

func (g *GormStore) ListPageRevisions(ctx context.Context, pageID string) ([]*model.PageRevision, error) {
	var revs []*model.PageRevision
	err := g.db.WithContext(ctx).Where("page_id = ?", pageID).Order("version desc").Order("id desc").Find(&revs).Error
	if err != nil {
		return nil, wrap("list page revisions", err)
	}

	return revs, nil
}

func (g *GormStore) ListRevisionVersions(ctx context.Context) (map[string][]int64, error) {
	var rows []struct {
		PageID  string
		Version int64
	}
	err := g.db.WithContext(ctx).Model(&model.PageRevision{}).
		Select("page_id", "version").
		Order("page_id asc").Order("version desc").
		Find(&rows).Error
	if err != nil {
		return nil, wrap("list revision versions", err)
	}

	versions := make(map[string][]int64)
	for _, row := range rows {
		versions[row.PageID] = append(versions[row.PageID], row.Version)
	}

	return versions, nil
}

func (g *GormStore) DeletePageRevisions(ctx context.Context, versions map[string]mapset.Set[int64]) (int64, error) {
	var deleted int64
	for pageID, set := range versions {
		if set.Cardinality() == 0 {
			continue
		}
		res := g.db.WithContext(ctx).
			Where("page_id = ? AND version IN ?", pageID, set.ToSlice()).
			Delete(&model.PageRevision{})
		if res.Error != nil {
			return deleted, wrap("delete page revisions", res.Error)
		}
		deleted += res.RowsAffected
	}

	return deleted, nil
}

func (g *GormStore) GetSiteTheme(ctx context.Context) (*model.SiteTheme, error) {
	var theme model.SiteTheme
	err := g.db.WithContext(ctx).Where("id = ?", model.SiteThemeID).First(&theme).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &model.SiteTheme{ID: model.SiteThemeID}, nil
	}
	if err != nil {
		return nil, wrap("get site theme", err)
	}

	return &theme, nil
}

func (g *GormStore) SaveSiteTheme(ctx context.Context, theme *model.SiteTheme) error {
	theme.ID = model.SiteThemeID
	theme.UpdatedAt = time.Now().UTC()

	return wrap("save site theme", g.db.WithContext(ctx).Save(theme).Error)
}

func (g *GormStore) Migrate() error {
	return model.Migrate(g.db)
}

func (g *GormStore) Transaction(ctx context.Context, f func(tx Store) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return f(&GormStore{db: tx})
	})
}
