package model

import (
	"time"

	"github.com/emrgen/pagebuilder/internal/page"
)

// Page is the stored row of a page document. Components and SEO data are
// schemaless JSON; the page package enforces their shape.
type Page struct {
	ID          string        `gorm:"primaryKey;type:varchar(36)"`
	Title       string        `gorm:"not null"`
	Slug        string        `gorm:"not null;uniqueIndex:idx_pages_live_slug,where:deleted = false"`
	Description string        `gorm:"not null"`
	ParentID    *string       `gorm:"type:varchar(36);index"`
	Components  ComponentList `gorm:"type:text;not null"`
	Seo         SeoColumn     `gorm:"type:text;not null"`
	Version     int64         `gorm:"not null"`
	Deleted     bool          `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Page) TableName() string {
	return "pages"
}

// NewPage converts a document into its row.
func NewPage(doc *page.Document) *Page {
	p := &Page{
		ID:          doc.ID,
		Title:       doc.Title,
		Slug:        doc.Slug,
		Description: doc.Description,
		Components:  ComponentList(doc.Components),
		Seo:         SeoColumn(doc.Seo),
		Version:     doc.Version,
		Deleted:     doc.Deleted,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
	if doc.ParentID != "" {
		parent := doc.ParentID
		p.ParentID = &parent
	}

	return p
}

// Document converts the row back into a page document. IsHomePage is left
// for the caller to derive.
func (p *Page) Document() *page.Document {
	doc := &page.Document{
		ID:          p.ID,
		Title:       p.Title,
		Slug:        p.Slug,
		Description: p.Description,
		Components:  []page.ComponentInstance(p.Components),
		Seo:         page.SeoData(p.Seo),
		Version:     p.Version,
		Deleted:     p.Deleted,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if doc.Components == nil {
		doc.Components = make([]page.ComponentInstance, 0)
	}
	if p.ParentID != nil {
		doc.ParentID = *p.ParentID
	}

	return doc
}
