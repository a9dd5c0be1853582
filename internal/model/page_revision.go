package model

import (
	"encoding/json"
	"time"

	"github.com/emrgen/pagebuilder/internal/page"
)

// PageRevision keeps the state of a page as it was before a save replaced
// it. Old revisions are pruned by a background job.
type PageRevision struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	PageID    string `gorm:"type:varchar(36);not null;index:idx_page_revisions_page_version"`
	Version   int64  `gorm:"not null;index:idx_page_revisions_page_version"`
	Title     string `gorm:"not null"`
	Slug      string `gorm:"not null"`
	Snapshot  string `gorm:"type:text;not null"`
	CreatedAt time.Time
}

func (PageRevision) TableName() string {
	return "page_revisions"
}

type snapshot struct {
	Title       string                   `json:"title"`
	Slug        string                   `json:"slug"`
	Description string                   `json:"description"`
	ParentID    string                   `json:"parentId,omitempty"`
	Components  []page.ComponentInstance `json:"components"`
	Seo         page.SeoData             `json:"seoData"`
}

// NewPageRevision snapshots doc at its current version.
func NewPageRevision(doc *page.Document) (*PageRevision, error) {
	data, err := json.Marshal(snapshot{
		Title:       doc.Title,
		Slug:        doc.Slug,
		Description: doc.Description,
		ParentID:    doc.ParentID,
		Components:  doc.Components,
		Seo:         doc.Seo,
	})
	if err != nil {
		return nil, err
	}

	return &PageRevision{
		PageID:   doc.ID,
		Version:  doc.Version,
		Title:    doc.Title,
		Slug:     doc.Slug,
		Snapshot: string(data),
	}, nil
}

// Document rebuilds the page document stored in the revision.
func (r *PageRevision) Document() (*page.Document, error) {
	var s snapshot
	if err := json.Unmarshal([]byte(r.Snapshot), &s); err != nil {
		return nil, err
	}

	doc := &page.Document{
		ID:          r.PageID,
		Title:       s.Title,
		Slug:        s.Slug,
		Description: s.Description,
		ParentID:    s.ParentID,
		Components:  s.Components,
		Seo:         s.Seo,
		Version:     r.Version,
		UpdatedAt:   r.CreatedAt,
	}
	if doc.Components == nil {
		doc.Components = make([]page.ComponentInstance, 0)
	}

	return doc, nil
}
