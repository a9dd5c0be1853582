package page

import (
	"fmt"
	"sort"
	"strings"
)

// TreeEntry is a page placed in the page hierarchy.
type TreeEntry struct {
	Page  *Document
	Depth int
	// Path is the slug path from the root, e.g. /services/airport.
	Path string
}

// FlattenTree orders pages depth first under their parents. Siblings are
// ordered by title. Pages whose parent is missing from pages become roots, and
// a parent cycle is cut at the first page revisited.
func FlattenTree(pages []*Document) []TreeEntry {
	byID := make(map[string]*Document, len(pages))
	for _, p := range pages {
		byID[p.ID] = p
	}

	children := make(map[string][]*Document)
	roots := make([]*Document, 0)
	for _, p := range pages {
		if _, ok := byID[p.ParentID]; p.ParentID == "" || !ok || p.ParentID == p.ID {
			roots = append(roots, p)
			continue
		}
		children[p.ParentID] = append(children[p.ParentID], p)
	}

	bySiblingOrder := func(list []*Document) {
		sort.SliceStable(list, func(i, j int) bool {
			return strings.ToLower(list[i].Title) < strings.ToLower(list[j].Title)
		})
	}
	bySiblingOrder(roots)
	for _, list := range children {
		bySiblingOrder(list)
	}

	entries := make([]TreeEntry, 0, len(pages))
	visited := make(map[string]bool, len(pages))

	var walk func(p *Document, depth int, prefix string)
	walk = func(p *Document, depth int, prefix string) {
		if visited[p.ID] {
			return
		}
		visited[p.ID] = true

		path := prefix + "/" + p.Slug
		entries = append(entries, TreeEntry{Page: p, Depth: depth, Path: path})
		for _, child := range children[p.ID] {
			walk(child, depth+1, path)
		}
	}

	for _, root := range roots {
		walk(root, 0, "")
	}

	// pages that only hang off a cycle were never reached from a root
	for _, p := range pages {
		if !visited[p.ID] {
			walk(p, 0, "")
		}
	}

	return entries
}

// ValidateParent checks that making parentID the parent of pageID keeps the
// hierarchy acyclic. parents maps a page id to its parent id.
func ValidateParent(pageID, parentID string, parents map[string]string) error {
	if parentID == "" {
		return nil
	}
	if parentID == pageID {
		return fmt.Errorf("%w: a page cannot be its own parent", ErrInvalidParent)
	}

	seen := map[string]bool{}
	for id := parentID; id != ""; id = parents[id] {
		if id == pageID {
			return fmt.Errorf("%w: %s is a descendant of %s", ErrInvalidParent, parentID, pageID)
		}
		if seen[id] {
			break
		}
		seen[id] = true
	}

	return nil
}

// CheckDeletable enforces the deletion guards: the selected home page and
// pages with live children cannot be deleted.
func CheckDeletable(doc *Document, homePageID string, liveChildren int64) error {
	if homePageID != "" && doc.ID == homePageID {
		return ErrHomePageDelete
	}
	if liveChildren > 0 {
		return fmt.Errorf("%w: %d", ErrPageHasChildren, liveChildren)
	}

	return nil
}
