package page

import (
	"context"
	"fmt"
	"strings"
)

// SlugChecker reports whether a slug is used by a live page other than excludeID.
type SlugChecker interface {
	SlugTaken(ctx context.Context, slug, excludeID string) (bool, error)
}

// DeriveSlug lowercases s, collapses every run of characters outside [a-z0-9]
// into a single hyphen and trims hyphens from both ends.
func DeriveSlug(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	pending := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pending && b.Len() > 0 {
				b.WriteByte('-')
			}
			pending = false
			b.WriteRune(r)
			continue
		}
		pending = true
	}

	return b.String()
}

// SetSlug normalizes candidate and assigns it when no other live page uses it.
// Setting a page's own current slug never conflicts.
func (d *Document) SetSlug(ctx context.Context, candidate string, checker SlugChecker) error {
	slug := DeriveSlug(candidate)
	if slug == "" {
		return fmt.Errorf("%w: %q", ErrInvalidSlug, candidate)
	}

	taken, err := checker.SlugTaken(ctx, slug, d.ID)
	if err != nil {
		return err
	}
	if taken {
		return fmt.Errorf("%w: %s", ErrSlugConflict, slug)
	}

	d.Slug = slug
	return nil
}
