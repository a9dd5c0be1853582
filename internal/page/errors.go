package page

import "errors"

var (
	// ErrUnknownComponentType is returned when an authoring operation names a type absent from the registry.
	ErrUnknownComponentType = errors.New("unknown component type")
	// ErrComponentNotFound is returned when an instance id is not part of the page.
	ErrComponentNotFound = errors.New("component not found")
	// ErrInvalidReorder is returned when a reorder request does not match the page's components.
	ErrInvalidReorder = errors.New("reorder ids do not match the page components")
	// ErrInvalidDocument is returned when a saved document has missing or duplicate instance ids.
	ErrInvalidDocument = errors.New("invalid page document")
	// ErrInvalidSlug is returned when a slug normalizes to nothing.
	ErrInvalidSlug = errors.New("invalid slug")
	// ErrSlugConflict is returned when a slug is used by another page.
	ErrSlugConflict = errors.New("slug is already used by another page")
	// ErrPageNotFound is returned when no live page matches an id or slug.
	ErrPageNotFound = errors.New("page not found")
	// ErrStaleWrite is returned when a save carries an outdated version.
	ErrStaleWrite = errors.New("page was changed by someone else, reload and retry")
	// ErrHomePageDelete is returned when deleting the selected home page.
	ErrHomePageDelete = errors.New("the home page cannot be deleted")
	// ErrPageHasChildren is returned when deleting a page that still has live children.
	ErrPageHasChildren = errors.New("page has child pages")
	// ErrInvalidParent is returned when a parent reference would create a cycle.
	ErrInvalidParent = errors.New("invalid parent page")
)
