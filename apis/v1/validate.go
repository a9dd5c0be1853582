package v1

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError names the request field that failed.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func required(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Reason: "value is required"}
	}
	return nil
}

func validVersion(version *int64) error {
	if version != nil && *version < OverwriteVersion {
		return &ValidationError{Field: "version", Reason: "must be -1 or a page version"}
	}
	return nil
}

func validComponents(components []*ComponentInstance) error {
	for i, c := range components {
		if c == nil {
			return &ValidationError{Field: fmt.Sprintf("components[%d]", i), Reason: "value is required"}
		}
		if err := required(fmt.Sprintf("components[%d].typeId", i), c.TypeId); err != nil {
			return err
		}
	}
	return nil
}

func (r *CreatePageRequest) Validate() error {
	return errors.Join(required("title", r.Title), validComponents(r.Components))
}

func (r *GetPageRequest) Validate() error {
	return required("id", r.Id)
}

func (r *GetPageBySlugRequest) Validate() error {
	return required("slug", r.Slug)
}

func (r *ListPagesRequest) Validate() error {
	if r.RootsOnly && r.ParentId != "" {
		return &ValidationError{Field: "parentId", Reason: "cannot be combined with rootsOnly"}
	}
	return nil
}

func (r *UpdatePageRequest) Validate() error {
	if r.Version == nil {
		return &ValidationError{Field: "version", Reason: "value is required, use -1 to overwrite"}
	}
	return errors.Join(
		required("id", r.Id),
		required("title", r.Title),
		validVersion(r.Version),
		validComponents(r.Components),
	)
}

func (r *DeletePageRequest) Validate() error {
	return errors.Join(required("id", r.Id), validVersion(r.Version))
}

func (r *AddComponentRequest) Validate() error {
	return errors.Join(required("pageId", r.PageId), required("typeId", r.TypeId), validVersion(r.Version))
}

func (r *RemoveComponentRequest) Validate() error {
	return errors.Join(required("pageId", r.PageId), required("instanceId", r.InstanceId), validVersion(r.Version))
}

func (r *ReorderComponentsRequest) Validate() error {
	return errors.Join(required("pageId", r.PageId), validVersion(r.Version))
}

func (r *SetComponentPropertiesRequest) Validate() error {
	return errors.Join(required("pageId", r.PageId), required("instanceId", r.InstanceId), validVersion(r.Version))
}

func (r *SetSlugRequest) Validate() error {
	return errors.Join(required("pageId", r.PageId), required("slug", r.Slug), validVersion(r.Version))
}

func (r *CheckSlugRequest) Validate() error {
	return required("slug", r.Slug)
}

func (r *SetParentRequest) Validate() error {
	return errors.Join(required("pageId", r.PageId), validVersion(r.Version))
}

func (r *ListPageRevisionsRequest) Validate() error {
	return required("pageId", r.PageId)
}

func (r *GetComponentTypeRequest) Validate() error {
	return required("typeId", r.TypeId)
}

func (r *UpdateSiteThemeRequest) Validate() error {
	if r.Theme == nil {
		return &ValidationError{Field: "theme", Reason: "value is required"}
	}
	return nil
}
