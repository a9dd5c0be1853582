package queue

import (
	"context"
	"encoding/json"
	"time"
)

type EventKind string

const (
	PageSaved   EventKind = "page.saved"
	PageDeleted EventKind = "page.deleted"
)

// PageEvent announces a committed change to a page.
type PageEvent struct {
	Kind    EventKind `json:"kind"`
	PageID  string    `json:"pageId"`
	Slug    string    `json:"slug"`
	Version int64     `json:"version"`
	At      time.Time `json:"at"`
}

func NewPageEvent(kind EventKind, pageID, slug string, version int64) *PageEvent {
	return &PageEvent{
		Kind:    kind,
		PageID:  pageID,
		Slug:    slug,
		Version: version,
		At:      time.Now().UTC(),
	}
}

func (e *PageEvent) MarshalBinary() ([]byte, error) {
	return json.Marshal(e)
}

type PagePublisher interface {
	// Publish hands the event to the queue. It does not wait for delivery.
	Publish(ctx context.Context, event *PageEvent) error
	// Close flushes pending events and releases the publisher.
	Close()
}

var _ PagePublisher = NopPublisher{}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, *PageEvent) error {
	return nil
}

func (NopPublisher) Close() {}
