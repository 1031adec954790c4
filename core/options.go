package core

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type (
	StoreOptions struct {
		// PreserveCreated keeps the stored Created timestamp when an existing
		// document is saved again. Off by default: updates store the caller's
		// document verbatim, Created included.
		PreserveCreated bool
		Now             func() time.Time
		NewID           func() string
	}

	StoreOption func(*StoreOptions)
)

func WithPreserveCreated() StoreOption {
	return func(o *StoreOptions) { o.PreserveCreated = true }
}

func WithClock(now func() time.Time) StoreOption {
	return func(o *StoreOptions) { o.Now = now }
}

func WithIDGenerator(newID func() string) StoreOption {
	return func(o *StoreOptions) { o.NewID = newID }
}

func NewStoreOptions(opts ...StoreOption) StoreOptions {
	o := StoreOptions{
		Now:   time.Now,
		NewID: func() string { return ulid.Make().String() },
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Resolve returns the record Save should store for document, given the record
// currently stored under its ID (if any).
func (o StoreOptions) Resolve(document Document, existing Document, exists bool) Document {
	if !exists {
		return Document{
			ID:      o.NewID(),
			Title:   document.Title,
			Content: document.Content,
			Author:  document.Author,
			Created: o.Now(),
		}
	}
	if o.PreserveCreated {
		document.Created = existing.Created
	}
	return document
}
