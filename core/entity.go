package core

import (
	"context"
	"time"
)

type (
	Author struct {
		ID   string
		Name string
	}

	// Document is a stored record. An empty ID means the store has not assigned one yet.
	Document struct {
		ID      string
		Title   string
		Content string
		Author  Author
		Created time.Time
	}

	// SearchRequest filters documents. A nil slice or nil time leaves that dimension
	// unconstrained; a non-nil empty slice matches nothing.
	SearchRequest struct {
		TitlePrefixes    []string
		ContainsContents []string
		AuthorIDs        []string
		CreatedFrom      *time.Time
		CreatedTo        *time.Time
	}

	DocumentStore interface {
		Save(ctx context.Context, document Document) Document
		Search(ctx context.Context, request SearchRequest) []Document
		FindByID(ctx context.Context, id string) (Document, bool)
	}
)
