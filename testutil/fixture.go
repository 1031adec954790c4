// Package testutil holds fixtures and a conformance suite shared by the store backends.
package testutil

import (
	"document-manager/core"
	"time"

	"github.com/google/uuid"
)

func BuildAuthor() core.Author {
	return core.Author{
		ID:   uuid.NewString(),
		Name: randomString(10),
	}
}

// BuildDocument returns a document carrying an id no store has issued.
func BuildDocument() core.Document {
	return core.Document{
		ID:      uuid.NewString(),
		Title:   randomString(10),
		Content: randomString(50),
		Author:  BuildAuthor(),
		Created: time.Now(),
	}
}

// BuildSearchRequest returns a request with every filter set to random values.
func BuildSearchRequest() core.SearchRequest {
	now := time.Now()
	return core.SearchRequest{
		TitlePrefixes:    []string{randomString(3), randomString(3)},
		ContainsContents: []string{randomString(5), randomString(5)},
		AuthorIDs:        []string{uuid.NewString(), uuid.NewString(), uuid.NewString()},
		CreatedFrom:      core.From(now),
		CreatedTo:        core.To(now),
	}
}

func randomString(n int) string {
	s := ""
	for len(s) < n {
		s += uuid.NewString()
	}
	return s[:n]
}
