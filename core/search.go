package core

import (
	"slices"
	"strings"
	"time"
)

// Matches reports whether doc satisfies every constrained dimension of the request.
func (r SearchRequest) Matches(doc Document) bool {
	if r.TitlePrefixes != nil && !slices.ContainsFunc(r.TitlePrefixes, func(p string) bool {
		return strings.HasPrefix(doc.Title, p)
	}) {
		return false
	}
	if r.ContainsContents != nil && !slices.ContainsFunc(r.ContainsContents, func(s string) bool {
		return strings.Contains(doc.Content, s)
	}) {
		return false
	}
	if r.AuthorIDs != nil && !slices.Contains(r.AuthorIDs, doc.Author.ID) {
		return false
	}
	if r.CreatedFrom != nil && doc.Created.Before(*r.CreatedFrom) {
		return false
	}
	if r.CreatedTo != nil && doc.Created.After(*r.CreatedTo) {
		return false
	}
	return true
}

// Between returns a copy of the request bounded to [from, to], both inclusive.
func (r SearchRequest) Between(from, to time.Time) SearchRequest {
	r.CreatedFrom = From(from)
	r.CreatedTo = To(to)
	return r
}

func From(t time.Time) *time.Time { return &t }

func To(t time.Time) *time.Time { return &t }
