package memory

import (
	"context"
	"document-manager/core"
	"sync"

	"github.com/sirupsen/logrus"
)

type documentStore struct {
	mu        sync.RWMutex
	documents map[string]core.Document
	opts      core.StoreOptions
}

func NewDocumentStore(opts ...core.StoreOption) core.DocumentStore {
	return &documentStore{
		documents: make(map[string]core.Document),
		opts:      core.NewStoreOptions(opts...),
	}
}

func (s *documentStore) Save(ctx context.Context, document core.Document) core.Document {
	s.mu.Lock()
	existing, ok := s.documents[document.ID]
	if document.ID == "" {
		ok = false
	}
	saved := s.opts.Resolve(document, existing, ok)
	s.documents[saved.ID] = saved
	s.mu.Unlock()

	log := logrus.WithContext(ctx).WithFields(logrus.Fields{
		"document_id": saved.ID,
		"author_id":   saved.Author.ID,
	})
	if ok {
		log.Info("Document updated successfully")
	} else {
		log.Info("Document created successfully")
	}
	return saved
}

func (s *documentStore) Search(ctx context.Context, request core.SearchRequest) []core.Document {
	s.mu.RLock()
	found := make([]core.Document, 0)
	for _, doc := range s.documents {
		if request.Matches(doc) {
			found = append(found, doc)
		}
	}
	total := len(s.documents)
	s.mu.RUnlock()

	logrus.WithContext(ctx).WithFields(logrus.Fields{
		"scanned": total,
		"matched": len(found),
	}).Debug("Searched documents")
	return found
}

func (s *documentStore) FindByID(ctx context.Context, id string) (core.Document, bool) {
	log := logrus.WithContext(ctx).WithField("document_id", id)
	log.Debug("Retrieving document by ID")

	s.mu.RLock()
	doc, ok := s.documents[id]
	s.mu.RUnlock()

	if !ok {
		log.Warn("Document with specified ID not found")
		return core.Document{}, false
	}
	return doc, true
}
