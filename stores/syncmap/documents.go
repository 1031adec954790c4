package syncmap

import (
	"context"
	"document-manager/core"
	"sync"

	"github.com/sirupsen/logrus"
)

// documentStore keeps documents in a sync.Map. Each call is atomic per key only:
// a Search racing a Save may or may not see the new document.
type documentStore struct {
	documents sync.Map
	opts      core.StoreOptions
}

func NewDocumentStore(opts ...core.StoreOption) core.DocumentStore {
	return &documentStore{opts: core.NewStoreOptions(opts...)}
}

func (s *documentStore) Save(ctx context.Context, document core.Document) core.Document {
	log := logrus.WithContext(ctx).WithField("author_id", document.Author.ID)

	if document.ID != "" {
		if val, ok := s.documents.Load(document.ID); ok {
			saved := s.opts.Resolve(document, val.(core.Document), true)
			s.documents.Store(saved.ID, saved)
			log.WithField("document_id", saved.ID).Info("Document updated successfully")
			return saved
		}
	}

	for {
		saved := s.opts.Resolve(document, core.Document{}, false)
		if _, loaded := s.documents.LoadOrStore(saved.ID, saved); !loaded {
			log.WithField("document_id", saved.ID).Info("Document created successfully")
			return saved
		}
		log.WithField("document_id", saved.ID).Warn("Generated ID already taken, retrying")
	}
}

func (s *documentStore) Search(ctx context.Context, request core.SearchRequest) []core.Document {
	found := make([]core.Document, 0)
	scanned := 0
	s.documents.Range(func(_, val any) bool {
		scanned++
		if doc := val.(core.Document); request.Matches(doc) {
			found = append(found, doc)
		}
		return true
	})

	logrus.WithContext(ctx).WithFields(logrus.Fields{
		"scanned": scanned,
		"matched": len(found),
	}).Debug("Searched documents")
	return found
}

func (s *documentStore) FindByID(ctx context.Context, id string) (core.Document, bool) {
	log := logrus.WithContext(ctx).WithField("document_id", id)
	log.Debug("Retrieving document by ID")

	val, ok := s.documents.Load(id)
	if !ok {
		log.Warn("Document with specified ID not found")
		return core.Document{}, false
	}
	return val.(core.Document), true
}
