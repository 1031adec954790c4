package memory

import (
	"document-manager/core"
	"document-manager/testutil"
	"testing"
)

func TestDocumentStore(t *testing.T) {
	testutil.RunStoreSuite(t, func(opts ...core.StoreOption) core.DocumentStore {
		return NewDocumentStore(opts...)
	})
}
