// Package memory keeps loaded documents in process memory. Documents
// are immutable once saved; the store hands out copies so callers can
// never mutate registered state.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/studypdf/studypdf/internal/core/domain"
)

type DocumentStore struct {
	mu   sync.RWMutex
	docs map[string]*domain.Document
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]*domain.Document)}
}

func (s *DocumentStore) Save(ctx context.Context, doc *domain.Document) error {
	if doc == nil {
		return domain.WrapError(domain.ErrInvalidDocument, "save document", errors.New("document is nil"))
	}
	if doc.ID == "" {
		return domain.WrapError(domain.ErrInvalidDocument, "save document", errors.New("document id is empty"))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[doc.ID] = copyDocument(doc)
	return nil
}

func (s *DocumentStore) GetByID(ctx context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.docs[id]
	if !ok {
		return nil, domain.WrapError(domain.ErrDocumentNotFound, "get document", fmt.Errorf("no document with id %q", id))
	}
	return copyDocument(doc), nil
}

func (s *DocumentStore) List(ctx context.Context) ([]*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Document, 0, len(s.docs))
	for _, doc := range s.docs {
		out = append(out, copyDocument(doc))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func copyDocument(doc *domain.Document) *domain.Document {
	dup := *doc
	dup.Pages = make([]domain.Page, len(doc.Pages))
	copy(dup.Pages, doc.Pages)
	return &dup
}
