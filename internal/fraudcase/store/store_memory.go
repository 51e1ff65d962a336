package store

import (
	"context"
	"errors"
	"sync"

	"casebridge/internal/fraudcase/models"
)

// InMemoryStore keeps records in a map. Used for development and tests.
type InMemoryStore struct {
	mu      sync.RWMutex
	records map[string]*models.CaseRecord
}

func NewInMemory() *InMemoryStore {
	return &InMemoryStore{records: make(map[string]*models.CaseRecord)}
}

func (s *InMemoryStore) Save(_ context.Context, record *models.CaseRecord) error {
	if record == nil {
		return errors.New("case record is required")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.ID] = cloneRecord(record)
	return nil
}

func (s *InMemoryStore) FindByID(_ context.Context, orderID string) (*models.CaseRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.records[orderID]
	if !ok {
		return nil, notFound(orderID)
	}
	return cloneRecord(r), nil
}

// Len reports the number of stored records.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
