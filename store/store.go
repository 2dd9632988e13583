package store

import (
	"sync"

	"github.com/ariebrainware/health-tracker/model"
)

// RecordStore holds the patient records accepted during the current session.
// It is append-only: records are never edited or individually removed, only
// cleared as a whole when the session resets. Every record in the store has
// passed validation at insertion time.
type RecordStore struct {
	mu      sync.Mutex
	records []model.PatientRecord
}

// NewRecordStore returns an empty record store.
func NewRecordStore() *RecordStore {
	return &RecordStore{}
}

// Add appends a record to the store.
func (s *RecordStore) Add(r model.PatientRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, r)
}

// List returns a snapshot copy of the stored records in insertion order.
// Mutating the returned slice does not affect the store.
func (s *RecordStore) List() []model.PatientRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]model.PatientRecord, len(s.records))
	copy(snapshot, s.records)
	return snapshot
}

// Len returns the number of stored records.
func (s *RecordStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// Clear removes all records.
func (s *RecordStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
}
