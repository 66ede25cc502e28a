package seqdb

import (
	"io"
	"sync"
)

// SyncStore guards a Store with a read/write mutex so it can be shared
// between goroutines.
type SyncStore struct {
	mu sync.RWMutex
	s  *Store
}

// NewSync wraps s. The caller must not use s directly afterwards.
func NewSync(s *Store) *SyncStore {
	return &SyncStore{s: s}
}

// Insert adds r under the write lock.
func (ss *SyncStore) Insert(r Record) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Insert(r)
}

// TryInsert adds r under the write lock.
func (ss *SyncStore) TryInsert(r Record) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.TryInsert(r)
}

// Remove deletes r under the write lock.
func (ss *SyncStore) Remove(r Record) bool {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.Remove(r)
}

// TryRemove deletes r under the write lock.
func (ss *SyncStore) TryRemove(r Record) error {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	return ss.s.TryRemove(r)
}

// Find looks up a record under the read lock.
func (ss *SyncStore) Find(sequence string, location int) Record {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.s.Find(sequence, location)
}

// LoadFactor returns the active table's load factor.
func (ss *SyncStore) LoadFactor() float64 {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.s.LoadFactor()
}

// TombstoneRatio returns the active table's tombstone ratio.
func (ss *SyncStore) TombstoneRatio() float64 {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.s.TombstoneRatio()
}

// Len returns the number of records present.
func (ss *SyncStore) Len() int {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.s.Len()
}

// Stats returns a snapshot of the store.
func (ss *SyncStore) Stats() Stats {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.s.Stats()
}

// Dump writes the slot listing under the read lock.
func (ss *SyncStore) Dump(w io.Writer) error {
	ss.mu.RLock()
	defer ss.mu.RUnlock()
	return ss.s.Dump(w)
}
