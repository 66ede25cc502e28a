package seqdb

// Store is an in-memory hash table of records using quadratic probing and an
// incremental rehash spread over up to four mutating calls.
//
// A Store is not safe for concurrent use; wrap it in a SyncStore or guard it
// with a single lock.
type Store struct {
	hash     HashFunc
	opts     options
	active   *table
	retiring *table // non-nil only while phase != PhaseIdle
	phase    Phase
}

// New creates a store whose initial capacity is capacityHint clamped into the
// configured capacity range and rounded up to a prime. A nil hash selects
// DefaultHash. New only fails on invalid options.
func New(capacityHint int, hash HashFunc, opts ...Option) (*Store, error) {
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	if hash == nil {
		hash = DefaultHash
	}

	return &Store{
		hash:   hash,
		opts:   o,
		active: newTable(o.sizer.clamp(capacityHint)),
	}, nil
}

// Insert adds r and reports whether it was added. See TryInsert for the
// rejection reasons.
func (s *Store) Insert(r Record) bool {
	return s.TryInsert(r) == nil
}

// TryInsert adds r. It returns ErrInvalidLocation, ErrDuplicate or
// ErrTableFull without changing the store when r cannot be added.
func (s *Store) TryInsert(r Record) error {
	err := s.insert(r)
	s.opts.observer.OnInsert(err)
	return err
}

func (s *Store) insert(r Record) error {
	if !r.IsOccupied() || !s.opts.locations.Contains(r.Location) {
		return ErrInvalidLocation
	}

	h := s.hash(r.Sequence)
	if s.active.lookup(h, r) >= 0 {
		return ErrDuplicate
	}
	if s.retiring != nil {
		if s.retiring.lookup(h, r) >= 0 {
			return ErrDuplicate
		}
		// Keep an empty slot in reserve for every record still to migrate.
		if s.active.live+s.retiring.occupied() >= s.active.capacity() {
			return ErrTableFull
		}
	}

	idx, _ := s.active.probe(h, r, true)
	if idx < 0 {
		return ErrTableFull
	}
	s.active.put(idx, r)
	s.afterInsert()
	return nil
}

// Remove deletes r from whichever table holds it and reports whether it was
// present.
func (s *Store) Remove(r Record) bool {
	return s.TryRemove(r) == nil
}

// TryRemove deletes r. It returns ErrInvalidLocation or ErrNotFound without
// changing the store when r cannot be removed.
func (s *Store) TryRemove(r Record) error {
	err := s.remove(r)
	s.opts.observer.OnRemove(err)
	return err
}

func (s *Store) remove(r Record) error {
	if !r.IsOccupied() || !s.opts.locations.Contains(r.Location) {
		return ErrInvalidLocation
	}

	h := s.hash(r.Sequence)
	if idx := s.active.lookup(h, r); idx >= 0 {
		s.active.bury(idx)
	} else if s.retiring == nil {
		return ErrNotFound
	} else if idx := s.retiring.lookup(h, r); idx >= 0 {
		s.retiring.bury(idx)
	} else {
		return ErrNotFound
	}

	s.afterRemove()
	return nil
}

// Find returns the stored record matching sequence and location, or the
// empty sentinel. It never changes the store or advances a rehash.
func (s *Store) Find(sequence string, location int) Record {
	rec := s.find(sequence, location)
	s.opts.observer.OnFind(rec.IsOccupied())
	return rec
}

func (s *Store) find(sequence string, location int) Record {
	target := s.opts.locations.Record(sequence, location)
	if !target.IsOccupied() {
		return Empty()
	}

	h := s.hash(sequence)
	if idx := s.active.lookup(h, target); idx >= 0 {
		return s.active.slots[idx]
	}
	if s.retiring == nil {
		return Empty()
	}
	if idx := s.retiring.lookup(h, target); idx >= 0 {
		return s.retiring.slots[idx]
	}
	return Empty()
}

// LoadFactor returns the share of active slots that have been written,
// tombstones included.
func (s *Store) LoadFactor() float64 {
	if s.active.capacity() == 0 {
		return 1
	}
	return float64(s.active.live) / float64(s.active.capacity())
}

// TombstoneRatio returns the share of written active slots that hold a
// tombstone.
func (s *Store) TombstoneRatio() float64 {
	if s.active.live == 0 {
		return 1
	}
	return float64(s.active.tombstones) / float64(s.active.live)
}

// Len returns the number of records present across both tables.
func (s *Store) Len() int {
	n := s.active.occupied()
	if s.retiring != nil {
		n += s.retiring.occupied()
	}
	return n
}

// Capacity returns the capacity of the active table.
func (s *Store) Capacity() int { return s.active.capacity() }

// Phase returns the current rehash phase.
func (s *Store) Phase() Phase { return s.phase }

// Rehashing reports whether a retiring table is still being drained.
func (s *Store) Rehashing() bool { return s.retiring != nil }

// Locations returns the accepted location range.
func (s *Store) Locations() LocationRange { return s.opts.locations }
