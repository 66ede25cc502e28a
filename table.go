package seqdb

// table is a fixed-capacity open-addressing slot array.
type table struct {
	slots      []Record
	live       int // occupied + tombstoned slots
	tombstones int
	cursor     int // next slot a migration batch scans
}

func newTable(capacity int) *table {
	return &table{slots: make([]Record, capacity)}
}

func (t *table) capacity() int { return len(t.slots) }

func (t *table) occupied() int { return t.live - t.tombstones }

// probe walks the quadratic probe sequence for rec starting at h mod
// capacity. It returns the index of a matching slot with found set, or the
// index of the slot where the walk stopped: the first empty slot, or the first
// tombstone when stopAtTombstone is set. Tombstones are skipped otherwise.
//
// If the quadratic walk has not terminated after capacity steps, the same
// rules are applied on a linear sweep from the base index. -1 means no slot
// qualified at all.
func (t *table) probe(h uint64, rec Record, stopAtTombstone bool) (int, bool) {
	n := len(t.slots)
	if n == 0 {
		return -1, false
	}
	base := int(h % uint64(n))

	idx, step := base, 1
	for i := 0; i < n; i++ {
		if done, found := t.stopsAt(idx, rec, stopAtTombstone); done {
			return idx, found
		}
		idx = (idx + step) % n
		step = (step + 2) % n
	}

	for i := 0; i < n; i++ {
		idx = (base + i) % n
		if done, found := t.stopsAt(idx, rec, stopAtTombstone); done {
			return idx, found
		}
	}
	return -1, false
}

func (t *table) stopsAt(idx int, rec Record, stopAtTombstone bool) (done, found bool) {
	slot := t.slots[idx]
	switch {
	case slot == rec:
		return true, true
	case slot.IsEmpty():
		return true, false
	case slot.IsTombstone() && stopAtTombstone:
		return true, false
	}
	return false, false
}

// lookup finds rec, skipping tombstones. It returns -1 when rec is absent.
func (t *table) lookup(h uint64, rec Record) int {
	idx, found := t.probe(h, rec, false)
	if !found {
		return -1
	}
	return idx
}

// put writes rec at idx, keeping live and tombstones consistent with the
// state of the slot it replaces.
func (t *table) put(idx int, rec Record) {
	switch {
	case t.slots[idx].IsTombstone():
		t.tombstones--
	case t.slots[idx].IsEmpty():
		t.live++
	}
	t.slots[idx] = rec
}

// bury replaces the occupied record at idx with a tombstone.
func (t *table) bury(idx int) {
	t.slots[idx] = Tombstone()
	t.tombstones++
}
