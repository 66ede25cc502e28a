package seqdb

// Phase is the progress of an incremental rehash.
type Phase uint8

const (
	// PhaseIdle means no rehash is in progress and there is no retiring table.
	PhaseIdle Phase = iota
	// PhaseQuarter follows the batch that moved a quarter of the records.
	PhaseQuarter
	// PhaseHalf follows the batch that moved a third of what remained.
	PhaseHalf
	// PhaseThreeQuarter follows the batch that moved half of what remained.
	PhaseThreeQuarter
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseQuarter:
		return "quarter"
	case PhaseHalf:
		return "half"
	case PhaseThreeQuarter:
		return "three-quarter"
	default:
		return "unknown"
	}
}

func ceilDiv(a, b int) int { return (a + b - 1) / b }

// afterInsert starts a rehash when the load factor crosses the grow
// threshold, or advances one already in progress.
func (s *Store) afterInsert() {
	if s.phase != PhaseIdle {
		s.stepRehash()
		return
	}
	if s.LoadFactor() > s.opts.growThreshold {
		s.startRehash()
	}
}

// afterRemove is the remove-side counterpart of afterInsert.
func (s *Store) afterRemove() {
	if s.phase != PhaseIdle {
		s.stepRehash()
		return
	}
	if s.TombstoneRatio() > s.opts.tombstoneThreshold {
		s.startRehash()
	}
}

// startRehash retires the active table, allocates a table sized for about a
// quarter load and moves the first quarter of the records.
func (s *Store) startRehash() {
	old := s.active
	liveToMove := old.occupied()
	toCap := s.opts.sizer.next(4 * liveToMove)

	old.cursor = 0
	s.retiring = old
	s.active = newTable(toCap)

	s.opts.logger.LogRehashStart(old.capacity(), toCap, liveToMove)
	s.opts.observer.OnRehashStart(old.capacity(), toCap)

	moved := s.migrate(ceilDiv(liveToMove, 4))
	s.phase = PhaseQuarter
	s.opts.logger.LogRehashStep(s.phase, moved, s.retiring.occupied())
	s.opts.observer.OnRehashStep(s.phase, moved)
}

// stepRehash moves the next batch. The quotas 1/3, 1/2 and all of the
// remainder empty the retiring table by the third step.
func (s *Store) stepRehash() {
	remaining := s.retiring.occupied()

	var quota int
	var next Phase
	switch s.phase {
	case PhaseQuarter:
		quota, next = ceilDiv(remaining, 3), PhaseHalf
	case PhaseHalf:
		quota, next = ceilDiv(remaining, 2), PhaseThreeQuarter
	default:
		quota, next = remaining, PhaseIdle
	}

	moved := s.migrate(quota)
	s.phase = next
	s.opts.logger.LogRehashStep(next, moved, s.retiring.occupied())
	s.opts.observer.OnRehashStep(next, moved)

	if next == PhaseIdle {
		s.retiring = nil
		s.opts.logger.LogRehashDone(s.active.capacity(), s.active.live)
		s.opts.observer.OnRehashDone(s.active.capacity())
	}
}

// migrate moves up to n occupied records from the retiring table into the
// active one, resuming at the retiring table's cursor.
func (s *Store) migrate(n int) int {
	from, to := s.retiring, s.active
	moved := 0
	for moved < n && from.cursor < from.capacity() {
		rec := from.slots[from.cursor]
		if rec.IsOccupied() {
			idx, _ := to.probe(s.hash(rec.Sequence), rec, false)
			if idx < 0 {
				panic("seqdb: no free slot while migrating; capacity bounds too small for record count")
			}
			to.put(idx, rec)
			from.bury(from.cursor)
			moved++
		}
		from.cursor++
	}
	return moved
}
