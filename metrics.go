package seqdb

import "sync/atomic"

// MetricsObserver receives operational events from a Store.
// Implement this interface to integrate with monitoring systems; see the
// promobserver package for a Prometheus adapter.
type MetricsObserver interface {
	// OnInsert is called after each insert. err is nil on success.
	OnInsert(err error)

	// OnRemove is called after each remove. err is nil on success.
	OnRemove(err error)

	// OnFind is called after each find.
	OnFind(found bool)

	// OnRehashStart is called when a new active table is allocated.
	OnRehashStart(fromCap, toCap int)

	// OnRehashStep is called after each migration batch with the phase the
	// engine advanced to and the number of records moved.
	OnRehashStep(phase Phase, moved int)

	// OnRehashDone is called when the retiring table is released.
	OnRehashDone(capacity int)
}

// NoopMetricsObserver discards every event.
type NoopMetricsObserver struct{}

func (NoopMetricsObserver) OnInsert(error)          {}
func (NoopMetricsObserver) OnRemove(error)          {}
func (NoopMetricsObserver) OnFind(bool)             {}
func (NoopMetricsObserver) OnRehashStart(int, int)  {}
func (NoopMetricsObserver) OnRehashStep(Phase, int) {}
func (NoopMetricsObserver) OnRehashDone(int)        {}

// BasicMetricsObserver counts events in memory.
type BasicMetricsObserver struct {
	Inserts        atomic.Int64
	InsertRejects  atomic.Int64
	Removes        atomic.Int64
	RemoveRejects  atomic.Int64
	Finds          atomic.Int64
	FindMisses     atomic.Int64
	RehashStarts   atomic.Int64
	RehashSteps    atomic.Int64
	RehashDone     atomic.Int64
	RecordsMoved   atomic.Int64
	ActiveCapacity atomic.Int64
}

// OnInsert implements MetricsObserver.
func (b *BasicMetricsObserver) OnInsert(err error) {
	if err != nil {
		b.InsertRejects.Add(1)
		return
	}
	b.Inserts.Add(1)
}

// OnRemove implements MetricsObserver.
func (b *BasicMetricsObserver) OnRemove(err error) {
	if err != nil {
		b.RemoveRejects.Add(1)
		return
	}
	b.Removes.Add(1)
}

// OnFind implements MetricsObserver.
func (b *BasicMetricsObserver) OnFind(found bool) {
	b.Finds.Add(1)
	if !found {
		b.FindMisses.Add(1)
	}
}

// OnRehashStart implements MetricsObserver.
func (b *BasicMetricsObserver) OnRehashStart(_, toCap int) {
	b.RehashStarts.Add(1)
	b.ActiveCapacity.Store(int64(toCap))
}

// OnRehashStep implements MetricsObserver.
func (b *BasicMetricsObserver) OnRehashStep(_ Phase, moved int) {
	b.RehashSteps.Add(1)
	b.RecordsMoved.Add(int64(moved))
}

// OnRehashDone implements MetricsObserver.
func (b *BasicMetricsObserver) OnRehashDone(capacity int) {
	b.RehashDone.Add(1)
	b.ActiveCapacity.Store(int64(capacity))
}

// Snapshot returns a point-in-time copy of the counters.
func (b *BasicMetricsObserver) Snapshot() BasicMetricsStats {
	return BasicMetricsStats{
		Inserts:        b.Inserts.Load(),
		InsertRejects:  b.InsertRejects.Load(),
		Removes:        b.Removes.Load(),
		RemoveRejects:  b.RemoveRejects.Load(),
		Finds:          b.Finds.Load(),
		FindMisses:     b.FindMisses.Load(),
		RehashStarts:   b.RehashStarts.Load(),
		RehashSteps:    b.RehashSteps.Load(),
		RehashDone:     b.RehashDone.Load(),
		RecordsMoved:   b.RecordsMoved.Load(),
		ActiveCapacity: b.ActiveCapacity.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsObserver state.
type BasicMetricsStats struct {
	Inserts        int64 `json:"inserts"`
	InsertRejects  int64 `json:"insert_rejects"`
	Removes        int64 `json:"removes"`
	RemoveRejects  int64 `json:"remove_rejects"`
	Finds          int64 `json:"finds"`
	FindMisses     int64 `json:"find_misses"`
	RehashStarts   int64 `json:"rehash_starts"`
	RehashSteps    int64 `json:"rehash_steps"`
	RehashDone     int64 `json:"rehash_done"`
	RecordsMoved   int64 `json:"records_moved"`
	ActiveCapacity int64 `json:"active_capacity"`
}
