package seqdb

import (
	"bufio"
	"fmt"
	"io"
)

// TableStats describes one slot table.
type TableStats struct {
	Capacity   int `json:"capacity"`
	Live       int `json:"live"`
	Tombstones int `json:"tombstones"`
	Occupied   int `json:"occupied"`
	Cursor     int `json:"cursor"`
}

// Stats is a snapshot of a store's tables and rehash phase.
type Stats struct {
	Phase          string      `json:"phase"`
	Len            int         `json:"len"`
	LoadFactor     float64     `json:"load_factor"`
	TombstoneRatio float64     `json:"tombstone_ratio"`
	Active         TableStats  `json:"active"`
	Retiring       *TableStats `json:"retiring,omitempty"`
}

func (t *table) stats() TableStats {
	return TableStats{
		Capacity:   t.capacity(),
		Live:       t.live,
		Tombstones: t.tombstones,
		Occupied:   t.occupied(),
		Cursor:     t.cursor,
	}
}

// Stats returns a snapshot of the store.
func (s *Store) Stats() Stats {
	st := Stats{
		Phase:          s.phase.String(),
		Len:            s.Len(),
		LoadFactor:     s.LoadFactor(),
		TombstoneRatio: s.TombstoneRatio(),
		Active:         s.active.stats(),
	}
	if s.retiring != nil {
		rs := s.retiring.stats()
		st.Retiring = &rs
	}
	return st
}

// Dump writes every slot of the active table and, during a rehash, of the
// retiring table, one "[index] : record" line per slot.
func (s *Store) Dump(w io.Writer) error {
	bw := bufio.NewWriter(w)
	dumpTable(bw, "active", s.active)
	if s.retiring != nil {
		dumpTable(bw, "retiring", s.retiring)
	}
	return bw.Flush()
}

func dumpTable(w *bufio.Writer, name string, t *table) {
	fmt.Fprintf(w, "Dump for %s table:\n", name)
	for i, rec := range t.slots {
		fmt.Fprintf(w, "[%d] : %s\n", i, rec)
	}
}
