/*
Package seqdb provides an in-memory hash table of DNA-style records that grows
and shrinks without pausing on a single call.

A Record pairs a sequence string with a location ID. A Store keeps records in
an open-addressing table with quadratic probing and a prime capacity. When the
table gets too full, or too many slots hold tombstones, the store allocates a
new table and migrates records into it over the next few mutating calls.

Basic usage:

	import "github.com/theflywheel/seqdb"

	s, err := seqdb.New(101, nil) // nil selects DefaultHash
	if err != nil {
		log.Fatal(err)
	}

	r := seqdb.NewRecord("ACGTTGCA", 1234)
	if !s.Insert(r) {
		log.Fatal("insert rejected")
	}

	got := s.Find("ACGTTGCA", 1234)
	if got.IsOccupied() {
		fmt.Println("Found:", got)
	}

	s.Remove(r)

Features:

  - Fixed-schema records with explicit empty and tombstone states
  - Open addressing with quadratic probing over prime capacities
  - Injected hash function (xxHash by default)
  - Incremental rehash in four bounded steps
  - Configurable location range, capacity range and thresholds
  - Structured logging through slog and pluggable metrics observers

Implementation Details:

Every insert that pushes the load factor (written slots over capacity) above
0.5, and every remove that pushes the tombstone ratio above 0.8, starts a
rehash. The current table becomes the retiring table and a new table of
roughly four times the live record count becomes active. A quarter of the
records move immediately; each of the next three inserts or removes moves a
third, a half, and then all of what remains, after which the retiring table
is released. Lookups and removals consult both tables while a rehash is in
progress; inserts only write to the active table.

A Store is not safe for concurrent use. SyncStore wraps one with a mutex.
*/
package seqdb
