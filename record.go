package seqdb

import "strconv"

type slotState uint8

const (
	stateEmpty slotState = iota
	stateOccupied
	stateTombstone
)

// Record is a sequence string paired with a location ID.
//
// The zero value is the empty sentinel. Records are comparable, so == and
// Equal agree.
type Record struct {
	Sequence string
	Location int
	state    slotState
}

// Empty returns the sentinel for a slot that was never written.
func Empty() Record { return Record{} }

// Tombstone returns the sentinel left behind when a record is removed.
func Tombstone() Record { return Record{state: stateTombstone} }

// NewRecord builds a record using DefaultLocations.
func NewRecord(sequence string, location int) Record {
	return DefaultLocations.Record(sequence, location)
}

// IsEmpty reports whether r is the empty sentinel.
func (r Record) IsEmpty() bool { return r.state == stateEmpty }

// IsTombstone reports whether r is the tombstone sentinel.
func (r Record) IsTombstone() bool { return r.state == stateTombstone }

// IsOccupied reports whether r carries a real sequence and location.
func (r Record) IsOccupied() bool { return r.state == stateOccupied }

// Equal reports structural equality.
func (r Record) Equal(other Record) bool { return r == other }

// String renders "sequence (Location ID n)". The empty sentinel renders as
// the empty string.
func (r Record) String() string {
	switch r.state {
	case stateOccupied:
		return r.Sequence + " (Location ID " + strconv.Itoa(r.Location) + ")"
	case stateTombstone:
		return "DELETED"
	default:
		return ""
	}
}

// LocationRange is an inclusive range of accepted location IDs.
type LocationRange struct {
	Min int
	Max int
}

// DefaultLocations is the location range used when none is configured.
var DefaultLocations = LocationRange{Min: 1000, Max: 9999}

// Contains reports whether loc lies within the range.
func (lr LocationRange) Contains(loc int) bool {
	return loc >= lr.Min && loc <= lr.Max
}

// Record builds an occupied record when location is in range. Any other
// location yields the empty sentinel; no error is reported.
func (lr LocationRange) Record(sequence string, location int) Record {
	if !lr.Contains(location) {
		return Empty()
	}
	return Record{Sequence: sequence, Location: location, state: stateOccupied}
}

func (lr LocationRange) valid() bool {
	return lr.Min >= 1 && lr.Min <= lr.Max
}
