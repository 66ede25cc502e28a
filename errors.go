package seqdb

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLocation is returned when a record's location lies outside
	// the store's location range, or the record is a sentinel.
	ErrInvalidLocation = errors.New("location out of range")

	// ErrDuplicate is returned when inserting a record that is already present.
	ErrDuplicate = errors.New("record already present")

	// ErrNotFound is returned when removing a record that is not present.
	ErrNotFound = errors.New("record not found")

	// ErrTableFull is returned when no slot can accept a new record. It only
	// occurs once the capacity has been clamped to its configured maximum.
	ErrTableFull = errors.New("hash table full")

	// ErrInvalidConfig is the base error for rejected options.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ConfigError describes an option value rejected by New.
//
// errors.Is(err, ErrInvalidConfig) holds for every ConfigError.
type ConfigError struct {
	Field string
	Value any
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s = %v", e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }
