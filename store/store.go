// Package store is the persistence gateway of the trackers.
//
// A store is a durable key/value space: every tracker owns one named slot
// ("bankAccounts", "piggybanks", ...) holding a single JSON value. Writes replace
// the whole value of a slot, there is no merge and no transaction across slots.
//
// Three backends are provided:
//   - Dir: one human readable <key>.json file per slot in a folder (default).
//   - SQLite: a single records table in a SQLite database file.
//   - Memory: a map, for tests and throw-away sessions.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
)

var (
	// ErrNotFound is returned when a slot has never been written.
	ErrNotFound = fmt.Errorf("record not found: %w", fs.ErrNotExist)
	// ErrMalformed is returned when a slot exists but does not decode into the expected shape.
	ErrMalformed = errors.New("malformed record")
	// ErrInvalidKey is returned for slot names that cannot be stored.
	ErrInvalidKey = errors.New("invalid key")
)

// Backend is the raw durable key/value space.
type Backend interface {
	// Read returns the value of a slot, or an error wrapping ErrNotFound.
	Read(key string) ([]byte, error)
	// Write replaces the value of a slot.
	Write(key string, data []byte) error
	// Delete removes a slot. Deleting an absent slot is not an error.
	Delete(key string) error
	// Keys lists the existing slots in alphabetical order.
	Keys() ([]string, error)
	// Close releases the backend resources.
	Close() error
}

var keyRE = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)

// checkKey validates a slot name.
func checkKey(key string) error {
	if !keyRE.MatchString(key) {
		return fmt.Errorf("%w %q: want letters, digits, '-' or '_'", ErrInvalidKey, key)
	}
	return nil
}

const (
	sqlitePrefix = "sqlite:"
	memoryPrefix = "memory:"
)

// Open opens the backend described by location:
//
//	sqlite:<file>   a SQLite database file
//	memory:         an in-memory store, lost on exit
//	<folder>        a folder of JSON files, created if needed
func Open(location string) (Backend, error) {
	switch {
	case strings.HasPrefix(location, sqlitePrefix):
		return OpenSQLite(strings.TrimPrefix(location, sqlitePrefix))
	case strings.HasPrefix(location, memoryPrefix):
		return NewMemory(), nil
	case location == "":
		return nil, errors.New("empty store location")
	default:
		return OpenDir(location)
	}
}
