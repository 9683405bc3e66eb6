package fintrack

import (
	"testing"

	"github.com/etnz/fintrack/date"
	"github.com/etnz/fintrack/store"
)

// day is a helper for tests to create dates in January 2025.
func day(d int) date.Date { return date.New(2025, 1, d) }

// newTestBook returns a Book over an empty in-memory store, with the memory
// backend to inspect or break it.
func newTestBook(t *testing.T) (*Book, *store.Memory) {
	t.Helper()
	m := store.NewMemory()
	return NewBook(store.NewGateway(m)), m
}

// put writes a raw record into m.
func put(t *testing.T, m *store.Memory, key, value string) {
	t.Helper()
	if err := m.Write(key, []byte(value)); err != nil {
		t.Fatalf("Write(%q) error = %v", key, err)
	}
}
