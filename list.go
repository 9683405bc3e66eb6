package fintrack

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned when no record of a list has the requested id.
	ErrNotFound = errors.New("no such record")
	// ErrInvalidAmount is returned for amounts an operation cannot accept.
	ErrInvalidAmount = errors.New("invalid amount")
)

// NewID returns a fresh, time-ordered record id.
func NewID() string { return uuid.Must(uuid.NewV7()).String() }

// identified is implemented by every list record.
type identified interface {
	identity() string
}

// Find returns the record with id.
func Find[T identified](list []T, id string) (T, error) {
	i := slices.IndexFunc(list, func(r T) bool { return r.identity() == id })
	if i < 0 {
		var zero T
		return zero, fmt.Errorf("%w %q", ErrNotFound, id)
	}
	return list[i], nil
}

// Replace returns a copy of list where the record with the same id as r is replaced by r.
func Replace[T identified](list []T, r T) ([]T, error) {
	i := slices.IndexFunc(list, func(x T) bool { return x.identity() == r.identity() })
	if i < 0 {
		return list, fmt.Errorf("%w %q", ErrNotFound, r.identity())
	}
	list = slices.Clone(list)
	list[i] = r
	return list, nil
}

// Remove returns a copy of list without the record with id.
func Remove[T identified](list []T, id string) ([]T, error) {
	i := slices.IndexFunc(list, func(x T) bool { return x.identity() == id })
	if i < 0 {
		return list, fmt.Errorf("%w %q", ErrNotFound, id)
	}
	return slices.Delete(slices.Clone(list), i, i+1), nil
}
