package store

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// Gateway reads and writes JSON records on top of a Backend.
type Gateway struct {
	backend Backend
}

// NewGateway returns a Gateway over b.
func NewGateway(b Backend) *Gateway { return &Gateway{backend: b} }

// Load decodes the record stored under key into v.
//
// It returns an error wrapping ErrNotFound when the slot was never written, so
// that callers can seed a default value, and an error wrapping ErrMalformed when
// the stored value does not decode into v.
func (g *Gateway) Load(key string, v any) error {
	data, err := g.backend.Read(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w %q: %w", ErrMalformed, key, err)
	}
	return nil
}

// Save encodes v and replaces the record stored under key.
func (g *Gateway) Save(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cannot encode %q: %w", key, err)
	}
	return g.backend.Write(key, data)
}

// Delete removes the record stored under key.
func (g *Gateway) Delete(key string) error { return g.backend.Delete(key) }

// Keys lists the stored records.
func (g *Gateway) Keys() ([]string, error) { return g.backend.Keys() }

// Raw returns the record stored under key as is.
func (g *Gateway) Raw(key string) ([]byte, error) { return g.backend.Read(key) }

// Query evaluates a JSONPath expression (e.g. "$[*].name") against the record
// stored under key and returns the selected value.
func (g *Gateway) Query(key, path string) (any, error) {
	data, err := g.backend.Read(key)
	if err != nil {
		return nil, err
	}
	var jobj any
	if err := json.Unmarshal(data, &jobj); err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrMalformed, key, err)
	}
	value, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("invalid path %q on %q: %w", path, key, err)
	}
	return value, nil
}

// Close closes the underlying backend.
func (g *Gateway) Close() error { return g.backend.Close() }
