package store

import (
	"fmt"
	"slices"
	"sort"
)

// Memory is a volatile backend.
type Memory struct {
	content map[string][]byte
	// Fail, when set, is returned by every Write. It simulates an unavailable storage.
	Fail error
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *Memory { return &Memory{content: make(map[string][]byte)} }

func (m *Memory) Read(key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	data, ok := m.content[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	return slices.Clone(data), nil
}

func (m *Memory) Write(key string, data []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	if m.Fail != nil {
		return fmt.Errorf("cannot write %q: %w", key, m.Fail)
	}
	m.content[key] = slices.Clone(data)
	return nil
}

func (m *Memory) Delete(key string) error {
	delete(m.content, key)
	return nil
}

func (m *Memory) Keys() ([]string, error) {
	keys := make([]string, 0, len(m.content))
	for k := range m.content {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

func (m *Memory) Close() error { return nil }
