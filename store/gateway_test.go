package store

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type entry struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

type ledger struct {
	ID      string  `json:"id"`
	Total   float64 `json:"total"`
	History []entry `json:"history"`
}

func TestGateway_RoundTrip(t *testing.T) {
	g := NewGateway(NewMemory())

	want := []ledger{
		{ID: "1", Total: 30.5, History: []entry{{"2025-01-02", 20}, {"2025-01-01", 10.5}}},
		{ID: "2", History: []entry{}},
	}
	if err := g.Save("piggybanks", want); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	var got []ledger
	if err := g.Load("piggybanks", &got); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestGateway_Absent(t *testing.T) {
	g := NewGateway(NewMemory())
	var got []ledger
	if err := g.Load("piggybanks", &got); !errors.Is(err, ErrNotFound) {
		t.Errorf("Load() error = %v, want ErrNotFound", err)
	}
}

func TestGateway_Malformed(t *testing.T) {
	m := NewMemory()
	m.Write("piggybanks", []byte(`{"total": 12`))
	g := NewGateway(m)
	var got []ledger
	if err := g.Load("piggybanks", &got); !errors.Is(err, ErrMalformed) {
		t.Errorf("Load() error = %v, want ErrMalformed", err)
	}
}

func TestGateway_Unavailable(t *testing.T) {
	m := NewMemory()
	m.Fail = errors.New("quota exceeded")
	g := NewGateway(m)
	if err := g.Save("debts", []ledger{}); err == nil {
		t.Errorf("Save() on a failing storage must return an error")
	}
}

func TestGateway_Query(t *testing.T) {
	g := NewGateway(NewMemory())
	g.Save("piggybanks", []ledger{
		{ID: "1", Total: 30, History: []entry{{"2025-01-02", 20}, {"2025-01-01", 10}}},
		{ID: "2", Total: 5},
	})

	testCases := []struct {
		path string
		want any
	}{
		{"$[0].total", 30.0},
		{"$[1].id", "2"},
		{"$[0].history[*].amount", []any{20.0, 10.0}},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			got, err := g.Query("piggybanks", tc.path)
			if err != nil {
				t.Fatalf("Query() error = %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Query() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
