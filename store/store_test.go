package store

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// backends returns a fresh instance of every backend.
func backends(t *testing.T) map[string]Backend {
	t.Helper()
	tmp := t.TempDir()

	dir, err := OpenDir(filepath.Join(tmp, "records"))
	if err != nil {
		t.Fatalf("OpenDir() error = %v", err)
	}
	db, err := OpenSQLite(filepath.Join(tmp, "records.db"))
	if err != nil {
		t.Fatalf("OpenSQLite() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return map[string]Backend{
		"dir":    dir,
		"sqlite": db,
		"memory": NewMemory(),
	}
}

func TestBackend_Contract(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			if _, err := b.Read("envelopes"); !errors.Is(err, ErrNotFound) {
				t.Fatalf("Read(never written) error = %v, want ErrNotFound", err)
			}
			if _, err := b.Read("envelopes"); !errors.Is(err, fs.ErrNotExist) {
				t.Fatalf("Read(never written) error = %v, want fs.ErrNotExist", err)
			}

			if err := b.Write("envelopes", []byte(`[1]`)); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if err := b.Write("envelopes", []byte(`[1,2]`)); err != nil {
				t.Fatalf("Write() error = %v", err)
			}
			if err := b.Write("debts", []byte(`[]`)); err != nil {
				t.Fatalf("Write() error = %v", err)
			}

			got, err := b.Read("envelopes")
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if string(got) != `[1,2]` {
				t.Errorf("Read() = %s, want the last written value [1,2]", got)
			}

			keys, err := b.Keys()
			if err != nil {
				t.Fatalf("Keys() error = %v", err)
			}
			if diff := cmp.Diff([]string{"debts", "envelopes"}, keys); diff != "" {
				t.Errorf("Keys() mismatch (-want +got):\n%s", diff)
			}

			if err := b.Delete("envelopes"); err != nil {
				t.Fatalf("Delete() error = %v", err)
			}
			if err := b.Delete("envelopes"); err != nil {
				t.Fatalf("Delete(absent) error = %v", err)
			}
			if _, err := b.Read("envelopes"); !errors.Is(err, ErrNotFound) {
				t.Errorf("Read(deleted) error = %v, want ErrNotFound", err)
			}
		})
	}
}

func TestBackend_InvalidKey(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			for _, key := range []string{"", "../escape", "a b", "x.json"} {
				if err := b.Write(key, []byte(`1`)); !errors.Is(err, ErrInvalidKey) {
					t.Errorf("Write(%q) error = %v, want ErrInvalidKey", key, err)
				}
			}
		})
	}
}

func TestDir_Reopen(t *testing.T) {
	folder := t.TempDir()
	d, err := OpenDir(folder)
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Write("currency", []byte(`"USD"`)); err != nil {
		t.Fatal(err)
	}

	// a second process sees the committed value, and no temporary file remains.
	d2, err := OpenDir(folder)
	if err != nil {
		t.Fatal(err)
	}
	got, err := d2.Read("currency")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != `"USD"` {
		t.Errorf("Read() = %s, want \"USD\"", got)
	}
	leftovers, _ := filepath.Glob(filepath.Join(folder, ".*.tmp"))
	if len(leftovers) != 0 {
		t.Errorf("temporary files left behind: %v", leftovers)
	}
}

func TestOpen(t *testing.T) {
	tmp := t.TempDir()
	testCases := []struct {
		location string
		want     string
		wantErr  bool
	}{
		{location: "memory:", want: "*store.Memory"},
		{location: "sqlite:" + filepath.Join(tmp, "ft.db"), want: "*store.SQLite"},
		{location: filepath.Join(tmp, "data"), want: "*store.Dir"},
		{location: "", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.location, func(t *testing.T) {
			b, err := Open(tc.location)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Open(%q) error = %v, wantErr %v", tc.location, err, tc.wantErr)
			}
			if err != nil {
				return
			}
			defer b.Close()
			var got string
			switch b.(type) {
			case *Memory:
				got = "*store.Memory"
			case *SQLite:
				got = "*store.SQLite"
			case *Dir:
				got = "*store.Dir"
			}
			if got != tc.want {
				t.Errorf("Open(%q) = %s, want %s", tc.location, got, tc.want)
			}
		})
	}
}
