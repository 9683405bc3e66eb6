package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

const recordExt = ".json"

// Dir stores every slot as <key>.json in a folder.
//
// The files are plain JSON so that the folder can be read, diffed and versioned
// with usual tools.
type Dir struct {
	folder string
}

// OpenDir opens a folder backend, creating the folder if it does not exist.
func OpenDir(folder string) (*Dir, error) {
	if err := os.MkdirAll(folder, 0755); err != nil {
		return nil, fmt.Errorf("cannot create store folder %q: %w", folder, err)
	}
	return &Dir{folder: folder}, nil
}

func (d *Dir) filename(key string) string { return filepath.Join(d.folder, key+recordExt) }

func (d *Dir) Read(key string) ([]byte, error) {
	if err := checkKey(key); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(d.filename(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", key, err)
	}
	return data, nil
}

// Write replaces the slot atomically: the value is written to a temporary file
// in the same folder, then renamed over the previous one.
func (d *Dir) Write(key string, data []byte) error {
	if err := checkKey(key); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(d.folder, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("cannot write %q: %w", key, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("cannot write %q: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("cannot write %q: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), d.filename(key)); err != nil {
		return fmt.Errorf("cannot commit %q: %w", key, err)
	}
	return nil
}

func (d *Dir) Delete(key string) error {
	if err := checkKey(key); err != nil {
		return err
	}
	err := os.Remove(d.filename(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("cannot delete %q: %w", key, err)
	}
	return nil
}

func (d *Dir) Keys() ([]string, error) {
	filenames, err := filepath.Glob(filepath.Join(d.folder, "*"+recordExt))
	if err != nil {
		return nil, fmt.Errorf("cannot scan store folder %q: %w", d.folder, err)
	}
	keys := make([]string, 0, len(filenames))
	for _, f := range filenames {
		key := strings.TrimSuffix(filepath.Base(f), recordExt)
		if checkKey(key) == nil {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (d *Dir) Close() error { return nil }
