package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/stakemap/stakemap/pkg/stakemap"
)

// mapsFile is the fixed document name inside the data directory.
const mapsFile = "maps.json"

// FileBackend persists the collection as a single JSON document in a data
// directory. This is the default backend for CLI use.
type FileBackend struct {
	mu   sync.RWMutex
	path string
}

// NewFileBackend creates a file backend rooted at baseDir.
// If baseDir is empty, it defaults to ~/.local/share/stakemap/.
func NewFileBackend(baseDir string) (*FileBackend, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("get home dir: %w", err)
		}
		baseDir = filepath.Join(home, ".local", "share", "stakemap")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileBackend{path: filepath.Join(baseDir, mapsFile)}, nil
}

// Load reads and decodes the collection document.
func (b *FileBackend) Load(ctx context.Context) ([]stakemap.Map, bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("read %s: %w", b.path, err)
	}

	var maps []stakemap.Map
	if err := json.Unmarshal(data, &maps); err != nil {
		return nil, false, fmt.Errorf("parse %s: %w", b.path, err)
	}
	return maps, true, nil
}

// Save writes the collection document. The write goes through a temp file
// and rename so a crash mid-write cannot corrupt the previous document.
func (b *FileBackend) Save(ctx context.Context, maps []stakemap.Map) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	data, err := json.Marshal(maps)
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}

	tmp := b.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0600); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}

// Clear removes the collection document.
func (b *FileBackend) Clear(ctx context.Context) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := os.Remove(b.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", b.path, err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (b *FileBackend) Close() error { return nil }

// Path returns the collection document path.
func (b *FileBackend) Path() string { return b.path }

var _ Backend = (*FileBackend)(nil)
