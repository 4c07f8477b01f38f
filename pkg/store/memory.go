package store

import (
	"context"

	"github.com/stakemap/stakemap/pkg/stakemap"
)

// MemoryBackend is an in-memory backend for tests and throwaway use.
type MemoryBackend struct {
	maps []stakemap.Map
	has  bool

	// FailSave, when set, makes every Save return it. Lets tests exercise
	// the store's storage-failure path.
	FailSave error
	// FailLoad, when set, makes every Load return it.
	FailLoad error
}

// NewMemoryBackend creates an empty in-memory backend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{}
}

func (b *MemoryBackend) Load(ctx context.Context) ([]stakemap.Map, bool, error) {
	if b.FailLoad != nil {
		return nil, false, b.FailLoad
	}
	if !b.has {
		return nil, false, nil
	}
	out := make([]stakemap.Map, len(b.maps))
	for i := range b.maps {
		out[i] = *b.maps[i].Clone()
	}
	return out, true, nil
}

func (b *MemoryBackend) Save(ctx context.Context, maps []stakemap.Map) error {
	if b.FailSave != nil {
		return b.FailSave
	}
	out := make([]stakemap.Map, len(maps))
	for i := range maps {
		out[i] = *maps[i].Clone()
	}
	b.maps = out
	b.has = true
	return nil
}

func (b *MemoryBackend) Clear(ctx context.Context) error {
	b.maps = nil
	b.has = false
	return nil
}

func (b *MemoryBackend) Close() error { return nil }

var _ Backend = (*MemoryBackend)(nil)
