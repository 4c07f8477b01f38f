package store

import (
	"context"

	"github.com/stakemap/stakemap/pkg/stakemap"
)

// Backend is a durable slot holding the entire map collection as one
// document. The store reads and rewrites the whole collection on every
// mutation; there are no partial writes and no transactions spanning keys.
//
// Load returns ok=false when no document exists yet, which is not an
// error. A document that exists but cannot be decoded is reported as an
// error; the store degrades that to an empty collection.
type Backend interface {
	Load(ctx context.Context) (maps []stakemap.Map, ok bool, err error)
	Save(ctx context.Context, maps []stakemap.Map) error
	Clear(ctx context.Context) error
	Close() error
}
