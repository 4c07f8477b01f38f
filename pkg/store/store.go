package store

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/stakemap/stakemap/pkg/errors"
	"github.com/stakemap/stakemap/pkg/ident"
	"github.com/stakemap/stakemap/pkg/layout"
	"github.com/stakemap/stakemap/pkg/stakemap"
)

// Store owns the durable collection of maps and enforces its consistency
// rules: fresh ids on creation, updated-timestamp refresh on every
// mutation, cascade deletion of connections with their stakeholders, and
// rejection of duplicate connections.
//
// Every mutation reads the whole collection from the backend, modifies it
// in memory and writes the whole collection back. That read-modify-write is
// not atomic across concurrent writers; a single logical user per store is
// assumed, and separate processes sharing a backend race last-write-wins.
type Store struct {
	backend Backend
	logger  *log.Logger
}

// New creates a store over the given backend. A nil logger falls back to
// the package default.
func New(backend Backend, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.Default()
	}
	return &Store{backend: backend, logger: logger}
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// =============================================================================
// Collection Access
// =============================================================================

// load reads the collection, degrading any backend failure to an empty
// collection. An absent, corrupted or unreadable document must never crash
// a caller that is only trying to render; the failure is logged instead.
func (s *Store) load(ctx context.Context) []stakemap.Map {
	maps, ok, err := s.backend.Load(ctx)
	if err != nil {
		s.logger.Error("failed to load map collection, treating as empty", "err", err)
		return nil
	}
	if !ok {
		return nil
	}
	return maps
}

// save writes the collection back.
func (s *Store) save(ctx context.Context, maps []stakemap.Map) error {
	if err := s.backend.Save(ctx, maps); err != nil {
		s.logger.Error("failed to save map collection", "err", err)
		return errors.Wrap(errors.ErrCodeStorage, err, "save map collection")
	}
	return nil
}

// GetAll returns every map in persisted order. Storage failures degrade to
// an empty collection.
func (s *Store) GetAll(ctx context.Context) []stakemap.Map {
	return s.load(ctx)
}

// Get returns the map with the given id.
func (s *Store) Get(ctx context.Context, id string) (*stakemap.Map, error) {
	for _, m := range s.load(ctx) {
		if m.ID == id {
			return m.Clone(), nil
		}
	}
	return nil, errors.New(errors.ErrCodeMapNotFound, "map %q not found", id)
}

// =============================================================================
// Map CRUD
// =============================================================================

// Create adds a new map built from draft. The draft's id and timestamps
// are ignored: a fresh id is assigned and created == updated == now.
// Unset fields receive defaults (name "Untitled map", sector "custom").
// Stakeholders and connections carried by the draft (template or import
// payloads) are kept as supplied.
func (s *Store) Create(ctx context.Context, draft stakemap.Map) (*stakemap.Map, error) {
	maps := s.load(ctx)
	now := time.Now().UTC()

	m := draft
	m.ID = ident.New()
	m.Created = now
	m.Updated = now
	if strings.TrimSpace(m.Name) == "" {
		m.Name = stakemap.DefaultMapName
	}
	if m.Sector == "" {
		m.Sector = stakemap.DefaultSector
	}
	if m.Stakeholders == nil {
		m.Stakeholders = []stakemap.Stakeholder{}
	}
	if m.Connections == nil {
		m.Connections = []stakemap.Connection{}
	}

	maps = append(maps, m)
	if err := s.save(ctx, maps); err != nil {
		return nil, err
	}
	return m.Clone(), nil
}

// Update shallow-merges the set fields of u over the map with the given id
// and refreshes its updated timestamp.
func (s *Store) Update(ctx context.Context, id string, u stakemap.MapUpdate) (*stakemap.Map, error) {
	return s.mutate(ctx, id, func(m *stakemap.Map) error {
		u.Apply(m)
		return nil
	})
}

// Delete removes the map with the given id. The removal is terminal; there
// is no soft delete or recovery. It reports whether a map was removed.
func (s *Store) Delete(ctx context.Context, id string) (bool, error) {
	maps := s.load(ctx)
	filtered := maps[:0:0]
	for _, m := range maps {
		if m.ID != id {
			filtered = append(filtered, m)
		}
	}
	if len(filtered) == len(maps) {
		return false, nil
	}
	if err := s.save(ctx, filtered); err != nil {
		return false, err
	}
	return true, nil
}

// mutate loads the collection, applies fn to the map with the given id,
// stamps its updated timestamp and persists. Every entity-level mutation
// below funnels through here so the timestamp rule cannot be missed.
func (s *Store) mutate(ctx context.Context, id string, fn func(*stakemap.Map) error) (*stakemap.Map, error) {
	maps := s.load(ctx)
	for i := range maps {
		if maps[i].ID != id {
			continue
		}
		if err := fn(&maps[i]); err != nil {
			return nil, err
		}
		maps[i].Updated = time.Now().UTC()
		if err := s.save(ctx, maps); err != nil {
			return nil, err
		}
		return maps[i].Clone(), nil
	}
	return nil, errors.New(errors.ErrCodeMapNotFound, "map %q not found", id)
}

// =============================================================================
// Stakeholders
// =============================================================================

// AddStakeholder appends a stakeholder to the map. Name is required.
// Influence defaults to medium and the position, when the caller supplies
// none, comes from the spiral layout seeded with the current stakeholder
// count. The zero Position is the "unset" sentinel, so a draft at exactly
// (0, 0) is auto-placed too; pin a stakeholder to the origin with
// UpdateStakeholder and an explicit Position pointer.
func (s *Store) AddStakeholder(ctx context.Context, mapID string, draft stakemap.Stakeholder) (*stakemap.Stakeholder, error) {
	if strings.TrimSpace(draft.Name) == "" {
		return nil, errors.New(errors.ErrCodeValidation, "stakeholder name is required")
	}

	var out stakemap.Stakeholder
	_, err := s.mutate(ctx, mapID, func(m *stakemap.Map) error {
		sh := draft
		sh.ID = ident.New()
		if !sh.Influence.Valid() {
			sh.Influence = stakemap.InfluenceMedium
		}
		if sh.Position == (stakemap.Position{}) {
			sh.Position = layout.DefaultPosition(len(m.Stakeholders))
		}
		m.Stakeholders = append(m.Stakeholders, sh)
		out = sh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateStakeholder merges the set fields of u over the stakeholder.
func (s *Store) UpdateStakeholder(ctx context.Context, mapID, id string, u stakemap.StakeholderUpdate) (*stakemap.Stakeholder, error) {
	var out stakemap.Stakeholder
	_, err := s.mutate(ctx, mapID, func(m *stakemap.Map) error {
		sh := m.Stakeholder(id)
		if sh == nil {
			return errors.New(errors.ErrCodeStakeholderNotFound, "stakeholder %q not found in map %q", id, mapID)
		}
		u.Apply(sh)
		out = *sh
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteStakeholder removes the stakeholder and, in the same persisted
// update, every connection whose from or to references it. This cascade is
// what keeps connections referentially intact.
func (s *Store) DeleteStakeholder(ctx context.Context, mapID, id string) error {
	_, err := s.mutate(ctx, mapID, func(m *stakemap.Map) error {
		kept := m.Stakeholders[:0:0]
		for _, sh := range m.Stakeholders {
			if sh.ID != id {
				kept = append(kept, sh)
			}
		}
		if len(kept) == len(m.Stakeholders) {
			return errors.New(errors.ErrCodeStakeholderNotFound, "stakeholder %q not found in map %q", id, mapID)
		}
		m.Stakeholders = kept

		conns := m.Connections[:0:0]
		for _, c := range m.Connections {
			if c.From != id && c.To != id {
				conns = append(conns, c)
			}
		}
		m.Connections = conns
		return nil
	})
	return err
}

// =============================================================================
// Connections
// =============================================================================

// AddConnection appends a directed connection. A connection with the same
// ordered (from, to) pair is rejected without mutation; the type defaults
// to works-with. Endpoint existence is not checked here: the stakeholder
// cascade keeps stored connections consistent, and render-path traversals
// go through ResolvedConnections.
func (s *Store) AddConnection(ctx context.Context, mapID string, draft stakemap.Connection) (*stakemap.Connection, error) {
	if draft.From == "" || draft.To == "" {
		return nil, errors.New(errors.ErrCodeValidation, "connection requires from and to")
	}

	var out stakemap.Connection
	_, err := s.mutate(ctx, mapID, func(m *stakemap.Map) error {
		if m.HasConnection(draft.From, draft.To) {
			return errors.New(errors.ErrCodeDuplicateConnection,
				"connection %s -> %s already exists", draft.From, draft.To)
		}
		c := draft
		c.ID = ident.New()
		if !c.Type.Valid() {
			c.Type = stakemap.ConnWorksWith
		}
		m.Connections = append(m.Connections, c)
		out = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteConnection removes the connection with the given id.
func (s *Store) DeleteConnection(ctx context.Context, mapID, id string) error {
	_, err := s.mutate(ctx, mapID, func(m *stakemap.Map) error {
		kept := m.Connections[:0:0]
		for _, c := range m.Connections {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		if len(kept) == len(m.Connections) {
			return errors.New(errors.ErrCodeConnectionNotFound, "connection %q not found in map %q", id, mapID)
		}
		m.Connections = kept
		return nil
	})
	return err
}

// =============================================================================
// Exports
// =============================================================================

// ExportMap returns the map as pretty-printed JSON.
func (s *Store) ExportMap(ctx context.Context, id string) ([]byte, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return marshalIndent(m)
}

// ExportMapRedacted is ExportMap with notes and interaction tips blanked
// for stakeholders flagged private.
func (s *Store) ExportMapRedacted(ctx context.Context, id string) ([]byte, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return marshalIndent(m.Redacted())
}

// ExportAll returns the whole collection wrapped in the bulk envelope with
// a format-version tag and export timestamp.
func (s *Store) ExportAll(ctx context.Context) ([]byte, error) {
	bundle := stakemap.Bundle{
		Version:  stakemap.BundleVersion,
		Exported: time.Now().UTC(),
		Maps:     s.load(ctx),
	}
	if bundle.Maps == nil {
		bundle.Maps = []stakemap.Map{}
	}
	return marshalIndent(bundle)
}

func marshalIndent(v any) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode export")
	}
	return data, nil
}

// =============================================================================
// Maintenance
// =============================================================================

// Info summarizes the persisted collection.
func (s *Store) Info(ctx context.Context) stakemap.Stats {
	maps := s.load(ctx)
	stats := stakemap.Stats{MapCount: len(maps)}
	for _, m := range maps {
		stats.StakeholderCount += len(m.Stakeholders)
		stats.ConnectionCount += len(m.Connections)
	}
	if data, err := json.Marshal(maps); err == nil {
		stats.BytesUsed = len(data)
	}
	return stats
}

// ClearAll removes the entire collection document.
func (s *Store) ClearAll(ctx context.Context) error {
	if err := s.backend.Clear(ctx); err != nil {
		return errors.Wrap(errors.ErrCodeStorage, err, "clear map collection")
	}
	return nil
}
