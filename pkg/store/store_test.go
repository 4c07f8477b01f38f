package store

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	stakerrors "github.com/stakemap/stakemap/pkg/errors"
	"github.com/stakemap/stakemap/pkg/ident"
	"github.com/stakemap/stakemap/pkg/layout"
	"github.com/stakemap/stakemap/pkg/stakemap"
)

func newTestStore() (*Store, *MemoryBackend) {
	backend := NewMemoryBackend()
	return New(backend, log.New(io.Discard)), backend
}

func TestCreateDefaults(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	m, err := s.Create(ctx, stakemap.Map{})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !ident.IsValid(m.ID) {
		t.Errorf("ID = %q, not a canonical id", m.ID)
	}
	if m.Name != "Untitled map" {
		t.Errorf("Name = %q, want %q", m.Name, "Untitled map")
	}
	if m.Sector != "custom" {
		t.Errorf("Sector = %q, want %q", m.Sector, "custom")
	}
	if m.IsPrivate {
		t.Error("IsPrivate = true, want false")
	}
	if len(m.Stakeholders) != 0 || len(m.Connections) != 0 {
		t.Error("new map is not empty")
	}
	if !m.Created.Equal(m.Updated) {
		t.Errorf("created %v != updated %v on fresh map", m.Created, m.Updated)
	}
}

func TestCRUDLifecycle(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()

	m, err := s.Create(ctx, stakemap.Map{Name: "Test"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if m.Name != "Test" {
		t.Errorf("Name = %q, want Test", m.Name)
	}

	renamed, err := s.Update(ctx, m.ID, stakemap.MapUpdate{Name: stakemap.Ptr("Renamed")})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if renamed.Name != "Renamed" {
		t.Errorf("Name after update = %q", renamed.Name)
	}
	if !renamed.Updated.After(renamed.Created) {
		t.Errorf("updated %v not after created %v", renamed.Updated, renamed.Created)
	}

	removed, err := s.Delete(ctx, m.ID)
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !removed {
		t.Error("Delete = false, want true")
	}
	if _, err := s.Get(ctx, m.ID); !stakerrors.Is(err, stakerrors.ErrCodeMapNotFound) {
		t.Errorf("Get after delete: err = %v, want NOT_FOUND_MAP", err)
	}
}

func TestUpdateUnknownMap(t *testing.T) {
	s, _ := newTestStore()
	_, err := s.Update(context.Background(), "missing", stakemap.MapUpdate{Name: stakemap.Ptr("x")})
	if !stakerrors.Is(err, stakerrors.ErrCodeMapNotFound) {
		t.Errorf("err = %v, want NOT_FOUND_MAP", err)
	}
}

func TestDeleteUnknownMap(t *testing.T) {
	s, _ := newTestStore()
	removed, err := s.Delete(context.Background(), "missing")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if removed {
		t.Error("Delete of unknown id = true")
	}
}

func TestAddStakeholderDefaults(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	m, _ := s.Create(ctx, stakemap.Map{Name: "Test"})

	sh, err := s.AddStakeholder(ctx, m.ID, stakemap.Stakeholder{Name: "Alice", Category: stakemap.CategoryAlly})
	if err != nil {
		t.Fatalf("AddStakeholder: %v", err)
	}
	if !ident.IsValid(sh.ID) {
		t.Errorf("ID = %q, not a canonical id", sh.ID)
	}
	if sh.Influence != stakemap.InfluenceMedium {
		t.Errorf("Influence = %q, want medium", sh.Influence)
	}
	if want := layout.DefaultPosition(0); sh.Position != want {
		t.Errorf("Position = %v, want spiral default %v", sh.Position, want)
	}

	// The second auto-placed stakeholder lands at the next spiral index.
	sh2, err := s.AddStakeholder(ctx, m.ID, stakemap.Stakeholder{Name: "Bob"})
	if err != nil {
		t.Fatalf("AddStakeholder: %v", err)
	}
	if want := layout.DefaultPosition(1); sh2.Position != want {
		t.Errorf("second Position = %v, want %v", sh2.Position, want)
	}
}

func TestAddStakeholderKeepsSuppliedPosition(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	m, _ := s.Create(ctx, stakemap.Map{})

	want := stakemap.Position{X: -50, Y: 925}
	sh, err := s.AddStakeholder(ctx, m.ID, stakemap.Stakeholder{Name: "Alice", Position: want})
	if err != nil {
		t.Fatalf("AddStakeholder: %v", err)
	}
	if sh.Position != want {
		t.Errorf("Position = %v, want %v", sh.Position, want)
	}
}

func TestStakeholderAtOrigin(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	m, _ := s.Create(ctx, stakemap.Map{})

	// A zero-position draft is indistinguishable from an unset one and
	// gets auto-placed.
	sh, err := s.AddStakeholder(ctx, m.ID, stakemap.Stakeholder{Name: "Alice", Position: stakemap.Position{}})
	if err != nil {
		t.Fatalf("AddStakeholder: %v", err)
	}
	if sh.Position == (stakemap.Position{}) {
		t.Fatalf("zero-position draft was not auto-placed")
	}

	// Pinning to the origin goes through the pointer-field update.
	origin := stakemap.Position{}
	updated, err := s.UpdateStakeholder(ctx, m.ID, sh.ID, stakemap.StakeholderUpdate{Position: &origin})
	if err != nil {
		t.Fatalf("UpdateStakeholder: %v", err)
	}
	if updated.Position != origin {
		t.Errorf("Position = %v, want origin", updated.Position)
	}

	got, _ := s.Get(ctx, m.ID)
	if got.Stakeholders[0].Position != origin {
		t.Errorf("persisted Position = %v, want origin", got.Stakeholders[0].Position)
	}
}

func TestAddStakeholderRequiresName(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	m, _ := s.Create(ctx, stakemap.Map{})

	_, err := s.AddStakeholder(ctx, m.ID, stakemap.Stakeholder{Name: "   "})
	if !stakerrors.Is(err, stakerrors.ErrCodeValidation) {
		t.Errorf("err = %v, want VALIDATION", err)
	}
}

func TestUpdateStakeholder(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	m, _ := s.Create(ctx, stakemap.Map{})
	sh, _ := s.AddStakeholder(ctx, m.ID, stakemap.Stakeholder{Name: "Alice", Role: "Editor"})

	got, err := s.UpdateStakeholder(ctx, m.ID, sh.ID, stakemap.StakeholderUpdate{
		Notes: stakemap.Ptr("met at conference"),
	})
	if err != nil {
		t.Fatalf("UpdateStakeholder: %v", err)
	}
	if got.Notes != "met at conference" {
		t.Errorf("Notes = %q", got.Notes)
	}
	if got.Role != "Editor" {
		t.Errorf("unset field changed: Role = %q", got.Role)
	}

	_, err = s.UpdateStakeholder(ctx, m.ID, "missing", stakemap.StakeholderUpdate{})
	if !stakerrors.Is(err, stakerrors.ErrCodeStakeholderNotFound) {
		t.Errorf("err = %v, want NOT_FOUND_STAKEHOLDER", err)
	}
}

func TestDeleteStakeholderCascades(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	m, _ := s.Create(ctx, stakemap.Map{})
	a, _ := s.AddStakeholder(ctx, m.ID, stakemap.Stakeholder{Name: "A"})
	b, _ := s.AddStakeholder(ctx, m.ID, stakemap.Stakeholder{Name: "B"})
	c, _ := s.AddStakeholder(ctx, m.ID, stakemap.Stakeholder{Name: "C"})

	s.AddConnection(ctx, m.ID, stakemap.Connection{From: a.ID, To: b.ID})
	s.AddConnection(ctx, m.ID, stakemap.Connection{From: b.ID, To: c.ID})
	s.AddConnection(ctx, m.ID, stakemap.Connection{From: c.ID, To: a.ID})

	if err := s.DeleteStakeholder(ctx, m.ID, b.ID); err != nil {
		t.Fatalf("DeleteStakeholder: %v", err)
	}

	got, _ := s.Get(ctx, m.ID)
	if len(got.Stakeholders) != 2 {
		t.Errorf("stakeholders = %d, want 2", len(got.Stakeholders))
	}
	for _, conn := range got.Connections {
		if conn.From == b.ID || conn.To == b.ID {
			t.Errorf("connection %s still references deleted stakeholder", conn.ID)
		}
	}
	if len(got.Connections) != 1 {
		t.Errorf("connections = %d, want 1", len(got.Connections))
	}
}

func TestAddConnectionDefaultsAndDuplicates(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	m, _ := s.Create(ctx, stakemap.Map{})
	a, _ := s.AddStakeholder(ctx, m.ID, stakemap.Stakeholder{Name: "A"})
	b, _ := s.AddStakeholder(ctx, m.ID, stakemap.Stakeholder{Name: "B"})

	conn, err := s.AddConnection(ctx, m.ID, stakemap.Connection{From: a.ID, To: b.ID})
	if err != nil {
		t.Fatalf("AddConnection: %v", err)
	}
	if conn.Type != stakemap.ConnWorksWith {
		t.Errorf("Type = %q, want works-with", conn.Type)
	}

	before, _ := s.Get(ctx, m.ID)
	_, err = s.AddConnection(ctx, m.ID, stakemap.Connection{From: a.ID, To: b.ID, Type: stakemap.ConnBlocks})
	if !stakerrors.Is(err, stakerrors.ErrCodeDuplicateConnection) {
		t.Fatalf("duplicate err = %v, want DUPLICATE_CONNECTION", err)
	}

	after, _ := s.Get(ctx, m.ID)
	if len(after.Connections) != len(before.Connections) {
		t.Error("rejected duplicate still mutated the store")
	}
	if !after.Updated.Equal(before.Updated) {
		t.Error("rejected duplicate refreshed the updated timestamp")
	}

	// The reverse direction is a different ordered pair.
	if _, err := s.AddConnection(ctx, m.ID, stakemap.Connection{From: b.ID, To: a.ID}); err != nil {
		t.Errorf("reverse connection rejected: %v", err)
	}
}

func TestDeleteConnection(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	m, _ := s.Create(ctx, stakemap.Map{})
	a, _ := s.AddStakeholder(ctx, m.ID, stakemap.Stakeholder{Name: "A"})
	b, _ := s.AddStakeholder(ctx, m.ID, stakemap.Stakeholder{Name: "B"})
	conn, _ := s.AddConnection(ctx, m.ID, stakemap.Connection{From: a.ID, To: b.ID})

	if err := s.DeleteConnection(ctx, m.ID, conn.ID); err != nil {
		t.Fatalf("DeleteConnection: %v", err)
	}
	err := s.DeleteConnection(ctx, m.ID, conn.ID)
	if !stakerrors.Is(err, stakerrors.ErrCodeConnectionNotFound) {
		t.Errorf("err = %v, want NOT_FOUND_CONNECTION", err)
	}
}

func TestExportRedaction(t *testing.T) {
	s, _ := newTestStore()
	ctx := context.Background()
	m, _ := s.Create(ctx, stakemap.Map{Name: "Shared"})
	s.AddStakeholder(ctx, m.ID, stakemap.Stakeholder{Name: "Private P", Notes: "sensitive", IsPrivate: true})
	s.AddStakeholder(ctx, m.ID, stakemap.Stakeholder{Name: "Public P", Notes: "fine"})

	full, err := s.ExportMap(ctx, m.ID)
	if err != nil {
		t.Fatalf("ExportMap: %v", err)
	}
	if !contains(full, "sensitive") {
		t.Error("full export lost public data")
	}

	redacted, err := s.ExportMapRedacted(ctx, m.ID)
	if err != nil {
		t.Fatalf("ExportMapRedacted: %v", err)
	}
	if contains(redacted, "sensitive") {
		t.Error("redacted export still contains private notes")
	}
	if !contains(redacted, "fine") {
		t.Error("redacted export dropped public notes")
	}
}

func TestGetAllDegradesOnLoadFailure(t *testing.T) {
	s, backend := newTestStore()
	ctx := context.Background()
	s.Create(ctx, stakemap.Map{Name: "Test"})

	backend.FailLoad = errors.New("payload corrupted")
	if got := s.GetAll(ctx); len(got) != 0 {
		t.Errorf("GetAll on corrupt storage = %d maps, want 0", len(got))
	}
}

func TestMutationSurfacesStorageFailure(t *testing.T) {
	s, backend := newTestStore()
	ctx := context.Background()
	backend.FailSave = errors.New("quota exceeded")

	_, err := s.Create(ctx, stakemap.Map{Name: "Test"})
	if !stakerrors.Is(err, stakerrors.ErrCodeStorage) {
		t.Errorf("err = %v, want STORAGE", err)
	}
}

func contains(data []byte, substr string) bool {
	return bytes.Contains(data, []byte(substr))
}
