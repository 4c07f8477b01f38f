package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stakemap/stakemap/pkg/stakemap"
)

func TestFileBackendRoundTrip(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewFileBackend(dir)
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}
	ctx := context.Background()

	_, found, err := backend.Load(ctx)
	if err != nil {
		t.Fatalf("Load on empty dir: %v", err)
	}
	if found {
		t.Error("found = true before first save")
	}

	maps := []stakemap.Map{{ID: "m1", Name: "Test", Sector: "custom"}}
	if err := backend.Save(ctx, maps); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, found, err := backend.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !found {
		t.Fatal("found = false after save")
	}
	if len(got) != 1 || got[0].Name != "Test" {
		t.Errorf("Load = %+v", got)
	}
}

func TestFileBackendClear(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewFileBackend(dir)
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}
	ctx := context.Background()

	if err := backend.Save(ctx, []stakemap.Map{{ID: "m1"}}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := backend.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, found, _ := backend.Load(ctx); found {
		t.Error("found = true after clear")
	}
	// Clearing an already-empty backend is not an error.
	if err := backend.Clear(ctx); err != nil {
		t.Errorf("second Clear: %v", err)
	}
}

func TestFileBackendCorruptPayload(t *testing.T) {
	dir := t.TempDir()
	backend, err := NewFileBackend(dir)
	if err != nil {
		t.Fatalf("NewFileBackend: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, mapsFile), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := backend.Load(context.Background()); err == nil {
		t.Error("Load of corrupt payload succeeded")
	}
}
