package cli

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	stakerrors "github.com/stakemap/stakemap/pkg/errors"
	"github.com/stakemap/stakemap/pkg/stakemap"
	"github.com/stakemap/stakemap/pkg/store"
)

func seedStore(t *testing.T) (*store.Store, *stakemap.Map) {
	t.Helper()
	st := store.New(store.NewMemoryBackend(), log.New(io.Discard))

	m, err := st.Create(context.Background(), stakemap.Map{Name: "Funders"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := st.Create(context.Background(), stakemap.Map{Name: "Partners"}); err != nil {
		t.Fatal(err)
	}
	return st, m
}

func TestResolveMap(t *testing.T) {
	st, m := seedStore(t)
	ctx := context.Background()

	byID, err := resolveMap(ctx, st, m.ID)
	if err != nil {
		t.Fatalf("by id: %v", err)
	}
	if byID.ID != m.ID {
		t.Errorf("by id resolved %q", byID.ID)
	}

	byName, err := resolveMap(ctx, st, "funders")
	if err != nil {
		t.Fatalf("by name: %v", err)
	}
	if byName.ID != m.ID {
		t.Errorf("by name resolved %q", byName.Name)
	}

	byPrefix, err := resolveMap(ctx, st, m.ID[:8])
	if err != nil {
		t.Fatalf("by prefix: %v", err)
	}
	if byPrefix.ID != m.ID {
		t.Errorf("by prefix resolved %q", byPrefix.ID)
	}

	if _, err := resolveMap(ctx, st, "zzzz-not-here"); !stakerrors.Is(err, stakerrors.ErrCodeMapNotFound) {
		t.Errorf("unknown ref err = %v", err)
	}
}

func TestResolveStakeholder(t *testing.T) {
	st, m := seedStore(t)
	ctx := context.Background()

	sh, err := st.AddStakeholder(ctx, m.ID, stakemap.Stakeholder{Name: "Alice"})
	if err != nil {
		t.Fatal(err)
	}
	fresh, err := st.Get(ctx, m.ID)
	if err != nil {
		t.Fatal(err)
	}

	byName, err := resolveStakeholder(fresh, "alice")
	if err != nil {
		t.Fatalf("by name: %v", err)
	}
	if byName.ID != sh.ID {
		t.Errorf("by name resolved %q", byName.ID)
	}

	if _, err := resolveStakeholder(fresh, "bob"); !stakerrors.Is(err, stakerrors.ErrCodeStakeholderNotFound) {
		t.Errorf("unknown ref err = %v", err)
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0123456789abcdef"); got != "01234567" {
		t.Errorf("shortID = %q", got)
	}
	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID of short input = %q", got)
	}
}
