package templates

import (
	"testing"

	"github.com/stakemap/stakemap/pkg/ident"
	"github.com/stakemap/stakemap/pkg/layout"
	"github.com/stakemap/stakemap/pkg/stakemap"
)

func TestAllOrder(t *testing.T) {
	all := All()
	if len(all) != 5 {
		t.Fatalf("sectors = %d, want 5", len(all))
	}
	if all[0].ID != "custom" {
		t.Errorf("first sector = %q, want custom", all[0].ID)
	}
	for _, s := range all {
		if s.Name == "" || s.Description == "" {
			t.Errorf("sector %q missing display fields", s.ID)
		}
	}
}

func TestGetFallsBackToCustom(t *testing.T) {
	if got := Get("research"); got.ID != "research" {
		t.Errorf("Get(research) = %q", got.ID)
	}
	if got := Get("no-such-sector"); got.ID != "custom" {
		t.Errorf("Get(unknown) = %q, want custom", got.ID)
	}
}

func TestFromTemplate(t *testing.T) {
	draft := FromTemplate("training", "")

	if draft.Name != "Training & workshops map" {
		t.Errorf("Name = %q", draft.Name)
	}
	if draft.Sector != "training" {
		t.Errorf("Sector = %q", draft.Sector)
	}
	if len(draft.Stakeholders) != 3 {
		t.Fatalf("stakeholders = %d, want 3", len(draft.Stakeholders))
	}

	seen := map[string]bool{}
	for i, sh := range draft.Stakeholders {
		if !ident.IsValid(sh.ID) {
			t.Errorf("stakeholder %d id = %q", i, sh.ID)
		}
		if seen[sh.ID] {
			t.Errorf("duplicate id %q", sh.ID)
		}
		seen[sh.ID] = true
		if want := layout.DefaultPosition(i); sh.Position != want {
			t.Errorf("position %d = %v, want %v", i, sh.Position, want)
		}
		if !sh.Category.Valid() {
			t.Errorf("stakeholder %d category %q invalid", i, sh.Category)
		}
	}

	// Fresh ids on every instantiation.
	again := FromTemplate("training", "")
	if again.Stakeholders[0].ID == draft.Stakeholders[0].ID {
		t.Error("second instantiation reused ids")
	}
}

func TestFromTemplateCustomName(t *testing.T) {
	draft := FromTemplate("custom", "Q3 funders")
	if draft.Name != "Q3 funders" {
		t.Errorf("Name = %q", draft.Name)
	}
	if len(draft.Stakeholders) != 0 {
		t.Errorf("custom template has %d stakeholders", len(draft.Stakeholders))
	}
}

func TestCategoryFallback(t *testing.T) {
	if got := Category(stakemap.CategoryAlly); got.Label != "Ally" {
		t.Errorf("Label = %q", got.Label)
	}
	got := Category(stakemap.Category("board"))
	if got.Label != "board" {
		t.Errorf("fallback Label = %q", got.Label)
	}
	if got.Color == "" {
		t.Error("fallback has no color")
	}
}

func TestConnectionTypeFallback(t *testing.T) {
	if got := ConnectionType(stakemap.ConnBlocks); got.Label != "Blocks" {
		t.Errorf("Label = %q", got.Label)
	}
	if got := ConnectionType(stakemap.ConnectionType("mystery")); got.Label != "Works with" {
		t.Errorf("fallback Label = %q", got.Label)
	}
}
