package checklist

import (
	"errors"
	"testing"

	"miyako/idgen"
	"miyako/models"
)

func TestDefaultSeed(t *testing.T) {
	items := Default(&idgen.Sequence{Prefix: "seed"})

	if len(items) != 22 {
		t.Fatalf("expected 22 seed items, got %d", len(items))
	}

	cats := Categories(items)
	if len(cats) != 5 {
		t.Fatalf("expected 5 categories, got %v", cats)
	}
	want := []string{"Clothing", "Essentials", "Kyoto Specific", "Technology", "Toiletries"}
	for i := range want {
		if cats[i] != want[i] {
			t.Fatalf("categories = %v, want %v", cats, want)
		}
	}

	seen := make(map[string]bool)
	for _, it := range items {
		if it.Checked {
			t.Fatalf("seed item %q must start unchecked", it.Name)
		}
		if it.ID == "" || seen[it.ID] {
			t.Fatalf("seed item %q has missing or duplicate id %q", it.Name, it.ID)
		}
		seen[it.ID] = true
	}
}

func TestAdd(t *testing.T) {
	ids := &idgen.Sequence{Prefix: "item"}
	items, err := Add(nil, "  Folding Fan  ", "Kyoto Specific", ids)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Name != "Folding Fan" {
		t.Fatalf("name should be trimmed, got %q", items[0].Name)
	}
	if items[0].Checked {
		t.Fatal("new items start unchecked")
	}
}

func TestAddEmptyName(t *testing.T) {
	_, err := Add(nil, "   ", "Essentials", &idgen.Sequence{Prefix: "item"})
	if !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
}

func TestAddDoesNotMutateInput(t *testing.T) {
	original := []models.ChecklistItem{{ID: "a", Name: "Passport", Category: "Essentials"}}
	out, err := Add(original, "Yen", "Essentials", &idgen.Sequence{Prefix: "item"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(original) != 1 {
		t.Fatalf("input slice mutated: %+v", original)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 items, got %d", len(out))
	}
}

func TestToggle(t *testing.T) {
	items := []models.ChecklistItem{{ID: "a", Name: "Passport", Category: "Essentials"}}

	toggled, found := Toggle(items, "a")
	if !found || !toggled[0].Checked {
		t.Fatalf("expected item checked, found=%v items=%+v", found, toggled)
	}
	if items[0].Checked {
		t.Fatal("input slice mutated")
	}

	back, _ := Toggle(toggled, "a")
	if back[0].Checked {
		t.Fatal("second toggle should uncheck")
	}
}

func TestToggleMissingIsNoOp(t *testing.T) {
	items := []models.ChecklistItem{{ID: "a", Name: "Passport", Category: "Essentials"}}
	out, found := Toggle(items, "zzz")
	if found {
		t.Fatal("unknown id should report not found")
	}
	if len(out) != 1 || out[0].Checked {
		t.Fatalf("no-op toggle changed the list: %+v", out)
	}
}

func TestRemove(t *testing.T) {
	items := []models.ChecklistItem{
		{ID: "a", Name: "Passport", Category: "Essentials"},
		{ID: "b", Name: "Sunscreen", Category: "Toiletries"},
	}

	out, found := Remove(items, "a")
	if !found || len(out) != 1 || out[0].ID != "b" {
		t.Fatalf("remove failed: found=%v items=%+v", found, out)
	}

	out, found = Remove(out, "zzz")
	if found || len(out) != 1 {
		t.Fatalf("missing id should be a no-op: found=%v items=%+v", found, out)
	}
}

func TestResetDiscardsUserState(t *testing.T) {
	ids := &idgen.Sequence{Prefix: "x"}
	items := Default(ids)

	items, _ = Toggle(items, items[0].ID)
	items, err := Add(items, "Folding Fan", "Kyoto Specific", ids)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 23 {
		t.Fatalf("setup failed, got %d items", len(items))
	}

	fresh := Default(ids)
	if len(fresh) != 22 {
		t.Fatalf("reset must yield exactly 22 items, got %d", len(fresh))
	}
	for _, it := range fresh {
		if it.Checked {
			t.Fatalf("reset item %q must be unchecked", it.Name)
		}
		if it.Name == "Folding Fan" {
			t.Fatal("reset must discard user additions")
		}
	}
}

func TestCategoryProgress(t *testing.T) {
	items := []models.ChecklistItem{
		{ID: "a", Name: "Passport", Category: "Essentials", Checked: true},
		{ID: "b", Name: "Yen", Category: "Essentials"},
		{ID: "c", Name: "Sunscreen", Category: "Toiletries"},
	}

	progress := CategoryProgress(items)
	if p := progress["Essentials"]; p.Total != 2 || p.Checked != 1 || p.Percent != 50 {
		t.Fatalf("Essentials progress = %+v", p)
	}
	if p := progress["Toiletries"]; p.Total != 1 || p.Checked != 0 || p.Percent != 0 {
		t.Fatalf("Toiletries progress = %+v", p)
	}
}
