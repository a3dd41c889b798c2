package planner

import (
	"errors"
	"reflect"
	"testing"

	"miyako/idgen"
	"miyako/models"
)

func newTestStore() *Store {
	return NewStore(&idgen.Sequence{Prefix: "id"}, "2025-04-10")
}

func attraction(id string, spend int) models.Attraction {
	return models.Attraction{AttractionID: id, Name: id, AvgSpendTime: spend}
}

func TestNewStoreDefaults(t *testing.T) {
	snap := newTestStore().Snapshot()
	if snap.Name != DefaultTripName {
		t.Fatalf("expected default name, got %q", snap.Name)
	}
	if len(snap.Dates) != 1 || snap.Dates[0] != "2025-04-10" {
		t.Fatalf("expected today as sole active date, got %v", snap.Dates)
	}
	if snap.SelectedDate != "2025-04-10" {
		t.Fatalf("expected today selected, got %s", snap.SelectedDate)
	}
	if len(snap.Visits) != 0 || len(snap.Checklist) != 0 {
		t.Fatal("expected empty visits and checklist")
	}
}

func TestSetTripDetails(t *testing.T) {
	s := newTestStore()
	if err := s.SetTripDetails("Cherry Blossom Week", "2025-04-01", "2025-04-05"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := s.Snapshot()
	if snap.Name != "Cherry Blossom Week" {
		t.Fatalf("name not updated: %q", snap.Name)
	}
	if len(snap.Dates) != 5 {
		t.Fatalf("expected 5 active dates, got %v", snap.Dates)
	}
	if snap.SelectedDate != "2025-04-01" {
		t.Fatalf("selected date should reset to range start, got %s", snap.SelectedDate)
	}
}

func TestSetTripDetailsKeepsNameWhenBlank(t *testing.T) {
	s := newTestStore()
	if err := s.SetTripDetails("  ", "2025-04-01", "2025-04-02"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := s.Snapshot().Name; got != DefaultTripName {
		t.Fatalf("blank name should not overwrite, got %q", got)
	}
}

func TestSetTripDetailsInvalidRangeLeavesStateUntouched(t *testing.T) {
	s := newTestStore()
	before := s.Snapshot()

	err := s.SetTripDetails("Broken Trip", "2025-04-05", "2025-04-01")
	if !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange, got %v", err)
	}

	after := s.Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("failed operation mutated the itinerary: %+v vs %+v", before, after)
	}
}

func TestAddVisitSchedulesSequentially(t *testing.T) {
	s := newTestStore()

	first, err := s.AddVisit(attraction("kinkakuji", 120), "2025-04-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.StartTime != "09:00" {
		t.Fatalf("first visit should start at 09:00, got %s", first.StartTime)
	}

	second, err := s.AddVisit(attraction("fushimi", 90), "2025-04-10")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.StartTime != "11:00" {
		t.Fatalf("second visit should start after the first ends, got %s", second.StartTime)
	}
}

func TestAddVisitDuplicate(t *testing.T) {
	s := newTestStore()
	if _, err := s.AddVisit(attraction("kinkakuji", 120), "2025-04-10"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := s.AddVisit(attraction("kinkakuji", 120), "2025-04-10")
	if !errors.Is(err, ErrAlreadyScheduled) {
		t.Fatalf("expected ErrAlreadyScheduled, got %v", err)
	}
	if got := len(s.Snapshot().Visits); got != 1 {
		t.Fatalf("visit count should be 1 after rejected duplicate, got %d", got)
	}
}

func TestAddVisitSameAttractionDifferentDates(t *testing.T) {
	s := newTestStore()
	if _, err := s.AddVisit(attraction("kinkakuji", 120), "2025-04-10"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.AddVisit(attraction("kinkakuji", 120), "2025-04-11"); err != nil {
		t.Fatalf("same attraction on another date must be allowed: %v", err)
	}
}

func TestRemoveVisit(t *testing.T) {
	s := newTestStore()
	s.AddVisit(attraction("kinkakuji", 120), "2025-04-10")

	if !s.RemoveVisit("kinkakuji", "2025-04-10") {
		t.Fatal("expected removal to succeed")
	}
	if got := len(s.Snapshot().Visits); got != 0 {
		t.Fatalf("expected empty visit list, got %d", got)
	}
}

func TestRemoveVisitMissingIsNoOp(t *testing.T) {
	s := newTestStore()
	s.AddVisit(attraction("kinkakuji", 120), "2025-04-10")

	if s.RemoveVisit("ginkakuji", "2025-04-10") {
		t.Fatal("removal of an unknown visit should report false")
	}
	if s.RemoveVisit("kinkakuji", "2025-04-11") {
		t.Fatal("removal on the wrong date should report false")
	}
	if got := len(s.Snapshot().Visits); got != 1 {
		t.Fatalf("no-op removal changed the visit list: %d", got)
	}
}

func TestReplaceChecklist(t *testing.T) {
	s := newTestStore()
	items := []models.ChecklistItem{{ID: "a", Name: "Passport", Category: "Essentials"}}
	s.ReplaceChecklist(items)

	if got := s.Snapshot().Checklist; len(got) != 1 || got[0].Name != "Passport" {
		t.Fatalf("checklist not replaced: %+v", got)
	}

	s.ReplaceChecklist(nil)
	if got := s.Snapshot().Checklist; got == nil || len(got) != 0 {
		t.Fatalf("nil replacement should yield empty list, got %+v", got)
	}
}

func TestSnapshotIsolation(t *testing.T) {
	s := newTestStore()
	s.AddVisit(attraction("kinkakuji", 120), "2025-04-10")

	snap := s.Snapshot()
	snap.Visits[0].StartTime = "23:59"
	snap.Dates[0] = "1999-01-01"

	fresh := s.Snapshot()
	if fresh.Visits[0].StartTime != "09:00" || fresh.Dates[0] != "2025-04-10" {
		t.Fatal("mutating a snapshot leaked into the store")
	}
}
