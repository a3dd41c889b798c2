package planner

import (
	"strings"

	"miyako/idgen"
	"miyako/models"
)

// DefaultTripName seeds a fresh itinerary.
const DefaultTripName = "My Kyoto Journey"

// Store owns one planning session's itinerary and enforces its invariants:
// no duplicate attraction+date pairings, derived start times, atomic
// operations (validate fully, then apply). It is not safe for concurrent
// use; the journey session serializes access to it.
type Store struct {
	itin models.Itinerary
	ids  idgen.Generator
}

// NewStore creates a session itinerary with the default name and today as
// the sole active date.
func NewStore(ids idgen.Generator, today string) *Store {
	return &Store{
		itin: models.Itinerary{
			ItineraryID:  ids.NewID(),
			Name:         DefaultTripName,
			Dates:        []string{today},
			SelectedDate: today,
			Visits:       []models.ScheduledVisit{},
			Checklist:    []models.ChecklistItem{},
		},
		ids: ids,
	}
}

// SetTripDetails replaces the active date range and, when name is
// non-blank, the trip name. On ErrInvalidRange nothing changes. The
// selected date resets to the start of the new range.
func (s *Store) SetTripDetails(name, startDate, endDate string) error {
	dates, err := ExpandDateRange(startDate, endDate)
	if err != nil {
		return err
	}
	if n := strings.TrimSpace(name); n != "" {
		s.itin.Name = n
	}
	s.itin.Dates = dates
	s.itin.SelectedDate = dates[0]
	return nil
}

// AddVisit schedules attraction on date, deriving the start time from the
// visits already on that date. Returns ErrAlreadyScheduled (and leaves the
// itinerary untouched) when the attraction is already planned for date.
func (s *Store) AddVisit(attraction models.Attraction, date string) (models.ScheduledVisit, error) {
	for _, v := range s.itin.Visits {
		if v.Attraction.AttractionID == attraction.AttractionID && v.Date == date {
			return models.ScheduledVisit{}, ErrAlreadyScheduled
		}
	}

	visit := models.ScheduledVisit{
		Attraction: attraction,
		Date:       date,
		StartTime:  NextStartTime(s.itin.Visits, date),
	}
	s.itin.Visits = append(s.itin.Visits, visit)
	return visit, nil
}

// RemoveVisit removes the visit matching attractionID and date. At most
// one can match. Returns false when nothing matched; that is a benign
// no-op, not an error.
func (s *Store) RemoveVisit(attractionID, date string) bool {
	for i, v := range s.itin.Visits {
		if v.Attraction.AttractionID == attractionID && v.Date == date {
			s.itin.Visits = append(s.itin.Visits[:i], s.itin.Visits[i+1:]...)
			return true
		}
	}
	return false
}

// ReplaceChecklist swaps in a new checklist wholesale. The checklist
// package computes the new list; the store just owns it.
func (s *Store) ReplaceChecklist(items []models.ChecklistItem) {
	if items == nil {
		items = []models.ChecklistItem{}
	}
	s.itin.Checklist = items
}

// IDs exposes the session's identifier generator so checklist additions
// share it.
func (s *Store) IDs() idgen.Generator {
	return s.ids
}

// Snapshot returns a copy of the itinerary safe to hand to the report
// compiler or serialize while the session keeps mutating.
func (s *Store) Snapshot() models.Itinerary {
	snap := s.itin
	snap.Dates = append([]string(nil), s.itin.Dates...)
	snap.Visits = append([]models.ScheduledVisit(nil), s.itin.Visits...)
	snap.Checklist = append([]models.ChecklistItem(nil), s.itin.Checklist...)
	if snap.Visits == nil {
		snap.Visits = []models.ScheduledVisit{}
	}
	if snap.Checklist == nil {
		snap.Checklist = []models.ChecklistItem{}
	}
	return snap
}
