package models

// ScheduledVisit binds an attraction snapshot to a calendar date and a
// computed start time. Visits are never edited in place; remove + re-add
// is the only edit path.
type ScheduledVisit struct {
	Attraction Attraction `json:"attraction" bson:"attraction"`
	// ISO date, no time component.
	Date string `json:"date" bson:"date"`
	// HH:MM, zero-padded 24-hour. Hours past 23 are possible when the
	// schedule runs over midnight; see planner.NextStartTime.
	StartTime string `json:"startTime" bson:"start_time"`
}

// Itinerary is the root aggregate of one planning session: trip name, the
// active date range, every scheduled visit, and the packing checklist.
type Itinerary struct {
	ItineraryID string `json:"itineraryid" bson:"itineraryid"`
	Name        string `json:"name" bson:"name"`
	// Active dates in order; typically contiguous via the range expander.
	Dates []string `json:"dates" bson:"dates"`
	// Date currently focused in the day tabs; reset to Dates[0] whenever
	// the range changes.
	SelectedDate string           `json:"selectedDate" bson:"selected_date"`
	Visits       []ScheduledVisit `json:"visits" bson:"visits"`
	Checklist    []ChecklistItem  `json:"checklist" bson:"checklist"`
}
