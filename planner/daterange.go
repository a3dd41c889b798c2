package planner

import (
	"fmt"
	"time"
)

// DateLayout is the ISO calendar-date format used everywhere in the planner.
const DateLayout = "2006-01-02"

// ExpandDateRange returns every calendar date from start to end inclusive,
// one per day, as ISO date strings. start must not be after end.
func ExpandDateRange(start, end string) ([]string, error) {
	s, err := time.Parse(DateLayout, start)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", start, err)
	}
	e, err := time.Parse(DateLayout, end)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", end, err)
	}
	if s.After(e) {
		return nil, ErrInvalidRange
	}

	var dates []string
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d.Format(DateLayout))
	}
	return dates, nil
}
