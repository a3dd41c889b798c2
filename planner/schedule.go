package planner

import (
	"fmt"
	"strconv"
	"strings"

	"miyako/models"
)

// DefaultStartTime is assigned to the first visit of a day.
const DefaultStartTime = "09:00"

// NextStartTime computes the start time for a new visit on date by
// appending it after the latest-starting visit already scheduled there:
// the new start is that visit's start plus its attraction's average spend
// time. With no visits on the date it returns DefaultStartTime.
//
// Hours are carried without wrapping at 24, so a day packed past midnight
// produces times like "25:00" rather than rolling to the next date.
func NextStartTime(visits []models.ScheduledVisit, date string) string {
	var last *models.ScheduledVisit
	for i := range visits {
		if visits[i].Date != date {
			continue
		}
		if last == nil || visits[i].StartTime > last.StartTime {
			last = &visits[i]
		}
	}
	if last == nil {
		return DefaultStartTime
	}
	return addMinutes(last.StartTime, last.Attraction.AvgSpendTime)
}

// VisitEndTime derives a visit's end time from its start time and the
// attraction's average spend time.
func VisitEndTime(v models.ScheduledVisit) string {
	return addMinutes(v.StartTime, v.Attraction.AvgSpendTime)
}

func addMinutes(hhmm string, minutes int) string {
	h, m := splitTime(hhmm)
	m += minutes
	h += m / 60
	m = m % 60
	return fmt.Sprintf("%02d:%02d", h, m)
}

func splitTime(hhmm string) (int, int) {
	parts := strings.SplitN(hhmm, ":", 2)
	if len(parts) != 2 {
		return 0, 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h, m
}
