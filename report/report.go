// Package report turns an itinerary snapshot into a printable document.
// Compile is a pure function: the same snapshot always yields the same
// document, and nothing here touches the live itinerary.
package report

import (
	"sort"

	"miyako/models"
)

type Document struct {
	Title     string            `json:"title"`
	StartDate string            `json:"startDate"`
	EndDate   string            `json:"endDate"`
	Days      []DaySection      `json:"days"`
	Checklist []CategorySection `json:"checklist"`
}

type DaySection struct {
	Date   string       `json:"date"`
	Visits []VisitEntry `json:"visits"`
}

type VisitEntry struct {
	StartTime string   `json:"startTime"`
	Name      string   `json:"name"`
	Duration  int      `json:"duration"`
	Address   string   `json:"address"`
	Buses     []string `json:"buses"`
}

type CategorySection struct {
	Category string           `json:"category"`
	Items    []ChecklistEntry `json:"items"`
}

type ChecklistEntry struct {
	Name    string `json:"name"`
	Checked bool   `json:"checked"`
}

// Compile groups visits by date (dates ascending, visits within a day by
// start time) and appends the checklist grouped by category (categories
// ascending).
func Compile(itin models.Itinerary) Document {
	doc := Document{Title: itin.Name}
	if len(itin.Dates) > 0 {
		doc.StartDate = itin.Dates[0]
		doc.EndDate = itin.Dates[len(itin.Dates)-1]
	}

	byDate := make(map[string][]models.ScheduledVisit)
	for _, v := range itin.Visits {
		byDate[v.Date] = append(byDate[v.Date], v)
	}
	dates := make([]string, 0, len(byDate))
	for d := range byDate {
		dates = append(dates, d)
	}
	// Lexicographic ISO date sort is chronological.
	sort.Strings(dates)

	for _, d := range dates {
		visits := byDate[d]
		sort.SliceStable(visits, func(i, j int) bool {
			return visits[i].StartTime < visits[j].StartTime
		})

		day := DaySection{Date: d}
		for _, v := range visits {
			day.Visits = append(day.Visits, VisitEntry{
				StartTime: v.StartTime,
				Name:      v.Attraction.Name,
				Duration:  v.Attraction.AvgSpendTime,
				Address:   v.Attraction.Address,
				Buses:     v.Attraction.Buses,
			})
		}
		doc.Days = append(doc.Days, day)
	}

	byCategory := make(map[string][]models.ChecklistItem)
	for _, it := range itin.Checklist {
		byCategory[it.Category] = append(byCategory[it.Category], it)
	}
	categories := make([]string, 0, len(byCategory))
	for c := range byCategory {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	for _, c := range categories {
		section := CategorySection{Category: c}
		for _, it := range byCategory[c] {
			section.Items = append(section.Items, ChecklistEntry{Name: it.Name, Checked: it.Checked})
		}
		doc.Checklist = append(doc.Checklist, section)
	}

	return doc
}
