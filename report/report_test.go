package report

import (
	"reflect"
	"testing"

	"miyako/models"
)

func sampleItinerary() models.Itinerary {
	return models.Itinerary{
		ItineraryID: "itin-1",
		Name:        "My Kyoto Journey",
		Dates:       []string{"2025-04-10", "2025-04-11", "2025-04-12"},
		Visits: []models.ScheduledVisit{
			// Deliberately out of order across and within dates.
			{
				Attraction: models.Attraction{AttractionID: "fushimi", Name: "Fushimi Inari", AvgSpendTime: 90, Address: "Fushimi Ward", Buses: []string{"South 5"}},
				Date:       "2025-04-11",
				StartTime:  "09:00",
			},
			{
				Attraction: models.Attraction{AttractionID: "gion", Name: "Gion District", AvgSpendTime: 60, Address: "Higashiyama Ward", Buses: []string{"100", "206"}},
				Date:       "2025-04-10",
				StartTime:  "11:00",
			},
			{
				Attraction: models.Attraction{AttractionID: "kinkakuji", Name: "Kinkaku-ji", AvgSpendTime: 120, Address: "1 Kinkakujicho", Buses: []string{"101", "205"}},
				Date:       "2025-04-10",
				StartTime:  "09:00",
			},
		},
		Checklist: []models.ChecklistItem{
			{ID: "a", Name: "Passport", Category: "Essentials", Checked: true},
			{ID: "b", Name: "Sunscreen", Category: "Toiletries"},
			{ID: "c", Name: "Yen", Category: "Essentials"},
		},
	}
}

func TestCompileHeader(t *testing.T) {
	doc := Compile(sampleItinerary())
	if doc.Title != "My Kyoto Journey" {
		t.Fatalf("title = %q", doc.Title)
	}
	if doc.StartDate != "2025-04-10" || doc.EndDate != "2025-04-12" {
		t.Fatalf("date range = %s to %s", doc.StartDate, doc.EndDate)
	}
}

func TestCompileGroupsAndSortsDays(t *testing.T) {
	doc := Compile(sampleItinerary())

	if len(doc.Days) != 2 {
		t.Fatalf("expected 2 day sections, got %d", len(doc.Days))
	}
	if doc.Days[0].Date != "2025-04-10" || doc.Days[1].Date != "2025-04-11" {
		t.Fatalf("day sections out of order: %s, %s", doc.Days[0].Date, doc.Days[1].Date)
	}

	day1 := doc.Days[0]
	if len(day1.Visits) != 2 {
		t.Fatalf("expected 2 visits on day one, got %d", len(day1.Visits))
	}
	if day1.Visits[0].Name != "Kinkaku-ji" || day1.Visits[1].Name != "Gion District" {
		t.Fatalf("visits not sorted by start time: %+v", day1.Visits)
	}
	for i := 1; i < len(day1.Visits); i++ {
		if day1.Visits[i].StartTime < day1.Visits[i-1].StartTime {
			t.Fatalf("start times decrease within a day: %+v", day1.Visits)
		}
	}
}

func TestCompileChecklistSections(t *testing.T) {
	doc := Compile(sampleItinerary())

	if len(doc.Checklist) != 2 {
		t.Fatalf("expected 2 checklist sections, got %d", len(doc.Checklist))
	}
	if doc.Checklist[0].Category != "Essentials" || doc.Checklist[1].Category != "Toiletries" {
		t.Fatalf("categories not sorted: %+v", doc.Checklist)
	}

	essentials := doc.Checklist[0]
	if len(essentials.Items) != 2 {
		t.Fatalf("expected 2 essentials, got %+v", essentials.Items)
	}
	if !essentials.Items[0].Checked || essentials.Items[1].Checked {
		t.Fatalf("checked state lost: %+v", essentials.Items)
	}
}

func TestCompileIdempotent(t *testing.T) {
	itin := sampleItinerary()
	first := Compile(itin)
	second := Compile(itin)
	if !reflect.DeepEqual(first, second) {
		t.Fatal("compiling the same snapshot twice produced different documents")
	}
}

func TestCompileEmptyItinerary(t *testing.T) {
	doc := Compile(models.Itinerary{Name: "Empty Trip"})
	if len(doc.Days) != 0 || len(doc.Checklist) != 0 {
		t.Fatalf("empty itinerary should compile to empty sections: %+v", doc)
	}
	if doc.StartDate != "" || doc.EndDate != "" {
		t.Fatalf("no dates means no range: %q..%q", doc.StartDate, doc.EndDate)
	}
}

func TestRenderPDF(t *testing.T) {
	doc := Compile(sampleItinerary())

	pdfBytes, err := RenderPDF(doc, "itinerary:itin-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatal("empty PDF output")
	}
	if string(pdfBytes[:5]) != "%PDF-" {
		t.Fatalf("output is not a PDF, starts with %q", pdfBytes[:5])
	}
}

func TestRenderPDFManyVisitsPaginates(t *testing.T) {
	itin := sampleItinerary()
	// Enough visits to overflow a single page.
	for i := 0; i < 40; i++ {
		itin.Visits = append(itin.Visits, models.ScheduledVisit{
			Attraction: models.Attraction{AttractionID: "temple", Name: "Temple Stop", AvgSpendTime: 30, Address: "Kyoto", Buses: []string{"9"}},
			Date:       "2025-04-12",
			StartTime:  "09:00",
		})
	}

	pdfBytes, err := RenderPDF(Compile(itin), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatal("empty PDF output")
	}
}
