package models

// ChecklistItem is one packable item on the itinerary's checklist.
type ChecklistItem struct {
	ID       string `json:"id" bson:"id"`
	Name     string `json:"name" bson:"name"`
	Category string `json:"category" bson:"category"`
	Checked  bool   `json:"checked" bson:"checked"`
}
