// Package checklist computes packing-checklist transformations. Every
// operation returns a fresh list that the caller pushes back into the
// itinerary store via ReplaceChecklist; nothing here mutates its input.
package checklist

import (
	"errors"
	"sort"
	"strings"

	"miyako/idgen"
	"miyako/models"
)

// ErrEmptyName means an item name was blank after trimming.
var ErrEmptyName = errors.New("item name is required")

type seedItem struct {
	name     string
	category string
}

// The fixed seed: 22 items across 5 categories.
var seedItems = []seedItem{
	{"Passport", "Essentials"},
	{"Travel Insurance", "Essentials"},
	{"Credit/Debit Cards", "Essentials"},
	{"Cash (Japanese Yen)", "Essentials"},
	{"Travel Adapter", "Essentials"},

	{"Light Jacket/Sweater", "Clothing"},
	{"Comfortable Walking Shoes", "Clothing"},
	{"Socks & Underwear", "Clothing"},
	{"Rain Jacket/Umbrella", "Clothing"},
	{"Sleepwear", "Clothing"},

	{"Smartphone & Charger", "Technology"},
	{"Camera & Charger", "Technology"},
	{"Power Bank", "Technology"},
	{"Headphones", "Technology"},

	{"Toothbrush & Toothpaste", "Toiletries"},
	{"Shampoo & Conditioner", "Toiletries"},
	{"Sunscreen", "Toiletries"},
	{"Medications", "Toiletries"},

	{"Portable Wifi/SIM Card", "Kyoto Specific"},
	{"Japan Rail Pass", "Kyoto Specific"},
	{"Temple Etiquette Guide", "Kyoto Specific"},
	{"Japanese Phrase Book/App", "Kyoto Specific"},
}

// Default returns the seed checklist, all unchecked, with fresh ids.
func Default(ids idgen.Generator) []models.ChecklistItem {
	items := make([]models.ChecklistItem, 0, len(seedItems))
	for _, s := range seedItems {
		items = append(items, models.ChecklistItem{
			ID:       ids.NewID(),
			Name:     s.name,
			Category: s.category,
			Checked:  false,
		})
	}
	return items
}

// Add appends a new unchecked item. The name must be non-blank after
// trimming; the category is free text and stored as given.
func Add(items []models.ChecklistItem, name, category string, ids idgen.Generator) ([]models.ChecklistItem, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	out := append(append([]models.ChecklistItem(nil), items...), models.ChecklistItem{
		ID:       ids.NewID(),
		Name:     name,
		Category: category,
		Checked:  false,
	})
	return out, nil
}

// Remove drops the item with the given id. The bool reports whether
// anything matched; a miss is a no-op.
func Remove(items []models.ChecklistItem, id string) ([]models.ChecklistItem, bool) {
	out := make([]models.ChecklistItem, 0, len(items))
	found := false
	for _, it := range items {
		if it.ID == id {
			found = true
			continue
		}
		out = append(out, it)
	}
	return out, found
}

// Toggle flips the checked state of the item with the given id. A miss is
// a no-op.
func Toggle(items []models.ChecklistItem, id string) ([]models.ChecklistItem, bool) {
	out := append([]models.ChecklistItem(nil), items...)
	for i := range out {
		if out[i].ID == id {
			out[i].Checked = !out[i].Checked
			return out, true
		}
	}
	return out, false
}

// Progress is the packed/total count for one category. Display only.
type Progress struct {
	Total   int `json:"total"`
	Checked int `json:"checked"`
	Percent int `json:"percent"`
}

// CategoryProgress tallies packed counts per category.
func CategoryProgress(items []models.ChecklistItem) map[string]Progress {
	progress := make(map[string]Progress)
	for _, it := range items {
		p := progress[it.Category]
		p.Total++
		if it.Checked {
			p.Checked++
		}
		progress[it.Category] = p
	}
	for cat, p := range progress {
		if p.Total > 0 {
			p.Percent = int(float64(p.Checked)/float64(p.Total)*100 + 0.5)
		}
		progress[cat] = p
	}
	return progress
}

// Categories returns the distinct category labels, sorted ascending.
func Categories(items []models.ChecklistItem) []string {
	seen := make(map[string]bool)
	var cats []string
	for _, it := range items {
		if !seen[it.Category] {
			seen[it.Category] = true
			cats = append(cats, it.Category)
		}
	}
	sort.Strings(cats)
	return cats
}
