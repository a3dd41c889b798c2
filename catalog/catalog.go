// Package catalog holds the attraction/category snapshot the planner
// works against. The snapshot loads once at startup (fire-and-forget) and
// refreshes when catalog-change events arrive; planner operations never
// block on the network.
package catalog

import (
	"context"
	"log"
	"sync"

	"miyako/models"
	"miyako/mq"
)

// Source provides attraction and category records for the snapshot.
type Source interface {
	FetchAttractions(ctx context.Context) ([]models.Attraction, error)
	FetchCategories(ctx context.Context) ([]models.Category, error)
}

// Catalog is the in-memory snapshot adapter.
type Catalog struct {
	mu          sync.RWMutex
	attractions []models.Attraction
	categories  []models.Category
	src         Source
}

func New(src Source) *Catalog {
	return &Catalog{src: src}
}

// Refresh replaces the snapshot from the source. The old snapshot stays
// in place if either fetch fails.
func (c *Catalog) Refresh(ctx context.Context) error {
	attractions, err := c.src.FetchAttractions(ctx)
	if err != nil {
		return err
	}
	categories, err := c.src.FetchCategories(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.attractions = attractions
	c.categories = categories
	c.mu.Unlock()
	return nil
}

// Attractions returns the snapshot, filtered to categoryID when non-empty.
func (c *Catalog) Attractions(categoryID string) []models.Attraction {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if categoryID == "" {
		return append([]models.Attraction(nil), c.attractions...)
	}
	var out []models.Attraction
	for _, a := range c.attractions {
		if a.CategoryID == categoryID {
			out = append(out, a)
		}
	}
	return out
}

// Attraction looks up one attraction by id.
func (c *Catalog) Attraction(id string) (models.Attraction, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, a := range c.attractions {
		if a.AttractionID == id {
			return a, true
		}
	}
	return models.Attraction{}, false
}

func (c *Catalog) Categories() []models.Category {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]models.Category(nil), c.categories...)
}

// StartRefreshWorker re-pulls the snapshot whenever a catalog-change
// event is published. Runs until ctx is done.
func (c *Catalog) StartRefreshWorker(ctx context.Context) {
	events := mq.Subscribe(ctx)
	go func() {
		for event := range events {
			log.Printf("[catalog] refresh after %s %s", event.Method, event.EntityID)
			if err := c.Refresh(ctx); err != nil {
				log.Printf("[catalog] refresh failed: %v", err)
			}
		}
	}()
}
