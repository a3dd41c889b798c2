package mq

import (
	"context"
	"encoding/json"
	"log"

	"miyako/rdx"
)

// CatalogChannel carries catalog-change events; the planner's snapshot
// refresh worker subscribes to it.
const CatalogChannel = "catalog-events"

// Event describes one catalog mutation.
type Event struct {
	EntityType string `json:"entity_type"`
	Method     string `json:"method"`
	EntityID   string `json:"entity_id"`
}

// Emit publishes a catalog-change event to Redis. Failures are logged and
// swallowed; a missed event only delays a snapshot refresh.
func Emit(ctx context.Context, event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event: %v", err)
		return
	}

	if err := rdx.Conn.Publish(ctx, CatalogChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish event to Redis: %v", err)
	}
}

// Subscribe returns a channel of decoded catalog events.
func Subscribe(ctx context.Context) <-chan Event {
	sub := rdx.Conn.Subscribe(ctx, CatalogChannel)
	out := make(chan Event)

	go func() {
		defer close(out)
		for msg := range sub.Channel() {
			var event Event
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("[Subscribe] Failed to parse event: %v", err)
				continue
			}
			out <- event
		}
	}()

	return out
}
