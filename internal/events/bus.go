package events

import (
	"context"
	"encoding/json"
	"sync"
)

// EventType represents the type of event
type EventType string

const (
	EventNewOrder      EventType = "new_order"
	EventOrderStatus   EventType = "order_status"
	EventConfigUpdated EventType = "config_updated"
)

// Event represents a server-sent event
type Event struct {
	Type EventType   `json:"type"`
	Data interface{} `json:"data"`
}

// EventBus manages SSE subscriptions and broadcasts events to the admin
// panel.
type EventBus struct {
	subscribers map[string]chan Event
	mu          sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers: make(map[string]chan Event),
	}
}

// Subscribe adds a new subscriber and returns a channel for receiving events
func (eb *EventBus) Subscribe(ctx context.Context, id string) <-chan Event {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	// Buffered so a slow consumer cannot block publishers.
	ch := make(chan Event, 10)
	eb.subscribers[id] = ch

	go func() {
		<-ctx.Done()
		eb.Unsubscribe(id)
	}()

	return ch
}

// Unsubscribe removes a subscriber
func (eb *EventBus) Unsubscribe(id string) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	if ch, exists := eb.subscribers[id]; exists {
		close(ch)
		delete(eb.subscribers, id)
	}
}

// Publish sends an event to all subscribers
func (eb *EventBus) Publish(eventType EventType, data interface{}) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	event := Event{
		Type: eventType,
		Data: data,
	}

	for _, ch := range eb.subscribers {
		select {
		case ch <- event:
		default:
			// Skip if channel is full (prevents blocking)
		}
	}
}

// PublishNewOrder publishes a new order event
func (eb *EventBus) PublishNewOrder(order interface{}) {
	eb.Publish(EventNewOrder, order)
}

// PublishOrderStatus publishes an order status change event
func (eb *EventBus) PublishOrderStatus(orderID string, status string) {
	eb.Publish(EventOrderStatus, map[string]string{
		"order_id": orderID,
		"status":   status,
	})
}

// PublishConfigUpdated publishes a configuration replacement event
func (eb *EventBus) PublishConfigUpdated() {
	eb.Publish(EventConfigUpdated, map[string]string{"status": "updated"})
}

// FormatSSE formats an event as Server-Sent Event string
func FormatSSE(event Event) (string, error) {
	data, err := json.Marshal(event.Data)
	if err != nil {
		return "", err
	}

	return "event: " + string(event.Type) + "\ndata: " + string(data) + "\n\n", nil
}
