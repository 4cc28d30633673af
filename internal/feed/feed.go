// Package feed delivers row-level change events from the backend store to
// subscribed clients, in place of polling. Delivery order is guaranteed
// per table only; streams for different tables may interleave arbitrarily.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
)

type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
	EventAny    EventType = "*"
)

// Event is one row-level change on a table.
type Event struct {
	Table string          `json:"table"`
	Type  EventType       `json:"type"`
	Row   json.RawMessage `json:"row,omitempty"`
}

// DecodeRow unmarshals the affected row into dest.
func (e Event) DecodeRow(dest interface{}) error {
	if len(e.Row) == 0 {
		return fmt.Errorf("event for table %s carries no row", e.Table)
	}
	return json.Unmarshal(e.Row, dest)
}

// NewRowEvent builds an Event carrying the given row.
func NewRowEvent(table string, eventType EventType, row interface{}) (Event, error) {
	data, err := json.Marshal(row)
	if err != nil {
		return Event{}, fmt.Errorf("failed to marshal row for table %s: %w", table, err)
	}
	return Event{Table: table, Type: eventType, Row: data}, nil
}

// Handler is invoked once per matching change.
type Handler func(Event)

// Subscription is a live registration; Unsubscribe stops delivery.
type Subscription interface {
	Unsubscribe() error
}

// Feed is the change-feed contract. Publish is called by the store after
// a successful write; Subscribe registers a handler for one table,
// optionally filtered by event type (EventAny matches all).
type Feed interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(table string, eventType EventType, handler Handler) (Subscription, error)
}

func matches(filter EventType, actual EventType) bool {
	return filter == EventAny || filter == actual
}
