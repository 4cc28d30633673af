package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/nats-io/nats.go"

	"chatty/internal/config"
)

// NATSFeed carries change events over NATS, one subject per table
// ("<prefix>.<table>"). NATS preserves publish order per subject, which
// gives the per-table ordering guarantee the session relies on.
type NATSFeed struct {
	nc     *nats.Conn
	prefix string
}

// ConnectNATS connects to the configured NATS server.
func ConnectNATS(cfg *config.Config) (*NATSFeed, error) {
	nc, err := nats.Connect(cfg.NATS.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}

	log.Printf("Connected to NATS at %s", cfg.NATS.URL)

	return &NATSFeed{nc: nc, prefix: cfg.NATS.SubjectPrefix}, nil
}

// NewNATSFeed wraps an existing connection.
func NewNATSFeed(nc *nats.Conn, prefix string) *NATSFeed {
	return &NATSFeed{nc: nc, prefix: prefix}
}

func (f *NATSFeed) subject(table string) string {
	return fmt.Sprintf("%s.%s", f.prefix, table)
}

func (f *NATSFeed) Publish(ctx context.Context, event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	if err := f.nc.Publish(f.subject(event.Table), data); err != nil {
		return fmt.Errorf("failed to publish change for table %s: %w", event.Table, err)
	}
	return nil
}

func (f *NATSFeed) Subscribe(table string, eventType EventType, handler Handler) (Subscription, error) {
	sub, err := f.nc.Subscribe(f.subject(table), func(msg *nats.Msg) {
		var event Event
		if err := json.Unmarshal(msg.Data, &event); err != nil {
			log.Printf("Error unmarshaling change event from %s: %v", msg.Subject, err)
			return
		}
		if !matches(eventType, event.Type) {
			return
		}
		handler(event)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to table %s: %w", table, err)
	}

	return &natsSub{sub: sub}, nil
}

type natsSub struct {
	sub *nats.Subscription
}

func (s *natsSub) Unsubscribe() error {
	return s.sub.Unsubscribe()
}

// Close drains the connection so queued events still reach handlers.
func (f *NATSFeed) Close() {
	if f.nc != nil && !f.nc.IsClosed() {
		if err := f.nc.Drain(); err != nil {
			log.Printf("Error draining NATS connection: %v", err)
		}
	}
}
