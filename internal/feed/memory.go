package feed

import (
	"context"
	"log"
	"sync"
)

// Memory is an in-process Feed. Events pass through a single dispatch
// goroutine so subscribers observe per-table publish order.
type Memory struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]*memorySub

	events chan Event
	done   chan struct{}
	wg     sync.WaitGroup
	closed bool
}

type memorySub struct {
	id        int
	table     string
	eventType EventType
	handler   Handler
	feed      *Memory
}

func (s *memorySub) Unsubscribe() error {
	s.feed.mu.Lock()
	defer s.feed.mu.Unlock()
	delete(s.feed.subs, s.id)
	return nil
}

func NewMemory() *Memory {
	m := &Memory{
		subs:   make(map[int]*memorySub),
		events: make(chan Event, 256),
		done:   make(chan struct{}),
	}

	m.wg.Add(1)
	go m.dispatch()

	return m
}

func (m *Memory) Publish(ctx context.Context, event Event) error {
	select {
	case m.events <- event:
		return nil
	case <-m.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Memory) Subscribe(table string, eventType EventType, handler Handler) (Subscription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	sub := &memorySub{
		id:        m.nextID,
		table:     table,
		eventType: eventType,
		handler:   handler,
		feed:      m,
	}
	m.subs[sub.id] = sub

	return sub, nil
}

func (m *Memory) dispatch() {
	defer m.wg.Done()

	for {
		select {
		case event := <-m.events:
			m.deliver(event)
		case <-m.done:
			// Drain whatever was queued before shutdown.
			for {
				select {
				case event := <-m.events:
					m.deliver(event)
				default:
					return
				}
			}
		}
	}
}

func (m *Memory) deliver(event Event) {
	m.mu.RLock()
	targets := make([]*memorySub, 0, len(m.subs))
	for _, sub := range m.subs {
		if sub.table == event.Table && matches(sub.eventType, event.Type) {
			targets = append(targets, sub)
		}
	}
	m.mu.RUnlock()

	for _, sub := range targets {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("feed handler panic on table %s: %v", event.Table, r)
				}
			}()
			sub.handler(event)
		}()
	}
}

// Close stops dispatching. Pending events are drained first.
func (m *Memory) Close() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	m.mu.Unlock()

	close(m.done)
	m.wg.Wait()
}
