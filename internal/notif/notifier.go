// Package notif delivers user-visible notifications for messages that
// arrive from other senders while a session is live.
package notif

import (
	"context"
	"log"
	"sync"
	"time"
)

// MessageEvent describes one incoming message worth notifying about.
type MessageEvent struct {
	ChatID     string    `json:"chat_id"`
	MessageID  string    `json:"message_id"`
	SenderID   string    `json:"sender_id"`
	Preview    string    `json:"preview"`
	ReceivedAt time.Time `json:"received_at"`
}

// Observer receives message events. Implementations decide how to
// surface them (log line, desktop toast, badge count).
type Observer interface {
	Update(event MessageEvent) error
	Name() string
}

// Manager fans message events out to subscribed observers. Async
// delivery runs on a small worker pool; a full channel drops the event
// with a log record rather than blocking the session.
type Manager struct {
	observers    map[string]Observer
	eventChannel chan MessageEvent
	ctx          context.Context
	cancel       context.CancelFunc
	mu           sync.RWMutex
	wg           sync.WaitGroup
}

func NewManager(workerPoolSize int) *Manager {
	if workerPoolSize <= 0 {
		workerPoolSize = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	m := &Manager{
		observers:    make(map[string]Observer),
		eventChannel: make(chan MessageEvent, 256),
		ctx:          ctx,
		cancel:       cancel,
	}

	for i := 0; i < workerPoolSize; i++ {
		m.wg.Add(1)
		go m.processEvents()
	}

	return m
}

func (m *Manager) Subscribe(observer Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers[observer.Name()] = observer
	log.Printf("Observer %s subscribed", observer.Name())
}

func (m *Manager) Unsubscribe(observer Observer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.observers, observer.Name())
	log.Printf("Observer %s unsubscribed", observer.Name())
}

func (m *Manager) Notify(event MessageEvent) {
	m.mu.RLock()
	observers := make([]Observer, 0, len(m.observers))
	for _, obs := range m.observers {
		observers = append(observers, obs)
	}
	m.mu.RUnlock()

	for _, observer := range observers {
		if err := observer.Update(event); err != nil {
			log.Printf("Observer %s update failed: %v", observer.Name(), err)
		}
	}
}

func (m *Manager) NotifyAsync(event MessageEvent) {
	select {
	case m.eventChannel <- event:

	case <-m.ctx.Done():
		return
	default:
		log.Printf("Notification channel full, dropping event for chat %s", event.ChatID)
	}
}

func (m *Manager) processEvents() {
	defer m.wg.Done()

	for {
		select {
		case event := <-m.eventChannel:
			m.Notify(event)
		case <-m.ctx.Done():
			return
		}
	}
}

func (m *Manager) Shutdown() {
	m.cancel()
	m.wg.Wait()
	log.Println("Notification manager shutdown complete")
}
