package feed

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type eventCollector struct {
	mu     sync.Mutex
	events []Event
}

func (c *eventCollector) handler(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

func (c *eventCollector) snapshot() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

func (c *eventCollector) waitFor(t *testing.T, n int) []Event {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if events := c.snapshot(); len(events) >= n {
			return events
		}
		time.Sleep(5 * time.Millisecond)
	}
	events := c.snapshot()
	require.GreaterOrEqual(t, len(events), n, "timed out waiting for %d events, got %d", n, len(events))
	return events
}

func TestNewRowEvent_RoundTrip(t *testing.T) {
	type row struct {
		ID      string `json:"id"`
		Content string `json:"content"`
	}

	event, err := NewRowEvent("messages", EventInsert, row{ID: "m1", Content: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "messages", event.Table)
	assert.Equal(t, EventInsert, event.Type)

	var decoded row
	require.NoError(t, event.DecodeRow(&decoded))
	assert.Equal(t, "m1", decoded.ID)
	assert.Equal(t, "hi", decoded.Content)
}

func TestEvent_DecodeRow_Empty(t *testing.T) {
	event := Event{Table: "chats", Type: EventUpdate}

	var dest map[string]interface{}
	err := event.DecodeRow(&dest)
	assert.Error(t, err)
}

func TestMemory_DeliversMatchingEvents(t *testing.T) {
	m := NewMemory()
	defer m.Close()

	collector := &eventCollector{}
	_, err := m.Subscribe("messages", EventInsert, collector.handler)
	require.NoError(t, err)

	event, err := NewRowEvent("messages", EventInsert, map[string]string{"id": "m1"})
	require.NoError(t, err)
	require.NoError(t, m.Publish(context.Background(), event))

	events := collector.waitFor(t, 1)
	assert.Equal(t, "messages", events[0].Table)
	assert.Equal(t, EventInsert, events[0].Type)
}

func TestMemory_FiltersByTableAndType(t *testing.T) {
	m := NewMemory()
	defer m.Close()

	inserts := &eventCollector{}
	anyChats := &eventCollector{}

	_, err := m.Subscribe("messages", EventInsert, inserts.handler)
	require.NoError(t, err)
	_, err = m.Subscribe("chats", EventAny, anyChats.handler)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, m.Publish(ctx, Event{Table: "messages", Type: EventDelete}))
	require.NoError(t, m.Publish(ctx, Event{Table: "chats", Type: EventUpdate}))
	require.NoError(t, m.Publish(ctx, Event{Table: "messages", Type: EventInsert}))

	got := inserts.waitFor(t, 1)
	assert.Len(t, got, 1)
	assert.Equal(t, EventInsert, got[0].Type)

	chats := anyChats.waitFor(t, 1)
	assert.Equal(t, "chats", chats[0].Table)
}

func TestMemory_PerTableOrdering(t *testing.T) {
	m := NewMemory()
	defer m.Close()

	collector := &eventCollector{}
	_, err := m.Subscribe("typing_indicators", EventAny, collector.handler)
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 10; i++ {
		event, err := NewRowEvent("typing_indicators", EventInsert, map[string]int{"seq": i})
		require.NoError(t, err)
		require.NoError(t, m.Publish(ctx, event))
	}

	events := collector.waitFor(t, 10)
	for i, e := range events[:10] {
		var row map[string]int
		require.NoError(t, e.DecodeRow(&row))
		assert.Equal(t, i, row["seq"])
	}
}

func TestMemory_Unsubscribe(t *testing.T) {
	m := NewMemory()
	defer m.Close()

	collector := &eventCollector{}
	sub, err := m.Subscribe("chats", EventAny, collector.handler)
	require.NoError(t, err)
	require.NoError(t, sub.Unsubscribe())

	require.NoError(t, m.Publish(context.Background(), Event{Table: "chats", Type: EventInsert}))
	m.Close()

	assert.Empty(t, collector.snapshot())
}

func TestMemory_HandlerPanicDoesNotStopDispatch(t *testing.T) {
	m := NewMemory()
	defer m.Close()

	collector := &eventCollector{}
	_, err := m.Subscribe("chats", EventAny, func(Event) { panic("boom") })
	require.NoError(t, err)
	_, err = m.Subscribe("chats", EventAny, collector.handler)
	require.NoError(t, err)

	require.NoError(t, m.Publish(context.Background(), Event{Table: "chats", Type: EventInsert}))
	require.NoError(t, m.Publish(context.Background(), Event{Table: "chats", Type: EventInsert}))

	collector.waitFor(t, 2)
}

func TestNATSFeed_SubjectNaming(t *testing.T) {
	f := &NATSFeed{prefix: "chatty.changes"}
	assert.Equal(t, "chatty.changes.messages", f.subject("messages"))
	assert.Equal(t, "chatty.changes.typing_indicators", f.subject("typing_indicators"))
}
