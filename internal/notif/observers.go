package notif

import "log"

// LogObserver writes one line per incoming message. The default
// observer for headless sessions.
type LogObserver struct{}

func NewLogObserver() *LogObserver {
	return &LogObserver{}
}

func (o *LogObserver) Name() string {
	return "log_observer"
}

func (o *LogObserver) Update(event MessageEvent) error {
	preview := event.Preview
	if len(preview) > 60 {
		preview = preview[:57] + "..."
	}
	log.Printf("New message in chat %s from %s: %s", event.ChatID, event.SenderID, preview)
	return nil
}
