package notifier

import (
	"context"
	"log"
)

// LogNotifier is the fallback when Telegram is not configured: notifications
// land in the process log instead of being silently dropped.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier { return &LogNotifier{} }

func (n *LogNotifier) Notify(_ context.Context, title, body string) error {
	log.Printf("[ALERT] %s: %s", title, body)
	return nil
}
