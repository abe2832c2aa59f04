package notifier

import "context"

// Notifier delivers one-shot alert notifications. Delivery is best-effort:
// a failed notification is logged, never retried by the caller, and the alert
// stays triggered either way.
type Notifier interface {
	Notify(ctx context.Context, title, body string) error
}
