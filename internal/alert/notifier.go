package alert

import "context"

// Notifier delivers a notification to a recipient. Implementations are
// external collaborators (mail, SMS); delivery failure is returned to the
// dispatcher, which decides what to do with it.
type Notifier interface {
	Send(ctx context.Context, recipient, subject, body string) error
}
