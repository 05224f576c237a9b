package email

import "context"

// Message is a plain-text email ready for delivery.
type Message struct {
	To      string
	Subject string
	Body    string
}

// Sender provides a testable abstraction over email delivery.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
