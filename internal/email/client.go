// Package email defines the interface for transactional email delivery and
// provides a SendGrid-backed implementation.
package email

import "context"

// Message is one fully-prepared outbound email. The sender address is owned
// by the transport, not the caller.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender is the interface the quote pipeline uses to send email.
// Tests inject a stub that records calls without hitting the network.
type Sender interface {
	// Send delivers the message, or returns the provider's error. There is no
	// retry or queueing behind this call.
	Send(ctx context.Context, msg Message) error
}
