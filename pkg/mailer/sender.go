package mailer

import "context"

// Sender is the delivery boundary. Implementations take a fully composed
// payload and perform the actual network send. Retries, timeouts and
// connection handling are their concern.
type Sender interface {
	Send(ctx context.Context, p *Payload) error
}

// SenderFunc adapts a function to the Sender interface.
type SenderFunc func(ctx context.Context, p *Payload) error

// Send calls f(ctx, p).
func (f SenderFunc) Send(ctx context.Context, p *Payload) error {
	return f(ctx, p)
}
