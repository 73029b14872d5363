package mail

import "context"

// Sender is the minimal contract a provider adapter must implement. The
// dispatcher treats every Send call as independent; adapters are expected to
// be safe for concurrent use.
type Sender interface {
	Send(ctx context.Context, email *Email) error
}
