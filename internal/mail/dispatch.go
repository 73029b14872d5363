package mail

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Dispatcher fans a batch of composed emails out to the provider, one
// goroutine per email, and waits for every send to settle. The provider
// client is injected so tests can swap in a fake.
type Dispatcher struct {
	sender Sender
	logger *zap.Logger
}

// NewDispatcher creates a dispatcher over the given provider adapter.
func NewDispatcher(sender Sender, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{sender: sender, logger: logger}
}

// Dispatch sends every email in the batch concurrently and captures each
// outcome independently. One recipient's failure never blocks or masks
// another's; the call returns only after all sends have settled. Outcomes are
// positionally aligned with the input batch.
func (d *Dispatcher) Dispatch(ctx context.Context, batch []*Email) []Outcome {
	outcomes := make([]Outcome, len(batch))
	var wg sync.WaitGroup
	for i, email := range batch {
		wg.Add(1)
		go func(i int, email *Email) {
			defer wg.Done()
			outcomes[i] = Outcome{To: email.To}
			if err := d.sender.Send(ctx, email); err != nil {
				outcomes[i].Error = err.Error()
				d.logger.Warn("send rejected",
					zap.String("to", email.To),
					zap.Error(err))
			}
		}(i, email)
	}
	wg.Wait()
	return outcomes
}

// DispatchAll sends the batch concurrently and fails as a unit: the first
// rejected send surfaces as the batch error once all goroutines have
// returned. The pipeline does not use this policy; it exists for callers that
// need an all-or-nothing signal.
func (d *Dispatcher) DispatchAll(ctx context.Context, batch []*Email) error {
	// Plain group, not WithContext: a rejected send must not cancel its
	// in-flight siblings.
	var g errgroup.Group
	for _, email := range batch {
		email := email
		g.Go(func() error {
			return d.sender.Send(ctx, email)
		})
	}
	return g.Wait()
}
