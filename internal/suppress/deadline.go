package suppress

import (
	"context"

	"github.com/pkg/errors"
)

// runBounded executes an OS call that has no cancellation of its own (SCM,
// registry) under the context deadline. On timeout the call keeps running
// in its goroutine but the operation is reported as failed, never retried
// automatically.
func runBounded(ctx context.Context, op string, fn func() error) error {
	done := make(chan error, 1)
	go func() { done <- fn() }()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return errors.Wrapf(ctx.Err(), "%s timed out", op)
	}
}
