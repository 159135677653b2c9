package backend

import (
	"context"

	"riskgate-sdk/domain"
)

// Result carries the outcome of an asynchronous authenticate call. Exactly
// one of Verdict and Err is meaningful.
type Result struct {
	Verdict domain.Verdict
	Err     error
}

// AuthenticateAsync runs the authenticate call on a worker goroutine and
// resolves the returned channel exactly once. The calling goroutine never
// observes a synchronous error; failures arrive through the channel like any
// other outcome. The channel is buffered, so the worker never blocks on an
// abandoned result.
func (b Backend) AuthenticateAsync(ctx context.Context, payload []byte) <-chan Result {
	result := make(chan Result, 1)
	go func() {
		defer close(result)
		verdict, err := b.Authenticate(ctx, payload)
		result <- Result{Verdict: verdict, Err: err}
	}()
	return result
}
