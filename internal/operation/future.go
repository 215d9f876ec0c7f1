package operation

import (
	"context"
	"sync"
)

// Future is a single-resolution view of an operation's terminal event.
// Exactly one of result or error is set, exactly once.
type Future struct {
	done chan struct{}

	once   sync.Once
	result *Result
	err    error
}

// Future subscribes an error handler and a complete handler on the operation
// and returns a future resolved by whichever fires. The internal complete
// subscription goes through the same listener accounting as any other
// subscriber, so obtaining a future starts polling just like subscribing
// directly.
func (o *Operation) Future() *Future {
	f := &Future{done: make(chan struct{})}
	o.OnError(func(err error) {
		f.resolve(nil, err)
	})
	o.OnComplete(func(result *Result) {
		f.resolve(result, nil)
	})
	return f
}

func (f *Future) resolve(result *Result, err error) {
	f.once.Do(func() {
		f.result = result
		f.err = err
		close(f.done)
	})
}

// Wait blocks until the future resolves or ctx is done. A ctx error aborts
// the wait only; the underlying operation and its poll loop are unaffected.
func (f *Future) Wait(ctx context.Context) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-f.done:
		return f.result, f.err
	}
}

// Done returns a channel closed when the future resolves.
func (f *Future) Done() <-chan struct{} {
	return f.done
}
