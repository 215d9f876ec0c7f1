package operation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"cloud.google.com/go/longrunning/autogen/longrunningpb"
	"github.com/googleapis/gax-go/v2"
	"google.golang.org/grpc/status"

	"github.com/jmuk/gcloud-go/internal/interfaces/operations"
)

// pollInterval is the fixed delay between status fetches. polling is a plain
// fixed-interval loop, not exponential backoff, and is not configurable.
const pollInterval = 500 * time.Millisecond

// Operation wraps a server-side long-running operation name together with a
// client capable of fetching, cancelling and deleting it by that name.
//
// Polling is driven by subscription: the first complete subscriber starts the
// poll loop, and it stops when the last one unsubscribes or a terminal event
// fires. An operation nobody subscribes to stays inert. A single failed poll
// cycle is terminal; callers wanting a retry resubmit the original request.
type Operation struct {
	name    string
	client  operations.Client
	decoder Decoder

	// pollCtx governs the RPCs issued by the background poll loop.
	pollCtx context.Context

	emitter *emitter

	// pollInterval is fixed; kept as a field so tests can shorten it.
	pollInterval time.Duration

	mu       sync.Mutex
	polling  bool
	terminal bool
	latest   *longrunningpb.Operation
}

// New creates a handle for the named operation. The context governs the RPCs
// of the background poll loop once a subscriber starts it.
func New(ctx context.Context, client operations.Client, name string, opts ...Option) (*Operation, error) {
	if name == "" {
		return nil, errors.New("operation name must be specified")
	}
	if client == nil {
		return nil, errors.New("operations client must be specified")
	}

	options := &options{}
	for _, opt := range opts {
		if err := opt(options); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	o := &Operation{
		name:         name,
		client:       client,
		decoder:      options.decoder,
		pollCtx:      ctx,
		pollInterval: pollInterval,
	}
	o.emitter = newEmitter(o.handleSubscriptionChange)

	return o, nil
}

// Name returns the server-assigned operation name.
func (o *Operation) Name() string {
	return o.name
}

// Latest returns the last-known operation payload, nil before the first
// fetch.
func (o *Operation) Latest() *longrunningpb.Operation {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.latest
}

// Get issues a single status fetch and returns the raw payload. No retries
// are performed at this layer.
func (o *Operation) Get(ctx context.Context) (*longrunningpb.Operation, error) {
	resp, err := o.client.GetOperation(ctx, &longrunningpb.GetOperationRequest{
		Name: o.name,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get operation: %w", err)
	}

	o.mu.Lock()
	o.latest = resp
	o.mu.Unlock()

	return resp, nil
}

// Cancel asks the server to cancel the operation. Cancellation is
// best-effort on the server side; the poll loop keeps running until the
// server reports a terminal state.
func (o *Operation) Cancel(ctx context.Context) error {
	if _, err := o.client.CancelOperation(ctx, &longrunningpb.CancelOperationRequest{
		Name: o.name,
	}); err != nil {
		return fmt.Errorf("failed to cancel operation: %w", err)
	}
	return nil
}

// Delete removes the server-side record of the operation.
func (o *Operation) Delete(ctx context.Context) error {
	if _, err := o.client.DeleteOperation(ctx, &longrunningpb.DeleteOperationRequest{
		Name: o.name,
	}); err != nil {
		return fmt.Errorf("failed to delete operation: %w", err)
	}
	return nil
}

// OnComplete subscribes a handler for the terminal complete event and returns
// an unsubscribe func. The first complete subscriber starts polling.
// Subscribing after the terminal event yields no notification.
func (o *Operation) OnComplete(h CompleteHandler) func() {
	return o.emitter.subscribeComplete(h)
}

// OnError subscribes a handler for the terminal error event and returns an
// unsubscribe func. Error subscribers alone do not start polling.
func (o *Operation) OnError(h ErrorHandler) func() {
	return o.emitter.subscribeError(h)
}

// Wait blocks until the operation reaches a terminal state or ctx is done.
func (o *Operation) Wait(ctx context.Context) (*Result, error) {
	return o.Future().Wait(ctx)
}

// handleSubscriptionChange is the emitter hook. It starts the poll loop on
// the zero-to-one transition of the complete subscriber count; stopping is
// left to the loop itself, which re-checks the count every cycle.
func (o *Operation) handleSubscriptionChange(active int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	if active == 0 || o.terminal || o.polling {
		return
	}
	o.polling = true
	go o.poll(o.pollCtx)
}

func (o *Operation) poll(ctx context.Context) {
	slog.Debug("operation polling started", slog.String("name", o.name))

	for {
		if !o.pollingActive() {
			slog.Debug("operation polling stopped", slog.String("name", o.name))
			return
		}

		resp, err := o.client.GetOperation(ctx, &longrunningpb.GetOperationRequest{
			Name: o.name,
		})

		// A fetch that resolves after the last unsubscribe is discarded: it
		// refreshes the last-known payload but drives no transition.
		if !o.pollingActive() {
			if resp != nil {
				o.mu.Lock()
				o.latest = resp
				o.mu.Unlock()
			}
			slog.Debug("operation polling stopped", slog.String("name", o.name))
			return
		}

		// A transport failure takes precedence over any logical error the
		// payload might carry.
		if err != nil {
			o.finishError(fmt.Errorf("failed to get operation: %w", err))
			return
		}

		o.mu.Lock()
		o.latest = resp
		o.mu.Unlock()

		if errPb := resp.GetError(); errPb != nil {
			o.finishError(status.ErrorProto(errPb))
			return
		}

		if resp.GetDone() {
			result, err := o.decodeResult(resp)
			if err != nil {
				o.finishError(err)
				return
			}
			o.finishComplete(result)
			return
		}

		if err := gax.Sleep(ctx, o.pollInterval); err != nil {
			o.finishError(err)
			return
		}
	}
}

// pollingActive reports whether the loop should run another cycle. It clears
// the polling flag when it decides to stop, so a later resubscribe can start
// a fresh loop.
func (o *Operation) pollingActive() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.terminal || o.emitter.completeCount() == 0 {
		o.polling = false
		return false
	}
	return true
}

func (o *Operation) finishComplete(result *Result) {
	o.mu.Lock()
	o.terminal = true
	o.polling = false
	o.mu.Unlock()

	slog.Debug("operation completed", slog.String("name", o.name))
	o.emitter.emitComplete(result)
}

func (o *Operation) finishError(err error) {
	o.mu.Lock()
	o.terminal = true
	o.polling = false
	o.mu.Unlock()

	slog.Debug("operation failed", slog.String("name", o.name))
	o.emitter.emitError(err)
}

func (o *Operation) decodeResult(resp *longrunningpb.Operation) (*Result, error) {
	result := &Result{Operation: resp}
	if o.decoder == nil {
		return result, nil
	}

	raw := resp.GetResponse()
	if raw == nil {
		return result, nil
	}

	decoded, err := o.decoder(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode operation response: %w", err)
	}
	result.Response = decoded

	return result, nil
}
