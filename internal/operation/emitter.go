package operation

import "sync"

// CompleteHandler receives the terminal result of an operation.
type CompleteHandler func(result *Result)

// ErrorHandler receives the terminal error of an operation.
type ErrorHandler func(err error)

type completeSub struct {
	id      int
	handler CompleteHandler
}

type errorSub struct {
	id      int
	handler ErrorHandler
}

// emitter is the terminal-event surface of an operation. it fires at most one
// of complete or error, never both, and does not replay the event to handlers
// subscribed afterwards.
//
// onSubscriptionChange is invoked with the number of active complete
// subscribers whenever it changes, outside the emitter lock so the hook may
// subscribe or unsubscribe itself.
type emitter struct {
	onSubscriptionChange func(active int)

	mu       sync.Mutex
	nextID   int
	complete []completeSub
	errors   []errorSub
	fired    bool
}

func newEmitter(onSubscriptionChange func(active int)) *emitter {
	return &emitter{
		onSubscriptionChange: onSubscriptionChange,
	}
}

// subscribeComplete registers a complete handler and returns a func that
// removes it. removing an already-removed handler is a no-op.
func (e *emitter) subscribeComplete(h CompleteHandler) func() {
	e.mu.Lock()
	id := e.nextID
	e.nextID++
	e.complete = append(e.complete, completeSub{id: id, handler: h})
	active := len(e.complete)
	e.mu.Unlock()

	e.onSubscriptionChange(active)

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			for i, s := range e.complete {
				if s.id == id {
					e.complete = append(e.complete[:i], e.complete[i+1:]...)
					break
				}
			}
			active := len(e.complete)
			e.mu.Unlock()

			e.onSubscriptionChange(active)
		})
	}
}

// subscribeError registers an error handler. error handlers do not count
// toward the polling activation counter.
func (e *emitter) subscribeError(h ErrorHandler) func() {
	e.mu.Lock()
	id := e.nextID
	e.nextID++
	e.errors = append(e.errors, errorSub{id: id, handler: h})
	e.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			e.mu.Lock()
			defer e.mu.Unlock()
			for i, s := range e.errors {
				if s.id == id {
					e.errors = append(e.errors[:i], e.errors[i+1:]...)
					break
				}
			}
		})
	}
}

func (e *emitter) completeCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.complete)
}

// emitComplete notifies the complete handlers in subscription order. only the
// first emit of either kind has an effect.
func (e *emitter) emitComplete(result *Result) {
	handlers := e.takeComplete()
	for _, h := range handlers {
		h(result)
	}
}

// emitError notifies the error handlers in subscription order. only the first
// emit of either kind has an effect.
func (e *emitter) emitError(err error) {
	handlers := e.takeErrors()
	for _, h := range handlers {
		h(err)
	}
}

func (e *emitter) takeComplete() []CompleteHandler {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.fired {
		return nil
	}
	e.fired = true
	handlers := make([]CompleteHandler, 0, len(e.complete))
	for _, s := range e.complete {
		handlers = append(handlers, s.handler)
	}
	return handlers
}

func (e *emitter) takeErrors() []ErrorHandler {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.fired {
		return nil
	}
	e.fired = true
	handlers := make([]ErrorHandler, 0, len(e.errors))
	for _, s := range e.errors {
		handlers = append(handlers, s.handler)
	}
	return handlers
}
