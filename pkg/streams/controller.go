package streams

import (
	"sync"

	"github.com/go-drift/streams/pkg/errors"
)

// Controller is the producer side of a stream. Multiple listeners can
// subscribe independently; every active subscription receives each value.
//
// Dispatch is synchronous: Add and AddError return only after every handler
// has returned. This is what gives derived streams their backpressure - a
// blocking handler holds up the producer.
type Controller[T any] struct {
	mu     sync.Mutex
	subs   []*subscriber[T]
	closed bool
}

type subscriber[T any] struct {
	sub     *Subscription
	handler Handler[T]
}

// NewController creates a new stream controller.
func NewController[T any]() *Controller[T] {
	return &Controller[T]{}
}

// Stream returns the consumer-side view of the controller.
func (c *Controller[T]) Stream() Stream[T] {
	return controllerStream[T]{c}
}

type controllerStream[T any] struct {
	c *Controller[T]
}

func (s controllerStream[T]) Listen(handler Handler[T]) *Subscription {
	return s.c.listen(handler)
}

// listen registers a subscription. Listening to a closed controller
// completes the subscription immediately.
func (c *Controller[T]) listen(handler Handler[T]) *Subscription {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		sub := newSubscription(nil)
		sub.settle()
		if handler.OnDone != nil {
			handler.OnDone()
		}
		return sub
	}
	entry := &subscriber[T]{handler: handler}
	entry.sub = newSubscription(func() {
		c.remove(entry)
	})
	c.subs = append(c.subs, entry)
	c.mu.Unlock()
	return entry.sub
}

// remove drops a subscription from the controller.
func (c *Controller[T]) remove(entry *subscriber[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, e := range c.subs {
		if e == entry {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			break
		}
	}
}

// snapshot copies the subscriber list so handlers run outside the lock.
func (c *Controller[T]) snapshot() ([]*subscriber[T], bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	subs := make([]*subscriber[T], len(c.subs))
	copy(subs, c.subs)
	return subs, c.closed
}

// Add delivers a value to every active subscription.
// Adding to a closed controller is reported to the error handler and the
// value is dropped.
func (c *Controller[T]) Add(value T) {
	subs, closed := c.snapshot()
	if closed {
		errors.Report(&errors.StreamError{
			Op:   "streams.Controller.Add",
			Kind: errors.KindClosed,
			Err:  ErrClosed,
		})
		return
	}
	for _, e := range subs {
		if e.sub.IsCanceled() || e.handler.OnData == nil {
			continue
		}
		invoke(func() { e.handler.OnData(value) })
	}
}

// AddError delivers an error to every active subscription. The error value
// is forwarded as-is; it is never wrapped or converted. Subscriptions with
// no OnError callback have the error reported to the global handler instead.
func (c *Controller[T]) AddError(err error) {
	subs, closed := c.snapshot()
	if closed {
		errors.Report(&errors.StreamError{
			Op:   "streams.Controller.AddError",
			Kind: errors.KindClosed,
			Err:  ErrClosed,
		})
		return
	}
	for _, e := range subs {
		if e.sub.IsCanceled() {
			continue
		}
		if e.handler.OnError == nil {
			reportUnhandled("streams.Controller.AddError", err)
			continue
		}
		handlerErr := e.handler.OnError
		invoke(func() { handlerErr(err) })
	}
}

// Close completes the stream. Every active subscription receives OnDone
// exactly once and is marked canceled. Close is idempotent.
func (c *Controller[T]) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	subs := c.subs
	c.subs = nil
	c.mu.Unlock()

	for _, e := range subs {
		if e.sub.IsCanceled() {
			continue
		}
		e.sub.settle()
		if e.handler.OnDone != nil {
			invoke(e.handler.OnDone)
		}
	}
}

// Dispose closes the controller. It satisfies lifecycle.Disposable so a
// controller can be owned by a disposal scope.
func (c *Controller[T]) Dispose() {
	c.Close()
}

// HasListeners returns whether the controller has any active subscription.
func (c *Controller[T]) HasListeners() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subs) > 0
}

// IsClosed returns whether Close has been called.
func (c *Controller[T]) IsClosed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.closed
}

// invoke runs a handler callback with panic recovery so one misbehaving
// subscriber cannot tear down the producer.
func invoke(fn func()) {
	defer errors.Recover("streams.Controller.dispatch")
	fn()
}

// reportUnhandled reports an error that was delivered to a subscription
// with no error callback.
func reportUnhandled(op string, err error) {
	errors.Report(&errors.StreamError{
		Op:   op,
		Kind: errors.KindUnhandled,
		Err:  err,
	})
}
