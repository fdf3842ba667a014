package streams

import (
	"errors"
	"sync/atomic"
)

// ErrClosed is reported when a value or error is added to a controller that
// has already been closed.
var ErrClosed = errors.New("stream controller is closed")

// Handler receives the three signals of a stream subscription.
// Any callback may be nil; nil callbacks are skipped, except that errors
// delivered to a nil OnError are reported to the global error handler.
type Handler[T any] struct {
	OnData  func(value T)
	OnError func(err error)
	OnDone  func()
}

// Stream is a typed sequence of values delivered over time.
//
// Each call to Listen starts one independent consumption with its own
// subscription state. Delivery is synchronous on the producer's goroutine;
// handlers must not assume they run concurrently with the producer.
type Stream[T any] interface {
	// Listen subscribes to the stream and returns the subscription.
	Listen(handler Handler[T]) *Subscription
}

// Subscription represents one active consumption of a stream.
type Subscription struct {
	canceled atomic.Bool
	onCancel func()
}

func newSubscription(onCancel func()) *Subscription {
	return &Subscription{onCancel: onCancel}
}

// Cancel stops delivery on this subscription. For derived streams the
// cancellation propagates to the upstream subscription. Cancel is
// idempotent and safe to call after the stream has completed.
func (s *Subscription) Cancel() {
	if s.canceled.CompareAndSwap(false, true) {
		if s.onCancel != nil {
			s.onCancel()
		}
	}
}

// IsCanceled returns true if this subscription has been canceled or the
// stream has terminated.
func (s *Subscription) IsCanceled() bool {
	return s.canceled.Load()
}

// settle marks the subscription terminated without running the cancel hook.
// Used when the stream completes or fails on its own.
func (s *Subscription) settle() {
	s.canceled.Store(true)
}
