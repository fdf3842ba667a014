package streams

// FromSlice returns a cold stream that delivers the given values in order,
// then completes. Delivery happens synchronously during Listen; the handler
// may cancel the returned subscription to stop mid-sequence.
func FromSlice[T any](values []T) Stream[T] {
	return sliceStream[T]{values: values}
}

// Empty returns a stream that completes immediately on Listen without
// delivering any value.
func Empty[T any]() Stream[T] {
	return FromSlice[T](nil)
}

// Failing returns a stream that delivers err and then completes, without
// delivering any value.
func Failing[T any](err error) Stream[T] {
	return failingStream[T]{err: err}
}

type sliceStream[T any] struct {
	values []T
}

func (s sliceStream[T]) Listen(handler Handler[T]) *Subscription {
	sub := newSubscription(nil)
	for _, v := range s.values {
		if sub.IsCanceled() {
			return sub
		}
		if handler.OnData != nil {
			handler.OnData(v)
		}
	}
	if sub.IsCanceled() {
		return sub
	}
	sub.settle()
	if handler.OnDone != nil {
		handler.OnDone()
	}
	return sub
}

type failingStream[T any] struct {
	err error
}

func (s failingStream[T]) Listen(handler Handler[T]) *Subscription {
	sub := newSubscription(nil)
	deliverError("streams.Failing", handler, s.err)
	if sub.IsCanceled() {
		return sub
	}
	sub.settle()
	if handler.OnDone != nil {
		handler.OnDone()
	}
	return sub
}

// deliverError forwards err to the handler's OnError callback, reporting it
// to the global error handler when no callback is registered.
func deliverError[T any](op string, handler Handler[T], err error) {
	if handler.OnError == nil {
		reportUnhandled(op, err)
		return
	}
	handler.OnError(err)
}
