package streams

// OnFirst returns a stream that invokes onFirst with the first value of
// source before forwarding it downstream. Every later value passes through
// untouched.
//
// Dispatch is synchronous, so no further upstream value is delivered while
// onFirst runs; the producer is blocked until the callback returns. The
// callback's completion therefore strictly precedes the downstream
// visibility of the first value.
//
// If onFirst returns a non-nil error, the first value is never forwarded:
// the error is delivered in its place, the upstream subscription is
// canceled, and the stream terminates. An upstream error before any value
// passes through without invoking onFirst.
//
// The "first value" state belongs to one consumption: each Listen on the
// returned stream invokes onFirst again on its own first value. Canceling
// the subscription while onFirst is running lets the callback finish, but
// its value is not delivered.
//
// A nil onFirst yields a plain pass-through of source.
func OnFirst[T any](source Stream[T], onFirst func(value T) error) Stream[T] {
	return firstStream[T]{source: source, onFirst: onFirst}
}

type firstStream[T any] struct {
	source  Stream[T]
	onFirst func(value T) error
}

func (s firstStream[T]) Listen(handler Handler[T]) *Subscription {
	var upstream *Subscription
	sub := newSubscription(func() {
		if upstream != nil {
			upstream.Cancel()
		}
	})
	// Dispatch is single-threaded, so a plain bool is enough.
	seen := false
	upstream = s.source.Listen(Handler[T]{
		OnData: func(value T) {
			if sub.IsCanceled() {
				return
			}
			if !seen {
				seen = true
				if s.onFirst != nil {
					if err := s.onFirst(value); err != nil {
						// Abnormal termination: the error replaces the
						// first value, then the stream ends.
						sub.Cancel()
						deliverError("streams.OnFirst", handler, err)
						if handler.OnDone != nil {
							handler.OnDone()
						}
						return
					}
					if sub.IsCanceled() {
						return
					}
				}
			}
			if handler.OnData != nil {
				handler.OnData(value)
			}
		},
		OnError: func(err error) {
			if sub.IsCanceled() {
				return
			}
			deliverError("streams.OnFirst", handler, err)
		},
		OnDone: func() {
			if sub.IsCanceled() {
				return
			}
			sub.settle()
			if handler.OnDone != nil {
				handler.OnDone()
			}
		},
	})
	if sub.IsCanceled() {
		upstream.Cancel()
	}
	return sub
}
