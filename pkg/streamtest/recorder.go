// Package streamtest provides helpers for testing stream producers and
// transforms.
package streamtest

import (
	"sync"

	"github.com/go-drift/streams/pkg/streams"
)

// Recorder captures everything delivered to a stream subscription:
// values, errors, and completion. All methods are safe for concurrent use.
type Recorder[T any] struct {
	mu     sync.Mutex
	values []T
	errs   []error
	done   bool
}

// NewRecorder returns an empty recorder.
func NewRecorder[T any]() *Recorder[T] {
	return &Recorder[T]{}
}

// Handler returns a handler that records into r. Pass it to Stream.Listen.
func (r *Recorder[T]) Handler() streams.Handler[T] {
	return streams.Handler[T]{
		OnData: func(value T) {
			r.mu.Lock()
			r.values = append(r.values, value)
			r.mu.Unlock()
		},
		OnError: func(err error) {
			r.mu.Lock()
			r.errs = append(r.errs, err)
			r.mu.Unlock()
		},
		OnDone: func() {
			r.mu.Lock()
			r.done = true
			r.mu.Unlock()
		},
	}
}

// Values returns a copy of the recorded values in delivery order.
func (r *Recorder[T]) Values() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, len(r.values))
	copy(out, r.values)
	return out
}

// Errs returns a copy of the recorded errors in delivery order.
func (r *Recorder[T]) Errs() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]error, len(r.errs))
	copy(out, r.errs)
	return out
}

// Err returns the first recorded error, or nil.
func (r *Recorder[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.errs) == 0 {
		return nil
	}
	return r.errs[0]
}

// Done returns whether completion was delivered.
func (r *Recorder[T]) Done() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.done
}
