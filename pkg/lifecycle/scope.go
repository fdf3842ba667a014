// Package lifecycle ties the disposal of controllers and subscriptions to
// an owning scope, so resources created on init are released exactly once
// on teardown.
package lifecycle

import (
	"sync"

	"github.com/go-drift/streams/pkg/streams"
)

// Disposable is anything that releases its resources on Dispose.
type Disposable interface {
	Dispose()
}

// Scope owns a set of cleanup functions and runs them when it is disposed.
// The zero value is ready to use.
//
// Example:
//
//	type session struct {
//	    lifecycle.Scope
//	    events *streams.Controller[Event]
//	}
//
//	func newSession() *session {
//	    s := &session{}
//	    s.events = lifecycle.Use(&s.Scope, streams.NewController[Event])
//	    return s
//	}
//
//	// s.Dispose() closes the controller.
type Scope struct {
	mu        sync.Mutex
	disposers []func()
	disposed  bool
}

// OnDispose registers a cleanup function to run when the scope is disposed.
// Returns an unregister function that removes the cleanup. If the scope is
// already disposed, the cleanup runs immediately.
func (s *Scope) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		cleanup()
		return func() {}
	}

	index := len(s.disposers)
	s.disposers = append(s.disposers, cleanup)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if index < len(s.disposers) {
			s.disposers[index] = nil
		}
	}
}

// Dispose runs all registered cleanups in reverse registration order.
// Dispose is idempotent; each cleanup runs at most once.
func (s *Scope) Dispose() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.disposed {
		return
	}
	s.disposed = true

	// LIFO, matching teardown order of construction.
	for i := len(s.disposers) - 1; i >= 0; i-- {
		if s.disposers[i] != nil {
			s.disposers[i]()
		}
	}
	s.disposers = nil
}

// Disposed returns whether Dispose has run.
func (s *Scope) Disposed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.disposed
}

// Use creates a disposable resource and registers it for automatic disposal
// when the scope is disposed.
//
// Example:
//
//	ctrl := lifecycle.Use(scope, streams.NewController[int])
func Use[C Disposable](s *Scope, create func() C) C {
	resource := create()
	s.OnDispose(resource.Dispose)
	return resource
}

// Listen subscribes to a stream and cancels the subscription when the scope
// is disposed. The subscription is also returned for early cancellation.
func Listen[T any](s *Scope, source streams.Stream[T], handler streams.Handler[T]) *streams.Subscription {
	sub := source.Listen(handler)
	s.OnDispose(sub.Cancel)
	return sub
}
