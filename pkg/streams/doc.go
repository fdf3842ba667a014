// Package streams provides typed event streams and stream utilities for
// Drift applications.
//
// # Core Components
//
//   - [Stream]: a typed sequence of values delivered over time to
//     subscribers, with completion and failure signaling. Each call to
//     Listen starts one independent consumption.
//
//   - [Controller]: the producer side of a stream. Values added with Add are
//     dispatched synchronously to every active subscription; Close completes
//     the stream.
//
//   - [ChunkSplitter]: re-emits a stream of batches as bounded sublists of
//     at most a configured size, preserving element order.
//
//   - [OnFirst]: runs a one-time callback on the first value of a stream
//     before that value is forwarded downstream.
//
// # Delivery Model
//
// Dispatch is synchronous and cooperative: Add does not return until every
// subscriber's handler has returned. There are no internal goroutines and no
// buffering, so backpressure is implicit - a handler (or a first-value
// callback) that blocks holds up the producer until it finishes.
//
// # Basic Usage
//
// Create a controller, derive a transformed stream, and subscribe:
//
//	ctrl := streams.NewController[[]int]()
//	chunked, err := streams.Chunked[int](ctrl.Stream(), 1024)
//	if err != nil {
//	    return err
//	}
//	sub := chunked.Listen(streams.Handler[[]int]{
//	    OnData: func(chunk []int) { process(chunk) },
//	    OnDone: func() { finish() },
//	})
//	defer sub.Cancel()
//
//	ctrl.Add(batch)
//	ctrl.Close()
//
// # Constructor Conventions
//
// Controllers and splitters use NewX() constructors returning pointers;
// handlers are immutable configuration and use struct literals.
package streams
