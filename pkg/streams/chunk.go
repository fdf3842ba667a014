package streams

import (
	"fmt"

	"github.com/go-drift/streams/pkg/errors"
)

// DefaultChunkSize is the chunk size used when callers have no specific
// bound in mind.
const DefaultChunkSize = 8192

// ChunkSplitter re-emits a stream of batches as sublists of at most a fixed
// size, preserving element order.
//
// Chunks never span source batches: each incoming batch is sliced on its
// own, so every output chunk is drawn from exactly one batch and is
// min(chunkSize, remaining elements of that batch) long. Leftover elements
// at the end of a batch are emitted as a short chunk rather than carried
// into the next batch. Concatenating the output chunks in order reproduces
// the concatenation of the input batches in order.
//
// Output chunks are sub-slices of the source batch and share its backing
// array; producers that reuse batch buffers must hand the splitter a copy.
type ChunkSplitter[T any] struct {
	chunkSize int
}

// NewChunkSplitter creates a splitter producing chunks of at most chunkSize
// elements. A chunkSize that is zero or negative is a configuration error,
// rejected here rather than deferred to the first consumption.
func NewChunkSplitter[T any](chunkSize int) (*ChunkSplitter[T], error) {
	if chunkSize <= 0 {
		return nil, &errors.ConfigError{
			Op:     "streams.NewChunkSplitter",
			Reason: fmt.Sprintf("chunk size must be positive, got %d", chunkSize),
		}
	}
	return &ChunkSplitter[T]{chunkSize: chunkSize}, nil
}

// ChunkSize returns the configured maximum chunk length.
func (s *ChunkSplitter[T]) ChunkSize() int {
	return s.chunkSize
}

// Transform returns the chunked view of source. The returned stream is
// lazy: source is not subscribed until the result is listened to, and each
// Listen starts its own upstream subscription. Errors and completion pass
// through unchanged, after all chunks of batches delivered before them.
func (s *ChunkSplitter[T]) Transform(source Stream[[]T]) Stream[[]T] {
	return chunkStream[T]{source: source, size: s.chunkSize}
}

// Chunked is shorthand for NewChunkSplitter followed by Transform.
func Chunked[T any](source Stream[[]T], chunkSize int) (Stream[[]T], error) {
	splitter, err := NewChunkSplitter[T](chunkSize)
	if err != nil {
		return nil, err
	}
	return splitter.Transform(source), nil
}

type chunkStream[T any] struct {
	source Stream[[]T]
	size   int
}

func (s chunkStream[T]) Listen(handler Handler[[]T]) *Subscription {
	var upstream *Subscription
	sub := newSubscription(func() {
		if upstream != nil {
			upstream.Cancel()
		}
	})
	upstream = s.source.Listen(Handler[[]T]{
		OnData: func(batch []T) {
			for start := 0; start < len(batch); {
				if sub.IsCanceled() {
					return
				}
				end := start + s.size
				if end > len(batch) {
					end = len(batch)
				}
				if handler.OnData != nil {
					handler.OnData(batch[start:end:end])
				}
				start = end
			}
		},
		OnError: func(err error) {
			if sub.IsCanceled() {
				return
			}
			deliverError("streams.Chunked", handler, err)
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
	// A cold source may have finished, or a handler may have canceled,
	// before upstream was assigned.
	if sub.IsCanceled() {
		upstream.Cancel()
	}
	return sub
}
