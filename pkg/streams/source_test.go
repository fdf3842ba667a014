package streams_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/go-drift/streams/pkg/streams"
	"github.com/go-drift/streams/pkg/streamtest"
)

// TestFromSlice_DeliversSynchronously verifies that all values and the
// completion arrive before Listen returns.
func TestFromSlice_DeliversSynchronously(t *testing.T) {
	rec := streamtest.NewRecorder[string]()
	sub := streams.FromSlice([]string{"a", "b"}).Listen(rec.Handler())

	if want := []string{"a", "b"}; !reflect.DeepEqual(rec.Values(), want) {
		t.Errorf("values = %v, want %v", rec.Values(), want)
	}
	if !rec.Done() {
		t.Error("stream should have completed during Listen")
	}
	if !sub.IsCanceled() {
		t.Error("subscription should be terminal after completion")
	}
}

// TestEmpty_CompletesImmediately verifies completion with no values.
func TestEmpty_CompletesImmediately(t *testing.T) {
	rec := streamtest.NewRecorder[int]()
	streams.Empty[int]().Listen(rec.Handler())

	if len(rec.Values()) != 0 {
		t.Errorf("expected no values, got %v", rec.Values())
	}
	if !rec.Done() {
		t.Error("empty stream should complete")
	}
}

// TestFailing_DeliversErrorThenCompletes verifies the error arrives before
// completion and no value is ever delivered.
func TestFailing_DeliversErrorThenCompletes(t *testing.T) {
	boom := errors.New("source failed")
	rec := streamtest.NewRecorder[int]()
	streams.Failing[int](boom).Listen(rec.Handler())

	if len(rec.Values()) != 0 {
		t.Errorf("expected no values, got %v", rec.Values())
	}
	if rec.Err() != boom {
		t.Errorf("error = %v, want %v", rec.Err(), boom)
	}
	if !rec.Done() {
		t.Error("failing stream should terminate")
	}
}

// TestFromSlice_IndependentConsumptions verifies each Listen replays the
// values from the start.
func TestFromSlice_IndependentConsumptions(t *testing.T) {
	source := streams.FromSlice([]int{1, 2})

	first := streamtest.NewRecorder[int]()
	source.Listen(first.Handler())
	second := streamtest.NewRecorder[int]()
	source.Listen(second.Handler())

	if !reflect.DeepEqual(first.Values(), second.Values()) {
		t.Errorf("consumptions differ: %v vs %v", first.Values(), second.Values())
	}
}
