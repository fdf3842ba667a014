package streams

import "testing"

// TestSubscription_CancelRunsHookOnce verifies the cancel hook runs exactly
// once no matter how many times Cancel is called.
func TestSubscription_CancelRunsHookOnce(t *testing.T) {
	calls := 0
	sub := newSubscription(func() { calls++ })

	sub.Cancel()
	sub.Cancel()

	if calls != 1 {
		t.Errorf("cancel hook ran %d times, want 1", calls)
	}
	if !sub.IsCanceled() {
		t.Error("subscription should be canceled")
	}
}

// TestSubscription_SettleSkipsHook verifies that natural termination does
// not run the cancel hook, and a later Cancel is a no-op.
func TestSubscription_SettleSkipsHook(t *testing.T) {
	calls := 0
	sub := newSubscription(func() { calls++ })

	sub.settle()
	sub.Cancel()

	if calls != 0 {
		t.Errorf("cancel hook ran %d times after settle, want 0", calls)
	}
	if !sub.IsCanceled() {
		t.Error("settled subscription should read as canceled")
	}
}

// TestSubscription_NilHook verifies Cancel tolerates a nil hook.
func TestSubscription_NilHook(t *testing.T) {
	sub := newSubscription(nil)
	sub.Cancel()
	if !sub.IsCanceled() {
		t.Error("subscription should be canceled")
	}
}
