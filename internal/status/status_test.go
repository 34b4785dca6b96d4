package status

import (
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestSucceededAutoHides(t *testing.T) {
	s := New(30 * time.Millisecond)
	var changes atomic.Int32
	s.OnChange(func(Snapshot) { changes.Add(1) })

	s.Succeeded()
	if !s.Snapshot().Success {
		t.Fatal("Success = false right after Succeeded")
	}

	time.Sleep(100 * time.Millisecond)
	if s.Snapshot().Success {
		t.Error("success message not hidden")
	}
	if got := changes.Load(); got != 2 {
		t.Errorf("changes = %d, want 2", got)
	}
}

func TestFailedClearsSuccess(t *testing.T) {
	s := New(time.Hour)
	s.Succeeded()
	boom := errors.New("boom")
	s.Failed(boom)

	snap := s.Snapshot()
	if snap.Success {
		t.Error("Success must be cleared by Failed")
	}
	if !errors.Is(snap.Err, boom) {
		t.Errorf("Err = %v, want boom", snap.Err)
	}

	s.Succeeded()
	if s.Snapshot().Err != nil {
		t.Error("Succeeded must clear the error")
	}
}

func TestStaleTimerDoesNotHideNewSuccess(t *testing.T) {
	s := New(200 * time.Millisecond)
	s.Succeeded()
	time.Sleep(120 * time.Millisecond)
	s.Succeeded()

	// The first timer fires here, the second one has not.
	time.Sleep(120 * time.Millisecond)
	if !s.Snapshot().Success {
		t.Error("first timer hid the second success")
	}
}
