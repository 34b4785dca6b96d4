// Package status holds the result of the last screen saver launch for display.
package status

import (
	"sync"
	"time"
)

// SuccessDuration is how long a successful launch stays visible.
const SuccessDuration = 2 * time.Second

// Snapshot is the state shown by the main window.
type Snapshot struct {
	Success bool
	Err     error
}

// Status tracks launch feedback. The zero value is not usable, use New.
type Status struct {
	mu       sync.Mutex
	snap     Snapshot
	gen      uint64
	hideIn   time.Duration
	onChange []func(Snapshot)
}

// New creates a Status whose success message hides after hideIn.
func New(hideIn time.Duration) *Status {
	return &Status{hideIn: hideIn}
}

// OnChange registers fn to be called after every change.
func (s *Status) OnChange(fn func(Snapshot)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, fn)
}

// Snapshot returns the current state.
func (s *Status) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

// Succeeded shows the success message and clears any error.
func (s *Status) Succeeded() {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.snap = Snapshot{Success: true}
	s.mu.Unlock()
	s.notify()

	time.AfterFunc(s.hideIn, func() { s.hide(gen) })
}

// Failed shows err and clears the success message.
func (s *Status) Failed(err error) {
	s.mu.Lock()
	s.gen++
	s.snap = Snapshot{Err: err}
	s.mu.Unlock()
	s.notify()
}

// hide clears the success message unless a newer launch replaced it.
func (s *Status) hide(gen uint64) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.snap.Success = false
	s.mu.Unlock()
	s.notify()
}

func (s *Status) notify() {
	s.mu.Lock()
	snap := s.snap
	fns := append([]func(Snapshot){}, s.onChange...)
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
