package ui

import (
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
)

const (
	invalidateInterval = 50 * time.Millisecond
	hideTimeout        = time.Second
)

// Options describe a window.
type Options struct {
	Title  string
	Width  unit.Dp
	Height unit.Dp
	// Fixed disables resizing.
	Fixed bool
}

// Host runs one Gio window in its own goroutine and can show it again after
// it has been closed.
type Host struct {
	mu      sync.Mutex
	opts    Options
	frame   func(gtx layout.Context)
	window  *app.Window
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewHost creates a hidden window. frame draws one frame and handles input.
func NewHost(opts Options, frame func(gtx layout.Context)) *Host {
	return &Host{opts: opts, frame: frame}
}

// SetTitle changes the title used the next time the window opens.
func (h *Host) SetTitle(title string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.opts.Title = title
	if h.window != nil {
		h.window.Option(app.Title(title))
	}
}

// Show opens the window (non-blocking). It returns false when the window is
// already open.
func (h *Host) Show() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.running {
		return false
	}
	h.running = true
	h.stopCh = make(chan struct{})
	h.doneCh = make(chan struct{})
	h.window = new(app.Window)

	go h.runEventLoop(h.window, h.opts, h.stopCh, h.doneCh)
	return true
}

// Hide closes the window and waits briefly for its event loop to exit.
func (h *Host) Hide() {
	doneCh := h.Close()
	if doneCh != nil {
		select {
		case <-doneCh:
		case <-time.After(hideTimeout):
		}
	}
}

// Close asks the window to close without waiting. It is safe to call from
// the frame function. The returned channel is closed once the event loop exits.
func (h *Host) Close() <-chan struct{} {
	h.mu.Lock()
	if !h.running {
		h.mu.Unlock()
		return nil
	}
	h.running = false
	stopCh := h.stopCh
	doneCh := h.doneCh
	h.stopCh = nil
	h.mu.Unlock()

	if stopCh != nil {
		close(stopCh)
	}
	return doneCh
}

// Visible returns true if the window is currently shown.
func (h *Host) Visible() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.running
}

func (h *Host) runEventLoop(w *app.Window, opts Options, stopCh, doneCh chan struct{}) {
	defer func() {
		h.mu.Lock()
		// Closed by the user: allow Show again.
		if h.doneCh == doneCh {
			h.running = false
			h.stopCh = nil
			h.window = nil
		}
		h.mu.Unlock()
		close(doneCh)
	}()

	size := []app.Option{
		app.Title(opts.Title),
		app.Size(opts.Width, opts.Height),
	}
	if opts.Fixed {
		size = append(size,
			app.MinSize(opts.Width, opts.Height),
			app.MaxSize(opts.Width, opts.Height),
		)
	}
	w.Option(size...)

	var ops op.Ops

	// Invalidation goroutine
	go func() {
		ticker := time.NewTicker(invalidateInterval)
		defer ticker.Stop()
		for {
			select {
			case <-stopCh:
				w.Perform(system.ActionClose)
				return
			case <-doneCh:
				return
			case <-ticker.C:
				w.Invalidate()
			}
		}
	}()

	for {
		switch e := w.Event().(type) {
		case app.DestroyEvent:
			return
		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)
			h.frame(gtx)
			e.Frame(gtx.Ops)
		}
	}
}
