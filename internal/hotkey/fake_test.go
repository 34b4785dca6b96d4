package hotkey

import (
	"sync"
	"time"

	"golang.design/x/hotkey"
)

type fakeBinding struct {
	mu           sync.Mutex
	mods         []hotkey.Modifier
	key          hotkey.Key
	keydown      chan hotkey.Event
	registerErr  error
	unregDelay   time.Duration
	registered   bool
	unregistered bool
}

func (f *fakeBinding) Register() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.registerErr != nil {
		return f.registerErr
	}
	f.registered = true
	return nil
}

func (f *fakeBinding) Unregister() error {
	time.Sleep(f.unregDelay)
	f.mu.Lock()
	defer f.mu.Unlock()
	f.unregistered = true
	return nil
}

func (f *fakeBinding) Keydown() <-chan hotkey.Event { return f.keydown }

func (f *fakeBinding) SimKeydown() { f.keydown <- hotkey.Event{} }

func (f *fakeBinding) wasUnregistered() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.unregistered
}

// live reports whether the OS would still deliver this hotkey.
func (f *fakeBinding) live() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.registered && !f.unregistered
}

// fakeFactory records every binding it hands out.
type fakeFactory struct {
	mu          sync.Mutex
	bindings    []*fakeBinding
	registerErr error
	unregDelay  time.Duration
}

func (ff *fakeFactory) New(mods []hotkey.Modifier, key hotkey.Key) Binding {
	ff.mu.Lock()
	defer ff.mu.Unlock()
	b := &fakeBinding{
		mods:        mods,
		key:         key,
		keydown:     make(chan hotkey.Event, 4),
		registerErr: ff.registerErr,
		unregDelay:  ff.unregDelay,
	}
	ff.bindings = append(ff.bindings, b)
	return b
}

func (ff *fakeFactory) all() []*fakeBinding {
	ff.mu.Lock()
	defer ff.mu.Unlock()
	return append([]*fakeBinding(nil), ff.bindings...)
}

func (ff *fakeFactory) last() *fakeBinding {
	ff.mu.Lock()
	defer ff.mu.Unlock()
	if len(ff.bindings) == 0 {
		return nil
	}
	return ff.bindings[len(ff.bindings)-1]
}
