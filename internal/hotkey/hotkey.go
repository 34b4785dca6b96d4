// Package hotkey registers the global launch hotkey.
package hotkey

import (
	"fmt"
	"sync"
	"time"

	"golang.design/x/hotkey"
	"golang.design/x/hotkey/mainthread"

	"screensaver-launcher/internal/config"
	"screensaver-launcher/internal/log"
)

const (
	unregisterTimeout = 500 * time.Millisecond
	debounceInterval  = 300 * time.Millisecond // ignores key repeat
)

// Binding is an OS level hotkey. *hotkey.Hotkey implements it.
type Binding interface {
	Register() error
	Unregister() error
	Keydown() <-chan hotkey.Event
}

// Factory creates a Binding for platform modifiers and key.
type Factory func(mods []hotkey.Modifier, key hotkey.Key) Binding

func newBinding(mods []hotkey.Modifier, key hotkey.Key) Binding {
	return hotkey.New(mods, key)
}

// Handler owns the registered hotkey and its listener.
type Handler struct {
	// regMu serializes whole swaps so two overlapping Apply calls cannot
	// both release before either registers.
	regMu   sync.Mutex
	mu      sync.Mutex
	hk      Binding
	onPress func()
	current config.Shortcut
	stopCh  chan struct{}
	factory Factory
}

// New creates a Handler. onPress is called on key down.
func New(onPress func()) *Handler {
	return &Handler{
		onPress: onPress,
		factory: newBinding,
	}
}

// WithFactory replaces the OS binding factory.
func (h *Handler) WithFactory(f Factory) *Handler {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.factory = f
	return h
}

// Apply parses a hotkey string and registers it in place of the current one.
// A string that does not parse leaves no hotkey registered.
func (h *Handler) Apply(hotkeyString string) error {
	h.regMu.Lock()
	defer h.regMu.Unlock()

	sc, err := config.ParseShortcut(hotkeyString)
	if err != nil {
		h.release()
		log.Hotkey(hotkeyString, err)
		return err
	}
	return h.register(sc)
}

// Register registers sc in place of the current hotkey.
func (h *Handler) Register(sc config.Shortcut) error {
	h.regMu.Lock()
	defer h.regMu.Unlock()
	return h.register(sc)
}

// register does the swap. Caller holds regMu.
func (h *Handler) register(sc config.Shortcut) error {
	log.Debugf("hotkey: registering %s", sc)

	h.release()

	h.mu.Lock()
	defer h.mu.Unlock()

	key, ok := keyMap[sc.Key]
	if !ok {
		err := fmt.Errorf("%w: %q", config.ErrUnknownKey, sc.Key)
		log.Hotkey(sc.String(), err)
		return err
	}

	hk := h.factory(platformModifiers(sc.Modifiers), key)
	if err := hk.Register(); err != nil {
		err = fmt.Errorf("register hotkey %s: %w", sc, err)
		log.Hotkey(sc.String(), err)
		return err
	}

	h.hk = hk
	h.current = sc
	h.stopCh = make(chan struct{})
	log.Hotkey(sc.String(), nil)

	go h.listen(hk, h.stopCh)
	return nil
}

// release stops the listener and unregisters the current hotkey, waiting at
// most unregisterTimeout for the OS to let go of it.
func (h *Handler) release() {
	h.mu.Lock()
	if h.stopCh != nil {
		close(h.stopCh)
		h.stopCh = nil
	}
	oldHk := h.hk
	h.hk = nil
	h.current = config.Shortcut{}
	h.mu.Unlock()

	if oldHk == nil {
		return
	}

	done := make(chan struct{})
	go func() {
		if err := oldHk.Unregister(); err != nil {
			log.Warnf("hotkey: unregister: %v", err)
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(unregisterTimeout):
		log.Warn("hotkey: unregister timeout")
	}
}

func (h *Handler) listen(hk Binding, stopCh chan struct{}) {
	var lastKeydown time.Time
	keydown := hk.Keydown()

	for {
		select {
		case <-stopCh:
			return
		case _, ok := <-keydown:
			if !ok {
				return
			}
			now := time.Now()
			if now.Sub(lastKeydown) < debounceInterval {
				continue
			}
			lastKeydown = now
			if h.onPress != nil {
				h.onPress()
			}
		}
	}
}

// Unregister releases the current hotkey.
func (h *Handler) Unregister() error {
	h.regMu.Lock()
	defer h.regMu.Unlock()
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.stopCh != nil {
		close(h.stopCh)
		h.stopCh = nil
	}

	if h.hk != nil {
		err := h.hk.Unregister()
		h.hk = nil
		h.current = config.Shortcut{}
		return err
	}
	return nil
}

// Current returns the registered hotkey, if any.
func (h *Handler) Current() (config.Shortcut, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current, h.hk != nil
}

// RunOnMainThread runs fn on the main thread, as macOS requires.
func RunOnMainThread(fn func()) {
	mainthread.Init(fn)
}

func platformModifiers(m config.Modifier) []hotkey.Modifier {
	mods := make([]hotkey.Modifier, 0, 4)
	for _, f := range m.List() {
		if mod, ok := modifierMap[f]; ok {
			mods = append(mods, mod)
		}
	}
	return mods
}

// modifierMap is defined per platform:
// - modifiers_linux.go
// - modifiers_darwin.go
// - modifiers_windows.go

// keyMap maps config.Key to hotkey.Key
var keyMap = map[config.Key]hotkey.Key{
	config.KeyA:   hotkey.KeyA,
	config.KeyB:   hotkey.KeyB,
	config.KeyC:   hotkey.KeyC,
	config.KeyD:   hotkey.KeyD,
	config.KeyE:   hotkey.KeyE,
	config.KeyF:   hotkey.KeyF,
	config.KeyG:   hotkey.KeyG,
	config.KeyH:   hotkey.KeyH,
	config.KeyI:   hotkey.KeyI,
	config.KeyJ:   hotkey.KeyJ,
	config.KeyK:   hotkey.KeyK,
	config.KeyL:   hotkey.KeyL,
	config.KeyM:   hotkey.KeyM,
	config.KeyN:   hotkey.KeyN,
	config.KeyO:   hotkey.KeyO,
	config.KeyP:   hotkey.KeyP,
	config.KeyQ:   hotkey.KeyQ,
	config.KeyR:   hotkey.KeyR,
	config.KeyS:   hotkey.KeyS,
	config.KeyT:   hotkey.KeyT,
	config.KeyU:   hotkey.KeyU,
	config.KeyV:   hotkey.KeyV,
	config.KeyW:   hotkey.KeyW,
	config.KeyX:   hotkey.KeyX,
	config.KeyY:   hotkey.KeyY,
	config.KeyZ:   hotkey.KeyZ,
	config.Key0:   hotkey.Key0,
	config.Key1:   hotkey.Key1,
	config.Key2:   hotkey.Key2,
	config.Key3:   hotkey.Key3,
	config.Key4:   hotkey.Key4,
	config.Key5:   hotkey.Key5,
	config.Key6:   hotkey.Key6,
	config.Key7:   hotkey.Key7,
	config.Key8:   hotkey.Key8,
	config.Key9:   hotkey.Key9,
	config.KeyF1:  hotkey.KeyF1,
	config.KeyF2:  hotkey.KeyF2,
	config.KeyF3:  hotkey.KeyF3,
	config.KeyF4:  hotkey.KeyF4,
	config.KeyF5:  hotkey.KeyF5,
	config.KeyF6:  hotkey.KeyF6,
	config.KeyF7:  hotkey.KeyF7,
	config.KeyF8:  hotkey.KeyF8,
	config.KeyF9:  hotkey.KeyF9,
	config.KeyF10: hotkey.KeyF10,
	config.KeyF11: hotkey.KeyF11,
	config.KeyF12: hotkey.KeyF12,
}
