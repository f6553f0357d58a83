package uikit

// The focus trap runs against a DOM-like environment supplied by the host:
// something that can enumerate focusable elements in document order, report
// the active one, and deliver key events. Everything here is synchronous and
// single-threaded, driven by the host's event loop.

// KeyCode identifies the keys the trap reacts to.
type KeyCode int

const (
	KeyOther KeyCode = iota
	KeyTab
	KeyEscape
)

// KeyEvent is a keyboard event as delivered by the focus scope.
type KeyEvent struct {
	Code  KeyCode
	Shift bool
}

// Focusable is an element that can receive focus.
type Focusable interface {
	Focus()
}

// FocusScope is the dialog's slice of the document.
type FocusScope interface {
	// Focusables returns the focusable descendants in document order.
	Focusables() []Focusable
	// Active returns the currently focused element, or nil.
	Active() Focusable
	// Container returns the dialog element itself, the focus target of
	// last resort.
	Container() Focusable
	// Listen registers a key handler and returns its detach func. Attach
	// and detach are paired on every open/close cycle.
	Listen(func(KeyEvent)) (detach func())
}

// FocusTrap keeps keyboard focus inside a FocusScope while open. Two states:
// closed and open. Opening captures the previously focused element and
// attaches the key handler; closing detaches it and restores focus.
type FocusTrap struct {
	scope   FocusScope
	onClose func()

	// DefaultTarget receives focus on activation when set; otherwise the
	// first focusable descendant, falling back to the container.
	DefaultTarget Focusable

	prev   Focusable
	detach func()
	open   bool
}

// NewFocusTrap returns a closed trap. onClose is invoked once per Escape
// press while the trap is open; it typically flips the dialog's Open flag
// and calls Deactivate.
func NewFocusTrap(scope FocusScope, onClose func()) *FocusTrap {
	return &FocusTrap{scope: scope, onClose: onClose}
}

// Open reports whether the trap is active.
func (t *FocusTrap) Open() bool { return t.open }

// Activate transitions closed -> open: captures the active element, attaches
// the key handler, and moves focus into the scope. Activating an open trap
// is a no-op so the attach/detach pairing holds.
func (t *FocusTrap) Activate() {
	if t.open {
		return
	}
	t.open = true
	t.prev = t.scope.Active()
	t.detach = t.scope.Listen(t.handleKey)

	switch {
	case t.DefaultTarget != nil:
		t.DefaultTarget.Focus()
	default:
		if focusables := t.scope.Focusables(); len(focusables) > 0 {
			focusables[0].Focus()
		} else if c := t.scope.Container(); c != nil {
			c.Focus()
		}
	}
}

// Deactivate transitions open -> closed: detaches the key handler and
// restores focus to the element captured on activation.
func (t *FocusTrap) Deactivate() {
	if !t.open {
		return
	}
	t.open = false
	if t.detach != nil {
		t.detach()
		t.detach = nil
	}
	if t.prev != nil {
		t.prev.Focus()
		t.prev = nil
	}
}

func (t *FocusTrap) handleKey(ev KeyEvent) {
	if !t.open {
		return
	}
	switch ev.Code {
	case KeyEscape:
		if t.onClose != nil {
			t.onClose()
		}
	case KeyTab:
		t.cycle(ev.Shift)
	}
}

// cycle moves focus to the next (or previous) focusable descendant, wrapping
// at both ends. With no focusable descendants focus stays where it is.
func (t *FocusTrap) cycle(backward bool) {
	focusables := t.scope.Focusables()
	n := len(focusables)
	if n == 0 {
		return
	}

	active := t.scope.Active()
	idx := -1
	for i, f := range focusables {
		if f == active {
			idx = i
			break
		}
	}

	var next int
	switch {
	case idx < 0:
		// Focus is on the container or outside the list; enter at an end.
		if backward {
			next = n - 1
		} else {
			next = 0
		}
	case backward:
		next = (idx - 1 + n) % n
	default:
		next = (idx + 1) % n
	}
	focusables[next].Focus()
}
