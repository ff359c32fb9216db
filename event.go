package beryl

// Event is one member of the closed set of event types this package models.
// Exhaustive type switches over Event stay meaningful because native records
// outside this set are skipped by the translator rather than surfaced
// through a catch-all variant.
//
// Every event carries the native timestamp of its raw record, in
// milliseconds since SDL initialization.
type Event interface {
	// Timestamp is the native timestamp of the raw record, in milliseconds.
	Timestamp() uint32

	isEvent()
}

// QuitEvent is a user-requested shutdown (window close on the last window,
// Ctrl+C, platform quit gesture).
type QuitEvent struct {
	Time uint32
}

// WindowEventKind discriminates the sub-variants of WindowEvent.
type WindowEventKind uint8

const (
	WindowShown WindowEventKind = iota + 1
	WindowHidden
	WindowExposed
	WindowMoved
	WindowResized
	WindowSizeChanged
	WindowMinimized
	WindowMaximized
	WindowRestored
	WindowMouseEnter
	WindowMouseLeave
	WindowKeyboardFocusGained
	WindowKeyboardFocusLost
	WindowClose
	WindowTakeFocus
	WindowHitTest
)

func (k WindowEventKind) String() string {
	switch k {
	case WindowShown:
		return "Shown"
	case WindowHidden:
		return "Hidden"
	case WindowExposed:
		return "Exposed"
	case WindowMoved:
		return "Moved"
	case WindowResized:
		return "Resized"
	case WindowSizeChanged:
		return "SizeChanged"
	case WindowMinimized:
		return "Minimized"
	case WindowMaximized:
		return "Maximized"
	case WindowRestored:
		return "Restored"
	case WindowMouseEnter:
		return "MouseEnter"
	case WindowMouseLeave:
		return "MouseLeave"
	case WindowKeyboardFocusGained:
		return "KeyboardFocusGained"
	case WindowKeyboardFocusLost:
		return "KeyboardFocusLost"
	case WindowClose:
		return "Close"
	case WindowTakeFocus:
		return "TakeFocus"
	case WindowHitTest:
		return "HitTest"
	default:
		return "Unknown"
	}
}

// WindowEvent is a state change of one window. Data1 and Data2 carry the
// position for WindowMoved and the size for WindowResized; they are zero for
// every other kind.
type WindowEvent struct {
	Time     uint32
	WindowID uint32
	Kind     WindowEventKind
	Data1    int32
	Data2    int32
}

// Position is the new window position for a WindowMoved event.
func (e WindowEvent) Position() (x, y int32) { return e.Data1, e.Data2 }

// Size is the new window size for a WindowResized event.
func (e WindowEvent) Size() (w, h int32) { return e.Data1, e.Data2 }

// KeyboardEvent is a key press or release. Press and release are flattened
// into one variant via IsPressed.
type KeyboardEvent struct {
	Time     uint32
	WindowID uint32
	// IsPressed is true for key-down, false for key-up.
	IsPressed bool
	// Repeat is non-zero when this is an OS key repeat.
	Repeat uint8
	// Scancode identifies the key by physical position.
	Scancode Scancode
	// Keycode identifies the key by the current layout's label.
	Keycode Keycode
	// Mod is the modifier bitmask at the time of the event.
	Mod Keymod
}

// TextInputEvent is a chunk of typed text, already UTF-8.
type TextInputEvent struct {
	Time     uint32
	WindowID uint32
	Text     string
}

// MouseMotionEvent is a cursor move.
//   - X, Y are the window-relative position.
//   - DX, DY are the change since the previous motion event.
//   - ButtonState has bit N set while mouse button N is held.
type MouseMotionEvent struct {
	Time        uint32
	WindowID    uint32
	MouseID     uint32
	ButtonState uint32
	X, Y        int32
	DX, DY      int32
}

// MouseButtonEvent is a button press or release, flattened via IsPressed.
type MouseButtonEvent struct {
	Time      uint32
	WindowID  uint32
	MouseID   uint32
	Button    uint8
	IsPressed bool
	Clicks    uint8
	X, Y      int32
}

// MouseWheelEvent is a wheel move, direction-normalized: X is positive to
// the right and Y is positive away from the user regardless of the
// platform's "natural scrolling" setting.
type MouseWheelEvent struct {
	Time     uint32
	WindowID uint32
	MouseID  uint32
	X, Y     int32
}

// ControllerDeviceKind discriminates the sub-variants of
// ControllerDeviceEvent.
type ControllerDeviceKind uint8

const (
	// ControllerAdded reports a new device; Which is a device index usable
	// with OpenController.
	ControllerAdded ControllerDeviceKind = iota + 1
	// ControllerRemoved reports a removal; Which is the instance id of the
	// now-invalid device.
	ControllerRemoved
	// ControllerRemapped reports a mapping update; Which is an instance id.
	ControllerRemapped
)

// ControllerDeviceEvent is a connection-level controller change. The meaning
// of Which depends on Kind: a device index for ControllerAdded, an instance
// id otherwise.
type ControllerDeviceEvent struct {
	Time  uint32
	Kind  ControllerDeviceKind
	Which int32
}

// ControllerButtonEvent is a controller button press or release.
type ControllerButtonEvent struct {
	Time      uint32
	Which     int32
	Button    ControllerButton
	IsPressed bool
}

// ControllerAxisEvent is a controller axis move, raw and unfiltered; apply
// dead zones via Controller if you need them.
type ControllerAxisEvent struct {
	Time  uint32
	Which int32
	Axis  ControllerAxis
	Value int16
}

func (e QuitEvent) Timestamp() uint32             { return e.Time }
func (e WindowEvent) Timestamp() uint32           { return e.Time }
func (e KeyboardEvent) Timestamp() uint32         { return e.Time }
func (e TextInputEvent) Timestamp() uint32        { return e.Time }
func (e MouseMotionEvent) Timestamp() uint32      { return e.Time }
func (e MouseButtonEvent) Timestamp() uint32      { return e.Time }
func (e MouseWheelEvent) Timestamp() uint32       { return e.Time }
func (e ControllerDeviceEvent) Timestamp() uint32 { return e.Time }
func (e ControllerButtonEvent) Timestamp() uint32 { return e.Time }
func (e ControllerAxisEvent) Timestamp() uint32   { return e.Time }

func (QuitEvent) isEvent()             {}
func (WindowEvent) isEvent()           {}
func (KeyboardEvent) isEvent()         {}
func (TextInputEvent) isEvent()        {}
func (MouseMotionEvent) isEvent()      {}
func (MouseButtonEvent) isEvent()      {}
func (MouseWheelEvent) isEvent()       {}
func (ControllerDeviceEvent) isEvent() {}
func (ControllerButtonEvent) isEvent() {}
func (ControllerAxisEvent) isEvent()   {}
