package beryl

import "github.com/veandco/go-sdl2/sdl"

func windowEventKind(raw uint8) (WindowEventKind, bool) {
	switch raw {
	case sdl.WINDOWEVENT_SHOWN:
		return WindowShown, true
	case sdl.WINDOWEVENT_HIDDEN:
		return WindowHidden, true
	case sdl.WINDOWEVENT_EXPOSED:
		return WindowExposed, true
	case sdl.WINDOWEVENT_MOVED:
		return WindowMoved, true
	case sdl.WINDOWEVENT_RESIZED:
		return WindowResized, true
	case sdl.WINDOWEVENT_SIZE_CHANGED:
		return WindowSizeChanged, true
	case sdl.WINDOWEVENT_MINIMIZED:
		return WindowMinimized, true
	case sdl.WINDOWEVENT_MAXIMIZED:
		return WindowMaximized, true
	case sdl.WINDOWEVENT_RESTORED:
		return WindowRestored, true
	case sdl.WINDOWEVENT_ENTER:
		return WindowMouseEnter, true
	case sdl.WINDOWEVENT_LEAVE:
		return WindowMouseLeave, true
	case sdl.WINDOWEVENT_FOCUS_GAINED:
		return WindowKeyboardFocusGained, true
	case sdl.WINDOWEVENT_FOCUS_LOST:
		return WindowKeyboardFocusLost, true
	case sdl.WINDOWEVENT_CLOSE:
		return WindowClose, true
	case sdl.WINDOWEVENT_TAKE_FOCUS:
		return WindowTakeFocus, true
	case sdl.WINDOWEVENT_HIT_TEST:
		return WindowHitTest, true
	default:
		return 0, false
	}
}

func rawWindowEvent(kind WindowEventKind) uint8 {
	switch kind {
	case WindowShown:
		return sdl.WINDOWEVENT_SHOWN
	case WindowHidden:
		return sdl.WINDOWEVENT_HIDDEN
	case WindowExposed:
		return sdl.WINDOWEVENT_EXPOSED
	case WindowMoved:
		return sdl.WINDOWEVENT_MOVED
	case WindowResized:
		return sdl.WINDOWEVENT_RESIZED
	case WindowSizeChanged:
		return sdl.WINDOWEVENT_SIZE_CHANGED
	case WindowMinimized:
		return sdl.WINDOWEVENT_MINIMIZED
	case WindowMaximized:
		return sdl.WINDOWEVENT_MAXIMIZED
	case WindowRestored:
		return sdl.WINDOWEVENT_RESTORED
	case WindowMouseEnter:
		return sdl.WINDOWEVENT_ENTER
	case WindowMouseLeave:
		return sdl.WINDOWEVENT_LEAVE
	case WindowKeyboardFocusGained:
		return sdl.WINDOWEVENT_FOCUS_GAINED
	case WindowKeyboardFocusLost:
		return sdl.WINDOWEVENT_FOCUS_LOST
	case WindowClose:
		return sdl.WINDOWEVENT_CLOSE
	case WindowTakeFocus:
		return sdl.WINDOWEVENT_TAKE_FOCUS
	case WindowHitTest:
		return sdl.WINDOWEVENT_HIT_TEST
	default:
		return sdl.WINDOWEVENT_NONE
	}
}

// TranslateEvent converts one raw record into its Event variant.
//
// A raw record whose top-level type is outside the modeled set translates to
// (nil, nil): callers should skip it and keep polling. A record whose
// top-level type is modeled but whose sub-discriminator is not (a window
// event kind or controller device change this package does not name) yields
// ErrUnrepresented.
func TranslateEvent(raw sdl.Event) (Event, error) {
	switch ev := raw.(type) {
	case *sdl.QuitEvent:
		return QuitEvent{Time: ev.Timestamp}, nil

	case *sdl.WindowEvent:
		kind, ok := windowEventKind(ev.Event)
		if !ok {
			return nil, errUnrepresentedf("window event 0x%02x", ev.Event)
		}
		var d1, d2 int32
		if kind == WindowMoved || kind == WindowResized || kind == WindowSizeChanged {
			d1, d2 = ev.Data1, ev.Data2
		}
		return WindowEvent{
			Time:     ev.Timestamp,
			WindowID: ev.WindowID,
			Kind:     kind,
			Data1:    d1,
			Data2:    d2,
		}, nil

	case *sdl.KeyboardEvent:
		return KeyboardEvent{
			Time:      ev.Timestamp,
			WindowID:  ev.WindowID,
			IsPressed: ev.State == sdl.PRESSED,
			Repeat:    ev.Repeat,
			Scancode:  Scancode(ev.Keysym.Scancode),
			Keycode:   Keycode(ev.Keysym.Sym),
			Mod:       Keymod(ev.Keysym.Mod),
		}, nil

	case *sdl.TextInputEvent:
		return TextInputEvent{
			Time:     ev.Timestamp,
			WindowID: ev.WindowID,
			Text:     ev.GetText(),
		}, nil

	case *sdl.MouseMotionEvent:
		return MouseMotionEvent{
			Time:        ev.Timestamp,
			WindowID:    ev.WindowID,
			MouseID:     ev.Which,
			ButtonState: ev.State,
			X:           ev.X,
			Y:           ev.Y,
			DX:          ev.XRel,
			DY:          ev.YRel,
		}, nil

	case *sdl.MouseButtonEvent:
		return MouseButtonEvent{
			Time:      ev.Timestamp,
			WindowID:  ev.WindowID,
			MouseID:   ev.Which,
			Button:    ev.Button,
			IsPressed: ev.State == sdl.PRESSED,
			Clicks:    ev.Clicks,
			X:         ev.X,
			Y:         ev.Y,
		}, nil

	case *sdl.MouseWheelEvent:
		x, y := ev.X, ev.Y
		if ev.Direction == sdl.MOUSEWHEEL_FLIPPED {
			x, y = -x, -y
		}
		return MouseWheelEvent{
			Time:     ev.Timestamp,
			WindowID: ev.WindowID,
			MouseID:  ev.Which,
			X:        x,
			Y:        y,
		}, nil

	case *sdl.ControllerDeviceEvent:
		var kind ControllerDeviceKind
		switch ev.GetType() {
		case sdl.CONTROLLERDEVICEADDED:
			kind = ControllerAdded
		case sdl.CONTROLLERDEVICEREMOVED:
			kind = ControllerRemoved
		case sdl.CONTROLLERDEVICEREMAPPED:
			kind = ControllerRemapped
		default:
			return nil, errUnrepresentedf("controller device event 0x%x", ev.GetType())
		}
		return ControllerDeviceEvent{
			Time:  ev.Timestamp,
			Kind:  kind,
			Which: int32(ev.Which),
		}, nil

	case *sdl.ControllerButtonEvent:
		return ControllerButtonEvent{
			Time:      ev.Timestamp,
			Which:     int32(ev.Which),
			Button:    ControllerButton(ev.Button),
			IsPressed: ev.State == sdl.PRESSED,
		}, nil

	case *sdl.ControllerAxisEvent:
		return ControllerAxisEvent{
			Time:  ev.Timestamp,
			Which: int32(ev.Which),
			Axis:  ControllerAxis(ev.Axis),
			Value: ev.Value,
		}, nil

	default:
		return nil, nil
	}
}

// SerializeEvent converts an Event back into an equivalent raw record.
// TranslateEvent(SerializeEvent(e)) reproduces e for every variant; it is
// the exact inverse except that wheel events always serialize with the
// normal scroll direction.
func SerializeEvent(e Event) sdl.Event {
	switch ev := e.(type) {
	case QuitEvent:
		return &sdl.QuitEvent{Type: sdl.QUIT, Timestamp: ev.Time}

	case WindowEvent:
		return &sdl.WindowEvent{
			Type:      sdl.WINDOWEVENT,
			Timestamp: ev.Time,
			WindowID:  ev.WindowID,
			Event:     rawWindowEvent(ev.Kind),
			Data1:     ev.Data1,
			Data2:     ev.Data2,
		}

	case KeyboardEvent:
		typ := uint32(sdl.KEYUP)
		state := uint8(sdl.RELEASED)
		if ev.IsPressed {
			typ = sdl.KEYDOWN
			state = sdl.PRESSED
		}
		return &sdl.KeyboardEvent{
			Type:      typ,
			Timestamp: ev.Time,
			WindowID:  ev.WindowID,
			State:     state,
			Repeat:    ev.Repeat,
			Keysym: sdl.Keysym{
				Scancode: sdl.Scancode(ev.Scancode),
				Sym:      sdl.Keycode(ev.Keycode),
				Mod:      uint16(ev.Mod),
			},
		}

	case TextInputEvent:
		raw := &sdl.TextInputEvent{
			Type:      sdl.TEXTINPUT,
			Timestamp: ev.Time,
			WindowID:  ev.WindowID,
		}
		n := copy(raw.Text[:len(raw.Text)-1], ev.Text)
		raw.Text[n] = 0
		return raw

	case MouseMotionEvent:
		return &sdl.MouseMotionEvent{
			Type:      sdl.MOUSEMOTION,
			Timestamp: ev.Time,
			WindowID:  ev.WindowID,
			Which:     ev.MouseID,
			State:     ev.ButtonState,
			X:         ev.X,
			Y:         ev.Y,
			XRel:      ev.DX,
			YRel:      ev.DY,
		}

	case MouseButtonEvent:
		typ := uint32(sdl.MOUSEBUTTONUP)
		state := uint8(sdl.RELEASED)
		if ev.IsPressed {
			typ = sdl.MOUSEBUTTONDOWN
			state = sdl.PRESSED
		}
		return &sdl.MouseButtonEvent{
			Type:      typ,
			Timestamp: ev.Time,
			WindowID:  ev.WindowID,
			Which:     ev.MouseID,
			Button:    ev.Button,
			State:     state,
			Clicks:    ev.Clicks,
			X:         ev.X,
			Y:         ev.Y,
		}

	case MouseWheelEvent:
		return &sdl.MouseWheelEvent{
			Type:      sdl.MOUSEWHEEL,
			Timestamp: ev.Time,
			WindowID:  ev.WindowID,
			Which:     ev.MouseID,
			X:         ev.X,
			Y:         ev.Y,
			Direction: sdl.MOUSEWHEEL_NORMAL,
		}

	case ControllerDeviceEvent:
		var typ uint32
		switch ev.Kind {
		case ControllerAdded:
			typ = sdl.CONTROLLERDEVICEADDED
		case ControllerRemoved:
			typ = sdl.CONTROLLERDEVICEREMOVED
		case ControllerRemapped:
			typ = sdl.CONTROLLERDEVICEREMAPPED
		}
		return &sdl.ControllerDeviceEvent{
			Type:      typ,
			Timestamp: ev.Time,
			Which:     sdl.JoystickID(ev.Which),
		}

	case ControllerButtonEvent:
		typ := uint32(sdl.CONTROLLERBUTTONUP)
		state := uint8(sdl.RELEASED)
		if ev.IsPressed {
			typ = sdl.CONTROLLERBUTTONDOWN
			state = sdl.PRESSED
		}
		return &sdl.ControllerButtonEvent{
			Type:      typ,
			Timestamp: ev.Time,
			Which:     sdl.JoystickID(ev.Which),
			Button:    uint8(ev.Button.native()),
			State:     state,
		}

	case ControllerAxisEvent:
		return &sdl.ControllerAxisEvent{
			Type:      sdl.CONTROLLERAXISMOTION,
			Timestamp: ev.Time,
			Which:     sdl.JoystickID(ev.Which),
			Axis:      uint8(ev.Axis.native()),
			Value:     ev.Value,
		}

	default:
		return nil
	}
}
