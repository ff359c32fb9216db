package beryl

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

func TestEventRoundTrip(t *testing.T) {
	events := []Event{
		QuitEvent{Time: 42},
		WindowEvent{Time: 1, WindowID: 2, Kind: WindowShown},
		WindowEvent{Time: 1, WindowID: 2, Kind: WindowMoved, Data1: 100, Data2: 200},
		WindowEvent{Time: 1, WindowID: 2, Kind: WindowResized, Data1: 640, Data2: 480},
		WindowEvent{Time: 9, WindowID: 3, Kind: WindowClose},
		KeyboardEvent{Time: 5, WindowID: 1, IsPressed: true, Repeat: 1,
			Scancode: ScancodeA, Keycode: KeycodeA, Mod: KmodLShift},
		KeyboardEvent{Time: 6, WindowID: 1, IsPressed: false,
			Scancode: ScancodeEscape, Keycode: KeycodeEscape},
		TextInputEvent{Time: 7, WindowID: 1, Text: "héllo"},
		MouseMotionEvent{Time: 8, WindowID: 1, MouseID: 0, ButtonState: 1,
			X: 10, Y: 20, DX: -3, DY: 4},
		MouseButtonEvent{Time: 9, WindowID: 1, Button: 1, IsPressed: true,
			Clicks: 2, X: 15, Y: 25},
		MouseButtonEvent{Time: 10, WindowID: 1, Button: 3, IsPressed: false,
			Clicks: 1, X: 15, Y: 25},
		MouseWheelEvent{Time: 11, WindowID: 1, X: 0, Y: -2},
		ControllerDeviceEvent{Time: 12, Kind: ControllerAdded, Which: 0},
		ControllerDeviceEvent{Time: 13, Kind: ControllerRemoved, Which: 7},
		ControllerDeviceEvent{Time: 14, Kind: ControllerRemapped, Which: 7},
		ControllerButtonEvent{Time: 15, Which: 7, Button: ButtonSouth, IsPressed: true},
		ControllerButtonEvent{Time: 16, Which: 7, Button: ButtonDPadLeft, IsPressed: false},
		ControllerAxisEvent{Time: 17, Which: 7, Axis: AxisLeftX, Value: -32768},
	}
	for _, want := range events {
		raw := SerializeEvent(want)
		if raw == nil {
			t.Fatalf("SerializeEvent(%#v) = nil", want)
		}
		got, err := TranslateEvent(raw)
		if err != nil {
			t.Fatalf("TranslateEvent(SerializeEvent(%#v)): %v", want, err)
		}
		if got != want {
			t.Errorf("round trip changed the event:\n got %#v\nwant %#v", got, want)
		}
	}
}

func TestTranslateFlippedWheel(t *testing.T) {
	raw := &sdl.MouseWheelEvent{
		Type:      sdl.MOUSEWHEEL,
		Timestamp: 3,
		WindowID:  1,
		X:         2,
		Y:         -5,
		Direction: sdl.MOUSEWHEEL_FLIPPED,
	}
	got, err := TranslateEvent(raw)
	if err != nil {
		t.Fatal(err)
	}
	wheel, ok := got.(MouseWheelEvent)
	if !ok {
		t.Fatalf("got %T, want MouseWheelEvent", got)
	}
	// Flipped records report negated deltas; translation undoes that so
	// callers always see the normal direction convention.
	if wheel.X != -2 || wheel.Y != 5 {
		t.Errorf("flipped wheel = (%d, %d), want (-2, 5)", wheel.X, wheel.Y)
	}
}

func TestTranslateUnknownWindowKind(t *testing.T) {
	raw := &sdl.WindowEvent{
		Type:      sdl.WINDOWEVENT,
		Timestamp: 1,
		WindowID:  1,
		Event:     0xEE,
	}
	ev, err := TranslateEvent(raw)
	if ev != nil {
		t.Errorf("unexpected event %#v", ev)
	}
	if !errors.Is(err, ErrUnrepresented) {
		t.Errorf("err = %v, want ErrUnrepresented", err)
	}
}

func TestTranslateUnmodeledTopLevel(t *testing.T) {
	// Types outside the modeled set come back as (nil, nil) so pollers can
	// skip them without treating them as failures.
	ev, err := TranslateEvent(&sdl.UserEvent{Type: sdl.USEREVENT, Timestamp: 1})
	if ev != nil || err != nil {
		t.Errorf("TranslateEvent(user event) = %#v, %v, want nil, nil", ev, err)
	}
}

func TestWindowEventHelpers(t *testing.T) {
	moved := WindowEvent{Kind: WindowMoved, Data1: 30, Data2: 40}
	if x, y := moved.Position(); x != 30 || y != 40 {
		t.Errorf("Position() = (%d, %d), want (30, 40)", x, y)
	}
	resized := WindowEvent{Kind: WindowResized, Data1: 800, Data2: 600}
	if w, h := resized.Size(); w != 800 || h != 600 {
		t.Errorf("Size() = (%d, %d), want (800, 600)", w, h)
	}
}

func TestWindowEventKindMapping(t *testing.T) {
	kinds := []WindowEventKind{
		WindowShown, WindowHidden, WindowExposed, WindowMoved, WindowResized,
		WindowSizeChanged, WindowMinimized, WindowMaximized, WindowRestored,
		WindowMouseEnter, WindowMouseLeave, WindowKeyboardFocusGained,
		WindowKeyboardFocusLost, WindowClose, WindowTakeFocus, WindowHitTest,
	}
	for _, k := range kinds {
		raw := rawWindowEvent(k)
		back, ok := windowEventKind(raw)
		if !ok || back != k {
			t.Errorf("kind %v did not survive the raw mapping (raw %#x, back %v, ok %v)",
				k, raw, back, ok)
		}
		if k.String() == "Unknown" {
			t.Errorf("kind %d has no name", k)
		}
	}
}

func TestKeymodPredicates(t *testing.T) {
	tests := []struct {
		name  string
		mod   Keymod
		shift bool
		ctrl  bool
		alt   bool
		gui   bool
	}{
		{"none", KmodNone, false, false, false, false},
		{"left shift", KmodLShift, true, false, false, false},
		{"right ctrl", KmodRCtrl, false, true, false, false},
		{"alt+gui", KmodLAlt | KmodRGui, false, false, true, true},
		{"everything", KmodShift | KmodCtrl | KmodAlt | KmodGui, true, true, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.mod.HasShift(); got != tt.shift {
				t.Errorf("HasShift() = %v, want %v", got, tt.shift)
			}
			if got := tt.mod.HasCtrl(); got != tt.ctrl {
				t.Errorf("HasCtrl() = %v, want %v", got, tt.ctrl)
			}
			if got := tt.mod.HasAlt(); got != tt.alt {
				t.Errorf("HasAlt() = %v, want %v", got, tt.alt)
			}
			if got := tt.mod.HasGui(); got != tt.gui {
				t.Errorf("HasGui() = %v, want %v", got, tt.gui)
			}
		})
	}
}
