package beryl

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"
)

// ControllerAxis names one axis of the standard controller layout.
type ControllerAxis uint8

const (
	AxisLeftX        ControllerAxis = sdl.CONTROLLER_AXIS_LEFTX
	AxisLeftY        ControllerAxis = sdl.CONTROLLER_AXIS_LEFTY
	AxisRightX       ControllerAxis = sdl.CONTROLLER_AXIS_RIGHTX
	AxisRightY       ControllerAxis = sdl.CONTROLLER_AXIS_RIGHTY
	AxisTriggerLeft  ControllerAxis = sdl.CONTROLLER_AXIS_TRIGGERLEFT
	AxisTriggerRight ControllerAxis = sdl.CONTROLLER_AXIS_TRIGGERRIGHT
)

func (a ControllerAxis) native() sdl.GameControllerAxis {
	return sdl.GameControllerAxis(a)
}

func (a ControllerAxis) String() string {
	switch a {
	case AxisLeftX:
		return "LeftX"
	case AxisLeftY:
		return "LeftY"
	case AxisRightX:
		return "RightX"
	case AxisRightY:
		return "RightY"
	case AxisTriggerLeft:
		return "TriggerLeft"
	case AxisTriggerRight:
		return "TriggerRight"
	default:
		return "Unknown"
	}
}

// ControllerButton names one button of the standard controller layout. The
// four face buttons are named by compass position rather than label, so
// code reads the same across controller brands whose labels differ: South
// is the bottom face button wherever it sits.
type ControllerButton uint8

const (
	// ButtonSouth is the bottom face button (A on an Xbox pad).
	ButtonSouth ControllerButton = sdl.CONTROLLER_BUTTON_A
	// ButtonEast is the right face button (B on an Xbox pad).
	ButtonEast ControllerButton = sdl.CONTROLLER_BUTTON_B
	// ButtonWest is the left face button (X on an Xbox pad).
	ButtonWest ControllerButton = sdl.CONTROLLER_BUTTON_X
	// ButtonNorth is the top face button (Y on an Xbox pad).
	ButtonNorth ControllerButton = sdl.CONTROLLER_BUTTON_Y

	ButtonBack          ControllerButton = sdl.CONTROLLER_BUTTON_BACK
	ButtonGuide         ControllerButton = sdl.CONTROLLER_BUTTON_GUIDE
	ButtonStart         ControllerButton = sdl.CONTROLLER_BUTTON_START
	ButtonLeftStick     ControllerButton = sdl.CONTROLLER_BUTTON_LEFTSTICK
	ButtonRightStick    ControllerButton = sdl.CONTROLLER_BUTTON_RIGHTSTICK
	ButtonLeftShoulder  ControllerButton = sdl.CONTROLLER_BUTTON_LEFTSHOULDER
	ButtonRightShoulder ControllerButton = sdl.CONTROLLER_BUTTON_RIGHTSHOULDER
	ButtonDPadUp        ControllerButton = sdl.CONTROLLER_BUTTON_DPAD_UP
	ButtonDPadDown      ControllerButton = sdl.CONTROLLER_BUTTON_DPAD_DOWN
	ButtonDPadLeft      ControllerButton = sdl.CONTROLLER_BUTTON_DPAD_LEFT
	ButtonDPadRight     ControllerButton = sdl.CONTROLLER_BUTTON_DPAD_RIGHT
)

func (b ControllerButton) native() sdl.GameControllerButton {
	return sdl.GameControllerButton(b)
}

func (b ControllerButton) String() string {
	switch b {
	case ButtonSouth:
		return "South"
	case ButtonEast:
		return "East"
	case ButtonWest:
		return "West"
	case ButtonNorth:
		return "North"
	case ButtonBack:
		return "Back"
	case ButtonGuide:
		return "Guide"
	case ButtonStart:
		return "Start"
	case ButtonLeftStick:
		return "LeftStick"
	case ButtonRightStick:
		return "RightStick"
	case ButtonLeftShoulder:
		return "LeftShoulder"
	case ButtonRightShoulder:
		return "RightShoulder"
	case ButtonDPadUp:
		return "DPadUp"
	case ButtonDPadDown:
		return "DPadDown"
	case ButtonDPadLeft:
		return "DPadLeft"
	case ButtonDPadRight:
		return "DPadRight"
	default:
		return "Unknown"
	}
}

// Default dead zones, normalized from the XInput recommended raw values.
const (
	DefaultLeftStickDeadZone  = 7849.0 / 32767.0
	DefaultRightStickDeadZone = 8689.0 / 32767.0
	DefaultTriggerDeadZone    = 3855.0 / 32767.0
)

// normalizeAxis maps a raw axis reading onto [-1, 1].
func normalizeAxis(raw int16) float32 {
	v := float32(raw) / 32767.0
	if v < -1 {
		return -1
	}
	return v
}

// applyRectangularDeadZone normalizes a raw reading and applies a per-axis
// dead zone: readings within dz of center become exactly 0, and the rest of
// the range rescales so output still sweeps 0 to 1 smoothly.
func applyRectangularDeadZone(raw int16, dz float32) float32 {
	v := normalizeAxis(raw)
	a := v
	if a < 0 {
		a = -a
	}
	if a <= dz {
		return 0
	}
	scaled := (a - dz) / (1 - dz)
	if v < 0 {
		return -scaled
	}
	return scaled
}

// applyRadialDeadZone treats a stick's two axes as one vector, zeroing it
// inside the dead-zone circle and rescaling magnitude outside, so diagonal
// deflection is filtered the same as straight deflection.
func applyRadialDeadZone(rawX, rawY int16, dz float32) (x, y float32) {
	vx := normalizeAxis(rawX)
	vy := normalizeAxis(rawY)
	mag := float32(math.Hypot(float64(vx), float64(vy)))
	if mag <= dz {
		return 0, 0
	}
	scaled := (mag - dz) / (1 - dz)
	if scaled > 1 {
		scaled = 1
	}
	return vx / mag * scaled, vy / mag * scaled
}

// Controller is an open device with the standard layout mapping. Its axis
// reads are dead-zone filtered; the per-controller zones start at the
// defaults above and can be tuned per device. It holds the init token
// alive until Close.
type Controller struct {
	sdl    *Sdl
	ctrl   *sdl.GameController
	closed bool

	// Dead zones in normalized units, adjustable between reads.
	LeftStickDeadZone  float32
	RightStickDeadZone float32
	TriggerDeadZone    float32
}

// IsController reports whether the device at a device index has a known
// controller mapping and can be opened with OpenController.
func (s *Sdl) IsController(index int) bool {
	var ok bool
	s.do(func() {
		ok = sdl.IsGameController(index)
	})
	return ok
}

// OpenController opens the device at a device index through its layout
// mapping.
func (s *Sdl) OpenController(index int) (*Controller, error) {
	var ctrl *sdl.GameController
	var errText string
	s.do(func() {
		ctrl = sdl.GameControllerOpen(index)
		if ctrl == nil {
			if e := sdl.GetError(); e != nil {
				errText = e.Error()
			}
		}
	})
	if ctrl == nil {
		return nil, &NativeError{Op: "SDL_GameControllerOpen", Msg: errText}
	}
	s.retain()
	return &Controller{
		sdl:                s,
		ctrl:               ctrl,
		LeftStickDeadZone:  DefaultLeftStickDeadZone,
		RightStickDeadZone: DefaultRightStickDeadZone,
		TriggerDeadZone:    DefaultTriggerDeadZone,
	}, nil
}

// Name is the controller's display name.
func (c *Controller) Name() string {
	var name string
	c.sdl.do(func() {
		name = c.ctrl.Name()
	})
	return name
}

// Attached reports whether the controller is still physically present.
func (c *Controller) Attached() bool {
	var ok bool
	c.sdl.do(func() {
		ok = c.ctrl.Attached()
	})
	return ok
}

// Mapping is the button and axis mapping string in use for this
// controller, or "" when none is set.
func (c *Controller) Mapping() string {
	var m string
	c.sdl.do(func() {
		m = c.ctrl.Mapping()
	})
	return m
}

// InstanceID is the id this controller carries in events.
func (c *Controller) InstanceID() int32 {
	var id sdl.JoystickID
	c.sdl.do(func() {
		id = c.ctrl.Joystick().InstanceID()
	})
	return int32(id)
}

// RawAxis is one axis reading with no dead zone applied.
func (c *Controller) RawAxis(axis ControllerAxis) int16 {
	var v int16
	c.sdl.do(func() {
		v = c.ctrl.Axis(axis.native())
	})
	return v
}

func (c *Controller) deadZoneFor(axis ControllerAxis) float32 {
	switch axis {
	case AxisLeftX, AxisLeftY:
		return c.LeftStickDeadZone
	case AxisRightX, AxisRightY:
		return c.RightStickDeadZone
	default:
		return c.TriggerDeadZone
	}
}

// AxisValue is one axis reading normalized to [-1, 1] with that axis's dead
// zone applied independently. For stick input prefer LeftStick and
// RightStick, which filter both axes together.
func (c *Controller) AxisValue(axis ControllerAxis) float32 {
	return applyRectangularDeadZone(c.RawAxis(axis), c.deadZoneFor(axis))
}

// LeftStick is the left stick deflection with the radial dead zone applied.
func (c *Controller) LeftStick() (x, y float32) {
	return applyRadialDeadZone(c.RawAxis(AxisLeftX), c.RawAxis(AxisLeftY), c.LeftStickDeadZone)
}

// RightStick is the right stick deflection with the radial dead zone
// applied.
func (c *Controller) RightStick() (x, y float32) {
	return applyRadialDeadZone(c.RawAxis(AxisRightX), c.RawAxis(AxisRightY), c.RightStickDeadZone)
}

// IsPressed reports whether one button is held.
func (c *Controller) IsPressed(button ControllerButton) bool {
	var v byte
	c.sdl.do(func() {
		v = c.ctrl.Button(button.native())
	})
	return v != 0
}

// Close releases the controller and drops its hold on the init token.
// Further calls do nothing.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	c.sdl.do(func() {
		c.ctrl.Close()
	})
	c.sdl.release()
}
