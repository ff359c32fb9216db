package beryl

import "github.com/veandco/go-sdl2/sdl"

// HatPosition is the bitset state of a joystick hat switch.
type HatPosition uint8

const (
	HatCentered  HatPosition = sdl.HAT_CENTERED
	HatUp        HatPosition = sdl.HAT_UP
	HatRight     HatPosition = sdl.HAT_RIGHT
	HatDown      HatPosition = sdl.HAT_DOWN
	HatLeft      HatPosition = sdl.HAT_LEFT
	HatRightUp   HatPosition = sdl.HAT_RIGHTUP
	HatRightDown HatPosition = sdl.HAT_RIGHTDOWN
	HatLeftUp    HatPosition = sdl.HAT_LEFTUP
	HatLeftDown  HatPosition = sdl.HAT_LEFTDOWN
)

// Joystick is an open raw input device: axes, buttons, and hats with no
// layout mapping. Devices with a known layout are better used through
// Controller. It holds the init token alive until Close.
type Joystick struct {
	sdl    *Sdl
	joy    *sdl.Joystick
	closed bool
}

// NumJoysticks counts the devices currently attached, open or not. Device
// indices run 0..NumJoysticks and shift as devices come and go; prefer
// reacting to ControllerDeviceEvent over polling this.
func (s *Sdl) NumJoysticks() int {
	var n int
	s.do(func() {
		n = sdl.NumJoysticks()
	})
	return n
}

// OpenJoystick opens the device at a device index.
func (s *Sdl) OpenJoystick(index int) (*Joystick, error) {
	var joy *sdl.Joystick
	var errText string
	s.do(func() {
		joy = sdl.JoystickOpen(index)
		if joy == nil {
			if e := sdl.GetError(); e != nil {
				errText = e.Error()
			}
		}
	})
	if joy == nil {
		return nil, &NativeError{Op: "SDL_JoystickOpen", Msg: errText}
	}
	s.retain()
	return &Joystick{sdl: s, joy: joy}, nil
}

// Name is the device's display name.
func (j *Joystick) Name() string {
	var name string
	j.sdl.do(func() {
		name = j.joy.Name()
	})
	return name
}

// InstanceID is the stable id this device carries in events for as long as
// it stays attached.
func (j *Joystick) InstanceID() int32 {
	var id sdl.JoystickID
	j.sdl.do(func() {
		id = j.joy.InstanceID()
	})
	return int32(id)
}

// GUID is the device's stable identity string, the same across replugs and
// machines for the same model.
func (j *Joystick) GUID() string {
	var guid sdl.JoystickGUID
	j.sdl.do(func() {
		guid = j.joy.GUID()
	})
	return sdl.JoystickGetGUIDString(guid)
}

// Vendor is the USB vendor id, or 0 when unavailable.
func (j *Joystick) Vendor() uint16 {
	var v int
	j.sdl.do(func() {
		v = j.joy.Vendor()
	})
	return uint16(v)
}

// Product is the USB product id, or 0 when unavailable.
func (j *Joystick) Product() uint16 {
	var v int
	j.sdl.do(func() {
		v = j.joy.Product()
	})
	return uint16(v)
}

// ProductVersion is the device's version number, or 0 when unavailable.
func (j *Joystick) ProductVersion() uint16 {
	var v int
	j.sdl.do(func() {
		v = j.joy.ProductVersion()
	})
	return uint16(v)
}

// Attached reports whether the device is still physically present.
func (j *Joystick) Attached() bool {
	var ok bool
	j.sdl.do(func() {
		ok = j.joy.Attached()
	})
	return ok
}

// NumAxes is the device's axis count.
func (j *Joystick) NumAxes() int {
	var n int
	j.sdl.do(func() {
		n = j.joy.NumAxes()
	})
	return n
}

// NumButtons is the device's button count.
func (j *Joystick) NumButtons() int {
	var n int
	j.sdl.do(func() {
		n = j.joy.NumButtons()
	})
	return n
}

// NumHats is the device's hat switch count.
func (j *Joystick) NumHats() int {
	var n int
	j.sdl.do(func() {
		n = j.joy.NumHats()
	})
	return n
}

// Axis is the raw position of one axis, full range, no dead zone.
func (j *Joystick) Axis(axis int) int16 {
	var v int16
	j.sdl.do(func() {
		v = j.joy.Axis(axis)
	})
	return v
}

// Button reports whether one button is held.
func (j *Joystick) Button(button int) bool {
	var v byte
	j.sdl.do(func() {
		v = j.joy.Button(button)
	})
	return v != 0
}

// Hat is the position of one hat switch.
func (j *Joystick) Hat(hat int) HatPosition {
	var v byte
	j.sdl.do(func() {
		v = j.joy.Hat(hat)
	})
	return HatPosition(v)
}

// Close releases the device and drops its hold on the init token. Further
// calls do nothing.
func (j *Joystick) Close() {
	if j.closed {
		return
	}
	j.closed = true
	j.sdl.do(func() {
		j.joy.Close()
	})
	j.sdl.release()
}
