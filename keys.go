package beryl

import "github.com/veandco/go-sdl2/sdl"

// Scancode names a key by physical position, independent of layout.
type Scancode uint32

// Keycode names a key by the label the current layout gives it.
type Keycode int32

// Keymod is a bitmask of held modifier keys.
type Keymod uint16

const (
	KmodNone   Keymod = sdl.KMOD_NONE
	KmodLShift Keymod = sdl.KMOD_LSHIFT
	KmodRShift Keymod = sdl.KMOD_RSHIFT
	KmodLCtrl  Keymod = sdl.KMOD_LCTRL
	KmodRCtrl  Keymod = sdl.KMOD_RCTRL
	KmodLAlt   Keymod = sdl.KMOD_LALT
	KmodRAlt   Keymod = sdl.KMOD_RALT
	KmodLGui   Keymod = sdl.KMOD_LGUI
	KmodRGui   Keymod = sdl.KMOD_RGUI
	KmodNum    Keymod = sdl.KMOD_NUM
	KmodCaps   Keymod = sdl.KMOD_CAPS
	KmodMode   Keymod = sdl.KMOD_MODE

	KmodShift Keymod = sdl.KMOD_SHIFT
	KmodCtrl  Keymod = sdl.KMOD_CTRL
	KmodAlt   Keymod = sdl.KMOD_ALT
	KmodGui   Keymod = sdl.KMOD_GUI
)

// HasShift reports whether either shift key is held.
func (m Keymod) HasShift() bool { return m&KmodShift != 0 }

// HasCtrl reports whether either control key is held.
func (m Keymod) HasCtrl() bool { return m&KmodCtrl != 0 }

// HasAlt reports whether either alt key is held.
func (m Keymod) HasAlt() bool { return m&KmodAlt != 0 }

// HasGui reports whether either GUI ("windows"/"command") key is held.
func (m Keymod) HasGui() bool { return m&KmodGui != 0 }

const (
	ScancodeUnknown   Scancode = sdl.SCANCODE_UNKNOWN
	ScancodeA         Scancode = sdl.SCANCODE_A
	ScancodeB         Scancode = sdl.SCANCODE_B
	ScancodeC         Scancode = sdl.SCANCODE_C
	ScancodeD         Scancode = sdl.SCANCODE_D
	ScancodeE         Scancode = sdl.SCANCODE_E
	ScancodeF         Scancode = sdl.SCANCODE_F
	ScancodeG         Scancode = sdl.SCANCODE_G
	ScancodeH         Scancode = sdl.SCANCODE_H
	ScancodeI         Scancode = sdl.SCANCODE_I
	ScancodeJ         Scancode = sdl.SCANCODE_J
	ScancodeK         Scancode = sdl.SCANCODE_K
	ScancodeL         Scancode = sdl.SCANCODE_L
	ScancodeM         Scancode = sdl.SCANCODE_M
	ScancodeN         Scancode = sdl.SCANCODE_N
	ScancodeO         Scancode = sdl.SCANCODE_O
	ScancodeP         Scancode = sdl.SCANCODE_P
	ScancodeQ         Scancode = sdl.SCANCODE_Q
	ScancodeR         Scancode = sdl.SCANCODE_R
	ScancodeS         Scancode = sdl.SCANCODE_S
	ScancodeT         Scancode = sdl.SCANCODE_T
	ScancodeU         Scancode = sdl.SCANCODE_U
	ScancodeV         Scancode = sdl.SCANCODE_V
	ScancodeW         Scancode = sdl.SCANCODE_W
	ScancodeX         Scancode = sdl.SCANCODE_X
	ScancodeY         Scancode = sdl.SCANCODE_Y
	ScancodeZ         Scancode = sdl.SCANCODE_Z
	Scancode1         Scancode = sdl.SCANCODE_1
	Scancode2         Scancode = sdl.SCANCODE_2
	Scancode3         Scancode = sdl.SCANCODE_3
	Scancode4         Scancode = sdl.SCANCODE_4
	Scancode5         Scancode = sdl.SCANCODE_5
	Scancode6         Scancode = sdl.SCANCODE_6
	Scancode7         Scancode = sdl.SCANCODE_7
	Scancode8         Scancode = sdl.SCANCODE_8
	Scancode9         Scancode = sdl.SCANCODE_9
	Scancode0         Scancode = sdl.SCANCODE_0
	ScancodeReturn    Scancode = sdl.SCANCODE_RETURN
	ScancodeEscape    Scancode = sdl.SCANCODE_ESCAPE
	ScancodeBackspace Scancode = sdl.SCANCODE_BACKSPACE
	ScancodeTab       Scancode = sdl.SCANCODE_TAB
	ScancodeSpace     Scancode = sdl.SCANCODE_SPACE
	ScancodeRight     Scancode = sdl.SCANCODE_RIGHT
	ScancodeLeft      Scancode = sdl.SCANCODE_LEFT
	ScancodeDown      Scancode = sdl.SCANCODE_DOWN
	ScancodeUp        Scancode = sdl.SCANCODE_UP
	ScancodeF1        Scancode = sdl.SCANCODE_F1
	ScancodeF2        Scancode = sdl.SCANCODE_F2
	ScancodeF3        Scancode = sdl.SCANCODE_F3
	ScancodeF4        Scancode = sdl.SCANCODE_F4
	ScancodeF5        Scancode = sdl.SCANCODE_F5
	ScancodeF6        Scancode = sdl.SCANCODE_F6
	ScancodeF7        Scancode = sdl.SCANCODE_F7
	ScancodeF8        Scancode = sdl.SCANCODE_F8
	ScancodeF9        Scancode = sdl.SCANCODE_F9
	ScancodeF10       Scancode = sdl.SCANCODE_F10
	ScancodeF11       Scancode = sdl.SCANCODE_F11
	ScancodeF12       Scancode = sdl.SCANCODE_F12
	ScancodeLCtrl     Scancode = sdl.SCANCODE_LCTRL
	ScancodeLShift    Scancode = sdl.SCANCODE_LSHIFT
	ScancodeLAlt      Scancode = sdl.SCANCODE_LALT
	ScancodeRCtrl     Scancode = sdl.SCANCODE_RCTRL
	ScancodeRShift    Scancode = sdl.SCANCODE_RSHIFT
	ScancodeRAlt      Scancode = sdl.SCANCODE_RALT
)

const (
	KeycodeUnknown   Keycode = sdl.K_UNKNOWN
	KeycodeReturn    Keycode = sdl.K_RETURN
	KeycodeEscape    Keycode = sdl.K_ESCAPE
	KeycodeBackspace Keycode = sdl.K_BACKSPACE
	KeycodeTab       Keycode = sdl.K_TAB
	KeycodeSpace     Keycode = sdl.K_SPACE
	KeycodeA         Keycode = sdl.K_a
	KeycodeB         Keycode = sdl.K_b
	KeycodeC         Keycode = sdl.K_c
	KeycodeD         Keycode = sdl.K_d
	KeycodeE         Keycode = sdl.K_e
	KeycodeF         Keycode = sdl.K_f
	KeycodeG         Keycode = sdl.K_g
	KeycodeH         Keycode = sdl.K_h
	KeycodeI         Keycode = sdl.K_i
	KeycodeJ         Keycode = sdl.K_j
	KeycodeK         Keycode = sdl.K_k
	KeycodeL         Keycode = sdl.K_l
	KeycodeM         Keycode = sdl.K_m
	KeycodeN         Keycode = sdl.K_n
	KeycodeO         Keycode = sdl.K_o
	KeycodeP         Keycode = sdl.K_p
	KeycodeQ         Keycode = sdl.K_q
	KeycodeR         Keycode = sdl.K_r
	KeycodeS         Keycode = sdl.K_s
	KeycodeT         Keycode = sdl.K_t
	KeycodeU         Keycode = sdl.K_u
	KeycodeV         Keycode = sdl.K_v
	KeycodeW         Keycode = sdl.K_w
	KeycodeX         Keycode = sdl.K_x
	KeycodeY         Keycode = sdl.K_y
	KeycodeZ         Keycode = sdl.K_z
	Keycode0         Keycode = sdl.K_0
	Keycode1         Keycode = sdl.K_1
	Keycode2         Keycode = sdl.K_2
	Keycode3         Keycode = sdl.K_3
	Keycode4         Keycode = sdl.K_4
	Keycode5         Keycode = sdl.K_5
	Keycode6         Keycode = sdl.K_6
	Keycode7         Keycode = sdl.K_7
	Keycode8         Keycode = sdl.K_8
	Keycode9         Keycode = sdl.K_9
	KeycodeRight     Keycode = sdl.K_RIGHT
	KeycodeLeft      Keycode = sdl.K_LEFT
	KeycodeDown      Keycode = sdl.K_DOWN
	KeycodeUp        Keycode = sdl.K_UP
	KeycodeF1        Keycode = sdl.K_F1
	KeycodeF2        Keycode = sdl.K_F2
	KeycodeF3        Keycode = sdl.K_F3
	KeycodeF4        Keycode = sdl.K_F4
	KeycodeF5        Keycode = sdl.K_F5
	KeycodeF6        Keycode = sdl.K_F6
	KeycodeF7        Keycode = sdl.K_F7
	KeycodeF8        Keycode = sdl.K_F8
	KeycodeF9        Keycode = sdl.K_F9
	KeycodeF10       Keycode = sdl.K_F10
	KeycodeF11       Keycode = sdl.K_F11
	KeycodeF12       Keycode = sdl.K_F12
)
