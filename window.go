package beryl

import "github.com/veandco/go-sdl2/sdl"

// WindowFlags is a bitset of window properties requested at creation time.
type WindowFlags uint32

const (
	WindowFullscreen        WindowFlags = sdl.WINDOW_FULLSCREEN
	WindowFullscreenDesktop WindowFlags = sdl.WINDOW_FULLSCREEN_DESKTOP
	WindowOpenGL            WindowFlags = sdl.WINDOW_OPENGL
	WindowVulkan            WindowFlags = sdl.WINDOW_VULKAN
	WindowMetal             WindowFlags = sdl.WINDOW_METAL
	WindowHidden            WindowFlags = sdl.WINDOW_HIDDEN
	WindowBorderless        WindowFlags = sdl.WINDOW_BORDERLESS
	WindowResizable         WindowFlags = sdl.WINDOW_RESIZABLE
	WindowMinimized         WindowFlags = sdl.WINDOW_MINIMIZED
	WindowMaximized         WindowFlags = sdl.WINDOW_MAXIMIZED
	WindowInputGrabbed      WindowFlags = sdl.WINDOW_INPUT_GRABBED
	WindowAllowHighDPI      WindowFlags = sdl.WINDOW_ALLOW_HIGHDPI
	WindowAlwaysOnTop       WindowFlags = sdl.WINDOW_ALWAYS_ON_TOP
	WindowSkipTaskbar       WindowFlags = sdl.WINDOW_SKIP_TASKBAR
)

// WindowOptions describes a window to create. The zero value asks for a
// 0x0 window at an OS-chosen position, so set Width and Height at least.
type WindowOptions struct {
	Title string

	// X and Y position the window. They are ignored when Centered or
	// Undefined is set; Centered wins when both are.
	X, Y int32
	// Centered centers the window on the primary display.
	Centered bool
	// Undefined lets the OS pick a position.
	Undefined bool

	Width, Height int32

	Flags WindowFlags
}

func (o WindowOptions) position() (x, y int32) {
	switch {
	case o.Centered:
		return sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED
	case o.Undefined:
		return sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED
	default:
		return o.X, o.Y
	}
}

// window is the state shared by every window kind. The kind-specific
// wrappers embed it, so backend-neutral operations read the same everywhere.
type window struct {
	sdl *Sdl
	win *sdl.Window
}

// createWindow runs the native window creation with the options' flags plus
// the backend flags the caller fuses in.
func (s *Sdl) createWindow(opts WindowOptions, backendFlags WindowFlags) (*sdl.Window, error) {
	x, y := opts.position()
	var (
		win *sdl.Window
		err error
	)
	s.do(func() {
		win, err = sdl.CreateWindow(opts.Title, x, y, opts.Width, opts.Height,
			uint32(opts.Flags|backendFlags))
	})
	if err != nil {
		return nil, nativeErr("SDL_CreateWindow", err)
	}
	return win, nil
}

// ID is the window's event id, matching the WindowID field of window,
// keyboard, and mouse events.
func (w *window) ID() uint32 {
	var id uint32
	w.sdl.do(func() {
		id, _ = w.win.GetID()
	})
	return id
}

// Title is the current window title.
func (w *window) Title() string {
	var t string
	w.sdl.do(func() {
		t = w.win.GetTitle()
	})
	return t
}

// SetTitle replaces the window title.
func (w *window) SetTitle(title string) {
	w.sdl.do(func() {
		w.win.SetTitle(title)
	})
}

// Size is the window's client area in screen coordinates. On high-DPI
// displays the drawable size can be larger; backends expose that
// separately.
func (w *window) Size() (width, height int32) {
	w.sdl.do(func() {
		width, height = w.win.GetSize()
	})
	return
}

// SetSize resizes the client area.
func (w *window) SetSize(width, height int32) {
	w.sdl.do(func() {
		w.win.SetSize(width, height)
	})
}

// SetMinimumSize bounds how small the user can resize the window.
func (w *window) SetMinimumSize(width, height int32) {
	w.sdl.do(func() {
		w.win.SetMinimumSize(width, height)
	})
}

// SetMaximumSize bounds how large the user can resize the window.
func (w *window) SetMaximumSize(width, height int32) {
	w.sdl.do(func() {
		w.win.SetMaximumSize(width, height)
	})
}

// WarpMouse moves the mouse cursor to a position inside the window.
func (w *window) WarpMouse(x, y int32) {
	w.sdl.do(func() {
		w.win.WarpMouseInWindow(x, y)
	})
}

// Position is the window position in screen coordinates.
func (w *window) Position() (x, y int32) {
	w.sdl.do(func() {
		x, y = w.win.GetPosition()
	})
	return
}

// SetPosition moves the window.
func (w *window) SetPosition(x, y int32) {
	w.sdl.do(func() {
		w.win.SetPosition(x, y)
	})
}

// Flags is the window's current flag set, which the OS may have changed
// since creation.
func (w *window) Flags() WindowFlags {
	var f uint32
	w.sdl.do(func() {
		f = w.win.GetFlags()
	})
	return WindowFlags(f)
}

// Show makes a hidden window visible.
func (w *window) Show() {
	w.sdl.do(w.win.Show)
}

// Hide hides the window.
func (w *window) Hide() {
	w.sdl.do(w.win.Hide)
}

// Raise brings the window to the front and gives it input focus.
func (w *window) Raise() {
	w.sdl.do(w.win.Raise)
}

// FullscreenStyle selects between windowed and the two fullscreen modes.
type FullscreenStyle uint32

const (
	// Windowed is the ordinary movable window.
	Windowed FullscreenStyle = 0
	// FullscreenExclusive takes over the display, possibly changing its
	// mode.
	FullscreenExclusive FullscreenStyle = sdl.WINDOW_FULLSCREEN
	// FullscreenDesktop covers the desktop at its current resolution.
	FullscreenDesktop FullscreenStyle = sdl.WINDOW_FULLSCREEN_DESKTOP
)

// IsFullscreen reports whether the window currently covers the display in
// either fullscreen style.
func (w *window) IsFullscreen() bool {
	return w.Flags()&WindowFullscreenDesktop != 0
}

// SetFullscreen switches the window between windowed and fullscreen.
func (w *window) SetFullscreen(style FullscreenStyle) error {
	var err error
	w.sdl.do(func() {
		err = w.win.SetFullscreen(uint32(style))
	})
	if err != nil {
		return nativeErr("SDL_SetWindowFullscreen", err)
	}
	return nil
}

// Window is a plain window with no drawing binding. It receives events and
// supports every common window operation; use CreateGlWindow, CreateVkWindow,
// or CreateRendererWindow instead when the window should be drawn into.
type Window struct {
	window
	closed bool
}

// CreateWindow opens a plain window.
func (s *Sdl) CreateWindow(opts WindowOptions) (*Window, error) {
	win, err := s.createWindow(opts, 0)
	if err != nil {
		return nil, err
	}
	s.retain()
	logger().Debug("window created", "title", opts.Title,
		"width", opts.Width, "height", opts.Height)
	return &Window{window: window{sdl: s, win: win}}, nil
}

// Close destroys the window. Further calls do nothing.
func (w *Window) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.sdl.do(func() {
		w.win.Destroy()
	})
	w.sdl.release()
}
