package beryl

import (
	"sync/atomic"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// GlAttr selects one context attribute for GlSetAttribute. Attributes apply
// to the next GL window created, not to any that already exists.
type GlAttr uint32

const (
	GlRedSize                GlAttr = sdl.GL_RED_SIZE
	GlGreenSize              GlAttr = sdl.GL_GREEN_SIZE
	GlBlueSize               GlAttr = sdl.GL_BLUE_SIZE
	GlAlphaSize              GlAttr = sdl.GL_ALPHA_SIZE
	GlBufferSize             GlAttr = sdl.GL_BUFFER_SIZE
	GlDoubleBuffer           GlAttr = sdl.GL_DOUBLEBUFFER
	GlDepthSize              GlAttr = sdl.GL_DEPTH_SIZE
	GlStencilSize            GlAttr = sdl.GL_STENCIL_SIZE
	GlMultisampleBuffers     GlAttr = sdl.GL_MULTISAMPLEBUFFERS
	GlMultisampleSamples     GlAttr = sdl.GL_MULTISAMPLESAMPLES
	GlAcceleratedVisual      GlAttr = sdl.GL_ACCELERATED_VISUAL
	GlContextMajorVersion    GlAttr = sdl.GL_CONTEXT_MAJOR_VERSION
	GlContextMinorVersion    GlAttr = sdl.GL_CONTEXT_MINOR_VERSION
	GlContextFlags           GlAttr = sdl.GL_CONTEXT_FLAGS
	GlContextProfileMask     GlAttr = sdl.GL_CONTEXT_PROFILE_MASK
	GlFramebufferSRGBCapable GlAttr = sdl.GL_FRAMEBUFFER_SRGB_CAPABLE
	GlContextReleaseBehavior GlAttr = sdl.GL_CONTEXT_RELEASE_BEHAVIOR
)

// Values for GlContextProfileMask.
const (
	GlProfileCore          = sdl.GL_CONTEXT_PROFILE_CORE
	GlProfileCompatibility = sdl.GL_CONTEXT_PROFILE_COMPATIBILITY
	GlProfileES            = sdl.GL_CONTEXT_PROFILE_ES
)

// Bits for GlContextFlags.
const (
	GlFlagDebug             = sdl.GL_CONTEXT_DEBUG_FLAG
	GlFlagForwardCompatible = sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG
	GlFlagRobustAccess      = sdl.GL_CONTEXT_ROBUST_ACCESS_FLAG
	GlFlagResetIsolation    = sdl.GL_CONTEXT_RESET_ISOLATION_FLAG
)

// GlSetAttribute stores a context attribute for the next GL window.
func (s *Sdl) GlSetAttribute(attr GlAttr, value int) error {
	var err error
	s.do(func() {
		err = sdl.GLSetAttribute(sdl.GLattr(attr), value)
	})
	if err != nil {
		return nativeErr("SDL_GL_SetAttribute", err)
	}
	return nil
}

// GlGetAttribute reads back a context attribute. After a GL window exists
// this reports the values actually granted, which can differ from what was
// requested.
func (s *Sdl) GlGetAttribute(attr GlAttr) (int, error) {
	var (
		v   int
		err error
	)
	s.do(func() {
		v, err = sdl.GLGetAttribute(sdl.GLattr(attr))
	})
	if err != nil {
		return 0, nativeErr("SDL_GL_GetAttribute", err)
	}
	return v, nil
}

// glAttrDefaults is the documented native default for every exposed
// context attribute. GlContextReleaseBehavior defaults to flush (1).
var glAttrDefaults = []struct {
	attr  GlAttr
	value int
}{
	{GlRedSize, 3},
	{GlGreenSize, 3},
	{GlBlueSize, 2},
	{GlAlphaSize, 0},
	{GlBufferSize, 0},
	{GlDoubleBuffer, 1},
	{GlDepthSize, 16},
	{GlStencilSize, 0},
	{GlMultisampleBuffers, 0},
	{GlMultisampleSamples, 0},
	{GlAcceleratedVisual, -1},
	{GlContextMajorVersion, 2},
	{GlContextMinorVersion, 1},
	{GlContextFlags, 0},
	{GlContextProfileMask, 0},
	{GlFramebufferSRGBCapable, 0},
	{GlContextReleaseBehavior, 1},
}

// GlResetAttributes restores every exposed context attribute to its
// default, as if no GlSetAttribute call had been made.
func (s *Sdl) GlResetAttributes() {
	s.do(func() {
		for _, d := range glAttrDefaults {
			sdl.GLSetAttribute(sdl.GLattr(d.attr), d.value)
		}
	})
}

// SwapInterval is the buffer swap pacing of a GL window.
type SwapInterval int

const (
	// SwapImmediate returns from swaps right away, tearing allowed.
	SwapImmediate SwapInterval = 0
	// SwapVsync blocks swaps until the next vertical retrace.
	SwapVsync SwapInterval = 1
	// SwapAdaptiveVsync syncs to retrace but swaps immediately when a frame
	// is already late. Not every driver supports it.
	SwapAdaptiveVsync SwapInterval = -1
)

// Only one GL window can exist per process: contexts interact with global
// driver state, and the attribute store above is global too.
var glWindowActive atomic.Bool

// GlWindow is a window fused with an OpenGL context that is current on the
// init-owning thread. It holds the init token alive until Close.
type GlWindow struct {
	window
	ctx    sdl.GLContext
	closed bool
}

// CreateGlWindow creates a window, a GL context for it, and makes the
// context current, as one operation. At most one GlWindow can exist at a
// time; a second request fails with ErrContractViolation until the first is
// closed.
func (s *Sdl) CreateGlWindow(opts WindowOptions) (*GlWindow, error) {
	if !glWindowActive.CompareAndSwap(false, true) {
		return nil, violation("a GL window is already open")
	}
	win, err := s.createWindow(opts, WindowOpenGL)
	if err != nil {
		glWindowActive.Store(false)
		return nil, err
	}
	var (
		ctx    sdl.GLContext
		ctxErr error
	)
	s.do(func() {
		ctx, ctxErr = win.GLCreateContext()
		if ctxErr == nil {
			ctxErr = win.GLMakeCurrent(ctx)
		}
	})
	if ctxErr != nil {
		s.do(func() {
			if ctx != nil {
				sdl.GLDeleteContext(ctx)
			}
			win.Destroy()
		})
		glWindowActive.Store(false)
		return nil, nativeErr("SDL_GL_CreateContext", ctxErr)
	}
	s.retain()
	logger().Debug("GL window created", "title", opts.Title, "size", [2]int32{opts.Width, opts.Height})
	return &GlWindow{window: window{sdl: s, win: win}, ctx: ctx}, nil
}

// Swap presents the back buffer, honoring the swap interval.
func (g *GlWindow) Swap() {
	g.sdl.do(g.win.GLSwap)
}

// SetSwapInterval selects the swap pacing. SwapAdaptiveVsync fails on
// drivers without the extension; fall back to SwapVsync then.
func (g *GlWindow) SetSwapInterval(interval SwapInterval) error {
	var err error
	g.sdl.do(func() {
		err = sdl.GLSetSwapInterval(int(interval))
	})
	if err != nil {
		return nativeErr("SDL_GL_SetSwapInterval", err)
	}
	return nil
}

// SwapInterval is the pacing currently in effect.
func (g *GlWindow) SwapInterval() (SwapInterval, error) {
	var (
		v   int
		err error
	)
	g.sdl.do(func() {
		v, err = sdl.GLGetSwapInterval()
	})
	if err != nil {
		return 0, nativeErr("SDL_GL_GetSwapInterval", err)
	}
	return SwapInterval(v), nil
}

// DrawableSize is the size of the GL drawable in pixels, which exceeds
// Size on high-DPI displays.
func (g *GlWindow) DrawableSize() (width, height int32) {
	g.sdl.do(func() {
		width, height = g.win.GLGetDrawableSize()
	})
	return
}

// GetProcAddress looks up a GL function by name, for handing to a loader.
// The result is nil when the driver does not export the name.
func (g *GlWindow) GetProcAddress(name string) unsafe.Pointer {
	var p unsafe.Pointer
	g.sdl.do(func() {
		p = sdl.GLGetProcAddress(name)
	})
	return p
}

// IsExtensionSupported reports whether the current context supports a named
// GL extension.
func (g *GlWindow) IsExtensionSupported(name string) bool {
	var ok bool
	g.sdl.do(func() {
		ok = sdl.GLExtensionSupported(name)
	})
	return ok
}

// Close unbinds and deletes the context, destroys the window, and drops the
// hold on the init token, in that order. Further calls do nothing.
func (g *GlWindow) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.sdl.do(func() {
		g.win.GLMakeCurrent(nil)
		sdl.GLDeleteContext(g.ctx)
		g.win.Destroy()
	})
	glWindowActive.Store(false)
	g.sdl.release()
}
