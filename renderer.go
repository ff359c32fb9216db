package beryl

import (
	"math"
	"sync/atomic"

	"github.com/veandco/go-sdl2/sdl"
)

// RendererFlags selects properties of the 2D renderer backing a
// RendererWindow.
type RendererFlags uint32

const (
	RendererSoftware      RendererFlags = sdl.RENDERER_SOFTWARE
	RendererAccelerated   RendererFlags = sdl.RENDERER_ACCELERATED
	RendererPresentVsync  RendererFlags = sdl.RENDERER_PRESENTVSYNC
	RendererTargetTexture RendererFlags = sdl.RENDERER_TARGETTEXTURE
)

// RendererInfo describes the driver behind a renderer.
type RendererInfo struct {
	Name string
	// Flags is the RendererFlags the driver actually provides.
	Flags RendererFlags
	// TextureFormats lists the pixel formats the driver accepts for
	// textures, preferred first.
	TextureFormats []PixelFormatEnum
	MaxTextureWidth,
	MaxTextureHeight int32
}

// RendererWindow is a window fused with a 2D renderer. It holds the init
// token alive, and is itself held alive by any textures created from it:
// closing the window while textures remain defers the actual teardown until
// the last texture is closed.
type RendererWindow struct {
	window
	ren      *sdl.Renderer
	children atomic.Int32
	closed   atomic.Bool
}

// CreateRendererWindow creates a window and a renderer for it as one
// operation.
func (s *Sdl) CreateRendererWindow(opts WindowOptions, flags RendererFlags) (*RendererWindow, error) {
	win, err := s.createWindow(opts, 0)
	if err != nil {
		return nil, err
	}
	var (
		ren    *sdl.Renderer
		renErr error
	)
	s.do(func() {
		ren, renErr = sdl.CreateRenderer(win, -1, uint32(flags))
	})
	if renErr != nil {
		s.do(func() {
			win.Destroy()
		})
		return nil, nativeErr("SDL_CreateRenderer", renErr)
	}
	s.retain()
	logger().Debug("renderer window created", "title", opts.Title)
	return &RendererWindow{window: window{sdl: s, win: win}, ren: ren}, nil
}

func (r *RendererWindow) retain() {
	r.children.Add(1)
}

func (r *RendererWindow) release() {
	if r.children.Add(-1) == 0 && r.closed.Load() {
		r.destroy()
	}
}

func (r *RendererWindow) destroy() {
	r.sdl.do(func() {
		r.ren.Destroy()
		r.win.Destroy()
	})
	r.sdl.release()
}

// Close tears down the renderer and window once no textures remain, and
// drops the hold on the init token then. Further calls do nothing.
func (r *RendererWindow) Close() {
	if r.closed.Swap(true) {
		return
	}
	if r.children.Load() == 0 {
		r.destroy()
	}
}

func rendererInfoFromNative(raw sdl.RendererInfo) RendererInfo {
	n := int(raw.NumTextureFormats)
	if n > len(raw.TextureFormats) {
		n = len(raw.TextureFormats)
	}
	formats := make([]PixelFormatEnum, n)
	for i := 0; i < n; i++ {
		formats[i] = PixelFormatEnum(raw.TextureFormats[i])
	}
	return RendererInfo{
		Name:             raw.Name,
		Flags:            RendererFlags(raw.Flags),
		TextureFormats:   formats,
		MaxTextureWidth:  raw.MaxTextureWidth,
		MaxTextureHeight: raw.MaxTextureHeight,
	}
}

// RenderDrivers lists every render driver compiled into the native library,
// in the order CreateRendererWindow tries them.
func (s *Sdl) RenderDrivers() ([]RendererInfo, error) {
	var (
		infos []RendererInfo
		err   error
	)
	s.do(func() {
		var n int
		n, err = sdl.GetNumRenderDrivers()
		if err != nil {
			return
		}
		infos = make([]RendererInfo, 0, n)
		for i := 0; i < n; i++ {
			var raw sdl.RendererInfo
			if _, err = sdl.GetRenderDriverInfo(i, &raw); err != nil {
				return
			}
			infos = append(infos, rendererInfoFromNative(raw))
		}
	})
	if err != nil {
		return nil, nativeErr("SDL_GetRenderDriverInfo", err)
	}
	return infos, nil
}

// Info reports what the driver behind this renderer supports.
func (r *RendererWindow) Info() (RendererInfo, error) {
	var (
		raw sdl.RendererInfo
		err error
	)
	r.sdl.do(func() {
		raw, err = r.ren.GetInfo()
	})
	if err != nil {
		return RendererInfo{}, nativeErr("SDL_GetRendererInfo", err)
	}
	return rendererInfoFromNative(raw), nil
}

// OutputSize is the renderer's target size in pixels, which exceeds the
// window Size on high-DPI displays.
func (r *RendererWindow) OutputSize() (width, height int32, err error) {
	r.sdl.do(func() {
		width, height, err = r.ren.GetOutputSize()
	})
	if err != nil {
		return 0, 0, nativeErr("SDL_GetRendererOutputSize", err)
	}
	return width, height, nil
}

// SetDrawColor sets the color used by Clear and the draw and fill
// operations.
func (r *RendererWindow) SetDrawColor(c Color) error {
	var err error
	r.sdl.do(func() {
		err = r.ren.SetDrawColor(c.R, c.G, c.B, c.A)
	})
	if err != nil {
		return nativeErr("SDL_SetRenderDrawColor", err)
	}
	return nil
}

// DrawColor reads back the current draw color.
func (r *RendererWindow) DrawColor() (Color, error) {
	var (
		c   Color
		err error
	)
	r.sdl.do(func() {
		c.R, c.G, c.B, c.A, err = r.ren.GetDrawColor()
	})
	if err != nil {
		return Color{}, nativeErr("SDL_GetRenderDrawColor", err)
	}
	return c, nil
}

// Clear fills the whole target with the draw color, ignoring any clip.
func (r *RendererWindow) Clear() error {
	var err error
	r.sdl.do(func() {
		err = r.ren.Clear()
	})
	if err != nil {
		return nativeErr("SDL_RenderClear", err)
	}
	return nil
}

// Present shows the frame drawn since the last Present. The backbuffer
// contents are undefined afterwards; draw every frame from a Clear.
func (r *RendererWindow) Present() {
	r.sdl.do(r.ren.Present)
}

// checkBatch guards slice draws: the native calls take an int32 count.
func checkBatch(kind string, n int) error {
	if n > math.MaxInt32 {
		return violation("%d %s exceed the native batch limit", n, kind)
	}
	return nil
}

func nativePoints(points []Point) []sdl.Point {
	out := make([]sdl.Point, len(points))
	for i, p := range points {
		out[i] = p.native()
	}
	return out
}

func nativeRects(rects []Rect) []sdl.Rect {
	out := make([]sdl.Rect, len(rects))
	for i, r := range rects {
		out[i] = r.native()
	}
	return out
}

// DrawPoint plots a single point in the draw color.
func (r *RendererWindow) DrawPoint(p Point) error {
	var err error
	r.sdl.do(func() {
		err = r.ren.DrawPoint(p.X, p.Y)
	})
	if err != nil {
		return nativeErr("SDL_RenderDrawPoint", err)
	}
	return nil
}

// DrawLine draws a line between two points.
func (r *RendererWindow) DrawLine(from, to Point) error {
	var err error
	r.sdl.do(func() {
		err = r.ren.DrawLine(from.X, from.Y, to.X, to.Y)
	})
	if err != nil {
		return nativeErr("SDL_RenderDrawLine", err)
	}
	return nil
}

// DrawRect outlines a single rectangle.
func (r *RendererWindow) DrawRect(rect Rect) error {
	native := rect.native()
	var err error
	r.sdl.do(func() {
		err = r.ren.DrawRect(&native)
	})
	if err != nil {
		return nativeErr("SDL_RenderDrawRect", err)
	}
	return nil
}

// FillRect fills a single rectangle.
func (r *RendererWindow) FillRect(rect Rect) error {
	native := rect.native()
	var err error
	r.sdl.do(func() {
		err = r.ren.FillRect(&native)
	})
	if err != nil {
		return nativeErr("SDL_RenderFillRect", err)
	}
	return nil
}

// DrawPoints plots each point in the draw color.
func (r *RendererWindow) DrawPoints(points []Point) error {
	if err := checkBatch("points", len(points)); err != nil {
		return err
	}
	native := nativePoints(points)
	var err error
	r.sdl.do(func() {
		err = r.ren.DrawPoints(native)
	})
	if err != nil {
		return nativeErr("SDL_RenderDrawPoints", err)
	}
	return nil
}

// DrawLines draws a polyline connecting consecutive points.
func (r *RendererWindow) DrawLines(points []Point) error {
	if err := checkBatch("points", len(points)); err != nil {
		return err
	}
	native := nativePoints(points)
	var err error
	r.sdl.do(func() {
		err = r.ren.DrawLines(native)
	})
	if err != nil {
		return nativeErr("SDL_RenderDrawLines", err)
	}
	return nil
}

// DrawRects outlines each rectangle.
func (r *RendererWindow) DrawRects(rects []Rect) error {
	if err := checkBatch("rects", len(rects)); err != nil {
		return err
	}
	native := nativeRects(rects)
	var err error
	r.sdl.do(func() {
		err = r.ren.DrawRects(native)
	})
	if err != nil {
		return nativeErr("SDL_RenderDrawRects", err)
	}
	return nil
}

// FillRects fills each rectangle.
func (r *RendererWindow) FillRects(rects []Rect) error {
	if err := checkBatch("rects", len(rects)); err != nil {
		return err
	}
	native := nativeRects(rects)
	var err error
	r.sdl.do(func() {
		err = r.ren.FillRects(native)
	})
	if err != nil {
		return nativeErr("SDL_RenderFillRects", err)
	}
	return nil
}

// Copy draws a texture region onto a target region, scaling as needed. Nil
// regions mean the whole texture or target.
func (r *RendererWindow) Copy(t *Texture, src, dst *Rect) error {
	var err error
	r.sdl.do(func() {
		err = r.ren.Copy(t.tex, nativeRectPtr(src), nativeRectPtr(dst))
	})
	if err != nil {
		return nativeErr("SDL_RenderCopy", err)
	}
	return nil
}
