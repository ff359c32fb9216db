package beryl

import (
	"math"

	"github.com/veandco/go-sdl2/sdl"
)

// Surface is CPU-side pixel memory. It holds the init token alive until
// Close.
type Surface struct {
	sdl    *Sdl
	surf   *sdl.Surface
	closed bool
}

// CreateSurface allocates a zeroed surface of the given size and format.
// Width and height must be non-negative and fit in an int32.
func (s *Sdl) CreateSurface(width, height int, format PixelFormatEnum) (*Surface, error) {
	if width < 0 || width > math.MaxInt32 || height < 0 || height > math.MaxInt32 {
		return nil, violation("surface size %dx%d out of range", width, height)
	}
	var (
		surf *sdl.Surface
		err  error
	)
	s.do(func() {
		surf, err = sdl.CreateRGBSurfaceWithFormat(
			0, int32(width), int32(height),
			int32(format.BitsPerPixel()), uint32(format))
	})
	if err != nil {
		return nil, nativeErr("SDL_CreateRGBSurfaceWithFormat", err)
	}
	s.retain()
	return &Surface{sdl: s, surf: surf}, nil
}

// LoadBMP reads a BMP file into a new surface.
func (s *Sdl) LoadBMP(path string) (*Surface, error) {
	var (
		surf *sdl.Surface
		err  error
	)
	s.do(func() {
		surf, err = sdl.LoadBMP(path)
	})
	if err != nil {
		return nil, nativeErr("SDL_LoadBMP", err)
	}
	s.retain()
	return &Surface{sdl: s, surf: surf}, nil
}

// SaveBMP writes the surface to a BMP file.
func (sf *Surface) SaveBMP(path string) error {
	var err error
	sf.sdl.do(func() {
		err = sf.surf.SaveBMP(path)
	})
	if err != nil {
		return nativeErr("SDL_SaveBMP", err)
	}
	return nil
}

// Size is the surface dimensions in pixels.
func (sf *Surface) Size() (w, h int32) {
	return sf.surf.W, sf.surf.H
}

// Pitch is the byte length of one pixel row, padding included.
func (sf *Surface) Pitch() int {
	return int(sf.surf.Pitch)
}

// Format is the surface's pixel format.
func (sf *Surface) Format() PixelFormatEnum {
	return PixelFormatEnum(sf.surf.Format.Format)
}

// LockEdit locks the surface, passes its raw pixel bytes to edit, and
// unlocks again even if edit panics. The slice covers Pitch bytes per row
// for the full height and is only valid during the call: keeping it after
// LockEdit returns reads freed or remapped memory.
func (sf *Surface) LockEdit(edit func(pixels []byte, pitch int) error) error {
	var lockErr error
	sf.sdl.do(func() {
		lockErr = sf.surf.Lock()
	})
	if lockErr != nil {
		return nativeErr("SDL_LockSurface", lockErr)
	}
	defer sf.sdl.do(func() {
		sf.surf.Unlock()
	})
	return edit(sf.surf.Pixels(), int(sf.surf.Pitch))
}

// FillRect fills a region with a pixel value in the surface's own format
// (pack one with PixelFormat.MapRGBA). A nil region fills everything.
func (sf *Surface) FillRect(region *Rect, pixel uint32) error {
	var err error
	sf.sdl.do(func() {
		err = sf.surf.FillRect(nativeRectPtr(region), pixel)
	})
	if err != nil {
		return nativeErr("SDL_FillRect", err)
	}
	return nil
}

// BlitTo copies a region of this surface onto dst, converting formats as
// needed. Nil regions mean the whole surface; dstRegion is updated blit
// semantics-wise by the native call, so pass a copy if you reuse it.
func (sf *Surface) BlitTo(srcRegion *Rect, dst *Surface, dstRegion *Rect) error {
	var err error
	sf.sdl.do(func() {
		err = sf.surf.Blit(nativeRectPtr(srcRegion), dst.surf, nativeRectPtr(dstRegion))
	})
	if err != nil {
		return nativeErr("SDL_BlitSurface", err)
	}
	return nil
}

// SetClipRect restricts future blits and fills on this surface to region,
// intersected with the surface bounds. It reports whether the resulting
// clip is non-empty. A nil region removes the restriction.
func (sf *Surface) SetClipRect(region *Rect) bool {
	var ok bool
	sf.sdl.do(func() {
		ok = sf.surf.SetClipRect(nativeRectPtr(region))
	})
	return ok
}

// ClipRect is the current clip region.
func (sf *Surface) ClipRect() Rect {
	return rectFromNative(sf.surf.ClipRect)
}

// SetColorKey marks one pixel value as transparent for blits, or clears the
// key when enabled is false.
func (sf *Surface) SetColorKey(enabled bool, pixel uint32) error {
	var err error
	sf.sdl.do(func() {
		err = sf.surf.SetColorKey(enabled, pixel)
	})
	if err != nil {
		return nativeErr("SDL_SetColorKey", err)
	}
	return nil
}

// SetPalette attaches a palette to an indexed surface. The native palette
// is reference counted, so the surface stays valid if pal is closed first.
func (sf *Surface) SetPalette(pal *Palette) error {
	var err error
	sf.sdl.do(func() {
		err = sf.surf.SetPalette(pal.pal)
	})
	if err != nil {
		return nativeErr("SDL_SetSurfacePalette", err)
	}
	return nil
}

// Close frees the surface and drops its hold on the init token. Further
// calls do nothing.
func (sf *Surface) Close() {
	if sf.closed {
		return
	}
	sf.closed = true
	sf.sdl.do(func() {
		sf.surf.Free()
	})
	sf.sdl.release()
}
