package beryl

import (
	"math"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// Color is an 8-bit-per-channel RGBA color.
type Color struct {
	R, G, B, A uint8
}

func (c Color) native() sdl.Color { return sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A} }

func colorFromNative(c sdl.Color) Color { return Color{R: c.R, G: c.G, B: c.B, A: c.A} }

// Palette is an allocated native color table. It holds the init token alive
// until Close. Surfaces a palette is attached to keep the native table valid
// on their own; Close here only drops this handle.
type Palette struct {
	sdl    *Sdl
	pal    *sdl.Palette
	closed bool
}

// AllocPalette allocates a palette of the given length, all colors opaque
// white. The length must be at least 2 (a 1-bit image needs two entries) and
// fit in an int32; anything else is ErrContractViolation.
func (s *Sdl) AllocPalette(length int) (*Palette, error) {
	if length < 2 || length > math.MaxInt32 {
		return nil, violation("palette length %d outside 2..=%d", length, math.MaxInt32)
	}
	var (
		p   *sdl.Palette
		err error
	)
	s.do(func() {
		p, err = sdl.AllocPalette(length)
	})
	if err != nil {
		return nil, nativeErr("SDL_AllocPalette", err)
	}
	s.retain()
	return &Palette{sdl: s, pal: p}, nil
}

// Len is the number of color entries.
func (p *Palette) Len() int {
	return int(p.pal.Ncolors)
}

// colors views the native color array. Reads are safe off-thread; the array
// location never changes after allocation.
func (p *Palette) colors() []sdl.Color {
	return unsafe.Slice(p.pal.Colors, p.pal.Ncolors)
}

// Color reads one entry. ok is false when the index is out of range.
func (p *Palette) Color(i int) (Color, bool) {
	if i < 0 || i >= p.Len() {
		return Color{}, false
	}
	return colorFromNative(p.colors()[i]), true
}

// Colors copies out every entry.
func (p *Palette) Colors() []Color {
	native := p.colors()
	out := make([]Color, len(native))
	for i, c := range native {
		out[i] = colorFromNative(c)
	}
	return out
}

// SetColor replaces one entry.
func (p *Palette) SetColor(i int, c Color) error {
	if i < 0 || i >= p.Len() {
		return violation("palette index %d out of range 0..%d", i, p.Len())
	}
	all := make([]sdl.Color, p.Len())
	copy(all, p.colors())
	all[i] = c.native()
	return p.setNative(all)
}

// SetColors replaces entries starting at start. It fails without writing
// anything when the run would fall outside the palette.
func (p *Palette) SetColors(start int, colors []Color) error {
	if start < 0 || start+len(colors) > p.Len() {
		return violation("palette range %d..%d outside 0..%d", start, start+len(colors), p.Len())
	}
	all := make([]sdl.Color, p.Len())
	copy(all, p.colors())
	for i, c := range colors {
		all[start+i] = c.native()
	}
	return p.setNative(all)
}

// setNative installs a full replacement table through the native setter so
// the palette version advances and dependent surfaces remap.
func (p *Palette) setNative(all []sdl.Color) error {
	var err error
	p.sdl.do(func() {
		err = p.pal.SetColors(all)
	})
	if err != nil {
		return nativeErr("SDL_SetPaletteColors", err)
	}
	return nil
}

// Clone allocates an independent palette with the same contents.
func (p *Palette) Clone() (*Palette, error) {
	dup, err := p.sdl.AllocPalette(p.Len())
	if err != nil {
		return nil, err
	}
	all := make([]sdl.Color, p.Len())
	copy(all, p.colors())
	if err := dup.setNative(all); err != nil {
		dup.Close()
		return nil, err
	}
	return dup, nil
}

// Close drops this handle's reference to the native palette and its hold on
// the init token. Further calls do nothing.
func (p *Palette) Close() {
	if p.closed {
		return
	}
	p.closed = true
	p.sdl.do(func() {
		p.pal.Free()
	})
	p.sdl.release()
}
