package beryl

import (
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"
)

// TextureAccess selects how a texture's pixels can change after creation.
type TextureAccess int

const (
	// TextureStatic textures change rarely and only through Update.
	TextureStatic TextureAccess = sdl.TEXTUREACCESS_STATIC
	// TextureStreaming textures are meant to change every frame.
	TextureStreaming TextureAccess = sdl.TEXTUREACCESS_STREAMING
	// TextureTarget textures can be rendered into, given a renderer with
	// RendererTargetTexture.
	TextureTarget TextureAccess = sdl.TEXTUREACCESS_TARGET
)

// BlendMode selects how drawn pixels combine with the destination.
type BlendMode uint32

const (
	BlendNone     BlendMode = sdl.BLENDMODE_NONE
	BlendAlpha    BlendMode = sdl.BLENDMODE_BLEND
	BlendAdditive BlendMode = sdl.BLENDMODE_ADD
	BlendModulate BlendMode = sdl.BLENDMODE_MOD
)

// Texture is GPU-side pixel memory owned by one renderer. It keeps its
// RendererWindow alive: the renderer's teardown waits until every texture
// is closed.
type Texture struct {
	ren    *RendererWindow
	tex    *sdl.Texture
	closed bool
}

// CreateTexture makes a blank texture on this renderer.
func (r *RendererWindow) CreateTexture(format PixelFormatEnum, access TextureAccess, width, height int32) (*Texture, error) {
	var (
		tex *sdl.Texture
		err error
	)
	r.sdl.do(func() {
		tex, err = r.ren.CreateTexture(uint32(format), int(access), width, height)
	})
	if err != nil {
		return nil, nativeErr("SDL_CreateTexture", err)
	}
	r.retain()
	return &Texture{ren: r, tex: tex}, nil
}

// CreateTextureFromSurface uploads a surface into a new static texture,
// converting to a format the driver likes. The surface is untouched and can
// be closed afterwards.
func (r *RendererWindow) CreateTextureFromSurface(sf *Surface) (*Texture, error) {
	var (
		tex *sdl.Texture
		err error
	)
	r.sdl.do(func() {
		tex, err = r.ren.CreateTextureFromSurface(sf.surf)
	})
	if err != nil {
		return nil, nativeErr("SDL_CreateTextureFromSurface", err)
	}
	r.retain()
	return &Texture{ren: r, tex: tex}, nil
}

// Query reports the texture's format, access mode, and size.
func (t *Texture) Query() (format PixelFormatEnum, access TextureAccess, width, height int32, err error) {
	var rawFormat uint32
	var rawAccess int
	t.ren.sdl.do(func() {
		rawFormat, rawAccess, width, height, err = t.tex.Query()
	})
	if err != nil {
		return 0, 0, 0, 0, nativeErr("SDL_QueryTexture", err)
	}
	return PixelFormatEnum(rawFormat), TextureAccess(rawAccess), width, height, nil
}

// Update replaces the pixels of a region (nil for all) with packed pixel
// data laid out pitch bytes per row in the texture's own format.
func (t *Texture) Update(region *Rect, pixels []byte, pitch int) error {
	if len(pixels) == 0 {
		return violation("texture update with no pixel data")
	}
	var err error
	t.ren.sdl.do(func() {
		err = t.tex.Update(nativeRectPtr(region), unsafe.Pointer(&pixels[0]), pitch)
	})
	if err != nil {
		return nativeErr("SDL_UpdateTexture", err)
	}
	return nil
}

// SetBlendMode selects how Copy blends this texture into the target.
func (t *Texture) SetBlendMode(mode BlendMode) error {
	var err error
	t.ren.sdl.do(func() {
		err = t.tex.SetBlendMode(sdl.BlendMode(mode))
	})
	if err != nil {
		return nativeErr("SDL_SetTextureBlendMode", err)
	}
	return nil
}

// SetColorMod multiplies each copied pixel's channels by the given factors
// (255 means unchanged).
func (t *Texture) SetColorMod(r, g, b uint8) error {
	var err error
	t.ren.sdl.do(func() {
		err = t.tex.SetColorMod(r, g, b)
	})
	if err != nil {
		return nativeErr("SDL_SetTextureColorMod", err)
	}
	return nil
}

// SetAlphaMod multiplies each copied pixel's alpha by the given factor.
func (t *Texture) SetAlphaMod(a uint8) error {
	var err error
	t.ren.sdl.do(func() {
		err = t.tex.SetAlphaMod(a)
	})
	if err != nil {
		return nativeErr("SDL_SetTextureAlphaMod", err)
	}
	return nil
}

// Close destroys the texture and drops its hold on the renderer. Further
// calls do nothing.
func (t *Texture) Close() {
	if t.closed {
		return
	}
	t.closed = true
	t.ren.sdl.do(func() {
		t.tex.Destroy()
	})
	t.ren.release()
}
