package beryl

import "github.com/veandco/go-sdl2/sdl"

// PixelFormatEnum encodes a pixel layout: either a packed descriptor
// (type, channel order, bit layout, sizes) or a FourCC code for planar and
// YUV data. The query methods below decode the descriptor without touching
// the native library, so they work on any value, known constant or not.
type PixelFormatEnum uint32

const (
	PixelFormatUnknown     PixelFormatEnum = sdl.PIXELFORMAT_UNKNOWN
	PixelFormatIndex1LSB   PixelFormatEnum = sdl.PIXELFORMAT_INDEX1LSB
	PixelFormatIndex1MSB   PixelFormatEnum = sdl.PIXELFORMAT_INDEX1MSB
	PixelFormatIndex4LSB   PixelFormatEnum = sdl.PIXELFORMAT_INDEX4LSB
	PixelFormatIndex4MSB   PixelFormatEnum = sdl.PIXELFORMAT_INDEX4MSB
	PixelFormatIndex8      PixelFormatEnum = sdl.PIXELFORMAT_INDEX8
	PixelFormatRGB332      PixelFormatEnum = sdl.PIXELFORMAT_RGB332
	PixelFormatRGB444      PixelFormatEnum = sdl.PIXELFORMAT_RGB444
	PixelFormatRGB555      PixelFormatEnum = sdl.PIXELFORMAT_RGB555
	PixelFormatBGR555      PixelFormatEnum = sdl.PIXELFORMAT_BGR555
	PixelFormatARGB4444    PixelFormatEnum = sdl.PIXELFORMAT_ARGB4444
	PixelFormatRGBA4444    PixelFormatEnum = sdl.PIXELFORMAT_RGBA4444
	PixelFormatABGR4444    PixelFormatEnum = sdl.PIXELFORMAT_ABGR4444
	PixelFormatBGRA4444    PixelFormatEnum = sdl.PIXELFORMAT_BGRA4444
	PixelFormatARGB1555    PixelFormatEnum = sdl.PIXELFORMAT_ARGB1555
	PixelFormatRGBA5551    PixelFormatEnum = sdl.PIXELFORMAT_RGBA5551
	PixelFormatABGR1555    PixelFormatEnum = sdl.PIXELFORMAT_ABGR1555
	PixelFormatBGRA5551    PixelFormatEnum = sdl.PIXELFORMAT_BGRA5551
	PixelFormatRGB565      PixelFormatEnum = sdl.PIXELFORMAT_RGB565
	PixelFormatBGR565      PixelFormatEnum = sdl.PIXELFORMAT_BGR565
	PixelFormatRGB24       PixelFormatEnum = sdl.PIXELFORMAT_RGB24
	PixelFormatBGR24       PixelFormatEnum = sdl.PIXELFORMAT_BGR24
	PixelFormatRGB888      PixelFormatEnum = sdl.PIXELFORMAT_RGB888
	PixelFormatRGBX8888    PixelFormatEnum = sdl.PIXELFORMAT_RGBX8888
	PixelFormatBGR888      PixelFormatEnum = sdl.PIXELFORMAT_BGR888
	PixelFormatBGRX8888    PixelFormatEnum = sdl.PIXELFORMAT_BGRX8888
	PixelFormatARGB8888    PixelFormatEnum = sdl.PIXELFORMAT_ARGB8888
	PixelFormatRGBA8888    PixelFormatEnum = sdl.PIXELFORMAT_RGBA8888
	PixelFormatABGR8888    PixelFormatEnum = sdl.PIXELFORMAT_ABGR8888
	PixelFormatBGRA8888    PixelFormatEnum = sdl.PIXELFORMAT_BGRA8888
	PixelFormatARGB2101010 PixelFormatEnum = sdl.PIXELFORMAT_ARGB2101010
	PixelFormatYV12        PixelFormatEnum = sdl.PIXELFORMAT_YV12
	PixelFormatIYUV        PixelFormatEnum = sdl.PIXELFORMAT_IYUV
	PixelFormatYUY2        PixelFormatEnum = sdl.PIXELFORMAT_YUY2
	PixelFormatUYVY        PixelFormatEnum = sdl.PIXELFORMAT_UYVY
	PixelFormatYVYU        PixelFormatEnum = sdl.PIXELFORMAT_YVYU
	PixelFormatNV12        PixelFormatEnum = sdl.PIXELFORMAT_NV12
	PixelFormatNV21        PixelFormatEnum = sdl.PIXELFORMAT_NV21
)

// PixelType is the type nibble of a non-FourCC format descriptor.
type PixelType uint8

const (
	PixelTypeUnknown PixelType = iota
	PixelTypeIndex1
	PixelTypeIndex4
	PixelTypeIndex8
	PixelTypePacked8
	PixelTypePacked16
	PixelTypePacked32
	PixelTypeArrayU8
	PixelTypeArrayU16
	PixelTypeArrayU32
	PixelTypeArrayF16
	PixelTypeArrayF32
)

// PackedOrder is the channel order nibble of a packed format, named
// most-significant channel first. X marks padding bits.
type PackedOrder uint8

const (
	PackedOrderNone PackedOrder = iota
	PackedOrderXRGB
	PackedOrderRGBX
	PackedOrderARGB
	PackedOrderRGBA
	PackedOrderXBGR
	PackedOrderBGRX
	PackedOrderABGR
	PackedOrderBGRA
)

// ArrayOrder is the memory order nibble of an array format.
type ArrayOrder uint8

const (
	ArrayOrderNone ArrayOrder = iota
	ArrayOrderRGB
	ArrayOrderRGBA
	ArrayOrderARGB
	ArrayOrderBGR
	ArrayOrderBGRA
	ArrayOrderABGR
)

// PackedLayout is the bit layout nibble of a packed format.
type PackedLayout uint8

const (
	PackedLayoutNone PackedLayout = iota
	PackedLayout332
	PackedLayout4444
	PackedLayout1555
	PackedLayout5551
	PackedLayout565
	PackedLayout8888
	PackedLayout2101010
	PackedLayout1010102
)

// IsFourCC reports whether the value is a FourCC code rather than a packed
// descriptor.
func (f PixelFormatEnum) IsFourCC() bool {
	return f != 0 && (f>>28) != 1
}

// PixelType decodes the type nibble. Zero for FourCC values.
func (f PixelFormatEnum) PixelType() PixelType {
	if f.IsFourCC() {
		return PixelTypeUnknown
	}
	return PixelType((f >> 24) & 0x0F)
}

func (f PixelFormatEnum) orderNibble() uint8 {
	if f.IsFourCC() {
		return 0
	}
	return uint8((f >> 20) & 0x0F)
}

// PackedOrder decodes the order nibble of a packed format; zero otherwise.
func (f PixelFormatEnum) PackedOrder() PackedOrder {
	if !f.IsPacked() {
		return PackedOrderNone
	}
	return PackedOrder(f.orderNibble())
}

// ArrayOrder decodes the order nibble of an array format; zero otherwise.
func (f PixelFormatEnum) ArrayOrder() ArrayOrder {
	if !f.IsArray() {
		return ArrayOrderNone
	}
	return ArrayOrder(f.orderNibble())
}

// PackedLayout decodes the layout nibble of a packed format; zero otherwise.
func (f PixelFormatEnum) PackedLayout() PackedLayout {
	if !f.IsPacked() {
		return PackedLayoutNone
	}
	return PackedLayout((f >> 16) & 0x0F)
}

// BitsPerPixel is the size of one pixel in bits. Zero for FourCC values,
// whose pixels are not independently sized.
func (f PixelFormatEnum) BitsPerPixel() uint8 {
	if f.IsFourCC() {
		return 0
	}
	return uint8((f >> 8) & 0xFF)
}

// BytesPerPixel is the packed size of one pixel in bytes. For FourCC values
// it follows the native convention: 2 for the interleaved YUV codes, 1 for
// planar ones.
func (f PixelFormatEnum) BytesPerPixel() uint8 {
	if f.IsFourCC() {
		switch f {
		case PixelFormatYUY2, PixelFormatUYVY, PixelFormatYVYU:
			return 2
		default:
			return 1
		}
	}
	return uint8(f & 0xFF)
}

// IsIndexed reports whether pixels are indices into a palette.
func (f PixelFormatEnum) IsIndexed() bool {
	switch f.PixelType() {
	case PixelTypeIndex1, PixelTypeIndex4, PixelTypeIndex8:
		return !f.IsFourCC()
	}
	return false
}

// IsPacked reports whether pixels are bit-packed integers.
func (f PixelFormatEnum) IsPacked() bool {
	switch f.PixelType() {
	case PixelTypePacked8, PixelTypePacked16, PixelTypePacked32:
		return !f.IsFourCC()
	}
	return false
}

// IsArray reports whether pixels are arrays of whole channel values.
func (f PixelFormatEnum) IsArray() bool {
	switch f.PixelType() {
	case PixelTypeArrayU8, PixelTypeArrayU16, PixelTypeArrayU32,
		PixelTypeArrayF16, PixelTypeArrayF32:
		return !f.IsFourCC()
	}
	return false
}

// HasAlpha reports whether the format carries an alpha channel.
func (f PixelFormatEnum) HasAlpha() bool {
	if f.IsPacked() {
		switch f.PackedOrder() {
		case PackedOrderARGB, PackedOrderRGBA, PackedOrderABGR, PackedOrderBGRA:
			return true
		}
		return false
	}
	if f.IsArray() {
		switch f.ArrayOrder() {
		case ArrayOrderARGB, ArrayOrderRGBA, ArrayOrderABGR, ArrayOrderBGRA:
			return true
		}
	}
	return false
}

// packedWidths is the channel width, in bits, of each of the four order
// slots (most significant first) for each packed layout. A zero width means
// the layout has no bits for that slot.
var packedWidths = map[PackedLayout][4]uint32{
	PackedLayout332:     {0, 3, 3, 2},
	PackedLayout4444:    {4, 4, 4, 4},
	PackedLayout1555:    {1, 5, 5, 5},
	PackedLayout5551:    {5, 5, 5, 1},
	PackedLayout565:     {0, 5, 6, 5},
	PackedLayout8888:    {8, 8, 8, 8},
	PackedLayout2101010: {2, 10, 10, 10},
	PackedLayout1010102: {10, 10, 10, 2},
}

// packedSlots names the channel occupying each order slot, most significant
// first. 'X' is padding.
var packedSlots = map[PackedOrder][4]byte{
	PackedOrderXRGB: {'X', 'R', 'G', 'B'},
	PackedOrderRGBX: {'R', 'G', 'B', 'X'},
	PackedOrderARGB: {'A', 'R', 'G', 'B'},
	PackedOrderRGBA: {'R', 'G', 'B', 'A'},
	PackedOrderXBGR: {'X', 'B', 'G', 'R'},
	PackedOrderBGRX: {'B', 'G', 'R', 'X'},
	PackedOrderABGR: {'A', 'B', 'G', 'R'},
	PackedOrderBGRA: {'B', 'G', 'R', 'A'},
}

// PixelMasks is the channel bit masks of a packed format. A channel the
// format lacks has a zero mask.
type PixelMasks struct {
	R, G, B, A uint32
}

// Masks computes the channel masks of a packed format from its descriptor
// alone. ok is false for indexed, array, and FourCC formats, which have no
// packed masks.
func (f PixelFormatEnum) Masks() (PixelMasks, bool) {
	if !f.IsPacked() {
		return PixelMasks{}, false
	}
	widths, ok := packedWidths[f.PackedLayout()]
	if !ok {
		return PixelMasks{}, false
	}
	slots, ok := packedSlots[f.PackedOrder()]
	if !ok {
		return PixelMasks{}, false
	}
	var m PixelMasks
	// Shift from the layout's own span, not BitsPerPixel: the X888 formats
	// advertise 24 bits but their channels sit in a 32-bit layout.
	shift := widths[0] + widths[1] + widths[2] + widths[3]
	for i := 0; i < 4; i++ {
		w := widths[i]
		shift -= w
		mask := ((uint32(1) << w) - 1) << shift
		switch slots[i] {
		case 'R':
			m.R = mask
		case 'G':
			m.G = mask
		case 'B':
			m.B = mask
		case 'A':
			m.A = mask
		}
	}
	return m, true
}

// PixelFormat is an allocated native format record, usable for pixel
// packing and unpacking. It holds the init token alive until Close.
type PixelFormat struct {
	sdl    *Sdl
	fmt    *sdl.PixelFormat
	value  PixelFormatEnum
	closed bool
}

// AllocPixelFormat allocates the native record for a format value.
func (s *Sdl) AllocPixelFormat(value PixelFormatEnum) (*PixelFormat, error) {
	var (
		f   *sdl.PixelFormat
		err error
	)
	s.do(func() {
		f, err = sdl.AllocFormat(uint(value))
	})
	if err != nil {
		return nil, nativeErr("SDL_AllocFormat", err)
	}
	s.retain()
	return &PixelFormat{sdl: s, fmt: f, value: value}, nil
}

// Value is the format this record was allocated for.
func (f *PixelFormat) Value() PixelFormatEnum { return f.value }

// MapRGBA packs a color into a pixel of this format. Channels the format
// lacks are dropped; a missing alpha channel packs as fully opaque.
func (f *PixelFormat) MapRGBA(r, g, b, a uint8) uint32 {
	var pixel uint32
	f.sdl.do(func() {
		pixel = sdl.MapRGBA(f.fmt, r, g, b, a)
	})
	return pixel
}

// GetRGBA unpacks a pixel of this format into a color. Channels the format
// lacks come back saturated, so a format without alpha reports 255.
func (f *PixelFormat) GetRGBA(pixel uint32) (r, g, b, a uint8) {
	f.sdl.do(func() {
		r, g, b, a = sdl.GetRGBA(pixel, f.fmt)
	})
	return
}

// Close frees the native record and drops the format's hold on the init
// token. Further calls do nothing.
func (f *PixelFormat) Close() {
	if f.closed {
		return
	}
	f.closed = true
	f.sdl.do(func() {
		f.fmt.Free()
	})
	f.sdl.release()
}
