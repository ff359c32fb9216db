package beryl

import "testing"

// The expectations below restate the values the native header computes with
// its SDL_PIXELTYPE / SDL_BITSPERPIXEL / SDL_ISPIXELFORMAT_* macros, so the
// pure-Go decoders can be checked without initializing anything.
func TestPixelFormatBasics(t *testing.T) {
	tests := []struct {
		name    string
		format  PixelFormatEnum
		typ     PixelType
		bits    uint8
		bytes   uint8
		indexed bool
		packed  bool
		array   bool
		fourcc  bool
	}{
		{"Unknown", PixelFormatUnknown, PixelTypeUnknown, 0, 0, false, false, false, false},
		{"Index1LSB", PixelFormatIndex1LSB, PixelTypeIndex1, 1, 0, true, false, false, false},
		{"Index1MSB", PixelFormatIndex1MSB, PixelTypeIndex1, 1, 0, true, false, false, false},
		{"Index4LSB", PixelFormatIndex4LSB, PixelTypeIndex4, 4, 0, true, false, false, false},
		{"Index4MSB", PixelFormatIndex4MSB, PixelTypeIndex4, 4, 0, true, false, false, false},
		{"Index8", PixelFormatIndex8, PixelTypeIndex8, 8, 1, true, false, false, false},
		{"RGB332", PixelFormatRGB332, PixelTypePacked8, 8, 1, false, true, false, false},
		{"RGB444", PixelFormatRGB444, PixelTypePacked16, 12, 2, false, true, false, false},
		{"RGB555", PixelFormatRGB555, PixelTypePacked16, 15, 2, false, true, false, false},
		{"BGR555", PixelFormatBGR555, PixelTypePacked16, 15, 2, false, true, false, false},
		{"ARGB4444", PixelFormatARGB4444, PixelTypePacked16, 16, 2, false, true, false, false},
		{"RGBA4444", PixelFormatRGBA4444, PixelTypePacked16, 16, 2, false, true, false, false},
		{"ABGR4444", PixelFormatABGR4444, PixelTypePacked16, 16, 2, false, true, false, false},
		{"BGRA4444", PixelFormatBGRA4444, PixelTypePacked16, 16, 2, false, true, false, false},
		{"ARGB1555", PixelFormatARGB1555, PixelTypePacked16, 16, 2, false, true, false, false},
		{"RGBA5551", PixelFormatRGBA5551, PixelTypePacked16, 16, 2, false, true, false, false},
		{"RGB565", PixelFormatRGB565, PixelTypePacked16, 16, 2, false, true, false, false},
		{"BGR565", PixelFormatBGR565, PixelTypePacked16, 16, 2, false, true, false, false},
		{"RGB24", PixelFormatRGB24, PixelTypeArrayU8, 24, 3, false, false, true, false},
		{"BGR24", PixelFormatBGR24, PixelTypeArrayU8, 24, 3, false, false, true, false},
		{"RGB888", PixelFormatRGB888, PixelTypePacked32, 24, 4, false, true, false, false},
		{"RGBX8888", PixelFormatRGBX8888, PixelTypePacked32, 24, 4, false, true, false, false},
		{"ARGB8888", PixelFormatARGB8888, PixelTypePacked32, 32, 4, false, true, false, false},
		{"RGBA8888", PixelFormatRGBA8888, PixelTypePacked32, 32, 4, false, true, false, false},
		{"ABGR8888", PixelFormatABGR8888, PixelTypePacked32, 32, 4, false, true, false, false},
		{"BGRA8888", PixelFormatBGRA8888, PixelTypePacked32, 32, 4, false, true, false, false},
		{"ARGB2101010", PixelFormatARGB2101010, PixelTypePacked32, 32, 4, false, true, false, false},
		{"YV12", PixelFormatYV12, PixelTypeUnknown, 0, 1, false, false, false, true},
		{"IYUV", PixelFormatIYUV, PixelTypeUnknown, 0, 1, false, false, false, true},
		{"YUY2", PixelFormatYUY2, PixelTypeUnknown, 0, 2, false, false, false, true},
		{"UYVY", PixelFormatUYVY, PixelTypeUnknown, 0, 2, false, false, false, true},
		{"YVYU", PixelFormatYVYU, PixelTypeUnknown, 0, 2, false, false, false, true},
		{"NV12", PixelFormatNV12, PixelTypeUnknown, 0, 1, false, false, false, true},
		{"NV21", PixelFormatNV21, PixelTypeUnknown, 0, 1, false, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.format
			if got := f.PixelType(); got != tt.typ {
				t.Errorf("PixelType() = %v, want %v", got, tt.typ)
			}
			if got := f.BitsPerPixel(); got != tt.bits {
				t.Errorf("BitsPerPixel() = %d, want %d", got, tt.bits)
			}
			if got := f.BytesPerPixel(); got != tt.bytes {
				t.Errorf("BytesPerPixel() = %d, want %d", got, tt.bytes)
			}
			if got := f.IsIndexed(); got != tt.indexed {
				t.Errorf("IsIndexed() = %v, want %v", got, tt.indexed)
			}
			if got := f.IsPacked(); got != tt.packed {
				t.Errorf("IsPacked() = %v, want %v", got, tt.packed)
			}
			if got := f.IsArray(); got != tt.array {
				t.Errorf("IsArray() = %v, want %v", got, tt.array)
			}
			if got := f.IsFourCC(); got != tt.fourcc {
				t.Errorf("IsFourCC() = %v, want %v", got, tt.fourcc)
			}
		})
	}
}

func TestPixelFormatPackedDecoding(t *testing.T) {
	tests := []struct {
		name   string
		format PixelFormatEnum
		order  PackedOrder
		layout PackedLayout
	}{
		{"RGB332", PixelFormatRGB332, PackedOrderXRGB, PackedLayout332},
		{"RGB555", PixelFormatRGB555, PackedOrderXRGB, PackedLayout1555},
		{"BGR555", PixelFormatBGR555, PackedOrderXBGR, PackedLayout1555},
		{"ARGB4444", PixelFormatARGB4444, PackedOrderARGB, PackedLayout4444},
		{"RGBA5551", PixelFormatRGBA5551, PackedOrderRGBA, PackedLayout5551},
		{"RGB565", PixelFormatRGB565, PackedOrderXRGB, PackedLayout565},
		{"BGR565", PixelFormatBGR565, PackedOrderXBGR, PackedLayout565},
		{"RGBX8888", PixelFormatRGBX8888, PackedOrderRGBX, PackedLayout8888},
		{"BGRA8888", PixelFormatBGRA8888, PackedOrderBGRA, PackedLayout8888},
		{"ARGB2101010", PixelFormatARGB2101010, PackedOrderARGB, PackedLayout2101010},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.format.PackedOrder(); got != tt.order {
				t.Errorf("PackedOrder() = %v, want %v", got, tt.order)
			}
			if got := tt.format.PackedLayout(); got != tt.layout {
				t.Errorf("PackedLayout() = %v, want %v", got, tt.layout)
			}
		})
	}

	// Non-packed formats decode to the zero order and layout.
	for _, f := range []PixelFormatEnum{PixelFormatIndex8, PixelFormatRGB24, PixelFormatYUY2} {
		if f.PackedOrder() != PackedOrderNone || f.PackedLayout() != PackedLayoutNone {
			t.Errorf("%#x: non-packed format decoded a packed order/layout", uint32(f))
		}
	}
}

func TestPixelFormatMasks(t *testing.T) {
	tests := []struct {
		name   string
		format PixelFormatEnum
		want   PixelMasks
	}{
		{"RGB332", PixelFormatRGB332, PixelMasks{R: 0xE0, G: 0x1C, B: 0x03}},
		{"RGB565", PixelFormatRGB565, PixelMasks{R: 0xF800, G: 0x07E0, B: 0x001F}},
		{"BGR565", PixelFormatBGR565, PixelMasks{B: 0xF800, G: 0x07E0, R: 0x001F}},
		{"RGB555", PixelFormatRGB555, PixelMasks{R: 0x7C00, G: 0x03E0, B: 0x001F}},
		{"ARGB1555", PixelFormatARGB1555, PixelMasks{A: 0x8000, R: 0x7C00, G: 0x03E0, B: 0x001F}},
		{"RGBA5551", PixelFormatRGBA5551, PixelMasks{R: 0xF800, G: 0x07C0, B: 0x003E, A: 0x0001}},
		{"ARGB4444", PixelFormatARGB4444, PixelMasks{A: 0xF000, R: 0x0F00, G: 0x00F0, B: 0x000F}},
		{"ARGB8888", PixelFormatARGB8888, PixelMasks{A: 0xFF000000, R: 0x00FF0000, G: 0x0000FF00, B: 0x000000FF}},
		{"RGBA8888", PixelFormatRGBA8888, PixelMasks{R: 0xFF000000, G: 0x00FF0000, B: 0x0000FF00, A: 0x000000FF}},
		{"ABGR8888", PixelFormatABGR8888, PixelMasks{A: 0xFF000000, B: 0x00FF0000, G: 0x0000FF00, R: 0x000000FF}},
		{"RGBX8888", PixelFormatRGBX8888, PixelMasks{R: 0xFF000000, G: 0x00FF0000, B: 0x0000FF00}},
		{"RGB888", PixelFormatRGB888, PixelMasks{R: 0x00FF0000, G: 0x0000FF00, B: 0x000000FF}},
		{"ARGB2101010", PixelFormatARGB2101010, PixelMasks{A: 0xC0000000, R: 0x3FF00000, G: 0x000FFC00, B: 0x000003FF}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.format.Masks()
			if !ok {
				t.Fatal("Masks() reported not packed")
			}
			if got != tt.want {
				t.Errorf("Masks() = %+v, want %+v", got, tt.want)
			}
		})
	}

	for _, f := range []PixelFormatEnum{PixelFormatUnknown, PixelFormatIndex8, PixelFormatRGB24, PixelFormatNV12} {
		if _, ok := f.Masks(); ok {
			t.Errorf("%#x: Masks() reported ok for a non-packed format", uint32(f))
		}
	}
}

func TestPixelFormatHasAlpha(t *testing.T) {
	withAlpha := []PixelFormatEnum{
		PixelFormatARGB4444, PixelFormatRGBA5551, PixelFormatABGR8888,
		PixelFormatBGRA8888, PixelFormatARGB2101010,
	}
	withoutAlpha := []PixelFormatEnum{
		PixelFormatRGB332, PixelFormatRGB565, PixelFormatRGBX8888,
		PixelFormatRGB24, PixelFormatIndex8, PixelFormatYV12,
	}
	for _, f := range withAlpha {
		if !f.HasAlpha() {
			t.Errorf("%#x: HasAlpha() = false, want true", uint32(f))
		}
	}
	for _, f := range withoutAlpha {
		if f.HasAlpha() {
			t.Errorf("%#x: HasAlpha() = true, want false", uint32(f))
		}
	}
}
