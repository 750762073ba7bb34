package pixel

import (
	"image/color"
)

// Pixel is an 8-bit per channel RGBA value. Channels are interpreted as
// premultiplied alpha, but the relation between A and R, G, B is not
// validated.
type Pixel struct {
	R, G, B, A uint8
}

var _ color.Color = Pixel{}

// Model converts any color to a Pixel.
var Model = color.ModelFunc(pixelConvert)

func pixelConvert(c color.Color) color.Color {
	if p, ok := c.(Pixel); ok {
		return p
	}
	r, g, b, a := c.RGBA()
	return Pixel{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

// FromColor returns the premultiplied 8-bit equivalent of c.
func FromColor(c color.Color) Pixel {
	return Model.Convert(c).(Pixel)
}

func (p Pixel) RGBA() (uint32, uint32, uint32, uint32) {
	return uint32(p.R) * 0x101, uint32(p.G) * 0x101, uint32(p.B) * 0x101, uint32(p.A) * 0x101
}

// Diff is the sum of the absolute per-channel differences, in [0, 1020].
func (p Pixel) Diff(q Pixel) int {
	return absDiff(p.R, q.R) + absDiff(p.G, q.G) + absDiff(p.B, q.B) + absDiff(p.A, q.A)
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// MultiplyAlpha scales the alpha channel by f, truncating the result.
// R, G and B are left untouched. f is clamped to [0, 1].
func (p Pixel) MultiplyAlpha(f float64) Pixel {
	switch {
	case f <= 0:
		f = 0
	case f >= 1:
		return p
	}
	p.A = uint8(float64(p.A) * f)
	return p
}

// Blend composites over on top of p (Porter-Duff source over, with over as
// the source and p as the destination). Both are premultiplied.
//
//	out = over + p * (1 - over.A)
func (p Pixel) Blend(over Pixel) Pixel {
	inv := 255 - over.A
	return Pixel{
		R: addSat(over.R, mulDiv255(p.R, inv)),
		G: addSat(over.G, mulDiv255(p.G, inv)),
		B: addSat(over.B, mulDiv255(p.B, inv)),
		A: addSat(over.A, mulDiv255(p.A, inv)),
	}
}

// mulDiv255 computes round(a*b/255).
func mulDiv255(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}

func addSat(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// Uint32 packs p as 0xAARRGGBB. Stored little-endian, the bytes of the word
// appear in memory as B, G, R, A.
func (p Pixel) Uint32() uint32 {
	return uint32(p.A)<<24 | uint32(p.R)<<16 | uint32(p.G)<<8 | uint32(p.B)
}

// FromUint32 unpacks a 0xAARRGGBB word.
func FromUint32(v uint32) Pixel {
	return Pixel{
		A: uint8(v >> 24),
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}
