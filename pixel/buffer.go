package pixel

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Buffer is a row-major premultiplied RGBA raster. The pixel at (x, y) is
// stored at pix[x + y*width].
type Buffer struct {
	width  int
	height int
	pix    []Pixel
}

var _ draw.Image = (*Buffer)(nil)

// New returns a transparent buffer of the given size.
func New(width, height int) (*Buffer, error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("invalid buffer size %dx%d", width, height)
	}
	return &Buffer{
		width:  width,
		height: height,
		pix:    make([]Pixel, width*height),
	}, nil
}

// Decode copies img into a new buffer with its origin at (0, 0). The buffer
// owns its storage and does not alias img.
func Decode(img image.Image) *Buffer {
	sr := img.Bounds()
	dr := image.Rect(0, 0, sr.Dx(), sr.Dy())

	rgba, ok := img.(*image.RGBA)
	if !ok || sr.Min != (image.Point{}) || rgba.Stride != 4*sr.Dx() {
		rgba = image.NewRGBA(dr)
		draw.Draw(rgba, dr, img, sr.Min, draw.Src)
	}

	buf := &Buffer{
		width:  dr.Dx(),
		height: dr.Dy(),
		pix:    make([]Pixel, dr.Dx()*dr.Dy()),
	}
	for i := range buf.pix {
		s := rgba.Pix[i*4 : i*4+4 : i*4+4]
		buf.pix[i] = Pixel{R: s[0], G: s[1], B: s[2], A: s[3]}
	}
	return buf
}

// Encode returns the buffer contents as a new premultiplied image.RGBA.
// Color channels above alpha, which an antialiased fill can leave behind,
// are clamped to alpha so the result is valid premultiplied data.
func (b *Buffer) Encode() *image.RGBA {
	img := image.NewRGBA(b.Bounds())
	for i, p := range b.pix {
		s := img.Pix[i*4 : i*4+4 : i*4+4]
		s[0], s[1], s[2], s[3] = min(p.R, p.A), min(p.G, p.A), min(p.B, p.A), p.A
	}
	return img
}

// Width is the number of pixel columns.
func (b *Buffer) Width() int { return b.width }

// Height is the number of pixel rows.
func (b *Buffer) Height() int { return b.height }

// Len is the number of pixels, Width() * Height().
func (b *Buffer) Len() int { return len(b.pix) }

// Index maps (x, y) to a position in the buffer. The coordinate is not
// checked; use In first.
func (b *Buffer) Index(x, y int) int {
	return x + y*b.width
}

// In reports whether (x, y) lies inside the buffer.
func (b *Buffer) In(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the pixel at index i.
func (b *Buffer) Get(i int) Pixel {
	return b.pix[i]
}

// Put overwrites the pixel at index i.
func (b *Buffer) Put(i int, p Pixel) {
	b.pix[i] = p
}

// Clone returns an independent copy of b.
func (b *Buffer) Clone() *Buffer {
	c := &Buffer{
		width:  b.width,
		height: b.height,
		pix:    make([]Pixel, len(b.pix)),
	}
	copy(c.pix, b.pix)
	return c
}

func (b *Buffer) ColorModel() color.Model {
	return Model
}

func (b *Buffer) Bounds() image.Rectangle {
	return image.Rect(0, 0, b.width, b.height)
}

func (b *Buffer) At(x, y int) color.Color {
	if !b.In(x, y) {
		return Pixel{}
	}
	return b.pix[b.Index(x, y)]
}

func (b *Buffer) Set(x, y int, c color.Color) {
	if !b.In(x, y) {
		return
	}
	b.pix[b.Index(x, y)] = FromColor(c)
}
