package fill

import (
	"errors"
	"fmt"
	"image"

	"paintbucket/pixel"
)

var (
	ErrOutOfBounds      = errors.New("seed out of bounds")
	ErrInvalidTolerance = errors.New("invalid tolerance")
	ErrUnknownMode      = errors.New("unknown fill mode")
	ErrNoBuffer         = errors.New("no buffer")
)

// Mode selects how matching pixels are found.
type Mode int

const (
	// Contiguous replaces the 4-connected region around the seed using a
	// scanline traversal.
	Contiguous Mode = iota
	// Global replaces every matching pixel in the buffer.
	Global
	// TwoPhase computes the contiguous region first and writes it
	// afterwards.
	TwoPhase
)

func (m Mode) String() string {
	switch m {
	case Contiguous:
		return "contiguous"
	case Global:
		return "global"
	case TwoPhase:
		return "two-phase"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Request describes a single fill.
type Request struct {
	Seed        image.Point
	Tolerance   int
	Replacement pixel.Pixel
	Antialias   bool
	Mode        Mode
}

// Stats reports what a fill did.
type Stats struct {
	Target pixel.Pixel
	Filled int
}

func validate(buf *pixel.Buffer, seed image.Point, tolerance int) error {
	if buf == nil {
		return ErrNoBuffer
	}
	if !buf.In(seed.X, seed.Y) {
		return fmt.Errorf("%w: (%d, %d) not in %dx%d", ErrOutOfBounds, seed.X, seed.Y, buf.Width(), buf.Height())
	}
	if tolerance < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidTolerance, tolerance)
	}
	return nil
}
