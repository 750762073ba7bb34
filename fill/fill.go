// Package fill implements tolerant flood fill on a pixel.Buffer.
//
// A pixel matches when the sum of its absolute channel differences to the
// target color (the seed pixel, sampled before anything is written) is at
// most the tolerance. Matching pixels are replaced by the replacement color,
// or with antialiasing, by the original pixel with its alpha scaled by
// diff/tolerance and the replacement composited on top.
//
// All arguments are validated before the first write, so a call that
// returns an error leaves the buffer untouched. The package keeps no shared
// state; distinct buffers may be filled from different goroutines, but a
// single buffer must not be filled concurrently.
package fill

import (
	"fmt"
	"image"
	"log/slog"

	"paintbucket/pixel"
)

var nopLogger = slog.New(slog.DiscardHandler)

// Fill replaces the pixels matched by req in buf, in place. A nil logger
// discards all output.
func Fill(logger *slog.Logger, buf *pixel.Buffer, req Request) (Stats, error) {
	if logger == nil {
		logger = nopLogger
	}
	if err := validate(buf, req.Seed, req.Tolerance); err != nil {
		return Stats{}, err
	}

	seed := buf.Index(req.Seed.X, req.Seed.Y)
	target := buf.Get(seed)
	m := newMatcher(buf, target, req)

	logger.Debug("filling", "mode", req.Mode, "seed", req.Seed, "target", target,
		"tolerance", req.Tolerance, "antialias", req.Antialias)

	var filled int
	switch req.Mode {
	case Contiguous:
		filled = m.scanline(seed)
	case Global:
		filled = m.global()
	case TwoPhase:
		for _, i := range m.region(seed) {
			m.paint(i)
			filled++
		}
	default:
		return Stats{}, fmt.Errorf("%w: %d", ErrUnknownMode, int(req.Mode))
	}

	logger.Debug("filled", "pixels", filled, "total", buf.Len())
	return Stats{Target: target, Filled: filled}, nil
}

// Region returns the indices of the 4-connected region of pixels around
// seed that are within tolerance of the seed color. buf is not modified.
func Region(buf *pixel.Buffer, seed image.Point, tolerance int) ([]int, error) {
	if err := validate(buf, seed, tolerance); err != nil {
		return nil, err
	}
	i := buf.Index(seed.X, seed.Y)
	m := newMatcher(buf, buf.Get(i), Request{Tolerance: tolerance})
	return m.region(i), nil
}

// Matches returns the indices of all pixels in buf within tolerance of the
// seed color, regardless of position. buf is not modified.
func Matches(buf *pixel.Buffer, seed image.Point, tolerance int) ([]int, error) {
	if err := validate(buf, seed, tolerance); err != nil {
		return nil, err
	}
	m := newMatcher(buf, buf.Get(buf.Index(seed.X, seed.Y)), Request{Tolerance: tolerance})
	return m.matching(), nil
}

// Apply writes the output of req to every index in indices, using target as
// the color the indices were matched against. req.Seed and req.Mode are
// ignored. Indices must be distinct and still hold their original values.
func Apply(buf *pixel.Buffer, indices []int, target pixel.Pixel, req Request) (int, error) {
	if buf == nil {
		return 0, ErrNoBuffer
	}
	if req.Tolerance < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTolerance, req.Tolerance)
	}
	for _, i := range indices {
		if i < 0 || i >= buf.Len() {
			return 0, fmt.Errorf("%w: index %d not in [0, %d)", ErrOutOfBounds, i, buf.Len())
		}
	}

	m := newMatcher(buf, target, req)
	for _, i := range indices {
		m.paint(i)
	}
	return len(indices), nil
}
