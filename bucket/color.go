package bucket

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"paintbucket/pixel"

	"github.com/lucasb-eyer/go-colorful"
)

// parseColor reads a straight-alpha color given as #RGB, #RGBA, #RRGGBB or
// #RRGGBBAA (or "clear") and returns it premultiplied.
func parseColor(s string) (pixel.Pixel, error) {
	switch strings.ToLower(s) {
	case "clear", "transparent":
		return pixel.Pixel{}, nil
	}
	if !strings.HasPrefix(s, "#") {
		return pixel.Pixel{}, fmt.Errorf("invalid color %q, should start with #", s)
	}

	hex, alpha := s, "ff"
	switch len(s) {
	case 4, 5:
		var sb strings.Builder
		for _, r := range s[1:] {
			sb.WriteRune(r)
			sb.WriteRune(r)
		}
		long := sb.String()
		hex = "#" + long[:6]
		if len(s) == 5 {
			alpha = long[6:]
		}
	case 7:
	case 9:
		hex, alpha = s[:7], s[7:]
	default:
		return pixel.Pixel{}, fmt.Errorf("invalid color %q, should be #RGB, #RGBA, #RRGGBB or #RRGGBBAA", s)
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return pixel.Pixel{}, fmt.Errorf("could not read color %q: %w", s, err)
	}
	a, err := strconv.ParseUint(alpha, 16, 8)
	if err != nil {
		return pixel.Pixel{}, fmt.Errorf("could not read alpha of %q: %w", s, err)
	}

	r, g, b := c.RGB255()
	return pixel.FromColor(color.NRGBA{R: r, G: g, B: b, A: uint8(a)}), nil
}
