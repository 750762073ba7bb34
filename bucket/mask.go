package bucket

import (
	"fmt"
	"image"
	"log/slog"

	"paintbucket/fill"
	"paintbucket/parallel"
	"paintbucket/pixel"

	"github.com/alecthomas/kong"
)

// MaskCmd writes a grayscale PNG per image, white where a fill from the
// seed would replace the pixel.
type MaskCmd struct {
	SeedParams
}

func (c *MaskCmd) Validate(kctx *kong.Context) error {
	return c.SeedParams.validate()
}

func (c *MaskCmd) Run(pool *parallel.Pool) error {
	slog.Info("masking", "seed", c.seed(), "tolerance", c.Tolerance, "global", c.Global,
		"workers", pool.Workers())

	return c.forEachFile(pool, func(logger *slog.Logger, filePath, fileName string) error {
		img, _, err := decodeFile(logger, filePath)
		if err != nil {
			return err
		}

		mask, err := c.mask(pixel.Decode(img))
		if err != nil {
			return fmt.Errorf("could not compute mask: %w", err)
		}
		return save(logger, mask, "png", c.Dest, outputName(fileName, ".mask", "png"), c.Overwrite)
	})
}

func (c *MaskCmd) mask(buf *pixel.Buffer) (*image.Gray, error) {
	var indices []int
	var err error
	if c.Global {
		indices, err = fill.Matches(buf, c.seed(), c.Tolerance)
	} else {
		indices, err = fill.Region(buf, c.seed(), c.Tolerance)
	}
	if err != nil {
		return nil, err
	}

	// Gray has one byte per pixel and no row padding, so buffer indices
	// address Pix directly.
	mask := image.NewGray(buf.Bounds())
	for _, i := range indices {
		mask.Pix[i] = 0xFF
	}
	return mask, nil
}
