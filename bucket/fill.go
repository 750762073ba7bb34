package bucket

import (
	"fmt"
	"log/slog"

	"paintbucket/fill"
	"paintbucket/parallel"
	"paintbucket/pixel"

	"github.com/alecthomas/kong"
)

type FillCmd struct {
	SeedParams
	Color       string      `help:"Replacement color: #RGB, #RGBA, #RRGGBB, #RRGGBBAA or clear" default:"clear" group:"fill"`
	Antialias   bool        `help:"Soften the edge of the filled area" default:"false" group:"fill"`
	TwoPhase    bool        `help:"Find the whole region before writing it (ignored with --global)" default:"false" group:"fill"`
	Format      string      `help:"Output format of filled image. If prefixed with 'unsup:' will convert only unsupported formats" enum:"same,gif,unsup:gif,jpeg,unsup:jpeg,png,unsup:png,bmp,unsup:bmp,tiff,unsup:tiff" default:"unsup:png"`
	Replacement pixel.Pixel `kong:"-"`
}

func (c *FillCmd) Validate(kctx *kong.Context) error {
	if err := c.SeedParams.validate(); err != nil {
		return err
	}

	var err error
	if c.Replacement, err = parseColor(c.Color); err != nil {
		return err
	}
	return nil
}

func (c *FillCmd) request() fill.Request {
	req := fill.Request{
		Seed:        c.seed(),
		Tolerance:   c.Tolerance,
		Replacement: c.Replacement,
		Antialias:   c.Antialias,
	}
	switch {
	case c.Global:
		req.Mode = fill.Global
	case c.TwoPhase:
		req.Mode = fill.TwoPhase
	}
	return req
}

func (c *FillCmd) Run(pool *parallel.Pool) error {
	req := c.request()
	slog.Info("filling", "seed", req.Seed, "tolerance", req.Tolerance, "color", c.Color,
		"mode", req.Mode, "antialias", req.Antialias, "workers", pool.Workers())

	return c.forEachFile(pool, func(logger *slog.Logger, filePath, fileName string) error {
		img, imgType, err := decodeFile(logger, filePath)
		if err != nil {
			return err
		}

		buf := pixel.Decode(img)
		stats, err := fill.Fill(logger, buf, req)
		if err != nil {
			return fmt.Errorf("could not fill image: %w", err)
		}
		logger.Info("filled", "pixels", stats.Filled, "target", stats.Target)

		outType := outputType(imgType, c.Format)
		return save(logger, buf.Encode(), outType, c.Dest, outputName(fileName, "", outType), c.Overwrite)
	})
}
