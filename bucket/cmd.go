// Package bucket implements the paint bucket commands: every image in a
// folder is decoded, processed from the same seed pixel and written to a
// destination folder.
package bucket

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"paintbucket/fill"
	"paintbucket/parallel"
)

// SeedParams are the flags shared by every command.
type SeedParams struct {
	Scan      string `help:"Source folder to scan" default:"."`
	Dest      string `help:"Destination folder. Relative to scan dir if not absolute." default:"filled"`
	X         int    `help:"Seed pixel column" default:"0" group:"seed"`
	Y         int    `help:"Seed pixel row" default:"0" group:"seed"`
	Tolerance int    `help:"Maximum color distance to the seed color, sum of channel differences (0-1020)" default:"0" group:"seed"`
	Global    bool   `help:"Match pixels anywhere in the image, not only the region around the seed" default:"false" group:"seed"`
	Overwrite bool   `help:"Replace existing destination files" default:"false"`
}

func (p *SeedParams) validate() error {
	scanDir, err := filepath.Abs(p.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", p.Scan, err)
	}
	p.Scan = scanDir

	if !filepath.IsAbs(p.Dest) {
		p.Dest = filepath.Join(scanDir, p.Dest)
	}

	if p.X < 0 || p.Y < 0 {
		return fmt.Errorf("invalid seed (%d, %d): %w", p.X, p.Y, fill.ErrOutOfBounds)
	}
	if p.Tolerance < 0 {
		return fmt.Errorf("invalid tolerance %d: %w", p.Tolerance, fill.ErrInvalidTolerance)
	}
	return nil
}

func (p *SeedParams) seed() image.Point {
	return image.Pt(p.X, p.Y)
}

// fileFunc processes one image and reports an error for that file only.
type fileFunc func(logger *slog.Logger, filePath, fileName string) error

// forEachFile runs process for every regular file of the scan folder on
// pool and waits for all of them.
func (p *SeedParams) forEachFile(pool *parallel.Pool, process fileFunc) error {
	if err := os.MkdirAll(p.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", p.Dest, err)
	}

	files, err := os.ReadDir(p.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", p.Scan, err)
	}

	var processedCount, errCount atomic.Uint64
	for _, file := range files {
		if !file.Type().IsRegular() {
			continue
		}

		pool.Do(func() {
			filePath := filepath.Join(p.Scan, file.Name())
			logger := slog.Default().With("file", filePath)

			if err := process(logger, filePath, file.Name()); err != nil {
				errCount.Add(1)
				logger.Error("could not process image", "error", err)
				return
			}
			processedCount.Add(1)
		})
	}

	pool.Wait()

	processed := processedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "processed", processed, "errors", errors,
		"total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}
