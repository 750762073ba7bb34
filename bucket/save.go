package bucket

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// save encodes img as outType into destDir/destName. The image is written
// to a temporary file first and only renamed into place once complete.
func save(logger *slog.Logger, img image.Image, outType, destDir, destName string, overwrite bool) (err error) {
	dest := filepath.Join(destDir, destName)
	if err := checkDest(dest, overwrite); err != nil {
		return err
	}

	outFile, err := os.CreateTemp(destDir, "."+destName+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary destination %q: %w", destName, err)
	}
	tmpName := outFile.Name()
	removeTemp := func() {
		if removeErr := os.Remove(tmpName); removeErr != nil {
			logger.Error("could not remove temporary destination", "name", tmpName, "error", removeErr)
		}
	}
	done := false
	defer func() {
		if !done {
			if closeErr := outFile.Close(); closeErr != nil {
				logger.Error("could not close temporary destination", "name", tmpName, "error", closeErr)
			}
			removeTemp()
		}
	}()

	if err = encode(outFile, img, outType); err != nil {
		return fmt.Errorf("could not encode destination %q: %w", destName, err)
	}
	if err = outFile.Sync(); err != nil {
		return fmt.Errorf("could not flush temporary destination %q: %w", destName, err)
	}
	done = true
	if err = outFile.Close(); err != nil {
		removeTemp()
		return fmt.Errorf("could not close temporary destination %q: %w", destName, err)
	}
	if err = os.Rename(tmpName, dest); err != nil {
		removeTemp()
		return fmt.Errorf("could not rename destination file %q: %w", destName, err)
	}
	return nil
}

func encode(w io.Writer, img image.Image, outType string) error {
	switch outType {
	case "gif":
		return gif.Encode(w, img, nil)
	case "jpeg":
		return jpeg.Encode(w, img, &jpeg.Options{Quality: 100})
	case "png":
		enc := png.Encoder{
			CompressionLevel: png.BestCompression,
			BufferPool:       pngPool,
		}
		return enc.Encode(w, img)
	case "bmp":
		return bmp.Encode(w, img)
	case "tiff":
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported output format: %s", outType)
	}
}

type pngEncoderBufferPool struct {
	pool sync.Pool
}

func (p *pngEncoderBufferPool) Get() *png.EncoderBuffer {
	return p.pool.Get().(*png.EncoderBuffer)
}

func (p *pngEncoderBufferPool) Put(buf *png.EncoderBuffer) {
	p.pool.Put(buf)
}

var pngPool = &pngEncoderBufferPool{
	pool: sync.Pool{
		New: func() any {
			return &png.EncoderBuffer{}
		},
	},
}
