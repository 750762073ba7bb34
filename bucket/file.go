package bucket

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/vp8l"
	_ "golang.org/x/image/webp"
)

func decodeFile(logger *slog.Logger, name string) (image.Image, string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, "", fmt.Errorf("could not open image: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			logger.Error("could not close image", "error", closeErr)
		}
	}()

	img, imgType, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode image: %w", err)
	}
	return img, imgType, nil
}

// outputType picks the encoder for a decoded image. An "unsup:" prefix only
// converts formats there is no encoder for.
func outputType(imgType, outType string) string {
	outType, unsupOnly := strings.CutPrefix(outType, "unsup:")
	if (unsupOnly && imgType != "webp") || outType == "same" {
		return imgType
	}
	return outType
}

func outputName(srcName, suffix, outType string) string {
	ext := filepath.Ext(srcName)
	return fmt.Sprintf("%s%s.%s", srcName[:len(srcName)-len(ext)], suffix, outType)
}

// checkDest fails if dest exists and may not be replaced.
func checkDest(dest string, overwrite bool) error {
	info, err := os.Stat(dest)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cannot stat destination file %q: %w", dest, err)
		}
		return nil
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("cannot replace non-regular file %q: %s", info.Name(), info.Mode().String())
	}
	if !overwrite {
		return fmt.Errorf("destination file already exists: %q", info.Name())
	}
	return nil
}
