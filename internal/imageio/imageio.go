// Package imageio loads and saves pixel grids as image files. Format
// is chosen by file extension: png, jpg, and bmp read and write; webp
// is read-only.
package imageio

import (
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/webp"

	"github.com/san-kum/chaoscrypt/internal/pixel"
)

// ErrUnsupportedFormat indicates a file extension with no codec.
var ErrUnsupportedFormat = errors.New("imageio: unsupported image format")

// jpegQuality keeps encode output close to source quality. JPEG is
// lossy, so a round trip through Save/Load does not preserve cipher
// output exactly; PNG or BMP is required for lossless decryption.
const jpegQuality = 95

// Load decodes the image at path into a normalized pixel grid.
func Load(path string) (*pixel.Grid, error) {
	switch ext(path) {
	case ".png", ".jpg", ".jpeg", ".bmp", ".webp":
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var img image.Image
	switch ext(path) {
	case ".png":
		img, err = png.Decode(f)
	case ".jpg", ".jpeg":
		img, err = jpeg.Decode(f)
	case ".bmp":
		img, err = bmp.Decode(f)
	case ".webp":
		img, err = webp.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	return pixel.FromImage(img), nil
}

// Save encodes the grid to path. The transform is expected to have
// fully validated its inputs before Save runs, so a precondition
// failure never leaves a partial file behind.
func Save(path string, g *pixel.Grid) error {
	switch ext(path) {
	case ".png", ".jpg", ".jpeg", ".bmp":
	default:
		// Reject before creating the file.
		return fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	img := g.ToRGBA()
	switch ext(path) {
	case ".png":
		err = png.Encode(f, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality})
	case ".bmp":
		err = bmp.Encode(f, img)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

func ext(path string) string {
	return strings.ToLower(filepath.Ext(path))
}
