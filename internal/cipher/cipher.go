// Package cipher applies a self-inverse XOR substitution over a pixel
// grid, one keystream byte per pixel. Applying Transform twice with
// the same keys restores the original truncated 8-bit channel values
// exactly.
package cipher

import (
	"errors"
	"fmt"

	"github.com/san-kum/chaoscrypt/internal/pixel"
)

// ErrKeyLength indicates a keystream whose length does not match the
// grid's pixel count.
var ErrKeyLength = errors.New("cipher: key length does not match grid size")

// Transform XORs every channel of every pixel with the pixel's
// keystream byte, traversing the grid row-major. The channel value is
// truncated to 8 bits, XORed, and divided back by 255; performing the
// XOR on the truncated integer is what makes the operation its own
// inverse at 8-bit precision.
//
// The input grid is never mutated; the result is an independent copy.
func Transform(g *pixel.Grid, keys []byte) (*pixel.Grid, error) {
	if len(keys) != g.Size() {
		return nil, fmt.Errorf("%w: %d keys for %dx%d grid", ErrKeyLength, len(keys), g.Height, g.Width)
	}

	out := pixel.NewGrid(g.Height, g.Width)
	transformRows(g, out, keys, 0, g.Height)
	return out, nil
}

// transformRows applies the substitution to rows [start, end). The
// keystream index is derived from the row-major position, so chunks
// can run independently without changing the key-to-pixel mapping.
func transformRows(src, dst *pixel.Grid, keys []byte, start, end int) {
	for y := start; y < end; y++ {
		for x := 0; x < src.Width; x++ {
			z := y*src.Width + x
			dst.Set(y, x, substitute(src.At(y, x), keys[z]))
		}
	}
}

// substitute applies one key byte to all three channels of a pixel.
func substitute(p pixel.Pixel, key byte) pixel.Pixel {
	return pixel.Pixel{
		R: pixel.Dequantize(pixel.Quantize(p.R) ^ int(key)),
		G: pixel.Dequantize(pixel.Quantize(p.G) ^ int(key)),
		B: pixel.Dequantize(pixel.Quantize(p.B) ^ int(key)),
	}
}
