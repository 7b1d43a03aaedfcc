package pixel

import (
	"image"
	"image/color"
)

// FromImage decodes an image.Image into a normalized grid. Each
// channel is reduced to 8 bits and divided by 255; alpha is dropped.
func FromImage(img image.Image) *Grid {
	bounds := img.Bounds()
	g := NewGrid(bounds.Dy(), bounds.Dx())

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			r, gr, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			g.Set(y, x, Pixel{
				R: Dequantize(int(r >> 8)),
				G: Dequantize(int(gr >> 8)),
				B: Dequantize(int(b >> 8)),
			})
		}
	}
	return g
}

// ToRGBA renders the grid back to an opaque RGBA image.
func (g *Grid) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			p := g.At(y, x)
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(Quantize(p.R)),
				G: uint8(Quantize(p.G)),
				B: uint8(Quantize(p.B)),
				A: 255,
			})
		}
	}
	return img
}
