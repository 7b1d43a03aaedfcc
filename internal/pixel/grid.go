package pixel

// Pixel holds one image sample with normalized channels.
// Each channel is a real value in [0, 1] standing in for an
// 8-bit intensity.
type Pixel struct {
	R, G, B float64
}

// Grid is a row-major pixel raster of fixed dimensions.
type Grid struct {
	Height int
	Width  int
	pix    []Pixel
}

func NewGrid(height, width int) *Grid {
	if height < 0 {
		height = 0
	}
	if width < 0 {
		width = 0
	}
	return &Grid{
		Height: height,
		Width:  width,
		pix:    make([]Pixel, height*width),
	}
}

// At returns the pixel at row y, column x.
func (g *Grid) At(y, x int) Pixel {
	return g.pix[y*g.Width+x]
}

func (g *Grid) Set(y, x int, p Pixel) {
	g.pix[y*g.Width+x] = p
}

// Size returns the total pixel count.
func (g *Grid) Size() int { return g.Height * g.Width }

func (g *Grid) Clone() *Grid {
	c := &Grid{
		Height: g.Height,
		Width:  g.Width,
		pix:    make([]Pixel, len(g.pix)),
	}
	copy(c.pix, g.pix)
	return c
}

// IsValid reports whether every channel lies in [0, 1].
func (g *Grid) IsValid() bool {
	for _, p := range g.pix {
		for _, c := range [3]float64{p.R, p.G, p.B} {
			if c < 0 || c > 1 {
				return false
			}
		}
	}
	return true
}

// Quantize maps a normalized channel to its 8-bit intensity by
// truncation. Values outside [0, 1] clamp to the byte range.
func Quantize(c float64) int {
	v := int(c * 255)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

// Dequantize maps an 8-bit intensity back to a normalized channel.
func Dequantize(v int) float64 {
	return float64(v) / 255
}
