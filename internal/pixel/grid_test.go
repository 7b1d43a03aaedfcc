package pixel

import (
	"image"
	"image/color"
	"testing"
)

func TestQuantize(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want int
	}{
		{"black", 0.0, 0},
		{"white", 1.0, 255},
		{"mid", 0.5, 127},
		{"truncates", 44.0 / 255, 44},
		{"clamps low", -0.5, 0},
		{"clamps high", 1.5, 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Quantize(tt.in); got != tt.want {
				t.Errorf("Quantize(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestQuantizeDequantizeRoundTrip(t *testing.T) {
	for v := 0; v <= 255; v++ {
		if got := Quantize(Dequantize(v)); got != v {
			t.Fatalf("round trip %d gave %d", v, got)
		}
	}
}

func TestGridCloneIsIndependent(t *testing.T) {
	g := NewGrid(2, 3)
	g.Set(1, 2, Pixel{R: 0.5})

	c := g.Clone()
	c.Set(1, 2, Pixel{R: 0.9})

	if g.At(1, 2).R != 0.5 {
		t.Error("clone aliases the original backing slice")
	}
}

func TestGridSize(t *testing.T) {
	if got := NewGrid(4, 7).Size(); got != 28 {
		t.Errorf("expected size 28, got %d", got)
	}
	if got := NewGrid(0, 7).Size(); got != 0 {
		t.Errorf("expected size 0, got %d", got)
	}
}

func TestGridIsValid(t *testing.T) {
	g := NewGrid(1, 1)
	if !g.IsValid() {
		t.Error("zero grid should be valid")
	}
	g.Set(0, 0, Pixel{R: 1.2})
	if g.IsValid() {
		t.Error("channel above 1 should invalidate the grid")
	}
}

func TestFromImageToRGBARoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 2))
	img.SetRGBA(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	img.SetRGBA(2, 1, color.RGBA{R: 255, G: 0, B: 127, A: 255})

	g := FromImage(img)
	if g.Height != 2 || g.Width != 3 {
		t.Fatalf("expected 2x3 grid, got %dx%d", g.Height, g.Width)
	}

	back := g.ToRGBA()
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if back.RGBAAt(x, y) != img.RGBAAt(x, y) {
				t.Errorf("pixel (%d,%d): %v != %v", x, y, back.RGBAAt(x, y), img.RGBAAt(x, y))
			}
		}
	}
}

func TestFromImageRespectsBoundsOffset(t *testing.T) {
	img := image.NewRGBA(image.Rect(5, 5, 7, 6))
	img.SetRGBA(6, 5, color.RGBA{R: 200, A: 255})

	g := FromImage(img)
	if g.Height != 1 || g.Width != 2 {
		t.Fatalf("expected 1x2 grid, got %dx%d", g.Height, g.Width)
	}
	if Quantize(g.At(0, 1).R) != 200 {
		t.Errorf("offset bounds read wrong pixel: %v", g.At(0, 1))
	}
}
