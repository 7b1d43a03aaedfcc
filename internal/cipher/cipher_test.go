package cipher

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/san-kum/chaoscrypt/internal/chaos"
	"github.com/san-kum/chaoscrypt/internal/pixel"
)

func testGrid(h, w int) *pixel.Grid {
	g := pixel.NewGrid(h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.Set(y, x, pixel.Pixel{
				R: float64((y*w+x)%256) / 255,
				G: float64((y*w+x+85)%256) / 255,
				B: float64((y*w+x+170)%256) / 255,
			})
		}
	}
	return g
}

func TestTransformRoundTrip(t *testing.T) {
	g := testGrid(8, 5)
	keys, err := chaos.GenerateKeys(0.37, 3.99, g.Size())
	if err != nil {
		t.Fatalf("generate keys: %v", err)
	}

	enc, err := Transform(g, keys)
	if err != nil {
		t.Fatalf("encrypt failed: %v", err)
	}
	dec, err := Transform(enc, keys)
	if err != nil {
		t.Fatalf("decrypt failed: %v", err)
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			want, got := g.At(y, x), dec.At(y, x)
			if pixel.Quantize(want.R) != pixel.Quantize(got.R) ||
				pixel.Quantize(want.G) != pixel.Quantize(got.G) ||
				pixel.Quantize(want.B) != pixel.Quantize(got.B) {
				t.Fatalf("pixel (%d,%d): round trip changed %v to %v", y, x, want, got)
			}
		}
	}
}

func TestTransformBlackGrid(t *testing.T) {
	// 2x2 all-black grid with known keys: each pixel's channels become
	// key/255, and a second pass restores black exactly.
	g := pixel.NewGrid(2, 2)
	keys := []byte{0, 44, 7, 26}

	enc, err := Transform(g, keys)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}

	want := [][]float64{
		{0, 44.0 / 255},
		{7.0 / 255, 26.0 / 255},
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			p := enc.At(y, x)
			for _, c := range [3]float64{p.R, p.G, p.B} {
				if math.Abs(c-want[y][x]) > 1e-12 {
					t.Errorf("pixel (%d,%d): expected %v, got %v", y, x, want[y][x], c)
				}
			}
		}
	}

	dec, err := Transform(enc, keys)
	if err != nil {
		t.Fatalf("second transform failed: %v", err)
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			p := dec.At(y, x)
			if p.R != 0 || p.G != 0 || p.B != 0 {
				t.Errorf("pixel (%d,%d): expected black, got %v", y, x, p)
			}
		}
	}
}

func TestTransformKeyLengthMismatch(t *testing.T) {
	g := testGrid(4, 4)

	tests := []struct {
		name string
		n    int
	}{
		{"one short", g.Size() - 1},
		{"one long", g.Size() + 1},
		{"empty", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Transform(g, make([]byte, tt.n))
			if !errors.Is(err, ErrKeyLength) {
				t.Fatalf("expected ErrKeyLength, got %v", err)
			}
			if out != nil {
				t.Error("expected no output on mismatch")
			}
		})
	}
}

func TestTransformDoesNotMutateInput(t *testing.T) {
	g := testGrid(3, 3)
	before := g.Clone()

	keys := make([]byte, g.Size())
	for i := range keys {
		keys[i] = byte(i * 31)
	}
	if _, err := Transform(g, keys); err != nil {
		t.Fatalf("transform failed: %v", err)
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			if g.At(y, x) != before.At(y, x) {
				t.Fatalf("input grid mutated at (%d,%d)", y, x)
			}
		}
	}
}

func TestTransformPerPixelIndependence(t *testing.T) {
	g := testGrid(4, 4)
	keys := make([]byte, g.Size())
	for i := range keys {
		keys[i] = byte(i * 17)
	}

	base, err := Transform(g, keys)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}

	changed := make([]byte, len(keys))
	copy(changed, keys)
	changed[5] ^= 0xff

	out, err := Transform(g, changed)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}

	for y := 0; y < g.Height; y++ {
		for x := 0; x < g.Width; x++ {
			z := y*g.Width + x
			same := out.At(y, x) == base.At(y, x)
			if z == 5 && same {
				t.Error("changed key left its pixel unchanged")
			}
			if z != 5 && !same {
				t.Errorf("changed key altered unrelated pixel (%d,%d)", y, x)
			}
		}
	}
}

func TestTransformRangeInvariant(t *testing.T) {
	g := testGrid(16, 16)
	keys, err := chaos.GenerateKeys(0.61, 4.0, g.Size())
	if err != nil {
		t.Fatalf("generate keys: %v", err)
	}

	out, err := Transform(g, keys)
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	if !out.IsValid() {
		t.Error("transformed grid has channels outside [0, 1]")
	}
}

func TestTransformParallelMatchesSequential(t *testing.T) {
	g := testGrid(300, 40)
	keys, err := chaos.GenerateKeys(0.42, 3.97, g.Size())
	if err != nil {
		t.Fatalf("generate keys: %v", err)
	}

	want, err := Transform(g, keys)
	if err != nil {
		t.Fatalf("sequential failed: %v", err)
	}

	for _, workers := range []int{1, 2, 4} {
		got, err := TransformParallel(context.Background(), g, keys, workers)
		if err != nil {
			t.Fatalf("parallel (workers=%d) failed: %v", workers, err)
		}
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				if got.At(y, x) != want.At(y, x) {
					t.Fatalf("workers=%d: mismatch at (%d,%d)", workers, y, x)
				}
			}
		}
	}
}

func TestTransformParallelCanceled(t *testing.T) {
	g := testGrid(2, 2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := TransformParallel(ctx, g, make([]byte, 4), 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if out != nil {
		t.Error("expected no output after cancellation")
	}
}

func TestTransformProgressReportsAllRows(t *testing.T) {
	g := testGrid(256, 8)
	keys := make([]byte, g.Size())

	var last int
	_, err := TransformProgress(context.Background(), g, keys, 1, func(done, total int) {
		last = done
		if total != g.Height {
			t.Errorf("expected total %d, got %d", g.Height, total)
		}
	})
	if err != nil {
		t.Fatalf("transform failed: %v", err)
	}
	if last != g.Height {
		t.Errorf("expected final progress %d, got %d", g.Height, last)
	}
}

func BenchmarkTransform(b *testing.B) {
	g := testGrid(512, 512)
	keys, _ := chaos.GenerateKeys(0.3, 3.99, g.Size())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Transform(g, keys); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkTransformParallel(b *testing.B) {
	g := testGrid(512, 512)
	keys, _ := chaos.GenerateKeys(0.3, 3.99, g.Size())
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := TransformParallel(ctx, g, keys, 4); err != nil {
			b.Fatal(err)
		}
	}
}
