package texture

import (
	"bytes"
	"errors"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gg"

	"github.com/gucio321/ringpick/pkg/vec"
)

var (
	red   = gg.RGBA{R: 1, A: 1}
	green = gg.RGBA{G: 1, A: 1}
)

func TestNew(t *testing.T) {
	tex, err := New(4, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tex.Width() != 4 || tex.Height() != 3 {
		t.Errorf("expected 4x3, got %dx%d", tex.Width(), tex.Height())
	}

	if got := tex.At(1, 1); got != gg.Transparent {
		t.Errorf("expected new texture to be transparent, got %+v", got)
	}

	for _, size := range [][2]int{{0, 1}, {1, 0}, {-1, 5}} {
		if _, err := New(size[0], size[1]); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("New(%d, %d): expected ErrInvalidSize, got %v", size[0], size[1], err)
		}
	}
}

func TestFill(t *testing.T) {
	tex, _ := New(3, 2)
	tex.Fill(red)

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := tex.At(x, y); got != red {
				t.Errorf("pixel (%d, %d): expected red, got %+v", x, y, got)
			}
		}
	}
}

func TestOriginIsBottomLeft(t *testing.T) {
	tex, _ := New(2, 2)
	tex.Set(0, 0, red)

	img := tex.Image()
	r, _, _, a := img.At(0, 1).RGBA()
	if r != 0xffff || a != 0xffff {
		t.Errorf("expected texture (0, 0) to be the bottom-left image pixel")
	}

	if _, _, _, a := img.At(0, 0).RGBA(); a != 0 {
		t.Errorf("expected top-left image pixel to stay transparent")
	}
}

func TestCircleCoverage(t *testing.T) {
	const size, r = 8, 4
	tex, _ := New(size, size)

	if err := tex.Circle(r, r, r, Solid(red)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cx, cy := float64(x)+0.5-r, float64(y)+0.5-r
			inside := cx*cx+cy*cy < r*r
			got := tex.At(x, y)

			switch {
			case inside && got != red:
				t.Errorf("pixel (%d, %d) should be drawn", x, y)
			case !inside && got != gg.Transparent:
				t.Errorf("pixel (%d, %d) should not be touched", x, y)
			}
		}
	}

	// corners of the square are outside the disc
	if tex.At(0, 0) != gg.Transparent || tex.At(size-1, size-1) != gg.Transparent {
		t.Error("expected corners to stay transparent")
	}
}

func TestCircleSymmetry(t *testing.T) {
	const r = 3
	tex, _ := New(2*r, 2*r)

	quadrants := map[[2]bool]gg.RGBA{
		{true, true}:   {R: 1, A: 1},
		{false, true}:  {G: 1, A: 1},
		{true, false}:  {B: 1, A: 1},
		{false, false}: {R: 1, G: 1, A: 1},
	}

	var calls int
	err := tex.Circle(r, r, r, func(p vec.Point[float64]) gg.RGBA {
		calls++
		return quadrants[[2]bool{p.X > 0, p.Y > 0}]
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if calls%4 != 0 {
		t.Errorf("expected color function to be called 4 times per quadrant pixel, got %d calls", calls)
	}

	tests := []struct {
		x, y int
		want gg.RGBA
	}{
		{r, r, quadrants[[2]bool{true, true}]},
		{r - 1, r, quadrants[[2]bool{false, true}]},
		{r, r - 1, quadrants[[2]bool{true, false}]},
		{r - 1, r - 1, quadrants[[2]bool{false, false}]},
	}

	for _, tt := range tests {
		if got := tex.At(tt.x, tt.y); got != tt.want {
			t.Errorf("pixel (%d, %d): expected %+v, got %+v", tt.x, tt.y, tt.want, got)
		}
	}
}

func TestCircleOffCenter(t *testing.T) {
	tex, _ := New(10, 10)
	tex.Fill(green)

	if err := tex.Circle(6, 5, 2, Solid(red)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, p := range [][2]int{{5, 4}, {6, 4}, {5, 5}, {6, 5}} {
		if got := tex.At(p[0], p[1]); got != red {
			t.Errorf("pixel %v: expected red, got %+v", p, got)
		}
	}

	if got := tex.At(1, 1); got != green {
		t.Errorf("pixel outside circle changed: %+v", got)
	}
}

func TestCircleErrors(t *testing.T) {
	tex, _ := New(10, 10)

	tests := []struct {
		name       string
		cx, cy, r  int
		wantErr    error
		wantNoDraw bool
	}{
		{"negative radius", 5, 5, -1, ErrInvalidRadius, true},
		{"zero radius", 5, 5, 0, nil, true},
		{"left", 2, 5, 3, ErrRegionOutOfBounds, true},
		{"bottom", 5, 2, 3, ErrRegionOutOfBounds, true},
		{"right", 8, 5, 3, ErrRegionOutOfBounds, true},
		{"top", 5, 8, 3, ErrRegionOutOfBounds, true},
		{"exact fit", 5, 5, 5, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tex.Fill(gg.Transparent)
			err := tex.Circle(tt.cx, tt.cy, tt.r, Solid(red))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}

			drawn := tex.At(5, 5) == red
			if drawn == tt.wantNoDraw {
				t.Errorf("unexpected drawing state: drawn=%v", drawn)
			}
		})
	}
}

func TestEncodePNG(t *testing.T) {
	tex, _ := New(6, 4)
	tex.Set(5, 3, red)

	var buf bytes.Buffer
	if err := tex.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG failed: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}

	if b := img.Bounds(); b.Dx() != 6 || b.Dy() != 4 {
		t.Errorf("expected 6x4, got %v", b)
	}

	if r, _, _, _ := img.At(5, 0).RGBA(); r != 0xffff {
		t.Errorf("expected top-right pixel to be red")
	}
}

func TestSavePNG(t *testing.T) {
	tex, _ := New(2, 2)
	path := filepath.Join(t.TempDir(), "nested", "dir", "out.png")

	if err := tex.SavePNG(path); err != nil {
		t.Fatalf("SavePNG failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("cant open saved file: %v", err)
	}
	defer f.Close()

	if _, err := png.DecodeConfig(f); err != nil {
		t.Errorf("saved file is not a PNG: %v", err)
	}
}

func TestCreatePNG(t *testing.T) {
	tex, _ := New(2, 2)
	path := filepath.Join(t.TempDir(), "out.png")

	if err := tex.CreatePNG(path); err != nil {
		t.Fatalf("CreatePNG failed: %v", err)
	}

	if err := os.WriteFile(path, []byte("keep me"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := tex.CreatePNG(path); !errors.Is(err, fs.ErrExist) {
		t.Errorf("expected fs.ErrExist, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	if string(data) != "keep me" {
		t.Errorf("existing file was modified: %q", data)
	}

	if err := tex.SavePNG(path); err != nil {
		t.Errorf("SavePNG should overwrite, got %v", err)
	}
}
