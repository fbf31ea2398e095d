// Package texture provides a highly-abstracted pixel buffer with a few drawing helpers.
// NOTE: like in most game engines, texture coordinates start in the bottom-left
// corner and Y axis points up. Image/PNG output is flipped to the usual top-down layout.
package texture

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
)

// Texture is a width x height pixel buffer.
type Texture struct {
	pixmap *gg.Pixmap
}

// New creates a new (transparent) texture.
func New(width, height int) (*Texture, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidSize, width, height)
	}

	return &Texture{
		pixmap: gg.NewPixmap(width, height),
	}, nil
}

func (t *Texture) Width() int {
	return t.pixmap.Width()
}

func (t *Texture) Height() int {
	return t.pixmap.Height()
}

// row translates texture's y (bottom-up) to pixmap's row (top-down).
func (t *Texture) row(y int) int {
	return t.Height() - 1 - y
}

// Set sets a single pixel. Out-of-texture coordinates are ignored.
func (t *Texture) Set(x, y int, c gg.RGBA) {
	t.pixmap.SetPixel(x, t.row(y), c)
}

// At returns color of a single pixel (Transparent if outside the texture).
func (t *Texture) At(x, y int) gg.RGBA {
	return t.pixmap.GetPixel(x, t.row(y))
}

// Fill fills the whole texture with c.
func (t *Texture) Fill(c gg.RGBA) *Texture {
	t.pixmap.Clear(c)
	return t
}

// Image returns a top-down copy of the texture.
func (t *Texture) Image() *image.RGBA {
	return t.pixmap.ToImage()
}

// EncodePNG writes the texture to w as PNG.
func (t *Texture) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, t.Image()); err != nil {
		return fmt.Errorf("cant encode png: %w", err)
	}

	return nil
}

// SavePNG saves the texture under path. Parent directories are created when needed.
func (t *Texture) SavePNG(path string) error {
	return t.savePNG(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC)
}

// CreatePNG is like SavePNG, but fails (with fs.ErrExist) if path already exists.
func (t *Texture) CreatePNG(path string) error {
	return t.savePNG(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL)
}

func (t *Texture) savePNG(path string, flag int) (err error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cant create directory %s: %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, flag, 0o644) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("cant create %s: %w", path, err)
	}

	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("cant close %s: %w", path, closeErr)
		}
	}()

	return t.EncodePNG(f)
}
