package viewer

import (
	"fmt"
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
	"golang.org/x/image/draw"
)

const tileSize = 16

var (
	tileLight = colornames.Lightgray
	tileDark  = colornames.Darkgray
)

// checkerboard returns src drawn over a checkerboard, so transparent parts are visible.
func checkerboard(src image.Image) *image.RGBA {
	bounds := src.Bounds()
	dest := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))

	for y := 0; y < bounds.Dy(); y += tileSize {
		for x := 0; x < bounds.Dx(); x += tileSize {
			c := tileLight
			if (x/tileSize+y/tileSize)%2 == 1 {
				c = tileDark
			}

			draw.Draw(dest, image.Rect(x, y, x+tileSize, y+tileSize), image.NewUniform(c), image.Point{}, draw.Src)
		}
	}

	draw.Draw(dest, dest.Bounds(), src, bounds.Min, draw.Over)

	return dest
}

// describe returns human-readable description of c.
func describe(c color.Color) string {
	col, ok := colorful.MakeColor(c)
	if !ok {
		return "transparent"
	}

	h, s, v := col.Hsv()
	return fmt.Sprintf("%s (H %.0f S %.2f V %.2f)", col.Hex(), h, s, v)
}
