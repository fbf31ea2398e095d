package texture

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gucio321/ringpick/pkg/vec"
)

// ColorFunc calculates pixel color from the position of the pixel center
// relative to the center of the drawn circle.
type ColorFunc func(p vec.Point[float64]) gg.RGBA

// Solid returns a ColorFunc painting everything with c.
func Solid(c gg.RGBA) ColorFunc {
	return func(vec.Point[float64]) gg.RGBA {
		return c
	}
}

// Circle draws a disc of the given radius centered in (centerX, centerY).
// Color of every pixel is calculated by colorFn. Pixels outside of the disc are not touched.
// The whole [center-radius, center+radius) square must fit in the texture.
// Only one quadrant is scanned, the other three are drawn by symmetry.
func (t *Texture) Circle(centerX, centerY, radius int, colorFn ColorFunc) error {
	switch {
	case radius < 0:
		return fmt.Errorf("%w: got %d", ErrInvalidRadius, radius)
	case radius == 0:
		return nil
	case centerX-radius < 0, centerY-radius < 0,
		centerX+radius > t.Width(), centerY+radius > t.Height():
		return fmt.Errorf("%w: circle (%d, %d) r=%d, texture %dx%d",
			ErrRegionOutOfBounds, centerX, centerY, radius, t.Width(), t.Height())
	}

	sqrRadius := float64(radius * radius)

	for y := 0; y < radius; y++ {
		posY := float64(y) + 0.5
		py := centerY + y
		ny := centerY - y - 1

		for x := 0; x < radius; x++ {
			pos := vec.Pt(float64(x)+0.5, posY)
			if pos.SqrMagnitude() >= sqrRadius {
				// further pixels in this row are outside as well
				break
			}

			px := centerX + x
			nx := centerX - x - 1

			t.Set(px, py, colorFn(pos))
			t.Set(nx, py, colorFn(vec.Pt(-pos.X, pos.Y)))
			t.Set(px, ny, colorFn(vec.Pt(pos.X, -pos.Y)))
			t.Set(nx, ny, colorFn(vec.Pt(-pos.X, -pos.Y)))
		}
	}

	return nil
}
