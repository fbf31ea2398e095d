package viewer

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var _ ebiten.Game = &Viewer{}

const (
	maxScale   = 16.0
	scaleDelta = 0.1
)

// Viewer statically displays a texture in ebiten. Wheel zooms around the cursor.
type Viewer struct {
	scale   float64
	source  image.Image
	current *ebiten.Image
}

func NewViewer(img image.Image) *Viewer {
	result := &Viewer{
		scale:  1,
		source: img,
	}

	result.current = ebiten.NewImageFromImage(checkerboard(img))
	return result
}

// Size returns size of the displayed image.
func (v *Viewer) Size() (w, h int) {
	b := v.source.Bounds()
	return b.Dx(), b.Dy()
}

func (v *Viewer) Update() error {
	_, wheelY := ebiten.Wheel()
	v.scale += wheelY * scaleDelta
	switch {
	case v.scale < 1:
		v.scale = 1
	case v.scale > maxScale:
		v.scale = maxScale
	}

	return nil
}

func (v *Viewer) cursor() image.Point {
	mouseX, mouseY := ebiten.CursorPosition()
	// negative check
	return image.Pt(max(mouseX, 0), max(mouseY, 0))
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	mouse := v.cursor()

	// keep pixel under the cursor in place
	originX := float64(mouse.X) * (1 - 1/v.scale)
	originY := float64(mouse.Y) * (1 - 1/v.scale)

	geom := ebiten.GeoM{}
	geom.Translate(-originX, -originY)
	geom.Scale(v.scale, v.scale)
	screen.DrawImage(v.current, &ebiten.DrawImageOptions{
		GeoM: geom,
	})

	info := fmt.Sprintf("zoom x%.1f", v.scale)
	if mouse.In(v.source.Bounds()) {
		info += fmt.Sprintf("\n%d,%d: %s", mouse.X, mouse.Y, describe(v.source.At(mouse.X, mouse.Y)))
	}

	ebitenutil.DebugPrint(screen, info)
}

func (v *Viewer) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return outsideWidth, outsideHeight
}

// Run opens a window with the viewer.
func Run(title string, img image.Image) error {
	v := NewViewer(img)
	w, h := v.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return ebiten.RunGame(v)
}
