// Package termview previews textures directly in the terminal.
// Every terminal cell shows two vertically stacked pixels using the upper half block.
package termview

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

const halfBlock = '▀'

// Background is what transparent pixels are blended with.
var Background, _ = colorful.MakeColor(colornames.Black)

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// composite blends c over Background according to its alpha.
func composite(c color.Color) colorful.Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	fg := colorful.Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
	}

	return Background.BlendRgb(fg, float64(n.A)/255)
}

// Render draws img scaled to fit the screen. The last row is used as a status line.
func Render(screen tcell.Screen, img image.Image, status string) {
	screen.Clear()

	cols, rows := screen.Size()
	if rows > 1 {
		rows--
	}

	bounds := img.Bounds()
	samplesW, samplesH := float64(cols), float64(2*rows)
	scale := max(float64(bounds.Dx())/samplesW, float64(bounds.Dy())/samplesH)
	if scale <= 0 {
		return
	}

	drawnW := int(float64(bounds.Dx()) / scale)
	drawnH := int(float64(bounds.Dy()) / scale)
	offX := (cols - drawnW) / 2
	offY := (2*rows - drawnH) / 2

	sample := func(x, y int) colorful.Color {
		sx := bounds.Min.X + int((float64(x-offX)+0.5)*scale)
		sy := bounds.Min.Y + int((float64(y-offY)+0.5)*scale)
		if x < offX || y < offY || !image.Pt(sx, sy).In(bounds) {
			return Background
		}

		return composite(img.At(sx, sy))
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top, bottom := sample(col, 2*row), sample(col, 2*row+1)
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			screen.SetContent(col, row, halfBlock, nil, style)
		}
	}

	for i, r := range []rune(status) {
		if i >= cols {
			break
		}

		screen.SetContent(i, rows, r, nil, tcell.StyleDefault)
	}
}

// Run shows img in the terminal until Esc, q or Ctrl+C is pressed.
func Run(img image.Image) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("cannot create terminal screen: %w", err)
	}

	if err := screen.Init(); err != nil {
		return fmt.Errorf("cannot initialize terminal screen: %w", err)
	}

	defer screen.Fini()

	status := fmt.Sprintf("%dx%d - press q or Esc to quit", img.Bounds().Dx(), img.Bounds().Dy())

	for {
		Render(screen, img, status)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
				(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
				return nil
			}
		}
	}
}
