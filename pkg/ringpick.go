// Package ringpick generates ring-shaped RGB color picker textures.
package ringpick

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/gogpu/gg"
	"github.com/kpango/glg"

	"github.com/gucio321/ringpick/pkg/picker"
	"github.com/gucio321/ringpick/pkg/preset"
	"github.com/gucio321/ringpick/pkg/texture"
)

const (
	DefaultRadius = 512
	DefaultThick  = 100
	DefaultOutput = "ColorPicker.png"
)

// Ringpick holds settings of the color ring.
type Ringpick struct {
	radius   int
	thick    int
	rotation float64
	output   string
}

func NewRingpick() *Ringpick {
	return &Ringpick{
		radius: DefaultRadius,
		thick:  DefaultThick,
		output: DefaultOutput,
	}
}

// FromPreset creates Ringpick with default settings overridden by p's non-zero values.
func FromPreset(p *preset.Preset) *Ringpick {
	return NewRingpick().Apply(p)
}

// Apply copies non-zero values of p.
func (r *Ringpick) Apply(p *preset.Preset) *Ringpick {
	if p.Radius != 0 {
		r.radius = p.Radius
	}

	if p.Thick != 0 {
		r.thick = p.Thick
	}

	if p.Rotation != 0 {
		r.rotation = p.Rotation
	}

	if p.Output != "" {
		r.output = p.Output
	}

	return r
}

// Preset returns current settings as a preset.
func (r *Ringpick) Preset() *preset.Preset {
	return &preset.Preset{
		Radius:   r.radius,
		Thick:    r.thick,
		Rotation: r.rotation,
		Output:   r.output,
	}
}

// Radius sets radius of the colored ring in pixels. The texture is 2*radius wide.
func (r *Ringpick) Radius(radius int) *Ringpick {
	r.radius = radius
	return r
}

// Thick sets thickness of the ring in pixels.
func (r *Ringpick) Thick(thick int) *Ringpick {
	r.thick = thick
	return r
}

// Rotation rotates R anchor counterclockwise (by default it is on the top).
func (r *Ringpick) Rotation(deg float64) *Ringpick {
	r.rotation = deg
	return r
}

// Output sets the output file path.
func (r *Ringpick) Output(path string) *Ringpick {
	r.output = path
	return r
}

func (r *Ringpick) OutputPath() string {
	return r.output
}

// Validate checks whether the ring geometry makes sense.
func (r *Ringpick) Validate() error {
	if r.radius < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidRadius, r.radius)
	}

	if r.thick < 1 || r.thick > r.radius {
		return fmt.Errorf("%w: got %d (radius %d)", ErrInvalidThick, r.thick, r.radius)
	}

	return nil
}

// Texture draws the color ring.
func (r *Ringpick) Texture() (*texture.Texture, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	// 1.0: create texture and make it transparent
	tex, err := texture.New(2*r.radius, 2*r.radius)
	if err != nil {
		return nil, fmt.Errorf("cant create texture: %w", err)
	}

	tex.Fill(gg.Transparent)

	// 2.0: draw the colored circle
	anchors := picker.NewAnchors(r.radius, r.rotation)
	if err := tex.Circle(r.radius, r.radius, r.radius, anchors.Color); err != nil {
		return nil, fmt.Errorf("cant draw color circle: %w", err)
	}

	// 3.0: cut the transparent hole
	if err := tex.Circle(r.radius, r.radius, r.radius-r.thick, texture.Solid(gg.Transparent)); err != nil {
		return nil, fmt.Errorf("cant draw inner circle: %w", err)
	}

	return tex, nil
}

// Save writes tex as PNG to path. Existing file is kept unless force is set.
func (r *Ringpick) Save(tex *texture.Texture, path string, force bool) error {
	save := tex.CreatePNG
	if force {
		save = tex.SavePNG
	}

	if err := save(path); err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w: %s (use force to overwrite)", ErrOutputExists, path)
		}

		return fmt.Errorf("cant save texture: %w", err)
	}

	glg.Infof("Texture %dx%d (radius %d, thick %d) saved to %s",
		tex.Width(), tex.Height(), r.radius, r.thick, path)

	return nil
}

// Generate draws the texture and saves it to the output path.
func (r *Ringpick) Generate(force bool) (*texture.Texture, error) {
	tex, err := r.Texture()
	if err != nil {
		return nil, err
	}

	if err := r.Save(tex, r.output, force); err != nil {
		return nil, err
	}

	return tex, nil
}
