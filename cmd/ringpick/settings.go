package main

import (
	"fmt"

	"github.com/kpango/glg"

	pkg "github.com/gucio321/ringpick/pkg"
	"github.com/gucio321/ringpick/pkg/preset"
)

// generator builds Ringpick from flags.
// Precedence (lowest first): defaults, built-in preset (-p), explicitly set flags, preset file (-preset).
// explicit holds names of flags given on the command line.
func (f *Flags) generator(explicit map[string]bool) (*pkg.Ringpick, error) {
	result := pkg.NewRingpick()

	if f.builtin != "" {
		p, err := preset.Get(f.builtin)
		if err != nil {
			return nil, fmt.Errorf("%w (see -list)", err)
		}

		glg.Debugf("using built-in preset %s", p.Name)
		result.Apply(p)
	}

	for name := range explicit {
		switch name {
		case "r":
			result.Radius(f.Radius)
		case "t":
			result.Thick(f.Thick)
		case "rot":
			result.Rotation(f.Rotation)
		case "o":
			result.Output(f.Output)
		}
	}

	if f.preset != "" {
		p, err := preset.Load(f.preset)
		if err != nil {
			return nil, fmt.Errorf("%w (use valid file or empty to not use presets)", err)
		}

		result.Apply(p)
	}

	return result, nil
}
