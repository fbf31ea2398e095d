package main

import (
	"flag"
	"fmt"

	"github.com/kpango/glg"

	pkg "github.com/gucio321/ringpick/pkg"
	"github.com/gucio321/ringpick/pkg/export"
	"github.com/gucio321/ringpick/pkg/preset"
	"github.com/gucio321/ringpick/pkg/termview"
	"github.com/gucio321/ringpick/pkg/viewer"
)

type Flags struct {
	Radius     int
	Thick      int
	Rotation   float64
	Output     string
	force      bool
	builtin    string
	preset     string
	makePreset bool
	list       bool
	view       bool
	term       bool
	export     string
	verbose    bool
}

func main() {
	var f Flags
	flag.IntVar(&f.Radius, "r", pkg.DefaultRadius, "radius of the color ring in pixels (texture is 2*r wide)")
	flag.IntVar(&f.Thick, "t", pkg.DefaultThick, "thickness of the color ring in pixels")
	flag.Float64Var(&f.Rotation, "rot", 0, "rotation of the R point in degrees (counterclockwise, 0 is top)")
	flag.StringVar(&f.Output, "o", pkg.DefaultOutput, "output file path")
	flag.BoolVar(&f.force, "f", false, "force (overwrite existing output)")
	flag.StringVar(&f.builtin, "p", "", "built-in preset name (see -list); explicitly set -r, -t, -rot and -o take precedence")
	flag.StringVar(&f.preset, "preset", "", "JSON preset file path. This will override all other flags")
	flag.BoolVar(&f.makePreset, "make-preset", false, "auto-generate preset")
	flag.BoolVar(&f.list, "list", false, "list built-in presets")
	flag.BoolVar(&f.view, "v", false, "view the result in a window")
	flag.BoolVar(&f.term, "term", false, "preview the result in the terminal")
	flag.StringVar(&f.export, "export", "", "additionally export with inkscape (svg, pdf, eps, emf)")
	flag.BoolVar(&f.verbose, "verbose", false, "verbose logging")
	flag.Parse()

	if !f.verbose {
		glg.Get().SetLevelMode(glg.DEBG, glg.NONE)
	}

	if f.list {
		presets, err := preset.Builtin()
		if err != nil {
			glg.Fatalf("Unable to read built-in presets: %v", err)
		}

		for _, p := range presets {
			fmt.Printf("%-16s r=%-4d t=%-4d %s\n", p.Name, p.Radius, p.Thick, p.Description)
		}

		return
	}

	explicit := make(map[string]bool)
	flag.Visit(func(fl *flag.Flag) {
		explicit[fl.Name] = true
	})

	generator, err := f.generator(explicit)
	if err != nil {
		glg.Fatalf("Unable to configure generator: %v", err)
	}

	if f.makePreset {
		out, err := generator.Preset().JSON()
		if err != nil {
			glg.Fatalf("Unable to generate preset: %v", err)
		}

		fmt.Println(string(out))
		glg.Infof("Presets generated")

		return
	}

	var format export.Format
	if f.export != "" {
		var err error
		if format, err = export.ParseFormat(f.export); err != nil {
			glg.Fatalf("Invalid -export: %v", err)
		}
	}

	tex, err := generator.Generate(f.force)
	if err != nil {
		glg.Fatalf("Cannot generate texture: %v", err)
	}

	if format != "" {
		if _, err := export.NewExporter().Verbose(f.verbose).Export(generator.OutputPath(), format); err != nil {
			glg.Fatalf("Cannot export %s: %v", generator.OutputPath(), err)
		}
	}

	if f.term {
		if err := termview.Run(tex.Image()); err != nil {
			glg.Fatalf("Cannot run terminal preview: %v", err)
		}
	}

	if f.view {
		if err := viewer.Run(generator.OutputPath(), tex.Image()); err != nil {
			glg.Fatalf("Cannot run viewer: %v", err)
		}
	}
}
