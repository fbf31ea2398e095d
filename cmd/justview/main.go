package main

import (
	"flag"
	"image/png"
	"os"

	"github.com/kpango/glg"

	"github.com/gucio321/ringpick/pkg/termview"
	"github.com/gucio321/ringpick/pkg/viewer"
)

func main() {
	inputFile := flag.String("i", "", "Input file")
	term := flag.Bool("term", false, "preview in the terminal instead of a window")
	flag.Parse()

	if *inputFile == "" {
		flag.Usage()
		glg.Fatal("Input file is required")
	}

	// load file
	f, err := os.Open(*inputFile)
	if err != nil {
		glg.Fatal(err)
	}

	// decode png
	img, err := png.Decode(f)
	f.Close()
	if err != nil {
		glg.Fatalf("Cannot decode %s: %v", *inputFile, err)
	}

	if *term {
		if err := termview.Run(img); err != nil {
			glg.Fatal(err)
		}

		return
	}

	if err := viewer.Run(*inputFile, img); err != nil {
		glg.Fatal(err)
	}
}
