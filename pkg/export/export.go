// Package export converts generated textures into other formats using inkscape.
package export

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	inkscape "github.com/galihrivanto/go-inkscape"
	"github.com/kpango/glg"
	"github.com/rustyoz/svg"
)

// Format is an inkscape export type.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
	FormatEPS Format = "eps"
	FormatEMF Format = "emf"
)

// Formats lists supported export types.
var Formats = []Format{FormatSVG, FormatPDF, FormatEPS, FormatEMF}

// ParseFormat validates export type name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimPrefix(name, ".")))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
}

// OutputPath replaces extension of input with the format's one.
func OutputPath(input string, format Format) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + "." + string(format)
}

// Commands returns inkscape actions exporting input into output.
func Commands(input, output string, format Format) ([]string, error) {
	if _, err := ParseFormat(string(format)); err != nil {
		return nil, err
	}

	return []string{
		inkscape.FileOpen(input),
		inkscape.ExportFileName(output),
		fmt.Sprintf("export-type:%s", format),
		inkscape.ExportDo(),
	}, nil
}

// Exporter runs inkscape actions.
type Exporter struct {
	verbose bool
	// run is replaced in tests; nil means "use inkscape shell".
	run func(commands ...string) error
}

func NewExporter() *Exporter {
	return &Exporter{}
}

// Verbose makes inkscape proxy print its output.
func (e *Exporter) Verbose(v bool) *Exporter {
	e.verbose = v
	return e
}

func (e *Exporter) inkscape(commands ...string) error {
	proxy := inkscape.NewProxy(inkscape.Verbose(e.verbose))
	if err := proxy.Run(); err != nil {
		return fmt.Errorf("cannot run inkscape: %w", err)
	}

	defer proxy.Close()

	if _, err := proxy.RawCommands(commands...); err != nil {
		return fmt.Errorf("inkscape failed: %w", err)
	}

	return nil
}

// Export converts input (PNG) file into format. Returns path of the written file.
func (e *Exporter) Export(input string, format Format) (string, error) {
	output := OutputPath(input, format)
	commands, err := Commands(input, output, format)
	if err != nil {
		return "", err
	}

	run := e.run
	if run == nil {
		run = e.inkscape
	}

	// leftovers of previous runs must not be taken for a successful export
	if err := os.Remove(output); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("cannot remove old %s: %w", output, err)
	}

	glg.Infof("running inkscape export to %s", format)

	if err := run(commands...); err != nil {
		return "", err
	}

	if _, err := os.Stat(output); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrExportFailed, output, err)
	}

	if format == FormatSVG {
		if err := verifySVG(output); err != nil {
			return "", err
		}
	}

	glg.Infof("inkscape done, exported to %s", output)

	return output, nil
}

func verifySVG(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read exported file %s: %w", path, err)
	}

	if _, err := svg.ParseSvg(string(data), filepath.Base(path), 1); err != nil {
		return fmt.Errorf("exported file %s is not a valid SVG: %w", path, err)
	}

	return nil
}
