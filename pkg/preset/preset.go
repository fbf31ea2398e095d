// Package preset describes saved generator settings.
package preset

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

//go:embed presets.json
var builtin []byte

// Preset represents a set of generator settings.
// Zero values mean "keep default".
type Preset struct {
	Name        string `json:",omitempty"`
	Description string `json:",omitempty"`

	// Radius and Thick are in pixels
	Radius, Thick int
	// Rotation of the R anchor in degrees (counterclockwise)
	Rotation float64 `json:",omitempty"`
	Output   string  `json:",omitempty"`
}

func decodePresets() ([]Preset, error) {
	var result []Preset
	if err := json.Unmarshal(builtin, &result); err != nil {
		return nil, fmt.Errorf("cant decode built-in presets: %w", err)
	}

	return result, nil
}

// Get returns a built-in preset.
func Get(name string) (*Preset, error) {
	presets, err := decodePresets()
	if err != nil {
		return nil, err
	}

	for _, p := range presets {
		if p.Name == name {
			return &p, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Builtin returns all built-in presets sorted by name.
func Builtin() ([]Preset, error) {
	presets, err := decodePresets()
	if err != nil {
		return nil, err
	}

	sort.Slice(presets, func(i, j int) bool {
		return presets[i].Name < presets[j].Name
	})

	return presets, nil
}

// Load reads preset from a JSON file.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cant read preset from %s: %w", path, err)
	}

	var result Preset
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("cant parse preset from %s: %w", path, err)
	}

	return &result, nil
}

// JSON returns indented JSON representation of p.
func (p *Preset) JSON() ([]byte, error) {
	return json.MarshalIndent(p, "", "\t")
}

// Save writes p into a JSON file.
func (p *Preset) Save(path string) error {
	data, err := p.JSON()
	if err != nil {
		return fmt.Errorf("cant encode preset: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cant write preset to %s: %w", path, err)
	}

	return nil
}
