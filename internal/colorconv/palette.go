package colorconv

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"paranoid/pkg/spec"
)

// Anchor is a named palette colour.
type Anchor struct {
	Name string     `json:"name"`
	RGB  [3]float64 `json:"rgb"`
}

func (a Anchor) Color() Color {
	return Color{a.RGB[0], a.RGB[1], a.RGB[2]}
}

// Palette is a cyclic anchor list plus its step count.
type Palette struct {
	Anchors []Anchor `json:"anchors"`
	Steps   int      `json:"steps"`
}

// Colors returns the anchor colours in visiting order.
func (p Palette) Colors() []Color {
	out := make([]Color, len(p.Anchors))
	for i, a := range p.Anchors {
		out[i] = a.Color()
	}
	return out
}

// DefaultPalette is the rainbow used by the twinkle patterns.
func DefaultPalette() Palette {
	return Palette{
		Anchors: []Anchor{
			{"malibu", [3]float64{255, 0, 128}},
			{"turmeric_yellow", [3]float64{255, 167, 0}},
			{"mulah_green", [3]float64{26, 197, 103}},
			{"dory_blue", [3]float64{15, 105, 255}},
			// {"grape_jelly", [3]float64{91, 1, 210}},
			{"grape_jelly", [3]float64{117, 0, 210}},
		},
		Steps: spec.InterpSteps,
	}
}

// LoadPalette reads a JSON palette. A missing "steps" falls back to the default.
func LoadPalette(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, err
	}
	return ParsePalette(data)
}

func ParsePalette(data []byte) (Palette, error) {
	var p Palette
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return Palette{}, fmt.Errorf("colorconv: parse palette: %w", err)
	}
	if p.Steps == 0 {
		p.Steps = spec.InterpSteps
	}
	if len(p.Anchors) < 2 {
		return Palette{}, fmt.Errorf("%w: got %d", ErrTooFewAnchors, len(p.Anchors))
	}
	if p.Steps < 1 {
		return Palette{}, fmt.Errorf("%w: got %d", ErrBadSteps, p.Steps)
	}
	return p, nil
}
