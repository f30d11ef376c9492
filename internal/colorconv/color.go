// Package colorconv converts LED colours between gamma-encoded and linear light
// and builds perceptually smooth colour tables for the firmware.
package colorconv

import (
	"fmt"
	"math"
)

// Color is a triple of component values. Whether it is encoded or linear,
// and on which scale, is up to the caller.
type Color struct {
	R, G, B float64
}

// RGB builds a Color from 8-bit style components.
func RGB(r, g, b int) Color {
	return Color{float64(r), float64(g), float64(b)}
}

func (c Color) String() string {
	return fmt.Sprintf("(%s, %s, %s)", formatComponent(c.R), formatComponent(c.G), formatComponent(c.B))
}

func (c Color) valid() bool {
	for _, v := range [3]float64{c.R, c.G, c.B} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (c Color) apply(f func(float64) float64) Color {
	return Color{f(c.R), f(c.G), f(c.B)}
}
