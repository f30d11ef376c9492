package colorconv

import (
	"errors"
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrMalformedColor is returned for colours with NaN or infinite components.
var ErrMalformedColor = errors.New("colorconv: malformed color")

// Uniform is a point in a perceptually uniform colour space.
type Uniform [3]float64

// Lerp moves from u towards v by j/steps of the distance.
func (u Uniform) Lerp(v Uniform, j, steps int) Uniform {
	var out Uniform
	for k := range u {
		out[k] = (v[k]-u[k])*float64(j)/float64(steps) + u[k]
	}
	return out
}

// UniformSpace converts encoded colours in the [0,255] domain to and from a
// perceptually uniform space.
type UniformSpace interface {
	ToUniform(c Color) (Uniform, error)
	FromUniform(u Uniform) (Color, error)
}

// LabSpace is CIE L*a*b* under D65. The return trip is clipped to [0,255].
type LabSpace struct{}

func (LabSpace) ToUniform(c Color) (Uniform, error) {
	if !c.valid() {
		return Uniform{}, fmt.Errorf("%w: %v", ErrMalformedColor, c)
	}
	l, a, b := colorful.Color{R: c.R / 255, G: c.G / 255, B: c.B / 255}.Lab()
	return Uniform{l, a, b}, nil
}

func (LabSpace) FromUniform(u Uniform) (Color, error) {
	if !(Color{u[0], u[1], u[2]}).valid() {
		return Color{}, fmt.Errorf("%w: lab %v", ErrMalformedColor, u)
	}
	c := colorful.Lab(u[0], u[1], u[2]).Clamped()
	return Color{c.R * 255, c.G * 255, c.B * 255}, nil
}
