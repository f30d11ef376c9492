package colorconv

import "math"

const (
	encodedThreshold = 0.04045
	linearThreshold  = 0.0031308
)

// Scaling selects how EncodeToLinear rescales the fractional linear value.
//
// With both Scale255 and Scale1024 set the 1024 value is computed from the
// already rounded 255 value, which matches how the firmware tables were
// generated. Independent computes it from the fractional value instead.
type Scaling struct {
	Scale255    bool
	Scale1024   bool
	Independent bool
}

var (
	// Fractional leaves linear components in [0,1].
	Fractional = Scaling{}
	// Byte rounds linear components to [0,255].
	Byte = Scaling{Scale255: true}
	// PWM rounds linear components to [0,1024] for the eye LEDs.
	PWM = Scaling{Scale1024: true}
)

// ToLinear is the sRGB EOTF on one normalised component.
func ToLinear(s float64) float64 {
	if s <= encodedThreshold {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// ToEncoded is the sRGB OETF on one normalised component.
func ToEncoded(l float64) float64 {
	if l <= linearThreshold {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1/2.4) - 0.055
}

func round(v float64) float64 {
	return math.RoundToEven(v)
}

func (s Scaling) scale(linear float64) float64 {
	v := linear
	if s.Scale255 {
		v = round(linear * 255)
	}
	if s.Scale1024 {
		if s.Independent {
			v = round(linear * 1024)
		} else {
			v = round(v * 1024)
		}
	}
	return v
}

// EncodeToLinear converts an encoded colour with components nominally in
// [0,255] to linear light. Values outside the range are extrapolated.
func EncodeToLinear(c Color, s Scaling) Color {
	return c.apply(func(v float64) float64 {
		return s.scale(ToLinear(v / 255))
	})
}

// LinearToEncode converts a linear colour in [0,255] back to rounded encoded
// components. The result is not clamped.
func LinearToEncode(c Color) Color {
	return c.apply(func(v float64) float64 {
		return round(ToEncoded(v/255) * 255)
	})
}
