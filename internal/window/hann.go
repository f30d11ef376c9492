// Package window builds the fixed-point Hann table used by sound.c.
package window

import (
	"errors"
	"fmt"
	"io"

	"github.com/mjibson/go-dsp/window"
)

// Q31One is 1.0 in the firmware's Q31 fixed point.
const Q31One = 0x80000000

var ErrBadLength = errors.New("window: length must be even and at least 2")

// HalfHann returns the first n/2 points of a symmetric n-point Hann window.
// The firmware mirrors the table for the second half.
func HalfHann(n int) ([]float64, error) {
	if n < 2 || n%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadLength, n)
	}
	return window.Hann(n)[:n/2], nil
}

// Q31 converts window coefficients to fixed point, truncating.
func Q31(h []float64) []uint32 {
	out := make([]uint32, len(h))
	for i, v := range h {
		out[i] = uint32(int64(v * Q31One))
	}
	return out
}

// WriteTable prints words as C hex literals, perLine to a row.
func WriteTable(w io.Writer, words []uint32, perLine int) error {
	if perLine < 1 {
		perLine = 8
	}
	for i, v := range words {
		if _, err := fmt.Fprintf(w, "0x%08x, ", v); err != nil {
			return err
		}
		if (i+1)%perLine == 0 || i == len(words)-1 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
	}
	return nil
}
