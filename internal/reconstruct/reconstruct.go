// Package reconstruct turns captured FFT dumps back into audio.
package reconstruct

import (
	"errors"
	"fmt"
	"math"

	"paranoid/internal/logging"

	"github.com/aclements/go-moremath/stats"
	"github.com/mjibson/go-dsp/fft"
)

var ErrBlockSize = errors.New("reconstruct: block size must be positive")

// Blocks inverse-transforms every full block of size bins and concatenates
// the real parts. A trailing partial block is dropped.
func Blocks(bins []complex128, size int) ([]float64, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBlockSize, size)
	}
	n := len(bins) / size
	if rest := len(bins) % size; rest != 0 {
		logging.Logger().Warn("dropping partial block", "bins", rest)
	}
	out := make([]float64, 0, n*size)
	for b := 0; b < n; b++ {
		blk := fft.IFFT(bins[b*size : (b+1)*size])
		for _, c := range blk {
			out = append(out, real(c))
		}
	}
	return out, nil
}

// Peak returns the largest absolute sample.
func Peak(xs []float64) float64 {
	var peak float64
	for _, x := range xs {
		if a := math.Abs(x); a > peak {
			peak = a
		}
	}
	return peak
}

// Normalize scales xs in place so the peak magnitude is 1. Silence is left alone.
func Normalize(xs []float64) []float64 {
	peak := Peak(xs)
	if peak == 0 {
		return xs
	}
	for i := range xs {
		xs[i] /= peak
	}
	return xs
}

// Summary is a quick numeric look at a signal.
type Summary struct {
	Samples  int
	Min, Max float64
	Mean     float64
	StdDev   float64
	RMS      float64
	Peak     float64
}

func Summarize(xs []float64) Summary {
	s := Summary{Samples: len(xs)}
	if len(xs) == 0 {
		return s
	}
	s.Min, s.Max = stats.Bounds(xs)
	s.Mean = stats.Mean(xs)
	if len(xs) > 1 {
		s.StdDev = stats.StdDev(xs)
	}
	var sq float64
	for _, x := range xs {
		sq += x * x
	}
	s.RMS = math.Sqrt(sq / float64(len(xs)))
	s.Peak = Peak(xs)
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("samples=%d min=%.6g max=%.6g mean=%.6g stddev=%.6g rms=%.6g peak=%.6g",
		s.Samples, s.Min, s.Max, s.Mean, s.StdDev, s.RMS, s.Peak)
}
