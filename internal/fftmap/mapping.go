// Package fftmap maps FFT bins onto logarithmically spaced LED bands.
package fftmap

import (
	"errors"
	"fmt"
	"io"
	"math"

	"paranoid/pkg/spec"
)

var ErrBadConfig = errors.New("fftmap: invalid config")

type Config struct {
	SampleRate float64
	FFTSize    int
	TopFreq    float64
	Spacing    float64 // ratio between neighbouring band edges
	NumBands   int
}

// Default matches the microphone front end in sound.c.
func Default() Config {
	return Config{
		SampleRate: spec.SampleRate,
		FFTSize:    spec.SamplesPerBlock,
		TopFreq:    spec.TopFreq,
		Spacing:    spec.LogSpacing,
		NumBands:   spec.LogBands,
	}
}

func (c Config) Validate() error {
	switch {
	case c.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %v", ErrBadConfig, c.SampleRate)
	case c.FFTSize <= 0:
		return fmt.Errorf("%w: fft size %d", ErrBadConfig, c.FFTSize)
	case c.TopFreq <= 0:
		return fmt.Errorf("%w: top frequency %v", ErrBadConfig, c.TopFreq)
	case c.Spacing <= 1:
		return fmt.Errorf("%w: spacing %v must exceed 1", ErrBadConfig, c.Spacing)
	case c.NumBands <= 0:
		return fmt.Errorf("%w: bands %d", ErrBadConfig, c.NumBands)
	}
	return nil
}

// BinSpacing is the width of one FFT bin in Hz.
func (c Config) BinSpacing() float64 {
	return c.SampleRate / float64(c.FFTSize)
}

// Band is a frequency range and the half-open bin range [BinStart, BinEnd)
// summed for it.
type Band struct {
	FreqStart, FreqEnd float64
	BinStart, BinEnd   int
}

// Bands returns the bands from lowest to highest frequency.
func (c Config) Bands() ([]Band, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	spacing := c.BinSpacing()
	out := make([]Band, 0, c.NumBands)
	for i := c.NumBands; i > 0; i-- {
		start := c.TopFreq / math.Pow(c.Spacing, float64(i))
		end := c.TopFreq / math.Pow(c.Spacing, float64(i-1))
		out = append(out, Band{
			FreqStart: start,
			FreqEnd:   end,
			BinStart:  int(start / spacing),
			BinEnd:    int(end / spacing),
		})
	}
	return out, nil
}

// WriteText prints the human readable report.
func WriteText(w io.Writer, c Config, bands []Band) error {
	if _, err := fmt.Fprintln(w, c.BinSpacing()); err != nil {
		return err
	}
	for _, b := range bands {
		if _, err := fmt.Fprintf(w, "frequencies %v Hz - %v Hz\nbin %d to %d\n", b.FreqStart, b.FreqEnd, b.BinStart, b.BinEnd); err != nil {
			return err
		}
	}
	return nil
}

// WriteC prints the band summing loops as they appear in sound.c.
func WriteC(w io.Writer, bands []Band) error {
	for k, b := range bands {
		_, err := fmt.Fprintf(w, "\tsum = 0;\n\tfor (int i = %d; i < %d; i++) sum += mag_sq(sound_fft[i]);\n\tfft_data_log[%d] = sum;\n\n",
			b.BinStart, b.BinEnd, k)
		if err != nil {
			return err
		}
	}
	return nil
}
