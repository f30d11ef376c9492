package codec

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/mjibson/go-dsp/fft"
	"github.com/mjibson/go-dsp/window"
)

var ErrEmpty = errors.New("codec: not enough data for one frame")

// SpectrogramFFT renders device FFT blocks, one column per block of size bins.
// Only the lower half of each block is drawn.
func SpectrogramFFT(bins []complex128, size int) ([]byte, error) {
	if size < 2 || len(bins) < size {
		return nil, ErrEmpty
	}
	var frames [][]complex128
	for start := 0; start+size <= len(bins); start += size {
		frames = append(frames, bins[start:start+size])
	}
	return render(frames, size/2)
}

// SpectrogramPCM renders PCM audio using Hann windowed frames of size samples.
func SpectrogramPCM(pcm []int16, size int) ([]byte, error) {
	if size < 2 || len(pcm) < size {
		return nil, ErrEmpty
	}
	var frames [][]complex128
	for start := 0; start+size <= len(pcm); start += size {
		// Ambil potongan PCM dan konversi ke float64 untuk FFT
		buf := make([]float64, size)
		for i := range buf {
			buf[i] = float64(pcm[start+i])
		}
		window.Apply(buf, window.Hann)
		frames = append(frames, fft.FFTReal(buf))
	}
	return render(frames, size/2)
}

func render(frames [][]complex128, height int) ([]byte, error) {
	width := len(frames)
	levels := make([][]float64, width)
	var top float64
	for x, frame := range frames {
		col := make([]float64, height)
		for y := range col {
			col[y] = math.Log1p(cmplxAbs(frame[y]))
			top = math.Max(top, col[y])
		}
		levels[x] = col
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x, col := range levels {
		for i, v := range col {
			var intensity uint8
			if top > 0 {
				intensity = uint8(math.Round(v / top * 255))
			}
			// low frequencies at the bottom
			img.Set(x, height-1-i, color.RGBA{R: intensity / 2, G: intensity, B: intensity / 2, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func cmplxAbs(c complex128) float64 {
	return math.Hypot(real(c), imag(c))
}
