package audioengine

import "math"

// ApplyGain scales PCM samples in place, clipping to the int16 range.
func ApplyGain(samples []int16, factor float64) {
	for i := range samples {
		val := float64(samples[i]) * factor
		if val > 32767 {
			val = 32767
		} else if val < -32768 {
			val = -32768
		}
		samples[i] = int16(val)
	}
}

// PCM16ToInts widens samples for the WAV encoder.
func PCM16ToInts(pcm []int16) []int {
	out := make([]int, len(pcm))
	for i, v := range pcm {
		out[i] = int(v)
	}
	return out
}

// FloatToPCM16 maps [-1,1] samples to 16-bit integers, clipping outside.
func FloatToPCM16(xs []float64) []int {
	out := make([]int, len(xs))
	for i, x := range xs {
		x = math.Max(-1, math.Min(1, x))
		out[i] = int(math.Round(x * 32767))
	}
	return out
}
