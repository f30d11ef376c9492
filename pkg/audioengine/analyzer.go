package audioengine

// BlockPeaks returns the peak magnitude of every size-sample block. A short
// final block is measured as well.
func BlockPeaks(pcm []int16, size int) []int {
	if size <= 0 || len(pcm) == 0 {
		return nil
	}
	peaks := make([]int, 0, (len(pcm)+size-1)/size)
	for start := 0; start < len(pcm); start += size {
		end := min(start+size, len(pcm))
		var peak int
		for _, v := range pcm[start:end] {
			a := int(v)
			if a < 0 {
				a = -a
			}
			if a > peak {
				peak = a
			}
		}
		peaks = append(peaks, peak)
	}
	return peaks
}
