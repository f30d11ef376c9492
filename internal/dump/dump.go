// Package dump reads and writes the raw debug dumps streamed by the badge
// over USB, and the manifest written next to each capture.
package dump

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

var ErrTruncated = errors.New("dump: truncated sample")

// ReadFFT decodes little-endian int32 (re, im) pairs as written by
// fft_forward on the firmware side.
func ReadFFT(r io.Reader) ([]complex128, error) {
	br := bufio.NewReader(r)
	var out []complex128
	var pair [8]byte
	for {
		n, err := io.ReadFull(br, pair[:])
		if err == io.EOF {
			return out, nil
		}
		if err == io.ErrUnexpectedEOF {
			return out, fmt.Errorf("%w: %d trailing bytes after %d bins", ErrTruncated, n, len(out))
		}
		if err != nil {
			return out, err
		}
		re := int32(binary.LittleEndian.Uint32(pair[0:4]))
		im := int32(binary.LittleEndian.Uint32(pair[4:8]))
		out = append(out, complex(float64(re), float64(im)))
	}
}

// WriteFFT is the inverse of ReadFFT. Components are truncated to int32.
func WriteFFT(w io.Writer, bins []complex128) error {
	bw := bufio.NewWriter(w)
	var pair [8]byte
	for _, c := range bins {
		binary.LittleEndian.PutUint32(pair[0:4], uint32(int32(real(c))))
		binary.LittleEndian.PutUint32(pair[4:8], uint32(int32(imag(c))))
		if _, err := bw.Write(pair[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadPCM16 decodes little-endian int16 microphone samples.
func ReadPCM16(r io.Reader) ([]int16, error) {
	br := bufio.NewReader(r)
	var out []int16
	var s [2]byte
	for {
		n, err := io.ReadFull(br, s[:])
		if err == io.EOF {
			return out, nil
		}
		if err == io.ErrUnexpectedEOF {
			return out, fmt.Errorf("%w: %d trailing bytes after %d samples", ErrTruncated, n, len(out))
		}
		if err != nil {
			return out, err
		}
		out = append(out, int16(binary.LittleEndian.Uint16(s[:])))
	}
}

// WriteFloat32 writes samples as little-endian float32.
func WriteFloat32(w io.Writer, xs []float64) error {
	bw := bufio.NewWriter(w)
	var b [4]byte
	for _, x := range xs {
		binary.LittleEndian.PutUint32(b[:], math.Float32bits(float32(x)))
		if _, err := bw.Write(b[:]); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadFloat32 reads the files produced by WriteFloat32.
func ReadFloat32(r io.Reader) ([]float64, error) {
	br := bufio.NewReader(r)
	var out []float64
	var b [4]byte
	for {
		n, err := io.ReadFull(br, b[:])
		if err == io.EOF {
			return out, nil
		}
		if err == io.ErrUnexpectedEOF {
			return out, fmt.Errorf("%w: %d trailing bytes", ErrTruncated, n)
		}
		if err != nil {
			return out, err
		}
		out = append(out, float64(math.Float32frombits(binary.LittleEndian.Uint32(b[:]))))
	}
}
