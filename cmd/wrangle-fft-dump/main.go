/*
 * Copyright Yahoo, Licensed under the terms of the Apache-2.0 license.
 * See http://www.apache.org/licenses/LICENSE-2.0 for terms.
 */

package main

import (
	"flag"
	"fmt"
	"os"

	"paranoid/internal/codec"
	"paranoid/internal/dump"
	"paranoid/internal/logging"
	"paranoid/internal/reconstruct"
	"paranoid/pkg/audioengine"
	"paranoid/pkg/spec"
)

const (
	version_major = 1
	version_minor = 0
	app_name      = "Wrangle-FFT-Dump"
	usage_text    = "Usage: wrangle-fft-dump [-in test_fft.raw] [-out test_ifft.raw] [-wav out.wav] [-png spec.png] [-verify]"
)

type options struct {
	in, out  string
	wavPath  string
	pngPath  string
	verify   bool
	blockLen int
}

func main() {
	var o options
	flag.StringVar(&o.in, "in", "test_fft.raw", "FFT dump from serial-capture")
	flag.StringVar(&o.out, "out", "test_ifft.raw", "float32 output samples")
	flag.StringVar(&o.wavPath, "wav", "", "also write a 16-bit WAV")
	flag.StringVar(&o.pngPath, "png", "", "also write a spectrogram PNG")
	flag.BoolVar(&o.verify, "verify", false, "check the dump against its manifest first")
	flag.IntVar(&o.blockLen, "size", spec.SamplesPerBlock, "FFT bins per block")
	verbose := flag.Bool("v", false, "debug logging to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s version %d.%d\n%s\n", app_name, version_major, version_minor, usage_text)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		logging.Verbose(os.Stderr)
	}

	sum, err := run(o)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("[Stats] %s\n", sum)
	fmt.Printf("[Success] %s -> %s\n", o.in, o.out)
}

func run(o options) (reconstruct.Summary, error) {
	var sum reconstruct.Summary
	if o.verify {
		if _, err := dump.VerifyFile(o.in); err != nil {
			return sum, fmt.Errorf("verify %s: %w", o.in, err)
		}
		fmt.Printf("[Verify] %s matches manifest\n", o.in)
	}

	f, err := os.Open(o.in)
	if err != nil {
		return sum, err
	}
	bins, err := dump.ReadFFT(f)
	f.Close()
	if err != nil {
		return sum, fmt.Errorf("read %s: %w", o.in, err)
	}

	samples, err := reconstruct.Blocks(bins, o.blockLen)
	if err != nil {
		return sum, err
	}
	sum = reconstruct.Summarize(samples)
	reconstruct.Normalize(samples)

	if err := writeFloats(o.out, samples); err != nil {
		return sum, err
	}

	if o.wavPath != "" {
		w, err := os.Create(o.wavPath)
		if err != nil {
			return sum, err
		}
		err = audioengine.EncodeWAV(w, audioengine.FloatToPCM16(samples), spec.SampleRate, 16)
		if cerr := w.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return sum, fmt.Errorf("wav: %w", err)
		}
		fmt.Printf("[WAV] %s\n", o.wavPath)
	}

	if o.pngPath != "" {
		img, err := codec.SpectrogramFFT(bins, o.blockLen)
		if err != nil {
			return sum, fmt.Errorf("spectrogram: %w", err)
		}
		if err := os.WriteFile(o.pngPath, img, 0644); err != nil {
			return sum, err
		}
		fmt.Printf("[PNG] %s\n", o.pngPath)
	}
	return sum, nil
}

func writeFloats(path string, xs []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := dump.WriteFloat32(f, xs); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
