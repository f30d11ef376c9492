/*
 * Copyright Yahoo, Licensed under the terms of the Apache-2.0 license.
 * See http://www.apache.org/licenses/LICENSE-2.0 for terms.
 */

package main

import (
	"flag"
	"fmt"
	"os"

	"paranoid/internal/fftmap"
)

const (
	version_major = 1
	version_minor = 0
	app_name      = "Gen-FFT-Mapping"
	usage_text    = "Usage: gen-fft-mapping [-format text|c] [-rate 16000] [-size 1024] [-top 7812.5] [-spacing 1.22] [-bands 21]"
)

func main() {
	def := fftmap.Default()
	format := flag.String("format", "text", "output: text report or c loops")
	rate := flag.Float64("rate", def.SampleRate, "sample rate in Hz")
	size := flag.Int("size", def.FFTSize, "FFT length")
	top := flag.Float64("top", def.TopFreq, "upper edge of the highest band in Hz")
	spacing := flag.Float64("spacing", def.Spacing, "ratio between band edges")
	bands := flag.Int("bands", def.NumBands, "number of bands")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s version %d.%d\n%s\n", app_name, version_major, version_minor, usage_text)
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := fftmap.Config{SampleRate: *rate, FFTSize: *size, TopFreq: *top, Spacing: *spacing, NumBands: *bands}
	list, err := cfg.Bands()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(2)
	}

	switch *format {
	case "text":
		err = fftmap.WriteText(os.Stdout, cfg, list)
	case "c":
		err = fftmap.WriteC(os.Stdout, list)
	default:
		err = fmt.Errorf("unknown format %q", *format)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
}
