/*
 * Copyright Yahoo, Licensed under the terms of the Apache-2.0 license.
 * See http://www.apache.org/licenses/LICENSE-2.0 for terms.
 */

package main

import (
	"flag"
	"fmt"
	"os"

	"paranoid/internal/colorconv"
	"paranoid/internal/logging"
)

const (
	version_major = 1
	version_minor = 0
	app_name      = "Color-Convert"
	usage_text    = "Usage: color-convert [-palette palette.json] [-steps 4] [-scale 255] [-format tuple|c] [-i]"
)

func main() {
	palettePath := flag.String("palette", "", "JSON palette (default: built-in rainbow)")
	steps := flag.Int("steps", 0, "interpolation steps per anchor pair (default from palette)")
	scaleName := flag.String("scale", "255", "linear output scale: none, 255, 1024, 255+1024, 1024-independent")
	formatName := flag.String("format", "tuple", "line format: tuple or c")
	interactive := flag.Bool("i", false, "interactive converter prompt")
	verbose := flag.Bool("v", false, "debug logging to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s version %d.%d\n%s\n", app_name, version_major, version_minor, usage_text)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		logging.Verbose(os.Stderr)
	}

	scaling, err := parseScaling(*scaleName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(2)
	}

	if *interactive {
		if err := runPrompt(scaling); err != nil {
			fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
			os.Exit(1)
		}
		return
	}

	format, err := colorconv.ParseFormat(*formatName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(2)
	}

	palette := colorconv.DefaultPalette()
	if *palettePath != "" {
		if palette, err = colorconv.LoadPalette(*palettePath); err != nil {
			fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
			os.Exit(1)
		}
	}
	if *steps != 0 {
		palette.Steps = *steps
	}

	interp := &colorconv.Interpolator{
		Space:   colorconv.LabSpace{},
		Steps:   palette.Steps,
		Scaling: scaling,
	}
	rep := &colorconv.Reporter{W: os.Stdout, Format: format}
	if _, err := rep.Report(interp.Cycle(palette.Colors())); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
}

// scaleNames are the -scale values, also offered by the prompt completer.
var scaleNames = []string{"none", "255", "1024", "255+1024", "1024-independent"}

func parseScaling(name string) (colorconv.Scaling, error) {
	switch name {
	case "none", "fraction":
		return colorconv.Fractional, nil
	case "255":
		return colorconv.Byte, nil
	case "1024":
		return colorconv.PWM, nil
	case "255+1024":
		return colorconv.Scaling{Scale255: true, Scale1024: true}, nil
	case "1024-independent":
		return colorconv.Scaling{Scale255: true, Scale1024: true, Independent: true}, nil
	}
	return colorconv.Scaling{}, fmt.Errorf("unknown scale %q", name)
}
