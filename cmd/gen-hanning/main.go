/*
 * Copyright Yahoo, Licensed under the terms of the Apache-2.0 license.
 * See http://www.apache.org/licenses/LICENSE-2.0 for terms.
 */

package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"paranoid/internal/window"
	"paranoid/pkg/spec"
)

const (
	version_major = 1
	version_minor = 0
	app_name      = "Gen-Hanning"
	usage_text    = "Usage: gen-hanning [-n 1024] [-per-line 8] > hanning_window.inc"
)

func main() {
	n := flag.Int("n", spec.SamplesPerBlock, "full window length (table holds n/2 words)")
	perLine := flag.Int("per-line", 8, "words per output line")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s version %d.%d\n%s\n", app_name, version_major, version_minor, usage_text)
		flag.PrintDefaults()
	}
	flag.Parse()

	h, err := window.HalfHann(*n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(2)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()
	if err := window.WriteTable(w, window.Q31(h), *perLine); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
}
