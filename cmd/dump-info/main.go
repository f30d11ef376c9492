/*
 * Copyright Yahoo, Licensed under the terms of the Apache-2.0 license.
 * See http://www.apache.org/licenses/LICENSE-2.0 for terms.
 */

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"paranoid/internal/capture"
	"paranoid/internal/dump"
	"paranoid/internal/reconstruct"
	"paranoid/pkg/audioengine"
	"paranoid/pkg/spec"
)

const (
	version_major = 1
	version_minor = 0
	app_name      = "Dump-Info"
	general_usage = "Usage: ./dump-info -dump <test_fft.raw|test.raw> [-mode fft|sound] [-jsondump]"
)

func main() {
	pathFlag := flag.String("dump", "", "dump file from serial-capture")
	modeFlag := flag.String("mode", "", "dump mode when no manifest exists")
	jsonDump := flag.Bool("jsondump", false, "print the raw manifest JSON")
	flag.Parse()

	if *pathFlag == "" {
		fmt.Printf("\n%s %d.%d\n", app_name, version_major, version_minor)
		fmt.Printf("%s\n", general_usage)
		os.Exit(2)
	}
	if err := report(os.Stdout, *pathFlag, *modeFlag, *jsonDump); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
}

func report(w io.Writer, path, modeName string, jsonDump bool) error {
	m, merr := dump.ReadManifest(dump.ManifestPath(path))
	haveManifest := merr == nil
	if merr != nil && !errors.Is(merr, fs.ErrNotExist) {
		return merr
	}
	if modeName == "" {
		modeName = m.Mode
	}
	mode, err := capture.ParseMode(modeName)
	if err != nil {
		return err
	}

	st, err := os.Stat(path)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintf(w, " DUMP          : %s\n", path)
	fmt.Fprintf(w, " MODE          : %s (%d bytes/block)\n", mode.Name, mode.BlockSize)
	fmt.Fprintf(w, " SIZE          : %s\n", formatSize(st.Size()))
	if haveManifest {
		fmt.Fprintf(w, " PORT          : %s\n", m.Port)
		fmt.Fprintf(w, " STARTED       : %s\n", m.Started.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(w, " BLOCKS        : %d\n", m.Blocks)
		fmt.Fprintf(w, " BLAKE2B-256   : %s\n", m.Digest)
		status := "OK"
		if _, err := dump.VerifyFile(path); err != nil {
			status = err.Error()
		}
		fmt.Fprintf(w, " VERIFY        : %s\n", status)
	} else {
		fmt.Fprintf(w, " MANIFEST      : none\n")
	}
	fmt.Fprintln(w, strings.Repeat("-", 60))

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch mode.Name {
	case capture.ModeSound.Name:
		pcm, err := dump.ReadPCM16(f)
		if err != nil {
			return err
		}
		xs := make([]float64, len(pcm))
		for i, v := range pcm {
			xs[i] = float64(v) / 32768
		}
		sum := reconstruct.Summarize(xs)
		fmt.Fprintf(w, " DURATION      : %.2f s\n", float64(len(pcm))/spec.SampleRate)
		fmt.Fprintf(w, " STATS         : %s\n", sum)
		peaks := audioengine.BlockPeaks(pcm, spec.SamplesPerBlock)
		loudest, at := 0, 0
		for i, p := range peaks {
			if p > loudest {
				loudest, at = p, i
			}
		}
		fmt.Fprintf(w, " LOUDEST BLOCK : #%d (peak %d)\n", at, loudest)
	default:
		bins, err := dump.ReadFFT(f)
		if err != nil {
			return err
		}
		samples, err := reconstruct.Blocks(bins, spec.SamplesPerBlock)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, " FFT BLOCKS    : %d\n", len(bins)/spec.SamplesPerBlock)
		fmt.Fprintf(w, " IFFT STATS    : %s\n", reconstruct.Summarize(samples))
	}
	fmt.Fprintln(w, strings.Repeat("=", 60))

	if jsonDump && haveManifest {
		raw, err := os.ReadFile(dump.ManifestPath(path))
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(raw))
		fmt.Fprintln(w, "=== [END DUMP] ===")
	}
	return nil
}

// Helper untuk format size yang human friendly
func formatSize(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit && exp < len(sizeUnits)-1; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %s", float64(b)/float64(div), sizeUnits[exp])
}

var sizeUnits = []string{"Kb", "Mb", "Gb", "Tb"}
