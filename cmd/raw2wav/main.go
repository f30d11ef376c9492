/*
 * Copyright Yahoo, Licensed under the terms of the Apache-2.0 license.
 * See http://www.apache.org/licenses/LICENSE-2.0 for terms.
 */

package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"paranoid/internal/dump"
	"paranoid/internal/logging"
	"paranoid/pkg/audioengine"
	"paranoid/pkg/spec"
)

const (
	version_major = 1
	version_minor = 0
	usage_text    = "Usage: raw2wav -sourcepath (RAW[s] Path) -destpath (WAV[s] Path) [-gain 1.0] [-workers 2]"
	app_name      = "Raw2wav"
)

func main() {
	sourcePath := flag.String("sourcepath", "", "sound dump file or directory of .raw dumps")
	destPath := flag.String("destpath", "", "output directory for .wav files")
	gain := flag.Float64("gain", 1, "gain applied before encoding (clipped)")
	workers := flag.Int("workers", 2, "simultaneous conversions")
	verbose := flag.Bool("v", false, "debug logging to stderr")
	flag.Parse()

	if *sourcePath == "" || *destPath == "" {
		fmt.Printf("%s version %d.%d\n", app_name, version_major, version_minor)
		fmt.Printf("%s\n", usage_text)
		os.Exit(2)
	}
	if *verbose {
		logging.Verbose(os.Stderr)
	}

	// 1. Buat direktori tujuan jika belum ada
	if err := os.MkdirAll(*destPath, os.ModePerm); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}

	// 2. Kumpulkan semua file RAW
	files, err := collect(*sourcePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("[Batch] %d dump(s), %d workers\n", len(files), *workers)

	failed := convertAll(files, *destPath, *gain, *workers)
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "[ERROR] %d of %d conversions failed\n", failed, len(files))
		os.Exit(1)
	}
	fmt.Println("[Success] all conversions done")
}

func collect(root string) ([]string, error) {
	st, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !st.IsDir() {
		return []string{root}, nil
	}
	var files []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.ToLower(filepath.Ext(path)) == ".raw" {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// convertAll runs the worker pool and returns how many files failed.
func convertAll(files []string, destDir string, gain float64, workers int) int {
	if workers < 1 {
		workers = 1
	}
	// 3. Setup Worker Pool
	jobs := make(chan string, len(files))
	var wg sync.WaitGroup
	var failed atomic.Int32

	for w := 1; w <= workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				if err := convert(path, destDir, gain); err != nil {
					fmt.Fprintf(os.Stderr, "[Error] %s: %v\n", filepath.Base(path), err)
					failed.Add(1)
				}
			}
		}()
	}

	// 4. Kirim tugas ke channel
	for _, path := range files {
		jobs <- path
	}
	close(jobs)

	wg.Wait()
	return int(failed.Load())
}

func convert(srcFile, destDir string, gain float64) error {
	fileName := filepath.Base(srcFile)
	destFile := filepath.Join(destDir, strings.TrimSuffix(fileName, filepath.Ext(fileName))+".wav")
	fmt.Printf("[Process] %s -> %s\n", fileName, filepath.Base(destFile))

	f, err := os.Open(srcFile)
	if err != nil {
		return err
	}
	pcm, err := dump.ReadPCM16(f)
	f.Close()
	if err != nil {
		return err
	}
	if gain != 1 {
		audioengine.ApplyGain(pcm, gain)
	}
	logging.Logger().Debug("converted dump", "file", fileName, "samples", len(pcm))

	out, err := os.Create(destFile)
	if err != nil {
		return err
	}
	err = audioengine.EncodeWAV(out, audioengine.PCM16ToInts(pcm), spec.SampleRate, 16)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	return err
}
