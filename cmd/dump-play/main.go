/*
 * Copyright Yahoo, Licensed under the terms of the Apache-2.0 license.
 * See http://www.apache.org/licenses/LICENSE-2.0 for terms.
 */

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"paranoid/internal/dump"
	"paranoid/pkg/audioengine"
	"paranoid/pkg/audioengine/playback"
	"paranoid/pkg/spec"
)

const (
	version_major = 1
	version_minor = 0
	app_name      = "Dump-Play"
	general_usage = "Usage: ./dump-play <file.wav|test.raw> [more files...]"
)

func main() {
	fmt.Println("========================================")
	fmt.Printf("%s version %d.%d\n", app_name, version_major, version_minor)
	fmt.Println("CTRL + C stop and exit")

	if len(os.Args) < 2 {
		fmt.Printf("\n%s\n", general_usage)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tracks := os.Args[1:]
	for i, path := range tracks {
		fmt.Printf("▶ [%d/%d] %s\n", i+1, len(tracks), filepath.Base(path))
		err := playOne(ctx, path)
		if errors.Is(err, context.Canceled) {
			fmt.Println("\n[Stop]")
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "[ERROR] %s: %v\n", path, err)
			os.Exit(1)
		}
		time.Sleep(200 * time.Millisecond)
	}
}

// playOne plays a WAV directly; raw sound dumps are wrapped into a temporary WAV first.
func playOne(ctx context.Context, path string) error {
	if !strings.EqualFold(filepath.Ext(path), ".raw") {
		return playback.Play(ctx, path)
	}
	tmp, err := rawToTempWAV(path)
	if err != nil {
		return err
	}
	defer os.Remove(tmp)
	return playback.Play(ctx, tmp)
}

func rawToTempWAV(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	pcm, err := dump.ReadPCM16(f)
	f.Close()
	if err != nil {
		return "", err
	}
	out, err := os.CreateTemp("", "dump-play-*.wav")
	if err != nil {
		return "", err
	}
	err = audioengine.EncodeWAV(out, audioengine.PCM16ToInts(pcm), spec.SampleRate, 16)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(out.Name())
		return "", err
	}
	return out.Name(), nil
}
