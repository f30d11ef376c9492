/*
 * Copyright Yahoo, Licensed under the terms of the Apache-2.0 license.
 * See http://www.apache.org/licenses/LICENSE-2.0 for terms.
 */

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"paranoid/internal/capture"
	"paranoid/internal/dump"
	"paranoid/internal/logging"
	"paranoid/pkg/spec"

	"go.bug.st/serial"
)

const (
	version_major = 1
	version_minor = 0
	app_name      = "Serial-Capture"
	usage_text    = "Usage: serial-capture -mode fft|sound [-port /dev/cu.usbmodemXXXX] [-blocks 160] [-out test_fft.raw]"
)

func main() {
	modeName := flag.String("mode", "fft", "dump stream: fft or sound")
	portName := flag.String("port", "", "serial device (default $"+spec.SerialPortEnv+" or "+spec.DefaultSerialPort+")")
	blocks := flag.Int("blocks", spec.CaptureBlocks, "blocks to capture (160 is about 10s)")
	outPath := flag.String("out", "", "output file (default test_fft.raw / test.raw)")
	list := flag.Bool("list", false, "list serial ports and exit")
	verbose := flag.Bool("v", false, "debug logging to stderr")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s version %d.%d\n%s\n", app_name, version_major, version_minor, usage_text)
		flag.PrintDefaults()
	}
	flag.Parse()

	if *verbose {
		logging.Verbose(os.Stderr)
	}

	if *list {
		ports, err := serial.GetPortsList()
		if err != nil {
			fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
			os.Exit(1)
		}
		for _, p := range ports {
			fmt.Println(p)
		}
		return
	}

	mode, err := capture.ParseMode(*modeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(2)
	}
	if *outPath == "" {
		*outPath = defaultOut(mode)
	}

	dev := resolvePort(*portName)
	port, err := serial.Open(dev, &serial.Mode{BaudRate: 115200})
	if err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] open %s: %v\n", dev, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// Read pada port serial tidak bisa dibatalkan, tutup port supaya Read kembali
	go func() {
		<-ctx.Done()
		port.Close()
	}()

	f, err := os.Create(*outPath)
	if err != nil {
		port.Close()
		fmt.Fprintf(os.Stderr, "[ERROR] %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("[Capture] %s -> %s (%d blocks of %d bytes)\n", dev, *outPath, *blocks, mode.BlockSize)
	s := &capture.Session{
		Port:     port,
		PortName: dev,
		Mode:     mode,
		Blocks:   *blocks,
		Progress: func(done, total int) {
			fmt.Printf("\r [CAPTURE] %d/%d blocks", done, total)
			if done == total {
				fmt.Println()
			}
		},
	}
	m, runErr := s.Run(ctx, f)
	port.Close()
	if err := f.Close(); err != nil && runErr == nil {
		runErr = err
	}

	if err := dump.WriteManifest(dump.ManifestPath(*outPath), m); err != nil {
		fmt.Fprintf(os.Stderr, "[ERROR] manifest: %v\n", err)
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "\n[ERROR] %v (%d blocks kept)\n", runErr, m.Blocks)
		os.Exit(1)
	}
	fmt.Printf("[Success] %d bytes, blake2b %s\n", m.Bytes, m.Digest)
}

func resolvePort(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(spec.SerialPortEnv); env != "" {
		return env
	}
	return spec.DefaultSerialPort
}

func defaultOut(m capture.Mode) string {
	if m.Name == capture.ModeFFT.Name {
		return "test_fft.raw"
	}
	return "test.raw"
}
