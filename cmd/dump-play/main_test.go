package main

import (
	"os"
	"path/filepath"
	"testing"

	"paranoid/pkg/audioengine"
)

func TestRawToTempWAV(t *testing.T) {
	raw := filepath.Join(t.TempDir(), "test.raw")
	os.WriteFile(raw, []byte{0x10, 0x00, 0xf0, 0xff}, 0644)

	wavPath, err := rawToTempWAV(raw)
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(wavPath)

	f, err := os.Open(wavPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	samples, format, err := audioengine.DecodeWAV(f)
	if err != nil {
		t.Fatal(err)
	}
	if format.SampleRate != 16000 || len(samples) != 2 || samples[0] != 16 || samples[1] != -16 {
		t.Errorf("format %+v samples %v", format, samples)
	}
}

func TestRawToTempWAVTruncated(t *testing.T) {
	raw := filepath.Join(t.TempDir(), "test.raw")
	os.WriteFile(raw, []byte{1, 2, 3}, 0644)
	if _, err := rawToTempWAV(raw); err == nil {
		t.Error("odd-length dump accepted")
	}
}
