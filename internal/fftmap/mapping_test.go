package fftmap

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

// Bin ranges hard-coded in sound.c.
var firmwareBins = [][2]int{
	{7, 9}, {9, 11}, {11, 13}, {13, 17}, {17, 20}, {20, 25}, {25, 30},
	{30, 37}, {37, 45}, {45, 56}, {56, 68}, {68, 83}, {83, 101}, {101, 124},
	{124, 151}, {151, 184}, {184, 225}, {225, 275}, {275, 335}, {335, 409},
	{409, 500},
}

func TestBandsMatchFirmware(t *testing.T) {
	bands, err := Default().Bands()
	if err != nil {
		t.Fatal(err)
	}
	if len(bands) != len(firmwareBins) {
		t.Fatalf("got %d bands, want %d", len(bands), len(firmwareBins))
	}
	for i, b := range bands {
		if got := [2]int{b.BinStart, b.BinEnd}; got != firmwareBins[i] {
			t.Errorf("band %d bins = %v, want %v", i, got, firmwareBins[i])
		}
	}
	if last := bands[len(bands)-1]; last.FreqEnd != 7812.5 {
		t.Errorf("top edge = %v", last.FreqEnd)
	}
}

func TestBandsContiguous(t *testing.T) {
	bands, _ := Default().Bands()
	for i := 1; i < len(bands); i++ {
		if bands[i].FreqStart != bands[i-1].FreqEnd {
			t.Errorf("gap between band %d and %d", i-1, i)
		}
	}
}

func TestCustomBandCount(t *testing.T) {
	c := Default()
	c.NumBands = 3
	bands, err := c.Bands()
	if err != nil {
		t.Fatal(err)
	}
	want := [][2]int{{275, 335}, {335, 409}, {409, 500}}
	if len(bands) != len(want) {
		t.Fatalf("got %d bands, want 3", len(bands))
	}
	for i, b := range bands {
		if got := [2]int{b.BinStart, b.BinEnd}; got != want[i] {
			t.Errorf("band %d bins = %v, want %v", i, got, want[i])
		}
	}
}

func TestBinSpacing(t *testing.T) {
	if got := Default().BinSpacing(); got != 15.625 {
		t.Errorf("BinSpacing = %v, want 15.625", got)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Config)
	}{
		{"rate", func(c *Config) { c.SampleRate = 0 }},
		{"size", func(c *Config) { c.FFTSize = -1 }},
		{"top", func(c *Config) { c.TopFreq = 0 }},
		{"spacing", func(c *Config) { c.Spacing = 1 }},
		{"bands", func(c *Config) { c.NumBands = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mod(&c)
			if _, err := c.Bands(); !errors.Is(err, ErrBadConfig) {
				t.Errorf("err = %v", err)
			}
		})
	}
}

func TestWriters(t *testing.T) {
	c := Default()
	bands, _ := c.Bands()

	var buf bytes.Buffer
	if err := WriteText(&buf, c, bands); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != "15.625" || len(lines) != 1+2*len(bands) {
		t.Errorf("text report: first %q, %d lines", lines[0], len(lines))
	}
	if lines[2] != "bin 7 to 9" {
		t.Errorf("line 2 = %q", lines[2])
	}

	buf.Reset()
	if err := WriteC(&buf, bands); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "for (int i = 409; i < 500; i++) sum += mag_sq(sound_fft[i]);\n\tfft_data_log[20] = sum;") {
		t.Errorf("C output missing last band:\n%s", buf.String())
	}
}
