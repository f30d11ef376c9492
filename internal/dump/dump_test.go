package dump

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadFFT(t *testing.T) {
	raw := []byte{
		0x01, 0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff, // 1, -1
		0x00, 0x00, 0x00, 0x80, 0xff, 0xff, 0xff, 0x7f, // min int32, max int32
	}
	bins, err := ReadFFT(bytes.NewReader(raw))
	if err != nil {
		t.Fatal(err)
	}
	want := []complex128{complex(1, -1), complex(-2147483648, 2147483647)}
	if len(bins) != len(want) {
		t.Fatalf("got %d bins", len(bins))
	}
	for i := range want {
		if bins[i] != want[i] {
			t.Errorf("bin %d = %v, want %v", i, bins[i], want[i])
		}
	}
}

func TestReadFFTTruncated(t *testing.T) {
	_, err := ReadFFT(bytes.NewReader(make([]byte, 12)))
	if !errors.Is(err, ErrTruncated) {
		t.Errorf("err = %v", err)
	}
}

func TestFFTRoundTrip(t *testing.T) {
	bins := []complex128{complex(0, 0), complex(12345, -678), complex(-1, 1)}
	var buf bytes.Buffer
	if err := WriteFFT(&buf, bins); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 24 {
		t.Fatalf("wrote %d bytes", buf.Len())
	}
	got, err := ReadFFT(&buf)
	if err != nil {
		t.Fatal(err)
	}
	for i := range bins {
		if got[i] != bins[i] {
			t.Errorf("bin %d = %v, want %v", i, got[i], bins[i])
		}
	}
}

func TestReadPCM16(t *testing.T) {
	got, err := ReadPCM16(bytes.NewReader([]byte{0x01, 0x00, 0x00, 0x80, 0xff, 0x7f}))
	if err != nil {
		t.Fatal(err)
	}
	want := []int16{1, -32768, 32767}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("sample %d = %d, want %d", i, got[i], want[i])
		}
	}
	if _, err := ReadPCM16(bytes.NewReader([]byte{1, 2, 3})); !errors.Is(err, ErrTruncated) {
		t.Errorf("odd length err = %v", err)
	}
}

func TestFloat32RoundTrip(t *testing.T) {
	xs := []float64{0, 1, -1, 0.5, -0.25}
	var buf bytes.Buffer
	if err := WriteFloat32(&buf, xs); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 4*len(xs) {
		t.Fatalf("wrote %d bytes", buf.Len())
	}
	got, err := ReadFloat32(&buf)
	if err != nil {
		t.Fatal(err)
	}
	for i := range xs {
		if got[i] != xs[i] {
			t.Errorf("sample %d = %v, want %v", i, got[i], xs[i])
		}
	}
}

func TestManifestVerify(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test_fft.raw")
	data := bytes.Repeat([]byte{0xaa, 0x55}, 100)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	h := NewDigest()
	h.Write(data)
	m := Manifest{Mode: "fft", Blocks: 1, BlockSize: len(data), Bytes: int64(len(data)), Digest: SumHex(h)}
	if err := WriteManifest(ManifestPath(path), m); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(ManifestPath(path), "test_fft.raw.json") {
		t.Errorf("manifest path %s", ManifestPath(path))
	}

	got, err := VerifyFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Mode != "fft" || got.Bytes != 200 {
		t.Errorf("manifest = %+v", got)
	}

	if err := Verify(bytes.NewReader(data[:10]), m); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("short data err = %v", err)
	}
	tampered := append([]byte(nil), data...)
	tampered[0] ^= 1
	if err := Verify(bytes.NewReader(tampered), m); !errors.Is(err, ErrDigestMismatch) {
		t.Errorf("tampered err = %v", err)
	}
}

func TestReadManifestErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := ReadManifest(filepath.Join(dir, "none.json")); err == nil {
		t.Error("missing manifest accepted")
	}
	bad := filepath.Join(dir, "bad.json")
	os.WriteFile(bad, []byte("{"), 0644)
	if _, err := ReadManifest(bad); err == nil {
		t.Error("bad json accepted")
	}
}
