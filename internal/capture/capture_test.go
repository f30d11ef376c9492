package capture

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"paranoid/internal/dump"
)

type fakePort struct {
	io.Reader
	sent bytes.Buffer
}

func (p *fakePort) Write(b []byte) (int, error) { return p.sent.Write(b) }

func newPort(parts ...[]byte) *fakePort {
	return &fakePort{Reader: bytes.NewReader(bytes.Join(parts, nil))}
}

func TestHandshakeBytes(t *testing.T) {
	// Lengths the capture scripts have always read.
	if n := len(ModeFFT.Handshake()); n != 64 {
		t.Errorf("fft handshake is %d bytes, want 64", n)
	}
	if n := len(ModeSound.Handshake()); n != 66 {
		t.Errorf("sound handshake is %d bytes, want 66", n)
	}
	if got := ModeFFT.Command(true); got != "debug fft on\n" {
		t.Errorf("command %q", got)
	}
	if got := ModeSound.Command(false); got != "debug sound off\n" {
		t.Errorf("command %q", got)
	}
}

func TestRun(t *testing.T) {
	mode := Mode{Name: "sound", BlockSize: 4}
	blocks := []byte("aaaabbbbcccc")
	port := newPort(mode.Handshake(), blocks, []byte("extra"))

	var out bytes.Buffer
	var progress []int
	s := &Session{Port: port, PortName: "/dev/null", Mode: mode, Blocks: 3,
		Progress: func(done, total int) { progress = append(progress, done) }}
	m, err := s.Run(context.Background(), &out)
	if err != nil {
		t.Fatal(err)
	}
	if out.String() != string(blocks) {
		t.Errorf("captured %q", out.String())
	}
	if got := port.sent.String(); got != "debug sound on\ndebug sound off\n" {
		t.Errorf("sent %q", got)
	}
	if m.Blocks != 3 || m.Bytes != 12 || m.BlockSize != 4 || m.Mode != "sound" || m.Port != "/dev/null" {
		t.Errorf("manifest = %+v", m)
	}
	if len(progress) != 3 || progress[2] != 3 {
		t.Errorf("progress = %v", progress)
	}
	if err := dump.Verify(bytes.NewReader(blocks), m); err != nil {
		t.Errorf("digest does not verify: %v", err)
	}
}

func TestRunBadHandshake(t *testing.T) {
	port := newPort([]byte("Unrecognized command!\r\n"), bytes.Repeat([]byte{'x'}, 100))
	s := &Session{Port: port, Mode: ModeFFT, Blocks: 1}
	_, err := s.Run(context.Background(), io.Discard)
	if !errors.Is(err, ErrHandshake) {
		t.Fatalf("err = %v", err)
	}
	// The stream is switched off even when the handshake fails.
	if got := port.sent.String(); got != "debug fft on\ndebug fft off\n" {
		t.Errorf("sent %q", got)
	}
}

func TestRunShortBlock(t *testing.T) {
	mode := Mode{Name: "fft", BlockSize: 8}
	port := newPort(mode.Handshake(), []byte("12345678abc"))
	var out bytes.Buffer
	m, err := (&Session{Port: port, Mode: mode, Blocks: 2}).Run(context.Background(), &out)
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("err = %v", err)
	}
	if m.Blocks != 1 || m.Bytes != 8 || out.String() != "12345678" {
		t.Errorf("manifest = %+v, out %q", m, out.String())
	}
	if err := dump.Verify(&out, m); err != nil {
		t.Errorf("partial digest: %v", err)
	}
}

func TestRunCancelled(t *testing.T) {
	mode := Mode{Name: "fft", BlockSize: 2}
	port := newPort(mode.Handshake(), []byte("aabbcc"))
	ctx, cancel := context.WithCancel(context.Background())
	s := &Session{Port: port, Mode: mode, Blocks: 3,
		Progress: func(done, total int) {
			if done == 1 {
				cancel()
			}
		}}
	m, err := s.Run(ctx, io.Discard)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
	if m.Blocks != 1 {
		t.Errorf("blocks = %d", m.Blocks)
	}
}

func TestParseMode(t *testing.T) {
	if m, err := ParseMode("fft"); err != nil || m != ModeFFT {
		t.Errorf("fft = %+v, %v", m, err)
	}
	if m, err := ParseMode("sound"); err != nil || m != ModeSound {
		t.Errorf("sound = %+v, %v", m, err)
	}
	if _, err := ParseMode("nfc"); !errors.Is(err, ErrUnknownMode) {
		t.Errorf("nfc err = %v", err)
	}
}
