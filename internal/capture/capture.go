// Package capture drives the badge USB console to stream debug dumps.
package capture

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"paranoid/internal/dump"
	"paranoid/internal/logging"
	"paranoid/pkg/spec"
)

var (
	ErrHandshake   = errors.New("capture: unexpected console response")
	ErrUnknownMode = errors.New("capture: unknown mode")
)

// Mode is one of the console's debug dump streams.
type Mode struct {
	Name      string
	BlockSize int
}

var (
	ModeFFT   = Mode{Name: "fft", BlockSize: spec.FFTBlockBytes}
	ModeSound = Mode{Name: "sound", BlockSize: spec.SoundBlockBytes}
)

func ParseMode(name string) (Mode, error) {
	switch name {
	case ModeFFT.Name:
		return ModeFFT, nil
	case ModeSound.Name:
		return ModeSound, nil
	}
	return Mode{}, fmt.Errorf("%w: %q", ErrUnknownMode, name)
}

// Command is the console line switching the stream on or off.
func (m Mode) Command(on bool) string {
	state := "off"
	if on {
		state = "on"
	}
	return fmt.Sprintf("debug %s %s\n", m.Name, state)
}

// Handshake is what the console sends back for the "on" command: the
// echoed line followed by a fresh prompt.
func (m Mode) Handshake() []byte {
	return []byte(fmt.Sprintf("debug %s on\r\n%s", m.Name, spec.ConsolePrompt))
}

// Session is a single capture over an open console.
type Session struct {
	Port     io.ReadWriter
	PortName string
	Mode     Mode
	Blocks   int

	// Progress, if set, is called after every block.
	Progress func(done, total int)
}

// Run performs the handshake, copies Blocks full blocks to out and turns the
// stream off again. The manifest describes whatever was written, also when
// an error cuts the capture short.
func (s *Session) Run(ctx context.Context, out io.Writer) (dump.Manifest, error) {
	log := logging.Logger()
	m := dump.Manifest{
		Mode:      s.Mode.Name,
		Port:      s.PortName,
		Started:   time.Now().UTC(),
		BlockSize: s.Mode.BlockSize,
	}
	if s.Mode.BlockSize <= 0 {
		return m, fmt.Errorf("%w: %+v", ErrUnknownMode, s.Mode)
	}

	if _, err := io.WriteString(s.Port, s.Mode.Command(true)); err != nil {
		return m, fmt.Errorf("capture: enable %s: %w", s.Mode.Name, err)
	}
	defer func() {
		if _, err := io.WriteString(s.Port, s.Mode.Command(false)); err != nil {
			log.Warn("disable stream", "mode", s.Mode.Name, "err", err)
		}
	}()

	want := s.Mode.Handshake()
	got := make([]byte, len(want))
	if _, err := io.ReadFull(s.Port, got); err != nil {
		return m, fmt.Errorf("capture: read handshake: %w", err)
	}
	log.Debug("handshake", "resp", fmt.Sprintf("%q", got))
	if !bytes.Equal(got, want) {
		return m, fmt.Errorf("%w: %q", ErrHandshake, got)
	}

	h := dump.NewDigest()
	w := io.MultiWriter(out, h)
	buf := make([]byte, s.Mode.BlockSize)
	fail := func(err error) (dump.Manifest, error) {
		m.Digest = dump.SumHex(h)
		return m, err
	}

	for i := 0; i < s.Blocks; i++ {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}
		if _, err := io.ReadFull(s.Port, buf); err != nil {
			return fail(fmt.Errorf("capture: block %d: %w", i, err))
		}
		if _, err := w.Write(buf); err != nil {
			return fail(fmt.Errorf("capture: write block %d: %w", i, err))
		}
		m.Blocks++
		m.Bytes += int64(len(buf))
		log.Debug("block", "index", i, "bytes", len(buf))
		if s.Progress != nil {
			s.Progress(i+1, s.Blocks)
		}
	}
	m.Digest = dump.SumHex(h)
	return m, nil
}
