// Package playback plays WAV files on the default audio device through the
// beep speaker, which links the cgo audio backend.
package playback

import (
	"context"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	beepwav "github.com/faiface/beep/wav"
)

// Rate is the rate the speaker is opened at; dumps are resampled to it.
const Rate = beep.SampleRate(48000)

// Play blocks until the WAV file at path has played or ctx is done.
func Play(ctx context.Context, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	streamer, format, err := beepwav.Decode(f)
	if err != nil {
		f.Close()
		return err
	}
	defer streamer.Close()

	if err := speaker.Init(Rate, Rate.N(100*time.Millisecond)); err != nil {
		return err
	}
	var s beep.Streamer = streamer
	if format.SampleRate != Rate {
		s = beep.Resample(4, format.SampleRate, Rate, streamer)
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(s, beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	}
}
