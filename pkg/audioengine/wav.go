package audioengine

import (
	"errors"
	"io"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

var ErrNotWAV = errors.New("audioengine: not a valid wav file")

// Format describes a decoded WAV stream.
type Format struct {
	SampleRate int
	BitDepth   int
	Channels   int
}

// EncodeWAV writes mono PCM samples as a WAV file.
func EncodeWAV(w io.WriteSeeker, samples []int, rate, bitDepth int) error {
	enc := wav.NewEncoder(w, rate, bitDepth, 1, 1)
	buf := &audio.IntBuffer{
		Data:           samples,
		Format:         &audio.Format{NumChannels: 1, SampleRate: rate},
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return err
	}
	return enc.Close()
}

// DecodeWAV reads a whole WAV file.
func DecodeWAV(r io.ReadSeeker) ([]int, Format, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, Format{}, ErrNotWAV
	}
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, Format{}, err
	}
	return buf.Data, Format{
		SampleRate: int(dec.SampleRate),
		BitDepth:   int(dec.BitDepth),
		Channels:   int(dec.NumChans),
	}, nil
}
