package tone

import (
	"fmt"
	"io"
	"math"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WAV format constants
const (
	wavFormatPCM = 1
	monoChannels = 1

	bitsPerSample16 = 16
	bitsPerSample24 = 24
	bitsPerSample32 = 32

	maxInt16 = 32767.0
	maxInt24 = 8388607.0
	maxInt32 = 2147483647.0
)

// FullScale returns the largest sample value for a PCM bit depth, or 0 if the
// depth is unsupported.
func FullScale(bitDepth int) float64 {
	switch bitDepth {
	case bitsPerSample16:
		return maxInt16
	case bitsPerSample24:
		return maxInt24
	case bitsPerSample32:
		return maxInt32
	default:
		return 0
	}
}

// WriteWAV encodes mono samples in [-1, 1] as a PCM WAV stream.
// Out-of-range samples are clipped.
func WriteWAV(w io.WriteSeeker, samples []float64, sampleRate, bitDepth int) error {
	maxVal := FullScale(bitDepth)
	if maxVal == 0 {
		return fmt.Errorf("%w: unsupported bit depth %d", ErrInvalidConfig, bitDepth)
	}
	if sampleRate <= 0 {
		return fmt.Errorf("%w: sample rate must be positive", ErrInvalidConfig)
	}

	data := make([]int, len(samples))
	for i, s := range samples {
		s = math.Max(-1, math.Min(1, s))
		data[i] = int(math.Round(s * maxVal))
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: monoChannels,
			SampleRate:  sampleRate,
		},
		Data:           data,
		SourceBitDepth: bitDepth,
	}

	enc := wav.NewEncoder(w, sampleRate, bitDepth, monoChannels, wavFormatPCM)
	if err := enc.Write(buf); err != nil {
		_ = enc.Close()
		return fmt.Errorf("failed to write samples: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to finalize WAV: %w", err)
	}
	return nil
}
