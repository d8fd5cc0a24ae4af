package tone

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cordic "github.com/tphakala/go-cordic"
)

func TestFullScale(t *testing.T) {
	assert.Equal(t, 32767.0, FullScale(16))
	assert.Equal(t, 8388607.0, FullScale(24))
	assert.Equal(t, 2147483647.0, FullScale(32))
	assert.Zero(t, FullScale(8))
}

func TestWriteWAV_RoundTrip(t *testing.T) {
	for _, bitDepth := range []int{16, 24, 32} {
		t.Run(fmt.Sprintf("%dbit", bitDepth), func(t *testing.T) {
			g, err := NewGenerator(cordic.Default(), &Config{Frequency: 440, SampleRate: 8000, Amplitude: 0.9})
			require.NoError(t, err)
			samples := g.Generate(800)

			path := filepath.Join(t.TempDir(), "tone.wav")
			f, err := os.Create(path)
			require.NoError(t, err)
			require.NoError(t, WriteWAV(f, samples, 8000, bitDepth))
			require.NoError(t, f.Close())

			in, err := os.Open(path)
			require.NoError(t, err)
			defer func() { _ = in.Close() }()

			dec := wav.NewDecoder(in)
			require.True(t, dec.IsValidFile())
			buf, err := dec.FullPCMBuffer()
			require.NoError(t, err)

			assert.Equal(t, uint32(8000), dec.SampleRate)
			assert.Equal(t, uint16(bitDepth), dec.BitDepth)
			assert.Equal(t, uint16(1), dec.NumChans)
			require.Len(t, buf.Data, len(samples))

			scale := FullScale(bitDepth)
			for i, s := range samples {
				assert.InDelta(t, s, float64(buf.Data[i])/scale, 1.0/scale, "sample %d", i)
			}
		})
	}
}

func TestWriteWAV_Clips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clip.wav")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, WriteWAV(f, []float64{2, -2, 0}, 8000, 16))
	require.NoError(t, f.Close())

	in, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = in.Close() }()

	buf, err := wav.NewDecoder(in).FullPCMBuffer()
	require.NoError(t, err)
	assert.Equal(t, []int{32767, -32767, 0}, buf.Data)
}

func TestWriteWAV_InvalidParams(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "bad.wav"))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	require.ErrorIs(t, WriteWAV(f, []float64{0}, 8000, 12), ErrInvalidConfig)
	require.ErrorIs(t, WriteWAV(f, []float64{0}, 0, 16), ErrInvalidConfig)
}
