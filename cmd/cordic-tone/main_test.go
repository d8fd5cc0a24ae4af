package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cordic "github.com/tphakala/go-cordic"
	"github.com/tphakala/go-cordic/internal/tone"
)

func TestGenerateTone(t *testing.T) {
	opts := &toneOptions{
		config:   tone.Config{Frequency: 440, SampleRate: 8000, Iterations: 24},
		duration: 0.5,
		bitDepth: 16,
	}
	samples, err := generateTone(cordic.Default(), opts)
	require.NoError(t, err)
	assert.Len(t, samples, 4000)
}

func TestGenerateTone_Invalid(t *testing.T) {
	tests := []struct {
		name string
		opts toneOptions
	}{
		{"zero duration", toneOptions{config: tone.Config{Frequency: 440, SampleRate: 8000, Iterations: 32}, bitDepth: 16}},
		{"zero iterations", toneOptions{config: tone.Config{Frequency: 440, SampleRate: 8000}, duration: 1, bitDepth: 16}},
		{"negative iterations", toneOptions{config: tone.Config{Frequency: 440, SampleRate: 8000, Iterations: -4}, duration: 1, bitDepth: 16}},
		{"bad bit depth", toneOptions{config: tone.Config{Frequency: 440, SampleRate: 8000, Iterations: 32}, duration: 1, bitDepth: 20}},
		{"above nyquist", toneOptions{config: tone.Config{Frequency: 5000, SampleRate: 8000, Iterations: 32}, duration: 1, bitDepth: 16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := generateTone(cordic.Default(), &tt.opts)
			require.ErrorIs(t, err, tone.ErrInvalidConfig)
		})
	}
}

func TestWriteToneFile_InvalidDirectory(t *testing.T) {
	err := writeToneFile("/nonexistent/dir/out.wav", []float64{0}, 8000, 16)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create output file")
}

func TestRun_WritesWAV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tone.wav")
	var stdout, stderr bytes.Buffer

	err := run([]string{"-freq", "1000", "-rate", "16000", "-duration", "0.6", "-bits", "24", "-analyze", path}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Wrote tone.wav")
	assert.Contains(t, stdout.String(), "9600 samples")
	assert.Contains(t, stdout.String(), "SFDR")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	dec := wav.NewDecoder(f)
	require.True(t, dec.IsValidFile())
	assert.Equal(t, uint32(16000), dec.SampleRate)
	assert.Equal(t, uint16(24), dec.BitDepth)
}

func TestRun_RejectsZeroIterations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "silent.wav")
	var stdout, stderr bytes.Buffer

	err := run([]string{"-iterations", "0", path}, &stdout, &stderr)
	require.ErrorIs(t, err, tone.ErrInvalidConfig)
	assert.NoFileExists(t, path)
}

func TestRun_MissingOutput(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(nil, &stdout, &stderr)
	require.ErrorIs(t, err, errUsage)
	assert.Contains(t, stderr.String(), "Usage:")
}
