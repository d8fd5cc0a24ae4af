package main

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cordic "github.com/tphakala/go-cordic"
	"github.com/tphakala/go-cordic/internal/analysis"
)

func TestParseAngle(t *testing.T) {
	tests := []struct {
		text    string
		want    float64
		wantErr bool
	}{
		{"30", 30, false},
		{" -45.5 \n", -45.5, false},
		{"1e3", 1000, false},
		{"", 0, true},
		{"abc", 0, true},
		{"NaN", 0, true},
		{"+Inf", 0, true},
		{"12,5", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := parseAngle(tt.text)
			if tt.wantErr {
				require.ErrorIs(t, err, errInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIterations(t *testing.T) {
	tests := []struct {
		text    string
		want    int
		wantErr bool
	}{
		{"", cordic.DefaultIterations, false},
		{"  ", cordic.DefaultIterations, false},
		{"0", 0, false},
		{"16", 16, false},
		{"100", 100, false},
		{"-1", 0, true},
		{"3.5", 0, true},
		{"ten", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := parseIterations(tt.text)
			if tt.wantErr {
				require.ErrorIs(t, err, errInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrompt(t *testing.T) {
	var out bytes.Buffer
	scanner := bufio.NewScanner(strings.NewReader("42\n"))

	text, err := prompt(scanner, &out, "Angle: ")
	require.NoError(t, err)
	assert.Equal(t, "42", text)
	assert.Equal(t, "Angle: ", out.String())

	text, err = prompt(scanner, &out, "Again: ")
	require.NoError(t, err)
	assert.Empty(t, text, "EOF reads as an empty line")
}

func TestPrintResult(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, printResult(&out, 30, 0.5, 0.8660254037844386))
	assert.Equal(t, "Sin(30.000000) = 0.500000000000\nCos(30.000000) = 0.866025403784\n", out.String())
}

func TestPrintSweep(t *testing.T) {
	var out bytes.Buffer
	reports := analysis.Convergence(cordic.Default(), analysis.AngleGrid(-90, 90, 10))
	require.NoError(t, printSweep(&out, reports))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, cordic.MaxIterations+1)
	assert.Contains(t, lines[0], "max error")
}
