package mathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tphakala/go-cordic/internal/testutil"
)

// TestBesselI0 tests BesselI0 against known values.
func TestBesselI0(t *testing.T) {
	tests := []struct {
		name      string
		x         float64
		expected  float64
		tolerance float64
	}{
		{"Zero", 0.0, 1.0, 1e-15},
		{"Small positive", 0.5, 1.063483344, 1e-7},
		{"One", 1.0, 1.266065848, 1e-7},
		{"Two", 2.0, 2.279585307, 1e-7},
		{"Three", 3.0, 4.880792565, 1e-7},
		{"Boundary 3.75", 3.75, 9.118945994, 1e-7},
		{"Four", 4.0, 11.30192217, 1e-7},
		{"Five", 5.0, 27.23987183, 1e-7},
		{"Ten", 10.0, 2815.716628, 1e-6},
		{"Twenty", 20.0, 4.355826e7, 1e-1},
		{"Small negative", -0.5, 1.063483344, 1e-7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertRelativeError(t, tt.expected, BesselI0(tt.x), tt.tolerance)
		})
	}
}

// TestBesselI0_Monotonic tests I₀(x) is monotonically increasing for x > 0.
func TestBesselI0_Monotonic(t *testing.T) {
	prev := BesselI0(0)
	for x := 0.1; x < 10.0; x += 0.1 {
		curr := BesselI0(x)
		assert.Greater(t, curr, prev, "BesselI0 not increasing at x=%v", x)
		prev = curr
	}
}

// TestKaiserBeta tests Kaiser beta calculation.
func TestKaiserBeta(t *testing.T) {
	tests := []struct {
		name        string
		attenuation float64
		expectedMin float64
		expectedMax float64
	}{
		{"20dB", 20.0, 0.0, 0.1},
		{"50dB", 50.0, 4.5, 4.6},
		{"80dB", 80.0, 7.8, 7.9},
		{"120dB", 120.0, 12.2, 12.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertInRange(t, KaiserBeta(tt.attenuation), tt.expectedMin, tt.expectedMax)
		})
	}
}

// BenchmarkBesselI0_Large benchmarks BesselI0 on the asymptotic branch.
func BenchmarkBesselI0_Large(b *testing.B) {
	x := 10.0
	for b.Loop() {
		_ = BesselI0(x)
	}
}
