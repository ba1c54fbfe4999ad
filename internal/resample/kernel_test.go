package resample

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCubicHermiteConstantRun(t *testing.T) {
	// A flat set of control points interpolates to itself everywhere.
	for _, a := range []float64{0, 1, 127.5, 255} {
		for _, tt := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.9, 1} {
			assert.InDelta(t, a, cubicHermite(a, a, a, a, tt), 1e-12,
				"A=%g t=%g", a, tt)
		}
	}
}

func TestCubicHermiteEndpoints(t *testing.T) {
	// The interpolant passes through its bracketing control points.
	cases := [][4]float64{
		{0, 50, 200, 255},
		{255, 0, 255, 0},
		{10, 10, 20, 20},
		{200, 100, 50, 25},
	}
	for _, c := range cases {
		assert.InDelta(t, c[1], cubicHermite(c[0], c[1], c[2], c[3], 0), 1e-12, "t=0 %v", c)
		assert.InDelta(t, c[2], cubicHermite(c[0], c[1], c[2], c[3], 1), 1e-9, "t=1 %v", c)
	}
}

func TestCubicHermiteUnclamped(t *testing.T) {
	// A hard edge can leave the control range; the sampler, not the
	// kernel, is responsible for clamping.
	assert.Less(t, cubicHermite(255, 0, 0, 255, 0.5), 0.0)
	assert.Greater(t, cubicHermite(0, 255, 255, 0, 0.5), 255.0)
}
