package resample

// cubicHermite evaluates the Catmull-Rom cubic through the four control
// values A,B,C,D at fractional position t in [0,1] between B and C.
// The result is not clamped; it can overshoot the control range and the
// caller clamps it back into the channel range.
func cubicHermite(A, B, C, D, t float64) float64 {
	a := -A/2.0 + (3.0*B)/2.0 - (3.0*C)/2.0 + D/2.0
	b := A - (5.0*B)/2.0 + 2.0*C - D/2.0
	c := -A/2.0 + C/2.0
	d := B

	return a*t*t*t + b*t*t + c*t + d
}
