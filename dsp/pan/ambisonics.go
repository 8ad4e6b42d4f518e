package pan

import "math"

// MaxChannels is the number of ambisonic channels at third order.
const MaxChannels = 16

// Coeffs is one full set of ambisonic panning coefficients, ACN ordered.
type Coeffs [MaxChannels]float64

// Channel counts of complete ambisonic orders.
const (
	ZeroOrderChannels   = 1
	FirstOrderChannels  = 4
	SecondOrderChannels = 9
	ThirdOrderChannels  = 16
)

// Coefficients returns the third-order ambisonic coefficients encoding a
// point source in the given direction (+x left, +y up, +z front).
//
// The direction is expected to be unit length; callers constructing it
// from a lateral component x as (x, 0, sqrt(1-x*x)) satisfy that by
// construction. Coefficients is a pure function.
func Coefficients(x, y, z float64) Coeffs {
	// ACN/N3D uses X = front, Y = left, Z = up.
	fr, lf, up := z, x, y

	var c Coeffs

	c[0] = 1
	c[1] = math.Sqrt(3) * lf
	c[2] = math.Sqrt(3) * up
	c[3] = math.Sqrt(3) * fr

	c[4] = math.Sqrt(15) * fr * lf
	c[5] = math.Sqrt(15) * lf * up
	c[6] = math.Sqrt(5) / 2 * (3*up*up - 1)
	c[7] = math.Sqrt(15) * fr * up
	c[8] = math.Sqrt(15) / 2 * (fr*fr - lf*lf)

	c[9] = math.Sqrt(35.0/8.0) * lf * (3*fr*fr - lf*lf)
	c[10] = math.Sqrt(105) * up * fr * lf
	c[11] = math.Sqrt(21.0/8.0) * lf * (5*up*up - 1)
	c[12] = math.Sqrt(7) / 2 * up * (5*up*up - 3)
	c[13] = math.Sqrt(21.0/8.0) * fr * (5*up*up - 1)
	c[14] = math.Sqrt(105) / 2 * up * (fr*fr - lf*lf)
	c[15] = math.Sqrt(35.0/8.0) * fr * (fr*fr - 3*lf*lf)

	return c
}

// Target identifies the output bus a panned stream mixes into: an
// ambisonic bus consuming the first Channels coefficients.
type Target struct {
	Channels int
}

// Gains fills dst with the per-channel mixing gains that place a stream
// with the given coefficients on the target bus at the given send gain.
//
// dst entries beyond the target's channel count are zeroed so stale gains
// from a previous, wider target cannot leak through. len(dst) bounds the
// written range; a dst shorter than the channel count is filled entirely.
func Gains(target Target, coeffs Coeffs, gain float64, dst []float64) {
	n := target.Channels
	if n > MaxChannels {
		n = MaxChannels
	}
	if n > len(dst) {
		n = len(dst)
	}

	for c := 0; c < n; c++ {
		dst[c] = coeffs[c] * gain
	}
	for c := n; c < len(dst); c++ {
		dst[c] = 0
	}
}
