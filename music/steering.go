package music

import (
	"math"
	"math/cmplx"
)

// steeringPhase returns the phase delay, in cycles, seen by antenna k for a
// plane wave arriving from angleDeg:
//
//	phase(k, θ) = sin(θ) · k · spacing / wavelength
//
// Antenna 0 is the reference element and always has zero delay.
func steeringPhase(cfg ArrayConfig, k int, angleDeg float64) float64 {
	return math.Sin(angleDeg*math.Pi/180) * float64(k) * cfg.Spacing / cfg.Wavelength()
}

// SteeringVector returns the receive steering vector for arrival angle
// angleDeg: one unit-modulus entry exp(-i·2π·phase(k, θ)) per antenna.
//
// The snapshot synthesizer applies the opposite sign, exp(+i·2π·phase),
// when modeling the arriving wavefront. With the covariance Xᴴ·X the signal
// subspace spans the conjugate of the wavefront rotator, which is exactly
// this receive vector, so the MUSIC denominator aᴴ·VnVnᴴ·a nulls at the
// true angle. Sharing one sign between the two stages would silently mirror
// every recovered angle about broadside without any runtime error;
// TestScanPeaksAtSourceAngle pins the convention.
func SteeringVector(cfg ArrayConfig, angleDeg float64) []complex128 {
	a := make([]complex128, cfg.NumAntennas)
	for k := range a {
		a[k] = cmplx.Exp(complex(0, -2*math.Pi*steeringPhase(cfg, k, angleDeg)))
	}

	return a
}
