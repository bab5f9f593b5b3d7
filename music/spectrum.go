package music

import (
	"fmt"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// denomFloor guards the 1/x degeneracy of the MUSIC cost function. At a true
// source angle the steering vector is (numerically) orthogonal to the noise
// subspace and the denominator approaches zero; such points are clamped to
// the floor and flagged rather than propagating an infinite value.
const denomFloor = 1e-12

// SpectrumPoint is one evaluated angle of the pseudo-spectrum.
type SpectrumPoint struct {
	AngleDeg float64
	Power    float64

	// Clamped marks angles where the projection denominator hit denomFloor.
	Clamped bool
}

// Spectrum is the MUSIC pseudo-spectrum over a scan grid, ordered by angle.
// Local maxima indicate estimated source directions.
type Spectrum []SpectrumPoint

// Scan evaluates the MUSIC cost function over the grid. noiseBasis holds the
// noise-subspace eigenvectors as columns (M rows). For each grid angle θ:
//
//	P(θ) = 1 / (a(θ)ᴴ · Vn·Vnᴴ · a(θ))
//
// The denominator is a squared projection norm and therefore real and
// non-negative up to rounding; its tiny imaginary residue is discarded.
func Scan(cfg ArrayConfig, noiseBasis *mat.CDense, grid ScanGrid) (Spectrum, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := grid.Validate(); err != nil {
		return nil, err
	}

	rows, cols := noiseBasis.Dims()
	if rows != cfg.NumAntennas {
		return nil, fmt.Errorf("music: noise basis has %d rows, want %d", rows, cfg.NumAntennas)
	}

	if cols >= cfg.NumAntennas {
		// A full-rank noise basis means no source was split off.
		return nil, ErrNoSources
	}

	if cols < 1 {
		return nil, ErrTooManySources
	}

	// The projector Vn·Vnᴴ does not depend on the angle; build it once.
	proj := mat.NewCDense(rows, rows, nil)
	for i := 0; i < rows; i++ {
		for j := 0; j < rows; j++ {
			var sum complex128
			for l := 0; l < cols; l++ {
				sum += noiseBasis.At(i, l) * cmplx.Conj(noiseBasis.At(j, l))
			}
			proj.Set(i, j, sum)
		}
	}

	angles := grid.Angles()
	sp := make(Spectrum, len(angles))
	for i, angleDeg := range angles {
		a := SteeringVector(cfg, angleDeg)
		den := real(quadForm(a, proj))

		clamped := den < denomFloor
		if clamped {
			den = denomFloor
		}

		sp[i] = SpectrumPoint{AngleDeg: angleDeg, Power: 1 / den, Clamped: clamped}
	}

	return sp, nil
}

// quadForm returns aᴴ·P·a for a square matrix P of order len(a).
func quadForm(a []complex128, p *mat.CDense) complex128 {
	var sum complex128
	for i := range a {
		var row complex128
		for j := range a {
			row += p.At(i, j) * a[j]
		}
		sum += cmplx.Conj(a[i]) * row
	}

	return sum
}

// Peaks returns the local maxima of the spectrum ordered by descending
// power, at most max of them (all maxima if max < 0). An endpoint counts as
// a peak when it exceeds its single neighbor; on a flat plateau only the
// first point qualifies. Peak picking is a consumer-side convenience: the
// scan itself guarantees only grid density, not peak identification.
func (sp Spectrum) Peaks(max int) []SpectrumPoint {
	var peaks []SpectrumPoint
	for i, p := range sp {
		rising := i == 0 || p.Power > sp[i-1].Power
		falling := i == len(sp)-1 || p.Power >= sp[i+1].Power
		if len(sp) > 1 && rising && falling {
			peaks = append(peaks, p)
		}
	}

	sort.SliceStable(peaks, func(i, j int) bool { return peaks[i].Power > peaks[j].Power })

	if max >= 0 && len(peaks) > max {
		peaks = peaks[:max]
	}

	return peaks
}
