package music

import (
	"math"
	"math/cmplx"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Synthesizer builds the matrix of array observations for a set of
// narrowband sources. Each source's signal is superposed additively across
// antennas after applying that antenna's steering rotator; no mutual
// coupling is modeled.
type Synthesizer struct {
	Array     ArrayConfig
	Sources   []Source
	Snapshots int

	// NoisePower is the total circular complex Gaussian noise power per
	// antenna per snapshot (per-component standard deviation is
	// √(NoisePower/2)). Zero disables the noise term entirely.
	NoisePower float64
}

// Matrix returns the Snapshots×NumAntennas snapshot matrix. The result is
// deterministic given a seeded source: noise is drawn first, antenna-major,
// then one signal sequence per source in order.
func (s Synthesizer) Matrix(rng rand.Source) (*mat.CDense, error) {
	if err := s.Array.Validate(); err != nil {
		return nil, err
	}

	if s.Snapshots <= 0 {
		return nil, ErrSnapshotCount
	}

	if len(s.Sources) >= s.Array.NumAntennas {
		return nil, ErrTooManySources
	}

	m := s.Array.NumAntennas
	x := mat.NewCDense(s.Snapshots, m, nil)

	if s.NoisePower > 0 {
		noise := distuv.Normal{Mu: 0, Sigma: math.Sqrt(s.NoisePower / 2), Src: rng}
		for t := 0; t < s.Snapshots; t++ {
			for k := 0; k < m; k++ {
				x.Set(t, k, complex(noise.Rand(), noise.Rand()))
			}
		}
	}

	for _, src := range s.Sources {
		sig := Signal(src.SNRdB, s.Snapshots, rng)
		a := SteeringVector(s.Array, src.AngleDeg)
		for t := 0; t < s.Snapshots; t++ {
			for k := 0; k < m; k++ {
				// The arriving wavefront carries the conjugate of the
				// receive steering entry, exp(+i·2π·phase); see
				// SteeringVector for why the signs must be opposite.
				x.Set(t, k, x.At(t, k)+sig[t]*cmplx.Conj(a[k]))
			}
		}
	}

	return x, nil
}
