package music

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/stat/distuv"
)

// Signal generates n baseband samples for a transmitter with the given SNR:
// constant amplitude 10^(snr/20) with an independent uniform phase in
// [0, 2π) per sample. There is no temporal correlation between samples.
func Signal(snrDB float64, n int, rng rand.Source) []complex128 {
	phase := distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: rng}
	amp := math.Pow(10, snrDB/20)

	out := make([]complex128, n)
	for i := range out {
		p := phase.Rand()
		out[i] = complex(amp*math.Cos(p), amp*math.Sin(p))
	}

	return out
}
