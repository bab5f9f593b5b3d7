package music

import (
	"math"
	"math/cmplx"
	"math/rand/v2"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ToneSource describes a sinusoidal emitter for the wideband synthesis
// path: a real tone at FreqHz arriving from AngleDeg with the given SNR
// relative to the unit per-sample noise floor.
type ToneSource struct {
	FreqHz   float64
	AngleDeg float64
	SNRdB    float64
}

// SynthesizeTones renders per-antenna time series (numSamples×NumAntennas)
// for a set of tone emitters. Each tone is generated once at the reference
// antenna with a random start phase, then shifted per antenna in the
// frequency domain: every DFT bin is rotated by exp(+i·2π·f·τk) with
// τk = k·spacing·sin(θ)/waveSpeed, realizing the fractional-sample shift
// exactly and with the wavefront sign convention of Synthesizer (the
// conjugate of the receive steering rotator; see SteeringVector). Circular
// complex Gaussian noise of unit power is added per antenna. The result
// feeds BinSnapshots to obtain narrowband snapshots.
func SynthesizeTones(cfg ArrayConfig, tones []ToneSource, numSamples int, sampleRate float64, rng rand.Source) (*mat.CDense, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if numSamples <= 0 {
		return nil, ErrSnapshotCount
	}

	if !(sampleRate > 0) {
		return nil, ErrSampleRate
	}

	m := cfg.NumAntennas
	freqs := binFrequencies(numSamples, sampleRate)
	out := mat.NewCDense(numSamples, m, nil)

	phase := distuv.Uniform{Min: 0, Max: 2 * math.Pi, Src: rng}
	for _, tone := range tones {
		amp := math.Pow(10, tone.SNRdB/20)
		p0 := phase.Rand()

		base := make([]complex128, numSamples)
		for t := range base {
			base[t] = complex(amp*math.Sin(2*math.Pi*tone.FreqHz*float64(t)/sampleRate+p0), 0)
		}
		spec := fft.FFT(base)

		sin := math.Sin(tone.AngleDeg * math.Pi / 180)
		for k := 0; k < m; k++ {
			tau := float64(k) * cfg.Spacing * sin / cfg.WaveSpeed
			shifted := make([]complex128, numSamples)
			for i := range spec {
				shifted[i] = spec[i] * cmplx.Exp(complex(0, 2*math.Pi*freqs[i]*tau))
			}
			td := fft.IFFT(shifted)
			for t := range td {
				out.Set(t, k, out.At(t, k)+td[t])
			}
		}
	}

	noise := distuv.Normal{Mu: 0, Sigma: math.Sqrt(0.5), Src: rng}
	for t := 0; t < numSamples; t++ {
		for k := 0; k < m; k++ {
			out.Set(t, k, out.At(t, k)+complex(noise.Rand(), noise.Rand()))
		}
	}

	return out, nil
}

// BinSnapshots forms a narrowband snapshot matrix from wideband time
// series: each antenna's series is split into ⌊n/segLen⌋ segments, each
// segment is DFT'd, and the bin nearest binHz is sampled. Row s of the
// result is the array observation for segment s, directly consumable by
// Covariance and Scan with ArrayConfig.CarrierHz set to the bin frequency.
func BinSnapshots(series *mat.CDense, segLen int, binHz, sampleRate float64) (*mat.CDense, error) {
	n, m := series.Dims()
	if segLen <= 0 || segLen > n {
		return nil, ErrSegmentLength
	}

	if !(sampleRate > 0) {
		return nil, ErrSampleRate
	}

	bin := int(math.Round(binHz * float64(segLen) / sampleRate))
	if bin < 0 {
		bin = 0
	} else if bin >= segLen {
		bin = segLen - 1
	}

	segs := n / segLen
	out := mat.NewCDense(segs, m, nil)
	buf := make([]complex128, segLen)
	for k := 0; k < m; k++ {
		for s := 0; s < segs; s++ {
			for t := 0; t < segLen; t++ {
				buf[t] = series.At(s*segLen+t, k)
			}
			spec := fft.FFT(buf)
			out.Set(s, k, spec[bin])
		}
	}

	return out, nil
}

// binFrequencies returns the DFT bin center frequencies in Hz, with the
// upper half of the spectrum mapped to negative frequencies.
func binFrequencies(n int, sampleRate float64) []float64 {
	f := make([]float64, n)
	for i := range f {
		if i <= n/2 {
			f[i] = float64(i) * sampleRate / float64(n)
		} else {
			f[i] = float64(i-n) * sampleRate / float64(n)
		}
	}

	return f
}
