package music

import (
	"errors"
	"math"
)

// SpeedOfLight is the propagation speed for radio arrays, in m/s.
// Acoustic arrays should set ArrayConfig.WaveSpeed to the speed of sound
// in their medium instead (roughly 343 m/s in air).
const SpeedOfLight = 3e8

// Errors reported by configuration validation. All of them are detected
// before any computation begins; no stage substitutes default values.
var (
	ErrAntennaCount   = errors.New("music: antenna count must be at least 2")
	ErrSpacing        = errors.New("music: antenna spacing must be positive and finite")
	ErrFrequency      = errors.New("music: carrier frequency must be positive and finite")
	ErrWaveSpeed      = errors.New("music: propagation speed must be positive and finite")
	ErrSnapshotCount  = errors.New("music: snapshot count must be positive")
	ErrNoSources      = errors.New("music: at least one source is required")
	ErrTooManySources = errors.New("music: source count must be less than antenna count")
	ErrScanGrid       = errors.New("music: scan grid step must be positive and stop must not precede start")
	ErrSampleRate     = errors.New("music: sample rate must be positive")
	ErrSegmentLength  = errors.New("music: segment length must be positive and no longer than the series")
)

// ArrayConfig describes a uniform linear array: NumAntennas elements on a
// line, element k at position k·Spacing meters from the reference element.
type ArrayConfig struct {
	NumAntennas int
	Spacing     float64 // inter-element spacing in meters
	CarrierHz   float64 // narrowband carrier frequency in Hz
	WaveSpeed   float64 // propagation speed in m/s
}

// Wavelength returns the carrier wavelength in meters.
func (c ArrayConfig) Wavelength() float64 {
	return c.WaveSpeed / c.CarrierHz
}

// Validate checks the array parameters.
func (c ArrayConfig) Validate() error {
	if c.NumAntennas < 2 {
		return ErrAntennaCount
	}

	if !(c.Spacing > 0) || math.IsInf(c.Spacing, 1) {
		return ErrSpacing
	}

	if !(c.CarrierHz > 0) || math.IsInf(c.CarrierHz, 1) {
		return ErrFrequency
	}

	if !(c.WaveSpeed > 0) || math.IsInf(c.WaveSpeed, 1) {
		return ErrWaveSpeed
	}

	return nil
}

// Source is one simulated narrowband transmitter. AngleDeg is the arrival
// angle in degrees relative to broadside, conventionally within [-90, 90].
// SNRdB may be any real value, including negative (sub-unity amplitude).
type Source struct {
	AngleDeg float64
	SNRdB    float64
}

// Amplitude returns the linear signal amplitude 10^(SNR/20).
func (s Source) Amplitude() float64 {
	return math.Pow(10, s.SNRdB/20)
}
