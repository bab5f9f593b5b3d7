package music

import (
	"math"
	"testing"

	"github.com/makhpatten/music-df-simulation/internal/testutil"
)

func validArray() ArrayConfig {
	return ArrayConfig{NumAntennas: 8, Spacing: 0.5, CarrierHz: 300e6, WaveSpeed: SpeedOfLight}
}

func TestArrayConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ArrayConfig)
		wantErr error
	}{
		{"valid", func(*ArrayConfig) {}, nil},
		{"one antenna", func(c *ArrayConfig) { c.NumAntennas = 1 }, ErrAntennaCount},
		{"zero spacing", func(c *ArrayConfig) { c.Spacing = 0 }, ErrSpacing},
		{"negative spacing", func(c *ArrayConfig) { c.Spacing = -0.5 }, ErrSpacing},
		{"nan spacing", func(c *ArrayConfig) { c.Spacing = math.NaN() }, ErrSpacing},
		{"inf spacing", func(c *ArrayConfig) { c.Spacing = math.Inf(1) }, ErrSpacing},
		{"zero frequency", func(c *ArrayConfig) { c.CarrierHz = 0 }, ErrFrequency},
		{"negative speed", func(c *ArrayConfig) { c.WaveSpeed = -1 }, ErrWaveSpeed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validArray()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestScenarioValidate(t *testing.T) {
	valid := Scenario{
		Array:     validArray(),
		Sources:   []Source{{AngleDeg: 10, SNRdB: 10}},
		Snapshots: 100,
	}

	tests := []struct {
		name    string
		mutate  func(*Scenario)
		wantErr error
	}{
		{"valid", func(*Scenario) {}, nil},
		{"bad array", func(s *Scenario) { s.Array.NumAntennas = 0 }, ErrAntennaCount},
		{"zero snapshots", func(s *Scenario) { s.Snapshots = 0 }, ErrSnapshotCount},
		{"no sources", func(s *Scenario) { s.Sources = nil }, ErrNoSources},
		{"sources equal antennas", func(s *Scenario) {
			s.Sources = make([]Source, s.Array.NumAntennas)
		}, ErrTooManySources},
		{"sources exceed antennas", func(s *Scenario) {
			s.Sources = make([]Source, s.Array.NumAntennas+3)
		}, ErrTooManySources},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc := valid
			tt.mutate(&sc)
			if err := sc.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestWavelength(t *testing.T) {
	cfg := ArrayConfig{NumAntennas: 2, Spacing: 0.5, CarrierHz: 300e6, WaveSpeed: 3e8}
	testutil.RequireNear(t, cfg.Wavelength(), 1.0, 1e-12)
}

func TestSourceAmplitude(t *testing.T) {
	testutil.RequireNear(t, Source{SNRdB: 0}.Amplitude(), 1, 1e-12)
	testutil.RequireNear(t, Source{SNRdB: 20}.Amplitude(), 10, 1e-12)
	testutil.RequireNear(t, Source{SNRdB: -20}.Amplitude(), 0.1, 1e-12)
}

func TestDefaultScanGridAngles(t *testing.T) {
	angles := DefaultScanGrid().Angles()
	if len(angles) != 181 {
		t.Fatalf("len = %d, want 181", len(angles))
	}

	testutil.RequireNear(t, angles[0], -90, 1e-12)
	testutil.RequireNear(t, angles[90], 0, 1e-12)
	testutil.RequireNear(t, angles[180], 90, 1e-12)
	testutil.RequireAscending(t, angles)
}

func TestScanGridValidate(t *testing.T) {
	if err := (ScanGrid{StartDeg: -90, StopDeg: 90, StepDeg: 0}).Validate(); err != ErrScanGrid {
		t.Errorf("zero step: got %v, want %v", err, ErrScanGrid)
	}

	if err := (ScanGrid{StartDeg: 10, StopDeg: -10, StepDeg: 1}).Validate(); err != ErrScanGrid {
		t.Errorf("stop before start: got %v, want %v", err, ErrScanGrid)
	}

	if err := DefaultScanGrid().Validate(); err != nil {
		t.Errorf("default grid: unexpected error %v", err)
	}
}

func TestScanGridSinglePoint(t *testing.T) {
	angles := ScanGrid{StartDeg: 15, StopDeg: 15, StepDeg: 1}.Angles()
	if len(angles) != 1 || angles[0] != 15 {
		t.Fatalf("angles = %v, want [15]", angles)
	}
}
