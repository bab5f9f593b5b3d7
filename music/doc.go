// Package music simulates narrowband plane waves impinging on a uniform
// linear antenna array and estimates their arrival angles with the MUSIC
// (MUltiple SIgnal Classification) subspace algorithm.
//
// The pipeline runs strictly forward with no shared state between stages:
//
//	source signals + steering model → snapshot matrix → covariance →
//	eigendecomposition → signal/noise subspace split → pseudo-spectrum scan
//
// Each stage is exposed on its own so that parts of the pipeline can be
// exercised or replaced independently; Scenario wires them together into a
// one-shot batch run that is a pure function of its configuration and seed.
//
// # Usage
//
// Run a complete simulation and pick the strongest peaks:
//
//	sc := music.Scenario{
//	    Array: music.ArrayConfig{
//	        NumAntennas: 8,
//	        Spacing:     0.5,
//	        CarrierHz:   300e6,
//	        WaveSpeed:   music.SpeedOfLight,
//	    },
//	    Sources:   []music.Source{{AngleDeg: 10, SNRdB: 10}, {AngleDeg: 40, SNRdB: 10}},
//	    Snapshots: 100,
//	    Seed:      1,
//	}
//	spectrum, err := sc.Run(music.DefaultScanGrid())
//	if err != nil {
//	    // configuration errors are reported before any computation
//	}
//	for _, p := range spectrum.Peaks(2) {
//	    fmt.Printf("source near %.0f°\n", p.AngleDeg)
//	}
//
// Peaks in the spectrum indicate estimated source directions. Rendering the
// spectrum is left to the caller; see cmd/musicsim for a plotting consumer.
package music
