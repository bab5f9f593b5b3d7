package music

import "math/rand/v2"

// Scenario is a complete one-shot simulation run: synthesize snapshots for
// the configured sources, estimate the covariance and its subspaces, and
// scan the MUSIC spectrum. A Scenario is a pure function of its fields; two
// runs with the same configuration and seed produce identical output.
type Scenario struct {
	Array     ArrayConfig
	Sources   []Source
	Snapshots int
	Seed      uint64
}

// Validate checks the whole configuration before any computation begins.
func (sc Scenario) Validate() error {
	if err := sc.Array.Validate(); err != nil {
		return err
	}

	if sc.Snapshots <= 0 {
		return ErrSnapshotCount
	}

	if len(sc.Sources) == 0 {
		return ErrNoSources
	}

	if len(sc.Sources) >= sc.Array.NumAntennas {
		return ErrTooManySources
	}

	return nil
}

// Run executes the pipeline and returns the pseudo-spectrum over grid.
// Noise power is fixed at 1 per antenna per snapshot, so each source's
// SNR in dB is relative to the per-antenna noise floor.
func (sc Scenario) Run(grid ScanGrid) (Spectrum, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	if err := grid.Validate(); err != nil {
		return nil, err
	}

	rng := rand.NewPCG(sc.Seed, sc.Seed)

	syn := Synthesizer{
		Array:      sc.Array,
		Sources:    sc.Sources,
		Snapshots:  sc.Snapshots,
		NoisePower: 1,
	}
	x, err := syn.Matrix(rng)
	if err != nil {
		return nil, err
	}

	dec, err := DecomposeCovariance(Covariance(x))
	if err != nil {
		return nil, err
	}

	_, noise, err := SplitSubspaces(dec, len(sc.Sources))
	if err != nil {
		return nil, err
	}

	return Scan(sc.Array, noise, grid)
}
