package music

import (
	"math/cmplx"
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/makhpatten/music-df-simulation/internal/testutil"
)

func sampleSnapshots(t *testing.T, sources []Source) *mat.CDense {
	t.Helper()
	syn := Synthesizer{Array: validArray(), Sources: sources, Snapshots: 100, NoisePower: 1}
	x, err := syn.Matrix(rand.NewPCG(21, 21))
	if err != nil {
		t.Fatal(err)
	}

	return x
}

func TestCovarianceKnownValues(t *testing.T) {
	// X = [[1, i], [2, -1]] gives XᴴX = [[5, -2+i], [-2-i, 2]] by hand.
	x := mat.NewCDense(2, 2, []complex128{1, 1i, 2, -1})
	r := Covariance(x)

	rows, cols := r.Dims()
	if rows != 2 || cols != 2 {
		t.Fatalf("dims = %dx%d, want 2x2", rows, cols)
	}

	testutil.RequireCNear(t, r.At(0, 0), 5, 0)
	testutil.RequireCNear(t, r.At(0, 1), -2+1i, 0)
	testutil.RequireCNear(t, r.At(1, 0), -2-1i, 0)
	testutil.RequireCNear(t, r.At(1, 1), 2, 0)
}

func TestCovarianceHermitian(t *testing.T) {
	r := Covariance(sampleSnapshots(t, []Source{{AngleDeg: 10, SNRdB: 10}}))

	rows, cols := r.Dims()
	if rows != 8 || cols != 8 {
		t.Fatalf("dims = %dx%d, want 8x8", rows, cols)
	}

	// Entries scale with snapshots·amplitude², so compare with an absolute
	// tolerance proportional to that scale.
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			testutil.RequireCNear(t, r.At(i, j), cmplx.Conj(r.At(j, i)), 1e-6)
		}
	}
}

func TestCovariancePositiveSemiDefinite(t *testing.T) {
	r := Covariance(sampleSnapshots(t, []Source{{AngleDeg: 10, SNRdB: 10}, {AngleDeg: -25, SNRdB: 5}}))

	dec, err := DecomposeCovariance(r)
	if err != nil {
		t.Fatal(err)
	}

	floor := -1e-9 * dec.Values[len(dec.Values)-1]
	for i, v := range dec.Values {
		if v < floor {
			t.Errorf("eigenvalue %d = %v, negative beyond tolerance", i, v)
		}
	}
}

func TestDecomposeCovarianceOrdering(t *testing.T) {
	dec, err := DecomposeCovariance(Covariance(sampleSnapshots(t, []Source{{AngleDeg: 40, SNRdB: 10}})))
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireAscending(t, dec.Values)

	// Eigenvectors must be orthonormal.
	m := len(dec.Values)
	for j := 0; j < m; j++ {
		for l := j; l < m; l++ {
			var dot complex128
			for i := 0; i < m; i++ {
				dot += cmplx.Conj(dec.Vectors.At(i, j)) * dec.Vectors.At(i, l)
			}
			want := complex(0, 0)
			if j == l {
				want = 1
			}
			testutil.RequireCNear(t, dot, want, 1e-9)
		}
	}
}

func TestSteeringEnergyConservation(t *testing.T) {
	// Projecting a steering vector onto the full eigenvector basis must
	// conserve its energy: the subspace split loses nothing.
	cfg := validArray()
	dec, err := DecomposeCovariance(Covariance(sampleSnapshots(t, []Source{{AngleDeg: 10, SNRdB: 10}, {AngleDeg: 55, SNRdB: 8}})))
	if err != nil {
		t.Fatal(err)
	}

	a := SteeringVector(cfg, 17)
	m := cfg.NumAntennas

	var energy float64
	for j := 0; j < m; j++ {
		var dot complex128
		for i := 0; i < m; i++ {
			dot += cmplx.Conj(dec.Vectors.At(i, j)) * a[i]
		}
		energy += real(dot)*real(dot) + imag(dot)*imag(dot)
	}

	testutil.RequireNear(t, energy, float64(m), 1e-8)
}

func TestSplitSubspaces(t *testing.T) {
	dec, err := DecomposeCovariance(Covariance(sampleSnapshots(t, []Source{{AngleDeg: 10, SNRdB: 10}, {AngleDeg: 40, SNRdB: 10}})))
	if err != nil {
		t.Fatal(err)
	}

	signal, noise, err := SplitSubspaces(dec, 2)
	if err != nil {
		t.Fatal(err)
	}

	sr, sc := signal.Dims()
	nr, nc := noise.Dims()
	if sr != 8 || sc != 2 || nr != 8 || nc != 6 {
		t.Fatalf("signal %dx%d noise %dx%d, want 8x2 and 8x6", sr, sc, nr, nc)
	}

	// Noise columns are the smallest-eigenvalue vectors, signal the largest.
	for i := 0; i < 8; i++ {
		testutil.RequireCNear(t, noise.At(i, 0), dec.Vectors.At(i, 0), 0)
		testutil.RequireCNear(t, signal.At(i, 1), dec.Vectors.At(i, 7), 0)
	}
}

func TestSplitSubspacesErrors(t *testing.T) {
	dec, err := DecomposeCovariance(Covariance(sampleSnapshots(t, []Source{{AngleDeg: 10, SNRdB: 10}})))
	if err != nil {
		t.Fatal(err)
	}

	if _, _, err := SplitSubspaces(dec, 0); err != ErrNoSources {
		t.Errorf("numSources=0: got %v, want %v", err, ErrNoSources)
	}

	if _, _, err := SplitSubspaces(dec, 8); err != ErrTooManySources {
		t.Errorf("numSources=M: got %v, want %v", err, ErrTooManySources)
	}

	if _, _, err := SplitSubspaces(dec, 12); err != ErrTooManySources {
		t.Errorf("numSources>M: got %v, want %v", err, ErrTooManySources)
	}

	if _, _, err := SplitSubspaces(dec, 7); err != nil {
		t.Errorf("numSources=M-1: unexpected error %v", err)
	}
}
