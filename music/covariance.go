package music

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/makhpatten/music-df-simulation/music/internal/hermeig"
)

// Covariance returns the sample spatial covariance Xᴴ·X of an N×M snapshot
// matrix as an M×M Hermitian positive semi-definite matrix. The product is
// accumulated explicitly; gonum's CDense carries no arithmetic methods. The
// 1/N normalization is omitted: it scales every eigenvalue equally and so
// does not affect the eigenvector ordering the subspace split depends on.
func Covariance(x *mat.CDense) *mat.CDense {
	n, m := x.Dims()
	r := mat.NewCDense(m, m, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < m; j++ {
			var sum complex128
			for t := 0; t < n; t++ {
				sum += cmplx.Conj(x.At(t, i)) * x.At(t, j)
			}
			r.Set(i, j, sum)
		}
	}

	return r
}

// Eigendecomposition is the eigensystem of a Hermitian covariance matrix:
// Values ascending, Vectors orthonormal with column i belonging to Values[i].
type Eigendecomposition struct {
	Values  []float64
	Vectors *mat.CDense
}

// DecomposeCovariance computes the full eigendecomposition of the M×M
// covariance matrix r. Eigenvalues of a Hermitian matrix are real up to
// numerical residue; any residue is discarded during symmetrization. A
// factorization failure indicates a configuration or numerical problem, not
// a recoverable data condition, and is surfaced immediately.
func DecomposeCovariance(r *mat.CDense) (Eigendecomposition, error) {
	vals, vecs, err := hermeig.Decompose(r)
	if err != nil {
		return Eigendecomposition{}, fmt.Errorf("music: covariance eigendecomposition: %w", err)
	}

	return Eigendecomposition{Values: vals, Vectors: vecs}, nil
}

// SplitSubspaces partitions the eigenvectors of dec into the signal subspace
// (the numSources columns with the largest eigenvalues) and the noise
// subspace (the remaining M−numSources columns). numSources must be at
// least 1 and strictly less than M, otherwise the noise subspace would be
// empty and the MUSIC denominator undefined.
func SplitSubspaces(dec Eigendecomposition, numSources int) (signal, noise *mat.CDense, err error) {
	m := len(dec.Values)
	if numSources < 1 {
		return nil, nil, ErrNoSources
	}

	if numSources >= m {
		return nil, nil, ErrTooManySources
	}

	split := m - numSources
	noise = mat.NewCDense(m, split, nil)
	signal = mat.NewCDense(m, numSources, nil)
	for i := 0; i < m; i++ {
		for j := 0; j < split; j++ {
			noise.Set(i, j, dec.Vectors.At(i, j))
		}
		for j := split; j < m; j++ {
			signal.Set(i, j-split, dec.Vectors.At(i, j))
		}
	}

	return signal, noise, nil
}
