// Package hermeig computes eigendecompositions of Hermitian complex
// matrices on top of gonum's real symmetric solver.
//
// gonum/mat has no public complex eigensolver, so a Hermitian A = Re + i·Im
// is embedded as the real symmetric matrix
//
//	[ Re  -Im ]
//	[ Im   Re ]
//
// Every eigenvalue of A appears twice in the embedding, and a real
// eigenvector (u, v) of the embedding lifts to the complex eigenvector
// u + i·v of A.
package hermeig

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"
)

// ErrNotSquare is returned for non-square input.
var ErrNotSquare = errors.New("hermeig: matrix is not square")

// groupTol classifies adjacent eigenvalues of the embedding as one repeated
// group, relative to the largest eigenvalue magnitude. It must sit well
// above the spacing of the exact duplicate pairs (machine epsilon) and well
// below the spacing of genuinely distinct eigenvalues.
const groupTol = 1e-9

// residualTol is the smallest Gram-Schmidt residual norm accepted when
// collapsing a degenerate group; candidates below it are rediscoveries of
// an already-accepted eigenvector (u, v) via its rotation (-v, u).
const residualTol = 1e-6

// Decompose returns the eigenvalues of the Hermitian matrix a in ascending
// order together with matching orthonormal eigenvectors as the columns of
// the second return value. Any non-Hermitian residue in a (imaginary parts
// on the diagonal, asymmetric rounding noise) is discarded by averaging a
// with its conjugate transpose before factorization.
func Decompose(a *mat.CDense) ([]float64, *mat.CDense, error) {
	n, c := a.Dims()
	if n != c {
		return nil, nil, ErrNotSquare
	}

	sym := mat.NewSymDense(2*n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			h := (a.At(i, j) + cmplx.Conj(a.At(j, i))) / 2
			if j >= i {
				sym.SetSym(i, j, real(h))
				sym.SetSym(n+i, n+j, real(h))
			}
			sym.SetSym(i, n+j, -imag(h))
		}
	}

	var eig mat.EigenSym
	if !eig.Factorize(sym, true) {
		return nil, nil, fmt.Errorf("hermeig: symmetric factorization failed for %dx%d embedding", 2*n, 2*n)
	}

	ev := eig.Values(nil) // ascending
	var evec mat.Dense
	eig.VectorsTo(&evec)

	scale := math.Max(math.Abs(ev[0]), math.Abs(ev[2*n-1]))
	if scale == 0 {
		scale = 1
	}
	tol := groupTol * scale

	vals := make([]float64, 0, n)
	out := mat.NewCDense(n, n, nil)
	col := 0

	for start := 0; start < 2*n; {
		end := start + 1
		for end < 2*n && ev[end]-ev[end-1] <= tol {
			end++
		}

		// 2k real eigenvectors span the embedding of a k-dimensional
		// complex eigenspace; keep k complex-orthonormal lifts of them.
		want := (end - start) / 2
		var kept [][]complex128
		for j := start; j < end && len(kept) < want; j++ {
			z := liftColumn(&evec, n, j)
			for _, q := range kept {
				subtractProjection(z, q)
			}
			nrm := norm(z)
			if nrm <= residualTol {
				continue
			}
			for i := range z {
				z[i] /= complex(nrm, 0)
			}
			kept = append(kept, z)
		}

		if len(kept) != want {
			return nil, nil, fmt.Errorf("hermeig: degenerate eigenspace near %v collapsed to %d of %d vectors", ev[start], len(kept), want)
		}

		for t, z := range kept {
			vals = append(vals, ev[start+2*t])
			for i := 0; i < n; i++ {
				out.Set(i, col, z[i])
			}
			col++
		}

		start = end
	}

	if col != n {
		return nil, nil, fmt.Errorf("hermeig: recovered %d of %d eigenvectors", col, n)
	}

	return vals, out, nil
}

// liftColumn maps real eigenvector column j of the embedding, split as
// (u, v), to the complex vector u + i·v.
func liftColumn(evec *mat.Dense, n, j int) []complex128 {
	z := make([]complex128, n)
	for i := 0; i < n; i++ {
		z[i] = complex(evec.At(i, j), evec.At(n+i, j))
	}

	return z
}

// subtractProjection removes from z its projection onto the unit vector q.
func subtractProjection(z, q []complex128) {
	var dot complex128
	for i := range z {
		dot += cmplx.Conj(q[i]) * z[i]
	}
	for i := range z {
		z[i] -= dot * q[i]
	}
}

func norm(z []complex128) float64 {
	var sum float64
	for _, v := range z {
		sum += real(v)*real(v) + imag(v)*imag(v)
	}

	return math.Sqrt(sum)
}
