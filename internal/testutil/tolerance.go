// Package testutil holds shared numeric assertions for tests.
package testutil

import (
	"math"
	"math/cmplx"
	"testing"
)

// RequireNear fails t if |got-want| exceeds eps.
func RequireNear(t *testing.T, got, want, eps float64) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > eps {
		t.Fatalf("got %v, want %v (eps %v)", got, want, eps)
	}
}

// RequireCNear fails t if |got-want| exceeds eps.
func RequireCNear(t *testing.T, got, want complex128, eps float64) {
	t.Helper()
	if d := cmplx.Abs(got - want); math.IsNaN(d) || d > eps {
		t.Fatalf("got %v, want %v (diff %v > eps %v)", got, want, cmplx.Abs(got-want), eps)
	}
}

// RequireSliceNear fails t if got and want differ in length or any element
// pair differs by more than eps (absolute tolerance).
func RequireSliceNear(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		if d := math.Abs(got[i] - want[i]); math.IsNaN(d) || d > eps {
			t.Fatalf("index %d: got %v, want %v (eps %v)", i, got[i], want[i], eps)
		}
	}
}

// RequireAscending fails t if data is not sorted in non-decreasing order.
func RequireAscending(t *testing.T, data []float64) {
	t.Helper()
	for i := 1; i < len(data); i++ {
		if data[i] < data[i-1] {
			t.Fatalf("index %d: %v follows %v, not ascending", i, data[i], data[i-1])
		}
	}
}
