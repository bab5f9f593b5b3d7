package music

import (
	"math"

	"github.com/cpmech/gosl/utl"
)

// ScanGrid describes the angle grid the spectrum scanner evaluates.
// The grid is inclusive of both endpoints; the step is adjusted slightly
// if needed so that StopDeg lands exactly on the last grid point.
type ScanGrid struct {
	StartDeg float64
	StopDeg  float64
	StepDeg  float64
}

// DefaultScanGrid covers -90° to +90° in 1° steps.
func DefaultScanGrid() ScanGrid {
	return ScanGrid{StartDeg: -90, StopDeg: 90, StepDeg: 1}
}

// Validate checks the grid parameters.
func (g ScanGrid) Validate() error {
	if !(g.StepDeg > 0) || g.StopDeg < g.StartDeg {
		return ErrScanGrid
	}

	return nil
}

// Angles returns the scanned angle sequence in ascending order.
func (g ScanGrid) Angles() []float64 {
	n := int(math.Round((g.StopDeg-g.StartDeg)/g.StepDeg)) + 1
	if n < 2 {
		return []float64{g.StartDeg}
	}

	return utl.LinSpace(g.StartDeg, g.StopDeg, n)
}
