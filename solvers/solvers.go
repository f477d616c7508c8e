// Package solvers implements the one-dimensional root finders used for
// implied volatility recovery: Newton-Raphson for speed near a good initial
// guess, Brent for guaranteed termination on a valid bracket, and a hybrid
// that tries the former and falls back to the latter.
package solvers

import (
	"github.com/quantralabs/quantra/config"
)

// Func is a caller-supplied objective (or derivative) of one variable.
type Func func(x float64) float64

// Solver carries the numeric thresholds shared by all methods. It is
// stateless across calls and safe for concurrent use.
type Solver struct {
	tol      float64
	maxIter  int
	minDeriv float64
}

func New(cfg config.Numerics) *Solver {
	return &Solver{
		tol:      cfg.SolverTolerance,
		maxIter:  cfg.SolverMaxIter,
		minDeriv: cfg.MinDerivative,
	}
}
