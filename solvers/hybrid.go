package solvers

import (
	"github.com/quantralabs/quantra/logger"
)

// Hybrid tries Newton-Raphson from x0 first; if Newton fails, or converges
// to a point outside [lo, hi], it falls back to Brent over the bracket.
// Newton wins on speed when the initial guess is good, Brent guarantees
// termination when it is not.
func (s *Solver) Hybrid(f, df Func, x0, lo, hi float64) (float64, error) {
	x, err := s.Newton(f, df, x0)
	if err == nil && x >= lo && x <= hi {
		return x, nil
	}
	if err != nil {
		logger.Debugf("newton failed from x0=%v (%v), falling back to brent on [%v, %v]\n", x0, err, lo, hi)
	} else {
		logger.Debugf("newton converged outside bracket [%v, %v] (x=%v), falling back to brent\n", lo, hi, x)
	}
	return s.Brent(f, lo, hi)
}
