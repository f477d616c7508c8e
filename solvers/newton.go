package solvers

import (
	"math"

	"github.com/quantralabs/quantra/models"
)

// Newton runs Newton-Raphson iteration x <- x - f(x)/df(x) from x0.
//
// It fails fast with an InstabilityError when |df(x)| drops below the
// minimum-derivative threshold rather than dividing by a value it cannot
// trust, and reports a ConvergenceError as soon as it detects oscillation
// (sign-flipping steps of near-equal magnitude) instead of burning the rest
// of the iteration budget bouncing between two points.
func (s *Solver) Newton(f, df Func, x0 float64) (float64, error) {
	x := x0
	prevStep := math.NaN()
	fx := f(x)
	for i := 0; i < s.maxIter; i++ {
		if math.Abs(fx) < s.tol {
			return x, nil
		}
		d := df(x)
		if math.Abs(d) < s.minDeriv {
			return 0, &models.InstabilityError{Derivative: d, Threshold: s.minDeriv}
		}
		step := fx / d
		if !math.IsNaN(prevStep) && step*prevStep < 0 &&
			math.Abs(step+prevStep) < s.tol*math.Max(1, math.Abs(step)) {
			return 0, &models.ConvergenceError{Iterations: i + 1, Residual: fx}
		}
		x -= step
		prevStep = step
		fx = f(x)
	}
	return 0, &models.ConvergenceError{Iterations: s.maxIter, Residual: fx}
}
