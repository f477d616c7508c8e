package solvers

import (
	"math"

	"github.com/quantralabs/quantra/models"
)

const brentEps = 2.220446049250313e-16

// Brent finds a root of f on [lo, hi] by Brent's method: inverse quadratic
// interpolation with a secant fallback, reverting to bisection whenever the
// interpolated step would leave the bracket or fails to shrink it fast
// enough. Given a valid bracket (f(lo)*f(hi) <= 0) it always terminates
// within the iteration budget.
func (s *Solver) Brent(f Func, lo, hi float64) (float64, error) {
	a, b := lo, hi
	fa, fb := f(a), f(b)
	if fa*fb > 0 {
		return 0, &models.BracketError{Lo: lo, Hi: hi, FLo: fa, FHi: fb}
	}
	c, fc := b, fb
	var d, e float64
	for i := 0; i < s.maxIter; i++ {
		if (fb > 0 && fc > 0) || (fb < 0 && fc < 0) {
			// Root bracketed between b and a; rename so c holds the old b.
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}
		tol1 := 2*brentEps*math.Abs(b) + 0.5*s.tol
		xm := 0.5 * (c - b)
		if math.Abs(xm) <= tol1 || fb == 0 {
			return b, nil
		}
		if math.Abs(e) >= tol1 && math.Abs(fa) > math.Abs(fb) {
			var p, q float64
			t := fb / fa
			if a == c {
				// Secant step.
				p = 2 * xm * t
				q = 1 - t
			} else {
				// Inverse quadratic interpolation.
				q = fa / fc
				r := fb / fc
				p = t * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (t - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			min1 := 3*xm*q - math.Abs(tol1*q)
			min2 := math.Abs(e * q)
			if 2*p < math.Min(min1, min2) {
				// Interpolation acceptable.
				e = d
				d = p / q
			} else {
				// Interpolation would leave the bracket or shrink too
				// slowly; bisect.
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}
		a, fa = b, fb
		if math.Abs(d) > tol1 {
			b += d
		} else {
			b += math.Copysign(tol1, xm)
		}
		fb = f(b)
	}
	return 0, &models.ConvergenceError{Iterations: s.maxIter, Residual: fb}
}
