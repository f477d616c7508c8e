package pricing

import (
	"math"

	"github.com/quantralabs/quantra/models"
)

// ivSpec describes one implied-volatility recovery problem in model-neutral
// terms: the discounted spot and strike legs (which pin down the
// no-arbitrage interval), time to expiry, and closures that reprice and
// differentiate the model at a trial volatility.
type ivSpec struct {
	spotLeg   float64
	strikeLeg float64
	time      float64
	isCall    bool
	price     func(sigma float64) float64
	vega      func(sigma float64) float64
}

func (s ivSpec) bounds() (lower, upper float64) {
	if s.isCall {
		return math.Max(0, s.spotLeg-s.strikeLeg), s.spotLeg
	}
	return math.Max(0, s.strikeLeg-s.spotLeg), s.strikeLeg
}

// callEquivalent maps a put quote onto the call carrying the same
// volatility via parity, so the guess formulas only need the call form.
func (s ivSpec) callEquivalent(price float64) float64 {
	if s.isCall {
		return price
	}
	return price + s.spotLeg - s.strikeLeg
}

// brennerSubrahmanyam is the at-the-money approximation
// sigma ~ sqrt(2*pi/T) * C/S. Cheap and accurate near the money, poor in
// the wings.
func (s ivSpec) brennerSubrahmanyam(price float64) float64 {
	return math.Sqrt(2*math.Pi/s.time) * s.callEquivalent(price) / s.spotLeg
}

// corradoMiller extends the quadratic approximation away from the money.
// The inner square root goes negative for quotes close to intrinsic, in
// which case NaN is returned and the caller should fall back.
func (s ivSpec) corradoMiller(price float64) float64 {
	c := s.callEquivalent(price)
	sp, st := s.spotLeg, s.strikeLeg
	half := c - (sp-st)/2
	disc := half*half - (sp-st)*(sp-st)/math.Pi
	if disc < 0 {
		return math.NaN()
	}
	return (half + math.Sqrt(disc)) * math.Sqrt(2*math.Pi/s.time) / (sp + st)
}

func (e *Engine) clampGuess(v float64) float64 {
	if math.IsNaN(v) || v < e.cfg.IVGuessMin {
		return e.cfg.IVGuessMin
	}
	if v > e.cfg.IVGuessMax {
		return e.cfg.IVGuessMax
	}
	return v
}

// ivGuess blends the two closed-form estimates by absolute log-moneyness:
// pure Brenner-Subrahmanyam at the money, shifting fully onto
// Corrado-Miller a quarter log-unit away.
func (e *Engine) ivGuess(s ivSpec, target float64) float64 {
	bs := s.brennerSubrahmanyam(target)
	cm := s.corradoMiller(target)
	if math.IsNaN(cm) || cm <= 0 {
		return e.clampGuess(bs)
	}
	w := math.Min(1, math.Abs(math.Log(s.spotLeg/s.strikeLeg))/0.25)
	return e.clampGuess((1-w)*bs + w*cm)
}

// impliedVol recovers the volatility that reprices to target. The quote is
// first checked against its no-arbitrage interval; deep in-the-money and
// near-expiry quotes return a direct heuristic estimate since the solver
// would be iterating on a vanishing time value with vanishing vega. The
// final root is re-priced and its residual checked before being returned.
func (e *Engine) impliedVol(s ivSpec, target float64, guess ...float64) (float64, error) {
	cfg := e.cfg
	lower, upper := s.bounds()
	if math.IsNaN(target) || target < lower || target > upper {
		return 0, &models.NoArbitrageError{Price: target, Lower: lower, Upper: upper}
	}
	timeValue := target - lower
	if (lower > 0 && timeValue < cfg.DeepITMTimeVal*target) || s.time < cfg.NearExpiry {
		return e.ivGuess(s, target), nil
	}

	x0 := 0.0
	if len(guess) > 0 && guess[0] > 0 {
		x0 = e.clampGuess(guess[0])
	} else {
		x0 = e.ivGuess(s, target)
	}

	f := func(sigma float64) float64 { return s.price(sigma) - target }
	iv, err := e.solver.Hybrid(f, s.vega, x0, cfg.IVBracketLo, cfg.IVBracketHi)
	if err != nil {
		return 0, err
	}
	if resid := math.Abs(s.price(iv) - target); resid > cfg.IVResidualTol*math.Max(1, target) {
		return 0, &models.ConvergenceError{Iterations: cfg.SolverMaxIter, Residual: resid}
	}
	return iv, nil
}
