package pricing

import (
	"math"

	"github.com/quantralabs/quantra/dist"
	"github.com/quantralabs/quantra/models"
)

// American prices an early-exercise option with the Bjerksund-Stensland
// 2002 analytic approximation. Greeks come from finite differences of the
// pricing function (fdgreeks.go); there is no closed form for the
// early-exercise boundary.
type American struct {
	eng *Engine
	p   models.AmericanParams
}

func (e *Engine) American(p models.AmericanParams) American {
	return American{eng: e, p: p}
}

func (m American) CallPrice() float64 {
	p := m.p
	return m.eng.americanCall(p.Spot, p.Strike, p.Time, p.Rate, p.Yield, p.Vol)
}

// PutPrice uses the put-call symmetry P(S,K,r,q) = C(K,S,q,r): an American
// put is an American call on the transformed parameters with spot/strike
// and rate/yield swapped. This is a transformation of the pricing problem,
// not put-call parity.
func (m American) PutPrice() float64 {
	p := m.p
	return m.eng.americanCall(p.Strike, p.Spot, p.Time, p.Yield, p.Rate, p.Vol)
}

func europeanCall(S, K, T, r, q, sigma float64) float64 {
	sqt := math.Sqrt(T)
	d1 := (math.Log(S/K) + (r-q+0.5*sigma*sigma)*T) / (sigma * sqt)
	d2 := d1 - sigma*sqt
	return S*math.Exp(-q*T)*dist.Cdf(d1) - K*math.Exp(-r*T)*dist.Cdf(d2)
}

func (e *Engine) americanCall(S, K, T, r, q, sigma float64) float64 {
	cfg := e.cfg
	intrinsic := math.Max(0, S-K)
	european := europeanCall(S, K, T, r, q, sigma)

	// Extreme moneyness makes the boundary logs/exponentials ill
	// conditioned; the answer is intrinsic value (or nothing) anyway.
	if S/K > cfg.MoneynessCeiling {
		return math.Max(intrinsic, european)
	}
	if S/K < cfg.MoneynessFloor {
		return math.Max(0, european)
	}
	// Without a dividend, early exercise of a call is never optimal.
	if q <= 0 {
		return european
	}

	b := r - q
	s2 := sigma * sigma
	beta := (0.5 - b/s2) + math.Sqrt((b/s2-0.5)*(b/s2-0.5)+2*r/s2)
	if beta < cfg.BetaFloor {
		beta = cfg.BetaFloor
	}
	bInf := beta / (beta - 1) * K
	b0 := K
	if b > 0 && b < r {
		b0 = math.Max(K, r/b*K)
	}
	h := -(b*T + cfg.TriggerDecay*sigma*math.Sqrt(T))
	// 1-exp(h) in expm1 form; the naive difference cancels badly as h -> 0.
	trigger := b0 - (bInf-b0)*math.Expm1(h)
	if S >= trigger*(1-cfg.TriggerTol) {
		return math.Max(intrinsic, S-K)
	}

	alpha := (trigger - K) * math.Pow(trigger, -beta)
	val := alpha*math.Pow(S, beta) -
		alpha*phi(S, T, beta, trigger, trigger, r, b, sigma) +
		phi(S, T, 1, trigger, trigger, r, b, sigma) -
		phi(S, T, 1, K, trigger, r, b, sigma) -
		K*phi(S, T, 0, trigger, trigger, r, b, sigma) +
		K*phi(S, T, 0, K, trigger, r, b, sigma)

	// The approximation must dominate both immediate exercise and the
	// European price; anything non-finite falls back to the European value.
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return math.Max(intrinsic, european)
	}
	return math.Max(val, math.Max(intrinsic, european))
}

// phi is the auxiliary integral of the approximation: a bivariate-normal
// flavored expression over the region below the flat exercise boundary X.
func phi(S, T, gamma, H, X, r, b, sigma float64) float64 {
	s2 := sigma * sigma
	volT := sigma * math.Sqrt(T)
	lambda := (-r + gamma*b + 0.5*gamma*(gamma-1)*s2) * T
	d := -(math.Log(S/H) + (b+(gamma-0.5)*s2)*T) / volT
	kappa := 2*b/s2 + 2*gamma - 1
	return math.Exp(lambda) * math.Pow(S, gamma) *
		(dist.Cdf(d) - math.Pow(X/S, kappa)*dist.Cdf(d-2*math.Log(X/S)/volT))
}

func (m American) ImpliedVol(price float64, isCall bool, guess ...float64) (float64, error) {
	p := m.p
	h := m.eng.cfg.FDVolAbs
	reprice := func(sigma float64) float64 {
		q := p
		q.Vol = sigma
		a := American{m.eng, q}
		if isCall {
			return a.CallPrice()
		}
		return a.PutPrice()
	}
	// American bounds are against immediate exercise, so the legs stay
	// undiscounted: call in [max(S-K,0), S], put in [max(K-S,0), K].
	spec := ivSpec{
		spotLeg:   p.Spot,
		strikeLeg: p.Strike,
		time:      p.Time,
		isCall:    isCall,
		price:     reprice,
		vega: func(sigma float64) float64 {
			return (reprice(sigma+h) - reprice(sigma-h)) / (2 * h)
		},
	}
	return m.eng.impliedVol(spec, price, guess...)
}
