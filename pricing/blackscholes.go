package pricing

import (
	"math"

	"github.com/quantralabs/quantra/dist"
	"github.com/quantralabs/quantra/models"
)

// BlackScholes prices a European option on a non-dividend-paying underlying.
type BlackScholes struct {
	eng *Engine
	p   models.BlackScholesParams
}

func (e *Engine) BlackScholes(p models.BlackScholesParams) BlackScholes {
	return BlackScholes{eng: e, p: p}
}

func (m BlackScholes) d1d2() (float64, float64) {
	p := m.p
	sqt := math.Sqrt(p.Time)
	d1 := (math.Log(p.Spot/p.Strike) + (p.Rate+0.5*p.Vol*p.Vol)*p.Time) / (p.Vol * sqt)
	return d1, d1 - p.Vol*sqt
}

func (m BlackScholes) CallPrice() float64 {
	p := m.p
	d1, d2 := m.d1d2()
	return p.Spot*dist.Cdf(d1) - p.Strike*math.Exp(-p.Rate*p.Time)*dist.Cdf(d2)
}

func (m BlackScholes) PutPrice() float64 {
	p := m.p
	d1, d2 := m.d1d2()
	return p.Strike*math.Exp(-p.Rate*p.Time)*dist.Cdf(-d2) - p.Spot*dist.Cdf(-d1)
}

// Greeks returns the closed-form sensitivities. Vega and Rho are per 1%
// move, Theta per calendar day. Put delta is N(d1)-1.
func (m BlackScholes) Greeks(isCall bool) models.Greeks {
	p := m.p
	d1, d2 := m.d1d2()
	sqt := math.Sqrt(p.Time)
	pdf := dist.Pdf(d1)
	df := math.Exp(-p.Rate * p.Time)

	g := models.Greeks{
		Gamma: pdf / (p.Spot * p.Vol * sqt),
		Vega:  p.Spot * pdf * sqt / 100,
	}
	if isCall {
		g.Delta = dist.Cdf(d1)
		g.Theta = (-p.Spot*pdf*p.Vol/(2*sqt) - p.Rate*p.Strike*df*dist.Cdf(d2)) / 365
		g.Rho = p.Strike * p.Time * df * dist.Cdf(d2) / 100
	} else {
		g.Delta = dist.Cdf(d1) - 1
		g.Theta = (-p.Spot*pdf*p.Vol/(2*sqt) + p.Rate*p.Strike*df*dist.Cdf(-d2)) / 365
		g.Rho = -p.Strike * p.Time * df * dist.Cdf(-d2) / 100
	}
	return g
}

// rawVega is the unscaled price derivative with respect to volatility, used
// as the Newton derivative during implied-vol recovery.
func (m BlackScholes) rawVega() float64 {
	d1, _ := m.d1d2()
	return m.p.Spot * dist.Pdf(d1) * math.Sqrt(m.p.Time)
}

func (m BlackScholes) ImpliedVol(price float64, isCall bool, guess ...float64) (float64, error) {
	p := m.p
	spec := ivSpec{
		spotLeg:   p.Spot,
		strikeLeg: p.Strike * math.Exp(-p.Rate*p.Time),
		time:      p.Time,
		isCall:    isCall,
		price: func(sigma float64) float64 {
			q := p
			q.Vol = sigma
			if isCall {
				return BlackScholes{m.eng, q}.CallPrice()
			}
			return BlackScholes{m.eng, q}.PutPrice()
		},
		vega: func(sigma float64) float64 {
			q := p
			q.Vol = sigma
			return BlackScholes{m.eng, q}.rawVega()
		},
	}
	return m.eng.impliedVol(spec, price, guess...)
}
