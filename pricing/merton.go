package pricing

import (
	"math"

	"github.com/quantralabs/quantra/dist"
	"github.com/quantralabs/quantra/models"
)

// Merton prices a European option on an underlying paying a continuous
// dividend yield q. The yield folds into the drift of d1 and discounts the
// spot leg by exp(-qT); with q=0 it reduces exactly to Black-Scholes.
type Merton struct {
	eng *Engine
	p   models.MertonParams
}

func (e *Engine) Merton(p models.MertonParams) Merton {
	return Merton{eng: e, p: p}
}

func (m Merton) d1d2() (float64, float64) {
	p := m.p
	sqt := math.Sqrt(p.Time)
	d1 := (math.Log(p.Spot/p.Strike) + (p.Rate-p.Yield+0.5*p.Vol*p.Vol)*p.Time) / (p.Vol * sqt)
	return d1, d1 - p.Vol*sqt
}

func (m Merton) CallPrice() float64 {
	p := m.p
	d1, d2 := m.d1d2()
	return p.Spot*math.Exp(-p.Yield*p.Time)*dist.Cdf(d1) -
		p.Strike*math.Exp(-p.Rate*p.Time)*dist.Cdf(d2)
}

func (m Merton) PutPrice() float64 {
	p := m.p
	d1, d2 := m.d1d2()
	return p.Strike*math.Exp(-p.Rate*p.Time)*dist.Cdf(-d2) -
		p.Spot*math.Exp(-p.Yield*p.Time)*dist.Cdf(-d1)
}

// Greeks returns the closed-form sensitivities including DividendRho, the
// per-1% sensitivity to the dividend yield.
func (m Merton) Greeks(isCall bool) models.Greeks {
	p := m.p
	d1, d2 := m.d1d2()
	sqt := math.Sqrt(p.Time)
	pdf := dist.Pdf(d1)
	dfr := math.Exp(-p.Rate * p.Time)
	dfq := math.Exp(-p.Yield * p.Time)

	g := models.Greeks{
		Gamma: dfq * pdf / (p.Spot * p.Vol * sqt),
		Vega:  p.Spot * dfq * pdf * sqt / 100,
	}
	if isCall {
		g.Delta = dfq * dist.Cdf(d1)
		g.Theta = (-p.Spot*dfq*pdf*p.Vol/(2*sqt) -
			p.Rate*p.Strike*dfr*dist.Cdf(d2) +
			p.Yield*p.Spot*dfq*dist.Cdf(d1)) / 365
		g.Rho = p.Strike * p.Time * dfr * dist.Cdf(d2) / 100
		g.DividendRho = -p.Spot * p.Time * dfq * dist.Cdf(d1) / 100
	} else {
		g.Delta = dfq * (dist.Cdf(d1) - 1)
		g.Theta = (-p.Spot*dfq*pdf*p.Vol/(2*sqt) +
			p.Rate*p.Strike*dfr*dist.Cdf(-d2) -
			p.Yield*p.Spot*dfq*dist.Cdf(-d1)) / 365
		g.Rho = -p.Strike * p.Time * dfr * dist.Cdf(-d2) / 100
		g.DividendRho = p.Spot * p.Time * dfq * dist.Cdf(-d1) / 100
	}
	return g
}

func (m Merton) rawVega() float64 {
	p := m.p
	d1, _ := m.d1d2()
	return p.Spot * math.Exp(-p.Yield*p.Time) * dist.Pdf(d1) * math.Sqrt(p.Time)
}

func (m Merton) ImpliedVol(price float64, isCall bool, guess ...float64) (float64, error) {
	p := m.p
	spec := ivSpec{
		spotLeg:   p.Spot * math.Exp(-p.Yield*p.Time),
		strikeLeg: p.Strike * math.Exp(-p.Rate*p.Time),
		time:      p.Time,
		isCall:    isCall,
		price: func(sigma float64) float64 {
			q := p
			q.Vol = sigma
			if isCall {
				return Merton{m.eng, q}.CallPrice()
			}
			return Merton{m.eng, q}.PutPrice()
		},
		vega: func(sigma float64) float64 {
			q := p
			q.Vol = sigma
			return Merton{m.eng, q}.rawVega()
		},
	}
	return m.eng.impliedVol(spec, price, guess...)
}
