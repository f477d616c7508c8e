package pricing

import (
	"math"

	"github.com/quantralabs/quantra/dist"
	"github.com/quantralabs/quantra/models"
)

// Black76 prices a European option on a forward. The discount factor
// exp(-rT) applies to the whole payoff; there is no separate carry term.
type Black76 struct {
	eng *Engine
	p   models.Black76Params
}

func (e *Engine) Black76(p models.Black76Params) Black76 {
	return Black76{eng: e, p: p}
}

func (m Black76) d1d2() (float64, float64) {
	p := m.p
	sqt := math.Sqrt(p.Time)
	d1 := (math.Log(p.Forward/p.Strike) + 0.5*p.Vol*p.Vol*p.Time) / (p.Vol * sqt)
	return d1, d1 - p.Vol*sqt
}

func (m Black76) CallPrice() float64 {
	p := m.p
	d1, d2 := m.d1d2()
	return math.Exp(-p.Rate*p.Time) * (p.Forward*dist.Cdf(d1) - p.Strike*dist.Cdf(d2))
}

func (m Black76) PutPrice() float64 {
	p := m.p
	d1, d2 := m.d1d2()
	return math.Exp(-p.Rate*p.Time) * (p.Strike*dist.Cdf(-d2) - p.Forward*dist.Cdf(-d1))
}

// Greeks returns the closed-form sensitivities. Delta and gamma carry the
// payoff discount factor; rho is -T times the price since the rate only
// enters through discounting.
func (m Black76) Greeks(isCall bool) models.Greeks {
	p := m.p
	d1, d2 := m.d1d2()
	sqt := math.Sqrt(p.Time)
	pdf := dist.Pdf(d1)
	df := math.Exp(-p.Rate * p.Time)

	g := models.Greeks{
		Gamma: df * pdf / (p.Forward * p.Vol * sqt),
		Vega:  df * p.Forward * pdf * sqt / 100,
	}
	if isCall {
		g.Delta = df * dist.Cdf(d1)
		g.Theta = (-df*p.Forward*pdf*p.Vol/(2*sqt) +
			p.Rate*df*(p.Forward*dist.Cdf(d1)-p.Strike*dist.Cdf(d2))) / 365
		g.Rho = -p.Time * m.CallPrice() / 100
	} else {
		g.Delta = df * (dist.Cdf(d1) - 1)
		g.Theta = (-df*p.Forward*pdf*p.Vol/(2*sqt) +
			p.Rate*df*(p.Strike*dist.Cdf(-d2)-p.Forward*dist.Cdf(-d1))) / 365
		g.Rho = -p.Time * m.PutPrice() / 100
	}
	return g
}

func (m Black76) rawVega() float64 {
	p := m.p
	d1, _ := m.d1d2()
	return math.Exp(-p.Rate*p.Time) * p.Forward * dist.Pdf(d1) * math.Sqrt(p.Time)
}

func (m Black76) ImpliedVol(price float64, isCall bool, guess ...float64) (float64, error) {
	p := m.p
	df := math.Exp(-p.Rate * p.Time)
	spec := ivSpec{
		spotLeg:   p.Forward * df,
		strikeLeg: p.Strike * df,
		time:      p.Time,
		isCall:    isCall,
		price: func(sigma float64) float64 {
			q := p
			q.Vol = sigma
			if isCall {
				return Black76{m.eng, q}.CallPrice()
			}
			return Black76{m.eng, q}.PutPrice()
		},
		vega: func(sigma float64) float64 {
			q := p
			q.Vol = sigma
			return Black76{m.eng, q}.rawVega()
		},
	}
	return m.eng.impliedVol(spec, price, guess...)
}
