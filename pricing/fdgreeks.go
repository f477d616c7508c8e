package pricing

import (
	"github.com/jinzhu/copier"

	"github.com/quantralabs/quantra/models"
)

// Greeks estimates the American sensitivities by differencing the pricing
// function itself. The already-validated price is the ground truth; the
// step sizes are calibrated constants that trade truncation error against
// floating-point cancellation, reproduced exactly from config:
// spot 0.1% relative (central, second difference for gamma), vol 1e-3
// absolute, time one calendar day forward (shrunk near expiry), rate and
// yield one basis point.
func (m American) Greeks(isCall bool) models.Greeks {
	cfg := m.eng.cfg

	price := func(p models.AmericanParams) float64 {
		a := American{m.eng, p}
		if isCall {
			return a.CallPrice()
		}
		return a.PutPrice()
	}
	bump := func(mutate func(*models.AmericanParams)) float64 {
		var b models.AmericanParams
		copier.Copy(&b, &m.p)
		mutate(&b)
		return price(b)
	}

	base := price(m.p)
	var g models.Greeks

	hs := cfg.FDSpotRel * m.p.Spot
	spotUp := bump(func(p *models.AmericanParams) { p.Spot += hs })
	spotDn := bump(func(p *models.AmericanParams) { p.Spot -= hs })
	g.Delta = (spotUp - spotDn) / (2 * hs)
	g.Gamma = (spotUp - 2*base + spotDn) / (hs * hs)

	hv := cfg.FDVolAbs
	volUp := bump(func(p *models.AmericanParams) { p.Vol += hv })
	volDn := bump(func(p *models.AmericanParams) { p.Vol -= hv })
	g.Vega = (volUp - volDn) / (2 * hv) / 100

	dt := cfg.FDTimeDay
	if m.p.Time <= dt {
		dt = m.p.Time / 2
	}
	aged := bump(func(p *models.AmericanParams) { p.Time -= dt })
	g.Theta = (aged - base) / (dt * 365)

	hr := cfg.FDRateAbs
	rateUp := bump(func(p *models.AmericanParams) { p.Rate += hr })
	rateDn := bump(func(p *models.AmericanParams) { p.Rate -= hr })
	g.Rho = (rateUp - rateDn) / (2 * hr) / 100

	yieldUp := bump(func(p *models.AmericanParams) { p.Yield += hr })
	yieldDn := bump(func(p *models.AmericanParams) { p.Yield -= hr })
	g.DividendRho = (yieldUp - yieldDn) / (2 * hr) / 100

	return g
}
