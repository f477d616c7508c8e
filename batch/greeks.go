package batch

import (
	"github.com/quantralabs/quantra/models"
)

// GreeksColumns is the struct-of-arrays result of a batch Greeks run: one
// column per sensitivity, indexed like the batch inputs.
type GreeksColumns struct {
	Delta       []float64
	Gamma       []float64
	Vega        []float64
	Theta       []float64
	Rho         []float64
	DividendRho []float64
}

func newGreeksColumns(n int) *GreeksColumns {
	return &GreeksColumns{
		Delta:       make([]float64, n),
		Gamma:       make([]float64, n),
		Vega:        make([]float64, n),
		Theta:       make([]float64, n),
		Rho:         make([]float64, n),
		DividendRho: make([]float64, n),
	}
}

func (g *GreeksColumns) set(i int, v models.Greeks) {
	g.Delta[i] = v.Delta
	g.Gamma[i] = v.Gamma
	g.Vega[i] = v.Vega
	g.Theta[i] = v.Theta
	g.Rho[i] = v.Rho
	g.DividendRho[i] = v.DividendRho
}

func (g *GreeksColumns) Len() int {
	return len(g.Delta)
}

// At reassembles the Greeks of one element.
func (g *GreeksColumns) At(i int) models.Greeks {
	return models.Greeks{
		Delta:       g.Delta[i],
		Gamma:       g.Gamma[i],
		Vega:        g.Vega[i],
		Theta:       g.Theta[i],
		Rho:         g.Rho[i],
		DividendRho: g.DividendRho[i],
	}
}
