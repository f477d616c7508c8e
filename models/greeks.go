package models

import (
	"github.com/fatih/structs"
)

// Greeks holds the risk sensitivities of one option. Scaling is part of the
// contract: Vega and Rho (and DividendRho) are per 1% move of their input,
// Theta is per calendar day with time decay negative. Delta and Gamma are
// unscaled.
type Greeks struct {
	Delta       float64 `structs:"delta"`
	Gamma       float64 `structs:"gamma"`
	Vega        float64 `structs:"vega"`
	Theta       float64 `structs:"theta"`
	Rho         float64 `structs:"rho"`
	DividendRho float64 `structs:"dividend_rho"`
}

// Map returns the Greeks keyed by their conventional lowercase names, for
// callers that address sensitivities by field name rather than position.
func (g Greeks) Map() map[string]float64 {
	out := make(map[string]float64, 6)
	for k, v := range structs.Map(g) {
		out[k] = v.(float64)
	}
	return out
}
