// Package pricing implements the four option pricing models and their
// Greeks and implied-volatility surfaces: Black-Scholes, Black-76, Merton
// and the Bjerksund-Stensland 2002 American approximation.
package pricing

import (
	"github.com/quantralabs/quantra/config"
	"github.com/quantralabs/quantra/models"
	"github.com/quantralabs/quantra/solvers"
)

// Engine owns the numeric configuration and the shared solver. It holds no
// per-call state and is safe for concurrent use.
type Engine struct {
	cfg    config.Numerics
	solver *solvers.Solver
}

func NewEngine(cfg config.Numerics) *Engine {
	return &Engine{cfg: cfg, solver: solvers.New(cfg)}
}

// Default returns an engine with the calibrated default configuration.
func Default() *Engine {
	return NewEngine(config.DefaultNumerics())
}

// Model is the per-model capability used by the batch layer: price, Greeks
// and implied volatility against an already-validated parameter set. Each
// concrete model binds an Engine to one parameter variant.
type Model interface {
	CallPrice() float64
	PutPrice() float64
	Greeks(isCall bool) models.Greeks
	ImpliedVol(price float64, isCall bool, guess ...float64) (float64, error)
}

// Theo returns the price and the full sensitivities of one option in a
// single call, the usual shape for a scalar quote.
func Theo(m Model, isCall bool) (float64, models.Greeks) {
	if isCall {
		return m.CallPrice(), m.Greeks(true)
	}
	return m.PutPrice(), m.Greeks(false)
}
