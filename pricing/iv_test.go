package pricing

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantralabs/quantra/config"
	"github.com/quantralabs/quantra/models"
)

func TestImpliedVolRejectsArbitrageQuotes(t *testing.T) {
	m := mustBS(t, 100, 90, 0.5, 0.04, 0.2)
	lower := 100 - 90*math.Exp(-0.04*0.5)

	// Below intrinsic value.
	_, err := m.ImpliedVol(lower-1, true)
	var noArb *models.NoArbitrageError
	require.ErrorAs(t, err, &noArb)
	assert.InDelta(t, lower, noArb.Lower, 1e-12)
	assert.Equal(t, 100.0, noArb.Upper)

	// Above the spot leg.
	_, err = m.ImpliedVol(120, true)
	assert.ErrorAs(t, err, &noArb)

	// NaN quote.
	_, err = m.ImpliedVol(math.NaN(), true)
	assert.ErrorAs(t, err, &noArb)
}

// Deep in-the-money quotes carry almost no volatility information, so the
// engine answers with the closed-form estimate instead of running the
// solver into a flat objective.
func TestImpliedVolDeepITMShortcut(t *testing.T) {
	m := mustBS(t, 100, 50, 0.5, 0.01, 0.2)
	lower := 100 - 50*math.Exp(-0.01*0.5)
	price := lower * 1.001

	cfg := config.DefaultNumerics()
	iv, err := m.ImpliedVol(price, true)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, iv, cfg.IVGuessMin)
	assert.LessOrEqual(t, iv, cfg.IVGuessMax)
}

func TestImpliedVolNearExpiryShortcut(t *testing.T) {
	m := mustBS(t, 100, 100, 1e-4, 0.02, 0.3)
	price := m.CallPrice()

	cfg := config.DefaultNumerics()
	iv, err := m.ImpliedVol(price, true)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, iv, cfg.IVGuessMin)
	assert.LessOrEqual(t, iv, cfg.IVGuessMax)
	// Brenner-Subrahmanyam is a genuine approximation at the money; it
	// should land in the neighborhood even this close to expiry.
	assert.InDelta(t, 0.3, iv, 0.05)
}

func TestImpliedVolHonorsExplicitGuess(t *testing.T) {
	m := mustBS(t, 100, 105, 1, 0.03, 0.4)
	price := m.CallPrice()

	iv, err := m.ImpliedVol(price, true, 0.39)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, iv, 1e-6)

	// A wild guess is clamped into range and still converges via the
	// bracketed fallback.
	iv, err = m.ImpliedVol(price, true, 50)
	require.NoError(t, err)
	assert.InDelta(t, 0.4, iv, 1e-6)
}

func TestImpliedVolGuessBlendTracksMoneyness(t *testing.T) {
	// The opening guess should already be close at the money and never
	// leave the configured range in the wings.
	cfg := config.DefaultNumerics()
	for _, strike := range []float64{40, 80, 100, 125, 250} {
		m := mustBS(t, 100, strike, 1, 0.0, 0.25)
		price := m.CallPrice()
		spec := ivSpec{
			spotLeg:   100,
			strikeLeg: strike,
			time:      1,
			isCall:    true,
		}
		guess := Default().ivGuess(spec, price)
		assert.GreaterOrEqual(t, guess, cfg.IVGuessMin, "K=%v", strike)
		assert.LessOrEqual(t, guess, cfg.IVGuessMax, "K=%v", strike)
		if strike == 100 {
			assert.InDelta(t, 0.25, guess, 0.01)
		}
	}
}

func TestImpliedVolResidualGate(t *testing.T) {
	// A quote at the very top of the no-arbitrage interval needs a
	// volatility beyond the bracket; the engine must fail loudly rather
	// than return the bracket edge.
	m := mustBS(t, 100, 100, 0.1, 0.0, 0.2)
	_, err := m.ImpliedVol(99.999, true)
	require.Error(t, err)
	var conv *models.ConvergenceError
	var brak *models.BracketError
	ok := errors.As(err, &conv) || errors.As(err, &brak)
	assert.True(t, ok, "got %T: %v", err, err)
}
