package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantralabs/quantra/batch"
	"github.com/quantralabs/quantra/config"
	"github.com/quantralabs/quantra/models"
)

func testExecutor() *batch.Executor {
	return batch.NewExecutor(config.DefaultNumerics())
}

func TestBatchCallPricesMatchScalar(t *testing.T) {
	strikes := []float64{80, 90, 100, 110, 120}
	src := BlackScholesBatch{
		Spot:   batch.Scalar(100),
		Strike: batch.Array(strikes),
		Time:   batch.Scalar(1),
		Rate:   batch.Scalar(0.05),
		Vol:    batch.Scalar(0.2),
	}

	eng := Default()
	calls, err := eng.CallPrices(src, testExecutor())
	require.NoError(t, err)
	puts, err := eng.PutPrices(src, testExecutor())
	require.NoError(t, err)
	require.Len(t, calls, len(strikes))

	for i, k := range strikes {
		m := mustBS(t, 100, k, 1, 0.05, 0.2)
		assert.Equal(t, m.CallPrice(), calls[i], "K=%v", k)
		assert.Equal(t, m.PutPrice(), puts[i], "K=%v", k)
	}
}

func TestBatchBadElementBecomesNaN(t *testing.T) {
	src := MertonBatch{
		Spot:   batch.Scalar(100),
		Strike: batch.Array([]float64{90, 100, 110}),
		Time:   batch.Scalar(0.5),
		Rate:   batch.Scalar(0.03),
		Yield:  batch.Scalar(0.01),
		Vol:    batch.Array([]float64{0.2, -0.2, 0.2}),
	}

	calls, err := Default().CallPrices(src, testExecutor())
	require.NoError(t, err)
	require.Len(t, calls, 3)
	assert.False(t, math.IsNaN(calls[0]))
	assert.True(t, math.IsNaN(calls[1]))
	assert.False(t, math.IsNaN(calls[2]))
}

func TestBatchShapeMismatchAborts(t *testing.T) {
	src := Black76Batch{
		Forward: batch.Array([]float64{100, 101}),
		Strike:  batch.Array([]float64{90, 100, 110}),
		Time:    batch.Scalar(1),
		Rate:    batch.Scalar(0.05),
		Vol:     batch.Scalar(0.2),
	}

	calls, err := Default().CallPrices(src, testExecutor())
	var mismatch *models.ShapeMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Nil(t, calls)
}

func TestBatchGreeksMatchScalar(t *testing.T) {
	strikes := []float64{90, 100, 110}
	src := MertonBatch{
		Spot:   batch.Scalar(100),
		Strike: batch.Array(strikes),
		Time:   batch.Scalar(1),
		Rate:   batch.Scalar(0.04),
		Yield:  batch.Scalar(0.02),
		Vol:    batch.Scalar(0.25),
	}

	cols, err := Default().BatchGreeks(src, testExecutor(), true)
	require.NoError(t, err)
	require.Equal(t, len(strikes), cols.Len())

	for i, k := range strikes {
		want := mustMerton(t, 100, k, 1, 0.04, 0.02, 0.25).Greeks(true)
		assert.Equal(t, want, cols.At(i), "K=%v", k)
	}
}

func TestBatchImpliedVolsRoundTrip(t *testing.T) {
	strikes := []float64{90, 100, 110}
	vols := []float64{0.18, 0.22, 0.27}
	quotes := make([]float64, len(strikes))
	for i := range strikes {
		quotes[i] = mustBS(t, 100, strikes[i], 1, 0.05, vols[i]).CallPrice()
	}

	// Vol is only a stand-in here: construction validates it, the solver
	// overwrites it.
	src := BlackScholesBatch{
		Spot:   batch.Scalar(100),
		Strike: batch.Array(strikes),
		Time:   batch.Scalar(1),
		Rate:   batch.Scalar(0.05),
		Vol:    batch.Scalar(0.2),
	}

	ivs, err := Default().ImpliedVols(src, testExecutor(), batch.Array(quotes), true)
	require.NoError(t, err)
	require.Len(t, ivs, len(strikes))
	for i := range ivs {
		assert.InDelta(t, vols[i], ivs[i], 1e-5, "K=%v", strikes[i])
	}
}

func TestBatchImpliedVolsBadQuoteBecomesNaN(t *testing.T) {
	src := BlackScholesBatch{
		Spot:   batch.Scalar(100),
		Strike: batch.Scalar(100),
		Time:   batch.Scalar(1),
		Rate:   batch.Scalar(0.05),
		Vol:    batch.Scalar(0.2),
	}
	good := mustBS(t, 100, 100, 1, 0.05, 0.2).CallPrice()
	quotes := []float64{good, 150, good} // 150 breaches the upper bound

	ivs, err := Default().ImpliedVols(src, testExecutor(), batch.Array(quotes), true)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, ivs[0], 1e-5)
	assert.True(t, math.IsNaN(ivs[1]))
	assert.InDelta(t, 0.2, ivs[2], 1e-5)
}

func TestBatchAmericanDominatesEuropean(t *testing.T) {
	strikes := []float64{85, 100, 115}
	am := AmericanBatch{
		Spot:   batch.Scalar(100),
		Strike: batch.Array(strikes),
		Time:   batch.Scalar(1),
		Rate:   batch.Scalar(0.05),
		Yield:  batch.Scalar(0.04),
		Vol:    batch.Scalar(0.25),
	}
	eu := MertonBatch{
		Spot:   batch.Scalar(100),
		Strike: batch.Array(strikes),
		Time:   batch.Scalar(1),
		Rate:   batch.Scalar(0.05),
		Yield:  batch.Scalar(0.04),
		Vol:    batch.Scalar(0.25),
	}

	eng := Default()
	amPuts, err := eng.PutPrices(am, testExecutor())
	require.NoError(t, err)
	euPuts, err := eng.PutPrices(eu, testExecutor())
	require.NoError(t, err)
	for i := range strikes {
		assert.GreaterOrEqual(t, amPuts[i], euPuts[i]-1e-12, "K=%v", strikes[i])
	}
}

func TestChain(t *testing.T) {
	strikes := []float64{80, 90, 100, 110, 120}
	quotes, err := Default().Chain(testExecutor(), 100, 1, 0.05, 0.02, 0.2, strikes)
	require.NoError(t, err)
	require.Len(t, quotes, len(strikes))

	for i, q := range quotes {
		assert.Equal(t, strikes[i], q.Strike)
		if i > 0 {
			// Calls fall and puts rise in strike.
			assert.Less(t, q.Call, quotes[i-1].Call)
			assert.Greater(t, q.Put, quotes[i-1].Put)
		}
	}

	// The ladder agrees with scalar pricing.
	atm := mustMerton(t, 100, 100, 1, 0.05, 0.02, 0.2)
	assert.Equal(t, atm.CallPrice(), quotes[2].Call)
	assert.Equal(t, atm.PutPrice(), quotes[2].Put)
}
