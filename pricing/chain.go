package pricing

import (
	"github.com/quantralabs/quantra/batch"
)

// ChainQuote is one rung of a priced strike ladder.
type ChainQuote struct {
	Strike float64
	Call   float64
	Put    float64
}

// Chain prices a ladder of strikes for a single expiry in two batch calls,
// broadcasting every scalar input against the strike array.
func (e *Engine) Chain(ex *batch.Executor, spot, t, rate, yield, vol float64, strikes []float64) ([]ChainQuote, error) {
	src := MertonBatch{
		Spot:   batch.Scalar(spot),
		Strike: batch.Array(strikes),
		Time:   batch.Scalar(t),
		Rate:   batch.Scalar(rate),
		Yield:  batch.Scalar(yield),
		Vol:    batch.Scalar(vol),
	}
	calls, err := e.CallPrices(src, ex)
	if err != nil {
		return nil, err
	}
	puts, err := e.PutPrices(src, ex)
	if err != nil {
		return nil, err
	}
	out := make([]ChainQuote, len(strikes))
	for i, k := range strikes {
		out[i] = ChainQuote{Strike: k, Call: calls[i], Put: puts[i]}
	}
	return out, nil
}
