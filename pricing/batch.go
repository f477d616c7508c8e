package pricing

import (
	"github.com/quantralabs/quantra/batch"
	"github.com/quantralabs/quantra/models"
)

// BatchSource binds one model to a set of scalar-or-array inputs. Every
// model flows through the same three generic batch paths below; there is
// exactly one execution code path to test, instantiated per model.
type BatchSource interface {
	inputs() []batch.ArrayLike
	// model builds the validated Model for broadcast index i. The source's
	// own inputs occupy iterator positions 0..len(inputs)-1.
	model(e *Engine, it *batch.Iterator, i int) (Model, error)
}

// CallPrices prices every element of the batch. A structural error (shape
// mismatch) aborts before any element runs; a per-element validation or
// pricing failure yields NaN at that index only.
func (e *Engine) CallPrices(src BatchSource, ex *batch.Executor) ([]float64, error) {
	return e.prices(src, ex, true)
}

func (e *Engine) PutPrices(src BatchSource, ex *batch.Executor) ([]float64, error) {
	return e.prices(src, ex, false)
}

func (e *Engine) prices(src BatchSource, ex *batch.Executor, isCall bool) ([]float64, error) {
	it, err := batch.Broadcast(src.inputs()...)
	if err != nil {
		return nil, err
	}
	return ex.Float64s(it, func(i int) (float64, error) {
		m, err := src.model(e, it, i)
		if err != nil {
			return 0, err
		}
		if isCall {
			return m.CallPrice(), nil
		}
		return m.PutPrice(), nil
	}), nil
}

// BatchGreeks computes all sensitivities for every element as a struct of
// arrays.
func (e *Engine) BatchGreeks(src BatchSource, ex *batch.Executor, isCall bool) (*batch.GreeksColumns, error) {
	it, err := batch.Broadcast(src.inputs()...)
	if err != nil {
		return nil, err
	}
	return ex.Greeks(it, func(i int) (models.Greeks, error) {
		m, err := src.model(e, it, i)
		if err != nil {
			return models.Greeks{}, err
		}
		return m.Greeks(isCall), nil
	}), nil
}

// ImpliedVols recovers the volatility for every quoted price. The quotes
// broadcast together with the model inputs; a quote that breaches its
// no-arbitrage bounds or fails to converge yields NaN at its index.
func (e *Engine) ImpliedVols(src BatchSource, ex *batch.Executor, quotes batch.ArrayLike, isCall bool) ([]float64, error) {
	ins := append(src.inputs(), quotes)
	it, err := batch.Broadcast(ins...)
	if err != nil {
		return nil, err
	}
	qIdx := len(ins) - 1
	return ex.Float64s(it, func(i int) (float64, error) {
		m, err := src.model(e, it, i)
		if err != nil {
			return 0, err
		}
		return m.ImpliedVol(it.At(qIdx, i), isCall)
	}), nil
}

type BlackScholesBatch struct {
	Spot   batch.ArrayLike
	Strike batch.ArrayLike
	Time   batch.ArrayLike
	Rate   batch.ArrayLike
	Vol    batch.ArrayLike
}

func (b BlackScholesBatch) inputs() []batch.ArrayLike {
	return []batch.ArrayLike{b.Spot, b.Strike, b.Time, b.Rate, b.Vol}
}

func (b BlackScholesBatch) model(e *Engine, it *batch.Iterator, i int) (Model, error) {
	p, err := models.NewBlackScholesParams(it.At(0, i), it.At(1, i), it.At(2, i), it.At(3, i), it.At(4, i))
	if err != nil {
		return nil, err
	}
	return e.BlackScholes(p), nil
}

type Black76Batch struct {
	Forward batch.ArrayLike
	Strike  batch.ArrayLike
	Time    batch.ArrayLike
	Rate    batch.ArrayLike
	Vol     batch.ArrayLike
}

func (b Black76Batch) inputs() []batch.ArrayLike {
	return []batch.ArrayLike{b.Forward, b.Strike, b.Time, b.Rate, b.Vol}
}

func (b Black76Batch) model(e *Engine, it *batch.Iterator, i int) (Model, error) {
	p, err := models.NewBlack76Params(it.At(0, i), it.At(1, i), it.At(2, i), it.At(3, i), it.At(4, i))
	if err != nil {
		return nil, err
	}
	return e.Black76(p), nil
}

type MertonBatch struct {
	Spot   batch.ArrayLike
	Strike batch.ArrayLike
	Time   batch.ArrayLike
	Rate   batch.ArrayLike
	Yield  batch.ArrayLike
	Vol    batch.ArrayLike
}

func (b MertonBatch) inputs() []batch.ArrayLike {
	return []batch.ArrayLike{b.Spot, b.Strike, b.Time, b.Rate, b.Yield, b.Vol}
}

func (b MertonBatch) model(e *Engine, it *batch.Iterator, i int) (Model, error) {
	p, err := models.NewMertonParams(it.At(0, i), it.At(1, i), it.At(2, i), it.At(3, i), it.At(4, i), it.At(5, i))
	if err != nil {
		return nil, err
	}
	return e.Merton(p), nil
}

type AmericanBatch struct {
	Spot   batch.ArrayLike
	Strike batch.ArrayLike
	Time   batch.ArrayLike
	Rate   batch.ArrayLike
	Yield  batch.ArrayLike
	Vol    batch.ArrayLike
}

func (b AmericanBatch) inputs() []batch.ArrayLike {
	return []batch.ArrayLike{b.Spot, b.Strike, b.Time, b.Rate, b.Yield, b.Vol}
}

func (b AmericanBatch) model(e *Engine, it *batch.Iterator, i int) (Model, error) {
	p, err := models.NewAmericanParams(it.At(0, i), it.At(1, i), it.At(2, i), it.At(3, i), it.At(4, i), it.At(5, i))
	if err != nil {
		return nil, err
	}
	return e.American(p), nil
}
