package batch

import (
	"math"
	"runtime"
	"sync"

	"github.com/google/uuid"

	"github.com/quantralabs/quantra/config"
	"github.com/quantralabs/quantra/logger"
	"github.com/quantralabs/quantra/models"
)

// Executor runs per-element closures under the strategy Plan selects.
// Element computations are independent and pure, so chunks are a plain
// fork-join over the host's goroutine scheduler; results are always written
// back to the index they were read from. Per-element failures become NaN
// sentinels and never abort the batch.
type Executor struct {
	cfg     config.Numerics
	workers int
}

func NewExecutor(cfg config.Numerics) *Executor {
	return &Executor{cfg: cfg, workers: runtime.GOMAXPROCS(0)}
}

// SetWorkers overrides the detected concurrency. The executor only queries
// the host's parallelism; it never owns or configures a pool.
func (e *Executor) SetWorkers(n int) {
	if n > 0 {
		e.workers = n
	}
}

func (e *Executor) run(n int, eval func(lo, hi int)) {
	if n == 0 {
		return
	}
	strat := Plan(n, e.workers, e.cfg)
	// Generating the run id is not free; skip it when the line is discarded.
	if logger.GetLevel() == logger.LevelDebug {
		logger.Debugf("batch %v: n=%d mode=%v chunk=%d parallelism=%d\n",
			uuid.New(), n, strat.Mode, strat.ChunkSize, strat.Parallelism)
	}
	switch strat.Mode {
	case Sequential:
		eval(0, n)
	case Tiled:
		for lo := 0; lo < n; lo += strat.ChunkSize {
			eval(lo, min(lo+strat.ChunkSize, n))
		}
	case Parallel:
		var wg sync.WaitGroup
		for lo := 0; lo < n; lo += strat.ChunkSize {
			hi := min(lo+strat.ChunkSize, n)
			wg.Add(1)
			go func(lo, hi int) {
				defer wg.Done()
				eval(lo, hi)
			}(lo, hi)
		}
		wg.Wait()
	}
}

// Float64s evaluates fn at every broadcast index of it.
func (e *Executor) Float64s(it *Iterator, fn func(i int) (float64, error)) []float64 {
	out := make([]float64, it.Len())
	e.run(it.Len(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			v, err := fn(i)
			if err != nil {
				v = math.NaN()
			}
			out[i] = v
		}
	})
	return out
}

// Greeks evaluates fn at every broadcast index, collecting the results as a
// struct of arrays. A failed element sets every column to NaN at its index.
func (e *Executor) Greeks(it *Iterator, fn func(i int) (models.Greeks, error)) *GreeksColumns {
	out := newGreeksColumns(it.Len())
	e.run(it.Len(), func(lo, hi int) {
		for i := lo; i < hi; i++ {
			g, err := fn(i)
			if err != nil {
				nan := math.NaN()
				g = models.Greeks{Delta: nan, Gamma: nan, Vega: nan, Theta: nan, Rho: nan, DividendRho: nan}
			}
			out.set(i, g)
		}
	})
	return out
}
