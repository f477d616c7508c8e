package batch

import (
	"github.com/quantralabs/quantra/config"
)

type Mode int

const (
	// Sequential runs the whole batch on the calling goroutine.
	Sequential Mode = iota
	// Tiled runs sequentially in L1-cache-sized tiles, keeping the working
	// set of all input arrays resident without paying fan-out overhead.
	Tiled
	// Parallel fans chunks out across the available workers.
	Parallel
)

func (m Mode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Tiled:
		return "tiled"
	case Parallel:
		return "parallel"
	}
	return "unknown"
}

// Strategy describes how one batch will be executed. It is derived, carries
// no state, and is recomputed per call.
type Strategy struct {
	Mode        Mode
	ChunkSize   int
	Parallelism int
}

// Plan selects an execution strategy purely from the problem size and the
// worker count. Small batches stay sequential so goroutine dispatch never
// dominates the work; mid-size batches are tiled to the cache chunk; large
// batches fan out with chunk size
// max(MinChunkWork, min(CacheChunk, n/workers)).
func Plan(n, workers int, cfg config.Numerics) Strategy {
	if workers < 1 {
		workers = 1
	}
	if cfg.MaxParallel > 0 && workers > cfg.MaxParallel {
		workers = cfg.MaxParallel
	}
	switch {
	case n < cfg.SmallBatch:
		return Strategy{Mode: Sequential, ChunkSize: n, Parallelism: 1}
	case n < cfg.LargeBatch || workers == 1:
		return Strategy{Mode: Tiled, ChunkSize: cfg.CacheChunk, Parallelism: 1}
	}
	chunk := n / workers
	if chunk > cfg.CacheChunk {
		chunk = cfg.CacheChunk
	}
	if chunk < cfg.MinChunkWork {
		chunk = cfg.MinChunkWork
	}
	return Strategy{Mode: Parallel, ChunkSize: chunk, Parallelism: workers}
}
