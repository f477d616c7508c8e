package config

// Numerics collects every tunable numeric threshold used by the solvers,
// the pricing models and the batch engine. A single value is built once and
// threaded into each component at construction, so there are no scattered
// package-level magic numbers to hunt down when recalibrating.
type Numerics struct {
	// Root-finding
	SolverTolerance float64 `json:"solver_tolerance"`
	SolverMaxIter   int     `json:"solver_max_iter"`
	MinDerivative   float64 `json:"min_derivative"`

	// Implied volatility recovery
	IVBracketLo    float64 `json:"iv_bracket_lo"`
	IVBracketHi    float64 `json:"iv_bracket_hi"`
	IVGuessMin     float64 `json:"iv_guess_min"`
	IVGuessMax     float64 `json:"iv_guess_max"`
	IVResidualTol  float64 `json:"iv_residual_tol"`
	DeepITMTimeVal float64 `json:"deep_itm_time_value"` // time value / price ratio below which we skip the solver
	NearExpiry     float64 `json:"near_expiry"`         // years-to-expiry below which we skip the solver

	// American model stability
	BetaFloor        float64 `json:"beta_floor"`
	TriggerTol       float64 `json:"trigger_tol"` // relative tolerance on the early-exercise trigger
	TriggerDecay     float64 `json:"trigger_decay"`
	MoneynessCeiling float64 `json:"moneyness_ceiling"`
	MoneynessFloor   float64 `json:"moneyness_floor"`

	// Finite-difference Greeks steps (calibrated, do not re-derive)
	FDSpotRel float64 `json:"fd_spot_rel"` // relative bump in spot
	FDVolAbs  float64 `json:"fd_vol_abs"`  // absolute bump in volatility
	FDTimeDay float64 `json:"fd_time_day"` // forward step in maturity, years
	FDRateAbs float64 `json:"fd_rate_abs"` // absolute bump in rate / yield

	// Batch parallelism
	SmallBatch   int `json:"small_batch"`    // below: plain sequential
	LargeBatch   int `json:"large_batch"`    // above: chunked parallel
	CacheChunk   int `json:"cache_chunk"`    // elements per L1-sized tile
	MinChunkWork int `json:"min_chunk_work"` // floor on per-goroutine work
	MaxParallel  int `json:"max_parallel"`   // 0 means use all available workers
}

// DefaultNumerics returns the calibrated defaults. The finite-difference
// steps are calibrated, not derived (spot 0.1%, vol 1e-3 absolute, time one
// day, rate 1bp); the batch thresholds assume ~32KB L1 working sets of
// float64 inputs.
func DefaultNumerics() Numerics {
	return Numerics{
		SolverTolerance: 1e-10,
		SolverMaxIter:   100,
		MinDerivative:   1e-10,

		IVBracketLo:    1e-4,
		IVBracketHi:    10.0,
		IVGuessMin:     0.01,
		IVGuessMax:     5.0,
		IVResidualTol:  1e-5,
		DeepITMTimeVal: 0.01,
		NearExpiry:     1.0 / 3650.0,

		BetaFloor:        1.0 + 1e-6,
		TriggerTol:       1e-9,
		TriggerDecay:     2.0,
		MoneynessCeiling: 100.0,
		MoneynessFloor:   0.01,

		FDSpotRel: 1e-3,
		FDVolAbs:  1e-3,
		FDTimeDay: 1.0 / 365.0,
		FDRateAbs: 1e-4,

		SmallBatch:   1024,
		LargeBatch:   16384,
		CacheChunk:   4096,
		MinChunkWork: 1024,
		MaxParallel:  0,
	}
}
