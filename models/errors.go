package models

import (
	"fmt"
)

// InvalidParamError reports a single parameter failing its validity
// predicate. Callers get the offending field and value, not a pre-formatted
// string.
type InvalidParamError struct {
	Name   string
	Value  float64
	Reason string
}

func (e *InvalidParamError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%v: %s", e.Name, e.Value, e.Reason)
}

// ShapeMismatchError reports two batch inputs with incompatible lengths,
// both greater than one. Detected before any element is processed.
type ShapeMismatchError struct {
	Length      int
	Conflicting int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("cannot broadcast length %d against length %d", e.Conflicting, e.Length)
}

// NoArbitrageError reports a quoted option price outside its arbitrage-free
// interval [Lower, Upper], making implied volatility recovery meaningless.
type NoArbitrageError struct {
	Price float64
	Lower float64
	Upper float64
}

func (e *NoArbitrageError) Error() string {
	return fmt.Sprintf("price %v outside no-arbitrage bounds [%v, %v]", e.Price, e.Lower, e.Upper)
}

// InstabilityError reports a solver derivative too small to divide by,
// typically vega underflow far from the money.
type InstabilityError struct {
	Derivative float64
	Threshold  float64
}

func (e *InstabilityError) Error() string {
	return fmt.Sprintf("derivative %v below stability threshold %v", e.Derivative, e.Threshold)
}

// ConvergenceError reports a solver that exhausted its iteration budget or
// detected oscillation before reaching tolerance.
type ConvergenceError struct {
	Iterations int
	Residual   float64
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("failed to converge after %d iterations (residual %v)", e.Iterations, e.Residual)
}

// BracketError reports a Brent interval whose endpoints do not bracket a
// root.
type BracketError struct {
	Lo, Hi   float64
	FLo, FHi float64
}

func (e *BracketError) Error() string {
	return fmt.Sprintf("interval [%v, %v] does not bracket a root: f(lo)=%v f(hi)=%v", e.Lo, e.Hi, e.FLo, e.FHi)
}
