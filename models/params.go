package models

import (
	"math"
)

// Parameter sets are immutable values created per pricing call. Constructors
// validate once; the pricing code then assumes strictly positive, finite
// price/strike/time/vol and finite rate/yield.

type BlackScholesParams struct {
	Spot   float64
	Strike float64
	Time   float64
	Rate   float64
	Vol    float64
}

type Black76Params struct {
	Forward float64
	Strike  float64
	Time    float64
	Rate    float64
	Vol     float64
}

type MertonParams struct {
	Spot   float64
	Strike float64
	Time   float64
	Rate   float64
	Yield  float64
	Vol    float64
}

type AmericanParams struct {
	Spot   float64
	Strike float64
	Time   float64
	Rate   float64
	Yield  float64
	Vol    float64
}

func NewBlackScholesParams(spot, strike, t, rate, vol float64) (BlackScholesParams, error) {
	if err := checkPositive("spot", spot); err != nil {
		return BlackScholesParams{}, err
	}
	if err := checkPositive("strike", strike); err != nil {
		return BlackScholesParams{}, err
	}
	if err := checkPositive("time", t); err != nil {
		return BlackScholesParams{}, err
	}
	if err := checkFinite("rate", rate); err != nil {
		return BlackScholesParams{}, err
	}
	if err := checkPositive("vol", vol); err != nil {
		return BlackScholesParams{}, err
	}
	return BlackScholesParams{Spot: spot, Strike: strike, Time: t, Rate: rate, Vol: vol}, nil
}

func NewBlack76Params(forward, strike, t, rate, vol float64) (Black76Params, error) {
	if err := checkPositive("forward", forward); err != nil {
		return Black76Params{}, err
	}
	if err := checkPositive("strike", strike); err != nil {
		return Black76Params{}, err
	}
	if err := checkPositive("time", t); err != nil {
		return Black76Params{}, err
	}
	if err := checkFinite("rate", rate); err != nil {
		return Black76Params{}, err
	}
	if err := checkPositive("vol", vol); err != nil {
		return Black76Params{}, err
	}
	return Black76Params{Forward: forward, Strike: strike, Time: t, Rate: rate, Vol: vol}, nil
}

func NewMertonParams(spot, strike, t, rate, yield, vol float64) (MertonParams, error) {
	if err := checkPositive("spot", spot); err != nil {
		return MertonParams{}, err
	}
	if err := checkPositive("strike", strike); err != nil {
		return MertonParams{}, err
	}
	if err := checkPositive("time", t); err != nil {
		return MertonParams{}, err
	}
	if err := checkFinite("rate", rate); err != nil {
		return MertonParams{}, err
	}
	if err := checkFinite("yield", yield); err != nil {
		return MertonParams{}, err
	}
	if err := checkPositive("vol", vol); err != nil {
		return MertonParams{}, err
	}
	return MertonParams{Spot: spot, Strike: strike, Time: t, Rate: rate, Yield: yield, Vol: vol}, nil
}

func NewAmericanParams(spot, strike, t, rate, yield, vol float64) (AmericanParams, error) {
	m, err := NewMertonParams(spot, strike, t, rate, yield, vol)
	if err != nil {
		return AmericanParams{}, err
	}
	return AmericanParams(m), nil
}

func checkPositive(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidParamError{Name: name, Value: v, Reason: "must be finite"}
	}
	if v <= 0 {
		return &InvalidParamError{Name: name, Value: v, Reason: "must be strictly positive"}
	}
	return nil
}

func checkFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvalidParamError{Name: name, Value: v, Reason: "must be finite"}
	}
	return nil
}
