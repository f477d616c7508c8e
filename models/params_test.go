package models

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParamValidation(t *testing.T) {
	_, err := NewBlackScholesParams(100, 100, 1, 0.05, 0.2)
	require.NoError(t, err)

	cases := []struct {
		name string
		err  error
	}{
		{"spot", func() error { _, e := NewBlackScholesParams(-1, 100, 1, 0.05, 0.2); return e }()},
		{"strike", func() error { _, e := NewBlackScholesParams(100, 0, 1, 0.05, 0.2); return e }()},
		{"time", func() error { _, e := NewBlackScholesParams(100, 100, 0, 0.05, 0.2); return e }()},
		{"rate", func() error { _, e := NewBlackScholesParams(100, 100, 1, math.NaN(), 0.2); return e }()},
		{"vol", func() error { _, e := NewBlackScholesParams(100, 100, 1, 0.05, math.Inf(1)); return e }()},
	}
	for _, c := range cases {
		var invalid *InvalidParamError
		require.True(t, errors.As(c.err, &invalid), c.name)
		assert.Equal(t, c.name, invalid.Name)
	}
}

func TestMertonValidatesYield(t *testing.T) {
	_, err := NewMertonParams(100, 100, 1, 0.05, math.NaN(), 0.2)
	var invalid *InvalidParamError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "yield", invalid.Name)

	// Negative yields are legal; only non-finite values are rejected.
	_, err = NewMertonParams(100, 100, 1, 0.05, -0.01, 0.2)
	assert.NoError(t, err)
}

func TestGreeksMap(t *testing.T) {
	g := Greeks{Delta: 0.5, Gamma: 0.01, Vega: 0.2, Theta: -0.02, Rho: 0.3, DividendRho: -0.1}
	m := g.Map()
	assert.Equal(t, 0.5, m["delta"])
	assert.Equal(t, 0.01, m["gamma"])
	assert.Equal(t, 0.2, m["vega"])
	assert.Equal(t, -0.02, m["theta"])
	assert.Equal(t, 0.3, m["rho"])
	assert.Equal(t, -0.1, m["dividend_rho"])
	assert.Len(t, m, 6)
}
