package spectrum

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCumulativeInvariants(t *testing.T) {
	for _, depth := range []float64{0, 100, 400, 3000} {
		for _, threshold := range []float64{0, 1, 10, 100} {
			tab, err := Build(MeiHime{}, depth, threshold)
			if !assert.NoError(t, err, "depth=%g threshold=%g", depth, threshold) {
				continue
			}

			_, c0 := tab.Edges(0)
			assert.Equal(t, 0.0, c0, "first cumulative value")
			_, cn := tab.Edges(tab.Len())
			assert.InDelta(t, 1.0, cn, 1e-9, "last cumulative value")

			prevE, prevC := tab.Edges(0)
			for i := 1; i <= tab.Len(); i++ {
				e, c := tab.Edges(i)
				assert.True(t, e > prevE, "energies strictly increasing")
				assert.True(t, c >= prevC, "cumulative non-decreasing")
				prevE, prevC = e, c
			}
		}
	}
}

func TestBuildInvalidParameters(t *testing.T) {
	cases := []struct{ depth, threshold float64 }{
		{-1, 10},
		{400, -1},
		{math.NaN(), 10},
		{400, math.NaN()},
		{math.Inf(1), 10},
		{400, math.Inf(1)},
	}
	for _, c := range cases {
		_, err := Build(MeiHime{}, c.depth, c.threshold)
		assert.True(t, errors.Is(err, ErrInvalidParameter),
			"depth=%g threshold=%g: %v", c.depth, c.threshold, err)
	}
}

func TestBuildEmptySpectrum(t *testing.T) {
	_, hi := MeiHime{}.Domain()

	// Threshold at the top of the tabulated range leaves nothing.
	_, err := Build(MeiHime{}, 400, hi)
	assert.True(t, errors.Is(err, ErrEmptySpectrum), "threshold at max: %v", err)

	_, err = Build(MeiHime{}, 400, hi*2)
	assert.True(t, errors.Is(err, ErrEmptySpectrum), "threshold past max: %v", err)

	// Extreme overburden underflows the residual flux to zero.
	_, err = Build(MeiHime{}, 1e9, 10)
	assert.True(t, errors.Is(err, ErrEmptySpectrum), "extreme depth: %v", err)
}

func TestBuildIdempotent(t *testing.T) {
	t1, err := Build(MeiHime{}, 400, 10)
	assert.NoError(t, err)
	t2, err := Build(MeiHime{}, 400, 10)
	assert.NoError(t, err)
	assert.Equal(t, t1, t2, "identical parameters must yield identical tables")
}

func TestSampleRange(t *testing.T) {
	tab, err := Build(MeiHime{}, 400, 10)
	assert.NoError(t, err)

	n := 20001
	for i := 0; i < n; i++ {
		u := float64(i) / float64(n) // covers [0, 1)
		e, bin, err := tab.Sample(u)
		if !assert.NoError(t, err) {
			break
		}
		assert.True(t, e >= 10, "u=%g gave energy %g below threshold", u, e)
		assert.True(t, e <= tab.MaxEnergy(), "u=%g gave energy %g above table", u, e)
		assert.True(t, bin >= 0 && bin < tab.Len(), "bin index in range")
	}
}

func TestSampleDeterministic(t *testing.T) {
	tab, err := Build(MeiHime{}, 400, 10)
	assert.NoError(t, err)

	for _, u := range []float64{0, 0.25, 0.5, 0.75, 0.999999} {
		e1, b1, err := tab.Sample(u)
		assert.NoError(t, err)
		e2, b2, err := tab.Sample(u)
		assert.NoError(t, err)
		assert.Equal(t, e1, e2, "energy reproducible at u=%g", u)
		assert.Equal(t, b1, b2, "bin reproducible at u=%g", u)
	}
}

func TestSampleMonotone(t *testing.T) {
	// Inverse transform of a distribution is non-decreasing in u.
	tab, err := Build(MeiHime{}, 400, 10)
	assert.NoError(t, err)

	prev := -1.0
	for i := 0; i < 1000; i++ {
		u := float64(i) / 1000
		e, _, err := tab.Sample(u)
		assert.NoError(t, err)
		assert.True(t, e >= prev, "inverse CDF must be monotone")
		prev = e
	}
}

func TestSampleErrors(t *testing.T) {
	var nilTab *Table
	_, _, err := nilTab.Sample(0.5)
	assert.True(t, errors.Is(err, ErrUninitializedTable))

	tab, err := Build(MeiHime{}, 400, 10)
	assert.NoError(t, err)
	_, _, err = tab.Sample(-0.1)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
	_, _, err = tab.Sample(1)
	assert.True(t, errors.Is(err, ErrInvalidParameter))
}

func BenchmarkSample(b *testing.B) {
	tab, err := Build(MeiHime{}, 400, 10)
	if err != nil {
		b.Fatal(err.Error())
	}
	for i := 0; i < b.N; i++ {
		u := float64(i%1000) / 1000
		tab.Sample(u)
	}
}
