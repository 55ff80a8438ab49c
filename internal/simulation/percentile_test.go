package simulation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercentile_LinearInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}

	assert.InDelta(t, 1.0, Percentile(sorted, 0), 1e-12)
	assert.InDelta(t, 1.15, Percentile(sorted, 5), 1e-12)
	assert.InDelta(t, 1.75, Percentile(sorted, 25), 1e-12)
	assert.InDelta(t, 2.5, Percentile(sorted, 50), 1e-12)
	assert.InDelta(t, 3.25, Percentile(sorted, 75), 1e-12)
	assert.InDelta(t, 3.85, Percentile(sorted, 95), 1e-12)
	assert.InDelta(t, 4.0, Percentile(sorted, 100), 1e-12)
	assert.Equal(t, 7.0, Percentile([]float64{7}, 95))
}

func TestPercentileBands_PerDay(t *testing.T) {
	paths := [][]float64{
		{10, 4},
		{10, 1},
		{10, 3},
		{10, 2},
	}
	b := PercentileBands(paths)

	require.Len(t, b.P50, 2)
	assert.Equal(t, 10.0, b.P5[0])
	assert.Equal(t, 10.0, b.P95[0])
	assert.InDelta(t, 2.5, b.P50[1], 1e-12)
	assert.InDelta(t, 1.15, b.P5[1], 1e-12)

	// Input paths are left untouched.
	assert.Equal(t, []float64{10, 4}, paths[0])
}

func TestPercentileBands_Empty(t *testing.T) {
	assert.Empty(t, PercentileBands(nil).P50)
}

func TestPercentileBands_Ordering(t *testing.T) {
	sim := New(&fakeProvider{closes: sampleCloses}, nil, WithSeed(7), WithClock(fixedClock))
	paths, err := sim.Run(context.Background(), Request{Ticker: "AAPL", StartDate: "2023-01-01", NumSimulations: 500, NumDays: 60})
	require.NoError(t, err)

	b := PercentileBands(paths)
	for d := range b.P50 {
		assert.LessOrEqual(t, b.P5[d], b.P25[d], "day %d", d)
		assert.LessOrEqual(t, b.P25[d], b.P50[d], "day %d", d)
		assert.LessOrEqual(t, b.P50[d], b.P75[d], "day %d", d)
		assert.LessOrEqual(t, b.P75[d], b.P95[d], "day %d", d)
	}
}
