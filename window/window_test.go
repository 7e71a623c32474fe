package window

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/chart-series/common"
	"github.com/uyouii/chart-series/model"
	"github.com/uyouii/chart-series/series"
)

func newTestIndex() *series.Index {
	var entries []*model.Entry
	for i := 0; i < 11; i++ {
		entries = append(entries, model.NewEntry(float64(i), float64(i*i)))
	}
	return series.NewIndex(entries, "squares")
}

func TestVisibleRange(t *testing.T) {
	ctx := context.Background()
	idx := newTestIndex()

	res, err := VisibleRange(ctx, idx, 2.5, 6.5, 1)
	require.NoError(t, err)
	assert.Equal(t, model.XBounds{Min: 2, Max: 7, Range: 5}, *res)

	res, err = VisibleRange(ctx, idx, 6.5, 2.5, 0.5)
	require.NoError(t, err)
	assert.Equal(t, model.XBounds{Min: 2, Max: 7, Range: 2}, *res)

	res, err = VisibleRange(ctx, idx, -10, 100, 7)
	require.NoError(t, err)
	assert.Equal(t, model.XBounds{Min: 0, Max: 10, Range: 10}, *res)

	res, err = VisibleRange(ctx, idx, 0, 10, -1)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Range)
}

func TestVisibleRangeEmpty(t *testing.T) {
	res, err := VisibleRange(context.Background(), series.NewIndex(nil, ""), 0, 10, 1)
	require.NoError(t, err)
	assert.Equal(t, model.XBounds{}, *res)
}

func TestVisibleRangeInvalid(t *testing.T) {
	ctx := context.Background()

	_, err := VisibleRange(ctx, nil, 0, 1, 1)
	assert.ErrorIs(t, err, common.ErrorInvalidValue)

	_, err = VisibleRange(ctx, newTestIndex(), math.NaN(), 1, 1)
	assert.ErrorIs(t, err, common.ErrorInvalidValue)
}

func TestFitY(t *testing.T) {
	ctx := context.Background()
	idx := newTestIndex()

	b, err := FitY(ctx, idx, 7, 3)
	require.NoError(t, err)
	assert.Equal(t, model.Bounds{XMin: 0, XMax: 10, YMin: 9, YMax: 49}, b)
	assert.Equal(t, b, idx.Bounds())

	b, err = FitY(ctx, idx, 2.2, 2.8)
	require.NoError(t, err)
	assert.Equal(t, 4.0, b.YMin)
	assert.Equal(t, 9.0, b.YMax)
}

func TestFitYErrors(t *testing.T) {
	ctx := context.Background()

	b, err := FitY(ctx, series.NewIndex(nil, ""), 0, 1)
	assert.ErrorIs(t, err, common.ErrorEmptySeries)
	assert.True(t, b.Empty())

	_, err = FitY(ctx, nil, 0, 1)
	assert.ErrorIs(t, err, common.ErrorInvalidValue)

	_, err = FitY(ctx, newTestIndex(), 0, math.NaN())
	assert.ErrorIs(t, err, common.ErrorInvalidValue)
}

func TestIsInBoundsX(t *testing.T) {
	entries := []*model.Entry{model.NewEntry(0, 0), model.NewEntry(1, 1), model.NewEntry(2, 2), model.NewEntry(3, 3)}
	idx := series.NewIndex(entries, "")

	assert.True(t, IsInBoundsX(idx, entries[0], 0.5))
	assert.True(t, IsInBoundsX(idx, entries[1], 0.5))
	assert.False(t, IsInBoundsX(idx, entries[2], 0.5))
	assert.True(t, IsInBoundsX(idx, entries[3], 1))
	assert.False(t, IsInBoundsX(idx, entries[0], 0))

	assert.False(t, IsInBoundsX(idx, model.NewEntry(0, 0), 1))
	assert.False(t, IsInBoundsX(nil, entries[0], 1))
}
