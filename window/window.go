package window

import (
	"context"
	"math"

	"github.com/uyouii/chart-series/common"
	"github.com/uyouii/chart-series/model"
	"github.com/uyouii/chart-series/series"
	"github.com/uyouii/chart-series/utils"
	"go.uber.org/zap"
)

// VisibleRange resolves the x window [lowX, highX] to the index window a
// renderer has to draw. phaseX is the animation progress and is clamped to
// [0, 1]; it scales Range only.
func VisibleRange(ctx context.Context, idx *series.Index, lowX, highX, phaseX float64) (
	res *model.XBounds, err error) {
	if idx != nil {
		ctx = utils.WithSeriesLabel(ctx, idx.Label())
	}
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("VisibleRange recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()))
			res, err = nil, common.ErrorInvalidValue
		}
	}()

	if idx == nil || math.IsNaN(lowX) || math.IsNaN(highX) {
		logger.Error("invalid visible range", zap.Bool("nilIndex", idx == nil),
			zap.Float64("lowX", lowX), zap.Float64("highX", highX))
		return nil, common.ErrorInvalidValue
	}

	if lowX > highX {
		lowX, highX = highX, lowX
	}

	minPhase, maxPhase := getPhaseLimits()
	phase := utils.Clamp(phaseX, minPhase, maxPhase)
	if math.IsNaN(phase) {
		phase = maxPhase
	}

	res = &model.XBounds{}
	if from := idx.IndexOfNearestX(lowX, math.NaN(), model.RoundingDown); from != series.NotFound {
		res.Min = from
	}
	if to := idx.IndexOfNearestX(highX, math.NaN(), model.RoundingUp); to != series.NotFound {
		res.Max = to
	}
	res.Range = int(float64(res.Max-res.Min) * phase)

	logger.Debug("visible range resolved", zap.Float64("lowX", lowX), zap.Float64("highX", highX),
		zap.Any("xBounds", res))

	return res, nil
}

// FitY recomputes the y extrema of idx over the visible x window and returns
// the resulting bounds. The x extrema of idx are not touched.
func FitY(ctx context.Context, idx *series.Index, lowX, highX float64) (res model.Bounds, err error) {
	if idx != nil {
		ctx = utils.WithSeriesLabel(ctx, idx.Label())
	}
	logger := utils.GetLogger(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("FitY recover panic error!", zap.Any("err", r),
				zap.String("panic info", utils.GetPanicInfo()))
			res, err = model.NewBounds(), common.ErrorInvalidValue
		}
	}()

	if idx == nil || math.IsNaN(lowX) || math.IsNaN(highX) {
		logger.Error("invalid y fit window", zap.Float64("lowX", lowX), zap.Float64("highX", highX))
		return model.NewBounds(), common.ErrorInvalidValue
	}

	if idx.Count() == 0 {
		logger.Debug("skip y fit on empty series")
		return idx.Bounds(), common.ErrorEmptySeries
	}

	if lowX > highX {
		lowX, highX = highX, lowX
	}

	idx.RecomputeYBoundsInRange(lowX, highX)
	res = idx.Bounds()

	logger.Debug("y fit done", zap.Float64("yMin", res.YMin), zap.Float64("yMax", res.YMax))

	return res, nil
}

// IsInBoundsX reports whether e lies in the part of idx already revealed by
// an x animation at phaseX.
func IsInBoundsX(idx *series.Index, e *model.Entry, phaseX float64) bool {
	if idx == nil {
		return false
	}
	i := idx.IndexOf(e)
	if i == series.NotFound {
		return false
	}
	return float64(i) < float64(idx.Count())*phaseX
}
