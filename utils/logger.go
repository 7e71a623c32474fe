package utils

import (
	"context"
	"runtime"

	"go.uber.org/zap"
)

type seriesLabelKey struct{}

func init() {
	zap.ReplaceGlobals(zap.Must(zap.NewProduction()))
}

// WithSeriesLabel tags ctx so loggers taken from it carry the series label.
func WithSeriesLabel(ctx context.Context, label string) context.Context {
	return context.WithValue(ctx, seriesLabelKey{}, label)
}

func SeriesLabel(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	label, ok := ctx.Value(seriesLabelKey{}).(string)
	return label, ok
}

func GetLogger(ctx context.Context) *zap.Logger {
	if label, ok := SeriesLabel(ctx); ok {
		return zap.L().With(zap.String("series", label))
	}
	return zap.L()
}

func GetPanicInfo() string {
	buf := make([]byte, 16384)
	l := runtime.Stack(buf, false)
	return string(buf[:l])
}
