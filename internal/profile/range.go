// Package profile collects value ranges while float kernels run, so that a
// fixed-point build of the same model can pick its scales.
package profile

import (
	"context"
	"log/slog"
	"math"
)

// Range tracks the smallest and largest value it has observed.
//
// Range implements kernels.RangeObserver; pass it to kernels.Exp to record
// the exponent range of a model. It is not safe for concurrent use.
type Range struct {
	name  string
	min   float64
	max   float64
	count int
}

// NewRange returns an empty Range labeled name in log output.
func NewRange(name string) *Range {
	r := &Range{name: name}
	r.Reset()
	return r
}

// Observe widens the range to include v. NaN values are counted but do not
// move the bounds.
func (r *Range) Observe(v float64) {
	r.count++
	if math.IsNaN(v) {
		return
	}
	r.min = math.Min(r.min, v)
	r.max = math.Max(r.max, v)
}

// Reset forgets every observation.
func (r *Range) Reset() {
	r.min = math.Inf(1)
	r.max = math.Inf(-1)
	r.count = 0
}

// Name returns the label given to NewRange.
func (r *Range) Name() string { return r.name }

// Count returns the number of observations since the last Reset.
func (r *Range) Count() int { return r.count }

// Min returns the smallest observed value, or +Inf when nothing was observed.
func (r *Range) Min() float64 { return r.min }

// Max returns the largest observed value, or -Inf when nothing was observed.
func (r *Range) Max() float64 { return r.max }

// Empty reports whether no finite bound has been recorded.
func (r *Range) Empty() bool {
	return r.min > r.max
}

// LogValue implements slog.LogValuer.
func (r *Range) LogValue() slog.Value {
	if r.Empty() {
		return slog.GroupValue(
			slog.String("name", r.name),
			slog.Int("count", r.count),
		)
	}
	return slog.GroupValue(
		slog.String("name", r.name),
		slog.Int("count", r.count),
		slog.Float64("min", r.min),
		slog.Float64("max", r.max),
	)
}

// Log writes the range to logger at info level, or at debug level when
// nothing was observed.
func (r *Range) Log(ctx context.Context, logger *slog.Logger) {
	level := slog.LevelInfo
	if r.count == 0 {
		level = slog.LevelDebug
	}
	logger.Log(ctx, level, "profiled range", "range", r)
}
