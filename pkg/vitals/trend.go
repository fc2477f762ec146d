package vitals

type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendStable  Trend = "stable"
)

// stableBand is how far the primary value may move before it counts as a trend.
const stableBand = 0.5

// CompareTrend is the direction from prev to next. Measurements of different
// types are always stable.
func CompareTrend(prev, next Measurement) Trend {
	if prev.Type != next.Type {
		return TrendStable
	}
	delta := next.Primary() - prev.Primary()
	switch {
	case delta > stableBand:
		return TrendRising
	case delta < -stableBand:
		return TrendFalling
	}
	return TrendStable
}
