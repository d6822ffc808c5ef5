package scoring

import "math"

const (
	// DefaultWindowDays is the length of the "recent" signal window; the
	// previous window always has the same length.
	DefaultWindowDays = 7

	// DefaultSmoothing damps the velocity ratio so a product with zero
	// previous-period activity gets a finite, non-negative velocity.
	DefaultSmoothing = 5.0

	// DefaultHalfLifeDays controls freshness decay.
	DefaultHalfLifeDays = 365.0
)

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MaxRelative rescales raw to [0,100] against the cohort maximum. A cohort
// where every raw value is zero normalizes to zero, never NaN.
func MaxRelative(raw, max float64) float64 {
	if raw <= 0 || max <= 0 {
		return 0
	}
	return Clamp(raw/max*100, 0, 100)
}

// VelocityRaw is the smoothed rate-of-change between the recent and previous
// windows: max(0, (recent+s)/(previous+s) - 1). Always >= 0 for non-negative
// counts and positive smoothing.
func VelocityRaw(recent, previous, smoothing float64) float64 {
	if smoothing <= 0 {
		smoothing = DefaultSmoothing
	}
	v := (recent+smoothing)/(previous+smoothing) - 1
	if v < 0 {
		return 0
	}
	return v
}

// Freshness decays exponentially with product age. Time-absolute on purpose:
// a product's freshness must not depend on what else is in the batch.
func Freshness(ageDays, halfLifeDays float64) float64 {
	if halfLifeDays <= 0 {
		halfLifeDays = DefaultHalfLifeDays
	}
	if ageDays < 0 {
		ageDays = 0
	}
	return Clamp(100*math.Exp(-ageDays/halfLifeDays), 0, 100)
}
