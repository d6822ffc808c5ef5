package scoring

import "math"

// WeightSet maps sub-score names to non-negative weights. Weights need not
// sum to 1; Compose divides by the raw sum, so percentage-style weights work
// unchanged.
type WeightSet map[string]float64

// Weight key names shared by config parsing and the recompute services.
const (
	KeyViews         = "views"
	KeyCompares      = "compares"
	KeyWishlists     = "wishlists"
	KeyVelocity      = "velocity"
	KeyBuyerIntent   = "buyerIntent"
	KeyTrendVelocity = "trendVelocity"
	KeyFreshness     = "freshness"
)

func DefaultBuyerIntentWeights() WeightSet {
	return WeightSet{KeyWishlists: 0.6, KeyCompares: 0.4}
}

func DefaultTrendVelocityWeights() WeightSet {
	return WeightSet{KeyViews: 0.6, KeyCompares: 0.4}
}

func DefaultHookScoreWeights() WeightSet {
	return WeightSet{KeyBuyerIntent: 0.4, KeyTrendVelocity: 0.35, KeyFreshness: 0.25}
}

func DefaultTrendingWeights() WeightSet {
	return WeightSet{KeyViews: 0.5, KeyCompares: 0.2, KeyVelocity: 0.3}
}

// NormalizeWeights resolves a caller-supplied set against defaults. A missing,
// negative or non-finite entry takes that key's default; a set whose resolved
// sum is not positive is replaced wholesale by the defaults. Keys outside the
// default set are ignored so stale config entries cannot skew a composite.
func NormalizeWeights(supplied, defaults WeightSet) WeightSet {
	resolved := make(WeightSet, len(defaults))
	sum := 0.0
	for key, def := range defaults {
		w, ok := supplied[key]
		if !ok || w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			w = def
		}
		resolved[key] = w
		sum += w
	}
	if sum <= 0 {
		for key, def := range defaults {
			resolved[key] = def
		}
	}
	return resolved
}

// Compose combines named sub-scores into one weighted average, clamped to
// [0,100]. Sub-scores without a weight key contribute nothing; weight keys
// without a sub-score treat the score as zero.
func Compose(scores, weights, defaults WeightSet) float64 {
	resolved := NormalizeWeights(weights, defaults)
	var weightedSum, weightSum float64
	for key, w := range resolved {
		if w <= 0 {
			continue
		}
		weightedSum += scores[key] * w
		weightSum += w
	}
	if weightSum <= 0 {
		return 0
	}
	return Clamp(weightedSum/weightSum, 0, 100)
}
