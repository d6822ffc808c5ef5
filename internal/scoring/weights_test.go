package scoring

import (
	"math"
	"testing"
)

func TestNormalizeWeights(t *testing.T) {
	defaults := WeightSet{KeyViews: 0.5, KeyCompares: 0.2, KeyVelocity: 0.3}

	cases := []struct {
		name     string
		supplied WeightSet
		want     WeightSet
	}{
		{
			name:     "nil_supplied_uses_defaults",
			supplied: nil,
			want:     defaults,
		},
		{
			name:     "all_zero_falls_back_to_defaults",
			supplied: WeightSet{KeyViews: 0, KeyCompares: 0, KeyVelocity: 0},
			want:     defaults,
		},
		{
			name:     "negative_entry_takes_default",
			supplied: WeightSet{KeyViews: -1, KeyCompares: 0.2, KeyVelocity: 0.3},
			want:     WeightSet{KeyViews: 0.5, KeyCompares: 0.2, KeyVelocity: 0.3},
		},
		{
			name:     "nan_entry_takes_default",
			supplied: WeightSet{KeyViews: math.NaN(), KeyCompares: 0.2, KeyVelocity: 0.3},
			want:     WeightSet{KeyViews: 0.5, KeyCompares: 0.2, KeyVelocity: 0.3},
		},
		{
			name:     "partial_config_fills_missing_keys",
			supplied: WeightSet{KeyViews: 1},
			want:     WeightSet{KeyViews: 1, KeyCompares: 0.2, KeyVelocity: 0.3},
		},
		{
			name:     "percent_style_weights_preserved",
			supplied: WeightSet{KeyViews: 50, KeyCompares: 20, KeyVelocity: 30},
			want:     WeightSet{KeyViews: 50, KeyCompares: 20, KeyVelocity: 30},
		},
		{
			name:     "unknown_keys_dropped",
			supplied: WeightSet{KeyViews: 0.5, KeyCompares: 0.2, KeyVelocity: 0.3, "bogus": 99},
			want:     WeightSet{KeyViews: 0.5, KeyCompares: 0.2, KeyVelocity: 0.3},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeWeights(tc.supplied, defaults)
			if len(got) != len(tc.want) {
				t.Fatalf("NormalizeWeights returned %d keys, want %d", len(got), len(tc.want))
			}
			for k, w := range tc.want {
				if got[k] != w {
					t.Fatalf("NormalizeWeights[%s]=%v, want %v", k, got[k], w)
				}
			}
		})
	}
}

func TestCompose(t *testing.T) {
	defaults := WeightSet{KeyBuyerIntent: 0.4, KeyTrendVelocity: 0.35, KeyFreshness: 0.25}

	cases := []struct {
		name    string
		scores  WeightSet
		weights WeightSet
		want    float64
	}{
		{
			name:   "equal_scores_compose_to_same_value",
			scores: WeightSet{KeyBuyerIntent: 80, KeyTrendVelocity: 80, KeyFreshness: 80},
			want:   80,
		},
		{
			name:    "weighted_average_not_weighted_sum",
			scores:  WeightSet{KeyBuyerIntent: 100, KeyTrendVelocity: 0, KeyFreshness: 0},
			weights: WeightSet{KeyBuyerIntent: 1, KeyTrendVelocity: 1, KeyFreshness: 2},
			want:    25,
		},
		{
			name:    "all_zero_weights_fall_back",
			scores:  WeightSet{KeyBuyerIntent: 50, KeyTrendVelocity: 50, KeyFreshness: 50},
			weights: WeightSet{KeyBuyerIntent: 0, KeyTrendVelocity: 0, KeyFreshness: 0},
			want:    50,
		},
		{
			name:   "missing_scores_count_as_zero",
			scores: WeightSet{KeyBuyerIntent: 100},
			want:   40,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Compose(tc.scores, tc.weights, defaults)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("Compose=%v, want %v", got, tc.want)
			}
			if got < 0 || got > 100 || math.IsNaN(got) {
				t.Fatalf("Compose=%v out of [0,100]", got)
			}
		})
	}
}

func TestComposeClampsToHundred(t *testing.T) {
	defaults := WeightSet{KeyViews: 1}
	got := Compose(WeightSet{KeyViews: 250}, nil, defaults)
	if got != 100 {
		t.Fatalf("Compose with oversized score=%v, want clamp to 100", got)
	}
}
