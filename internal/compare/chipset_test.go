package compare

import (
	"math"
	"testing"
)

func TestChipsetScoreTableHits(t *testing.T) {
	cases := []struct {
		name string
		text string
		want float64
	}{
		{name: "flagship_elite", text: "Qualcomm Snapdragon 8 Elite", want: 100},
		{name: "gen3_direct_hit", text: "Snapdragon 8 Gen 3", want: 95},
		{name: "specific_before_prefix", text: "Snapdragon 8s Gen 3", want: 87},
		{name: "plus_variant", text: "Snapdragon 8+ Gen 1 Mobile Platform", want: 86},
		{name: "dimensity_flagship", text: "MediaTek Dimensity 9300", want: 93},
		{name: "apple_pro", text: "Apple A17 Pro", want: 97},
		{name: "budget_helio", text: "Helio G99 Ultra", want: 48},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := chipsetScore(tc.text, nil)
			if got != tc.want {
				t.Fatalf("chipsetScore(%q)=%v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestChipsetScoreHeuristics(t *testing.T) {
	cases := []struct {
		name string
		text string
		want float64
	}{
		// 50 + 8*8 + 5*2 = 124, clamped to the 96 ceiling so table entries
		// stay authoritative.
		{name: "snapdragon_future_gen_clamped", text: "Snapdragon 8 Gen 5", want: 96},
		{name: "snapdragon_low_series", text: "Snapdragon 4 Gen 2", want: 86},
		// 30 + 9500/150, not a round number.
		{name: "dimensity_numeric", text: "Dimensity 9500", want: 280.0 / 3},
		{name: "apple_future_chip", text: "Apple A19 Bionic", want: 98},
		{name: "unknown_text_neutral", text: "Octa-core 2.4GHz", want: 60},
		{name: "empty_text_neutral", text: "", want: 60},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := chipsetScore(tc.text, nil)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("chipsetScore(%q)=%v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestChipsetScoreCustomTable(t *testing.T) {
	custom := []ChipsetEntry{
		{Keyword: "HouseBrand X1", Score: 90},
		{Keyword: "   ", Score: 50},
		{Keyword: "bogus", Score: -5},
	}
	if got := chipsetScore("housebrand x1 pro", custom); got != 90 {
		t.Fatalf("custom table hit=%v, want 90", got)
	}
	// Custom table replaces the default table, so a default keyword now falls
	// through to the regex heuristics.
	if got := chipsetScore("Snapdragon 8 Gen 3", custom); got != 96 {
		t.Fatalf("custom table miss on default keyword=%v, want heuristic 96", got)
	}
	// An override with no valid entries falls back to the default table.
	invalid := []ChipsetEntry{{Keyword: "", Score: 0}}
	if got := chipsetScore("Snapdragon 8 Gen 3", invalid); got != 95 {
		t.Fatalf("invalid override=%v, want default table 95", got)
	}
}
