package compare

import (
	"regexp"
	"strconv"
	"strings"
)

// ChipsetEntry maps a lowercase substring of the marketing name to a fixed
// score. The table is ordered: more specific entries must come before their
// prefixes ("snapdragon 8 elite" before "snapdragon 8"), first match wins.
type ChipsetEntry struct {
	Keyword string  `json:"keyword"`
	Score   float64 `json:"score"`
}

const neutralChipsetScore = 60

// DefaultChipsetTable is the built-in calibration for current phone silicon.
// Callers may override per request; invalid overrides fall back here.
func DefaultChipsetTable() []ChipsetEntry {
	return []ChipsetEntry{
		{Keyword: "snapdragon 8 elite", Score: 100},
		{Keyword: "snapdragon 8s gen 3", Score: 87},
		{Keyword: "snapdragon 8 gen 3", Score: 95},
		{Keyword: "snapdragon 8 gen 2", Score: 90},
		{Keyword: "snapdragon 8+ gen 1", Score: 86},
		{Keyword: "snapdragon 8 gen 1", Score: 84},
		{Keyword: "snapdragon 7+ gen 3", Score: 78},
		{Keyword: "snapdragon 7 gen 3", Score: 72},
		{Keyword: "snapdragon 6 gen 1", Score: 58},
		{Keyword: "dimensity 9400", Score: 96},
		{Keyword: "dimensity 9300", Score: 93},
		{Keyword: "dimensity 9200", Score: 88},
		{Keyword: "dimensity 8300", Score: 76},
		{Keyword: "dimensity 7200", Score: 64},
		{Keyword: "a18 pro", Score: 100},
		{Keyword: "a18", Score: 96},
		{Keyword: "a17 pro", Score: 97},
		{Keyword: "a16", Score: 93},
		{Keyword: "a15", Score: 88},
		{Keyword: "exynos 2400", Score: 87},
		{Keyword: "exynos 2200", Score: 78},
		{Keyword: "tensor g4", Score: 85},
		{Keyword: "tensor g3", Score: 80},
		{Keyword: "kirin 9010", Score: 82},
		{Keyword: "helio g99", Score: 48},
	}
}

var (
	snapdragonGenRe = regexp.MustCompile(`snapdragon\s+(\d)\s*(?:\+|s)?\s*gen\s+(\d+)`)
	dimensityRe     = regexp.MustCompile(`dimensity\s+(\d{3,4})`)
	appleChipRe     = regexp.MustCompile(`\ba(\d{2})\b`)
)

// chipsetScore resolves the processor text against the table, then against
// numeric pattern heuristics for chips newer than the table, then neutral.
func chipsetScore(text string, table []ChipsetEntry) float64 {
	normalized := strings.ToLower(strings.TrimSpace(text))
	if normalized == "" {
		return neutralChipsetScore
	}

	for _, entry := range sanitizeChipsetTable(table) {
		if strings.Contains(normalized, entry.Keyword) {
			return entry.Score
		}
	}

	if m := snapdragonGenRe.FindStringSubmatch(normalized); m != nil {
		series, _ := strconv.ParseFloat(m[1], 64)
		gen, _ := strconv.ParseFloat(m[2], 64)
		// Table entries stay authoritative: the clamp ceiling sits just under
		// the flagship keyword score.
		return clampRange(50+series*8+gen*2, 52, 96)
	}
	if m := dimensityRe.FindStringSubmatch(normalized); m != nil {
		model, _ := strconv.ParseFloat(m[1], 64)
		return clampRange(30+model/150, 45, 94)
	}
	if m := appleChipRe.FindStringSubmatch(normalized); m != nil {
		nn, _ := strconv.ParseFloat(m[1], 64)
		return clampRange(30+nn*4, 60, 98)
	}

	return neutralChipsetScore
}

// sanitizeChipsetTable drops unusable override entries; an override with
// nothing usable left means the default table applies.
func sanitizeChipsetTable(table []ChipsetEntry) []ChipsetEntry {
	valid := make([]ChipsetEntry, 0, len(table))
	for _, e := range table {
		kw := strings.ToLower(strings.TrimSpace(e.Keyword))
		if kw == "" || e.Score <= 0 {
			continue
		}
		valid = append(valid, ChipsetEntry{Keyword: kw, Score: clampRange(e.Score, 0, 100)})
	}
	if len(valid) == 0 {
		return DefaultChipsetTable()
	}
	return valid
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
