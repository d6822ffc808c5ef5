package compare

import (
	"testing"

	"github.com/google/uuid"
)

func phone(name string, price float64, cpu string) Device {
	return Device{
		ProductID: uuid.New(),
		Name:      name,
		Price:     price,
		CPUSpec:   map[string]interface{}{"processor": cpu},
		DisplaySpec: map[string]interface{}{
			"refresh_rate": 120,
			"panel":        "AMOLED",
		},
		CameraSpec: map[string]interface{}{
			"main_mp": 50,
			"sensors": []interface{}{"main", "ultrawide", "tele"},
		},
		BatterySpec: map[string]interface{}{"capacity": 5000},
	}
}

func TestRankEmptyInput(t *testing.T) {
	got := Rank(nil, Config{})
	if got == nil || len(got) != 0 {
		t.Fatalf("Rank(nil)=%v, want empty slice", got)
	}
}

func TestRankOrdersByScoreThenPriceThenName(t *testing.T) {
	// Identical hardware: composites tie, the cheaper device must win; equal
	// prices fall back to lexicographic name order.
	devices := []Device{
		phone("Zephyr Z1", 900, "Snapdragon 8 Gen 2"),
		phone("Alpha A1", 700, "Snapdragon 8 Gen 2"),
		phone("Beta B1", 700, "Snapdragon 8 Gen 2"),
	}
	got := Rank(devices, Config{})
	wantOrder := []string{"Alpha A1", "Beta B1", "Zephyr Z1"}
	for i, want := range wantOrder {
		if got[i].DeviceName != want {
			t.Fatalf("rank %d = %s, want %s (full: %+v)", i+1, got[i].DeviceName, want, got)
		}
		if got[i].Rank != i+1 {
			t.Fatalf("rank field = %d, want %d", got[i].Rank, i+1)
		}
	}
}

func TestRankStrongerHardwareWins(t *testing.T) {
	devices := []Device{
		phone("Budget", 500, "Helio G99"),
		phone("Flagship", 500, "Snapdragon 8 Elite"),
	}
	got := Rank(devices, Config{})
	if got[0].DeviceName != "Flagship" {
		t.Fatalf("expected Flagship first, got %+v", got)
	}
	if got[0].OverallScore <= got[1].OverallScore {
		t.Fatalf("flagship score %v not above budget %v", got[0].OverallScore, got[1].OverallScore)
	}
}

func TestRankEmptySpecsStillIncluded(t *testing.T) {
	devices := []Device{
		phone("Complete", 800, "Snapdragon 8 Gen 3"),
		{ProductID: uuid.New(), Name: "Mystery", Price: 0},
	}
	got := Rank(devices, Config{})
	if len(got) != 2 {
		t.Fatalf("device with empty specs dropped: %+v", got)
	}
	var mystery RankedDevice
	for _, r := range got {
		if r.DeviceName == "Mystery" {
			mystery = r
		}
	}
	if mystery.Breakdown.Performance != neutralChipsetScore {
		t.Fatalf("performance=%v, want neutral %v", mystery.Breakdown.Performance, neutralChipsetScore)
	}
	if mystery.Breakdown.Battery != neutralBatteryScore {
		t.Fatalf("battery=%v, want neutral %v", mystery.Breakdown.Battery, neutralBatteryScore)
	}
	if mystery.ValueScore != neutralValueScore {
		t.Fatalf("value=%v, want neutral %v for unresolvable price", mystery.ValueScore, neutralValueScore)
	}
	if mystery.OverallScore < 0 || mystery.OverallScore > 100 {
		t.Fatalf("overall=%v out of [0,100]", mystery.OverallScore)
	}
}

func TestRankValueScoreSetRelative(t *testing.T) {
	// Same hardware at different prices: the cheaper device has the higher
	// spec-per-price ratio, so value scores span the [35,100] band.
	devices := []Device{
		phone("Cheap", 400, "Snapdragon 8 Gen 2"),
		phone("Pricey", 1200, "Snapdragon 8 Gen 2"),
	}
	got := Rank(devices, Config{})
	var cheap, pricey RankedDevice
	for _, r := range got {
		switch r.DeviceName {
		case "Cheap":
			cheap = r
		case "Pricey":
			pricey = r
		}
	}
	if cheap.ValueScore != valueScoreCeiling {
		t.Fatalf("cheap value=%v, want %v", cheap.ValueScore, valueScoreCeiling)
	}
	if pricey.ValueScore != valueScoreFloor {
		t.Fatalf("pricey value=%v, want %v", pricey.ValueScore, valueScoreFloor)
	}
	if got[0].DeviceName != "Cheap" {
		t.Fatalf("expected cheaper device to rank first on value, got %+v", got)
	}
}

func TestRankEqualPricesGetTiedValueScore(t *testing.T) {
	devices := []Device{
		phone("One", 650, "Snapdragon 8 Gen 2"),
		phone("Two", 650, "Snapdragon 8 Gen 2"),
	}
	for _, r := range Rank(devices, Config{}) {
		if r.ValueScore != tiedValueScore {
			t.Fatalf("value=%v, want tied %v", r.ValueScore, tiedValueScore)
		}
	}
}

func TestRankCustomWeights(t *testing.T) {
	perfOnly := Config{Weights: map[string]float64{
		KeyPerformance: 1, KeyDisplay: 0, KeyCamera: 0, KeyBattery: 0, KeyValue: 0,
	}}
	devices := []Device{
		phone("BigBattery", 500, "Helio G99"),
		phone("FastChip", 900, "Snapdragon 8 Elite"),
	}
	devices[0].BatterySpec = map[string]interface{}{"capacity": 7000}
	got := Rank(devices, perfOnly)
	if got[0].DeviceName != "FastChip" {
		t.Fatalf("performance-only weights should rank FastChip first: %+v", got)
	}
	if got[0].OverallScore != 100 {
		t.Fatalf("performance-only composite=%v, want 100", got[0].OverallScore)
	}
}
