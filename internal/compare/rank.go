package compare

import (
	"sort"

	"github.com/google/uuid"

	"github.com/techkart/techkart-backend/internal/scoring"
)

// Weight keys for the compare composite.
const (
	KeyPerformance = "performance"
	KeyDisplay     = "display"
	KeyCamera      = "camera"
	KeyBattery     = "battery"
	KeyValue       = "value"
)

const (
	// Value score bounds and fixed points for unresolvable cases.
	valueScoreFloor   = 35.0
	valueScoreCeiling = 100.0
	neutralValueScore = 45.0
	tiedValueScore    = 70.0
)

func DefaultWeights() scoring.WeightSet {
	return scoring.WeightSet{
		KeyPerformance: 0.30,
		KeyDisplay:     0.20,
		KeyCamera:      0.20,
		KeyBattery:     0.15,
		KeyValue:       0.15,
	}
}

// Device is one comparison candidate. Spec blocks are loosely structured;
// Price is the resolved price for this request (selected variant, else
// cheapest variant, else catalog fallback) with <= 0 meaning unresolvable.
type Device struct {
	ProductID   uuid.UUID
	Name        string
	Price       float64
	CPUSpec     interface{}
	DisplaySpec interface{}
	CameraSpec  interface{}
	BatterySpec interface{}
}

// Config is the optional per-request scoring override.
type Config struct {
	Weights      scoring.WeightSet `json:"weights,omitempty"`
	ChipsetTable []ChipsetEntry    `json:"chipset_table,omitempty"`
}

type Breakdown struct {
	Performance float64 `json:"performance"`
	Display     float64 `json:"display"`
	Camera      float64 `json:"camera"`
	Battery     float64 `json:"battery"`
}

type RankedDevice struct {
	ProductID    uuid.UUID `json:"productId"`
	DeviceName   string    `json:"deviceName"`
	Price        float64   `json:"price"`
	Breakdown    Breakdown `json:"breakdown"`
	ValueScore   float64   `json:"valueScore"`
	OverallScore float64   `json:"overallScore"`
	Rank         int       `json:"rank"`
}

// Rank scores every device and returns them ordered best-first with 1-based
// ranks. Pure computation: no I/O, deterministic for identical input. An
// empty device list yields an empty ranking, not an error; a device with
// entirely empty specs still gets a full neutral breakdown.
func Rank(devices []Device, cfg Config) []RankedDevice {
	if len(devices) == 0 {
		return []RankedDevice{}
	}

	weights := scoring.NormalizeWeights(cfg.Weights, DefaultWeights())
	table := cfg.ChipsetTable

	out := make([]RankedDevice, len(devices))
	for i, d := range devices {
		out[i] = RankedDevice{
			ProductID:  d.ProductID,
			DeviceName: d.Name,
			Price:      d.Price,
			Breakdown: Breakdown{
				Performance: performanceScore(d.CPUSpec, table),
				Display:     displayScore(d.DisplaySpec),
				Camera:      cameraScore(d.CameraSpec),
				Battery:     batteryScore(d.BatterySpec),
			},
		}
	}

	applyValueScores(devices, out, weights)

	for i := range out {
		out[i].OverallScore = scoring.Compose(scoring.WeightSet{
			KeyPerformance: out[i].Breakdown.Performance,
			KeyDisplay:     out[i].Breakdown.Display,
			KeyCamera:      out[i].Breakdown.Camera,
			KeyBattery:     out[i].Breakdown.Battery,
			KeyValue:       out[i].ValueScore,
		}, weights, DefaultWeights())
	}

	sort.SliceStable(out, func(a, b int) bool {
		if out[a].OverallScore != out[b].OverallScore {
			return out[a].OverallScore > out[b].OverallScore
		}
		pa, pb := tiePrice(out[a].Price), tiePrice(out[b].Price)
		if pa != pb {
			return pa < pb
		}
		return out[a].DeviceName < out[b].DeviceName
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}

// applyValueScores computes the price-value signal relative to the candidate
// set only: baseSpec/price ratios rescaled within [min,max] of the set to
// [35,100]. No resolvable price gets the fixed neutral score; a set where all
// resolvable prices produce the same ratio gets the fixed tie score.
func applyValueScores(devices []Device, out []RankedDevice, weights scoring.WeightSet) {
	specWeights := scoring.WeightSet{
		KeyPerformance: weights[KeyPerformance],
		KeyDisplay:     weights[KeyDisplay],
		KeyCamera:      weights[KeyCamera],
		KeyBattery:     weights[KeyBattery],
	}

	ratios := make([]float64, len(devices))
	priced := make([]bool, len(devices))
	minRatio, maxRatio := 0.0, 0.0
	seen := false
	for i, d := range devices {
		if d.Price <= 0 {
			continue
		}
		baseSpec := scoring.Compose(scoring.WeightSet{
			KeyPerformance: out[i].Breakdown.Performance,
			KeyDisplay:     out[i].Breakdown.Display,
			KeyCamera:      out[i].Breakdown.Camera,
			KeyBattery:     out[i].Breakdown.Battery,
		}, specWeights, specWeights)
		ratios[i] = baseSpec / d.Price
		priced[i] = true
		if !seen || ratios[i] < minRatio {
			minRatio = ratios[i]
		}
		if !seen || ratios[i] > maxRatio {
			maxRatio = ratios[i]
		}
		seen = true
	}

	for i := range out {
		switch {
		case !priced[i]:
			out[i].ValueScore = neutralValueScore
		case maxRatio == minRatio:
			out[i].ValueScore = tiedValueScore
		default:
			span := maxRatio - minRatio
			out[i].ValueScore = valueScoreFloor + (ratios[i]-minRatio)/span*(valueScoreCeiling-valueScoreFloor)
		}
	}
}

// tiePrice orders unresolved prices after every real price in tie-breaks.
func tiePrice(p float64) float64 {
	if p <= 0 {
		return 1 << 50
	}
	return p
}
