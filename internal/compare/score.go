package compare

import "strings"

// Calibration constants for the spec sub-scores. Neutral values apply when a
// field is missing so incomplete data lands below average instead of at zero.
const (
	neutralRefreshPoints = 30.0
	neutralPanelPoints   = 25.0
	neutralMegapixelPts  = 30.0
	neutralSensorPoints  = 10.0
	neutralBatteryScore  = 35.0
)

func performanceScore(cpuSpec interface{}, table []ChipsetEntry) float64 {
	spec := asSpecMap(cpuSpec)
	text, ok := lookupString(spec, "processor", "chipset", "cpu", "soc", "name", "model")
	if !ok {
		return neutralChipsetScore
	}
	return chipsetScore(text, table)
}

// displayScore is refresh-rate points (60-165Hz mapped to 20-60) plus panel
// tier points, clamped to [0,100].
func displayScore(displaySpec interface{}) float64 {
	spec := asSpecMap(displaySpec)

	refreshPts := neutralRefreshPoints
	if hz, ok := lookupNumber(spec, "refresh_rate", "refreshRate", "refresh", "hz"); ok && hz > 0 {
		refreshPts = clampRange(20+(hz-60)*(40.0/105.0), 20, 60)
	}

	panelPts := neutralPanelPoints
	if panel, ok := lookupString(spec, "panel", "panel_type", "panelType", "technology", "display_type", "type"); ok {
		panelPts = panelPoints(panel)
	}

	return clampRange(refreshPts+panelPts, 0, 100)
}

func panelPoints(panel string) float64 {
	p := strings.ToLower(panel)
	switch {
	case strings.Contains(p, "ltpo"):
		return 40
	case strings.Contains(p, "amoled"), strings.Contains(p, "oled"):
		return 34
	case strings.Contains(p, "mini-led"), strings.Contains(p, "mini led"), strings.Contains(p, "miniled"):
		return 33
	case strings.Contains(p, "ips"):
		return 24
	case strings.Contains(p, "lcd"):
		return 22
	case strings.Contains(p, "tft"):
		return 15
	default:
		return neutralPanelPoints
	}
}

// cameraScore is main-sensor megapixel points (linear, capped) plus rear
// sensor count points (bounded), clamped to [0,100].
func cameraScore(cameraSpec interface{}) float64 {
	spec := asSpecMap(cameraSpec)

	mpPts := neutralMegapixelPts
	if mp, ok := lookupNumber(spec, "main_mp", "mainMp", "main", "megapixels", "mp"); ok && mp > 0 {
		mpPts = clampRange(mp*0.45, 0, 60)
	}

	sensorPts := neutralSensorPoints
	if count, ok := lookupListLen(spec, "sensors", "lenses", "rear_cameras"); ok {
		sensorPts = clampRange(float64(count)*10, 10, 40)
	} else if count, ok := lookupNumber(spec, "sensor_count", "sensorCount", "lens_count", "cameras"); ok && count > 0 {
		sensorPts = clampRange(count*10, 10, 40)
	}

	return clampRange(mpPts+sensorPts, 0, 100)
}

// batteryScore is a fixed-breakpoint step function over capacity in mAh.
// Unknown capacity scores below average rather than zero: missing data is not
// punished as harshly as genuinely small batteries.
func batteryScore(batterySpec interface{}) float64 {
	spec := asSpecMap(batterySpec)
	capacity, ok := lookupNumber(spec, "capacity", "capacity_mah", "capacityMah", "mah", "battery_capacity")
	if !ok || capacity <= 0 {
		return neutralBatteryScore
	}
	switch {
	case capacity <= 3000:
		return 25
	case capacity <= 3800:
		return 40
	case capacity <= 4500:
		return 55
	case capacity <= 5000:
		return 70
	case capacity <= 5500:
		return 80
	case capacity <= 6000:
		return 90
	default:
		return 100
	}
}
