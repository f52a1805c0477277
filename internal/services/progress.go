package services

import (
	"math"
	"strconv"
)

type Progress struct {
	Current              float64
	Target               float64
	Recommendation       float64
	Percentage           int
	RecommendationMarker float64
	CurrentLabel         string
	TargetLabel          string
	RecommendationLabel  string
	Unit                 string
}

// ProgressPercentage is min(100, round(current/target*100)). A target of zero or less yields 0.
func ProgressPercentage(current float64, target float64) int {
	if target <= 0 || math.IsNaN(target) || math.IsNaN(current) {
		return 0
	}
	percentage := math.Round(current / target * 100)
	if percentage > 100 {
		return 100
	}
	if percentage < 0 {
		return 0
	}
	return int(percentage)
}

// FormatAmount renders gram amounts under 10 with one decimal, everything else as an integer.
func FormatAmount(value float64, unit string) string {
	if unit == "g" && value < 10 {
		return strconv.FormatFloat(value, 'f', 1, 64)
	}
	return strconv.FormatFloat(math.Round(value), 'f', 0, 64)
}

func recommendationMarker(recommendation float64, target float64) float64 {
	if recommendation <= 0 || target <= 0 {
		return 0
	}
	return math.Min(recommendation/target*100, 100)
}

func BuildProgress(current float64, target float64, recommendation float64, unit string) Progress {
	progress := Progress{
		Current:              current,
		Target:               target,
		Recommendation:       recommendation,
		Percentage:           ProgressPercentage(current, target),
		RecommendationMarker: recommendationMarker(recommendation, target),
		CurrentLabel:         FormatAmount(current, unit),
		TargetLabel:          FormatAmount(target, unit),
		Unit:                 unit,
	}
	if recommendation > 0 {
		progress.RecommendationLabel = FormatAmount(recommendation, unit)
	}
	return progress
}
