package quantity

import (
	"math"
	"strconv"
)

// FormatQuantity renders a numeric amount for display. Values of ten or more
// are rounded to whole numbers, smaller values keep one decimal place.
func FormatQuantity(value float64) string {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return "0"
	}

	var rounded float64
	switch {
	case value >= 10:
		rounded = math.Round(value)
	default:
		rounded = math.Round(value*10) / 10
		if rounded == 0 && value > 0 {
			// keep tiny amounts (a pinch of 0.04 tsp) visible
			rounded = math.Round(value*100) / 100
		}
	}

	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

func withUnit(value float64, unit string) string {
	if unit == "" {
		return FormatQuantity(value)
	}
	return FormatQuantity(value) + " " + unit
}
