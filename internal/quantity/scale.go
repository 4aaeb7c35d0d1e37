package quantity

import "math"

// ScaleAmount rescales raw from baseServings to targetServings. The unit
// token is kept as parsed; opaque amounts and unusable serving counts return
// raw unchanged.
func ScaleAmount(raw string, targetServings, baseServings float64) string {
	if !finite(targetServings) || !finite(baseServings) || baseServings <= 0 || targetServings < 0 {
		return raw
	}
	q, ok := ParseAmount(raw)
	if !ok {
		return raw
	}
	return withUnit(q.Value*targetServings/baseServings, q.Unit)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
