package quantity

const (
	gramsPerOunce     = 28.3495
	gramsPerPound     = 453.592
	kilogramsPerPound = 0.453592
	mlPerCup          = 240.0
	mlPerTablespoon   = 15.0
	mlPerTeaspoon     = 5.0
	mlPerFluidOunce   = 29.5735
)

// ConvertAmount converts raw into the target measurement system. Amounts
// that are opaque, carry no recognizable unit, or target an unknown system
// are returned unchanged.
func ConvertAmount(raw string, target System) string {
	if target != Metric && target != US {
		return raw
	}
	q, ok := ParseAmount(raw)
	if !ok {
		return raw
	}
	unit, ok := NormalizeUnit(q.Unit)
	if !ok {
		return raw
	}
	if unit.System() == target {
		return withUnit(q.Value, q.Unit)
	}

	var value float64
	var to Unit
	if target == Metric {
		value, to = toMetric(q.Value, unit)
	} else {
		value, to = toUS(q.Value, unit)
	}
	return withUnit(value, string(to))
}

func toMetric(v float64, from Unit) (float64, Unit) {
	switch from {
	case Ounce:
		return promote(v*gramsPerOunce, Gram)
	case Pound:
		return promote(v*gramsPerPound, Gram)
	case Cup:
		return promote(v*mlPerCup, Milliliter)
	case Tablespoon:
		return promote(v*mlPerTablespoon, Milliliter)
	case Teaspoon:
		return promote(v*mlPerTeaspoon, Milliliter)
	case FluidOunce:
		return promote(v*mlPerFluidOunce, Milliliter)
	}
	return v, from
}

// promote moves metric results of 1000 or more to the next larger unit.
func promote(v float64, u Unit) (float64, Unit) {
	if v < 1000 {
		return v, u
	}
	switch u {
	case Gram:
		return v / 1000, Kilogram
	case Milliliter:
		return v / 1000, Liter
	}
	return v, u
}

func toUS(v float64, from Unit) (float64, Unit) {
	switch from {
	case Gram:
		return v / gramsPerOunce, Ounce
	case Kilogram:
		return v / kilogramsPerPound, Pound
	case Milliliter:
		if v >= mlPerCup {
			return v / mlPerCup, Cup
		}
		return v / mlPerFluidOunce, FluidOunce
	case Liter:
		return v * 1000 / mlPerCup, Cup
	}
	return v, from
}
