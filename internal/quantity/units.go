package quantity

import "strings"

// Unit is a canonical measurement unit symbol.
type Unit string

const (
	Gram       Unit = "g"
	Kilogram   Unit = "kg"
	Milliliter Unit = "ml"
	Liter      Unit = "l"
	Ounce      Unit = "oz"
	Pound      Unit = "lb"
	Cup        Unit = "cup"
	Tablespoon Unit = "tbsp"
	Teaspoon   Unit = "tsp"
	FluidOunce Unit = "fl oz"
)

// System is a family of measurement units.
type System string

const (
	Metric System = "metric"
	US     System = "us"
)

// ParseSystem maps a user preference string to a System.
func ParseSystem(s string) (System, bool) {
	switch System(strings.ToLower(strings.TrimSpace(s))) {
	case Metric:
		return Metric, true
	case US:
		return US, true
	}
	return "", false
}

// System reports which measurement family the unit belongs to.
func (u Unit) System() System {
	switch u {
	case Gram, Kilogram, Milliliter, Liter:
		return Metric
	case Ounce, Pound, Cup, Tablespoon, Teaspoon, FluidOunce:
		return US
	}
	return ""
}

// unitAliases maps lowercased spellings (English and German) to canonical units.
var unitAliases = map[string]Unit{
	"g":     Gram,
	"gram":  Gram,
	"grams": Gram,
	"gramm": Gram,

	"kg":         Kilogram,
	"kilogram":   Kilogram,
	"kilograms":  Kilogram,
	"kilogramm":  Kilogram,
	"kilogramme": Kilogram,

	"ml":          Milliliter,
	"milliliter":  Milliliter,
	"milliliters": Milliliter,
	"millilitre":  Milliliter,
	"millilitres": Milliliter,

	"l":      Liter,
	"liter":  Liter,
	"liters": Liter,
	"litre":  Liter,
	"litres": Liter,

	"oz":     Ounce,
	"ounce":  Ounce,
	"ounces": Ounce,

	"lb":     Pound,
	"lbs":    Pound,
	"pound":  Pound,
	"pounds": Pound,

	"cup":    Cup,
	"cups":   Cup,
	"tasse":  Cup,
	"tassen": Cup,

	"tbsp":        Tablespoon,
	"tbs":         Tablespoon,
	"tablespoon":  Tablespoon,
	"tablespoons": Tablespoon,
	"el":          Tablespoon,
	"esslöffel":   Tablespoon,

	"tsp":       Teaspoon,
	"teaspoon":  Teaspoon,
	"teaspoons": Teaspoon,
	"tl":        Teaspoon,
	"teelöffel": Teaspoon,

	"fl oz":        FluidOunce,
	"floz":         FluidOunce,
	"fluid ounce":  FluidOunce,
	"fluid ounces": FluidOunce,
}

// NormalizeUnit maps a raw unit token to its canonical unit. Unknown tokens
// report ok == false and should be treated as opaque.
func NormalizeUnit(token string) (Unit, bool) {
	key := strings.Join(strings.Fields(strings.ToLower(token)), " ")
	if key == "" {
		return "", false
	}
	u, ok := unitAliases[key]
	return u, ok
}
