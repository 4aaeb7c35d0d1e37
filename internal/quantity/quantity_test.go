package quantity

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatQuantity(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0.3333, "0.3"},
		{12.7, "13"},
		{1.5, "1.5"},
		{2, "2"},
		{9.96, "10"},
		{10.4, "10"},
		{453.592, "454"},
		{0, "0"},
		{0.04, "0.04"},
		{0.001, "0"},
		{-1, "0"},
		{math.Copysign(0, -1), "0"},
		{math.NaN(), "0"},
		{math.Inf(1), "0"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatQuantity(tt.value), "value %v", tt.value)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		raw   string
		value float64
		unit  string
	}{
		{"1 1/2 cups", 1.5, "cups"},
		{"3/4", 0.75, ""},
		{"2,5 g", 2.5, "g"},
		{"2.5", 2.5, ""},
		{"200g", 200, "g"},
		{"  2 Fl Oz ", 2, "fl oz"},
		{"2 große Zwiebeln", 2, "große zwiebeln"},
		{"1⁄2 tsp", 0.5, "tsp"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			q, ok := ParseAmount(tt.raw)
			assert.True(t, ok)
			assert.InDelta(t, tt.value, q.Value, 1e-9)
			assert.Equal(t, tt.unit, q.Unit)
		})
	}
}

func TestParseAmountRejectsOpaqueText(t *testing.T) {
	for _, raw := range []string{
		"",
		"   ",
		"to taste",
		"Salz nach Geschmack",
		"n.G.",
		"1-2 cups",
		"2–3 EL",
		"1 1/0 cups",
		"3/0",
		"a pinch",
		"2 (large)",
		"1 2",
		"1 / 2",
		".5 cup",
		"1/٣ cup",
		"٢ cups",
		"5/" + strings.Repeat("9", 400) + " g",
		strings.Repeat("9", 400) + " g",
		"1 2/" + strings.Repeat("9", 400) + " cups",
	} {
		_, ok := ParseAmount(raw)
		assert.False(t, ok, "expected %q to be opaque", raw)
	}
}

func TestIsToTaste(t *testing.T) {
	assert.True(t, IsToTaste("To Taste"))
	assert.True(t, IsToTaste("salt, to taste"))
	assert.True(t, IsToTaste("NACH GESCHMACK"))
	assert.True(t, IsToTaste("n. G."))
	assert.False(t, IsToTaste("2 tsp"))
}

func TestNormalizeUnit(t *testing.T) {
	tests := map[string]Unit{
		"g":            Gram,
		"Grams":        Gram,
		"gramm":        Gram,
		"KG":           Kilogram,
		"millilitres":  Milliliter,
		"Liter":        Liter,
		"ounces":       Ounce,
		"lbs":          Pound,
		"Cups":         Cup,
		"tbs":          Tablespoon,
		"EL":           Tablespoon,
		"Esslöffel":    Tablespoon,
		"teaspoon":     Teaspoon,
		"TL":           Teaspoon,
		"fl  oz":       FluidOunce,
		"floz":         FluidOunce,
		"fluid ounces": FluidOunce,
	}
	for token, want := range tests {
		got, ok := NormalizeUnit(token)
		assert.True(t, ok, token)
		assert.Equal(t, want, got, token)
	}

	for _, token := range []string{"", "pinch", "cloves", "handful"} {
		_, ok := NormalizeUnit(token)
		assert.False(t, ok, token)
	}
}

func TestParseSystem(t *testing.T) {
	s, ok := ParseSystem(" US ")
	assert.True(t, ok)
	assert.Equal(t, US, s)

	s, ok = ParseSystem("metric")
	assert.True(t, ok)
	assert.Equal(t, Metric, s)

	_, ok = ParseSystem("imperial")
	assert.False(t, ok)
}

func TestScaleAmount(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		target float64
		base   float64
		want   string
	}{
		{"doubles cups", "2 cups", 4, 2, "4 cups"},
		{"identity reformats", "1 1/2 cups", 2, 2, "1.5 cups"},
		{"keeps unknown unit", "3 eggs", 4, 2, "6 eggs"},
		{"no unit", "2", 3, 1, "6"},
		{"shrinks", "200 g", 3, 4, "150 g"},
		{"to taste passes through", "to taste", 4, 2, "to taste"},
		{"range passes through", "1-2 cups", 4, 2, "1-2 cups"},
		{"zero base is a no-op", "2 cups", 4, 0, "2 cups"},
		{"negative base is a no-op", "2 cups", 4, -2, "2 cups"},
		{"NaN target is a no-op", "2 cups", math.NaN(), 2, "2 cups"},
		{"negative zero target renders zero", "2 cups", math.Copysign(0, -1), 2, "0 cups"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ScaleAmount(tt.raw, tt.target, tt.base))
		})
	}
}

func TestScaleAmountRoundTrip(t *testing.T) {
	up := ScaleAmount("250 g", 6, 4)
	assert.Equal(t, "375 g", up)
	assert.Equal(t, "250 g", ScaleAmount(up, 4, 6))

	for _, n := range []float64{1, 2, 3.5, 12} {
		assert.Equal(t, "2.5 tbsp", ScaleAmount("2,5 tbsp", n, n))
	}
}

func TestConvertAmount(t *testing.T) {
	tests := []struct {
		raw    string
		target System
		want   string
	}{
		{"500 g", US, "18 oz"},
		{"1 lb", Metric, "454 g"},
		{"2 cups", Metric, "480 ml"},
		{"5 cups", Metric, "1.2 l"},
		{"3 lb", Metric, "1.4 kg"},
		{"1 tbsp", Metric, "15 ml"},
		{"1 tsp", Metric, "5 ml"},
		{"4 oz", Metric, "113 g"},
		{"2 fl oz", Metric, "59 ml"},
		{"1 kg", US, "2.2 lb"},
		{"500 ml", US, "2.1 cup"},
		{"100 ml", US, "3.4 fl oz"},
		{"1 l", US, "4.2 cup"},
		{"2 cups", US, "2 cups"},
		{"2 EL", Metric, "30 ml"},
		{"3 eggs", Metric, "3 eggs"},
		{"3", US, "3"},
		{"to taste", US, "to taste"},
		{"1-2 cups", Metric, "1-2 cups"},
		{"2 cups", System("imperial"), "2 cups"},
	}

	for _, tt := range tests {
		t.Run(tt.raw+"->"+string(tt.target), func(t *testing.T) {
			assert.Equal(t, tt.want, ConvertAmount(tt.raw, tt.target))
		})
	}
}

func TestConvertAmountPromotesOnlyCrossSystemResults(t *testing.T) {
	t.Run("same system keeps the written unit", func(t *testing.T) {
		assert.Equal(t, "1500 g", ConvertAmount("1500 g", Metric))
		assert.Equal(t, "40 oz", ConvertAmount("40 oz", US))
	})
	t.Run("converted amount is promoted", func(t *testing.T) {
		assert.Equal(t, "1.4 kg", ConvertAmount("3 lb", Metric))
		assert.Equal(t, "2.2 lb", ConvertAmount("1 kg", US))
	})
}

func TestConvertAmountIsIdempotent(t *testing.T) {
	inputs := []string{"1 lb", "5 cups", "500 grams", "2 tbsp", "nach Geschmack", "3 eggs", "1 1/2 cups"}
	for _, system := range []System{Metric, US} {
		for _, raw := range inputs {
			once := ConvertAmount(raw, system)
			assert.Equal(t, once, ConvertAmount(once, system), "%q to %s", raw, system)
		}
	}
}

func TestAggregate(t *testing.T) {
	t.Run("merges case-insensitive names with a conjunctive check state", func(t *testing.T) {
		got := Aggregate([]IngredientLine{
			{ID: "a", Name: "Salt", Amount: "1 tsp", Checked: false},
			{ID: "b", Name: " salt ", Amount: "2 tsp", Checked: true},
		})

		assert.Len(t, got, 1)
		assert.Equal(t, "Salt", got[0].Name)
		assert.Equal(t, "3 tsp", got[0].DisplayAmount)
		assert.False(t, got[0].IsChecked)
		assert.False(t, got[0].Mismatch)
		assert.Equal(t, []string{"a", "b"}, got[0].SourceLineIDs)
	})

	t.Run("all checked lines check the group", func(t *testing.T) {
		got := Aggregate([]IngredientLine{
			{ID: "a", Name: "milk", Amount: "1 cup", Checked: true},
			{ID: "b", Name: "Milk", Amount: "1 Cup", Checked: true},
		})
		assert.True(t, got[0].IsChecked)
		assert.Equal(t, "2 cup", got[0].DisplayAmount)
	})

	t.Run("incompatible units keep an original amount", func(t *testing.T) {
		got := Aggregate([]IngredientLine{
			{ID: "a", Name: "flour", Amount: "2 cups"},
			{ID: "b", Name: "flour", Amount: "200 g"},
			{ID: "c", Name: "flour", Amount: "3 cups"},
		})

		assert.Len(t, got, 1)
		assert.True(t, got[0].Mismatch)
		assert.Equal(t, "2 cups", got[0].DisplayAmount)
		assert.Len(t, got[0].SourceLineIDs, 3)
	})

	t.Run("grams and kilograms do not combine", func(t *testing.T) {
		got := Aggregate([]IngredientLine{
			{ID: "a", Name: "rice", Amount: "500 g"},
			{ID: "b", Name: "rice", Amount: "1 kg"},
		})
		assert.True(t, got[0].Mismatch)
		assert.Equal(t, "500 g", got[0].DisplayAmount)
	})

	t.Run("sums spellings of one canonical unit", func(t *testing.T) {
		got := Aggregate([]IngredientLine{
			{ID: "a", Name: "sugar", Amount: "1 cup"},
			{ID: "b", Name: "sugar", Amount: "0.5 cup"},
			{ID: "c", Name: "sugar", Amount: "1 1/2 cups"},
		})
		assert.False(t, got[0].Mismatch)
		assert.Equal(t, "3 cup", got[0].DisplayAmount)
	})

	t.Run("unparseable amounts fall back to raw text", func(t *testing.T) {
		got := Aggregate([]IngredientLine{
			{ID: "a", Name: "pepper", Amount: "to taste"},
			{ID: "b", Name: "pepper", Amount: "a pinch"},
			{ID: "c", Name: "basil", Amount: "to taste"},
			{ID: "d", Name: "basil", Amount: "1 tsp"},
		})

		assert.Len(t, got, 2)
		assert.Equal(t, "basil", got[0].Name)
		assert.Equal(t, "1 tsp", got[0].DisplayAmount)
		assert.Equal(t, "pepper", got[1].Name)
		assert.Equal(t, "to taste", got[1].DisplayAmount)
	})

	t.Run("unitless counts add up", func(t *testing.T) {
		got := Aggregate([]IngredientLine{
			{ID: "a", Name: "eggs", Amount: "2"},
			{ID: "b", Name: "Eggs", Amount: "3"},
		})
		assert.Equal(t, "5", got[0].DisplayAmount)
	})

	t.Run("missing amounts render empty", func(t *testing.T) {
		got := Aggregate([]IngredientLine{{ID: "a", Name: "lemons"}})
		assert.Equal(t, "", got[0].DisplayAmount)
	})

	t.Run("sorts by name and skips blank names", func(t *testing.T) {
		got := Aggregate([]IngredientLine{
			{ID: "1", Name: "onion", Amount: "1"},
			{ID: "2", Name: "Apple", Amount: "2"},
			{ID: "3", Name: "  ", Amount: "3"},
			{ID: "4", Name: "banana", Amount: "4"},
		})

		names := make([]string, 0, len(got))
		for _, g := range got {
			names = append(names, g.Name)
		}
		assert.Equal(t, []string{"Apple", "banana", "onion"}, names)
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, Aggregate(nil))
	})
}

func TestAggregateConservesTotals(t *testing.T) {
	amounts := []string{"1", "2,5", "3/4", "1 1/4", "10"}
	lines := make([]IngredientLine, 0, len(amounts))
	var sum float64
	for i, a := range amounts {
		q, ok := ParseAmount(a + " g")
		assert.True(t, ok)
		sum += q.Value
		lines = append(lines, IngredientLine{ID: string(rune('a' + i)), Name: "butter", Amount: a + " g"})
	}

	got := Aggregate(lines)
	assert.Len(t, got, 1)
	assert.Equal(t, FormatQuantity(sum)+" g", got[0].DisplayAmount)
}
