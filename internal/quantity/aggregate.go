package quantity

import (
	"sort"
	"strings"
)

// IngredientLine is one ingredient entry contributing to a shopping list.
type IngredientLine struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Amount  string `json:"amount"`
	Checked bool   `json:"is_checked"`
}

// ShoppingAggregate is the merged view of all lines sharing a name.
type ShoppingAggregate struct {
	Name          string   `json:"name"`
	DisplayAmount string   `json:"display_amount"`
	IsChecked     bool     `json:"is_checked"`
	SourceLineIDs []string `json:"source_line_ids"`
	Mismatch      bool     `json:"mismatch"`
}

type group struct {
	key      string
	name     string
	total    float64
	hasTotal bool
	unit     string
	fallback string
	first    string
	mismatch bool
	checked  bool
	ids      []string
}

// Aggregate merges lines by trimmed, case-insensitive name. Amounts with
// matching units are summed; a unit conflict marks the group as mismatched
// and keeps an original amount string instead of a combined value.
func Aggregate(lines []IngredientLine) []ShoppingAggregate {
	groups := make(map[string]*group)
	var order []*group

	for _, line := range lines {
		key := strings.ToLower(strings.TrimSpace(line.Name))
		if key == "" {
			continue
		}
		amount := strings.TrimSpace(line.Amount)

		g, seen := groups[key]
		if !seen {
			g = &group{key: key, name: strings.TrimSpace(line.Name), checked: true, first: amount}
			groups[key] = g
			order = append(order, g)
		}
		g.ids = append(g.ids, line.ID)
		g.checked = g.checked && line.Checked
		g.add(amount)
	}

	sort.SliceStable(order, func(i, j int) bool { return order[i].key < order[j].key })

	out := make([]ShoppingAggregate, 0, len(order))
	for _, g := range order {
		out = append(out, ShoppingAggregate{
			Name:          g.name,
			DisplayAmount: g.display(),
			IsChecked:     g.checked,
			SourceLineIDs: g.ids,
			Mismatch:      g.mismatch,
		})
	}
	return out
}

func (g *group) add(amount string) {
	q, ok := ParseAmount(amount)
	switch {
	case !ok || g.mismatch:
		g.backfill(amount)
	case !g.hasTotal:
		g.unit = q.Unit
		g.total += q.Value
		g.hasTotal = true
	case sameUnit(g.unit, q.Unit):
		g.total += q.Value
	default:
		g.mismatch = true
		g.backfill(g.first)
		g.backfill(amount)
	}
}

func (g *group) backfill(amount string) {
	if g.fallback == "" {
		g.fallback = amount
	}
}

func (g *group) display() string {
	if !g.mismatch && g.hasTotal {
		return withUnit(g.total, g.unit)
	}
	return g.fallback
}

// sameUnit compares raw unit tokens case-insensitively, and also accepts two
// spellings of the same canonical unit ("cup" and "cups"). Distinct units of
// one dimension such as "g" and "kg" never combine.
func sameUnit(a, b string) bool {
	if strings.EqualFold(a, b) {
		return true
	}
	ua, okA := NormalizeUnit(a)
	ub, okB := NormalizeUnit(b)
	return okA && okB && ua == ub
}
