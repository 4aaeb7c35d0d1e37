package quantity

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// ParsedQuantity is a structured amount. Unit holds the raw lowercased unit
// token as written, or "" when the amount had none.
type ParsedQuantity struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// ParseAmount converts a free-form amount such as "1 1/2 cups" or "2,5 g"
// into a ParsedQuantity. Ranges, "to taste" idioms and anything outside the
// supported grammar report ok == false so callers keep the raw text.
func ParseAmount(raw string) (ParsedQuantity, bool) {
	s := strings.TrimSpace(raw)
	if s == "" || IsToTaste(s) || isRange(s) {
		return ParsedQuantity{}, false
	}

	toks := tokenize(s)
	for _, rule := range numberRules {
		value, n, matched, valid := rule(toks)
		if !matched {
			continue
		}
		if !valid {
			return ParsedQuantity{}, false
		}
		unit, ok := unitToken(toks[n:])
		if !ok || math.IsInf(value, 0) || math.IsNaN(value) {
			return ParsedQuantity{}, false
		}
		return ParsedQuantity{Value: value, Unit: unit}, true
	}
	return ParsedQuantity{}, false
}

// IsToTaste reports whether the amount is a "to taste" idiom, which is never
// scaled or converted.
func IsToTaste(raw string) bool {
	lower := strings.ToLower(strings.TrimSpace(raw))
	if strings.Contains(lower, "to taste") || strings.Contains(lower, "nach geschmack") {
		return true
	}
	for _, f := range strings.Fields(lower) {
		if f == "n.g." || f == "n.g" {
			return true
		}
	}
	return strings.ReplaceAll(lower, " ", "") == "n.g."
}

func isRange(s string) bool {
	return strings.ContainsAny(s, "-–")
}

type tokenKind int

const (
	tokInt tokenKind = iota
	tokDecimal
	tokSlash
	tokSpace
	tokWord
	tokOther
)

type token struct {
	kind tokenKind
	text string
}

func tokenize(s string) []token {
	runes := []rune(s)
	var toks []token
	for i := 0; i < len(runes); {
		r := runes[i]
		start := i
		switch {
		case isDigit(r):
			for i < len(runes) && isDigit(runes[i]) {
				i++
			}
			kind := tokInt
			text := string(runes[start:i])
			if i+1 < len(runes) && (runes[i] == '.' || runes[i] == ',') && isDigit(runes[i+1]) {
				frac := i + 1
				i++
				for i < len(runes) && isDigit(runes[i]) {
					i++
				}
				kind = tokDecimal
				text = text + "." + string(runes[frac:i])
			}
			toks = append(toks, token{kind: kind, text: text})
		case r == '/' || r == '⁄':
			i++
			toks = append(toks, token{kind: tokSlash, text: "/"})
		case unicode.IsSpace(r):
			for i < len(runes) && unicode.IsSpace(runes[i]) {
				i++
			}
			toks = append(toks, token{kind: tokSpace, text: string(runes[start:i])})
		case unicode.IsLetter(r):
			for i < len(runes) && unicode.IsLetter(runes[i]) {
				i++
			}
			toks = append(toks, token{kind: tokWord, text: string(runes[start:i])})
		default:
			i++
			toks = append(toks, token{kind: tokOther, text: string(r)})
		}
	}
	return toks
}

// isDigit accepts ASCII digits only; other Unicode digits are not numbers here.
func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// numberRule inspects the head of the token stream. matched means the shape
// applies; valid is false when it applies but cannot yield a finite number
// (a zero denominator or an out-of-range operand). n is the number of tokens consumed.
type numberRule func(toks []token) (value float64, n int, matched, valid bool)

// numberRules are tried in precedence order.
var numberRules = []numberRule{
	mixedNumber,
	simpleFraction,
	decimalNumber,
}

func mixedNumber(toks []token) (float64, int, bool, bool) {
	if !kinds(toks, tokInt, tokSpace, tokInt, tokSlash, tokInt) {
		return 0, 0, false, false
	}
	whole, ok := atof(toks[0].text)
	if !ok {
		return 0, 5, true, false
	}
	frac, ok := ratio(toks[2].text, toks[4].text)
	return whole + frac, 5, true, ok
}

func simpleFraction(toks []token) (float64, int, bool, bool) {
	if !kinds(toks, tokInt, tokSlash, tokInt) {
		return 0, 0, false, false
	}
	v, ok := ratio(toks[0].text, toks[2].text)
	return v, 3, true, ok
}

func decimalNumber(toks []token) (float64, int, bool, bool) {
	if len(toks) == 0 || (toks[0].kind != tokInt && toks[0].kind != tokDecimal) {
		return 0, 0, false, false
	}
	v, ok := atof(toks[0].text)
	return v, 1, true, ok
}

func kinds(toks []token, want ...tokenKind) bool {
	if len(toks) < len(want) {
		return false
	}
	for i, k := range want {
		if toks[i].kind != k {
			return false
		}
	}
	return true
}

func ratio(num, den string) (float64, bool) {
	n, ok := atof(num)
	if !ok {
		return 0, false
	}
	d, ok := atof(den)
	if !ok || d == 0 {
		return 0, false
	}
	return n / d, true
}

// atof reports false for anything that does not parse to a finite float.
func atof(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, false
	}
	return v, true
}

// unitToken accepts the tokens after the number: nothing, or letters and
// spaces only.
func unitToken(rest []token) (string, bool) {
	var b strings.Builder
	for _, t := range rest {
		if t.kind != tokWord && t.kind != tokSpace {
			return "", false
		}
		b.WriteString(t.text)
	}
	return strings.ToLower(strings.TrimSpace(b.String())), true
}
