package filter

// Comparison names the operator applied to the pass-percentage threshold
type Comparison string

// Supported comparisons
const (
	Equal        Comparison = "equal"
	Greater      Comparison = "greater"
	GreaterEqual Comparison = "greaterEqual"
	Less         Comparison = "less"
	LessEqual    Comparison = "lessEqual"
)

var comparators = map[Comparison]func(value, threshold float64) bool{
	Equal:        func(v, t float64) bool { return v == t },
	Greater:      func(v, t float64) bool { return v > t },
	GreaterEqual: func(v, t float64) bool { return v >= t },
	Less:         func(v, t float64) bool { return v < t },
	LessEqual:    func(v, t float64) bool { return v <= t },
}

// ParseComparison maps a raw selection onto a Comparison.
// Empty or unrecognized values fall back to Equal.
func ParseComparison(raw string) Comparison {
	c := Comparison(raw)
	if _, ok := comparators[c]; ok {
		return c
	}
	return Equal
}

// Compare reports whether value satisfies the comparison against threshold.
// NaN on either side never matches.
func (c Comparison) Compare(value, threshold float64) bool {
	cmp, ok := comparators[c]
	if !ok {
		cmp = comparators[Equal]
	}
	return cmp(value, threshold)
}
