package interval

// Tri is the result of a validated comparison.
//
//   - CertainlyTrue : provably true for every value in the enclosures.
//   - CertainlyFalse: provably false for every value in the enclosures.
//   - Indeterminate : the enclosures are too wide to decide.
//
// The zero value is Indeterminate so that an unset Tri never claims certainty.
type Tri int8

const (
	// Indeterminate means neither outcome could be certified.
	Indeterminate Tri = iota

	// CertainlyTrue means the relation holds for all enclosed values.
	CertainlyTrue

	// CertainlyFalse means the relation fails for all enclosed values.
	CertainlyFalse
)

// Definitely reports t == CertainlyTrue.
func (t Tri) Definitely() bool { return t == CertainlyTrue }

// Possibly reports that t is not CertainlyFalse.
func (t Tri) Possibly() bool { return t != CertainlyFalse }

// Not swaps the certain outcomes; Indeterminate stays Indeterminate.
func (t Tri) Not() Tri {
	switch t {
	case CertainlyTrue:
		return CertainlyFalse
	case CertainlyFalse:
		return CertainlyTrue
	default:
		return Indeterminate
	}
}

// String implements fmt.Stringer.
func (t Tri) String() string {
	switch t {
	case CertainlyTrue:
		return "certainly-true"
	case CertainlyFalse:
		return "certainly-false"
	default:
		return "indeterminate"
	}
}

// And combines truth values: any CertainlyFalse wins, then any Indeterminate.
// And() with no arguments is CertainlyTrue.
func And(ts ...Tri) Tri {
	result := CertainlyTrue
	for _, t := range ts {
		switch t {
		case CertainlyFalse:
			return CertainlyFalse
		case Indeterminate:
			result = Indeterminate
		case CertainlyTrue:
		}
	}

	return result
}

// Less compares a < b.
func Less(a, b Interval) Tri {
	if !orderable(a, b) {
		return Indeterminate
	}
	switch {
	case a.Hi < b.Lo:
		return CertainlyTrue
	case a.Lo >= b.Hi:
		return CertainlyFalse
	default:
		return Indeterminate
	}
}

// Positive compares a > 0.
func Positive(a Interval) Tri { return Less(Point(0), a) }

// Negative compares a < 0.
func Negative(a Interval) Tri { return Less(a, Point(0)) }

func orderable(a, b Interval) bool {
	return !a.IsNaN() && !b.IsNaN() && !a.IsEmpty() && !b.IsEmpty()
}
