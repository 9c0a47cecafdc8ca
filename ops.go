package polish

// arith holds the arithmetic for each operator that can be reduced. The
// assignment marker "=" has none, so equations never reduce.
var arith = map[string]func(l, r float64) float64{
	"+": func(l, r float64) float64 { return l + r },
	"-": func(l, r float64) float64 { return l - r },
	"*": func(l, r float64) float64 { return l * r },
	// No guard against zero divisors: 1/0 is +Inf and 0/0 is NaN.
	"/": func(l, r float64) float64 { return l / r },
}

// apply computes l op r. The second result is false if op cannot be reduced.
func apply(op string, l, r float64) (float64, bool) {
	f := arith[op]
	if f == nil {
		return 0, false
	}
	return f(l, r), true
}
