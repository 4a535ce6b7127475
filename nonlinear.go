package unitconv

import "math"

// A family selects one of the nonaffine transforms the engine knows about.
// The set is closed; adding a family means extending [nonlinear.apply].
type family int

const (
	famLinear family = iota
	famFahrenheit
	famCelsius
	famVegaMag
	famABMag
	famSTMag
)

// Zero points of the magnitude systems, i.e. the flux of a zeroth-magnitude
// source in the system's natural SI unit (W/m2/m for Vega and ST, W/m2/Hz
// for AB).
const (
	vegaZero = 1e-09
	abZero   = 3.6307805477010024e-23
	stZero   = 0.036307805477010027
)

// nonlinear is a nonaffine scalar transform between a unit's native scale and
// SI. It is an immutable value; prefix accumulates SI-prefix scaling picked up
// during parsing and power records integer exponents applied to the unit.
// None of the current families consume power numerically, the field is only
// carried through composition.
type nonlinear struct {
	fam    family
	prefix float64
	power  int
}

func (n nonlinear) scaledBy(s float64) nonlinear {
	n.prefix *= s
	return n
}

func (n nonlinear) raisedTo(p int) nonlinear {
	n.power += p
	return n
}

// apply evaluates the transform. With inverse false the value is taken from
// the unit's native scale to SI; with inverse true from SI back to the native
// scale, which is the direction used when the unit sits on the target side of
// a conversion.
func (n nonlinear) apply(v float64, inverse bool) float64 {
	switch n.fam {
	case famFahrenheit:
		if inverse {
			return (v*9/5 - 459.67) / n.prefix
		}
		return (v*n.prefix + 459.67) * 5 / 9
	case famCelsius:
		if inverse {
			return (v - 273.15) / n.prefix
		}
		return v*n.prefix + 273.15
	case famVegaMag:
		return magnitude(v, vegaZero, false, inverse)
	case famABMag:
		return magnitude(v, abZero, false, inverse)
	case famSTMag:
		return magnitude(v, stZero, true, inverse)
	}
	if inverse {
		return v / n.prefix
	}
	return v * n.prefix
}

// magnitude converts between a magnitude and the flux of its zero point.
// The ST system counts magnitudes with the opposite sign in the forward
// direction.
func magnitude(v, zero float64, positive, inverse bool) float64 {
	if inverse {
		return -2.5 * math.Log10(v/zero)
	}
	if positive {
		return math.Pow(10, v/2.5) * zero
	}
	return math.Pow(10, -v/2.5) * zero
}

// factor is the accumulated multiplicative factor of a parsed token or
// expression. nl is non-nil once a nonlinear unit has been seen, in which
// case any scalar scaling has been folded into the converter's prefix and
// scale is 1.
type factor struct {
	scale float64
	nl    *nonlinear
}

func scalarFactor(s float64) factor {
	return factor{scale: s}
}

// mulPow folds f raised to the integer power pow into the running total.
// At most one nonlinear unit may appear in an expression.
func (t factor) mulPow(f factor, pow int, unit string) (factor, error) {
	if f.nl != nil {
		if t.nl != nil {
			return factor{}, errMixedNonlinear(unit)
		}
		nl := f.nl.raisedTo(pow).scaledBy(t.scale)
		return factor{scale: 1, nl: &nl}, nil
	}
	s := math.Pow(f.scale, float64(pow))
	if t.nl != nil {
		nl := t.nl.scaledBy(s)
		return factor{scale: 1, nl: &nl}, nil
	}
	return factor{scale: t.scale * s}, nil
}

// applyForward takes a value in the unit's native scale to SI.
func (f factor) applyForward(v float64) float64 {
	if f.nl != nil {
		return f.nl.apply(v, false)
	}
	return f.scale * v
}

// applyInverse takes an SI value back to the unit's native scale.
func (f factor) applyInverse(v float64) float64 {
	if f.nl != nil {
		return f.nl.apply(v, true)
	}
	return v / f.scale
}
