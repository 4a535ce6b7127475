package unitconv

import (
	"fmt"
	"strings"

	"github.com/astrokit/unitconv/config"
)

// SI is the special target unit meaning "whatever the source reduces to,
// at factor 1".
const SI = "SI"

// A Quantity is a numeric value paired with the unit expression it is
// written in.
type Quantity struct {
	Value float64
	Unit  string
}

// reference collects the named auxiliary quantities a change of base may
// need. Keys are wave, freq, diam, radius, and pix.
type reference struct {
	quantities map[string]Quantity
}

// An Option supplies one named reference quantity to [Convert].
type Option func(*reference)

func withQuantity(key string, v float64, unit string) Option {
	return func(r *reference) {
		if r.quantities == nil {
			r.quantities = make(map[string]Quantity)
		}
		r.quantities[key] = Quantity{Value: v, Unit: unit}
	}
}

// Wave supplies the reference wavelength.
func Wave(v float64, unit string) Option { return withQuantity("wave", v, unit) }

// Freq supplies the reference frequency.
func Freq(v float64, unit string) Option { return withQuantity("freq", v, unit) }

// Diam supplies the angular diameter of the source.
func Diam(v float64, unit string) Option { return withQuantity("diam", v, unit) }

// Radius supplies the angular radius of the source.
func Radius(v float64, unit string) Option { return withQuantity("radius", v, unit) }

// Pix supplies the angular size of a square pixel.
func Pix(v float64, unit string) Option { return withQuantity("pix", v, unit) }

// A Converter converts values between unit expressions. It owns an immutable
// [Table] and holds no other state, so a single Converter is safe for
// concurrent use.
type Converter struct {
	table *Table
}

var defaultConverter = &Converter{table: DefaultTable()}

// Default returns the Converter backed by the built-in unit table.
func Default() *Converter {
	return defaultConverter
}

// New returns a Converter whose table extends the built-in definitions with
// the units, prefixes, and aliases from cfg. Custom units must reduce to
// known SI bases; a definition that does not resolve is reported as
// [ErrUnknownUnit].
func New(cfg *config.Config) (*Converter, error) {
	t := DefaultTable()
	if cfg == nil {
		return &Converter{table: t}, nil
	}

	for _, a := range cfg.Aliases {
		t.aliases = append(t.aliases, alias{pattern: a.Pattern, replacement: a.Replacement})
	}
	for _, p := range cfg.Prefixes {
		if p.Symbol == "" || p.Factor == 0 {
			return nil, fmt.Errorf("prefix %q: factor must be nonzero", p.Symbol)
		}
		t.prefixes = append(t.prefixes, prefix{symbol: p.Symbol, factor: p.Factor})
	}
	for _, u := range cfg.Units {
		if u.Name == "" || u.Factor == 0 {
			return nil, fmt.Errorf("unit %q: factor must be nonzero", u.Name)
		}
		for _, sub := range strings.Fields(u.Base) {
			if _, _, _, err := t.components(sub); err != nil {
				return nil, fmt.Errorf("unit %q: base %q: %w", u.Name, u.Base, err)
			}
		}
		t.units[u.Name] = baseUnit{factor: u.Factor, base: u.Base}
	}

	return &Converter{table: t}, nil
}

// Table returns the Converter's unit table.
func (c *Converter) Table() *Table {
	return c.table
}

// Convert converts value from one unit expression to another, applying
// prefix scaling, nonlinear transforms, and any change of base the
// dimensional difference calls for. Reference quantities needed by a change
// of base are supplied as options and reduced to SI internally:
//
//	kms, err := c.Convert("A", "km/s", 4553.0, unitconv.Wave(4552.0, "A"))
func (c *Converter) Convert(from, to string, value float64, opts ...Option) (float64, error) {
	facFrom, sigFrom, err := c.table.breakdown(from)
	if err != nil {
		return 0, err
	}

	facTo, sigTo := scalarFactor(1), sigFrom
	if to != SI {
		if facTo, sigTo, err = c.table.breakdown(to); err != nil {
			return 0, err
		}
	}

	ref, err := c.reduceReference(opts)
	if err != nil {
		return 0, err
	}

	var ret float64
	if sigFrom == sigTo {
		ret = facFrom.applyForward(value)
	} else if ret, err = c.changeBase(facFrom, sigFrom, sigTo, value, ref); err != nil {
		return 0, err
	}

	return facTo.applyInverse(ret), nil
}

// changeBase bridges two different dimension signatures. A trailing sr-1
// difference on either side is peeled off and handled by the solid-angle
// substitutions first, so a per-steradian step composes with one further
// change of base in a single call.
func (c *Converter) changeBase(facFrom factor, sigFrom, sigTo string, value float64, ref map[string]float64) (float64, error) {
	onlyFrom := signatureDiff(sigFrom, sigTo)
	onlyTo := signatureDiff(sigTo, sigFrom)

	var err error
	if strings.HasSuffix(onlyTo, "sr-1") {
		if value, err = perSteradian(value, ref); err != nil {
			return 0, err
		}
		onlyTo = strings.TrimSuffix(onlyTo, "sr-1")
	}
	if strings.HasSuffix(onlyFrom, "sr-1") {
		if value, err = timesSteradian(value, ref); err != nil {
			return 0, err
		}
		onlyFrom = strings.TrimSuffix(onlyFrom, "sr-1")
	}

	if onlyFrom == "" && onlyTo == "" {
		return facFrom.applyForward(value), nil
	}

	fn, ok := changeOfBase[onlyFrom+"_to_"+onlyTo]
	if !ok {
		return 0, errUnsupportedConversion(sigFrom, sigTo)
	}
	return fn(facFrom.applyForward(value), ref)
}

// reduceReference converts every supplied reference quantity to SI through
// the same breakdown machinery used for the units being converted.
func (c *Converter) reduceReference(opts []Option) (map[string]float64, error) {
	if len(opts) == 0 {
		return nil, nil
	}
	var r reference
	for _, opt := range opts {
		opt(&r)
	}
	ref := make(map[string]float64, len(r.quantities))
	for key, q := range r.quantities {
		f, _, err := c.table.breakdown(q.Unit)
		if err != nil {
			return nil, err
		}
		if f.nl != nil {
			return nil, fmt.Errorf("%w: nonlinear unit %q for reference %s", ErrUnsupportedConversion, q.Unit, key)
		}
		ref[key] = f.scale * q.Value
	}
	return ref, nil
}

// Breakdown reduces a compound unit expression to its total SI factor and
// canonical dimension signature:
//
//	factor, sig, err := c.Breakdown("erg s-1 cm-2 A-1") // 1e7, "kg1 m-1 s-3"
//
// For an expression containing a nonlinear unit the returned factor is the
// converter's accumulated linear prefix.
func (c *Converter) Breakdown(unit string) (float64, string, error) {
	f, sig, err := c.table.breakdown(unit)
	if err != nil {
		return 0, "", err
	}
	if f.nl != nil {
		return f.nl.prefix, sig, nil
	}
	return f.scale, sig, nil
}

// Components decomposes a single unit token into its scale factor, SI
// base-unit string, and integer power:
//
//	factor, basis, power, err := c.Components("g2") // 0.001, "kg", 2
func (c *Converter) Components(token string) (float64, string, int, error) {
	f, basis, pow, err := c.table.components(token)
	if err != nil {
		return 0, "", 0, err
	}
	if f.nl != nil {
		return f.nl.prefix, basis, pow, nil
	}
	return f.scale, basis, pow, nil
}

// ResolveAliases normalizes the spelling and division notation of a unit
// expression without decomposing it.
func (c *Converter) ResolveAliases(unit string) string {
	return c.table.resolveAliases(unit)
}

// Convert converts value between two unit expressions using the built-in
// unit table.
func Convert(from, to string, value float64, opts ...Option) (float64, error) {
	return defaultConverter.Convert(from, to, value, opts...)
}

// Breakdown reduces a unit expression using the built-in unit table.
func Breakdown(unit string) (float64, string, error) {
	return defaultConverter.Breakdown(unit)
}

// Components decomposes a single token using the built-in unit table.
func Components(token string) (float64, string, int, error) {
	return defaultConverter.Components(token)
}

// Signatures reports whether two unit expressions share a dimension
// signature, i.e. whether they convert with a pure scale factor.
func Signatures(a, b string) (same bool, err error) {
	_, sa, err := defaultConverter.Breakdown(a)
	if err != nil {
		return false, err
	}
	_, sb, err := defaultConverter.Breakdown(b)
	if err != nil {
		return false, err
	}
	return sa == sb, nil
}
