package unitconv

import (
	"sort"

	"github.com/astrokit/unitconv/internal/astro"
)

// baseUnit maps a recognized unit name onto SI base units. For a linear unit
// factor is the multiplicative scale to SI and fam is famLinear; for a
// nonlinear unit fam selects the transform and factor is unused. base may be
// a compound of several SI base tokens (e.g. "kg m2 s-3" for W).
type baseUnit struct {
	factor float64
	fam    family
	base   string
}

// prefix is an SI scaling prefix. Prefixes are kept in a slice because
// resolution takes the first prefix whose stripped remainder is a known unit,
// so the iteration order is part of the contract.
type prefix struct {
	symbol string
	factor float64
}

// alias is an ordered literal-substring rewrite applied before tokenizing.
type alias struct {
	pattern     string
	replacement string
}

// A Table is an immutable set of unit definitions: recognized unit names,
// SI prefixes, and spelling aliases. Tables are constructed once and never
// mutated, so they are safe for concurrent use.
type Table struct {
	units    map[string]baseUnit
	prefixes []prefix
	aliases  []alias
}

func defaultUnits() map[string]baseUnit {
	return map[string]baseUnit{
		// distance
		"m":    {factor: 1e0, base: "m"},
		"A":    {factor: 1e-10, base: "m"},
		"AU":   {factor: astro.AU, base: "m"},
		"pc":   {factor: astro.Parsec, base: "m"},
		"ly":   {factor: astro.LightYear, base: "m"},
		"Rsun": {factor: astro.Rsun, base: "m"},
		"ft":   {factor: 0.3048, base: "m"},
		"in":   {factor: 0.0254, base: "m"},
		"mi":   {factor: 1609.344, base: "m"},
		// mass
		"g":    {factor: 1e-3, base: "kg"},
		"Msun": {factor: astro.Msun, base: "kg"},
		// time and frequency
		"s":   {factor: 1e0, base: "s"},
		"min": {factor: 60, base: "s"},
		"h":   {factor: 3600, base: "s"},
		"d":   {factor: 24 * 3600, base: "s"},
		"yr":  {factor: 365 * 24 * 3600, base: "s"},
		"cr":  {factor: 100 * 365 * 24 * 3600, base: "s"},
		"hz":  {factor: 1e0, base: "cy s-1"},
		// angles
		"rad": {factor: 0.15915494309189535, base: "cy"},
		"cy":  {factor: 1e0, base: "cy"},
		"deg": {factor: 1. / 360, base: "cy"},
		"am":  {factor: 1. / 360 / 60, base: "cy"},
		"as":  {factor: 1. / 360 / 3600, base: "cy"},
		"sr":  {factor: 1e0, base: "sr"},
		// force
		"N":  {factor: 1e0, base: "kg m s-2"},
		"dy": {factor: 1e-5, base: "kg m s-2"},
		// temperature
		"K": {factor: 1e0, base: "K"},
		"F": {fam: famFahrenheit, base: "K"},
		"C": {fam: famCelsius, base: "K"},
		// energy and power
		"J":   {factor: 1e0, base: "kg m2 s-2"},
		"W":   {factor: 1e0, base: "kg m2 s-3"},
		"erg": {factor: 1e-7, base: "kg m2 s-2"},
		"eV":  {factor: astro.Electron, base: "kg m2 s-2"},
		"cal": {factor: 4.184, base: "kg m2 s-2"},
		// pressure
		"Pa":   {factor: 1e0, base: "kg m-1 s-2"},
		"bar":  {factor: 1e5, base: "kg m-1 s-2"},
		"at":   {factor: 98066.5, base: "kg m-1 s-2"},
		"atm":  {factor: 101325, base: "kg m-1 s-2"},
		"torr": {factor: 133.322, base: "kg m-1 s-2"},
		"psi":  {factor: 6894, base: "kg m-1 s-2"},
		// flux
		"Jy":      {factor: 1e-26, base: "kg s-2 cy-1"},
		"vegamag": {fam: famVegaMag, base: "kg m-1 s-3"}, // W/m2/m
		"STmag":   {fam: famSTMag, base: "kg m-1 s-3"},   // W/m2/m
		"ABmag":   {fam: famABMag, base: "kg s-2 cy-1"},  // W/m2/Hz
	}
}

func defaultPrefixes() []prefix {
	return []prefix{
		{"n", 1e-09},
		{"mu", 1e-06},
		{"m", 1e-03},
		{"c", 1e-02},
		{"d", 1e-01},
		{"da", 1e+01},
		{"h", 1e+02},
		{"k", 1e+03},
		{"M", 1e+06},
		{"G", 1e+09},
	}
}

// defaultAliases returns the ordered rewrite list. The order and the literal
// substring semantics matter: " mag" and "/mag" carry their separator so they
// cannot collide with ABmag/STmag, and unit-name aliases must run before the
// power-notation strips.
func defaultAliases() []alias {
	return []alias{
		{"micron", "mum"},
		{"micro", "mu"},
		{"milli", "m"},
		{"kilo", "k"},
		{"mega", "M"},
		{"giga", "G"},
		{"nano", "n"},
		{"watt", "W"},
		{"Watt", "W"},
		{"Hz", "hz"},
		{"joule", "J"},
		{"Joule", "J"},
		{"jansky", "Jy"},
		{"Jansky", "Jy"},
		{"arcsec", "as"},
		{"arcmin", "am"},
		{"cycles", "cy"},
		{"cycle", "cy"},
		{"cyc", "cy"},
		{"angstrom", "A"},
		{"Angstrom", "A"},
		{" mag", " vegamag"},
		{"/mag", " /vegamag"},
		{"inch", "in"},
		{"^", ""},
		{"**", ""},
	}
}

// DefaultTable returns a Table holding the built-in unit definitions.
func DefaultTable() *Table {
	return &Table{
		units:    defaultUnits(),
		prefixes: defaultPrefixes(),
		aliases:  defaultAliases(),
	}
}

// A UnitDef describes one recognized unit for introspection.
type UnitDef struct {
	Name      string
	Base      string
	Factor    float64
	Nonlinear bool
}

// A PrefixDef describes one recognized SI prefix.
type PrefixDef struct {
	Symbol string
	Factor float64
}

// An AliasDef describes one spelling rewrite.
type AliasDef struct {
	Pattern     string
	Replacement string
}

// Units returns the recognized units sorted by name.
func (t *Table) Units() []UnitDef {
	defs := make([]UnitDef, 0, len(t.units))
	for name, u := range t.units {
		defs = append(defs, UnitDef{
			Name:      name,
			Base:      u.base,
			Factor:    u.factor,
			Nonlinear: u.fam != famLinear,
		})
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Name < defs[j].Name })
	return defs
}

// Prefixes returns the recognized prefixes in resolution order.
func (t *Table) Prefixes() []PrefixDef {
	defs := make([]PrefixDef, len(t.prefixes))
	for i, p := range t.prefixes {
		defs[i] = PrefixDef{Symbol: p.symbol, Factor: p.factor}
	}
	return defs
}

// Aliases returns the spelling rewrites in application order.
func (t *Table) Aliases() []AliasDef {
	defs := make([]AliasDef, len(t.aliases))
	for i, a := range t.aliases {
		defs[i] = AliasDef{Pattern: a.pattern, Replacement: a.replacement}
	}
	return defs
}
