package unitconv

import (
	"strconv"
	"strings"
)

// splitToken splits a token of the form
//
//	<optional leading digits><name><optional signed integer power>
//
// into its lexical parts. A missing power defaults to 1, a missing leading
// factor to 1. The name is returned as-is; it may still carry an SI prefix.
func splitToken(tok string) (fac float64, basis string, pow int) {
	fac, pow = 1, 1

	i := 0
	for i < len(tok) && tok[i] >= '0' && tok[i] <= '9' {
		i++
	}
	if i > 0 && i < len(tok) {
		fac, _ = strconv.ParseFloat(tok[:i], 64)
		tok = tok[i:]
	}

	j := len(tok)
	for j > 0 && tok[j-1] >= '0' && tok[j-1] <= '9' {
		j--
	}
	if j == len(tok) {
		return fac, tok, 1
	}
	if j > 1 && tok[j-1] == '-' {
		j--
	}
	if p, err := strconv.Atoi(tok[j:]); err == nil && j > 0 {
		pow = p
		tok = tok[:j]
	}

	return fac, tok, pow
}

// components decomposes a single token into its accumulated factor, the SI
// base-unit string it maps to, and its integer power. The name is resolved
// directly against the unit table first; otherwise each prefix is tried in
// order and the first one whose stripped remainder is a known unit wins.
// The returned base string may itself be compound (e.g. "kg m2 s-3" for W);
// the caller is responsible for expanding it.
func (t *Table) components(token string) (factor, string, int, error) {
	fac, basis, pow := splitToken(token)

	u, ok := t.units[basis]
	if !ok {
		for _, p := range t.prefixes {
			rest, found := strings.CutPrefix(basis, p.symbol)
			if !found {
				continue
			}
			if bu, known := t.units[rest]; known {
				fac *= p.factor
				u, ok = bu, true
				break
			}
		}
	}
	if !ok {
		return factor{}, "", 0, errUnknownUnit(basis)
	}

	if u.fam != famLinear {
		return factor{scale: 1, nl: &nonlinear{fam: u.fam, prefix: fac, power: 1}}, u.base, pow, nil
	}
	return scalarFactor(fac * u.factor), u.base, pow, nil
}
