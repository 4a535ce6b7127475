package unitconv

import (
	"strconv"
	"strings"
)

// resolveAliases normalizes the spelling of a unit expression. Every alias is
// applied in order as a literal substring replacement, then each token after
// a division sign has its power negated, so "erg/s/cm2/angstrom" becomes
// "erg s-1 cm-2 A-1". Malformed input is passed through and fails later at
// decomposition. Resolving an already-canonical expression returns it
// unchanged.
func (t *Table) resolveAliases(unit string) string {
	for _, a := range t.aliases {
		unit = strings.ReplaceAll(unit, a.pattern, a.replacement)
	}

	if !strings.Contains(unit, "/") {
		return unit
	}

	var out []string
	for _, field := range strings.Fields(unit) {
		segs := strings.Split(field, "/")
		if segs[0] != "" {
			out = append(out, segs[0])
		}
		for _, seg := range segs[1:] {
			if seg == "" {
				continue
			}
			fac, basis, pow := splitToken(seg)
			tok := basis + strconv.Itoa(-pow)
			if fac != 1 {
				tok = strconv.Itoa(int(fac)) + tok
			}
			out = append(out, tok)
		}
	}

	return strings.Join(out, " ")
}
