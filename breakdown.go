package unitconv

import (
	"sort"
	"strconv"
	"strings"
)

// breakdown reduces a compound unit expression to its total factor and its
// canonical dimension signature. Aliases are resolved first, then every
// whitespace-separated token is decomposed and its powers accumulated per SI
// base symbol. Terms with net power zero are dropped. The signature is the
// space-joined, lexicographically sorted list of "<base><power>" tokens and
// is the equality key for dimension checks.
func (t *Table) breakdown(unit string) (factor, string, error) {
	resolved := t.resolveAliases(unit)

	total := scalarFactor(1)
	powers := make(map[string]int)

	for _, tok := range strings.Fields(resolved) {
		f, basis, pow, err := t.components(tok)
		if err != nil {
			return factor{}, "", err
		}
		if total, err = total.mulPow(f, pow, unit); err != nil {
			return factor{}, "", err
		}
		// The base string of a derived unit is itself compound;
		// distribute the token's power over each of its terms.
		for _, sub := range strings.Fields(basis) {
			_, base, p, err := t.components(sub)
			if err != nil {
				return factor{}, "", err
			}
			powers[base] += p * pow
		}
	}

	sig := make([]string, 0, len(powers))
	for base, p := range powers {
		if p != 0 {
			sig = append(sig, base+strconv.Itoa(p))
		}
	}
	sort.Strings(sig)

	return total, strings.Join(sig, " "), nil
}

// signatureDiff returns the tokens of signature a that do not appear in b,
// sorted and joined without separators. The result is one half of a
// change-of-base dispatch key.
func signatureDiff(a, b string) string {
	in := make(map[string]bool)
	for _, tok := range strings.Fields(b) {
		in[tok] = true
	}
	var only []string
	for _, tok := range strings.Fields(a) {
		if !in[tok] {
			only = append(only, tok)
		}
	}
	sort.Strings(only)
	return strings.Join(only, "")
}
