package unitconv

import (
	"errors"
	"fmt"
	"strings"
)

// Errors returned by the conversion engine. All of them indicate bad caller
// input; none are transient.
var (
	// ErrUnknownUnit is returned when a token cannot be resolved to a known
	// unit, with or without an SI prefix.
	ErrUnknownUnit = errors.New("unknown unit")

	// ErrUnsupportedConversion is returned when the dimensional difference
	// between two unit expressions has no change-of-base entry.
	ErrUnsupportedConversion = errors.New("unsupported conversion")

	// ErrMissingContext is returned when a change of base needs a reference
	// quantity (wave, freq, diam, radius, or pix) that was not supplied.
	ErrMissingContext = errors.New("missing context")
)

func errUnknownUnit(basis string) error {
	return fmt.Errorf("%q is an %w", basis, ErrUnknownUnit)
}

func errUnsupportedConversion(from, to string) error {
	return fmt.Errorf("%w from %q to %q", ErrUnsupportedConversion, from, to)
}

func errMixedNonlinear(unit string) error {
	return fmt.Errorf("%w: more than one nonlinear unit in %q", ErrUnsupportedConversion, unit)
}

func errMissingContext(key ...string) error {
	return fmt.Errorf("%w: reference %s not given", ErrMissingContext, strings.Join(key, "/"))
}
