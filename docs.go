// Package unitconv converts values between physical-unit expressions written
// as free-form compound strings.
//
// A unit expression is a space- or slash-separated list of tokens of the form
// <optional factor><prefix><unit><optional signed power>:
//
//	erg s-1 cm-2 A-1
//	km/h
//	10mW m-2/nm
//
// Conversions handle SI-prefix scaling, compound units built from multiple
// base dimensions, nonlinear transforms (temperature scales and magnitude
// systems), and changes of base between physically related but dimensionally
// different quantities. A change of base needs a reference quantity from the
// caller:
//
//	kms, err := unitconv.Convert("A", "km/s", 4553.0, unitconv.Wave(4552.0, "A"))
//
// The built-in unit table can be extended with definitions loaded from a YAML
// config file; see [New] and the config package. All tables are immutable
// after construction, so conversions are safe to run concurrently.
//
// Full documentation is available at:
// https://pkg.go.dev/github.com/astrokit/unitconv
package unitconv
