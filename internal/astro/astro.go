// Package astro provides the physical and astronomical constants used by the
// conversion engine, in SI units.
package astro

// Fundamental constants.
const (
	LightSpeed = 299792458.0    // speed of light, m/s
	Electron   = 1.60217646e-19 // elementary charge, C
)

// Astronomical constants.
const (
	AU        = 1.49597870691e+11 // astronomical unit, m
	Parsec    = 3.0856775813e+16  // parsec, m
	LightYear = 9.4607304725808e+15
	Rsun      = 6.955e+08 // solar radius, m
	Msun      = 1.988547e+30
)
