package unitconv

import (
	"math"

	"github.com/astrokit/unitconv/internal/astro"
)

// A changeFunc performs a physically-motivated substitution between two
// dimensionally different quantities. The input and output are both in SI;
// ref holds the caller's auxiliary quantities, already reduced to SI.
type changeFunc func(v float64, ref map[string]float64) (float64, error)

// changeOfBase maps the joined signature differences of a conversion,
// "<only-in-from>_to_<only-in-to>", to the substitution that bridges them.
// The table is read-only after process start.
var changeOfBase = map[string]changeFunc{
	"_to_s-1":           distanceToVelocity,
	"s-1_to_":           velocityToDistance,
	"m1_to_cy1s-1":      distanceToFrequency,
	"cy1s-1_to_m1":      distanceToFrequency,
	"m1_to_":            distanceToSpatialFreq,
	"_to_m1":            spatialFreqToDistance,
	"cy-1s-2_to_m-1s-3": fnuToFlambda,
	"m-1s-3_to_cy-1s-2": flambdaToFnu,
	"cy-1s-2_to_s-3":    fnuToNuFnu,
	"s-3_to_cy-1s-2":    nuFnuToFnu,
	"_to_sr-1":          perSteradian,
	"sr-1_to_":          timesSteradian,
}

// distanceToVelocity interprets a wavelength as the Doppler velocity relative
// to a reference wavelength.
func distanceToVelocity(v float64, ref map[string]float64) (float64, error) {
	wave, ok := ref["wave"]
	if !ok {
		return 0, errMissingContext("wave")
	}
	return (v - wave) / wave * astro.LightSpeed, nil
}

func velocityToDistance(v float64, ref map[string]float64) (float64, error) {
	wave, ok := ref["wave"]
	if !ok {
		return 0, errMissingContext("wave")
	}
	return wave/astro.LightSpeed*v + wave, nil
}

// distanceToFrequency converts wavelength to frequency through the speed of
// light. The relation is its own inverse.
func distanceToFrequency(v float64, _ map[string]float64) (float64, error) {
	return astro.LightSpeed / v, nil
}

// distanceToSpatialFreq converts a projected baseline to a spatial frequency
// at the reference wavelength or frequency, for interferometry.
func distanceToSpatialFreq(v float64, ref map[string]float64) (float64, error) {
	if wave, ok := ref["wave"]; ok {
		return 2 * math.Pi * v / wave, nil
	}
	if freq, ok := ref["freq"]; ok {
		return 2 * math.Pi * v * astro.LightSpeed * freq, nil
	}
	return 0, errMissingContext("wave", "freq")
}

func spatialFreqToDistance(v float64, ref map[string]float64) (float64, error) {
	if wave, ok := ref["wave"]; ok {
		return wave * v / (2 * math.Pi), nil
	}
	if freq, ok := ref["freq"]; ok {
		return astro.LightSpeed / freq * v / (2 * math.Pi), nil
	}
	return 0, errMissingContext("wave", "freq")
}

// fnuToFlambda converts spectral irradiance per unit frequency (W/m2/Hz) to
// spectral irradiance per unit wavelength (W/m2/m) at the reference point.
func fnuToFlambda(v float64, ref map[string]float64) (float64, error) {
	if wave, ok := ref["wave"]; ok {
		return astro.LightSpeed / (wave * wave) * v, nil
	}
	if freq, ok := ref["freq"]; ok {
		return freq * freq / astro.LightSpeed * v, nil
	}
	return 0, errMissingContext("wave", "freq")
}

func flambdaToFnu(v float64, ref map[string]float64) (float64, error) {
	if wave, ok := ref["wave"]; ok {
		return wave * wave / astro.LightSpeed * v, nil
	}
	if freq, ok := ref["freq"]; ok {
		return astro.LightSpeed / (freq * freq) * v, nil
	}
	return 0, errMissingContext("wave", "freq")
}

// fnuToNuFnu converts spectral irradiance per unit frequency to the
// frequency-weighted total nu*F_nu.
func fnuToNuFnu(v float64, ref map[string]float64) (float64, error) {
	if wave, ok := ref["wave"]; ok {
		return astro.LightSpeed / wave * v, nil
	}
	if freq, ok := ref["freq"]; ok {
		return freq / astro.LightSpeed * v, nil
	}
	return 0, errMissingContext("wave", "freq")
}

func nuFnuToFnu(v float64, ref map[string]float64) (float64, error) {
	if wave, ok := ref["wave"]; ok {
		return wave / astro.LightSpeed * v, nil
	}
	if freq, ok := ref["freq"]; ok {
		return astro.LightSpeed / freq * v, nil
	}
	return 0, errMissingContext("wave", "freq")
}

// solidAngle returns the solid angle subtended by the caller's angular size,
// given as a diameter, a radius, or a square pixel scale. The inputs are in
// the engine's cycle-based angle unit, so the 2*pi factors take them to
// radians.
func solidAngle(ref map[string]float64) (float64, error) {
	if diam, ok := ref["diam"]; ok {
		r := diam / 2
		return math.Pi * math.Pow(2*math.Pi*r, 2), nil
	}
	if radius, ok := ref["radius"]; ok {
		return math.Pi * math.Pow(2*math.Pi*radius, 2), nil
	}
	if pix, ok := ref["pix"]; ok {
		return math.Pow(2*math.Pi*pix, 2), nil
	}
	return 0, errMissingContext("diam", "radius", "pix")
}

// perSteradian divides a total quantity by the source's solid angle.
func perSteradian(v float64, ref map[string]float64) (float64, error) {
	s, err := solidAngle(ref)
	if err != nil {
		return 0, err
	}
	return v / s, nil
}

// timesSteradian integrates a per-solid-angle quantity over the source.
func timesSteradian(v float64, ref map[string]float64) (float64, error) {
	s, err := solidAngle(ref)
	if err != nil {
		return 0, err
	}
	return v * s, nil
}
