package unitconv_test

import (
	"fmt"

	"github.com/astrokit/unitconv"
)

func ExampleConvert() {
	v, err := unitconv.Convert("km", "cm", 1)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v)
	// Output: 100000
}

func ExampleConvert_reference() {
	// Converting a wavelength to a Doppler velocity needs the reference
	// wavelength it is measured against.
	v, err := unitconv.Convert("A", "km/s", 4553, unitconv.Wave(4552, "A"))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.3f\n", v)
	// Output: 65.860
}

func ExampleBreakdown() {
	factor, sig, err := unitconv.Breakdown("erg s-1 cm-2 A-1")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(factor, sig)
	// Output: 1e+07 kg1 m-1 s-3
}

func ExampleComponents() {
	factor, basis, power, err := unitconv.Components("hg3")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(factor, basis, power)
	// Output: 0.1 kg 3
}
