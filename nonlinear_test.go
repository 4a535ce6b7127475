package unitconv

import "testing"

func TestFahrenheit(t *testing.T) {
	var tests = []struct {
		prefix  float64
		v       float64
		forward float64
	}{
		{1, 123, 323.7055555555556},
		{1000, 0.123, 323.7055555555556},
		{1, 32, 273.15},
	}
	for _, tt := range tests {
		n := nonlinear{fam: famFahrenheit, prefix: tt.prefix}
		got := n.apply(tt.v, false)
		if !near(got, tt.forward) {
			t.Errorf("F(prefix %v) %v: Wanted %v, got %v", tt.prefix, tt.v, tt.forward, got)
		}
		if back := n.apply(got, true); !near(back, tt.v) {
			t.Errorf("F(prefix %v) roundtrip: Wanted %v, got %v", tt.prefix, tt.v, back)
		}
	}
}

func TestCelsius(t *testing.T) {
	var tests = []struct {
		prefix  float64
		v       float64
		forward float64
	}{
		{1, 10, 283.15},
		{1, 0, 273.15},
		{0.1, 100, 283.15},
	}
	for _, tt := range tests {
		n := nonlinear{fam: famCelsius, prefix: tt.prefix}
		got := n.apply(tt.v, false)
		if !near(got, tt.forward) {
			t.Errorf("C(prefix %v) %v: Wanted %v, got %v", tt.prefix, tt.v, tt.forward, got)
		}
		if back := n.apply(got, true); !near(back, tt.v) {
			t.Errorf("C(prefix %v) roundtrip: Wanted %v, got %v", tt.prefix, tt.v, back)
		}
	}
}

func TestMagnitude(t *testing.T) {
	var tests = []struct {
		fam     family
		v       float64
		forward float64
	}{
		{famVegaMag, 0, vegaZero},
		{famVegaMag, 2.5, vegaZero / 10},
		{famVegaMag, -2.5, vegaZero * 10},
		{famABMag, 0, abZero},
		{famABMag, 2.5, abZero / 10},
		// The ST system counts forward magnitudes with the opposite sign.
		{famSTMag, 0, stZero},
		{famSTMag, 2.5, stZero * 10},
	}
	for _, tt := range tests {
		n := nonlinear{fam: tt.fam, prefix: 1}
		got := n.apply(tt.v, false)
		if !near(got, tt.forward) {
			t.Errorf("fam %d mag %v: Wanted %v, got %v", tt.fam, tt.v, tt.forward, got)
		}
	}

	// Inverse recovers the magnitude from the flux for the Vega and AB
	// systems.
	for _, fam := range []family{famVegaMag, famABMag} {
		n := nonlinear{fam: fam, prefix: 1}
		if got := n.apply(n.apply(1.25, false), true); !near(got, 1.25) {
			t.Errorf("fam %d roundtrip: Wanted 1.25, got %v", fam, got)
		}
	}
}

func TestFactorMulPow(t *testing.T) {
	total := scalarFactor(1)
	total, err := total.mulPow(scalarFactor(0.01), 2, "cm2")
	if err != nil {
		t.Fatal(err)
	}
	if want := 0.0001; !near(total.scale, want) {
		t.Errorf("Wanted %v, got %v", want, total.scale)
	}

	// A nonlinear factor absorbs the accumulated scale into its prefix.
	nl := factor{scale: 1, nl: &nonlinear{fam: famCelsius, prefix: 1}}
	total, err = total.mulPow(nl, 1, "C")
	if err != nil {
		t.Fatal(err)
	}
	if total.nl == nil {
		t.Fatal("Wanted nonlinear factor, got scalar")
	}
	if want := 0.0001; !near(total.nl.prefix, want) {
		t.Errorf("Wanted prefix %v, got %v", want, total.nl.prefix)
	}

	// A second nonlinear unit in the same expression is an error.
	if _, err = total.mulPow(nl, 1, "C C"); err == nil {
		t.Error("Wanted error for two nonlinear units, got nil")
	}
}
