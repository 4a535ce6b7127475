package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/astrokit/unitconv"
)

// Flags for [ConvertCommand]
var (
	WaveFlag   string // Reference wavelength, <value>@<unit>
	FreqFlag   string // Reference frequency, <value>@<unit>
	DiamFlag   string // Angular diameter, <value>@<unit>
	RadiusFlag string // Angular radius, <value>@<unit>
	PixFlag    string // Pixel scale, <value>@<unit>
)

// ConvertCommand is the main [cobra.Command] used for converting a value.
var ConvertCommand = &cobra.Command{
	Use:     "convert <value> <from> <to>",
	Aliases: []string{"c"},
	Short:   "Convert a value between two unit expressions",
	Long: `Convert a value between two unit expressions.

Unit expressions are free-form compound strings such as "erg s-1 cm-2 A-1" or
"km/h"; quote expressions containing spaces. The special target "SI" reduces
the source to SI base units at factor 1.

Conversions between dimensionally different quantities (wavelength to
velocity, flux per wavelength to flux per frequency, total to per-steradian)
need a reference quantity, supplied as "<value>@<unit>":

	unitconv convert 4553 A km/s --wave 4552@A`,
	Example: `  unitconv convert 1 km cm
  unitconv convert 123 F K
  unitconv convert 1e-10 "erg/s/cm2/A" Jy --wave 10000@angstrom`,
	GroupID: "commands",
	Args:    cobra.ExactArgs(3),
	RunE:    runConvert,

	DisableFlagsInUseLine: true,
}

func init() {
	ConvertCommand.Flags().SortFlags = false
	addConfigFlags(ConvertCommand.Flags())
	ConvertCommand.Flags().StringVarP(&WaveFlag, "wave", "w", "", "Reference wavelength (<value>@<unit>)")
	ConvertCommand.Flags().StringVarP(&FreqFlag, "freq", "f", "", "Reference frequency (<value>@<unit>)")
	ConvertCommand.Flags().StringVar(&DiamFlag, "diam", "", "Angular diameter (<value>@<unit>)")
	ConvertCommand.Flags().StringVar(&RadiusFlag, "radius", "", "Angular radius (<value>@<unit>)")
	ConvertCommand.Flags().StringVar(&PixFlag, "pix", "", "Pixel scale (<value>@<unit>)")

	ConvertCommand.MarkFlagFilename("config", "yaml", "yml")
}

var refConstructors = map[string]func(float64, string) unitconv.Option{
	"wave":   unitconv.Wave,
	"freq":   unitconv.Freq,
	"diam":   unitconv.Diam,
	"radius": unitconv.Radius,
	"pix":    unitconv.Pix,
}

func runConvert(cmd *cobra.Command, args []string) error {
	value, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return err
	}

	opts, err := refOptions(refConstructors, map[string]string{
		"wave":   WaveFlag,
		"freq":   FreqFlag,
		"diam":   DiamFlag,
		"radius": RadiusFlag,
		"pix":    PixFlag,
	})
	if err != nil {
		return err
	}

	conv, err := loadConverter()
	if err != nil {
		return err
	}

	out, err := conv.Convert(args[1], args[2], value, opts...)
	if err != nil {
		return err
	}

	cmd.Println(formatResult(out))
	return nil
}
