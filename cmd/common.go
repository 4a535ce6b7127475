package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/astrokit/unitconv"
	"github.com/astrokit/unitconv/config"
	"github.com/astrokit/unitconv/log"
)

// levelFlag is the --log flag value. It records whether the flag was given
// so the config file's level applies only when it is absent.
type levelFlag struct {
	log.LevelFlag
	set bool
}

func (f *levelFlag) Set(s string) error {
	if err := f.LevelFlag.Set(s); err != nil {
		return err
	}
	f.set = true
	return nil
}

// Flags shared by several commands.
var (
	ConfigPath []string  // Path(s) to config file/directory
	LogLevel   levelFlag // Log level
)

// addConfigFlags registers the config and log flags every subcommand takes.
func addConfigFlags(fs *pflag.FlagSet) {
	fs.StringSliceVarP(&ConfigPath, "config", "c", nil, "Path(s) to config file/directory")
	fs.VarP(&LogLevel, "log", "l", "Log level")
}

func findConfig() {
	const defaultConfigFile = "unitconv.yaml"

	if len(ConfigPath) > 0 {
		return
	}

	if env, ok := os.LookupEnv("UNITCONV_CONFIG_PATH"); ok {
		ConfigPath = strings.Split(env, ",")
		return
	}

	if xdg, ok := os.LookupEnv("XDG_CONFIG_HOME"); ok {
		ConfigPath = []string{filepath.Join(xdg, defaultConfigFile)}
		return
	}

	home, err := os.UserHomeDir()
	cobra.CheckErr(err)

	ConfigPath = []string{filepath.Join(home, ".config", defaultConfigFile)}
}

// loadConverter loads the config and builds the converter backing a command
// invocation.
func loadConverter() (*unitconv.Converter, error) {
	findConfig()
	cfg, err := config.Load(ConfigPath...)
	if err != nil {
		return nil, err
	}
	setLogHandler(cfg)
	return unitconv.New(cfg)
}

// setLogHandler points the logger at the config's output target and format.
// The --log flag overrides the config's level.
func setLogHandler(cfg *config.Config) {
	var w io.Writer

	switch strings.ToLower(cfg.Log.Output) {
	case "", "stderr":
	case "stdout":
		w = os.Stdout
	case "discard":
		log.SetHandler(log.DiscardHandler)
		return
	default:
		// The file stays open for the life of the process.
		f, err := os.OpenFile(cfg.Log.Output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Error("Unable to open log file, deferring to stderr", err)
		} else {
			w = f
		}
	}

	if LogLevel.set {
		log.SetLogLevel(log.Level(LogLevel.LevelFlag))
	} else {
		log.SetLogLevel(cfg.Log.Level)
	}

	switch strings.ToLower(cfg.Log.Format) {
	case "json":
		if w == nil {
			w = os.Stderr
		}
		log.SetJSONHandler(w)
	default:
		if w != nil {
			log.SetTextHandler(w)
		}
	}
}

// parseQuantity parses a "<value>@<unit>" flag, e.g. "4552@A".
func parseQuantity(s string) (float64, string, error) {
	val, unit, ok := strings.Cut(s, "@")
	if !ok {
		return 0, "", fmt.Errorf("%q: want <value>@<unit>", s)
	}
	v, err := strconv.ParseFloat(val, 64)
	if err != nil {
		return 0, "", fmt.Errorf("%q: %w", s, err)
	}
	return v, unit, nil
}

// refOptions turns the reference flags into engine options. Each entry maps
// a flag value onto the option constructor for its keyword.
func refOptions(refs map[string]func(float64, string) unitconv.Option, flags map[string]string) ([]unitconv.Option, error) {
	var opts []unitconv.Option
	for key, s := range flags {
		if s == "" {
			continue
		}
		v, unit, err := parseQuantity(s)
		if err != nil {
			return nil, fmt.Errorf("--%s %w", key, err)
		}
		opts = append(opts, refs[key](v, unit))
	}
	return opts, nil
}

// formatResult renders a converted value the way the engine's callers expect
// to read it back, with no trailing zero padding.
func formatResult(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
