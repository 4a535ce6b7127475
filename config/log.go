package config

import "github.com/astrokit/unitconv/log"

// LogConfig controls the logger used while loading tables and running the
// command line tool. The conversion engine itself never logs. Output is
// "stderr" (the default), "stdout", "discard", or a file path; Format is
// "text" or "json".
type LogConfig struct {
	Level  log.Level `yaml:"level"`
	Output string    `yaml:"output"`
	Format string    `yaml:"format"`
}
