// Package config provides the structures used to extend the built-in unit
// tables from YAML files.
//
// A config file lists extra units, prefixes, and aliases:
//
//	units:
//	  - name: furlong
//	    factor: 201.168
//	    base: m
//	prefixes:
//	  - symbol: T
//	    factor: 1e12
//	aliases:
//	  - pattern: fur
//	    replacement: furlong
//
// Units are given by their SI factor and the SI base string they reduce to;
// nonlinear units cannot be defined from config.
package config

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/astrokit/unitconv/internal/fileutil"
	"github.com/astrokit/unitconv/log"
)

// Config holds user extensions to the unit tables. The zero value adds
// nothing. Config should be created with a call to [Default], [Read], or
// [Load].
type Config struct {
	Units    []Unit    `yaml:"units,omitempty"`
	Prefixes []Prefix  `yaml:"prefixes,omitempty"`
	Aliases  []Alias   `yaml:"aliases,omitempty"`
	Log      LogConfig `yaml:"log,omitempty"`
}

// Unit defines one linear unit by its multiplicative factor to SI and the
// SI base string it reduces to, e.g. {Name: "furlong", Factor: 201.168,
// Base: "m"}. The base string may be compound ("kg m2 s-3").
type Unit struct {
	Name   string  `yaml:"name"`
	Factor float64 `yaml:"factor"`
	Base   string  `yaml:"base"`
}

// Prefix defines one scaling prefix. Prefixes are tried after the built-in
// ones, in the order they appear in the config.
type Prefix struct {
	Symbol string  `yaml:"symbol"`
	Factor float64 `yaml:"factor"`
}

// Alias defines one literal-substring rewrite, applied after the built-in
// aliases in config order.
type Alias struct {
	Pattern     string `yaml:"pattern"`
	Replacement string `yaml:"replacement"`
}

// UnmarshalYAML implements [yaml.Unmarshaler]. An alias may be given either
// as a mapping or as the shorthand "pattern: replacement" single-pair form.
func (a *Alias) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode && len(node.Content) == 2 && node.Content[0].Value != "pattern" {
		a.Pattern = node.Content[0].Value
		return node.Content[1].Decode(&a.Replacement)
	}
	type plain Alias
	return node.Decode((*plain)(a))
}

var defaultCfg = &Config{}

// Default returns the default Config when no config file is provided.
func Default() *Config {
	return defaultCfg
}

// Read returns the Config parsed from the yaml encoded config from r.
func Read(r io.Reader) (cfg *Config, err error) {
	cfg = &Config{}
	if err = yaml.NewDecoder(r).Decode(cfg); err != nil {
		if err == io.EOF {
			return cfg, nil
		}
		return nil, err
	}
	return cfg, nil
}

// Load returns the Config parsed from the given yaml files. If the first
// file does not exist, the default config is returned. If any of the given
// paths are directories, all the files in the directory are read.
func Load(file ...string) (cfg *Config, err error) {
	if len(file) == 0 {
		return Default(), nil
	}
	log.Debug("Loading config", "path", file)
	if _, err = os.Stat(file[0]); err != nil {
		return Default(), nil
	}
	r := fileutil.NewMultiReader(file...)
	defer r.Close()
	return Read(r)
}
