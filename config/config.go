// This file is part of ppulookup.
//
// ppulookup is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ppulookup is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ppulookup.  If not, see <https://www.gnu.org/licenses/>.

// Package config reads the settings that can be given to ppulookup through
// the environment. Command line flags take precedence over the values found
// here and the values found here take precedence over the defaults.
//
//	PPULOOKUP_TIMING   timing preset (NTSC, PAL or DENDY)
//	PPULOOKUP_FORMAT   output format for GENERATE mode (GO, C or LISTING)
//	PPULOOKUP_OUTPUT   output file for GENERATE mode. stdout if empty
//	PPULOOKUP_PACKAGE  package name used by the GO format
//	PPULOOKUP_LOG      echo log entries to stdout
package config

import (
	"go/token"

	"github.com/caarlos0/env/v11"
	"github.com/jetsetilly/ppulookup/curated"
	"github.com/jetsetilly/ppulookup/emit"
	"github.com/jetsetilly/ppulookup/hardware/ppu/scanline"
)

// Config values read from the environment.
type Config struct {
	Timing  string `env:"PPULOOKUP_TIMING"  envDefault:"NTSC"`
	Format  string `env:"PPULOOKUP_FORMAT"  envDefault:"GO"`
	Output  string `env:"PPULOOKUP_OUTPUT"`
	Package string `env:"PPULOOKUP_PACKAGE" envDefault:"scanline"`
	Log     bool   `env:"PPULOOKUP_LOG"     envDefault:"false"`
}

// Curated error patterns.
const (
	ConfigError    = "config: %v"
	InvalidPackage = "config: invalid package name (%s)"
)

// Load configuration from the process environment.
func Load() (Config, error) {
	return parse(env.Options{})
}

// LoadFrom loads configuration from the supplied environment rather than the
// environment of the process.
func LoadFrom(environ map[string]string) (Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, curated.Errorf(ConfigError, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every value names something that exists.
func (cfg Config) Validate() error {
	if _, err := scanline.TimingFor(cfg.Timing); err != nil {
		return curated.Errorf(ConfigError, err)
	}
	if _, err := emit.ParseFormat(cfg.Format); err != nil {
		return curated.Errorf(ConfigError, err)
	}
	if !token.IsIdentifier(cfg.Package) {
		return curated.Errorf(InvalidPackage, cfg.Package)
	}
	return nil
}

// TimingPreset returns the scanline timing named by the Timing field.
func (cfg Config) TimingPreset() (scanline.Timing, error) {
	return scanline.TimingFor(cfg.Timing)
}

// OutputFormat returns the emit format named by the Format field.
func (cfg Config) OutputFormat() (emit.Format, error) {
	return emit.ParseFormat(cfg.Format)
}
