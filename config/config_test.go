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

package config_test

import (
	"testing"

	"github.com/jetsetilly/ppulookup/config"
	"github.com/jetsetilly/ppulookup/curated"
	"github.com/jetsetilly/ppulookup/emit"
	"github.com/jetsetilly/ppulookup/hardware/ppu/scanline"
	"github.com/jetsetilly/ppulookup/test"
)

func TestDefaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.Timing, "NTSC")
	test.ExpectEquality(t, cfg.Format, "GO")
	test.ExpectEquality(t, cfg.Output, "")
	test.ExpectEquality(t, cfg.Package, "scanline")
	test.ExpectFailure(t, cfg.Log)

	tm, err := cfg.TimingPreset()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tm, scanline.NTSC)

	f, err := cfg.OutputFormat()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, emit.Go)
}

func TestEnvironment(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"PPULOOKUP_TIMING":  "pal",
		"PPULOOKUP_FORMAT":  "c",
		"PPULOOKUP_OUTPUT":  "ppu_renderer_lookup.c",
		"PPULOOKUP_PACKAGE": "ppu",
		"PPULOOKUP_LOG":     "true",
	})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.Output, "ppu_renderer_lookup.c")
	test.ExpectEquality(t, cfg.Package, "ppu")
	test.ExpectSuccess(t, cfg.Log)

	tm, err := cfg.TimingPreset()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tm.Name, "PAL")

	f, err := cfg.OutputFormat()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, f, emit.C)
}

func TestInvalid(t *testing.T) {
	_, err := config.LoadFrom(map[string]string{"PPULOOKUP_TIMING": "SECAM"})
	test.ExpectSuccess(t, curated.Has(err, scanline.UnknownTiming))

	_, err = config.LoadFrom(map[string]string{"PPULOOKUP_FORMAT": "RUST"})
	test.ExpectSuccess(t, curated.Has(err, emit.UnknownFormat))

	_, err = config.LoadFrom(map[string]string{"PPULOOKUP_PACKAGE": "not a package"})
	test.ExpectSuccess(t, curated.Is(err, config.InvalidPackage))

	_, err = config.LoadFrom(map[string]string{"PPULOOKUP_LOG": "maybe"})
	test.ExpectSuccess(t, curated.Is(err, config.ConfigError))
}

func TestLoad(t *testing.T) {
	t.Setenv("PPULOOKUP_TIMING", "DENDY")
	cfg, err := config.Load()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, cfg.Timing, "DENDY")
}
