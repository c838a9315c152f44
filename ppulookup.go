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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/jetsetilly/ppulookup/comparison"
	"github.com/jetsetilly/ppulookup/config"
	"github.com/jetsetilly/ppulookup/digest"
	"github.com/jetsetilly/ppulookup/emit"
	"github.com/jetsetilly/ppulookup/hardware/ppu/scanline"
	"github.com/jetsetilly/ppulookup/logger"
	"github.com/jetsetilly/ppulookup/modalflag"
	"github.com/jetsetilly/ppulookup/performance"
	"github.com/jetsetilly/ppulookup/statsview"
	"github.com/jetsetilly/ppulookup/terminal"
	"github.com/jetsetilly/ppulookup/terminal/easyterm"
	"github.com/jetsetilly/ppulookup/timeline"
	"github.com/jetsetilly/ppulookup/version"
	"gonum.org/v1/plot/vg"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// launch runs the mode selected by the arguments and returns the value to
// use with os.Exit()
func launch(ctx context.Context, args []string, output io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("GENERATE", "SHOW", "PLOT", "DIGEST", "COMPARE", "PERFORMANCE", "VERSION")
	md.AdditionalHelp(version.String())
	echo := md.AddBool("log", cfg.Log, "echo log entries to stdout")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	// echo may also be turned on by the selected mode
	defer logger.SetEcho(nil)
	if *echo {
		logger.SetEcho(output)
	}

	switch md.Mode() {
	case "GENERATE":
		err = generate(md, cfg)

	case "SHOW":
		err = show(md, cfg)

	case "PLOT":
		err = plotTimeline(md, cfg)

	case "DIGEST":
		err = digestTable(md, cfg)

	case "COMPARE":
		err = compare(md, cfg)

	case "PERFORMANCE":
		err = perform(ctx, md, cfg)

	case "VERSION":
		err = showVersion(md, cfg)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// every mode accepts the -log flag so that it can be given before or after
// the mode selector
func parseMode(md *modalflag.Modes, cfg config.Config) (bool, error) {
	echo := md.AddBool("log", cfg.Log, "echo log entries to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return false, err
	}

	if *echo {
		logger.SetEcho(md.Output)
	}

	return true, nil
}

func buildTable(timing string) (scanline.Table, error) {
	tm, err := scanline.TimingFor(timing)
	if err != nil {
		return scanline.Table{}, err
	}
	return scanline.BuildTiming(tm)
}

func generate(md *modalflag.Modes, cfg config.Config) error {
	md.NewMode()

	format := md.AddString("format", cfg.Format, "output format: GO, C, LISTING")
	timing := md.AddString("timing", cfg.Timing, "timing preset: NTSC, PAL, DENDY")
	pkg := md.AddString("package", cfg.Package, "package name for GO format")
	out := md.AddString("o", cfg.Output, "output file (stdout if empty)")
	header := md.AddString("header", "", "replacement header comment for C format")

	ok, err := parseMode(md, cfg)
	if !ok {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	f, err := emit.ParseFormat(*format)
	if err != nil {
		return err
	}

	tab, err := buildTable(*timing)
	if err != nil {
		return err
	}

	var w io.Writer = md.Output
	if *out != "" {
		fo, err := os.Create(*out)
		if err != nil {
			return err
		}
		defer fo.Close()
		w = fo
	}

	if f == emit.C && *header != "" {
		err = emit.CSourceWithHeader(w, &tab, *header)
	} else {
		err = emit.Emit(w, f, &tab, *pkg)
	}
	if err != nil {
		return err
	}

	if *out != "" {
		logger.Logf(logger.Allow, "generate", "%s written as %s", *out, f)
	}

	return nil
}

func show(md *modalflag.Modes, cfg config.Config) error {
	md.NewMode()

	chunk := md.AddInt("chunk", -1, "show only the numbered chunk (0 to 41)")
	timing := md.AddString("timing", cfg.Timing, "timing preset: NTSC, PAL, DENDY")
	summary := md.AddBool("summary", false, "show number of cycles for each action")
	width := md.AddInt("width", 0, "width of output (terminal width if zero)")
	color := md.AddBool("color", true, "use colour when output is a terminal")

	ok, err := parseMode(md, cfg)
	if !ok {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	tab, err := buildTable(*timing)
	if err != nil {
		return err
	}

	if *summary {
		return terminal.Summary(md.Output, &tab)
	}

	opts := terminal.Options{
		Width: *width,
		Chunk: *chunk,
	}

	// geometry and colour are only available if output is a terminal
	if f, ok := md.Output.(*os.File); ok {
		if opts.Width <= 0 {
			opts.Width = easyterm.Width(f)
		}
		opts.Color = *color && easyterm.IsTerminal(f)
	}

	return terminal.Show(md.Output, &tab, opts)
}

func plotTimeline(md *modalflag.Modes, cfg config.Config) error {
	md.NewMode()

	out := md.AddString("o", "timeline.png", "output file. format taken from extension: png, svg, pdf")
	timing := md.AddString("timing", cfg.Timing, "timing preset: NTSC, PAL, DENDY")
	width := md.AddFloat64("width", float64(timeline.DefaultWidth/vg.Centimeter), "width of chart in centimetres")
	height := md.AddFloat64("height", float64(timeline.DefaultHeight/vg.Centimeter), "height of chart in centimetres")

	ok, err := parseMode(md, cfg)
	if !ok {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	tm, err := scanline.TimingFor(*timing)
	if err != nil {
		return err
	}

	tab, err := scanline.BuildTiming(tm)
	if err != nil {
		return err
	}

	err = timeline.Save(&tab, tm, *out, vg.Length(*width)*vg.Centimeter, vg.Length(*height)*vg.Centimeter)
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "timeline written to %s\n", *out)

	return nil
}

func digestTable(md *modalflag.Modes, cfg config.Config) error {
	md.NewMode()

	timing := md.AddString("timing", cfg.Timing, "timing preset: NTSC, PAL, DENDY. ALL for every preset")

	ok, err := parseMode(md, cfg)
	if !ok {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	timings := []scanline.Timing{}
	if strings.EqualFold(*timing, "ALL") {
		timings = append(timings, scanline.Timings...)
	} else {
		tm, err := scanline.TimingFor(*timing)
		if err != nil {
			return err
		}
		timings = append(timings, tm)
	}

	dig := digest.NewTable()
	for _, tm := range timings {
		tab, err := scanline.BuildTiming(tm)
		if err != nil {
			return err
		}
		if err := dig.Add(&tab); err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "%-6s %016x\n", tm.Name, digest.Fingerprint(&tab))
	}
	fmt.Fprintf(md.Output, "%-6s %s\n", "sha1", dig.Hash())

	return nil
}

func compare(md *modalflag.Modes, cfg config.Config) error {
	md.NewMode()
	md.AdditionalHelp("compares two files line by line, stopping at the first mismatch")

	ok, err := parseMode(md, cfg)
	if !ok {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0, 1:
		return fmt.Errorf("two files required for %s mode", md)
	case 2:
		res, err := comparison.Files(md.GetArg(0), md.GetArg(1), md.Output)
		if err != nil {
			return err
		}
		if !res.Match() {
			return fmt.Errorf("%s and %s differ: %s", filepath.Base(md.GetArg(0)), filepath.Base(md.GetArg(1)), res)
		}
		fmt.Fprintln(md.Output, res)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	return nil
}

func perform(ctx context.Context, md *modalflag.Modes, cfg config.Config) error {
	md.NewMode()

	timing := md.AddString("timing", cfg.Timing, "timing preset: NTSC, PAL, DENDY")
	duration := md.AddDuration("duration", 5*time.Second, "run duration")
	profile := md.AddString("profile", "none", "run performance check with profiling: comma separated CPU, MEM, TRACE or ALL")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	ok, err := parseMode(md, cfg)
	if !ok {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	tm, err := scanline.TimingFor(*timing)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(md.Output)
	}

	_, err = performance.Check(ctx, md.Output, prf, tm, *duration)
	return err
}

func showVersion(md *modalflag.Modes, cfg config.Config) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information from version control")

	ok, err := parseMode(md, cfg)
	if !ok {
		return err
	}

	v, r, _ := version.Version()
	if *revision {
		fmt.Fprintf(md.Output, "%s %s (%s)\n", version.ApplicationName, v, r)
	} else {
		fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	}

	return nil
}
