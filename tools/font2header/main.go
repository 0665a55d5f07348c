// seehuhn.de/go/fontembed - embed font files in C and C++ sources
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Font2header converts a font file into a C header file.
//
// Without arguments, MesloLGL-Regular.ttf from the current directory is
// converted into meslo_font_data.h.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"seehuhn.de/go/fontembed"
	"seehuhn.de/go/fontembed/header"
	"seehuhn.de/go/fontembed/internal/fontinfo"
	"seehuhn.de/go/fontembed/tools/internal/buildinfo"
	"seehuhn.de/go/fontembed/tools/internal/profile"
)

const toolName = "font2header"

// config holds all command-line flag values.
type config struct {
	input      string
	output     string
	name       string
	width      int
	check      bool
	verbose    bool
	cpuprofile string
	memprofile string
}

var errOutOfDate = errors.New("output is out of date")

func main() {
	cfg, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	} else if err != nil {
		os.Exit(1)
	}

	err = run(cfg, os.Stdout, os.Stderr)
	os.Exit(report(err, os.Stdout, os.Stderr))
}

func parseArgs(args []string, errOut io.Writer) (*config, error) {
	cfg := &config{}

	flags := flag.NewFlagSet(toolName, flag.ContinueOnError)
	flags.SetOutput(errOut)
	flags.StringVar(&cfg.output, "o", fontembed.DefaultOutput, "write the header to `file` (\"-\" for standard output)")
	flags.StringVar(&cfg.name, "name", "", "derive the C identifiers from `prefix` (default MESLO)")
	flags.IntVar(&cfg.width, "width", 16, "number of bytes per line")
	flags.BoolVar(&cfg.check, "check", false, "only check whether the output file is up to date")
	flags.BoolVar(&cfg.verbose, "v", false, "describe the font on standard error")
	flags.StringVar(&cfg.cpuprofile, "cpuprofile", "", "write cpu profile to `file`")
	flags.StringVar(&cfg.memprofile, "memprofile", "", "write memory profile to `file`")
	flags.Usage = func() {
		out := flags.Output()
		fmt.Fprintf(out, "%s - embed a font file in a C header\n", toolName)
		fmt.Fprintf(out, "%s\n\n", buildinfo.Short(toolName))
		fmt.Fprintf(out, "Usage:\n")
		fmt.Fprintf(out, "  %s [options] [font-file]\n\n", toolName)
		fmt.Fprintf(out, "Arguments:\n")
		fmt.Fprintf(out, "  font-file  the font to embed (default %s)\n\n", fontembed.DefaultInput)
		fmt.Fprintf(out, "Options:\n")
		flags.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  %s\n", toolName)
		fmt.Fprintf(out, "  %s -name \"Go Mono\" -o gomono.h Go-Mono.ttf\n", toolName)
		fmt.Fprintf(out, "  %s -check\n", toolName)
	}

	err := flags.Parse(args)
	if err != nil {
		return nil, err
	}

	switch flags.NArg() {
	case 0:
		cfg.input = fontembed.DefaultInput
	case 1:
		cfg.input = flags.Arg(0)
	default:
		fmt.Fprintln(errOut, "error: too many arguments")
		flags.Usage()
		return nil, errors.New("too many arguments")
	}
	return cfg, nil
}

// headerOptions converts the command line flags into options for the
// header package.
func (cfg *config) headerOptions() (*header.Options, error) {
	if cfg.width < 1 {
		return nil, fmt.Errorf("invalid -width %d, must be positive", cfg.width)
	}
	opt := &header.Options{PerLine: cfg.width}
	if cfg.name != "" {
		names, err := header.NamesFor(cfg.name)
		if err != nil {
			return nil, fmt.Errorf("invalid -name: %w", err)
		}
		opt.Names = names
	}
	return opt, nil
}

func run(cfg *config, stdout, stderr io.Writer) (err error) {
	stop, err := profile.Start(cfg.cpuprofile, cfg.memprofile)
	if err != nil {
		return err
	}
	defer func() {
		stopErr := stop()
		if err == nil {
			err = stopErr
		}
	}()

	opt, err := cfg.headerOptions()
	if err != nil {
		return err
	}

	if cfg.verbose {
		data, err := fontembed.ReadInput(cfg.input)
		if err != nil {
			return err
		}
		summary, err := fontinfo.Describe(data)
		if err != nil {
			fmt.Fprintf(stderr, "warning: %s: %v\n", cfg.input, err)
		} else {
			fmt.Fprintf(stderr, "%s: %s\n", cfg.input, summary)
		}
	}

	switch {
	case cfg.check:
		ok, err := fontembed.Check(cfg.input, cfg.output, opt)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Fprintf(stdout, "%s is out of date\n", cfg.output)
			return errOutOfDate
		}
		return nil

	case cfg.output == "-":
		data, err := fontembed.ReadInput(cfg.input)
		if err != nil {
			return err
		}
		err = header.Write(stdout, data, opt)
		if err != nil {
			return err
		}
		res := &fontembed.Result{Output: "<stdout>", Size: len(data)}
		fmt.Fprintln(stderr, res)
		return nil

	default:
		res, err := fontembed.Convert(cfg.input, cfg.output, opt)
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, res)
		return nil
	}
}

// report prints the diagnostic for err and returns the exit status.
func report(err error, stdout, stderr io.Writer) int {
	var missing *fontembed.MissingInputError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &missing):
		fmt.Fprintf(stdout, "Error: %s not found\n", missing.Path)
	case errors.Is(err, errOutOfDate):
		// already reported by run
	default:
		fmt.Fprintln(stderr, err)
	}
	return 1
}
