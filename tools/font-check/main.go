// robotomonojp - build tools for the RobotoMonoJP font family
// Copyright (C) 2026  Junya Morioka <mjun@mjunya.com>
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

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"slices"
	"strconv"

	"github.com/pterm/pterm"
	"golang.org/x/text/width"

	"github.com/mjunya/robotomonojp/tools/internal/buildinfo"
	"github.com/mjunya/robotomonojp/tools/internal/fontcli"
	"github.com/mjunya/robotomonojp/tools/internal/profile"
)

var (
	halfArg    = flag.Float64("half", 0, "half-width advance; 0 means half the em size")
	fullArg    = flag.Float64("full", 0, "full-width advance; 0 means the em size")
	sfntArg    = flag.Bool("sfnt", true, "cross-check the file with an independent sfnt reader")
	maxArg     = flag.Int("max", 20, "show at most `n` problems per file")
	verbose    = flag.Bool("v", false, "show the width table")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

var errProblems = errors.New("problems found")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "font-check - check the advance widths of a built font\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("font-check"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  font-check [options] <font.ttf>...\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  font-check RobotoMonoJP-Mono/RobotoMonoJP-Mono-Regular.ttf\n")
		fmt.Fprintf(os.Stderr, "  font-check -full 2598 RobotoMonoJP/RobotoMonoJP-Regular.ttf\n")
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	stop, err := profile.Start(*cpuprofile, *memprofile)
	if err != nil {
		return err
	}
	defer stop()

	fontcli.SetupOutput(*verbose)

	bad := false
	for _, fname := range flag.Args() {
		ok, err := checkFile(fname)
		if err != nil {
			return err
		}
		bad = bad || !ok
	}
	if bad {
		return errProblems
	}
	return nil
}

func checkFile(fname string) (bool, error) {
	data, f, err := load(fname)
	if err != nil {
		return false, err
	}

	g := grid{half: *halfArg, full: *fullArg}
	if g.full == 0 {
		g.full = float64(f.Em)
	}
	if g.half == 0 {
		g.half = float64(f.Em) / 2
	}

	pterm.Info.Printfln("%s: %d glyphs, em %d", fname, f.NumGlyphs(), f.Em)
	rep := checkWidths(f, g)
	if *verbose {
		err = widthTable(rep).Render()
		if err != nil {
			return false, err
		}
	}

	problems := rep.violations
	if *sfntArg {
		more, err := crossCheck(data, f)
		if err != nil {
			return false, fmt.Errorf("%s: %w", fname, err)
		}
		problems = append(problems, more...)
	}

	for i, v := range problems {
		if i >= *maxArg {
			pterm.Warning.Printfln("... %d more", len(problems)-i)
			break
		}
		pterm.Warning.Println(v.String())
	}
	if len(problems) > 0 {
		return false, nil
	}
	pterm.Success.Printfln("%s: all widths on the grid", fname)
	return true, nil
}

func widthTable(rep *report) *pterm.TablePrinter {
	data := pterm.TableData{{"Class", "Width", "Glyphs"}}
	kinds := make([]width.Kind, 0, len(rep.widths))
	for k := range rep.widths {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	for _, k := range kinds {
		ws := make([]float64, 0, len(rep.widths[k]))
		for w := range rep.widths[k] {
			ws = append(ws, w)
		}
		slices.Sort(ws)
		for _, w := range ws {
			data = append(data, []string{
				kindName(k),
				strconv.FormatFloat(w, 'f', -1, 64),
				strconv.Itoa(rep.widths[k][w]),
			})
		}
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data)
}
