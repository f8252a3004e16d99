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

// Package fontcli implements the command line driver shared by the font
// build tools.
package fontcli

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/pterm/pterm"
	"golang.org/x/term"

	"github.com/mjunya/robotomonojp/iconpatch"
	"github.com/mjunya/robotomonojp/pipeline"
	"github.com/mjunya/robotomonojp/specimen"
	"github.com/mjunya/robotomonojp/style"
	"github.com/mjunya/robotomonojp/typeface/ttfio"
)

// Config holds the command line settings of a build.
type Config struct {
	JPFont string
	ENFont string
	Style  string
	Out    string
	Tmp    string
	Icons  string
	OTF    bool
	PDF    string
	PNG    string

	Verbose bool
}

// Register installs the build flags into fs.
func (c *Config) Register(fs *flag.FlagSet, v *pipeline.Variant) {
	fs.StringVar(&c.JPFont, "jp_font", "fonts/IBMPlexSansJP/IBMPlexSansJP-Regular.ttf",
		"Japanese source font (file or installed font `name`)")
	fs.StringVar(&c.ENFont, "en_font", "fonts/RobotoMono/RobotoMono-Regular.ttf",
		"Latin source font (file or installed font `name`)")
	fs.StringVar(&c.Style, "style", "Regular",
		"font style, one of "+strings.Join(style.Names(), ", "))
	fs.StringVar(&c.Out, "out", v.Family.Name, "output `directory`")
	fs.StringVar(&c.Tmp, "tmp", "tmp", "`directory` for intermediate fonts, empty to disable")
	fs.StringVar(&c.Icons, "icons", "", "comma separated list of symbol `fonts` to patch in")
	fs.BoolVar(&c.OTF, "otf", false, "also write an OpenType/CFF font")
	fs.StringVar(&c.PDF, "pdf", "", "write a PDF sample sheet to `file`")
	fs.StringVar(&c.PNG, "png", "", "write a PNG preview to `file`")
	fs.BoolVar(&c.Verbose, "v", false, "show progress details")
}

// Usage returns a flag.Usage function for the font builder cmd.  The
// text goes to the output of fs.
func Usage(fs *flag.FlagSet, cmd, headline, version string) func() {
	return func() {
		w := fs.Output()
		fmt.Fprintf(w, "%s - %s\n", cmd, headline)
		fmt.Fprintf(w, "%s\n\n", version)
		fmt.Fprintf(w, "Usage:\n")
		fmt.Fprintf(w, "  %s [options]\n\n", cmd)
		fmt.Fprintf(w, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(w, "\nExamples:\n")
		fmt.Fprintf(w, "  %s -style %s\n", cmd, style.Bold)
		fmt.Fprintf(w, "  %s -style %s -icons SymbolsNerdFont-Regular.ttf -pdf sample.pdf\n",
			cmd, style.RegularItalic)
	}
}

// SetupOutput configures the terminal output.  Colours are used only
// when standard output is a terminal.
func SetupOutput(verbose bool) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		pterm.DisableColor()
		pterm.DisableStyling()
	}
	if verbose {
		pterm.EnableDebugMessages()
	}
}

// Reporter prints pipeline messages.  Warnings are always shown,
// informational messages only in verbose mode.
func Reporter() pipeline.Reporter {
	return func(err error) {
		var w *pipeline.WarningMsg
		if errors.As(err, &w) {
			pterm.Warning.Println(w.Error())
			return
		}
		pterm.Debug.Println(err.Error())
	}
}

// ResolveFont returns the path of a font file.  Names which do not refer
// to an existing file are looked up among the installed fonts.
func ResolveFont(name string) (string, error) {
	if name == "" {
		return "", errors.New("missing font name")
	}
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}
	fname, err := findfont.Find(name)
	if err != nil {
		return "", fmt.Errorf("font %q: %w", name, err)
	}
	return fname, nil
}

// Run builds one style of the variant and writes all requested outputs.
func Run(v *pipeline.Variant, c *Config) error {
	jpName, err := ResolveFont(c.JPFont)
	if err != nil {
		return err
	}
	enName, err := ResolveFont(c.ENFont)
	if err != nil {
		return err
	}

	pterm.Info.Printfln("loading %s", enName)
	latin, err := ttfio.ReadFile(enName)
	if err != nil {
		return err
	}
	pterm.Info.Printfln("loading %s", jpName)
	cjk, err := ttfio.ReadFile(jpName)
	if err != nil {
		return err
	}

	opt := &pipeline.Options{
		Style:      c.Style,
		Latin:      latin,
		CJK:        cjk,
		ScratchDir: c.Tmp,
		Reporter:   Reporter(),
	}
	if c.Icons != "" {
		var names []string
		for _, name := range strings.Split(c.Icons, ",") {
			fname, err := ResolveFont(strings.TrimSpace(name))
			if err != nil {
				return err
			}
			names = append(names, fname)
		}
		p, err := iconpatch.NewSymbolPatcher(names...)
		if err != nil {
			return err
		}
		p.OnSet = func(set string, added int) {
			pterm.Debug.Printfln("%s: %d icons", set, added)
		}
		opt.Patcher = p
	}

	pterm.Info.Printfln("building %s", v.Family.FontName(c.Style))
	f, err := v.Build(opt)
	if err != nil {
		return err
	}

	err = os.MkdirAll(c.Out, 0o755)
	if err != nil {
		return err
	}
	formats := []ttfio.Format{ttfio.FormatTrueType}
	if c.OTF {
		formats = append(formats, ttfio.FormatOpenType)
	}
	for _, format := range formats {
		fname := v.OutputPath(c.Out, c.Style, format)
		err = ttfio.WriteFile(fname, f, format)
		if err != nil {
			return err
		}
		pterm.Success.Printfln("wrote %s (%d glyphs)", fname, f.NumGlyphs())
	}

	if c.PDF != "" {
		err = writeSample(c.PDF, func(fname string) error {
			return specimen.WritePDFFile(fname, f, nil)
		})
		if err != nil {
			return err
		}
	}
	if c.PNG != "" {
		err = writeSample(c.PNG, func(fname string) error {
			return specimen.WritePNGFile(fname, f, nil)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeSample(fname string, write func(string) error) error {
	if dir := filepath.Dir(fname); dir != "." {
		err := os.MkdirAll(dir, 0o755)
		if err != nil {
			return err
		}
	}
	err := write(fname)
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	pterm.Success.Printfln("wrote %s", fname)
	return nil
}
