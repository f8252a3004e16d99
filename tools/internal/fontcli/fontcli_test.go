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

package fontcli

import (
	"bytes"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mjunya/robotomonojp/pipeline"
	"github.com/mjunya/robotomonojp/style"
	"github.com/mjunya/robotomonojp/typeface"
	"github.com/mjunya/robotomonojp/typeface/ttfio"
)

func writeFont(t *testing.T, fname string, em, ascent int, glyphs ...*typeface.Glyph) {
	t.Helper()
	f := typeface.New()
	f.FamilyName = "Test"
	f.FontName = "Test-Regular"
	f.Em = em
	f.Ascent = ascent
	f.Descent = em - ascent
	for _, g := range glyphs {
		require.NoError(t, f.AddGlyph(g))
	}
	require.NoError(t, ttfio.WriteFile(fname, f, ttfio.FormatTrueType))
}

func box(name string, r rune, width, x0, y0, x1, y1 float64) *typeface.Glyph {
	g := typeface.NewGlyph(name, r, width)
	g.Contours = []typeface.Contour{{
		{X: x0, Y: y0},
		{X: x0, Y: y1},
		{X: x1, Y: y1},
		{X: x1, Y: y0},
	}}
	return g
}

func TestRegister(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	c := &Config{}
	c.Register(fs, pipeline.Mono)
	require.NoError(t, fs.Parse([]string{"-style", "BoldItalic", "-otf"}))

	require.Equal(t, "BoldItalic", c.Style)
	require.True(t, c.OTF)
	require.Equal(t, pipeline.Mono.Family.Name, c.Out)
	require.Equal(t, "tmp", c.Tmp)
	require.Empty(t, c.Icons)
}

func TestResolveFont(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "x.ttf")
	require.NoError(t, os.WriteFile(fname, nil, 0o644))

	got, err := ResolveFont(fname)
	require.NoError(t, err)
	require.Equal(t, fname, got)

	_, err = ResolveFont("")
	require.Error(t, err)
	_, err = ResolveFont("no-such-font-4c1d2e.ttf")
	require.Error(t, err)
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	en := filepath.Join(dir, "en.ttf")
	jp := filepath.Join(dir, "jp.ttf")
	writeFont(t, en, 2048, 1638,
		box(".notdef", typeface.Unencoded, 1229, 100, 0, 1100, 1400),
		box("A", 'A', 1229, 100, 0, 1100, 1400),
	)
	writeFont(t, jp, 1000, 880,
		box(".notdef", typeface.Unencoded, 1000, 50, 0, 950, 800),
		box("uni4E00", 0x4E00, 1000, 50, 350, 950, 420),
	)

	out := filepath.Join(dir, "out")
	c := &Config{
		JPFont: jp,
		ENFont: en,
		Style:  "Regular",
		Out:    out,
		Tmp:    filepath.Join(dir, "tmp"),
		OTF:    true,
		PDF:    filepath.Join(dir, "sample", "sample.pdf"),
		PNG:    filepath.Join(dir, "sample.png"),
	}
	require.NoError(t, Run(pipeline.Standard, c))

	for _, fname := range []string{
		pipeline.Standard.OutputPath(out, "Regular", ttfio.FormatTrueType),
		pipeline.Standard.OutputPath(out, "Regular", ttfio.FormatOpenType),
		c.PDF,
		c.PNG,
		filepath.Join(c.Tmp, "jp_tmp.ttf"),
	} {
		_, err := os.Stat(fname)
		require.NoError(t, err, fname)
	}

	f, err := ttfio.ReadFile(pipeline.Standard.OutputPath(out, "Regular", ttfio.FormatTrueType))
	require.NoError(t, err)
	g, err := f.Glyph(0x4E00)
	require.NoError(t, err)
	require.Equal(t, 2598.0, g.Width)
}

func TestRunMissingFont(t *testing.T) {
	c := &Config{
		JPFont: "no-such-font-4c1d2e.ttf",
		ENFont: "no-such-font-4c1d2e.ttf",
		Style:  "Regular",
	}
	require.Error(t, Run(pipeline.Standard, c))
}

func TestUsageExamples(t *testing.T) {
	fs := flag.NewFlagSet("robotomonojp", flag.ContinueOnError)
	c := &Config{}
	c.Register(fs, pipeline.Standard)
	buf := &bytes.Buffer{}
	fs.SetOutput(buf)

	Usage(fs, "robotomonojp", "build the RobotoMonoJP font", "robotomonojp (devel)")()
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "robotomonojp - build the RobotoMonoJP font\n"), out)

	_, examples, ok := strings.Cut(out, "Examples:\n")
	require.True(t, ok, out)
	lines := strings.Split(strings.TrimSpace(examples), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		args := strings.Fields(line)
		require.Equal(t, "robotomonojp", args[0])
		require.NoError(t, fs.Parse(args[1:]), line)
		_, err := style.Lookup(c.Style)
		require.NoError(t, err, line)
	}
	require.Equal(t, style.RegularItalic, c.Style)
}
