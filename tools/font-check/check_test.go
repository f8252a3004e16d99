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
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/width"

	"github.com/mjunya/robotomonojp/typeface"
	"github.com/mjunya/robotomonojp/typeface/ttfio"
)

func testFont(t *testing.T) *typeface.Font {
	t.Helper()
	f := typeface.New()
	f.FamilyName = "Test"
	f.Em = 2048
	f.Ascent = 1638
	f.Descent = 410
	for _, g := range []*typeface.Glyph{
		typeface.NewGlyph(".notdef", typeface.Unencoded, 1024),
		typeface.NewGlyph("A", 'A', 1024),
		typeface.NewGlyph("uni3042", 0x3042, 2048),
		typeface.NewGlyph("uniFF71", 0xFF71, 1024),
		typeface.NewGlyph("uni0301", 0x0301, 0),
		typeface.NewGlyph("uni00B1", 0x00B1, 2048), // ambiguous
		typeface.NewGlyph("uni4E00", 0x4E00, 1800),
		typeface.NewGlyph("uniFF21", 0xFF21, 1024),
	} {
		if err := f.AddGlyph(g); err != nil {
			t.Fatal(err)
		}
	}
	return f
}

func TestCheckWidths(t *testing.T) {
	f := testFont(t)
	rep := checkWidths(f, grid{half: 1024, full: 2048})

	var got []rune
	for _, v := range rep.violations {
		got = append(got, v.r)
	}
	if d := cmp.Diff([]rune{0x4E00, 0xFF21}, got); d != "" {
		t.Errorf("violations (-want +got):\n%s", d)
	}

	if n := rep.widths[width.EastAsianWide][2048]; n != 1 {
		t.Errorf("%d wide glyphs of width 2048", n)
	}
	if n := rep.widths[width.EastAsianHalfwidth][1024]; n != 1 {
		t.Errorf("%d halfwidth glyphs of width 1024", n)
	}
	if _, ok := rep.widths[width.Neutral]; ok {
		t.Error("unencoded glyph was counted")
	}
}

func TestCrossCheck(t *testing.T) {
	f := testFont(t)
	buf := &bytes.Buffer{}
	if _, err := ttfio.Write(buf, f, ttfio.FormatTrueType); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()
	f2, err := ttfio.Read(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	problems, err := crossCheck(data, f2)
	if err != nil {
		t.Fatal(err)
	}
	if len(problems) > 0 {
		t.Errorf("unexpected problems: %v", problems)
	}

	// a width change in memory shows up as a mismatch
	g, _ := f2.Glyph('A')
	g.Width = 1000
	problems, err = crossCheck(data, f2)
	if err != nil {
		t.Fatal(err)
	}
	if len(problems) != 1 || problems[0].r != 'A' {
		t.Errorf("got %v", problems)
	}
}

func TestKindName(t *testing.T) {
	if got := kindName(width.EastAsianFullwidth); got != "fullwidth" {
		t.Errorf("got %q", got)
	}
}
