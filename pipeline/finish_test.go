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

package pipeline

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/mjunya/robotomonojp/style"
	"github.com/mjunya/robotomonojp/typeface"
)

// finishFont returns a font with glyphs inside and outside the italic
// allow-list, all with the outline (0,0)-(100,100).
func finishFont(t *testing.T, italicAngle float64) *typeface.Font {
	f := sourceFont(t, "RobotoMonoJP", 2048, 1638,
		glyph(".notdef", typeface.Unencoded, 1024, 0, 0, 100, 100),
		glyph("A", 'A', 1024, 0, 0, 100, 100),
		glyph("uni4E00", 0x4E00, 2048, 0, 0, 100, 100),
		glyph("u1F600", 0x1F600, 2048, 0, 0, 100, 100),
		glyph("uni301F.half", typeface.Unencoded, 1024, 0, 0, 100, 100),
		glyph("uni3042.vert", typeface.Unencoded, 2048, 0, 0, 100, 100),
		glyph("acute.half", typeface.Unencoded, 1024, 0, 0, 100, 100),
		glyph("zero.alt01", typeface.Unencoded, 1024, 0, 0, 100, 100),
		glyph("uni2F800.hw", typeface.Unencoded, 1024, 0, 0, 100, 100),
	)
	f.ItalicAngle = italicAngle
	return f
}

// slanted lists the glyphs whose top left corner was moved.
func slanted(f *typeface.Font) []string {
	var res []string
	for _, g := range f.Glyphs() {
		if g.Contours[0][1] != (typeface.Point{X: 0, Y: 100}) {
			res = append(res, g.Name)
		}
	}
	return res
}

func TestFinishUpright(t *testing.T) {
	f := finishFont(t, 0)
	g, _ := f.Glyph('A')
	g.Contours[0][2].X = 100.4
	g.Instructions = []byte{0xB0, 0x00}
	g.Contours = append(g.Contours, cloneContour(g.Contours[0]))

	require.NoError(t, Finish(f, style.Regular, FinishOptions{}))

	if got := slanted(f); len(got) != 0 {
		t.Errorf("slanted glyphs in upright style: %v", got)
	}
	if len(g.Contours) != 1 {
		t.Errorf("duplicate contour kept")
	}
	if g.Contours[0][2].X != 100 {
		t.Errorf("outline not rounded: %v", g.Contours[0])
	}
	if g.Instructions != nil {
		t.Error("instructions were kept")
	}
}

func TestFinishItalic(t *testing.T) {
	f := finishFont(t, style.ItalicAngle)
	require.NoError(t, Finish(f, style.RegularItalic, FinishOptions{}))

	want := []string{
		".notdef", "A", "uni4E00", "uni301F.half", "acute.half", "zero.alt01",
	}
	if d := cmp.Diff(want, slanted(f)); d != "" {
		t.Errorf("slanted glyphs (-want +got):\n%s", d)
	}

	// tan(11°) * 100 = 19.44
	g, _ := f.Glyph('A')
	if d := cmp.Diff(typeface.Contour{
		{X: 0, Y: 0},
		{X: 19, Y: 100},
		{X: 119, Y: 100},
		{X: 100, Y: 0},
	}, g.Contours[0]); d != "" {
		t.Errorf("outline (-want +got):\n%s", d)
	}
	if g.Width != 1024 {
		t.Errorf("width changed to %g", g.Width)
	}
}

func TestFinishAddExtrema(t *testing.T) {
	g := typeface.NewGlyph("n", 'n', 1024)
	g.Contours = []typeface.Contour{{
		{X: 0, Y: 0},
		{X: 50, Y: 100, Kind: typeface.QuadControl},
		{X: 100, Y: 0},
	}}
	f := sourceFont(t, "RobotoMonoJP", 2048, 1638, g)

	require.NoError(t, Finish(f, style.Bold, FinishOptions{AddExtrema: true}))
	if len(g.Contours[0]) != 5 {
		t.Errorf("extremum not added: %v", g.Contours[0])
	}
}

func cloneContour(c typeface.Contour) typeface.Contour {
	return append(typeface.Contour(nil), c...)
}
