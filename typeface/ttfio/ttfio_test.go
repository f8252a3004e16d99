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

package ttfio

import (
	"bytes"
	"errors"
	"math"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	xsfnt "golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/head"
	"seehuhn.de/go/sfnt/header"
	"seehuhn.de/go/sfnt/hmtx"
	"seehuhn.de/go/sfnt/maxp"
	"seehuhn.de/go/sfnt/name"
	"seehuhn.de/go/sfnt/os2"
	"seehuhn.de/go/sfnt/post"

	"github.com/mjunya/robotomonojp/typeface"
)

func TestReadGoMono(t *testing.T) {
	f, err := Read(bytes.NewReader(gomono.TTF))
	if err != nil {
		t.Fatal(err)
	}

	ref, err := xsfnt.Parse(gomono.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if f.Em != int(ref.UnitsPerEm()) {
		t.Errorf("em %d, want %d", f.Em, ref.UnitsPerEm())
	}
	if f.NumGlyphs() != ref.NumGlyphs() {
		t.Errorf("%d glyphs, want %d", f.NumGlyphs(), ref.NumGlyphs())
	}

	var buf xsfnt.Buffer
	ppem := fixed.Int26_6(ref.UnitsPerEm()) << 6
	for _, r := range "AiW0@" {
		g, err := f.Glyph(r)
		if err != nil {
			t.Fatal(err)
		}
		gid, err := ref.GlyphIndex(&buf, r)
		if err != nil {
			t.Fatal(err)
		}
		adv, err := ref.GlyphAdvance(&buf, gid, ppem, font.HintingNone)
		if err != nil {
			t.Fatal(err)
		}
		if want := float64(adv) / 64; g.Width != want {
			t.Errorf("%q: width %g, want %g", r, g.Width, want)
		}
		if len(g.Contours) == 0 {
			t.Errorf("%q: no outline", r)
		}
	}
}

// makeTestFont returns a small font which uses all outline point types.
func makeTestFont(t *testing.T) *typeface.Font {
	t.Helper()

	f := typeface.New()
	f.FamilyName = "Test"
	f.FontName = "Test-Regular"
	f.FullName = "Test Regular"
	f.Version = "1.002"
	f.Em = 1000
	f.Ascent = 880
	f.Descent = 120
	f.UnderlinePosition = -100
	f.UnderlineThickness = 50
	f.Created = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	f.OS2.Vendor = "mjun"
	f.Gasp = []typeface.GaspRange{{MaxPPEM: 0xFFFF, Flags: typeface.GaspGridfit | typeface.GaspAntialias}}

	notdef := typeface.NewGlyph(".notdef", typeface.Unencoded, 500)
	notdef.Contours = []typeface.Contour{{
		{X: 50, Y: 0}, {X: 50, Y: 700}, {X: 450, Y: 700}, {X: 450, Y: 0},
	}}

	space := typeface.NewGlyph("space", ' ', 500)

	a := typeface.NewGlyph("A", 'A', 500)
	a.Contours = []typeface.Contour{{
		{X: 0, Y: 0}, {X: 250, Y: 700}, {X: 500, Y: 0},
	}}

	// a quadratic arch with an implied on-curve point
	b := typeface.NewGlyph("B", 'B', 500)
	b.Contours = []typeface.Contour{{
		{X: 0, Y: 0},
		{X: 0, Y: 700, Kind: typeface.QuadControl},
		{X: 500, Y: 700, Kind: typeface.QuadControl},
		{X: 500, Y: 0},
	}}

	// a cubic arch
	c := typeface.NewGlyph("C", 'C', 500)
	c.Contours = []typeface.Contour{{
		{X: 0, Y: 0},
		{X: 0, Y: 700, Kind: typeface.CubicControl},
		{X: 500, Y: 700, Kind: typeface.CubicControl},
		{X: 500, Y: 0},
	}}

	kanji := typeface.NewGlyph("uni4E00", 0x4E00, 1000)
	kanji.AltUni = []rune{0x2F00}
	kanji.Contours = []typeface.Contour{{
		{X: 100, Y: 350}, {X: 100, Y: 450}, {X: 900, Y: 450}, {X: 900, Y: 350},
	}}

	// outside the BMP
	ext := typeface.NewGlyph("u20B9F", 0x20B9F, 1000)
	ext.Contours = []typeface.Contour{{
		{X: 100, Y: 0}, {X: 100, Y: 800}, {X: 900, Y: 800}, {X: 900, Y: 0},
	}}

	empty := typeface.NewGlyph("empty", typeface.Unencoded, 0)

	for _, g := range []*typeface.Glyph{notdef, space, a, b, c, kanji, ext, empty} {
		if err := f.AddGlyph(g); err != nil {
			t.Fatal(err)
		}
	}
	return f
}

func TestRoundTrip(t *testing.T) {
	for _, format := range []Format{FormatTrueType, FormatOpenType} {
		t.Run(format.String(), func(t *testing.T) {
			f1 := makeTestFont(t)

			buf := &bytes.Buffer{}
			if _, err := Write(buf, f1, format); err != nil {
				t.Fatal(err)
			}
			data := buf.Bytes()

			f2, err := Read(bytes.NewReader(data))
			if err != nil {
				t.Fatal(err)
			}
			if f2.Em != 1000 || f2.Ascent != 880 || f2.Descent != 120 {
				t.Errorf("metrics: em=%d ascent=%d descent=%d", f2.Em, f2.Ascent, f2.Descent)
			}
			if f2.FamilyName != "Test" {
				t.Errorf("family name %q", f2.FamilyName)
			}

			// the empty glyph is dropped
			if f2.NumGlyphs() != 7 {
				t.Errorf("%d glyphs, want 7", f2.NumGlyphs())
			}
			if _, err := f2.GlyphByName(".notdef"); err != nil {
				t.Error(err)
			}

			// The primary code point after reading is the smallest one, so
			// compare the sets of code points.
			type entry struct {
				Codes []rune
				Width float64
			}
			entries := func(f *typeface.Font) []entry {
				var res []entry
				for _, g := range f.Glyphs() {
					if !g.IsEncoded() {
						continue
					}
					codes := g.Codepoints()
					slices.Sort(codes)
					res = append(res, entry{codes, g.Width})
				}
				slices.SortFunc(res, func(a, b entry) int { return int(a.Codes[0] - b.Codes[0]) })
				return res
			}
			if d := cmp.Diff(entries(f1), entries(f2)); d != "" {
				t.Errorf("glyphs (-want +got):\n%s", d)
			}

			// outlines keep their extent
			for _, r := range []rune{'A', 'B', 'C', 0x4E00} {
				g1, _ := f1.Glyph(r)
				g2, err := f2.Glyph(r)
				if err != nil {
					t.Fatal(err)
				}
				b1, b2 := g1.BBox(), g2.BBox()
				if math.Abs(b1.LLx-b2.LLx) > 1 || math.Abs(b1.URx-b2.URx) > 1 || math.Abs(b1.LLy-b2.LLy) > 1 {
					t.Errorf("%q: bbox %v, want %v", r, b2, b1)
				}
			}

			// check the file with an independent implementation
			ref, err := xsfnt.Parse(data)
			if err != nil {
				t.Fatal(err)
			}
			var xbuf xsfnt.Buffer
			for _, r := range []rune{'A', 'C', 0x4E00, 0x2F00, 0x20B9F} {
				gid, err := ref.GlyphIndex(&xbuf, r)
				if err != nil || gid == 0 {
					t.Errorf("U+%04X: gid %d, %v", r, gid, err)
					continue
				}
				if _, err := ref.LoadGlyph(&xbuf, gid, fixed.I(100), nil); err != nil {
					t.Errorf("U+%04X: %v", r, err)
				}
			}
			family, err := ref.Name(&xbuf, xsfnt.NameIDFamily)
			if err != nil || family != "Test" {
				t.Errorf("family name %q, %v", family, err)
			}
		})
	}
}

func TestWriteTables(t *testing.T) {
	f := makeTestFont(t)
	f.Names[16] = "Test Family"
	f.OS2.FSType = 0x0108

	buf := &bytes.Buffer{}
	if _, err := Write(buf, f, FormatTrueType); err != nil {
		t.Fatal(err)
	}
	r := bytes.NewReader(buf.Bytes())
	toc, err := header.Read(r)
	if err != nil {
		t.Fatal(err)
	}
	if !toc.Has("head", "hhea", "hmtx", "maxp", "OS/2", "name", "post", "cmap", "glyf", "loca", "gasp") {
		t.Fatal("missing tables")
	}
	table := func(tag string) []byte {
		t.Helper()
		data, err := toc.ReadTableBytes(r, tag)
		if err != nil {
			t.Fatal(err)
		}
		return data
	}

	headInfo, err := head.Read(bytes.NewReader(table("head")))
	if err != nil {
		t.Fatal(err)
	}
	if headInfo.UnitsPerEm != 1000 || headInfo.FontRevision.String() != "1.002" {
		t.Errorf("head: em %d, revision %s", headInfo.UnitsPerEm, headInfo.FontRevision)
	}
	if d := cmp.Diff(funit.Rect16{LLx: 0, LLy: 0, URx: 900, URy: 800}, headInfo.FontBBox); d != "" {
		t.Errorf("font bbox (-want +got):\n%s", d)
	}
	if !headInfo.Created.Equal(f.Created) {
		t.Errorf("created %s", headInfo.Created)
	}

	metrics, err := hmtx.Decode(table("hhea"), table("hmtx"))
	if err != nil {
		t.Fatal(err)
	}
	wantWidths := []funit.Int16{500, 500, 500, 500, 500, 1000, 1000}
	if d := cmp.Diff(wantWidths, metrics.Widths); d != "" {
		t.Errorf("widths (-want +got):\n%s", d)
	}
	if metrics.Ascent != 880 || metrics.Descent != -120 {
		t.Errorf("hhea: ascent %d, descent %d", metrics.Ascent, metrics.Descent)
	}

	maxpInfo, err := maxp.Read(bytes.NewReader(table("maxp")))
	if err != nil {
		t.Fatal(err)
	}
	if maxpInfo.NumGlyphs != 7 || maxpInfo.TTF == nil || maxpInfo.TTF.MaxContours != 1 {
		t.Errorf("maxp: %d glyphs, %+v", maxpInfo.NumGlyphs, maxpInfo.TTF)
	}

	os2Info, err := os2.Read(bytes.NewReader(table("OS/2")))
	if err != nil {
		t.Fatal(err)
	}
	if os2Info.Vendor != "mjun" || !os2Info.IsRegular || os2Info.IsBold || os2Info.IsItalic {
		t.Errorf("OS/2: vendor %q, regular %t", os2Info.Vendor, os2Info.IsRegular)
	}
	if os2Info.Ascent != 880 || os2Info.Descent != -120 || os2Info.WinAscent != 800 || os2Info.WinDescent != 0 {
		t.Errorf("OS/2 metrics: %d %d %d %d",
			os2Info.Ascent, os2Info.Descent, os2Info.WinAscent, os2Info.WinDescent)
	}
	if os2Info.FirstCharIndex != ' ' || os2Info.LastCharIndex != 0xFFFF {
		t.Errorf("OS/2 char range %04X-%04X", os2Info.FirstCharIndex, os2Info.LastCharIndex)
	}
	if os2Info.PermUse != os2.PermEdit || !os2Info.PermNoSubsetting {
		t.Errorf("OS/2 permissions %s, no subsetting %t", os2Info.PermUse, os2Info.PermNoSubsetting)
	}

	names, err := name.Decode(table("name"))
	if err != nil {
		t.Fatal(err)
	}
	en := names.Windows["en-US"]
	if en == nil {
		t.Fatal("no en-US names")
	}
	if en.Family != "Test" || en.PostScriptName != "Test-Regular" || en.TypographicFamily != "Test Family" {
		t.Errorf("names: %q %q %q", en.Family, en.PostScriptName, en.TypographicFamily)
	}
	if en.Identifier != "Test Regular; 1.002; 2026-01-02" || en.Version != "Version 1.002" {
		t.Errorf("names: %q %q", en.Identifier, en.Version)
	}

	postInfo, err := post.Read(bytes.NewReader(table("post")))
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Contains(postInfo.Names, "uni4E00") || postInfo.UnderlinePosition != -100 {
		t.Errorf("post: %v, underline %d", postInfo.Names, postInfo.UnderlinePosition)
	}
	if postInfo.IsFixedPitch {
		t.Error("proportional font marked as fixed pitch")
	}
}

func TestWriteFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "test"+FormatTrueType.Ext())
	if err := WriteFile(fname, makeTestFont(t), FormatTrueType); err != nil {
		t.Fatal(err)
	}
	f, err := ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !f.HasCodepoint(0x20B9F) {
		t.Error("non-BMP code point lost")
	}
}

func TestWriteAddsNotdef(t *testing.T) {
	f := typeface.New()
	f.Em = 1000
	f.Ascent, f.Descent = 800, 200
	if err := f.AddGlyph(typeface.NewGlyph("A", 'A', 600)); err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	if _, err := Write(buf, f, FormatTrueType); err != nil {
		t.Fatal(err)
	}
	f2, err := Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	gg := f2.Glyphs()
	if len(gg) != 2 {
		t.Fatalf("%d glyphs, want 2", len(gg))
	}
	if gg[0].Name != ".notdef" || gg[0].Width != 500 {
		t.Errorf("glyph 0 is %q", gg[0].Name)
	}
	if f.NumGlyphs() != 1 {
		t.Error("the font was modified")
	}
}

func TestWriteErrors(t *testing.T) {
	f := makeTestFont(t)
	f.Em = 0
	if _, err := Write(&bytes.Buffer{}, f, FormatTrueType); err == nil {
		t.Error("invalid em accepted")
	}

	f = makeTestFont(t)
	g, _ := f.Glyph('A')
	g.Contours = append(g.Contours, typeface.Contour{
		{X: 0, Y: 0},
		{X: 10, Y: 10, Kind: typeface.CubicControl},
		{X: 20, Y: 0},
	})
	for _, format := range []Format{FormatTrueType, FormatOpenType} {
		_, err := Write(&bytes.Buffer{}, f, format)
		var invalid *InvalidFontError
		if !errors.As(err, &invalid) {
			t.Errorf("%s: got %v, want InvalidFontError", format, err)
		}
	}

	if _, err := Write(&bytes.Buffer{}, makeTestFont(t), Format(7)); err == nil {
		t.Error("unknown format accepted")
	}
}

func TestCubicToQuadsExact(t *testing.T) {
	// a quadratic curve, written as a cubic, needs a single segment
	p0, q, p3 := pt{0, 0}, pt{50, 100}, pt{100, 0}
	c1, c2 := quadToCubic(p0, q, p3)
	got := cubicToQuads(p0, c1, c2, p3, quadTolerance)
	if len(got) != 1 || math.Abs(got[0].x-q.x) > 1e-9 || math.Abs(got[0].y-q.y) > 1e-9 {
		t.Errorf("got %v, want [%v]", got, q)
	}
}

func TestCubicToQuadsOnCurve(t *testing.T) {
	// an S-shaped curve needs several pieces; the on-curve points lie on
	// the cubic at equidistant parameters
	a := [4]pt{{0, 0}, {1000, 0}, {0, 1000}, {1000, 1000}}
	got := cubicToQuads(a[0], a[1], a[2], a[3], quadTolerance)
	if len(got)%2 != 1 || len(got) < 3 {
		t.Fatalf("got %d points", len(got))
	}
	n := (len(got) + 1) / 2
	for i := 1; i < n; i++ {
		tt := float64(i) / float64(n)
		s := 1 - tt
		want := pt{
			s*s*s*a[0].x + 3*s*s*tt*a[1].x + 3*s*tt*tt*a[2].x + tt*tt*tt*a[3].x,
			s*s*s*a[0].y + 3*s*s*tt*a[1].y + 3*s*tt*tt*a[2].y + tt*tt*tt*a[3].y,
		}
		m := got[2*i-1]
		if math.Abs(m.x-want.x) > 1e-6 || math.Abs(m.y-want.y) > 1e-6 {
			t.Errorf("point %d: %v, want %v", i, m, want)
		}
	}
}

func TestRoundContourImplied(t *testing.T) {
	pts := []glyfPoint{
		{pt{0, 0}, true},
		{pt{0, 100.2}, false},
		{pt{50, 100}, true}, // implied after rounding
		{pt{100, 99.9}, false},
		{pt{100, 0}, true},
	}
	got := roundContour(pts)
	if len(got) != 4 {
		t.Errorf("got %v", got)
	}
	for _, p := range got {
		if p.X == 50 {
			t.Error("implied point was kept")
		}
	}
}

func FuzzRoundTrip(f *testing.F) {
	f.Add(gomono.TTF)

	f.Fuzz(func(t *testing.T, data []byte) {
		font1, err := Read(bytes.NewReader(data))
		if err != nil {
			return
		}

		buf := &bytes.Buffer{}
		if _, err := Write(buf, font1, FormatTrueType); err != nil {
			return
		}

		font2, err := Read(bytes.NewReader(buf.Bytes()))
		if err != nil {
			t.Fatal(err)
		}
		for _, g := range font1.Glyphs() {
			if !g.IsWorthOutputting() {
				continue
			}
			for _, r := range g.Codepoints() {
				if !font2.HasCodepoint(r) {
					t.Errorf("U+%04X was lost", r)
				}
			}
		}
	})
}
