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

// Package ttfio reads and writes font files.
//
// Source fonts are read with seehuhn.de/go/sfnt and converted into an
// editable [typeface.Font].  Fonts are written either as TrueType
// ("glyf" outlines) or as OpenType with CFF outlines.
package ttfio

import (
	"fmt"
	"io"
	"math"
	"os"
	"slices"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/opentype/gtab"

	"github.com/mjunya/robotomonojp/typeface"
)

// ReadFile reads a TrueType or OpenType font file.
func ReadFile(fname string) (*typeface.Font, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	f, err := Read(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return f, nil
}

// Read reads a TrueType or OpenType font.
//
// All glyphs of the font are kept, in glyph order.  Code points are taken
// from the best available cmap subtable; if several code points map to
// the same glyph, the smallest one becomes the primary code point and the
// others are stored as alternates.
func Read(r io.Reader) (*typeface.Font, error) {
	info, err := sfnt.Read(r)
	if err != nil {
		return nil, err
	}
	if !info.IsGlyf() && !info.IsCFF() {
		return nil, &NotSupportedError{
			SubSystem: "ttfio",
			Feature:   "outline format",
		}
	}

	f := typeface.New()
	f.FamilyName = info.FamilyName
	f.FontName = info.PostScriptName()
	f.FullName = info.FullName()
	f.Version = info.Version.String()
	f.Copyright = info.Copyright
	f.Created = info.CreationTime
	f.Encoding = "UnicodeFull"

	f.Em = int(info.UnitsPerEm)
	f.Ascent = int(info.Ascent)
	f.Descent = -int(info.Descent)
	f.ItalicAngle = info.ItalicAngle
	f.UnderlinePosition = int(math.Round(float64(info.UnderlinePosition)))
	f.UnderlineThickness = int(math.Round(float64(info.UnderlineThickness)))
	f.CapHeight = int(info.CapHeight)
	f.XHeight = int(info.XHeight)
	f.IsFixedPitch = info.IsFixedPitch()

	f.OS2.WeightClass = info.Weight
	f.OS2.WidthClass = info.Width
	f.OS2.TypoAscent = int(info.Ascent)
	f.OS2.TypoDescent = int(info.Descent)
	f.OS2.TypoLineGap = int(info.LineGap)
	f.Hhea.Ascent = int(info.Ascent)
	f.Hhea.Descent = int(info.Descent)
	f.Hhea.LineGap = int(info.LineGap)

	codes := glyphCodes(info)

	numGlyphs := info.NumGlyphs()
	for i := range numGlyphs {
		gid := glyph.ID(i)
		g := typeface.NewGlyph(info.GlyphName(gid), typeface.Unencoded, float64(info.GlyphWidth(gid)))
		if rr := codes[gid]; len(rr) > 0 {
			g.Unicode = rr[0]
			g.AltUni = rr[1:]
		}
		if gid == 0 && g.Name == "" {
			g.Name = ".notdef"
		}
		g.Contours = readContours(info, gid)
		if err := f.AddGlyph(g); err != nil {
			return nil, err
		}
	}

	f.GSUB = readLookups("GSUB", info.Gsub)
	f.GPOS = readLookups("GPOS", info.Gpos)

	return f, nil
}

// glyphCodes inverts the best cmap subtable of the font.
// The code points for every glyph are sorted in increasing order.
func glyphCodes(info *sfnt.Font) map[glyph.ID][]rune {
	res := make(map[glyph.ID][]rune)
	if info.CMapTable == nil {
		return res
	}
	subtable, err := info.CMapTable.GetBest()
	if err != nil {
		return res
	}
	low, high := subtable.CodeRange()
	for r := low; r <= high; r++ {
		gid := subtable.Lookup(r)
		if gid != 0 {
			res[gid] = append(res[gid], r)
		}
	}
	return res
}

// readContours converts the outline of a glyph into contours.
func readContours(info *sfnt.Font, gid glyph.ID) []typeface.Contour {
	var b contourBuilder
	for cmd, pts := range info.Outlines.Path(gid) {
		switch cmd {
		case path.CmdMoveTo:
			b.close()
			b.add(pts[0].X, pts[0].Y, typeface.OnCurve)
		case path.CmdLineTo:
			b.add(pts[0].X, pts[0].Y, typeface.OnCurve)
		case path.CmdQuadTo:
			b.add(pts[0].X, pts[0].Y, typeface.QuadControl)
			b.add(pts[1].X, pts[1].Y, typeface.OnCurve)
		case path.CmdCubeTo:
			b.add(pts[0].X, pts[0].Y, typeface.CubicControl)
			b.add(pts[1].X, pts[1].Y, typeface.CubicControl)
			b.add(pts[2].X, pts[2].Y, typeface.OnCurve)
		case path.CmdClose:
			b.close()
		}
	}
	b.close()
	return b.res
}

type contourBuilder struct {
	res []typeface.Contour
	cur typeface.Contour
}

func (b *contourBuilder) add(x, y float64, kind typeface.PointKind) {
	b.cur = append(b.cur, typeface.Point{X: x, Y: y, Kind: kind})
}

// close finishes the current contour.  An explicit final point which
// repeats the start point is dropped, since contours are closed
// implicitly.
func (b *contourBuilder) close() {
	c := b.cur
	n := len(c)
	if n > 1 && c[n-1].Kind == typeface.OnCurve && c[n-1].X == c[0].X && c[n-1].Y == c[0].Y {
		c = c[:n-1]
	}
	if len(c) > 0 {
		b.res = append(b.res, c)
	}
	b.cur = nil
}

// readLookups lists the lookups of a GSUB or GPOS table.  Every lookup is
// named after the first feature which uses it.
func readLookups(table string, info *gtab.Info) []*typeface.Lookup {
	if info == nil {
		return nil
	}

	features := make(map[gtab.LookupIndex][]string)
	for _, feature := range info.FeatureList {
		for _, l := range feature.Lookups {
			if !slices.Contains(features[l], feature.Tag) {
				features[l] = append(features[l], feature.Tag)
			}
		}
	}

	var res []*typeface.Lookup
	for i, lt := range info.LookupList {
		tags := features[gtab.LookupIndex(i)]
		l := &typeface.Lookup{
			Name:     typeface.LookupName(table, tags, i),
			Features: tags,
		}
		if lt.Meta != nil {
			l.Type = lt.Meta.LookupType
		}
		for j := range lt.Subtables {
			l.Subtables = append(l.Subtables, &typeface.Subtable{
				Name: fmt.Sprintf("%s subtable %d", l.Name, j),
			})
		}
		res = append(res, l)
	}
	return res
}
