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

// Package specimen renders sample sheets of a font.
//
// The sheets show the sample lines of [Options] set in the font, drawn
// directly from the glyph outlines.  [WritePDF] produces a vector PDF file
// and [WritePNG] a grey-scale raster preview.
package specimen

import (
	"time"

	"github.com/mjunya/robotomonojp/typeface"
)

// Options controls the layout of a sample sheet.
type Options struct {
	// Title is printed at the top of the sheet.
	// The default is the full name of the font and the font size.
	Title string

	// Size is the font size in points.  The default is 18.
	Size float64

	// Lines are the sample texts, one per line.
	// The default is DefaultLines.
	Lines []string

	// Date is stored in the PDF metadata.  The default is the creation
	// time of the font, or the current time if that is not set.
	Date time.Time
}

// DefaultLines lists sample texts covering the main parts of the font.
var DefaultLines = []string{
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	"abcdefghijklmnopqrstuvwxyz",
	"0123456789 !\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~",
	"il1| O0o 0O0 {[()]} => != <= -> ;:",
	"あいうえお かきくけこ アイウエオ ｱｲｳｴｵ",
	"日本語の文章と English の混在表示",
	"永遠の東京、漢字の美しさ。「括弧」【記号】",
	"┌─┬─┐ ├─┼─┤ └─┴─┘ ░▒▓█",
	"\ue0a0 \ue0b0 \ue0b2 \uf07b \uf09b \ue5fa \uf31b \uf0e7",
}

const defaultSize = 18

// settings is Options with the defaults filled in.
type settings struct {
	title string
	size  float64
	lines []string
	date  time.Time
}

func newSettings(f *typeface.Font, opt *Options) *settings {
	if opt == nil {
		opt = &Options{}
	}
	s := &settings{
		title: opt.Title,
		size:  opt.Size,
		lines: opt.Lines,
		date:  opt.Date,
	}
	if s.size <= 0 {
		s.size = defaultSize
	}
	if s.title == "" {
		name := f.FullName
		if name == "" {
			name = f.FamilyName
		}
		s.title = name + " " + formatSize(s.size) + "pt"
	}
	if s.lines == nil {
		s.lines = DefaultLines
	}
	if s.date.IsZero() {
		s.date = f.Created
	}
	if s.date.IsZero() {
		s.date = time.Now()
	}
	return s
}

// placed is a glyph at a horizontal position, in font units.
type placed struct {
	g *typeface.Glyph
	x float64
}

// layoutLine places the glyphs for the characters of line.  Characters
// without a glyph are shown as ".notdef".  If maxWidth is positive, the
// line is broken into several lines not wider than maxWidth.
func layoutLine(f *typeface.Font, line string, maxWidth float64) [][]placed {
	notdef, _ := f.GlyphByName(".notdef")

	var res [][]placed
	var cur []placed
	x := 0.0
	for _, r := range line {
		g, err := f.Glyph(r)
		if err != nil {
			g = notdef
		}
		if g == nil {
			continue
		}
		if maxWidth > 0 && x > 0 && x+g.Width > maxWidth {
			res = append(res, cur)
			cur = nil
			x = 0
		}
		cur = append(cur, placed{g: g, x: x})
		x += g.Width
	}
	return append(res, cur)
}

// lineWidth returns the advance width of a laid out line, in font units.
func lineWidth(gg []placed) float64 {
	if len(gg) == 0 {
		return 0
	}
	last := gg[len(gg)-1]
	return last.x + last.g.Width
}

// lineHeight returns the distance between baselines, in font units.
func lineHeight(f *typeface.Font) float64 {
	h := float64(f.Ascent + f.Descent)
	if h <= 0 {
		h = float64(f.Em)
	}
	return 1.25 * h
}
