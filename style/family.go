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

package style

import (
	"time"

	"seehuhn.de/go/sfnt/os2"
)

// Family collects the family-wide constants which are stamped onto every
// style of a font family.
type Family struct {
	Name      string
	Version   string
	Copyright string
	Encoding  string
	Vendor    string // four characters

	// Vertical metrics of the glyph design, in font units.
	Ascent  int
	Descent int // positive
	Em      int

	ItalicAngle     float64 // degrees, negative for a right-leaning slant
	UnderlinePos    int
	UnderlineHeight int

	// Line metrics used for the OS/2 win/typo fields and for the hhea
	// table.  These are often larger than Ascent and Descent, to leave
	// some room between lines.
	LineAscent  int
	LineDescent int // positive

	WidthClass  os2.Width
	FSType      uint16
	FamilyClass int16

	// Panose returns the PANOSE classification for the given style.
	Panose func(p *Property) [10]byte

	// Now returns the build date used in the unique font identifier.
	// If Now is nil, time.Now is used.
	Now func() time.Time
}

// FontName returns the PostScript style name of the given style.
func (fam *Family) FontName(styleName string) string {
	return fam.Name + "-" + styleName
}

// BuildTime returns the time stamped onto newly created fonts.
func (fam *Family) BuildTime() time.Time {
	if fam.Now != nil {
		return fam.Now()
	}
	return time.Now()
}

// Today returns the build date in ISO 8601 format.
func (fam *Family) Today() string {
	return fam.BuildTime().Format(time.DateOnly)
}

const copyright = `
[IBM Plex]
Copyright © 2017 IBM Corp.
[RobotoMono]
Copyright 2015 The Roboto Mono Project.
[Nerd Fonts]
Copyright (c) 2014, Ryan L McIntyre
[RobotoMonoJP]
Copyright (c) 2021 Junya Morioka
`

// Shared metrics of both RobotoMonoJP variants.
const (
	Ascent          = 1638
	Descent         = 410
	Em              = Ascent + Descent
	UnderlinePos    = -200
	UnderlineHeight = 100
	ItalicAngle     = -11
)

// RobotoMonoJP is the standard variant of the family, where full-width
// glyphs are wider than two Latin cells.
var RobotoMonoJP = &Family{
	Name:            "RobotoMonoJP",
	Version:         "5.0.0",
	Copyright:       copyright,
	Encoding:        "UnicodeFull",
	Vendor:          "mjun",
	Ascent:          Ascent,
	Descent:         Descent,
	Em:              Em,
	ItalicAngle:     ItalicAngle,
	UnderlinePos:    UnderlinePos,
	UnderlineHeight: UnderlineHeight,
	LineAscent:      2146,
	LineDescent:     555,
	WidthClass:      os2.WidthNormal,
	FSType:          4,    // printable document
	FamilyClass:     2057, // sans serif, typewriter gothic
	Panose: func(p *Property) [10]byte {
		return [10]byte{
			2,  // Latin text
			11, // normal sans
			p.PanoseWeight,
			9, // monospaced
			2, // no contrast
			2, // no variation
			3, // straight arms, wedge
			p.PanoseLetterform,
			2, // standard, trimmed
			7, // ducking, large
		}
	},
}

// RobotoMonoJPMono is the strictly monospaced variant of the family,
// where every full-width glyph occupies exactly two Latin cells.
var RobotoMonoJPMono = &Family{
	Name:            "RobotoMonoJP-Mono",
	Version:         "5.0.0",
	Copyright:       copyright,
	Encoding:        "UnicodeFull",
	Vendor:          "mjun",
	Ascent:          Ascent,
	Descent:         Descent,
	Em:              Em,
	ItalicAngle:     ItalicAngle,
	UnderlinePos:    UnderlinePos,
	UnderlineHeight: UnderlineHeight,
	LineAscent:      Ascent,
	LineDescent:     Descent,
	WidthClass:      os2.WidthNormal,
	FSType:          4,
	FamilyClass:     2057,
	Panose: func(p *Property) [10]byte {
		return [10]byte{
			2, 11, p.PanoseWeight, 9,
			3, // low contrast
			2,
			2, // straight arms, horizontal
			p.PanoseLetterform,
			2,
			4, // constant, large
		}
	},
}
