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
	"fmt"
	"strings"

	"github.com/mjunya/robotomonojp/style"
	"github.com/mjunya/robotomonojp/typeface"
)

// Generator identifies the build tool in the unique font identifier.
// The command line tools append their version.
var Generator = "robotomonojp"

// NewFont creates a font without glyphs, carrying the family-wide
// metadata of fam for the given style.
//
// If styleName is not one of [style.Names], the returned error wraps a
// [*style.ConfigurationError].
func NewFont(styleName string, fam *style.Family) (*typeface.Font, error) {
	prop, err := style.Lookup(styleName)
	if err != nil {
		return nil, fmt.Errorf("new font: %w", err)
	}

	f := typeface.New()
	f.FamilyName = fam.Name
	f.FontName = fam.FontName(styleName)
	f.FullName = fam.FontName(styleName)
	f.Version = fam.Version
	f.Copyright = strings.TrimSpace(fam.Copyright)
	f.Weight = prop.Weight
	f.Encoding = fam.Encoding
	f.Created = fam.BuildTime()

	f.Ascent = fam.Ascent
	f.Descent = fam.Descent
	f.Em = fam.Em
	if style.IsItalic(styleName) {
		f.ItalicAngle = fam.ItalicAngle
	}
	f.UnderlinePosition = fam.UnderlinePos
	f.UnderlineThickness = fam.UnderlineHeight

	f.OS2 = typeface.OS2Info{
		WeightClass: prop.OS2Weight,
		WidthClass:  fam.WidthClass,
		FSType:      fam.FSType,
		FamilyClass: fam.FamilyClass,
		StyleMap:    prop.StyleMap,
		Vendor:      fam.Vendor,

		WinAscent:   fam.LineAscent,
		WinDescent:  fam.LineDescent,
		TypoAscent:  fam.LineAscent,
		TypoDescent: -fam.LineDescent,
	}
	if fam.Panose != nil {
		f.OS2.Panose = fam.Panose(prop)
	}
	f.Hhea = typeface.HheaInfo{
		Ascent:  fam.LineAscent,
		Descent: -fam.LineDescent,
	}

	f.Gasp = []typeface.GaspRange{{
		MaxPPEM: 0xFFFF,
		Flags: typeface.GaspGridfit | typeface.GaspAntialias |
			typeface.GaspSymmetricSmoothing | typeface.GaspSymmetricGridfit,
	}}

	f.Names[typeface.NameSubFamily] = style.SubFamily(styleName)
	f.Names[typeface.NameUniqueID] = strings.Join([]string{
		Generator,
		fam.Name + " " + styleName,
		fam.Version,
		f.Created.Format("2006-01-02"),
	}, "; ")

	return f, nil
}
