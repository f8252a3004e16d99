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

// Package style holds the static per-style metadata of the RobotoMonoJP
// family, together with the family-wide constants.
package style

import (
	"fmt"
	"slices"
	"strings"

	"seehuhn.de/go/sfnt/os2"
)

// Property describes the weight and PANOSE metadata of one style.
type Property struct {
	// Weight is the human readable weight label ("Book" or "Bold").
	Weight string

	// OS2Weight is the usWeightClass value of the OS/2 table.
	OS2Weight os2.Weight

	// StyleMap is the fsSelection value of the OS/2 table.
	StyleMap uint16

	PanoseWeight     byte
	PanoseLetterform byte
}

// IsBold reports whether the style map selects a bold face.
func (p *Property) IsBold() bool {
	return p.StyleMap&0x0020 != 0
}

// IsItalic reports whether the style map selects an italic face.
func (p *Property) IsItalic() bool {
	return p.StyleMap&0x0001 != 0
}

// IsRegular reports whether the style map selects the regular face.
func (p *Property) IsRegular() bool {
	return p.StyleMap&0x0040 != 0
}

// The style names known to the build.
const (
	Regular       = "Regular"
	Bold          = "Bold"
	RegularItalic = "RegularItalic"
	BoldItalic    = "BoldItalic"
)

var properties = map[string]*Property{
	Regular: {
		Weight:           "Book",
		OS2Weight:        os2.WeightNormal,
		StyleMap:         64,
		PanoseWeight:     5,
		PanoseLetterform: 2,
	},
	Bold: {
		Weight:           "Bold",
		OS2Weight:        os2.WeightBold,
		StyleMap:         32,
		PanoseWeight:     8,
		PanoseLetterform: 2,
	},
	RegularItalic: {
		Weight:           "Book",
		OS2Weight:        os2.WeightNormal,
		StyleMap:         1,
		PanoseWeight:     5,
		PanoseLetterform: 9,
	},
	BoldItalic: {
		Weight:           "Bold",
		OS2Weight:        os2.WeightBold,
		StyleMap:         33,
		PanoseWeight:     8,
		PanoseLetterform: 9,
	},
}

// Lookup returns the properties of the named style.
// If the style is unknown, a *ConfigurationError is returned.
func Lookup(name string) (*Property, error) {
	p, ok := properties[name]
	if !ok {
		return nil, &ConfigurationError{Style: name}
	}
	// return a copy, the table is shared
	res := *p
	return &res, nil
}

// Names returns the known style names in sorted order.
func Names() []string {
	var res []string
	for name := range properties {
		res = append(res, name)
	}
	slices.Sort(res)
	return res
}

// IsItalic reports whether the style name denotes an italic style.
func IsItalic(name string) bool {
	return strings.Contains(name, "Italic")
}

// SubFamily converts a style name into the SFNT subfamily string,
// by inserting a space before each internal upper case letter.
// For example, "BoldItalic" becomes "Bold Italic".
func SubFamily(name string) string {
	b := &strings.Builder{}
	for i, c := range name {
		if i > 0 && c >= 'A' && c <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// ConfigurationError is returned when a style name is not part of the
// style table.
type ConfigurationError struct {
	Style string
}

func (err *ConfigurationError) Error() string {
	return fmt.Sprintf("style: unknown style %q (known styles: %s)",
		err.Style, strings.Join(Names(), ", "))
}
