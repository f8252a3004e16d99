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

package iconpatch

import (
	"github.com/mjunya/robotomonojp/unirange"
)

// IconSet is a group of icons with a common placement rule.
type IconSet struct {
	Codes *unirange.Set

	// Stretch makes the icons fill the whole cell, ignoring their aspect
	// ratio.  This is used for the powerline separators, which must join
	// seamlessly with the neighbouring cells.
	Stretch bool
}

// Name returns the name of the icon set.
func (s *IconSet) Name() string {
	return s.Codes.Name
}

// The icon sets of the Nerd Fonts project.
var (
	Powerline = &IconSet{
		Codes: unirange.New("Powerline",
			unirange.Span(0xE0A0, 0xE0A2),
			unirange.Span(0xE0B0, 0xE0B3)),
		Stretch: true,
	}
	PowerlineExtra = &IconSet{
		Codes: unirange.New("Powerline Extra",
			unirange.Single(0xE0A3),
			unirange.Span(0xE0B4, 0xE0C8),
			unirange.Single(0xE0CA),
			unirange.Span(0xE0CC, 0xE0D7)),
		Stretch: true,
	}
	Pomicons = &IconSet{
		Codes: unirange.New("Pomicons", unirange.Span(0xE000, 0xE00A)),
	}
	FontAwesomeExtension = &IconSet{
		Codes: unirange.New("Font Awesome Extension", unirange.Span(0xE200, 0xE2A9)),
	}
	Weather = &IconSet{
		Codes: unirange.New("Weather Icons", unirange.Span(0xE300, 0xE3E3)),
	}
	SetiUI = &IconSet{
		Codes: unirange.New("Seti-UI + Custom", unirange.Span(0xE5FA, 0xE6B7)),
	}
	Devicons = &IconSet{
		Codes: unirange.New("Devicons", unirange.Span(0xE700, 0xE8EF)),
	}
	Codicons = &IconSet{
		Codes: unirange.New("Codicons", unirange.Span(0xEA60, 0xEC1E)),
	}
	FontAwesome = &IconSet{
		Codes: unirange.New("Font Awesome",
			unirange.Span(0xED00, 0xEFCE),
			unirange.Span(0xF000, 0xF2FF)),
	}
	FontLogos = &IconSet{
		Codes: unirange.New("Font Logos", unirange.Span(0xF300, 0xF381)),
	}
	Octicons = &IconSet{
		Codes: unirange.New("Octicons",
			unirange.Single(0x2665),
			unirange.Single(0x26A1),
			unirange.Span(0xF400, 0xF533)),
	}
	MaterialDesign = &IconSet{
		Codes: unirange.New("Material Design", unirange.Span(0xF0001, 0xF1AF0)),
	}
)

// AllSets lists every known icon set.
var AllSets = []*IconSet{
	Powerline,
	PowerlineExtra,
	Pomicons,
	FontAwesomeExtension,
	Weather,
	SetiUI,
	Devicons,
	Codicons,
	FontAwesome,
	FontLogos,
	Octicons,
	MaterialDesign,
}
