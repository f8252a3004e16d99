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

// Package iconpatch adds icon glyphs to a finished font.
//
// The icons are taken from symbol fonts, for example the "Symbols Nerd
// Font" files, and fitted into the half-width cell of the target font.
package iconpatch

import (
	"github.com/mjunya/robotomonojp/typeface"
)

// A Patcher modifies a finished font.
type Patcher interface {
	Patch(f *typeface.Font) error
}

// Nop is a Patcher which leaves the font unchanged.
type Nop struct{}

// Patch implements the [Patcher] interface.
func (Nop) Patch(*typeface.Font) error {
	return nil
}

var _ Patcher = Nop{}
