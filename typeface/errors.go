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

package typeface

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when a glyph lookup fails.
type NotFoundError struct {
	Name string // empty for lookups by code point
	Code rune   // Unencoded for lookups by name
}

func (err *NotFoundError) Error() string {
	if err.Name != "" {
		return fmt.Sprintf("typeface: no glyph named %q", err.Name)
	}
	return fmt.Sprintf("typeface: no glyph for U+%04X", err.Code)
}

// DuplicateCodepointError indicates an attempt to map one code point to
// two different glyphs.
type DuplicateCodepointError struct {
	Code     rune
	Existing string
	New      string
}

func (err *DuplicateCodepointError) Error() string {
	return fmt.Sprintf("typeface: U+%04X is used by %q, cannot assign to %q",
		err.Code, err.Existing, err.New)
}

// DuplicateNameError indicates that two glyphs have the same name.
type DuplicateNameError struct {
	Name string
}

func (err *DuplicateNameError) Error() string {
	return fmt.Sprintf("typeface: duplicate glyph name %q", err.Name)
}

var errAttached = errors.New("typeface: glyph already belongs to a font")
