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

	"github.com/mjunya/robotomonojp/typeface"
)

// Merge copies all glyphs of src into base.
//
// Outlines are scaled if the two fonts use different em sizes.  Where
// both fonts map the same code point, the glyph from src replaces the one
// in base.  Afterwards the code point mappings of the src glyphs are
// re-established in base: glyphs which are not worth outputting are
// deleted from base, all others get their primary and alternate code
// points from src.  If a mapping cannot be restored, a [*WarningMsg] is
// passed to rep and the merge continues.
func Merge(base, src *typeface.Font, rep Reporter) error {
	n, err := base.Merge(src)
	if err != nil {
		return fmt.Errorf("merge %q: %w", src.FamilyName, err)
	}
	rep.info("merged %d glyphs from %q", n, src.FamilyName)

	removed := 0
	for _, g := range src.Glyphs() {
		if !g.IsWorthOutputting() {
			var bg *typeface.Glyph
			if g.IsEncoded() {
				bg, _ = base.Glyph(g.Unicode)
			} else {
				bg, _ = base.GlyphByName(g.Name)
			}
			if bg != nil && !bg.IsWorthOutputting() {
				base.RemoveGlyph(bg)
				removed++
			}
			continue
		}
		if !g.IsEncoded() {
			continue
		}

		bg, err := base.Glyph(g.Unicode)
		if err != nil {
			rep.warn("U+%04X %s: %v", g.Unicode, g.Name, err)
			continue
		}
		if len(g.AltUni) > 0 {
			err = base.SetAltUni(bg, g.AltUni)
			if err != nil {
				rep.warn("U+%04X %s: alternate code points: %v", g.Unicode, g.Name, err)
			}
		}
		err = base.SetUnicode(bg, g.Unicode)
		if err != nil {
			rep.warn("U+%04X %s: %v", g.Unicode, g.Name, err)
		}
	}
	if removed > 0 {
		rep.info("removed %d empty glyphs", removed)
	}

	return base.Flatten()
}
