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

// Package typeface implements an editable in-memory font.
//
// A Font is an ordered list of glyphs, together with the font-wide metrics
// and naming information.  Glyphs are addressed by code point or by name.
// Structural edits (clearing glyphs, changing code points) take effect
// immediately for lookups; Flatten compacts the glyph list and checks the
// invariants before a font is handed to the next build stage.
package typeface

import (
	"fmt"
	"slices"
	"strconv"
	"time"

	"seehuhn.de/go/sfnt/os2"
)

// Font is an editable font.
type Font struct {
	FamilyName string
	FontName   string // PostScript name
	FullName   string
	Version    string
	Copyright  string
	Weight     string // weight label, e.g. "Book"
	Encoding   string

	// Created is stored in the "head" table.  If it is zero, the time of
	// writing is used.
	Created time.Time

	// Ascent and Descent give the vertical extent of the design, in font
	// units.  Descent is positive.  In a well-formed font,
	// Ascent+Descent equals Em.
	Ascent  int
	Descent int
	Em      int

	ItalicAngle        float64 // degrees, negative for right-leaning
	UnderlinePosition  int
	UnderlineThickness int
	CapHeight          int
	XHeight            int
	IsFixedPitch       bool

	OS2  OS2Info
	Hhea HheaInfo
	Gasp []GaspRange

	// Names holds additional English (US) name table entries, keyed by
	// name ID.  Entries here override the values derived from the fields
	// above.
	Names map[NameID]string

	GSUB []*Lookup
	GPOS []*Lookup

	glyphs []*Glyph
	byCode map[rune]*Glyph
	byName map[string]*Glyph
	dirty  bool
}

// OS2Info contains the values of the OS/2 table which are not derived
// from the glyph data.
type OS2Info struct {
	WeightClass os2.Weight
	WidthClass  os2.Width
	FSType      uint16
	FamilyClass int16
	StyleMap    uint16 // fsSelection
	Vendor      string
	Panose      [10]byte

	WinAscent   int
	WinDescent  int // positive
	TypoAscent  int
	TypoDescent int // negative
	TypoLineGap int

	// If one of the following is set, the corresponding metric is an
	// offset rather than an absolute value.  Win metrics are offsets to
	// the font bounding box, typo metrics are offsets to Ascent and
	// Descent.
	WinAscentIsOffset   bool
	WinDescentIsOffset  bool
	TypoAscentIsOffset  bool
	TypoDescentIsOffset bool
}

// HheaInfo contains the line metrics of the hhea table.
type HheaInfo struct {
	Ascent  int
	Descent int // negative
	LineGap int

	AscentIsOffset  bool
	DescentIsOffset bool
}

// GaspFlags select the rasterizer behaviour for a range of sizes.
type GaspFlags uint16

// These are the bits of the gasp table.
const (
	GaspGridfit            GaspFlags = 1 << 0
	GaspAntialias          GaspFlags = 1 << 1 // "do gray"
	GaspSymmetricGridfit   GaspFlags = 1 << 2 // gridfit with ClearType smoothing
	GaspSymmetricSmoothing GaspFlags = 1 << 3
)

// GaspRange applies Flags to all sizes up to and including MaxPPEM.
type GaspRange struct {
	MaxPPEM uint16
	Flags   GaspFlags
}

// NameID identifies an entry of the name table.
type NameID uint16

// These are the name IDs used by the build.
const (
	NameCopyright      NameID = 0
	NameFamily         NameID = 1
	NameSubFamily      NameID = 2
	NameUniqueID       NameID = 3
	NameFullName       NameID = 4
	NameVersion        NameID = 5
	NamePostScriptName NameID = 6
)

// New allocates an empty font.
func New() *Font {
	return &Font{
		Names:  make(map[NameID]string),
		byCode: make(map[rune]*Glyph),
		byName: make(map[string]*Glyph),
	}
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	if !f.dirty {
		return len(f.glyphs)
	}
	n := 0
	for _, g := range f.glyphs {
		if g.font == f {
			n++
		}
	}
	return n
}

// Glyphs returns the glyphs of the font, in glyph order.
// The returned slice is a copy and may be modified by the caller.
func (f *Font) Glyphs() []*Glyph {
	res := make([]*Glyph, 0, len(f.glyphs))
	for _, g := range f.glyphs {
		if g.font == f {
			res = append(res, g)
		}
	}
	return res
}

// Glyph returns the glyph mapped to the code point r, either as its
// primary or as an alternate code point.
func (f *Font) Glyph(r rune) (*Glyph, error) {
	g, ok := f.byCode[r]
	if !ok {
		return nil, &NotFoundError{Code: r}
	}
	return g, nil
}

// GlyphByName returns the glyph with the given name.
func (f *Font) GlyphByName(name string) (*Glyph, error) {
	g, ok := f.byName[name]
	if !ok {
		return nil, &NotFoundError{Name: name, Code: Unencoded}
	}
	return g, nil
}

// HasCodepoint reports whether any glyph is mapped to r.
func (f *Font) HasCodepoint(r rune) bool {
	_, ok := f.byCode[r]
	return ok
}

// AddGlyph appends g to the font.
//
// The code points of g must not yet be used in the font.  If the name of g
// is empty or already taken, a unique name is derived from the code point.
func (f *Font) AddGlyph(g *Glyph) error {
	if g.font != nil {
		return errAttached
	}
	for _, r := range g.Codepoints() {
		if other, ok := f.byCode[r]; ok {
			return &DuplicateCodepointError{Code: r, Existing: other.Name, New: g.Name}
		}
	}
	f.attach(g)
	return nil
}

// ReplaceGlyph adds g to the font.  Any glyph using one of the code points
// of g, or using the same name, is removed first.
func (f *Font) ReplaceGlyph(g *Glyph) error {
	if g.font != nil {
		return errAttached
	}
	for _, r := range g.Codepoints() {
		if other, ok := f.byCode[r]; ok {
			f.detachCode(other, r)
			if len(other.Codepoints()) == 0 {
				f.remove(other)
			}
		}
	}
	// An unencoded glyph of the same name is superseded.  Encoded glyphs
	// are kept and the new glyph is renamed by attach.
	if other, ok := f.byName[g.Name]; ok && len(other.Codepoints()) == 0 {
		f.remove(other)
	}
	f.attach(g)
	return nil
}

func (f *Font) uniqueName(g *Glyph) string {
	base := g.Name
	switch {
	case base != "":
		// keep the name as a prefix
	case g.Unicode > 0xFFFF:
		base = fmt.Sprintf("u%05X", g.Unicode)
	case g.Unicode >= 0:
		base = fmt.Sprintf("uni%04X", g.Unicode)
	default:
		base = "glyph"
	}
	if _, taken := f.byName[base]; !taken {
		return base
	}
	for i := 1; ; i++ {
		name := base + "." + strconv.Itoa(i)
		if _, taken := f.byName[name]; !taken {
			return name
		}
	}
}

func (f *Font) attach(g *Glyph) {
	if g.Name == "" || f.byName[g.Name] != nil {
		g.Name = f.uniqueName(g)
	}
	g.font = f
	f.glyphs = append(f.glyphs, g)
	f.byName[g.Name] = g
	for _, r := range g.Codepoints() {
		f.byCode[r] = g
	}
}

// detachCode removes the code point r from the glyph g.  The glyph itself
// stays in the font.
func (f *Font) detachCode(g *Glyph, r rune) {
	delete(f.byCode, r)
	if g.Unicode == r {
		g.Unicode = Unencoded
		if len(g.AltUni) > 0 {
			g.Unicode = g.AltUni[0]
			g.AltUni = g.AltUni[1:]
		}
		return
	}
	g.AltUni = slices.DeleteFunc(g.AltUni, func(a rune) bool { return a == r })
}

func (f *Font) remove(g *Glyph) {
	if g.font != f {
		return
	}
	for _, r := range g.Codepoints() {
		if f.byCode[r] == g {
			delete(f.byCode, r)
		}
	}
	if f.byName[g.Name] == g {
		delete(f.byName, g.Name)
	}
	g.font = nil
	f.dirty = true
}

// SetUnicode makes r the primary code point of g.
// The previous primary code point of g is released.
// An error is returned if r is already used by a different glyph.
func (f *Font) SetUnicode(g *Glyph, r rune) error {
	if g.font != f {
		return &NotFoundError{Name: g.Name, Code: r}
	}
	if r >= 0 {
		if other, ok := f.byCode[r]; ok && other != g {
			return &DuplicateCodepointError{Code: r, Existing: other.Name, New: g.Name}
		}
	}
	if g.Unicode >= 0 && g.Unicode != r && f.byCode[g.Unicode] == g {
		delete(f.byCode, g.Unicode)
	}
	g.AltUni = slices.DeleteFunc(g.AltUni, func(a rune) bool { return a == r })
	g.Unicode = r
	if r >= 0 {
		f.byCode[r] = g
	}
	return nil
}

// SetAltUni replaces the alternate code points of g.
// An error is returned if one of the code points is used by a different
// glyph; in this case g is not modified.
func (f *Font) SetAltUni(g *Glyph, alt []rune) error {
	if g.font != f {
		return &NotFoundError{Name: g.Name, Code: g.Unicode}
	}
	for _, r := range alt {
		if other, ok := f.byCode[r]; ok && other != g {
			return &DuplicateCodepointError{Code: r, Existing: other.Name, New: g.Name}
		}
	}
	for _, r := range g.AltUni {
		if f.byCode[r] == g {
			delete(f.byCode, r)
		}
	}
	g.AltUni = nil
	for _, r := range alt {
		if r == g.Unicode || slices.Contains(g.AltUni, r) {
			continue
		}
		g.AltUni = append(g.AltUni, r)
		f.byCode[r] = g
	}
	return nil
}

// Rename changes the name of a glyph.
func (f *Font) Rename(g *Glyph, name string) error {
	if other, ok := f.byName[name]; ok && other != g {
		return &DuplicateNameError{Name: name}
	}
	if f.byName[g.Name] == g {
		delete(f.byName, g.Name)
	}
	g.Name = name
	f.byName[name] = g
	return nil
}

// Clear removes all glyphs matched by sel from the font.
// It returns the number of removed glyphs.
func (f *Font) Clear(sel Selector) int {
	n := 0
	for _, g := range f.Select(sel) {
		f.remove(g)
		n++
	}
	return n
}

// RemoveGlyph removes a single glyph from the font.
func (f *Font) RemoveGlyph(g *Glyph) {
	f.remove(g)
}

// Flatten commits all pending structural edits.
//
// Removed glyphs are dropped from the glyph list and the code point and
// name indices are rebuilt from the remaining glyphs.  An error is returned
// if two glyphs claim the same code point.
func (f *Font) Flatten() error {
	live := f.glyphs[:0]
	for _, g := range f.glyphs {
		if g.font == f {
			live = append(live, g)
		}
	}
	clear(f.glyphs[len(live):])
	f.glyphs = live
	f.dirty = false

	byCode := make(map[rune]*Glyph, len(f.byCode))
	byName := make(map[string]*Glyph, len(f.glyphs))
	for _, g := range f.glyphs {
		for _, r := range g.Codepoints() {
			if other, ok := byCode[r]; ok && other != g {
				return &DuplicateCodepointError{Code: r, Existing: other.Name, New: g.Name}
			}
			byCode[r] = g
		}
		if _, ok := byName[g.Name]; ok {
			return &DuplicateNameError{Name: g.Name}
		}
		byName[g.Name] = g
	}
	f.byCode = byCode
	f.byName = byName
	return nil
}

// SortGlyphs reorders the glyphs: ".notdef" first, then encoded glyphs in
// code point order, then unencoded glyphs in their current order.
func (f *Font) SortGlyphs() {
	gg := f.Glyphs()
	slices.SortStableFunc(gg, func(a, b *Glyph) int {
		ka, kb := sortKey(a), sortKey(b)
		switch {
		case ka < kb:
			return -1
		case ka > kb:
			return 1
		}
		return 0
	})
	f.glyphs = gg
	f.dirty = false
}

func sortKey(g *Glyph) int64 {
	switch {
	case g.Name == ".notdef":
		return -1
	case g.Unicode >= 0:
		return int64(g.Unicode)
	default:
		return 1 << 32
	}
}

// Metadata copies the font-wide information, but not the glyphs and
// lookups, from other into f.
func (f *Font) Metadata(other *Font) {
	glyphs, byCode, byName, dirty := f.glyphs, f.byCode, f.byName, f.dirty
	gsub, gpos := f.GSUB, f.GPOS
	*f = *other
	f.Names = make(map[NameID]string, len(other.Names))
	for k, v := range other.Names {
		f.Names[k] = v
	}
	f.Gasp = slices.Clone(other.Gasp)
	f.glyphs, f.byCode, f.byName, f.dirty = glyphs, byCode, byName, dirty
	f.GSUB, f.GPOS = gsub, gpos
}
