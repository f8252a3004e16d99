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

package ttfio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/head"
	"seehuhn.de/go/sfnt/header"
	"seehuhn.de/go/sfnt/hmtx"
	"seehuhn.de/go/sfnt/name"
	"seehuhn.de/go/sfnt/os2"
	"seehuhn.de/go/sfnt/post"

	"github.com/mjunya/robotomonojp/typeface"
	"github.com/mjunya/robotomonojp/typeface/sfnt/table"
)

// Format selects the outline format of a font file.
type Format int

// These are the supported output formats.
const (
	FormatTrueType Format = iota // "glyf" outlines, ".ttf"
	FormatOpenType               // "CFF " outlines, ".otf"
)

// Ext returns the usual file name extension for the format.
func (f Format) Ext() string {
	if f == FormatOpenType {
		return ".otf"
	}
	return ".ttf"
}

func (f Format) String() string {
	switch f {
	case FormatTrueType:
		return "TrueType"
	case FormatOpenType:
		return "OpenType/CFF"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// WriteFile writes the font to the named file.
func WriteFile(fname string, f *typeface.Font, format Format) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	_, err = Write(fd, f, format)
	err2 := fd.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	return err2
}

// Write writes the font in the given format.
//
// Pending structural edits are committed first, see
// [typeface.Font.Flatten].  Glyphs which are not worth outputting are
// skipped, and ".notdef" always becomes glyph 0.  GSUB and GPOS lookups
// are not written.
func Write(w io.Writer, f *typeface.Font, format Format) (int64, error) {
	if f.Em <= 0 || f.Em > 16384 {
		return 0, &InvalidFontError{
			SubSystem: "ttfio",
			Reason:    fmt.Sprintf("invalid em size %d", f.Em),
		}
	}
	if err := f.Flatten(); err != nil {
		return 0, err
	}

	ff := &fontWriter{
		font:   f,
		glyphs: outputGlyphs(f),
		tables: make(map[string][]byte),
	}
	if len(ff.glyphs) > 0xFFFF {
		return 0, &NotSupportedError{
			SubSystem: "ttfio",
			Feature:   fmt.Sprintf("%d glyphs", len(ff.glyphs)),
		}
	}

	ff.makeCmap()

	var scalerType uint32
	var err error
	switch format {
	case FormatTrueType:
		scalerType = header.ScalerTypeTrueType
		err = ff.makeGlyf()
	case FormatOpenType:
		scalerType = header.ScalerTypeCFF
		err = ff.makeCFF()
	default:
		err = errUnknownFormat
	}
	if err != nil {
		return 0, err
	}

	ff.makeHmtx()
	ff.makeOS2()
	ff.makePost(format == FormatTrueType)
	ff.makeName()
	if err := ff.makeGasp(); err != nil {
		return 0, err
	}
	ff.makeHead()

	return header.Write(w, scalerType, ff.tables)
}

var errUnknownFormat = errors.New("ttfio: unknown output format")

type fontWriter struct {
	font   *typeface.Font
	glyphs []*typeface.Glyph
	tables map[string][]byte

	bboxes   []funit.Rect16 // per glyph, zero for empty glyphs
	fontBBox funit.Rect16
	codes    map[rune]glyph.ID

	locaFormat int16
}

// outputGlyphs returns the glyphs to write, with ".notdef" first.
// If the font has no ".notdef" glyph, an empty one is added.
func outputGlyphs(f *typeface.Font) []*typeface.Glyph {
	var res []*typeface.Glyph
	var notdef *typeface.Glyph
	for _, g := range f.Glyphs() {
		if g.Name == ".notdef" {
			notdef = g
			continue
		}
		if g.IsWorthOutputting() {
			res = append(res, g)
		}
	}
	if notdef == nil {
		notdef = typeface.NewGlyph(".notdef", typeface.Unencoded, float64(f.Em/2))
	}
	return append([]*typeface.Glyph{notdef}, res...)
}

func (ff *fontWriter) setBBoxes(bb []funit.Rect16) {
	ff.bboxes = bb
	ff.fontBBox = funit.Rect16{}
	for _, b := range bb {
		ff.fontBBox.Extend(b)
	}
}

func (ff *fontWriter) makeHead() {
	f := ff.font
	created := f.Created
	if created.IsZero() {
		created = time.Now()
	}
	info := &head.Info{
		FontRevision:  ff.version(),
		HasYBaseAt0:   true,
		UnitsPerEm:    uint16(f.Em),
		Created:       created,
		Modified:      created,
		FontBBox:      ff.fontBBox,
		IsBold:        f.OS2.StyleMap&styleBold != 0,
		IsItalic:      f.OS2.StyleMap&styleItalic != 0 || f.ItalicAngle != 0,
		LowestRecPPEM: 8,
		LocaFormat:    ff.locaFormat,
	}
	ff.tables["head"] = info.Encode()
}

// version returns the font revision, or 1.0 if the version string cannot
// be parsed.
func (ff *fontWriter) version() head.Version {
	v, err := head.VersionFromString(ff.font.Version)
	if err != nil {
		return 0x00010000
	}
	return v
}

// fsSelection bits
const (
	styleItalic  = 1 << 0
	styleBold    = 1 << 5
	styleOblique = 1 << 9
)

func (ff *fontWriter) makeHmtx() {
	f := ff.font
	info := &hmtx.Info{
		Widths:       make([]funit.Int16, len(ff.glyphs)),
		GlyphExtents: ff.bboxes,
		LineGap:      clamp16(float64(f.Hhea.LineGap)),
		CaretAngle:   f.ItalicAngle / 180 * math.Pi,
	}
	for i, g := range ff.glyphs {
		// advance widths are unsigned in the file
		info.Widths[i] = funit.Int16(uint16(max(0, min(math.Round(g.Width), 0xFFFF))))
	}

	ascent, descent := ff.hheaMetrics()
	info.Ascent = clamp16(float64(ascent))
	info.Descent = clamp16(float64(descent))

	ff.tables["hhea"], ff.tables["hmtx"] = info.Encode()
}

// hheaMetrics returns the ascent and (negative) descent for the "hhea"
// table.  Offsets are relative to the font bounding box.
func (ff *fontWriter) hheaMetrics() (ascent, descent int) {
	f := ff.font
	h := f.Hhea
	switch {
	case h.AscentIsOffset:
		ascent = int(ff.fontBBox.URy) + h.Ascent
	case h.Ascent != 0:
		ascent = h.Ascent
	default:
		ascent = f.Ascent
	}
	switch {
	case h.DescentIsOffset:
		descent = int(ff.fontBBox.LLy) + h.Descent
	case h.Descent != 0:
		descent = h.Descent
	default:
		descent = -f.Descent
	}
	return ascent, descent
}

// makeCmap writes a format 4 subtable for the Basic Multilingual Plane
// and, if any code point lies outside the BMP, a format 12 subtable
// covering all code points.
func (ff *fontWriter) makeCmap() {
	ff.codes = make(map[rune]glyph.ID)
	for i, g := range ff.glyphs {
		for _, r := range g.Codepoints() {
			ff.codes[r] = glyph.ID(i)
		}
	}

	bmp := cmap.Format4{}
	full := cmap.Format12{}
	needFull := false
	for r, gid := range ff.codes {
		full[uint32(r)] = gid
		if r > 0xFFFF {
			needFull = true
			continue
		}
		bmp[uint16(r)] = gid
	}

	f4 := bmp.Encode(0)
	t := cmap.Table{
		{PlatformID: 0, EncodingID: 3}: f4, // Unicode BMP
		{PlatformID: 3, EncodingID: 1}: f4, // Windows BMP
	}
	if needFull {
		f12 := full.Encode(0)
		t[cmap.Key{PlatformID: 0, EncodingID: 4}] = f12  // Unicode full
		t[cmap.Key{PlatformID: 3, EncodingID: 10}] = f12 // Windows full
	}
	ff.tables["cmap"] = t.Encode()
}

func (ff *fontWriter) makeOS2() {
	f := ff.font
	o := f.OS2

	var total, count int
	for _, g := range ff.glyphs {
		if g.Width > 0 {
			total += int(math.Round(g.Width))
			count++
		}
	}
	var avgWidth int
	if count > 0 {
		avgWidth = (total + count/2) / count
	}

	typoAscent := o.TypoAscent
	switch {
	case o.TypoAscentIsOffset:
		typoAscent += f.Ascent
	case typoAscent == 0:
		typoAscent = f.Ascent
	}
	typoDescent := o.TypoDescent
	switch {
	case o.TypoDescentIsOffset:
		typoDescent -= f.Descent
	case typoDescent == 0:
		typoDescent = -f.Descent
	}
	winAscent := o.WinAscent
	switch {
	case o.WinAscentIsOffset:
		winAscent += int(ff.fontBBox.URy)
	case winAscent == 0:
		winAscent = int(ff.fontBBox.URy)
	}
	winDescent := o.WinDescent
	switch {
	case o.WinDescentIsOffset:
		winDescent -= int(ff.fontBBox.LLy)
	case winDescent == 0:
		winDescent = -int(ff.fontBBox.LLy)
	}

	sel := o.StyleMap
	em := float64(f.Em)
	info := &os2.Info{
		WeightClass: o.WeightClass,
		WidthClass:  o.WidthClass,

		IsItalic:  sel&styleItalic != 0,
		IsBold:    sel&styleBold != 0,
		IsRegular: sel&(styleItalic|styleBold) == 0,
		IsOblique: sel&styleOblique != 0,

		Ascent:     clamp16(float64(typoAscent)),
		Descent:    clamp16(float64(typoDescent)),
		LineGap:    clamp16(float64(o.TypoLineGap)),
		WinAscent:  clamp16(float64(max(0, winAscent))),
		WinDescent: clamp16(float64(max(0, winDescent))),

		CapHeight:     clamp16(float64(f.CapHeight)),
		XHeight:       clamp16(float64(f.XHeight)),
		AvgGlyphWidth: clamp16(float64(avgWidth)),

		SubscriptXSize:     clamp16(0.65 * em),
		SubscriptYSize:     clamp16(0.6 * em),
		SubscriptYOffset:   clamp16(0.075 * em),
		SuperscriptXSize:   clamp16(0.65 * em),
		SuperscriptYSize:   clamp16(0.6 * em),
		SuperscriptYOffset: clamp16(0.35 * em),
		StrikeoutSize:      clamp16(float64(f.UnderlineThickness)),
		StrikeoutPosition:  clamp16(0.25 * em),

		FamilyClass: o.FamilyClass,
		Panose:      o.Panose,
		Vendor:      o.Vendor,

		CodePageRange: codePageRange(ff.codes),
		UnicodeRange:  unicodeRange(ff.codes),
	}
	setPermissions(info, o.FSType)

	first := true
	for r := range ff.codes {
		c := uint16(min(r, 0xFFFF))
		if first || c < info.FirstCharIndex {
			info.FirstCharIndex = c
		}
		if first || c > info.LastCharIndex {
			info.LastCharIndex = c
		}
		first = false
	}
	ff.tables["OS/2"] = info.Encode()
}

// setPermissions translates the fsType embedding bits.  If several usage
// bits are set, the least restrictive one applies.
func setPermissions(info *os2.Info, fsType uint16) {
	switch {
	case fsType&0x0008 != 0:
		info.PermUse = os2.PermEdit
	case fsType&0x0004 != 0:
		info.PermUse = os2.PermView
	case fsType&0x0002 != 0:
		info.PermUse = os2.PermRestricted
	default:
		info.PermUse = os2.PermInstall
	}
	info.PermNoSubsetting = fsType&0x0100 != 0
	info.PermOnlyBitmap = fsType&0x0200 != 0
}

func (ff *fontWriter) makePost(withNames bool) {
	f := ff.font
	info := &post.Info{
		ItalicAngle:        f.ItalicAngle,
		UnderlinePosition:  clamp16(float64(f.UnderlinePosition)),
		UnderlineThickness: clamp16(float64(f.UnderlineThickness)),
		IsFixedPitch:       f.IsFixedPitch || isFixedPitch(ff.glyphs),
	}
	if withNames {
		info.Names = make([]string, len(ff.glyphs))
		for i, g := range ff.glyphs {
			info.Names[i] = g.Name
		}
	}
	ff.tables["post"] = info.Encode()
}

// isFixedPitch reports whether all glyphs with non-zero width have the
// same width.
func isFixedPitch(gg []*typeface.Glyph) bool {
	var width float64
	for _, g := range gg {
		w := math.Round(g.Width)
		if w == 0 {
			continue
		}
		if width == 0 {
			width = w
		} else if width != w {
			return false
		}
	}
	return width != 0
}

func (ff *fontWriter) makeName() {
	f := ff.font

	version := ff.version()
	day := f.Created
	if day.IsZero() {
		day = time.Now()
	}
	subFamily := f.Names[typeface.NameSubFamily]
	if subFamily == "" {
		subFamily = "Regular"
	}

	t := &name.Table{
		Copyright:      f.Copyright,
		Family:         f.FamilyName,
		Subfamily:      subFamily,
		Identifier:     f.FullName + "; " + version.String() + "; " + day.Format("2006-01-02"),
		FullName:       f.FullName,
		Version:        "Version " + version.String(),
		PostScriptName: f.FontName,
	}
	for id, val := range f.Names {
		setName(t, id, val)
	}

	info := &name.Info{
		Mac:     name.Tables{"en": t},
		Windows: name.Tables{"en-US": t},
	}
	ff.tables["name"] = info.Encode(1)
}

// setName stores a name record in the field for its name ID.  IDs without
// a dedicated field go to t.Extra.
func setName(t *name.Table, id typeface.NameID, val string) {
	switch id {
	case 0:
		t.Copyright = val
	case 1:
		t.Family = val
	case 2:
		t.Subfamily = val
	case 3:
		t.Identifier = val
	case 4:
		t.FullName = val
	case 5:
		t.Version = val
	case 6:
		t.PostScriptName = val
	case 7:
		t.Trademark = val
	case 8:
		t.Manufacturer = val
	case 9:
		t.Designer = val
	case 10:
		t.Description = val
	case 11:
		t.VendorURL = val
	case 12:
		t.DesignerURL = val
	case 13:
		t.License = val
	case 14:
		t.LicenseURL = val
	case 16:
		t.TypographicFamily = val
	case 17:
		t.TypographicSubfamily = val
	case 18:
		t.MacFullName = val
	case 19:
		t.SampleText = val
	case 20:
		t.CIDFontName = val
	case 21:
		t.WWSFamily = val
	case 22:
		t.WWSSubfamily = val
	case 23:
		t.LightBackgroundPalette = val
	case 24:
		t.DarkBackgroundPalette = val
	case 25:
		t.VariationsPostScriptName = val
	default:
		if t.Extra == nil {
			t.Extra = make(map[name.ID]string)
		}
		t.Extra[name.ID(id)] = val
	}
}

func (ff *fontWriter) makeGasp() error {
	if len(ff.font.Gasp) == 0 {
		return nil
	}
	rr := make([]table.GaspRange, len(ff.font.Gasp))
	for i, r := range ff.font.Gasp {
		rr[i] = table.GaspRange{MaxPPEM: r.MaxPPEM, Flags: uint16(r.Flags)}
	}
	data, err := table.EncodeGasp(rr)
	if err != nil {
		return err
	}
	ff.tables["gasp"] = data
	return nil
}

// clamp16 rounds x to the nearest value representable as int16.
func clamp16(x float64) funit.Int16 {
	return funit.Int16(max(math.MinInt16, min(math.Round(x), math.MaxInt16)))
}
