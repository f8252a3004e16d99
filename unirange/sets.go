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

package unirange

// Width classes of the CJK source.
var (
	// HalfWidthKana covers the half-width katakana and punctuation of the
	// Halfwidth and Fullwidth Forms block.
	HalfWidthKana = New("half-width kana", Span(0xFF61, 0xFF9E))

	HiraganaKatakana = New("hiragana and katakana", Span(0x3040, 0x30FE))
	CJKUnified       = New("CJK unified ideographs", Span(0x4E00, 0x9FCE))
	CJKCompatibility = New("CJK compatibility ideographs", Span(0xF900, 0xFAFE))
	CJKExtA          = New("CJK extension A", Span(0x3400, 0x4DBE))
	CJKExtB          = New("CJK extension B", Span(0x20000, 0x2A6DE))
	CJKExtC          = New("CJK extension C", Span(0x2A700, 0x2B73E))
	CJKExtD          = New("CJK extension D", Span(0x2B740, 0x2B81E))
	CJKCompatSupp    = New("CJK compatibility supplement", Span(0x2F800, 0x2FA1E))

	// FullWidth is the union of all blocks whose glyphs occupy a full
	// square cell.
	FullWidth = Union("full-width",
		HiraganaKatakana, CJKUnified, CJKCompatibility,
		CJKExtA, CJKExtB, CJKExtC, CJKExtD, CJKCompatSupp)
)

// Glyph groups removed from the CJK source, since the Latin source
// provides better designs for them.
var (
	Ligatures     = New("ligatures", Span(0xFB00, 0xFB4F))
	ASCIISymbols  = New("ASCII symbols", Span(0x20, 0x2F))
	ASCIINumbers  = New("ASCII digits", Span(0x30, 0x39))
	ASCIISymbols2 = New("ASCII symbols 2", Span(0x3A, 0x40))
	Alphabet      = New("ASCII letters", Span(0x41, 0x7E))
	OtherGlyphs   = New("Latin-1 and Latin extended", Span(0xA0, 0x24F))

	// MonoOtherGlyphs is OtherGlyphs less the symbols which the mono
	// variant takes from the CJK source and fits to the half-width cell:
	// section, degree, plus-minus, pilcrow, multiplication and division
	// signs.
	MonoOtherGlyphs = New("Latin-1 and Latin extended, mono",
		Span(0xA0, 0xA6),
		Span(0xA8, 0xAF),
		Span(0xB2, 0xB5),
		Span(0xB7, 0xD6),
		Span(0xD8, 0xF6),
		Span(0xF8, 0x24F))

	// CJKSymbols lists the symbol ranges where the CJK designs are
	// proportional and clash with the monospace grid.
	CJKSymbols = New("CJK symbols",
		Single(0x20AC),       // euro sign
		Span(0x2190, 0x21F5), // arrows
		Span(0x2200, 0x22A5), // mathematical operators
		Single(0x2116),       // numero sign
		Single(0x2122),       // trade mark sign
		Span(0x23A7, 0x23AD), // curly bracket pieces
		Span(0x2500, 0x2595), // box drawing
		Span(0x25A0, 0x25EF)) // geometric shapes

	// HalfWidthLetterlike are letterlike symbols which are squeezed into a
	// half-width cell.
	HalfWidthLetterlike = New("half-width letterlike symbols",
		Single(0x2103), // degree celsius
		Single(0x2109), // degree fahrenheit
		Single(0x2121), // telephone sign
		Single(0x212B)) // angstrom sign
)

// Italic lists the code points which are slanted in italic styles.
// Glyphs outside this set, for example emoji and pictographs, stay upright.
var Italic = New("italic",
	Span(0x21, 0x217F),
	Span(0x2460, 0x24EA),
	Span(0x2768, 0x277E),
	Span(0x27E6, 0x27EB),
	Span(0x2987, 0x2998),
	Single(0x2E18),
	Span(0x2E22, 0x2E2E),
	Span(0x2E8E, 0xFFE5),
	Single(0x1F100),
	Span(0x20B9F, 0x2F920))
