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
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/os2"
)

// unicodeBlock assigns a bit of the OS/2 ulUnicodeRange fields to a range
// of code points.
type unicodeBlock struct {
	bit    os2.UnicodeRangeBit
	lo, hi rune
}

// unicodeBlocks lists the blocks relevant for Latin, Japanese and symbol
// fonts.  Bit 57 (non-BMP) is handled by the OS/2 encoder.
var unicodeBlocks = []unicodeBlock{
	{0, 0x0000, 0x007F},    // Basic Latin
	{1, 0x0080, 0x00FF},    // Latin-1 Supplement
	{2, 0x0100, 0x017F},    // Latin Extended-A
	{3, 0x0180, 0x024F},    // Latin Extended-B
	{4, 0x0250, 0x02AF},    // IPA Extensions
	{5, 0x02B0, 0x02FF},    // Spacing Modifier Letters
	{6, 0x0300, 0x036F},    // Combining Diacritical Marks
	{7, 0x0370, 0x03FF},    // Greek and Coptic
	{9, 0x0400, 0x04FF},    // Cyrillic
	{29, 0x1E00, 0x1EFF},   // Latin Extended Additional
	{31, 0x2000, 0x206F},   // General Punctuation
	{32, 0x2070, 0x209F},   // Superscripts And Subscripts
	{33, 0x20A0, 0x20CF},   // Currency Symbols
	{34, 0x20D0, 0x20FF},   // Combining Diacritical Marks For Symbols
	{35, 0x2100, 0x214F},   // Letterlike Symbols
	{36, 0x2150, 0x218F},   // Number Forms
	{37, 0x2190, 0x21FF},   // Arrows
	{38, 0x2200, 0x22FF},   // Mathematical Operators
	{39, 0x2300, 0x23FF},   // Miscellaneous Technical
	{40, 0x2400, 0x243F},   // Control Pictures
	{42, 0x2460, 0x24FF},   // Enclosed Alphanumerics
	{43, 0x2500, 0x257F},   // Box Drawing
	{44, 0x2580, 0x259F},   // Block Elements
	{45, 0x25A0, 0x25FF},   // Geometric Shapes
	{46, 0x2600, 0x26FF},   // Miscellaneous Symbols
	{47, 0x2700, 0x27BF},   // Dingbats
	{48, 0x3000, 0x303F},   // CJK Symbols And Punctuation
	{49, 0x3040, 0x309F},   // Hiragana
	{50, 0x30A0, 0x30FF},   // Katakana
	{50, 0x31F0, 0x31FF},   // Katakana Phonetic Extensions
	{55, 0x3300, 0x33FF},   // CJK Compatibility
	{59, 0x2E80, 0x2FDF},   // CJK Radicals
	{59, 0x3400, 0x4DBF},   // CJK Unified Ideographs Extension A
	{59, 0x4E00, 0x9FFF},   // CJK Unified Ideographs
	{60, 0xE000, 0xF8FF},   // Private Use Area
	{61, 0xF900, 0xFAFF},   // CJK Compatibility Ideographs
	{65, 0xFE30, 0xFE4F},   // CJK Compatibility Forms
	{68, 0xFF00, 0xFFEF},   // Halfwidth And Fullwidth Forms
	{69, 0xFFF0, 0xFFFF},   // Specials
	{90, 0xF0000, 0xFFFFD}, // Supplementary Private Use Area-A
}

func unicodeRange(codes map[rune]glyph.ID) os2.UnicodeRange {
	var res os2.UnicodeRange
	for r := range codes {
		for _, b := range unicodeBlocks {
			if r >= b.lo && r <= b.hi {
				res.Set(b.bit)
			}
		}
	}
	return res
}

// codePageRange sets the Latin 1 bit if the printable ASCII letters are
// present and the JIS/Japan bit if kana are present.
func codePageRange(codes map[rune]glyph.ID) os2.CodePageRange {
	var res os2.CodePageRange
	if _, ok := codes['A']; ok {
		if _, ok := codes['z']; ok {
			res.Set(os2.CP1252)
		}
	}
	if _, ok := codes[0x3042]; ok { // あ
		res.Set(os2.CP932)
	} else if _, ok := codes[0x30A2]; ok { // ア
		res.Set(os2.CP932)
	}
	return res
}
