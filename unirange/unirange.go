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

// Package unirange provides the named code point sets used to select
// glyphs during the font build.
//
// All sets are immutable after package initialisation.
package unirange

import (
	"fmt"
	"unicode"

	"golang.org/x/text/unicode/rangetable"
)

// Set is a named set of Unicode code points.
type Set struct {
	Name  string
	table *unicode.RangeTable
}

// Span returns a range table containing the code points lo to hi,
// both inclusive.
func Span(lo, hi rune) *unicode.RangeTable {
	if hi < lo {
		lo, hi = hi, lo
	}
	res := &unicode.RangeTable{}
	if lo <= 0xFFFF {
		top := min(hi, 0xFFFF)
		res.R16 = []unicode.Range16{{Lo: uint16(lo), Hi: uint16(top), Stride: 1}}
		if top <= unicode.MaxLatin1 {
			res.LatinOffset = 1
		}
	}
	if hi > 0xFFFF {
		bottom := max(lo, 0x10000)
		res.R32 = []unicode.Range32{{Lo: uint32(bottom), Hi: uint32(hi), Stride: 1}}
	}
	return res
}

// Single returns a range table containing only r.
func Single(r rune) *unicode.RangeTable {
	return Span(r, r)
}

// New combines the given tables into a new set.
func New(name string, tables ...*unicode.RangeTable) *Set {
	return &Set{
		Name:  name,
		table: rangetable.Merge(tables...),
	}
}

// Union returns a new set containing all code points from the given sets.
func Union(name string, sets ...*Set) *Set {
	tables := make([]*unicode.RangeTable, len(sets))
	for i, s := range sets {
		tables[i] = s.table
	}
	return New(name, tables...)
}

// Contains reports whether r is an element of the set.
// Negative values, used for unencoded glyphs, are never contained.
func (s *Set) Contains(r rune) bool {
	if s == nil || r < 0 {
		return false
	}
	return unicode.Is(s.table, r)
}

// Table returns the underlying range table.
func (s *Set) Table() *unicode.RangeTable {
	return s.table
}

// Visit calls fn for every code point in the set, in increasing order.
func (s *Set) Visit(fn func(r rune)) {
	rangetable.Visit(s.table, fn)
}

// Len returns the number of code points in the set.
func (s *Set) Len() int {
	n := 0
	for _, r := range s.table.R16 {
		n += int(r.Hi-r.Lo)/int(r.Stride) + 1
	}
	for _, r := range s.table.R32 {
		n += int(r.Hi-r.Lo)/int(r.Stride) + 1
	}
	return n
}

// Spans returns the set as a list of inclusive ranges.
func (s *Set) Spans() [][2]rune {
	var res [][2]rune
	add := func(lo, hi rune) {
		if k := len(res); k > 0 && res[k-1][1]+1 == lo {
			res[k-1][1] = hi
			return
		}
		res = append(res, [2]rune{lo, hi})
	}
	for _, r := range s.table.R16 {
		if r.Stride == 1 {
			add(rune(r.Lo), rune(r.Hi))
			continue
		}
		for c := rune(r.Lo); c <= rune(r.Hi); c += rune(r.Stride) {
			add(c, c)
		}
	}
	for _, r := range s.table.R32 {
		if r.Stride == 1 {
			add(rune(r.Lo), rune(r.Hi))
			continue
		}
		for c := rune(r.Lo); c <= rune(r.Hi); c += rune(r.Stride) {
			add(c, c)
		}
	}
	return res
}

func (s *Set) String() string {
	return fmt.Sprintf("%s (%d code points)", s.Name, s.Len())
}
