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
	"fmt"
	"slices"
	"strings"
)

// Lookup is an OpenType layout lookup of a GSUB or GPOS table.
//
// Only the structure needed to select and remove lookups is kept: the
// lookup name, the feature tags which reference it, and its subtables.
type Lookup struct {
	// Name identifies the lookup.  Names start with the quoted tag of the
	// first feature using the lookup, for example "'vert' GSUB lookup 3".
	Name string

	// Features lists the tags of all features using this lookup.
	Features []string

	Type      uint16
	Subtables []*Subtable
}

// Subtable is a subtable of a lookup.  The contents are opaque.
type Subtable struct {
	Name   string
	Format uint16
}

// LookupName returns the canonical name of a lookup.
func LookupName(table string, features []string, index int) string {
	if len(features) == 0 {
		return fmt.Sprintf("%s lookup %d", table, index)
	}
	return fmt.Sprintf("'%s' %s lookup %d", features[0], table, index)
}

// HasTag reports whether the lookup belongs to the feature with the given
// 4-character tag.
func (l *Lookup) HasTag(tag string) bool {
	return strings.HasPrefix(l.Name, "'"+tag+"'") || slices.Contains(l.Features, tag)
}

// Clone returns a deep copy of the lookup.
func (l *Lookup) Clone() *Lookup {
	res := &Lookup{
		Name:     l.Name,
		Features: slices.Clone(l.Features),
		Type:     l.Type,
	}
	for _, s := range l.Subtables {
		c := *s
		res.Subtables = append(res.Subtables, &c)
	}
	return res
}

// RemoveLookupSubtable removes one subtable from a lookup.
func (l *Lookup) RemoveLookupSubtable(s *Subtable) {
	l.Subtables = slices.DeleteFunc(l.Subtables, func(x *Subtable) bool {
		return x == s
	})
}

// LookupTable selects one of the two layout tables.
type LookupTable int

// These are the two layout tables.
const (
	GSUB LookupTable = iota
	GPOS
)

func (t LookupTable) String() string {
	switch t {
	case GSUB:
		return "GSUB"
	case GPOS:
		return "GPOS"
	default:
		return fmt.Sprintf("LookupTable(%d)", int(t))
	}
}

func (f *Font) lookups(t LookupTable) *[]*Lookup {
	if t == GPOS {
		return &f.GPOS
	}
	return &f.GSUB
}

// RemoveLookups removes all lookups of the given table which belong to one
// of the given feature tags.  The subtables of each lookup are removed
// before the lookup itself.  The names of the removed lookups are
// returned.
func (f *Font) RemoveLookups(t LookupTable, tags ...string) []string {
	ll := f.lookups(t)
	var removed []string
	*ll = slices.DeleteFunc(*ll, func(l *Lookup) bool {
		match := slices.ContainsFunc(tags, l.HasTag)
		if !match {
			return false
		}
		for _, s := range slices.Clone(l.Subtables) {
			l.RemoveLookupSubtable(s)
		}
		removed = append(removed, l.Name)
		return true
	})
	return removed
}

// RemoveEmptyLookups drops all lookups without subtables from both layout
// tables.
func (f *Font) RemoveEmptyLookups() int {
	n := 0
	for _, t := range []LookupTable{GSUB, GPOS} {
		ll := f.lookups(t)
		before := len(*ll)
		*ll = slices.DeleteFunc(*ll, func(l *Lookup) bool {
			return len(l.Subtables) == 0
		})
		n += before - len(*ll)
	}
	return n
}
