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
	"github.com/mjunya/robotomonojp/typeface"
	"github.com/mjunya/robotomonojp/unirange"
)

// PruneSpec lists the glyphs and layout lookups removed by [Prune].
type PruneSpec struct {
	// GPOSFeatures and GSUBFeatures are feature tags, for example "kern".
	// Every lookup of the corresponding table which belongs to one of
	// these features is removed.
	GPOSFeatures []string
	GSUBFeatures []string

	Codepoints []rune
	Ranges     [][2]rune // inclusive
	Sets       []*unirange.Set
	Names      []string

	// UnencodedSuffixes selects unencoded glyphs by the end of their
	// name, for example ".rotat" for the glyphs used in vertical text.
	UnencodedSuffixes []string
}

// PruneReport summarises the effect of [Prune].
type PruneReport struct {
	Lookups []string // names of the removed lookups
	Glyphs  int      // number of removed glyphs
}

// Prune removes unwanted layout lookups and glyphs from f.
//
// Lookups are removed first, together with their subtables.  Lookups
// left without subtables are dropped as well.  Glyphs which are only
// used by removed lookups are kept unless spec selects them.
func Prune(f *typeface.Font, spec *PruneSpec) (*PruneReport, error) {
	res := &PruneReport{}
	res.Lookups = append(res.Lookups, f.RemoveLookups(typeface.GPOS, spec.GPOSFeatures...)...)
	res.Lookups = append(res.Lookups, f.RemoveLookups(typeface.GSUB, spec.GSUBFeatures...)...)
	f.RemoveEmptyLookups()

	var sels []typeface.Selector
	if len(spec.Codepoints) > 0 {
		sels = append(sels, typeface.Codepoints(spec.Codepoints...))
	}
	for _, r := range spec.Ranges {
		sels = append(sels, typeface.Range(r[0], r[1]))
	}
	for _, s := range spec.Sets {
		sels = append(sels, typeface.InSet(s))
	}
	if len(spec.Names) > 0 {
		sels = append(sels, typeface.Named(spec.Names...))
	}
	for _, suffix := range spec.UnencodedSuffixes {
		sels = append(sels, typeface.UnencodedSuffix(suffix))
	}
	if len(sels) > 0 {
		res.Glyphs = f.Clear(typeface.Any(sels...))
	}

	return res, f.Flatten()
}
