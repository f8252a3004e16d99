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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/mjunya/robotomonojp/typeface"
	"github.com/mjunya/robotomonojp/unirange"
)

func lookup(table string, idx int, tag string) *typeface.Lookup {
	return &typeface.Lookup{
		Name:      typeface.LookupName(table, []string{tag}, idx),
		Features:  []string{tag},
		Subtables: []*typeface.Subtable{{Name: tag + " subtable"}},
	}
}

func names(f *typeface.Font) []string {
	var res []string
	for _, g := range f.Glyphs() {
		res = append(res, g.Name)
	}
	return res
}

func TestPrune(t *testing.T) {
	f := sourceFont(t, "Plex", 1000, 880,
		glyph("uni3042", 0x3042, 1000, 0, 0, 1, 1),
		glyph("uni3042.rotat", typeface.Unencoded, 1000, 0, 0, 1, 1),
		glyph("uniFB01", 0xFB01, 600, 0, 0, 1, 1),
		glyph("A", 'A', 600, 0, 0, 1, 1),
		glyph("f_f", typeface.Unencoded, 600, 0, 0, 1, 1),
		glyph("uni3043.rotat", 0x3043, 1000, 0, 0, 1, 1),
		glyph("uni20AC", 0x20AC, 600, 0, 0, 1, 1),
		glyph("uni2500", 0x2500, 1000, 0, 0, 1, 1),
	)
	f.GSUB = []*typeface.Lookup{
		lookup("GSUB", 0, "vert"),
		lookup("GSUB", 1, "liga"),
		lookup("GSUB", 2, "ccmp"),
		{Name: "GSUB lookup 3"},
	}
	f.GPOS = []*typeface.Lookup{lookup("GPOS", 0, "palt"), lookup("GPOS", 1, "mark")}

	res, err := Prune(f, &PruneSpec{
		GPOSFeatures:      []string{"halt", "palt"},
		GSUBFeatures:      []string{"vert", "vrt2", "liga"},
		Codepoints:        []rune{0x20AC},
		Ranges:            [][2]rune{{0x2500, 0x2595}},
		Sets:              []*unirange.Set{unirange.Ligatures, unirange.Alphabet},
		Names:             []string{"f_f"},
		UnencodedSuffixes: []string{".rotat"},
	})
	require.NoError(t, err)

	wantLookups := []string{"'palt' GPOS lookup 0", "'vert' GSUB lookup 0", "'liga' GSUB lookup 1"}
	if d := cmp.Diff(wantLookups, res.Lookups); d != "" {
		t.Errorf("removed lookups (-want +got):\n%s", d)
	}
	if res.Glyphs != 6 {
		t.Errorf("removed %d glyphs, want 6", res.Glyphs)
	}

	// encoded glyphs are not matched by the suffix rule
	if d := cmp.Diff([]string{"uni3042", "uni3043.rotat"}, names(f)); d != "" {
		t.Errorf("remaining glyphs (-want +got):\n%s", d)
	}

	var remaining []string
	for _, l := range append(f.GSUB, f.GPOS...) {
		if len(l.Subtables) == 0 {
			t.Errorf("empty lookup %q left behind", l.Name)
		}
		remaining = append(remaining, l.Name)
	}
	if d := cmp.Diff([]string{"'ccmp' GSUB lookup 2", "'mark' GPOS lookup 1"}, remaining); d != "" {
		t.Errorf("remaining lookups (-want +got):\n%s", d)
	}
}

func TestPruneNothing(t *testing.T) {
	f := sourceFont(t, "Plex", 1000, 880,
		glyph("uni3042", 0x3042, 1000, 0, 0, 1, 1),
	)
	res, err := Prune(f, &PruneSpec{})
	require.NoError(t, err)
	if res.Glyphs != 0 || len(res.Lookups) != 0 || f.NumGlyphs() != 1 {
		t.Errorf("unexpected changes: %+v", res)
	}
}
