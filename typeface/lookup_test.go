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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRemoveLookups(t *testing.T) {
	mk := func(table string, idx int, tags ...string) *Lookup {
		return &Lookup{
			Name:      LookupName(table, tags, idx),
			Features:  tags,
			Subtables: []*Subtable{{Name: "s1"}, {Name: "s2"}},
		}
	}
	f := New()
	f.GSUB = []*Lookup{
		mk("GSUB", 0, "vert", "vrt2"),
		mk("GSUB", 1, "liga"),
		mk("GSUB", 2, "ccmp"),
		mk("GSUB", 3, "vrt2"),
	}
	f.GPOS = []*Lookup{mk("GPOS", 0, "kern"), mk("GPOS", 1, "mark")}
	vert := f.GSUB[0]

	removed := f.RemoveLookups(GSUB, "vert", "vrt2", "liga")
	want := []string{"'vert' GSUB lookup 0", "'liga' GSUB lookup 1", "'vrt2' GSUB lookup 3"}
	if d := cmp.Diff(want, removed); d != "" {
		t.Errorf("removed lookups (-want +got):\n%s", d)
	}
	if len(f.GSUB) != 1 || f.GSUB[0].Name != "'ccmp' GSUB lookup 2" {
		t.Errorf("remaining GSUB lookups: %v", f.GSUB)
	}
	if len(vert.Subtables) != 0 {
		t.Error("subtables of removed lookup were kept")
	}
	if len(f.GPOS) != 2 {
		t.Error("GPOS lookups were touched")
	}

	if got := f.RemoveLookups(GPOS, "halt"); len(got) != 0 {
		t.Errorf("removed %v", got)
	}
}

func TestRemoveEmptyLookups(t *testing.T) {
	f := New()
	f.GSUB = []*Lookup{{Name: "a"}, {Name: "b", Subtables: []*Subtable{{}}}}
	f.GPOS = []*Lookup{{Name: "c"}}
	if n := f.RemoveEmptyLookups(); n != 2 {
		t.Errorf("removed %d lookups, want 2", n)
	}
	if len(f.GSUB) != 1 || f.GSUB[0].Name != "b" || len(f.GPOS) != 0 {
		t.Error("wrong lookups removed")
	}
}

func TestLookupHasTag(t *testing.T) {
	l := &Lookup{Name: "'palt' GPOS lookup 4"}
	if !l.HasTag("palt") {
		t.Error("tag in name not recognised")
	}
	if l.HasTag("pal") {
		t.Error("tag prefix matched")
	}
	l = &Lookup{Name: "GPOS lookup 5", Features: []string{"vpal"}}
	if !l.HasTag("vpal") {
		t.Error("feature tag not recognised")
	}
}
