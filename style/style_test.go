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

package style

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLookup(t *testing.T) {
	for _, name := range Names() {
		p, err := Lookup(name)
		if err != nil {
			t.Fatal(err)
		}
		if p.IsItalic() != IsItalic(name) {
			t.Errorf("%s: style map %d disagrees with style name", name, p.StyleMap)
		}
		wantBold := name == Bold || name == BoldItalic
		if p.IsBold() != wantBold {
			t.Errorf("%s: IsBold() = %t", name, p.IsBold())
		}
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("Oblique")
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected ConfigurationError, got %v", err)
	}
	if cfgErr.Style != "Oblique" {
		t.Errorf("wrong style in error: %q", cfgErr.Style)
	}
}

func TestLookupCopy(t *testing.T) {
	p, _ := Lookup(Regular)
	p.PanoseWeight = 99
	q, _ := Lookup(Regular)
	if q.PanoseWeight == 99 {
		t.Error("style table was modified through a lookup result")
	}
}

func TestSubFamily(t *testing.T) {
	cases := map[string]string{
		"Regular":       "Regular",
		"Bold":          "Bold",
		"RegularItalic": "Regular Italic",
		"BoldItalic":    "Bold Italic",
	}
	for in, want := range cases {
		if got := SubFamily(in); got != want {
			t.Errorf("SubFamily(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestPanose(t *testing.T) {
	p, _ := Lookup(BoldItalic)
	got := RobotoMonoJP.Panose(p)
	want := [10]byte{2, 11, 8, 9, 2, 2, 3, 9, 2, 7}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
	got = RobotoMonoJPMono.Panose(p)
	want = [10]byte{2, 11, 8, 9, 3, 2, 2, 9, 2, 4}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

func TestToday(t *testing.T) {
	fam := *RobotoMonoJP
	fam.Now = func() time.Time {
		return time.Date(2024, 3, 9, 23, 0, 0, 0, time.UTC)
	}
	if got := fam.Today(); got != "2024-03-09" {
		t.Errorf("Today() = %q", got)
	}
}
