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

package pdfout

import (
	"bytes"
	"compress/zlib"
	"io"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"
)

func format(t *testing.T, obj Object) string {
	t.Helper()
	buf := &bytes.Buffer{}
	err := obj.PDF(buf)
	if err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestObjects(t *testing.T) {
	cases := []struct {
		obj  Object
		want string
	}{
		{Bool(true), "true"},
		{Integer(-7), "-7"},
		{Real(1.5), "1.5"},
		{Real(2), "2."},
		{String("a(b)c"), "(a(b)c)"},
		{String("a)b"), `(a\)b)`},
		{String("\x00\x01\x02"), "<000102>"},
		{Name("A B#"), "/A#20B#23"},
		{Array{Integer(1), nil, Name("X")}, "[1 null /X]"},
		{Dict{"B": Integer(2), "A": Integer(1), "C": nil}, "<<\n/A 1\n/B 2\n>>"},
		{&Reference{Number: 12}, "12 0 R"},
		{(*Reference)(nil), "null"},
	}
	for _, c := range cases {
		if got := format(t, c.obj); got != c.want {
			t.Errorf("%#v: got %q, want %q", c.obj, got, c.want)
		}
	}
}

func TestTextString(t *testing.T) {
	if got := TextString("RobotoMonoJP"); string(got) != "RobotoMonoJP" {
		t.Errorf("ASCII string changed to %q", got)
	}
	got := TextString("日本")
	want := []byte{0xFE, 0xFF, 0x65, 0xE5, 0x67, 0x2C}
	if !bytes.Equal(got, want) {
		t.Errorf("got % x, want % x", []byte(got), want)
	}
}

func TestDate(t *testing.T) {
	d := time.Date(2024, 3, 9, 12, 30, 0, 0, time.FixedZone("", 9*3600))
	if got := string(Date(d)); got != "D:20240309123000+09'00" {
		t.Errorf("got %q", got)
	}
}

func TestStream(t *testing.T) {
	s, err := Compress(Dict{"Type": Name("XObject")}, []byte("0 0 m 10 10 l S"))
	if err != nil {
		t.Fatal(err)
	}
	out := format(t, s)
	if !strings.Contains(out, "/Filter /FlateDecode") || !strings.Contains(out, "/Length "+strconv.Itoa(len(s.Data))) {
		t.Errorf("stream dictionary: %q", out)
	}
	zr, err := zlib.NewReader(bytes.NewReader(s.Data))
	if err != nil {
		t.Fatal(err)
	}
	body, err := io.ReadAll(zr)
	if err != nil {
		t.Fatal(err)
	}
	if string(body) != "0 0 m 10 10 l S" {
		t.Errorf("stream data %q", body)
	}
}

// TestXRef checks that the cross-reference table points at the objects.
func TestXRef(t *testing.T) {
	buf := &bytes.Buffer{}
	pdf, err := NewWriter(buf)
	if err != nil {
		t.Fatal(err)
	}
	pages := pdf.Alloc()
	catalog, err := pdf.WriteIndirect(Dict{"Type": Name("Catalog"), "Pages": pages}, nil)
	if err != nil {
		t.Fatal(err)
	}
	_, err = pdf.WriteIndirect(Dict{"Type": Name("Pages"), "Kids": Array{}, "Count": Integer(0)}, pages)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := pdf.WriteIndirect(nil, pages); err == nil {
		t.Error("object was written twice")
	}
	err = pdf.Close(catalog, nil)
	if err != nil {
		t.Fatal(err)
	}

	data := buf.String()
	if !strings.HasPrefix(data, "%PDF-1.4\n") || !strings.HasSuffix(data, "%%EOF\n") {
		t.Fatal("missing header or trailer")
	}

	m := regexp.MustCompile(`startxref\n(\d+)\n`).FindStringSubmatch(data)
	if m == nil {
		t.Fatal("startxref not found")
	}
	xrefPos, _ := strconv.Atoi(m[1])
	if !strings.HasPrefix(data[xrefPos:], "xref\n0 3\n") {
		t.Fatalf("xref table not at %d", xrefPos)
	}
	entries := strings.Split(data[xrefPos:], "\r\n")
	// entries[0] holds the table header and the free entry
	for i := 1; i <= 2; i++ {
		pos, err := strconv.Atoi(entries[i][:10])
		if err != nil {
			t.Fatal(err)
		}
		prefix := strconv.Itoa(i) + " 0 obj"
		if !strings.HasPrefix(data[pos:], prefix) {
			t.Errorf("xref entry %d points at %q", i, data[pos:pos+10])
		}
	}
}
