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

package specimen

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"

	"github.com/mjunya/robotomonojp/internal/pdfout"
	"github.com/mjunya/robotomonojp/typeface"
)

// A4 page geometry, in PDF units.
const (
	pageWidth  = 595.0
	pageHeight = 842.0
	pageMargin = 36.0
	titleSize  = 10.0
)

// WritePDFFile writes a PDF sample sheet for f to the named file.
func WritePDFFile(fname string, f *typeface.Font, opt *Options) error {
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = WritePDF(out, f, opt)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// WritePDF writes a PDF sample sheet for f to w.
// The glyphs are drawn as filled paths, so the font does not need to be
// embedded.
func WritePDF(w io.Writer, f *typeface.Font, opt *Options) error {
	s := newSettings(f, opt)
	if f.Em <= 0 {
		return fmt.Errorf("specimen: invalid em size %d", f.Em)
	}

	pdf, err := pdfout.NewWriter(w)
	if err != nil {
		return err
	}

	pages := pdf.Alloc()
	font, err := pdf.WriteIndirect(pdfout.Dict{
		"Type":     pdfout.Name("Font"),
		"Subtype":  pdfout.Name("Type1"),
		"BaseFont": pdfout.Name("Helvetica"),
		"Encoding": pdfout.Name("WinAnsiEncoding"),
	}, nil)
	if err != nil {
		return err
	}
	resources := pdfout.Dict{
		"Font": pdfout.Dict{"F1": font},
	}

	p := &pageWriter{
		pdf:    pdf,
		parent: pages,
		title:  s.title,
	}

	scale := s.size / float64(f.Em)
	maxWidth := (pageWidth - 2*pageMargin) / scale
	ascent := float64(f.Ascent) * scale
	step := lineHeight(f) * scale
	for _, line := range s.lines {
		for _, gg := range layoutLine(f, line, maxWidth) {
			if p.content == nil || p.y-step < pageMargin {
				err = p.newPage()
				if err != nil {
					return err
				}
			}
			base := p.y - ascent
			p.y -= step
			if len(gg) == 0 {
				continue
			}
			writeGlyphs(p.content, gg, scale, pageMargin, base)
		}
	}
	if p.content == nil {
		err = p.newPage()
		if err != nil {
			return err
		}
	}
	err = p.flush()
	if err != nil {
		return err
	}

	_, err = pdf.WriteIndirect(pdfout.Dict{
		"Type":      pdfout.Name("Pages"),
		"Kids":      p.kids,
		"Count":     pdfout.Integer(len(p.kids)),
		"MediaBox":  pdfout.Array{pdfout.Integer(0), pdfout.Integer(0), pdfout.Real(pageWidth), pdfout.Real(pageHeight)},
		"Resources": resources,
	}, pages)
	if err != nil {
		return err
	}

	catalog, err := pdf.WriteIndirect(pdfout.Dict{
		"Type":  pdfout.Name("Catalog"),
		"Pages": pages,
	}, nil)
	if err != nil {
		return err
	}
	info, err := pdf.WriteIndirect(pdfout.Dict{
		"Title":        pdfout.TextString(s.title),
		"Producer":     pdfout.TextString("robotomonojp"),
		"CreationDate": pdfout.Date(s.date),
	}, nil)
	if err != nil {
		return err
	}
	return pdf.Close(catalog, info)
}

type pageWriter struct {
	pdf    *pdfout.Writer
	parent *pdfout.Reference
	title  string

	kids    pdfout.Array
	content *bytes.Buffer
	y       float64
}

func (p *pageWriter) newPage() error {
	err := p.flush()
	if err != nil {
		return err
	}

	p.content = &bytes.Buffer{}
	y := pageHeight - pageMargin - titleSize
	fmt.Fprintf(p.content, "BT\n/F1 %s Tf\n%s %s Td\n",
		num(titleSize), num(pageMargin), num(y))
	err = pdfout.String(p.title).PDF(p.content)
	if err != nil {
		return err
	}
	p.content.WriteString(" Tj\nET\n")
	p.y = y - titleSize
	return nil
}

func (p *pageWriter) flush() error {
	if p.content == nil {
		return nil
	}
	stream, err := pdfout.Compress(nil, p.content.Bytes())
	if err != nil {
		return err
	}
	contents, err := p.pdf.WriteIndirect(stream, nil)
	if err != nil {
		return err
	}
	page, err := p.pdf.WriteIndirect(pdfout.Dict{
		"Type":     pdfout.Name("Page"),
		"Parent":   p.parent,
		"Contents": contents,
	}, nil)
	if err != nil {
		return err
	}
	p.kids = append(p.kids, page)
	p.content = nil
	return nil
}

// writeGlyphs appends the outlines of a line of glyphs to the content
// stream.  The glyph coordinates are mapped to the page by a single
// transformation matrix.
func writeGlyphs(buf *bytes.Buffer, gg []placed, scale, x, y float64) {
	fmt.Fprintf(buf, "q\n%s 0 0 %s %s %s cm\n", num(scale), num(scale), num(x), num(y))
	for _, pg := range gg {
		for _, c := range pg.g.Contours {
			writeContour(buf, c, pg.x)
		}
	}
	buf.WriteString("f\nQ\n")
}

func writeContour(buf *bytes.Buffer, c typeface.Contour, dx float64) {
	ss := c.Segments()
	if len(ss) == 0 {
		return
	}
	pt := func(p typeface.Point) string {
		return num(p.X+dx) + " " + num(p.Y)
	}

	buf.WriteString(pt(ss[0].Start) + " m\n")
	for _, s := range ss {
		switch len(s.Ctrl) {
		case 0:
			buf.WriteString(pt(s.End) + " l\n")
		case 1:
			// raise the quadratic segment to a cubic one
			q := s.Ctrl[0]
			c1 := typeface.Point{
				X: s.Start.X + 2*(q.X-s.Start.X)/3,
				Y: s.Start.Y + 2*(q.Y-s.Start.Y)/3,
			}
			c2 := typeface.Point{
				X: s.End.X + 2*(q.X-s.End.X)/3,
				Y: s.End.Y + 2*(q.Y-s.End.Y)/3,
			}
			buf.WriteString(pt(c1) + " " + pt(c2) + " " + pt(s.End) + " c\n")
		default:
			buf.WriteString(pt(s.Ctrl[0]) + " " + pt(s.Ctrl[1]) + " " + pt(s.End) + " c\n")
		}
	}
	buf.WriteString("h\n")
}

func num(x float64) string {
	x = math.Round(x*1000) / 1000
	if x == 0 {
		x = 0 // avoid "-0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func formatSize(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
