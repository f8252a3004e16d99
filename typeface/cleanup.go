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
	"math"
	"slices"
)

// RemoveOverlap cleans up the outlines of the selected glyphs.
//
// Contours which enclose no area and contours which exactly repeat an
// earlier contour of the same glyph are dropped.  Partially overlapping
// contours are left alone; the nonzero fill rule renders them correctly.
// The number of removed contours is returned.
func (f *Font) RemoveOverlap(sel Selector) int {
	n := 0
	for _, g := range f.Select(sel) {
		n += g.removeOverlap()
	}
	return n
}

func (g *Glyph) removeOverlap() int {
	var keep []Contour
	for _, c := range g.Contours {
		if len(c) < 3 || math.Abs(c.signedArea()) < 1e-6 {
			continue
		}
		if slices.ContainsFunc(keep, func(k Contour) bool { return slices.Equal(k, c) }) {
			continue
		}
		keep = append(keep, c)
	}
	removed := len(g.Contours) - len(keep)
	if removed > 0 {
		g.Contours = keep
	}
	return removed
}

// signedArea returns the area of the control polygon.
// The sign indicates the orientation of the contour.
func (c Contour) signedArea() float64 {
	var a float64
	for i, p := range c {
		q := c[(i+1)%len(c)]
		a += p.X*q.Y - q.X*p.Y
	}
	return a / 2
}

// AddExtrema inserts on-curve points at the horizontal and vertical
// extrema of all curve segments of the selected glyphs.  The shape of the
// outlines is unchanged.
func (f *Font) AddExtrema(sel Selector) {
	for _, g := range f.Select(sel) {
		for i, c := range g.Contours {
			g.Contours[i] = c.addExtrema()
		}
	}
}

// Segment is one piece of a contour, from an on-curve point to the next.
// A segment without control points is a straight line, one with one
// control point is quadratic, one with two control points is cubic.
type Segment struct {
	Start, End Point
	Ctrl       []Point
}

// Segments splits a contour into segments.  Implied on-curve points
// between consecutive quadratic control points are made explicit.
// The End of the last segment is the Start of the first one.
func (c Contour) Segments() []Segment {
	if len(c) == 0 {
		return nil
	}

	// make implied points explicit
	var pts []Point
	for i, p := range c {
		pts = append(pts, p)
		q := c[(i+1)%len(c)]
		if p.Kind == QuadControl && q.Kind == QuadControl {
			pts = append(pts, Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2})
		}
	}

	first := slices.IndexFunc(pts, func(p Point) bool { return p.Kind == OnCurve })
	if first < 0 {
		return nil
	}
	pts = slices.Concat(pts[first:], pts[:first])

	var res []Segment
	cur := Segment{Start: pts[0]}
	for _, p := range pts[1:] {
		if p.Kind != OnCurve {
			cur.Ctrl = append(cur.Ctrl, p)
			continue
		}
		cur.End = p
		res = append(res, cur)
		cur = Segment{Start: p}
	}
	cur.End = pts[0]
	res = append(res, cur)
	return res
}

func contourFromSegments(ss []Segment) Contour {
	var res Contour
	for i, s := range ss {
		if i == 0 {
			res = append(res, s.Start)
		}
		res = append(res, s.Ctrl...)
		if i < len(ss)-1 {
			res = append(res, s.End)
		}
	}
	return res
}

func (c Contour) addExtrema() Contour {
	ss := c.Segments()
	if ss == nil {
		return c
	}
	var out []Segment
	changed := false
	for _, s := range ss {
		ts := s.extrema()
		if len(ts) == 0 {
			out = append(out, s)
			continue
		}
		changed = true
		prev := 0.0
		rest := s
		for _, t := range ts {
			a, b := rest.split((t - prev) / (1 - prev))
			out = append(out, a)
			rest = b
			prev = t
		}
		out = append(out, rest)
	}
	if !changed {
		return c
	}
	return contourFromSegments(out)
}

// extrema returns the sorted curve parameters in (0, 1) where the segment
// has a horizontal or vertical tangent.  Parameters too close to the
// segment ends are omitted.
func (s Segment) extrema() []float64 {
	const eps = 1e-3
	var ts []float64
	add := func(t float64) {
		if t > eps && t < 1-eps && !slices.ContainsFunc(ts, func(u float64) bool { return math.Abs(u-t) < eps }) {
			ts = append(ts, t)
		}
	}

	switch len(s.Ctrl) {
	case 1:
		c := s.Ctrl[0]
		for _, v := range [][3]float64{{s.Start.X, c.X, s.End.X}, {s.Start.Y, c.Y, s.End.Y}} {
			d := v[0] - 2*v[1] + v[2]
			if d != 0 {
				add((v[0] - v[1]) / d)
			}
		}
	case 2:
		c1, c2 := s.Ctrl[0], s.Ctrl[1]
		for _, v := range [][4]float64{
			{s.Start.X, c1.X, c2.X, s.End.X},
			{s.Start.Y, c1.Y, c2.Y, s.End.Y},
		} {
			// derivative is 3(a t^2 + b t + c)
			a := -v[0] + 3*v[1] - 3*v[2] + v[3]
			b := 2 * (v[0] - 2*v[1] + v[2])
			cc := v[1] - v[0]
			for _, t := range solveQuadratic(a, b, cc) {
				add(t)
			}
		}
	}
	slices.Sort(ts)
	return ts
}

func solveQuadratic(a, b, c float64) []float64 {
	if math.Abs(a) < 1e-12 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-b - sq) / (2 * a), (-b + sq) / (2 * a)}
}

// split divides the segment at parameter t using de Casteljau's algorithm.
func (s Segment) split(t float64) (Segment, Segment) {
	lerp := func(p, q Point) Point {
		return Point{X: p.X + t*(q.X-p.X), Y: p.Y + t*(q.Y-p.Y), Kind: p.Kind}
	}
	switch len(s.Ctrl) {
	case 1:
		q0 := lerp(s.Start, s.Ctrl[0])
		q1 := lerp(s.Ctrl[0], s.End)
		m := lerp(q0, q1)
		q0.Kind, q1.Kind, m.Kind = QuadControl, QuadControl, OnCurve
		return Segment{Start: s.Start, Ctrl: []Point{q0}, End: m},
			Segment{Start: m, Ctrl: []Point{q1}, End: s.End}
	case 2:
		p01 := lerp(s.Start, s.Ctrl[0])
		p12 := lerp(s.Ctrl[0], s.Ctrl[1])
		p23 := lerp(s.Ctrl[1], s.End)
		p012 := lerp(p01, p12)
		p123 := lerp(p12, p23)
		m := lerp(p012, p123)
		for _, p := range []*Point{&p01, &p012, &p123, &p23} {
			p.Kind = CubicControl
		}
		m.Kind = OnCurve
		return Segment{Start: s.Start, Ctrl: []Point{p01, p012}, End: m},
			Segment{Start: m, Ctrl: []Point{p123, p23}, End: s.End}
	default:
		m := lerp(s.Start, s.End)
		m.Kind = OnCurve
		return Segment{Start: s.Start, End: m}, Segment{Start: m, End: s.End}
	}
}
