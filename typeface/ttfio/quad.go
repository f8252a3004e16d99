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
	"math"

	"github.com/mjunya/robotomonojp/typeface"
)

// quadTolerance is the maximal distance, in font design units, between a
// cubic segment and its quadratic approximation.
const quadTolerance = 0.5

// maxQuadPieces limits the number of quadratic segments used for a single
// cubic segment.
const maxQuadPieces = 16

type pt struct{ x, y float64 }

func toPt(p typeface.Point) pt { return pt{p.X, p.Y} }

func (p pt) add(q pt) pt { return pt{p.x + q.x, p.y + q.y} }
func (p pt) sub(q pt) pt { return pt{p.x - q.x, p.y - q.y} }
func (p pt) mul(s float64) pt { return pt{p.x * s, p.y * s} }
func (p pt) lerp(q pt, t float64) pt { return p.add(q.sub(p).mul(t)) }

// cubicToQuads approximates the cubic Bézier curve p0, c1, c2, p3 by a
// quadratic spline.  The returned points alternate between off-curve
// control points and on-curve points: q1, m1, q2, m2, ..., qn.  The end
// points p0 and p3 are not included.
//
// The curve is divided into n pieces of equal parameter length, where n is
// chosen from the size of the third derivative so that the error of the
// mid-point approximation stays below tol.
func cubicToQuads(p0, c1, c2, p3 pt, tol float64) []pt {
	d := p3.sub(c2.mul(3)).add(c1.mul(3)).sub(p0)
	errEst := math.Sqrt(3) / 36 * math.Hypot(d.x, d.y)
	n := int(math.Ceil(math.Cbrt(errEst / tol)))
	n = max(1, min(n, maxQuadPieces))

	var res []pt
	rest := [4]pt{p0, c1, c2, p3}
	for i := range n {
		piece := rest
		if i < n-1 {
			piece, rest = splitCubic(rest, 1/float64(n-i))
		}
		// q = (3(a1+a2) - (a0+a3)) / 4
		q := piece[1].add(piece[2]).mul(3).sub(piece[0].add(piece[3])).mul(0.25)
		res = append(res, q)
		if i < n-1 {
			res = append(res, piece[3])
		}
	}
	return res
}

// splitCubic divides a cubic Bézier curve at parameter t.
func splitCubic(a [4]pt, t float64) (left, right [4]pt) {
	p01 := a[0].lerp(a[1], t)
	p12 := a[1].lerp(a[2], t)
	p23 := a[2].lerp(a[3], t)
	p012 := p01.lerp(p12, t)
	p123 := p12.lerp(p23, t)
	m := p012.lerp(p123, t)
	return [4]pt{a[0], p01, p012, m}, [4]pt{m, p123, p23, a[3]}
}

// quadToCubic returns the control points of the cubic Bézier curve which
// exactly represents the quadratic curve p0, q, p3.
func quadToCubic(p0, q, p3 pt) (c1, c2 pt) {
	c1 = p0.lerp(q, 2.0/3)
	c2 = p3.lerp(q, 2.0/3)
	return c1, c2
}
