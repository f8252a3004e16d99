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

// Package table encodes the "gasp" table, which seehuhn.de/go/sfnt only
// carries as raw bytes.
package table

import (
	"errors"
	"slices"
)

// GaspRange applies the given behaviour flags to all sizes up to and
// including MaxPPEM.
type GaspRange struct {
	MaxPPEM uint16
	Flags   uint16
}

// EncodeGasp returns a version 1 "gasp" table.
// https://docs.microsoft.com/en-us/typography/opentype/spec/gasp
func EncodeGasp(ranges []GaspRange) ([]byte, error) {
	if len(ranges) == 0 {
		return nil, errors.New("sfnt/gasp: no ranges")
	}
	rr := slices.Clone(ranges)
	slices.SortStableFunc(rr, func(a, b GaspRange) int {
		return int(a.MaxPPEM) - int(b.MaxPPEM)
	})
	if rr[len(rr)-1].MaxPPEM != 0xFFFF {
		return nil, errors.New("sfnt/gasp: last range must end at 0xFFFF")
	}

	res := make([]byte, 4+4*len(rr))
	res[1] = 1 // version
	res[2] = byte(len(rr) >> 8)
	res[3] = byte(len(rr))
	for i, r := range rr {
		base := 4 + 4*i
		res[base] = byte(r.MaxPPEM >> 8)
		res[base+1] = byte(r.MaxPPEM)
		res[base+2] = byte(r.Flags >> 8)
		res[base+3] = byte(r.Flags)
	}
	return res, nil
}
