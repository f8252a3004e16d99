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

// Package pipeline implements the stages of the RobotoMonoJP font build.
//
// A build starts with an empty font from [NewFont].  The Latin and the
// Japanese source fonts are brought to the target metrics with
// [Normalize] or [SetEm], stripped of unwanted glyphs and layout lookups
// with [Prune], and combined into the new font with [Merge].  [Finish]
// cleans up the outlines and slants italic styles.  The two font variants
// are driven end to end by [Standard] and [Mono].
//
// The package does not log.  Progress messages and recoverable problems
// are passed to a [Reporter] callback.
package pipeline

import (
	"fmt"
)

// Reporter receives progress messages and recoverable problems.
// The values passed are of type *InfoMsg or *WarningMsg.
type Reporter func(error)

func (rep Reporter) info(format string, a ...any) {
	if rep != nil {
		rep(NewInfoMsg(format, a...))
	}
}

func (rep Reporter) warn(format string, a ...any) {
	if rep != nil {
		rep(NewWarningMsg(format, a...))
	}
}

// InfoMsg reports the progress of a build.
type InfoMsg string

// NewInfoMsg formats a new progress message.
func NewInfoMsg(format string, a ...any) *InfoMsg {
	m := InfoMsg(fmt.Sprintf(format, a...))
	return &m
}

func (m InfoMsg) Error() string {
	return string(m)
}

// WarningMsg reports a problem which did not stop the build.
type WarningMsg string

// NewWarningMsg formats a new warning.
func NewWarningMsg(format string, a ...any) *WarningMsg {
	w := WarningMsg(fmt.Sprintf(format, a...))
	return &w
}

func (w WarningMsg) Error() string {
	return string(w)
}

var (
	_ error = (*InfoMsg)(nil)
	_ error = (*WarningMsg)(nil)
)
