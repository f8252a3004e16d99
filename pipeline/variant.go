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
	"fmt"
	"os"
	"path/filepath"

	"github.com/mjunya/robotomonojp/iconpatch"
	"github.com/mjunya/robotomonojp/style"
	"github.com/mjunya/robotomonojp/typeface"
	"github.com/mjunya/robotomonojp/typeface/ttfio"
	"github.com/mjunya/robotomonojp/unirange"
)

// Options describes one build.
type Options struct {
	Style string

	// Latin and CJK are the source fonts.  They are modified by the
	// build and must not be used afterwards.
	Latin *typeface.Font
	CJK   *typeface.Font

	// Patcher, if not nil, is applied to the finished font.
	Patcher iconpatch.Patcher

	// ScratchDir, if not empty, receives snapshots of the prepared
	// source fonts.  The directory is created if needed.
	ScratchDir string

	Reporter Reporter
}

// A Variant is one member of the font family, together with the recipe
// for preparing the source fonts.
type Variant struct {
	Family *style.Family

	HalfWidth float64
	FullWidth float64

	prepareLatin func(v *Variant, f *typeface.Font, rep Reporter) error
	prepareCJK   func(v *Variant, f *typeface.Font, rep Reporter) error
	finish       FinishOptions
}

// Standard builds RobotoMonoJP, where full-width glyphs are 550 units
// wider than two Latin cells.
var Standard = &Variant{
	Family:     style.RobotoMonoJP,
	HalfWidth:  style.Em / 2,
	FullWidth:  style.Em + 550,
	prepareCJK: prepareCJKStandard,
}

// Mono builds RobotoMonoJP-Mono, where every glyph occupies exactly one
// or two Latin cells.
var Mono = &Variant{
	Family:       style.RobotoMonoJPMono,
	HalfWidth:    style.Em / 2,
	FullWidth:    style.Em,
	prepareLatin: prepareLatinMono,
	prepareCJK:   prepareCJKMono,
	finish:       FinishOptions{AddExtrema: true},
}

// OutputPath returns the conventional location of the font file for the
// given style, relative to dir.
func (v *Variant) OutputPath(dir, styleName string, format ttfio.Format) string {
	name := v.Family.FontName(styleName) + format.Ext()
	return filepath.Join(dir, name)
}

// Build runs the complete pipeline and returns the finished font.
func (v *Variant) Build(opt *Options) (*typeface.Font, error) {
	rep := opt.Reporter

	f, err := NewFont(opt.Style, v.Family)
	if err != nil {
		return nil, err
	}

	if opt.Latin != nil {
		rep.info("preparing Latin font %q", opt.Latin.FamilyName)
		if v.prepareLatin != nil {
			err = v.prepareLatin(v, opt.Latin, rep)
			if err != nil {
				return nil, fmt.Errorf("prepare Latin font: %w", err)
			}
			err = snapshot(opt.ScratchDir, "en_tmp.ttf", opt.Latin)
			if err != nil {
				return nil, err
			}
		}
		err = Merge(f, opt.Latin, rep)
		if err != nil {
			return nil, err
		}
	}

	if opt.CJK != nil {
		rep.info("preparing Japanese font %q", opt.CJK.FamilyName)
		err = v.prepareCJK(v, opt.CJK, rep)
		if err != nil {
			return nil, fmt.Errorf("prepare Japanese font: %w", err)
		}
		err = snapshot(opt.ScratchDir, "jp_tmp.ttf", opt.CJK)
		if err != nil {
			return nil, err
		}
		err = Merge(f, opt.CJK, rep)
		if err != nil {
			return nil, err
		}
	}

	rep.info("finishing %s", f.FontName)
	err = Finish(f, opt.Style, v.finish)
	if err != nil {
		return nil, err
	}

	if opt.Patcher != nil {
		rep.info("patching icons")
		err = opt.Patcher.Patch(f)
		if err != nil {
			return nil, fmt.Errorf("icon patch: %w", err)
		}
	}

	f.SortGlyphs()
	return f, nil
}

func snapshot(dir, name string, f *typeface.Font) error {
	if dir == "" {
		return nil
	}
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return err
	}
	return ttfio.WriteFile(filepath.Join(dir, name), f, ttfio.FormatTrueType)
}

func (v *Variant) normalizeOptions() *NormalizeOptions {
	return &NormalizeOptions{
		Ascent:    v.Family.Ascent,
		Descent:   v.Family.Descent,
		Em:        v.Family.Em,
		HalfWidth: v.HalfWidth,
		FullWidth: v.FullWidth,
	}
}

// Glyphs of the Japanese source font which are never used.
var (
	verticalLookups = []string{"vert", "vrt2", "liga"}
	spacingLookups  = []string{"halt", "vhal", "kern", "vkrn", "palt", "vpal"}
	asciiSets       = []*unirange.Set{
		unirange.ASCIISymbols,
		unirange.ASCIINumbers,
		unirange.ASCIISymbols2,
		unirange.Alphabet,
	}
)

// StandardCJKPrune lists what the standard variant removes from the
// Japanese source font.
var StandardCJKPrune = &PruneSpec{
	GSUBFeatures:      verticalLookups,
	Sets:              append([]*unirange.Set{unirange.Ligatures, unirange.OtherGlyphs}, asciiSets...),
	UnencodedSuffixes: []string{".rotat"},
}

// MonoCJKPrune lists what the mono variant removes from the Japanese
// source font.  The symbols resized by monoHalfWidthNames are kept.
var MonoCJKPrune = &PruneSpec{
	GPOSFeatures:      spacingLookups,
	GSUBFeatures:      verticalLookups,
	Sets:              append([]*unirange.Set{unirange.Ligatures, unirange.CJKSymbols, unirange.MonoOtherGlyphs}, asciiSets...),
	UnencodedSuffixes: []string{".rotat"},
}

// cjkScaleBias enlarges the Japanese glyphs relative to the Latin ones.
const cjkScaleBias = 0.10

func prepareCJKStandard(v *Variant, f *typeface.Font, rep Reporter) error {
	opt := v.normalizeOptions()
	opt.ScaleBias = cjkScaleBias
	err := Normalize(f, opt)
	if err != nil {
		return err
	}
	return prune(f, StandardCJKPrune, rep)
}

func prepareLatinMono(v *Variant, f *typeface.Font, _ Reporter) error {
	fam := v.Family
	err := SetEm(f, fam.Ascent, fam.Descent, fam.Em)
	if err != nil {
		return err
	}
	ResizeAllGlyphWidth(f, v.HalfWidth)
	FixAllGlyphPoints(f, true, false)
	return nil
}

// Glyphs of the Japanese source font whose widths do not fit the
// monospace grid.
var (
	monoHalfWidthNames = []string{
		"section", "dagger.prop", "daggerdbl.prop", "paragraph", "degree",
		"plusminus", "multiply", "divide", "zero.zero", "uni51F0",
		"a.alt01", "g.alt01", "g.alt02", "zero.alt01",
	}
	monoFullWidthNames = []string{"perthousand.full", "uni51F0"}
)

// monoCJKScale shrinks the Japanese glyphs inside their cells.
const monoCJKScale = 0.9

func prepareCJKMono(v *Variant, f *typeface.Font, rep Reporter) error {
	err := prune(f, MonoCJKPrune, rep)
	if err != nil {
		return err
	}

	fam := v.Family
	err = SetEm(f, fam.Ascent, fam.Descent, fam.Em)
	if err != nil {
		return err
	}
	CoerceWidths(f, v.normalizeOptions())

	unirange.HalfWidthLetterlike.Visit(func(r rune) {
		g, err := f.Glyph(r)
		if err != nil {
			rep.warn("%v", err)
			return
		}
		ResizeGlyphWidth(g, v.HalfWidth)
	})
	resizeNamed := func(names []string, width float64) {
		for _, name := range names {
			g, err := f.GlyphByName(name)
			if err != nil {
				rep.warn("%v", err)
				continue
			}
			ResizeGlyphWidth(g, width)
		}
	}
	resizeNamed(monoHalfWidthNames, v.HalfWidth)
	resizeNamed(monoFullWidthNames, v.FullWidth)

	ResizeAllScale(f, monoCJKScale, 0, 0)
	FixAllGlyphPoints(f, true, false)
	return f.Flatten()
}

func prune(f *typeface.Font, spec *PruneSpec, rep Reporter) error {
	res, err := Prune(f, spec)
	if err != nil {
		return err
	}
	rep.info("removed %d lookups and %d glyphs", len(res.Lookups), res.Glyphs)
	return nil
}
