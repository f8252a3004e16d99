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
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/mjunya/robotomonojp/typeface"
)

// Raster layout, in pixels.  One point is one pixel.
const (
	imageMargin = 16
	headerSize  = 12
	headerBand  = 2 * headerSize
)

// WritePNGFile writes a PNG preview of f to the named file.
func WritePNGFile(fname string, f *typeface.Font, opt *Options) error {
	out, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = WritePNG(out, f, opt)
	if err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// WritePNG writes a PNG preview of f to w.
func WritePNG(w io.Writer, f *typeface.Font, opt *Options) error {
	img, err := Render(f, opt)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Render draws the sample lines in black on a white background.
// Lines are not broken; the image is as wide as the longest line.
func Render(f *typeface.Font, opt *Options) (*image.Gray, error) {
	s := newSettings(f, opt)
	if f.Em <= 0 {
		return nil, fmt.Errorf("specimen: invalid em size %d", f.Em)
	}

	header, err := headerFace()
	if err != nil {
		return nil, err
	}
	defer header.Close()

	scale := s.size / float64(f.Em)
	var lines [][]placed
	width := float64(font.MeasureString(header, s.title).Ceil())
	for _, line := range s.lines {
		gg := layoutLine(f, line, 0)[0]
		lines = append(lines, gg)
		width = math.Max(width, lineWidth(gg)*scale)
	}
	step := lineHeight(f) * scale
	imgWidth := int(math.Ceil(width)) + 2*imageMargin
	imgHeight := int(math.Ceil(float64(len(lines))*step)) + headerBand + 2*imageMargin

	img := image.NewGray(image.Rect(0, 0, imgWidth, imgHeight))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.Black,
		Face: header,
		Dot:  fixed.P(imageMargin, imageMargin+headerSize),
	}
	d.DrawString(s.title)

	raster := vector.NewRasterizer(imgWidth, imgHeight)
	top := float64(imageMargin + headerBand)
	for i, gg := range lines {
		base := top + float64(i)*step + float64(f.Ascent)*scale
		for _, pg := range gg {
			for _, c := range pg.g.Contours {
				addContour(raster, c, func(p typeface.Point) (float32, float32) {
					x := imageMargin + (pg.x+p.X)*scale
					y := base - p.Y*scale
					return float32(x), float32(y)
				})
			}
		}
	}
	raster.Draw(img, img.Bounds(), image.Black, image.Point{})

	return img, nil
}

func addContour(r *vector.Rasterizer, c typeface.Contour, tr func(typeface.Point) (float32, float32)) {
	ss := c.Segments()
	if len(ss) == 0 {
		return
	}
	r.MoveTo(tr(ss[0].Start))
	for _, s := range ss {
		x, y := tr(s.End)
		switch len(s.Ctrl) {
		case 0:
			r.LineTo(x, y)
		case 1:
			x1, y1 := tr(s.Ctrl[0])
			r.QuadTo(x1, y1, x, y)
		default:
			x1, y1 := tr(s.Ctrl[0])
			x2, y2 := tr(s.Ctrl[1])
			r.CubeTo(x1, y1, x2, y2, x, y)
		}
	}
	r.ClosePath()
}

func headerFace() (font.Face, error) {
	ttf, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, err
	}
	face, err := opentype.NewFace(ttf, &opentype.FaceOptions{
		Size:    headerSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("specimen: header font: %w", err)
	}
	return face, nil
}
