// seehuhn.de/go/fontconv - convert fonts between TrueType and OpenType
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
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

// Package proof renders sample text with a font, so that the result of a
// conversion can be inspected visually.
package proof

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"os"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"
)

// DefaultText is used when no sample text is given.
const DefaultText = "The quick brown fox jumps over the lazy dog 0123456789"

var (
	errEmptyText = errors.New("proof: no text to render")
	errNoOutline = errors.New("proof: font has no outlines")
	errBadSize   = errors.New("proof: font size must be positive")
	errBadUnits  = errors.New("proof: invalid units per em")
)

// Render draws text on a single line, in black on a white background.  The
// font size is given in pixels per em.  Characters not covered by the font's
// character map are drawn using glyph 0.
func Render(info *sfnt.Font, text string, size float64) (*image.RGBA, error) {
	if text == "" {
		return nil, errEmptyText
	}
	if !(size > 0) || math.IsInf(size, 0) {
		return nil, errBadSize
	}
	if info.UnitsPerEm == 0 {
		return nil, errBadUnits
	}
	if info.Outlines == nil {
		return nil, errNoOutline
	}
	cmap, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("proof: %w", err)
	}

	scale := size / float64(info.UnitsPerEm)
	margin := math.Ceil(size / 4)

	var gids []glyph.ID
	advance := 0.0
	for _, r := range text {
		gid := cmap.Lookup(r)
		gids = append(gids, gid)
		advance += float64(info.GlyphWidth(gid)) * scale
	}

	ascent := float64(info.Ascent) * scale
	descent := float64(info.Descent) * scale // negative
	width := int(math.Ceil(advance + 2*margin))
	height := int(math.Ceil(ascent - descent + 2*margin))
	baseline := margin + ascent

	raster := vector.NewRasterizer(width, height)
	penX := margin
	for _, gid := range gids {
		addGlyph(raster, info.Outlines.Path(gid), penX, baseline, scale)
		penX += float64(info.GlyphWidth(gid)) * scale
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	raster.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{})
	return img, nil
}

// addGlyph adds one glyph outline to the rasterizer.  Font units are
// converted to pixels, with the y-axis flipped.
func addGlyph(raster *vector.Rasterizer, p path.Path, x, y, scale float64) {
	tr := func(v vec.Vec2) (float32, float32) {
		return float32(x + v.X*scale), float32(y - v.Y*scale)
	}

	open := false
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			if open {
				raster.ClosePath()
			}
			raster.MoveTo(tr(pts[0]))
			open = true
		case path.CmdLineTo:
			raster.LineTo(tr(pts[0]))
		case path.CmdQuadTo:
			x1, y1 := tr(pts[0])
			x2, y2 := tr(pts[1])
			raster.QuadTo(x1, y1, x2, y2)
		case path.CmdCubeTo:
			x1, y1 := tr(pts[0])
			x2, y2 := tr(pts[1])
			x3, y3 := tr(pts[2])
			raster.CubeTo(x1, y1, x2, y2, x3, y3)
		case path.CmdClose:
			raster.ClosePath()
			open = false
		}
	}
	if open {
		raster.ClosePath()
	}
}

// WritePNG stores img in the named file.
func WritePNG(name string, img image.Image) error {
	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	err = png.Encode(fd, img)
	closeErr := fd.Close()
	if err != nil {
		return err
	}
	return closeErr
}
