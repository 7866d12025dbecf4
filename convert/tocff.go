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

package convert

import (
	"errors"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/psenc"
	"seehuhn.de/go/postscript/type1"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
)

var errNotGlyf = errors.New("font does not have glyf outlines")

// ToCFF returns a copy of info where the "glyf" outlines have been replaced
// by equivalent "CFF" outlines.  Quadratic Bézier segments are raised to
// cubic segments, which is exact.  Hinting instructions are discarded.
//
// The original font is not modified, except that glyph names are assigned
// if the font had none.
func ToCFF(info *sfnt.Font) (*sfnt.Font, error) {
	if info.IsCFF() {
		return info, nil
	}
	origOutlines, ok := info.Outlines.(*glyf.Outlines)
	if !ok {
		return nil, errNotGlyf
	}

	res := clone(info)
	res.EnsureGlyphNames()

	newOutlines := &cff.Outlines{
		Private: []*type1.PrivateDict{
			{
				BlueValues: blueValues(res),
				BlueScale:  0.039625,
				BlueShift:  7,
				BlueFuzz:   1,
			},
		},
		Encoding: standardEncoding(res),
		FDSelect: func(glyph.ID) int { return 0 },
	}

	for i, origGlyph := range origOutlines.Glyphs {
		gid := glyph.ID(i)
		newGlyph := cff.NewGlyph(res.GlyphName(gid), res.GlyphWidth(gid))
		if origGlyph != nil {
			appendCubic(newGlyph, origOutlines.Path(gid))
		}
		newOutlines.Glyphs = append(newOutlines.Glyphs, newGlyph)
	}
	res.Outlines = newOutlines

	return res, nil
}

// appendCubic adds the segments of a glyph path to a CFF glyph.
func appendCubic(g *cff.Glyph, p path.Path) {
	for cmd, pts := range p.ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			g.MoveTo(pts[0].X, pts[0].Y)
		case path.CmdLineTo:
			g.LineTo(pts[0].X, pts[0].Y)
		case path.CmdCubeTo:
			g.CurveTo(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, pts[2].X, pts[2].Y)
		case path.CmdClose:
			// CFF glyphs are closed implicitly
		}
	}
}

// blueValues estimates the baseline and cap-height alignment zones from the
// outlines of the capital letters A-Z.  Q is excluded from the baseline zone
// because of its descending tail.  If the font has no usable character map,
// nil is returned.
func blueValues(info *sfnt.Font) []funit.Int16 {
	cmap, err := info.CMapTable.GetBest()
	if err != nil {
		return nil
	}

	var topMin, topMax funit.Int16
	var bottomMin, bottomMax funit.Int16
	haveTop, haveBottom := false, false
	for c := 'A'; c <= 'Z'; c++ {
		gid := cmap.Lookup(c)
		if gid == 0 {
			continue
		}

		ext := info.GlyphBBox(gid)
		top := ext.URy
		if !haveTop || top < topMin {
			topMin = top
		}
		if !haveTop || top > topMax {
			topMax = top
		}
		haveTop = true

		if c == 'Q' {
			continue
		}
		bottom := ext.LLy
		if !haveBottom || bottom < bottomMin {
			bottomMin = bottom
		}
		if !haveBottom || bottom > bottomMax {
			bottomMax = bottom
		}
		haveBottom = true
	}
	if !haveTop || !haveBottom {
		return nil
	}

	return []funit.Int16{bottomMin, bottomMax, topMin, topMax}
}

// standardEncoding maps the codes of the Adobe standard encoding to glyphs,
// by glyph name.  Unmapped codes map to glyph 0.
func standardEncoding(info *sfnt.Font) []glyph.ID {
	rev := make(map[string]glyph.ID)
	for i := info.NumGlyphs() - 1; i > 0; i-- {
		gid := glyph.ID(i)
		rev[info.GlyphName(gid)] = gid
	}

	encoding := make([]glyph.ID, 256)
	for code, name := range psenc.StandardEncoding {
		encoding[code] = rev[name]
	}
	return encoding
}

func clone[T any](x *T) *T {
	y := *x
	return &y
}
