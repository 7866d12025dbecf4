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

package testfont

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Segment is one drawing command of a glyph outline.
type Segment struct {
	Cmd path.Command
	Pts []vec.Vec2
}

// Segments collects the drawing commands of p, with quadratic segments
// raised to cubic ones.  Close commands are dropped, since glyf and CFF
// outlines mark the end of a contour differently.
func Segments(p path.Path) []Segment {
	var res []Segment
	for cmd, pts := range p.ToCubic() {
		if cmd == path.CmdClose {
			continue
		}
		res = append(res, Segment{Cmd: cmd, Pts: append([]vec.Vec2(nil), pts...)})
	}
	return res
}
