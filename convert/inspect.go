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
	"fmt"
	"io"

	"github.com/hashicorp/go-multierror"

	"seehuhn.de/go/sfnt"
)

// Summary contains basic information about a font file.
type Summary struct {
	Path           string
	Outlines       Format
	FamilyName     string
	PostScriptName string
	NumGlyphs      int
	UnitsPerEm     int
}

// Describe reads the named font file and summarizes its contents.
func Describe(name string) (*Summary, error) {
	info, err := ReadFont(name)
	if err != nil {
		return nil, err
	}
	return summarize(name, info), nil
}

func summarize(name string, info *sfnt.Font) *Summary {
	return &Summary{
		Path:           name,
		Outlines:       outlineFormat(info),
		FamilyName:     info.FamilyName,
		PostScriptName: info.PostScriptName(),
		NumGlyphs:      int(info.NumGlyphs()),
		UnitsPerEm:     int(info.UnitsPerEm),
	}
}

// WriteTo prints the summary in a human readable form.
func (s *Summary) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w,
		"%s:\n  Family Name: %s\n  PostScript Name: %s\n  Outlines: %s\n  Number of Glyphs: %d\n  Units Per Em: %d\n",
		s.Path, s.FamilyName, s.PostScriptName, s.Outlines, s.NumGlyphs, s.UnitsPerEm)
	return int64(n), err
}

// outlineFormat returns TrueType for fonts with glyf outlines and OpenType
// for fonts with CFF outlines.
func outlineFormat(info *sfnt.Font) Format {
	switch {
	case info.IsCFF():
		return OpenType
	case info.IsGlyf():
		return TrueType
	default:
		return Unknown
	}
}

// Verify checks a converted font against the font it was generated from.
// The output must be readable, must use the outline format want, and must
// have the same number of glyphs and the same design units as the input.
// All problems found are reported together.
func Verify(in, out string, want Format) error {
	src, err := ReadFont(in)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}
	dst, err := ReadFont(out)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	var res *multierror.Error
	if got := outlineFormat(dst); (want == TrueType || want == OpenType) && got != want {
		res = multierror.Append(res,
			fmt.Errorf("%s: has %s outlines, want %s", out, got, want))
	}
	if a, b := src.NumGlyphs(), dst.NumGlyphs(); a != b {
		res = multierror.Append(res,
			fmt.Errorf("%s: has %d glyphs, input has %d", out, b, a))
	}
	if a, b := src.UnitsPerEm, dst.UnitsPerEm; a != b {
		res = multierror.Append(res,
			fmt.Errorf("%s: has %d units per em, input has %d", out, b, a))
	}
	return res.ErrorOrNil()
}
