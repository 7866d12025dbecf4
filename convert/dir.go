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
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// DirReport lists the outcome of [Converter.ConvertDir].
type DirReport struct {
	// Converted lists the output files which were written.
	Converted []string

	// Skipped lists the output files which already existed.
	Skipped []string

	// Errors is the number of fonts which could not be converted.
	Errors int
}

// SwapExt returns the output file name for converting the font name: a
// ".ttf" extension is replaced by ".otf" and vice versa.  The comparison
// ignores case.  The second return value is false if name has neither
// extension.
func SwapExt(name string) (string, bool) {
	ext := filepath.Ext(name)
	var newExt string
	switch strings.ToLower(ext) {
	case ".ttf":
		newExt = ".otf"
	case ".otf":
		newExt = ".ttf"
	default:
		return "", false
	}
	return strings.TrimSuffix(name, ext) + newExt, true
}

// ConvertDir converts every TrueType and OpenType font file in dir to the
// other format.  The output is written next to the input, with the extension
// swapped by [SwapExt].  Sub-directories are not visited.
//
// Fonts whose output file already exists are skipped, unless c.Overwrite is
// set.  Failed conversions do not stop the run; all failures are returned
// together in the error.
func (c *Converter) ConvertDir(ctx context.Context, dir string) (*DirReport, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	logger := c.logger()
	rep := &DirReport{}
	var errs *multierror.Error
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		outName, ok := SwapExt(e.Name())
		if !ok {
			continue
		}
		if err := ctx.Err(); err != nil {
			errs = multierror.Append(errs, err)
			break
		}

		in := filepath.Join(dir, e.Name())
		out := filepath.Join(dir, outName)
		err := c.Convert(ctx, in, out)
		switch {
		case errors.Is(err, ErrOutputExists):
			logger.Warn("output exists, skipping", "input", in, "output", out)
			rep.Skipped = append(rep.Skipped, out)
		case err != nil:
			rep.Errors++
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", e.Name(), err))
		default:
			rep.Converted = append(rep.Converted, out)
		}
	}
	return rep, errs.ErrorOrNil()
}
