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
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-multierror"

	"seehuhn.de/go/sfnt"
)

// Native converts fonts in-process, using the sfnt library.
//
// TrueType fonts can be written as TrueType or OpenType/CFF fonts, OpenType
// fonts can only be rewritten as OpenType fonts.  Converting cubic outlines
// to quadratic ones is not implemented.
type Native struct {
	Logger *slog.Logger
}

// Name implements the [Backend] interface.
func (n *Native) Name() string {
	return "native"
}

// Supports implements the [Backend] interface.
func (n *Native) Supports(from, to Format) bool {
	switch from {
	case TrueType:
		return to == TrueType || to == OpenType
	case OpenType:
		return to == OpenType
	default:
		return false
	}
}

// Convert implements the [Backend] interface.
func (n *Native) Convert(ctx context.Context, in, out string) error {
	info, err := ReadFont(in)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}

	to := FormatFromExt(out)
	switch to {
	case OpenType:
		if info.IsGlyf() {
			info, err = ToCFF(info)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}
		}
	case TrueType:
		if info.IsCFF() {
			return fmt.Errorf("generate: CFF outlines to %s: %w", to, ErrUnsupported)
		}
	case Unknown:
		return fmt.Errorf("generate: %q: %w", filepath.Ext(out), ErrUnknownFormat)
	default:
		return fmt.Errorf("generate: %s: %w", to, ErrUnsupported)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if n.Logger != nil {
		n.Logger.Debug("writing font",
			"family", info.FamilyName,
			"glyphs", info.NumGlyphs(),
			"cff", info.IsCFF())
	}
	err = WriteFont(out, info)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	return nil
}

// ReadFont reads a TrueType or OpenType font file.
func ReadFont(name string) (*sfnt.Font, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	info, err := sfnt.Read(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return info, nil
}

// WriteFont writes info to the named file.  The data is first written to a
// temporary file in the same directory, which is then renamed.  On failure,
// no file is left behind.
func WriteFont(name string, info *sfnt.Font) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(name), ".fontconv-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rmErr := os.Remove(tmp.Name()); rmErr != nil {
				err = multierror.Append(err, rmErr)
			}
		}
	}()

	_, err = info.Write(tmp)
	closeErr := tmp.Close()
	if err != nil {
		return err
	}
	if closeErr != nil {
		return closeErr
	}

	// CreateTemp uses mode 0600, use the same mode as os.Create would.
	err = os.Chmod(tmp.Name(), 0o644)
	if err != nil {
		return err
	}
	return os.Rename(tmp.Name(), name)
}
