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

// Package convert converts font files between the TrueType and OpenType
// formats.
//
// The actual work is done by a [Backend].  The package provides a native
// backend which uses the sfnt library in-process, other backends (for example
// an external font editor) can be plugged in by the caller.
package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
)

var (
	// ErrUnsupported is returned by a backend which cannot convert between
	// the given formats.
	ErrUnsupported = errors.New("conversion not supported")

	// ErrUnknownFormat indicates that the output format could not be
	// inferred from the file name.
	ErrUnknownFormat = errors.New("unknown font format")

	// ErrNoBackend is returned by [Converter.Convert] if none of the
	// configured backends supports the requested conversion.
	ErrNoBackend = errors.New("no conversion backend available")

	// ErrOutputExists is returned by [Converter.Convert] if the output file
	// exists and Overwrite is not set.
	ErrOutputExists = errors.New("output file already exists")
)

// Backend opens a font file and generates a font file in the format given by
// the output file name extension.
type Backend interface {
	// Name returns a short name for use in log messages.
	Name() string

	// Supports reports whether the backend can convert a font of format
	// from into a font of format to.
	Supports(from, to Format) bool

	// Convert reads the font at path in and writes the converted font to
	// path out.  If the input cannot be read, no output file is created.
	Convert(ctx context.Context, in, out string) error
}

// Converter chooses a backend for a conversion.
type Converter struct {
	// Backends lists the available backends, in order of preference.
	Backends []Backend

	// Overwrite allows existing output files to be replaced.
	Overwrite bool

	// Logger, if non-nil, receives diagnostic messages.
	Logger *slog.Logger
}

// Convert reads the font at path in and writes it to path out, in the format
// implied by the extension of out.  The first backend which supports the
// pair of formats is used.  Unless c.Overwrite is set, an existing output
// file is left untouched and [ErrOutputExists] is returned.
func (c *Converter) Convert(ctx context.Context, in, out string) error {
	from, err := SniffFile(in)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	if !c.Overwrite {
		if _, err := os.Lstat(out); err == nil {
			return fmt.Errorf("%s: %w", out, ErrOutputExists)
		}
	}
	to := FormatFromExt(out)

	logger := c.logger()
	for _, b := range c.Backends {
		if !b.Supports(from, to) {
			logger.Debug("backend skipped", "backend", b.Name(), "from", from, "to", to)
			continue
		}
		logger.Info("converting", "backend", b.Name(), "from", from, "to", to)
		err := b.Convert(ctx, in, out)
		if err != nil {
			return fmt.Errorf("%s: %w", b.Name(), err)
		}
		return nil
	}
	return fmt.Errorf("%s to %s: %w", from, to, ErrNoBackend)
}

func (c *Converter) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}
