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

// Package logging sets up the structured logger used by the command line
// tools.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// Supported log formats.
const (
	TextFormat   = "text"
	LogfmtFormat = "logfmt"
	JSONFormat   = "json"
)

// EnvLevel names the environment variable which provides the default log
// level.
const EnvLevel = "FONTCONV_LOG_LEVEL"

var errUnknownFormat = errors.New("unknown log format")

// New returns a logger which writes to w.  The level is one of "debug",
// "info", "warn", "error".  The format is one of "text", "logfmt", "json";
// an empty format selects [DefaultFormat] for w.
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := log.ParseLevel(strings.ToLower(level))
	if err != nil {
		return nil, err
	}

	if format == "" {
		format = DefaultFormat(w)
	}
	var formatter log.Formatter
	switch strings.ToLower(format) {
	case TextFormat:
		formatter = log.TextFormatter
	case LogfmtFormat:
		formatter = log.LogfmtFormatter
	case JSONFormat:
		formatter = log.JSONFormatter
	default:
		return nil, fmt.Errorf("%w %q", errUnknownFormat, format)
	}

	h := log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Formatter:       formatter,
		ReportTimestamp: formatter != log.TextFormatter,
	})
	return slog.New(h), nil
}

// DefaultFormat returns "text" if w is a terminal and "logfmt" otherwise.
func DefaultFormat(w io.Writer) string {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return TextFormat
	}
	return LogfmtFormat
}

// DefaultLevel returns the log level from $FONTCONV_LOG_LEVEL, or "warn".
func DefaultLevel() string {
	if lvl := os.Getenv(EnvLevel); lvl != "" {
		return lvl
	}
	return "warn"
}
