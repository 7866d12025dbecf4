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
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Format identifies a font file format.
type Format int

// These are the font formats known to this package.  Only TrueType and
// OpenType can be written by the native backend.
const (
	Unknown    Format = iota
	TrueType          // sfnt with "glyf" outlines
	OpenType          // sfnt with "CFF " outlines
	Collection        // TrueType/OpenType collection
	WOFF
	WOFF2
	Type1
	SVG
	UFO
)

func (f Format) String() string {
	switch f {
	case TrueType:
		return "TrueType"
	case OpenType:
		return "OpenType/CFF"
	case Collection:
		return "font collection"
	case WOFF:
		return "WOFF"
	case WOFF2:
		return "WOFF2"
	case Type1:
		return "Type 1"
	case SVG:
		return "SVG font"
	case UFO:
		return "UFO"
	default:
		return "unknown format"
	}
}

var extFormat = map[string]Format{
	".ttf":   TrueType,
	".otf":   OpenType,
	".ttc":   Collection,
	".otc":   Collection,
	".woff":  WOFF,
	".woff2": WOFF2,
	".pfa":   Type1,
	".pfb":   Type1,
	".svg":   SVG,
	".ufo":   UFO,
}

// FormatFromExt infers the format of a font file from its file name
// extension.  The comparison is case-insensitive.
func FormatFromExt(name string) Format {
	ext := strings.ToLower(filepath.Ext(name))
	return extFormat[ext]
}

// Sniff identifies a font format from the first four bytes of a file.
// Files shorter than four bytes are reported as Unknown.
func Sniff(r io.Reader) (Format, error) {
	var tag [4]byte
	_, err := io.ReadFull(r, tag[:])
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return Unknown, nil
	} else if err != nil {
		return Unknown, err
	}

	switch string(tag[:]) {
	case "\x00\x01\x00\x00", "true":
		return TrueType, nil
	case "OTTO":
		return OpenType, nil
	case "ttcf":
		return Collection, nil
	case "wOFF":
		return WOFF, nil
	case "wOF2":
		return WOFF2, nil
	}
	if tag[0] == 0x80 && tag[1] == 0x01 || string(tag[:2]) == "%!" {
		return Type1, nil
	}
	return Unknown, nil
}

// SniffFile opens the named file and identifies its format.
func SniffFile(name string) (Format, error) {
	fd, err := os.Open(name)
	if err != nil {
		return Unknown, err
	}
	defer fd.Close()
	return Sniff(fd)
}
