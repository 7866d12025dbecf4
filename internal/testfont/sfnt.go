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

// Package testfont provides fonts for use in unit tests.
package testfont

import (
	"bytes"
	"path/filepath"

	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/fontconv/convert"
)

// MakeGlyfFont returns a font with glyf outlines.
func MakeGlyfFont() *sfnt.Font {
	r := bytes.NewReader(goregular.TTF)
	info, err := sfnt.Read(r)
	if err != nil {
		panic(err)
	}
	return info
}

// MakeCFFFont returns a font with CFF outlines.
func MakeCFFFont() *sfnt.Font {
	info := MakeGlyfFont()
	info, err := convert.ToCFF(info)
	if err != nil {
		panic(err)
	}
	return info
}

// WriteTTF stores a TrueType font under the given name in dir and
// returns the full path.
func WriteTTF(dir, name string) (string, error) {
	return write(dir, name, MakeGlyfFont())
}

// WriteOTF stores an OpenType font with CFF outlines under the given name
// in dir and returns the full path.
func WriteOTF(dir, name string) (string, error) {
	return write(dir, name, MakeCFFFont())
}

func write(dir, name string, info *sfnt.Font) (string, error) {
	fname := filepath.Join(dir, name)
	err := convert.WriteFont(fname, info)
	if err != nil {
		return "", err
	}
	return fname, nil
}
