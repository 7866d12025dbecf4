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

// Package pathres turns command line path arguments into absolute paths.
//
// Arguments may be given either in Windows notation (with backslashes or a
// drive letter) or in POSIX notation.  An argument which contains a backslash
// or a colon is interpreted as a Windows path, everything else as a POSIX
// path.  This means that a POSIX file name which contains a literal colon is
// treated as a Windows path.  No characters of the argument are dropped in
// this case, see [Join].
package pathres

import (
	"os"
	"path"
	"path/filepath"
	"runtime"
	"strings"
)

// Style describes how a path argument is interpreted.
type Style int

// These are the supported path styles.
const (
	POSIX Style = iota
	Windows
)

func (s Style) String() string {
	switch s {
	case POSIX:
		return "posix"
	case Windows:
		return "windows"
	default:
		return "unknown"
	}
}

// Classify returns the style used to interpret raw.
func Classify(raw string) Style {
	if strings.ContainsAny(raw, `\:`) {
		return Windows
	}
	return POSIX
}

// Abs resolves raw relative to the current working directory.
// No check is made whether the resulting path exists.
func Abs(raw string) (string, error) {
	if runtime.GOOS == "windows" {
		// The host already uses Windows path semantics.
		return filepath.Abs(raw)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return Join(cwd, raw), nil
}

// Join resolves raw relative to the directory dir and returns an absolute
// path in POSIX notation.  The directory dir must be an absolute POSIX path.
//
// A Windows drive letter or UNC share has no meaning on a POSIX file system.
// It is kept verbatim as the first path element below dir, so that
// "C:\fonts\a.ttf" resolves to "<dir>/C:/fonts/a.ttf" and "a:b.ttf" to
// "<dir>/a:/b.ttf".  Rooted paths without a volume, like "\fonts\a.ttf",
// start at the root of the file system.  All other paths are resolved
// relative to dir.
func Join(dir, raw string) string {
	if Classify(raw) == POSIX {
		if path.IsAbs(raw) {
			return path.Clean(raw)
		}
		return path.Join(dir, raw)
	}

	wp := ParseWindows(raw)
	switch {
	case wp.Volume != "":
		return path.Join(append([]string{dir, wp.Volume}, wp.Elems...)...)
	case wp.Rooted:
		return "/" + strings.Join(wp.Elems, "/")
	default:
		return path.Join(append([]string{dir}, wp.Elems...)...)
	}
}

// WindowsPath is a parsed path in Windows notation.
type WindowsPath struct {
	// Volume is the drive letter with colon (e.g. "C:"), or the UNC prefix
	// (e.g. `\\server\share`), or empty.
	Volume string

	// Rooted is true if the path starts at the root of the volume.
	Rooted bool

	// Elems are the cleaned path elements.  Leading ".." elements are only
	// kept for unrooted paths.
	Elems []string
}

// ParseWindows splits raw according to Windows path rules.
// Both `\` and `/` are accepted as separators.
func ParseWindows(raw string) WindowsPath {
	var wp WindowsPath

	rest := raw
	switch {
	case len(rest) >= 2 && isSep(rest[0]) && isSep(rest[1]):
		// UNC path: \\server\share\...
		parts := splitWindows(rest[2:])
		n := min(len(parts), 2)
		wp.Volume = `\\` + strings.Join(parts[:n], `\`)
		wp.Rooted = true
		rest = strings.Join(parts[n:], `\`)
	case len(rest) >= 2 && rest[1] == ':' && isLetter(rest[0]):
		wp.Volume = rest[:2]
		rest = rest[2:]
		wp.Rooted = len(rest) > 0 && isSep(rest[0])
	default:
		wp.Rooted = len(rest) > 0 && isSep(rest[0])
	}

	for _, elem := range splitWindows(rest) {
		switch elem {
		case ".":
			// skip
		case "..":
			n := len(wp.Elems)
			switch {
			case n > 0 && wp.Elems[n-1] != "..":
				wp.Elems = wp.Elems[:n-1]
			case !wp.Rooted:
				wp.Elems = append(wp.Elems, elem)
			}
		default:
			wp.Elems = append(wp.Elems, elem)
		}
	}
	return wp
}

// String returns the path in Windows notation.
func (wp WindowsPath) String() string {
	var b strings.Builder
	b.WriteString(wp.Volume)
	if wp.Rooted {
		b.WriteByte('\\')
	}
	b.WriteString(strings.Join(wp.Elems, `\`))
	if b.Len() == 0 {
		return "."
	}
	return b.String()
}

func splitWindows(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == '\\' || r == '/'
	})
}

func isSep(c byte) bool {
	return c == '\\' || c == '/'
}

func isLetter(c byte) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}
