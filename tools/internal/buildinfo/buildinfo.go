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

// Package buildinfo reports version information embedded by the Go
// toolchain.
package buildinfo

import (
	"runtime/debug"
	"strings"
)

// Info describes the build of a command line tool.
type Info struct {
	Tool     string
	Module   string
	Version  string // module version, empty for development builds
	Revision string // abbreviated VCS revision, if known
	Dirty    bool   // the working tree had local modifications
	Go       string
}

// Read collects the build information for the named tool.
func Read(toolName string) Info {
	res := Info{Tool: toolName}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return res
	}

	res.Module = info.Main.Path
	res.Go = info.GoVersion
	if v := info.Main.Version; v != "" && v != "(devel)" {
		res.Version = v
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			res.Revision = s.Value
		case "vcs.modified":
			res.Dirty = s.Value == "true"
		}
	}
	if len(res.Revision) > 8 {
		res.Revision = res.Revision[:8]
	}
	return res
}

// Short returns a one-line description, e.g.
// "fontconv (seehuhn.de/go/fontconv v0.1.0)".
func (info Info) Short() string {
	v := info.VersionString()
	if info.Module == "" || v == "" {
		return info.Tool
	}
	return info.Tool + " (" + info.Module + " " + v + ")"
}

// VersionString returns the module version, or the VCS revision for
// development builds.
func (info Info) VersionString() string {
	if info.Version != "" {
		return info.Version
	}
	if info.Revision == "" {
		return ""
	}
	rev := info.Revision
	if info.Dirty {
		rev += "+dirty"
	}
	return rev
}

// Long returns a multi-line description for a "version" command.
func (info Info) Long() string {
	var b strings.Builder
	b.WriteString(info.Short())
	b.WriteByte('\n')
	if info.Go != "" {
		b.WriteString("built with " + info.Go + "\n")
	}
	return b.String()
}
