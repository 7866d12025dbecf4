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

package pathres

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestClassify(t *testing.T) {
	testCases := []struct {
		raw  string
		want Style
	}{
		{"font.ttf", POSIX},
		{"fonts/font.ttf", POSIX},
		{"/usr/share/fonts/font.ttf", POSIX},
		{"", POSIX},
		{`fonts\font.ttf`, Windows},
		{`C:\Fonts\font.ttf`, Windows},
		{"C:font.ttf", Windows},
		{"/tmp/a:b.ttf", Windows},
	}
	for _, tc := range testCases {
		if got := Classify(tc.raw); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.raw, got, tc.want)
		}
	}
}

func TestJoin(t *testing.T) {
	const dir = "/home/user/work"
	testCases := []struct {
		raw  string
		want string
	}{
		{"font.ttf", "/home/user/work/font.ttf"},
		{"./fonts/../font.otf", "/home/user/work/font.otf"},
		{"../font.otf", "/home/user/font.otf"},
		{"/tmp/out.otf", "/tmp/out.otf"},
		{"/tmp//x/./out.otf", "/tmp/x/out.otf"},
		{"", "/home/user/work"},
		{`fonts\font.ttf`, "/home/user/work/fonts/font.ttf"},
		{`..\font.ttf`, "/home/user/font.ttf"},
		{`C:\Fonts\font.ttf`, "/home/user/work/C:/Fonts/font.ttf"},
		{`C:fonts\font.ttf`, "/home/user/work/C:/fonts/font.ttf"},
		{`\\server\share\dir\font.ttf`, `/home/user/work/\\server\share/dir/font.ttf`},
		{`\..\font.ttf`, "/font.ttf"},
		{"/tmp/a:b.ttf", "/tmp/a:b.ttf"},
		{`\Fonts\font.ttf`, "/Fonts/font.ttf"},
		{"a:b.ttf", "/home/user/work/a:/b.ttf"}, // "a:" is read as a drive letter
		{"v:final.otf", "/home/user/work/v:/final.otf"},
		{"x:y:z.otf", "/home/user/work/x:/y:z.otf"},
	}
	for _, tc := range testCases {
		if got := Join(dir, tc.raw); got != tc.want {
			t.Errorf("Join(%q) = %q, want %q", tc.raw, got, tc.want)
		}
	}
}

func TestParseWindows(t *testing.T) {
	testCases := []struct {
		raw  string
		want WindowsPath
		str  string
	}{
		{
			raw:  `C:\Fonts\Arial.ttf`,
			want: WindowsPath{Volume: "C:", Rooted: true, Elems: []string{"Fonts", "Arial.ttf"}},
			str:  `C:\Fonts\Arial.ttf`,
		},
		{
			raw:  `d:fonts/./a.ttf`,
			want: WindowsPath{Volume: "d:", Elems: []string{"fonts", "a.ttf"}},
			str:  `d:fonts\a.ttf`,
		},
		{
			raw:  `\\host\share\x\..\y.otf`,
			want: WindowsPath{Volume: `\\host\share`, Rooted: true, Elems: []string{"y.otf"}},
			str:  `\\host\share\y.otf`,
		},
		{
			raw:  `..\..\a.ttf`,
			want: WindowsPath{Elems: []string{"..", "..", "a.ttf"}},
			str:  `..\..\a.ttf`,
		},
		{
			raw:  `\a\..\..`,
			want: WindowsPath{Rooted: true},
			str:  `\`,
		},
		{
			raw:  `.\`,
			want: WindowsPath{},
			str:  ".",
		},
	}
	for _, tc := range testCases {
		got := ParseWindows(tc.raw)
		if diff := cmp.Diff(tc.want, got, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("ParseWindows(%q) mismatch (-want +got):\n%s", tc.raw, diff)
		}
		if s := got.String(); s != tc.str {
			t.Errorf("ParseWindows(%q).String() = %q, want %q", tc.raw, s, tc.str)
		}
	}
}

func TestAbs(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX host only")
	}

	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	got, err := Abs("testdata/font.ttf")
	if err != nil {
		t.Fatal(err)
	}
	want := filepath.Join(cwd, "testdata", "font.ttf")
	if got != want {
		t.Errorf("Abs = %q, want %q", got, want)
	}

	got, err = Abs(`testdata\font.ttf`)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Errorf("Abs (windows style) = %q, want %q", got, want)
	}
}
