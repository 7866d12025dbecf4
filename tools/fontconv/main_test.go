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

package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/fontconv/convert"
	"seehuhn.de/go/fontconv/internal/testfont"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	stdout := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), err
}

func TestConvertTTFToOTF(t *testing.T) {
	dir := t.TempDir()
	in, err := testfont.WriteTTF(dir, "in.ttf")
	require.NoError(t, err)
	out := filepath.Join(dir, "out.otf")
	proofFile := filepath.Join(dir, "proof.png")

	stdout, err := run(t, "--backend", "native", "--verify", "--proof", proofFile, in, out)
	require.NoError(t, err)

	want := "Inpath: " + in + ", Outpath: " + out + "\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}

	s, err := convert.Describe(out)
	require.NoError(t, err)
	if s.Outlines != convert.OpenType {
		t.Errorf("output has %s outlines", s.Outlines)
	}
	if _, err := os.Stat(proofFile); err != nil {
		t.Error(err)
	}
}

func TestRoundTrip(t *testing.T) {
	dir := t.TempDir()
	a, err := testfont.WriteTTF(dir, "a.ttf")
	require.NoError(t, err)
	b := filepath.Join(dir, "b.otf")
	c := filepath.Join(dir, "c.otf")

	_, err = run(t, a, b)
	require.NoError(t, err)
	_, err = run(t, b, c)
	require.NoError(t, err)

	fa, err := convert.ReadFont(a)
	require.NoError(t, err)
	fc, err := convert.ReadFont(c)
	require.NoError(t, err)
	if fa.NumGlyphs() != fc.NumGlyphs() {
		t.Fatalf("round trip changed the number of glyphs: %d -> %d", fa.NumGlyphs(), fc.NumGlyphs())
	}

	// CFF stores coordinates as 16.16 fixed point numbers
	approx := cmpopts.EquateApprox(0, 1e-3)
	for i := 0; i < fa.NumGlyphs(); i++ {
		gid := glyph.ID(i)
		want := testfont.Segments(fa.Outlines.Path(gid))
		got := testfont.Segments(fc.Outlines.Path(gid))
		if diff := cmp.Diff(want, got, approx); diff != "" {
			t.Errorf("glyph %d (%s) (-want +got):\n%s", gid, fa.GlyphName(gid), diff)
		}
	}
}

func TestOutputExists(t *testing.T) {
	dir := t.TempDir()
	in, err := testfont.WriteTTF(dir, "in.ttf")
	require.NoError(t, err)
	out := filepath.Join(dir, "out.otf")
	require.NoError(t, os.WriteFile(out, []byte("keep me"), 0o644))

	_, err = run(t, in, out)
	if !errors.Is(err, convert.ErrOutputExists) {
		t.Errorf("got %v, want %v", err, convert.ErrOutputExists)
	}
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	if string(data) != "keep me" {
		t.Error("existing output file was modified")
	}

	_, err = run(t, "--force", in, out)
	require.NoError(t, err)
	s, err := convert.Describe(out)
	require.NoError(t, err)
	if s.Outlines != convert.OpenType {
		t.Errorf("output has %s outlines", s.Outlines)
	}
}

func TestConvertDir(t *testing.T) {
	dir := t.TempDir()
	_, err := testfont.WriteTTF(dir, "a.ttf")
	require.NoError(t, err)
	_, err = testfont.WriteTTF(dir, "B.TTF")
	require.NoError(t, err)
	_, err = testfont.WriteTTF(dir, "c.ttf")
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.otf"), []byte("keep me"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "d.ttf"), []byte("not a font"), 0o644))

	stdout, err := run(t, "convert-dir", "--backend", "native", dir)
	if err == nil || !strings.Contains(err.Error(), "1 fonts failed") {
		t.Errorf("unexpected error %v", err)
	}
	for _, want := range []string{
		"Converted: " + filepath.Join(dir, "a.otf"),
		"Converted: " + filepath.Join(dir, "B.otf"),
		"Skipped: " + filepath.Join(dir, "c.otf"),
		"Skipped: " + filepath.Join(dir, "c.ttf"),
		"2 converted, 2 skipped, 1 errors",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output does not contain %q:\n%s", want, stdout)
		}
	}
	data, err := os.ReadFile(filepath.Join(dir, "c.otf"))
	require.NoError(t, err)
	if string(data) != "keep me" {
		t.Error("existing output file was modified")
	}

	_, err = run(t, "convert-dir", filepath.Join(dir, "missing"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want %v", err, os.ErrNotExist)
	}
}

func TestProfileOnFailure(t *testing.T) {
	dir := t.TempDir()
	mem := filepath.Join(dir, "mem.prof")

	_, err := run(t, "--memprofile", mem, filepath.Join(dir, "missing.ttf"), filepath.Join(dir, "out.otf"))
	if err == nil {
		t.Fatal("missing input accepted")
	}
	fi, err := os.Stat(mem)
	require.NoError(t, err)
	if fi.Size() == 0 {
		t.Error("memory profile is empty")
	}
}

func TestBadProofSize(t *testing.T) {
	dir := t.TempDir()
	in, err := testfont.WriteTTF(dir, "in.ttf")
	require.NoError(t, err)
	out := filepath.Join(dir, "out.otf")

	_, err = run(t, "--proof", filepath.Join(dir, "p.png"), "--proof-size=-48", in, out)
	if err == nil || !strings.Contains(err.Error(), "proof-size") {
		t.Errorf("unexpected error %v", err)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Error("output file was created")
	}
}

func TestMissingInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "missing.ttf")
	out := filepath.Join(dir, "out.otf")

	_, err := run(t, in, out)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("got %v, want %v", err, os.ErrNotExist)
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Error("output file was created")
	}
}

func TestFontForgeFallback(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}

	dir := t.TempDir()
	exe := filepath.Join(dir, "fake-fontforge")
	script := "#!/bin/sh\necho \"$@\" > \"" + filepath.Join(dir, "called") + "\"\ncp \"$4\" \"$5\"\n"
	require.NoError(t, os.WriteFile(exe, []byte(script), 0o755))

	in, err := testfont.WriteOTF(dir, "in.otf")
	require.NoError(t, err)
	out := filepath.Join(dir, "out.ttf")

	// the native backend cannot convert CFF to glyf outlines
	_, err = run(t, "--fontforge", exe, in, out)
	require.NoError(t, err)

	called, err := os.ReadFile(filepath.Join(dir, "called"))
	require.NoError(t, err)
	if !strings.Contains(string(called), "Generate($2)") {
		t.Errorf("unexpected FontForge arguments %q", called)
	}
	if _, err := os.Stat(out); err != nil {
		t.Error(err)
	}

	_, err = run(t, "--backend", "native", in, filepath.Join(dir, "native.ttf"))
	if !errors.Is(err, convert.ErrNoBackend) {
		t.Errorf("got %v, want %v", err, convert.ErrNoBackend)
	}

	// without FontForge, auto falls back to the native backend alone
	missing := filepath.Join(dir, "no-such-fontforge")
	_, err = run(t, "--fontforge", missing, in, filepath.Join(dir, "auto.ttf"))
	if !errors.Is(err, convert.ErrNoBackend) {
		t.Errorf("got %v, want %v", err, convert.ErrNoBackend)
	}
}

func TestInspect(t *testing.T) {
	dir := t.TempDir()
	ttf, err := testfont.WriteTTF(dir, "a.ttf")
	require.NoError(t, err)
	otf, err := testfont.WriteOTF(dir, "b.otf")
	require.NoError(t, err)

	stdout, err := run(t, "inspect", ttf, otf)
	require.NoError(t, err)
	for _, want := range []string{ttf + ":", "Outlines: TrueType", otf + ":", "Outlines: OpenType/CFF"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output does not contain %q:\n%s", want, stdout)
		}
	}
}

func TestBadArguments(t *testing.T) {
	_, err := run(t, "only-one.ttf")
	if err == nil {
		t.Error("single argument accepted")
	}

	dir := t.TempDir()
	in, err := testfont.WriteTTF(dir, "in.ttf")
	require.NoError(t, err)
	_, err = run(t, "--backend", "magic", in, filepath.Join(dir, "out.otf"))
	if err == nil || !strings.Contains(err.Error(), "magic") {
		t.Errorf("unexpected error %v", err)
	}

	_, err = run(t, "--log-format", "xml", in, filepath.Join(dir, "out.otf"))
	if err == nil {
		t.Error("unknown log format accepted")
	}
}

func TestVersion(t *testing.T) {
	stdout, err := run(t, "version")
	require.NoError(t, err)
	if !strings.HasPrefix(stdout, toolName) {
		t.Errorf("unexpected version output %q", stdout)
	}
}
