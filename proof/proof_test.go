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

package proof

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"seehuhn.de/go/sfnt"

	"seehuhn.de/go/fontconv/internal/testfont"
)

func TestRender(t *testing.T) {
	fonts := map[string]func() *sfnt.Font{
		"glyf": testfont.MakeGlyfFont,
		"cff":  testfont.MakeCFFFont,
	}
	for name, makeFont := range fonts {
		t.Run(name, func(t *testing.T) {
			img, err := Render(makeFont(), "Hxg", 40)
			require.NoError(t, err)

			b := img.Bounds()
			if b.Dx() < 40 || b.Dy() < 40 {
				t.Fatalf("image too small: %v", b)
			}

			dark := 0
			for y := b.Min.Y; y < b.Max.Y; y++ {
				for x := b.Min.X; x < b.Max.X; x++ {
					if img.RGBAAt(x, y).R < 128 {
						dark++
					}
				}
			}
			total := b.Dx() * b.Dy()
			if dark == 0 || dark > total/2 {
				t.Errorf("%d of %d pixels are dark", dark, total)
			}

			// the margins stay blank
			for x := b.Min.X; x < b.Max.X; x++ {
				if c := img.RGBAAt(x, b.Min.Y); c.R != 255 {
					t.Fatalf("pixel (%d, %d) is not white: %v", x, b.Min.Y, c)
				}
			}
		})
	}
}

func TestRenderEmpty(t *testing.T) {
	_, err := Render(testfont.MakeGlyfFont(), "", 12)
	if err != errEmptyText {
		t.Errorf("got %v, want %v", err, errEmptyText)
	}
}

func TestRenderBadSize(t *testing.T) {
	info := testfont.MakeGlyfFont()
	for _, size := range []float64{-48, 0, math.NaN(), math.Inf(1)} {
		img, err := Render(info, "Hi", size)
		if err != errBadSize {
			t.Errorf("size %g: got %v, want %v", size, err, errBadSize)
		}
		if img != nil {
			t.Errorf("size %g: got an image", size)
		}
	}

	info.UnitsPerEm = 0
	_, err := Render(info, "Hi", 12)
	if err != errBadUnits {
		t.Errorf("got %v, want %v", err, errBadUnits)
	}
}

func TestWritePNG(t *testing.T) {
	img, err := Render(testfont.MakeGlyfFont(), "A", 24)
	require.NoError(t, err)

	fname := filepath.Join(t.TempDir(), "proof.png")
	err = WritePNG(fname, img)
	require.NoError(t, err)

	fd, err := os.Open(fname)
	require.NoError(t, err)
	defer fd.Close()
	decoded, err := png.Decode(fd)
	require.NoError(t, err)
	if decoded.Bounds() != img.Bounds() {
		t.Errorf("decoded bounds %v, want %v", decoded.Bounds(), img.Bounds())
	}
}
