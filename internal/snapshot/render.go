package snapshot

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var face = basicfont.Face7x13

// Render rasterises a terminal frame, white on black, one 7x13 cell per rune.
// Styling is dropped.
func Render(frame string) *image.RGBA {
	lines := strings.Split(strings.TrimRight(ansi.Strip(frame), "\n"), "\n")
	cols := 1
	for _, l := range lines {
		cols = max(cols, utf8.RuneCountInString(l))
	}

	img := image.NewRGBA(image.Rect(0, 0, cols*face.Advance, len(lines)*face.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	for i, l := range lines {
		d.Dot = fixed.P(0, i*face.Height+face.Ascent)
		d.DrawString(l)
	}
	return img
}
