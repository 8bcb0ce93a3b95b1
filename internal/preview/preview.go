// Package preview renders chart PNGs as terminal cells. Each text row
// carries two pixel rows via the upper-half-block glyph: the top pixel
// as foreground, the bottom as background.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"
)

const halfBlock = "▀"

// Render decodes the PNG at path and renders it within a budget of
// maxCols x maxRows terminal cells, preserving aspect ratio.
func Render(path string, maxCols, maxRows int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening chart: %w", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decoding %s: %w", path, err)
	}
	return RenderImage(img, maxCols, maxRows), nil
}

// RenderImage downscales img to fit the cell budget and emits one
// styled line per cell row. Returns "" for a degenerate budget.
func RenderImage(img image.Image, maxCols, maxRows int) string {
	cols, rows := fit(img.Bounds().Dx(), img.Bounds().Dy(), maxCols, maxRows)
	if cols == 0 || rows == 0 {
		return ""
	}

	// Two pixel rows per cell row.
	scaled := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Over, nil)

	var b strings.Builder
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top := hexColor(scaled.At(x, y*2))
			bottom := hexColor(scaled.At(x, y*2+1))
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom)).
				Render(halfBlock))
		}
		if y < rows-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// fit scales (w, h) pixels into (maxCols, maxRows) cells, keeping the
// aspect ratio. A terminal cell is roughly twice as tall as wide, which
// the two-pixels-per-cell packing already accounts for.
func fit(w, h, maxCols, maxRows int) (cols, rows int) {
	if w <= 0 || h <= 0 || maxCols <= 0 || maxRows <= 0 {
		return 0, 0
	}
	maxPixRows := maxRows * 2
	cols, pixRows := w, h
	if cols > maxCols {
		pixRows = pixRows * maxCols / cols
		cols = maxCols
	}
	if pixRows > maxPixRows {
		cols = cols * maxPixRows / pixRows
		pixRows = maxPixRows
	}
	if cols == 0 || pixRows == 0 {
		return 0, 0
	}
	rows = (pixRows + 1) / 2
	return cols, rows
}

// hexColor flattens a pixel onto the page's white background and
// formats it for lipgloss. Charts are drawn on white, so transparent
// margins render the way the browser shows them.
func hexColor(c color.Color) string {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return "#ffffff"
	}
	// Un-premultiply, then blend over white.
	rr := blendWhite(r, a)
	gg := blendWhite(g, a)
	bb := blendWhite(b, a)
	return fmt.Sprintf("#%02x%02x%02x", rr, gg, bb)
}

func blendWhite(ch, a uint32) uint8 {
	if a == 0xffff {
		return uint8(ch >> 8)
	}
	// ch is alpha-premultiplied; add the white showing through.
	v := ch + (0xffff - a)
	if v > 0xffff {
		v = 0xffff
	}
	return uint8(v >> 8)
}
