package banner

import (
	"image"
	"image/color"
	"math"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

const (
	// lineSpacing is the vertical gap between wrapped lines, in pixels.
	lineSpacing = 6
	// wrapFraction caps line width at this fraction of the canvas width.
	wrapFraction = 0.9
	// minFontSize keeps tiny canvases from producing unreadable text.
	minFontSize = 12
)

var shadowColor = color.NRGBA{A: 160}

// TextBlock describes one wrapped, centered block of text on the banner.
type TextBlock struct {
	Text      string
	YFraction float64 // vertical center of the block, 0..1 of canvas height
	SizeRatio float64 // font size as a fraction of canvas width
	HexColor  string  // "#rrggbb"; malformed falls back to white
	Shadow    bool
	Script    Script
	FontPath  string // optional TTF override, first in the probe chain
}

// DrawTextBlock word-wraps and renders a text block onto the canvas. Lines
// are centered horizontally and the whole block is centered on
// YFraction*height. Empty text is a no-op.
func DrawTextBlock(canvas *image.NRGBA, block TextBlock) {
	text := strings.TrimSpace(block.Text)
	if text == "" {
		return
	}

	w := canvas.Bounds().Dx()
	h := canvas.Bounds().Dy()
	sizePx := int(math.Round(float64(w) * block.SizeRatio))
	if sizePx < minFontSize {
		sizePx = minFontSize
	}
	face := ResolveFace(block.FontPath, block.Script, sizePx)

	maxWidth := int(float64(w) * wrapFraction)
	lines := wrapLines(face, text, maxWidth)
	if len(lines) == 0 {
		return
	}

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	lineHeight := (metrics.Ascent + metrics.Descent).Ceil()
	totalHeight := len(lines)*lineHeight + (len(lines)-1)*lineSpacing

	fill := ParseHexColor(block.HexColor)
	y := int(block.YFraction*float64(h)) - totalHeight/2
	for _, line := range lines {
		lw := font.MeasureString(face, line).Ceil()
		x := (w - lw) / 2
		if block.Shadow {
			drawString(canvas, face, line, x+2, y+2+ascent, shadowColor)
		}
		drawString(canvas, face, line, x, y+ascent, fill)
		y += lineHeight + lineSpacing
	}
}

// wrapLines greedily packs words into lines no wider than maxWidth. A single
// word wider than the limit still gets its own line; there is no
// character-level breaking.
func wrapLines(face font.Face, text string, maxWidth int) []string {
	var lines []string
	var line string
	for _, word := range strings.Fields(text) {
		trial := word
		if line != "" {
			trial = line + " " + word
		}
		if line == "" || font.MeasureString(face, trial).Ceil() <= maxWidth {
			line = trial
			continue
		}
		lines = append(lines, line)
		line = word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

func drawString(dst *image.NRGBA, face font.Face, s string, x, baseline int, c color.Color) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}
