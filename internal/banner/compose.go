package banner

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// DefaultMargin is the inset used when no margin is given.
const DefaultMargin = 24

// NewCanvas creates a blank opaque canvas.
func NewCanvas(w, h int, c color.Color) *image.NRGBA {
	return imaging.New(w, h, c)
}

// PlaceOverlay scales asset to targetWidth (aspect preserved, Lanczos) and
// alpha-composites it onto the canvas at the anchor position. Overlays that
// extend past the canvas edge are clipped silently. A zero-size asset is
// still resized to at least 1x1 rather than rejected.
func PlaceOverlay(canvas *image.NRGBA, asset image.Image, targetWidth int, anchor Anchor, margin int) *image.NRGBA {
	if asset == nil {
		return canvas
	}
	aw := asset.Bounds().Dx()
	ah := asset.Bounds().Dy()
	if aw < 1 {
		aw = 1
	}
	scale := float64(targetWidth) / float64(aw)
	tw := targetWidth
	if tw < 1 {
		tw = 1
	}
	th := int(float64(ah) * scale)
	if th < 1 {
		th = 1
	}
	scaled := imaging.Resize(asset, tw, th, imaging.Lanczos)

	bw := canvas.Bounds().Dx()
	bh := canvas.Bounds().Dy()
	pos := anchor.Offset(bw, bh, scaled.Bounds().Dx(), scaled.Bounds().Dy(), margin)
	return imaging.Overlay(canvas, scaled, pos, 1.0)
}

// Flatten drops the alpha channel, producing the final opaque image for
// encoding. Matches the export step of the compositing pipeline: pixel color
// values are kept as-is, alpha is forced to full.
func Flatten(img *image.NRGBA) *image.NRGBA {
	out := imaging.Clone(img)
	for i := 3; i < len(out.Pix); i += 4 {
		out.Pix[i] = 0xff
	}
	return out
}
