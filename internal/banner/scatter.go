package banner

import (
	"image"
	"math/rand"

	"github.com/disintegration/imaging"
)

const (
	// Decorations are scaled to a random fraction of the canvas width
	// inside this range.
	scatterMinWidthFrac = 0.08
	scatterMaxWidthFrac = 0.20
	// scatterMarginFrac insets the candidate zones from the canvas edge,
	// relative to the smaller canvas dimension.
	scatterMarginFrac = 0.03
)

// ScatterDecorations composites up to count decorative assets onto the
// canvas at randomly chosen corner/edge zones. The rand source is explicit
// so placement is reproducible under a fixed seed. Assets that fail to load
// are skipped without aborting the batch; an empty file list is a no-op.
func ScatterDecorations(canvas *image.NRGBA, files []string, count int, rng *rand.Rand) *image.NRGBA {
	if len(files) == 0 || count <= 0 {
		return canvas
	}

	k := count
	if k > len(files) {
		k = len(files)
	}
	order := rng.Perm(len(files))

	w := canvas.Bounds().Dx()
	h := canvas.Bounds().Dy()
	margin := int(float64(min(w, h)) * scatterMarginFrac)

	for _, idx := range order[:k] {
		elem, err := imaging.Open(files[idx])
		if err != nil {
			continue
		}
		frac := scatterMinWidthFrac + rng.Float64()*(scatterMaxWidthFrac-scatterMinWidthFrac)
		tw := int(float64(w) * frac)
		if tw < 1 {
			tw = 1
		}
		scaled := imaging.Resize(elem, tw, 0, imaging.Lanczos)
		ow := scaled.Bounds().Dx()
		oh := scaled.Bounds().Dy()

		zones := []image.Point{
			{X: margin, Y: margin},
			{X: w - ow - margin, Y: margin},
			{X: margin, Y: h - oh - margin},
			{X: w - ow - margin, Y: h - oh - margin},
			{X: w/2 - ow/2, Y: margin},
			{X: w/2 - ow/2, Y: h - oh - margin},
		}
		pos := zones[rng.Intn(len(zones))]
		canvas = imaging.Overlay(canvas, scaled, pos, 1.0)
	}
	return canvas
}
