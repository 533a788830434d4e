package banner

import "image"

// Gradient endpoint colors for the fallback background: a dark slate top
// fading into a warm amber bottom.
var (
	gradientTop    = [3]float64{20, 20, 28}
	gradientBottom = [3]float64{120, 60, 20}
)

// FallbackGradient returns a vertical two-stop gradient of the requested
// size. It is the background of last resort and never fails.
func FallbackGradient(w, h int) *image.NRGBA {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		r := uint8(gradientTop[0] + (gradientBottom[0]-gradientTop[0])*t)
		g := uint8(gradientTop[1] + (gradientBottom[1]-gradientTop[1])*t)
		b := uint8(gradientTop[2] + (gradientBottom[2]-gradientTop[2])*t)
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			row[x*4+0] = r
			row[x*4+1] = g
			row[x*4+2] = b
			row[x*4+3] = 0xff
		}
	}
	return img
}
