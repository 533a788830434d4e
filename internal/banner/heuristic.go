package banner

import (
	"image"

	"github.com/disintegration/imaging"
)

// blanknessSample is the side length regions are downsampled to before the
// variance is measured.
const blanknessSample = 64

// Blankness scores how visually empty a region looks. The region is
// grayscaled, downsampled and its pixel variance taken; the score is the
// inverse of that variance, so flat areas score high and busy areas low.
func Blankness(region image.Image) float64 {
	gray := imaging.Grayscale(imaging.Resize(region, blanknessSample, blanknessSample, imaging.Box))

	n := 0
	sum := 0.0
	sumSq := 0.0
	for i := 0; i < len(gray.Pix); i += 4 {
		v := float64(gray.Pix[i])
		sum += v
		sumSq += v * v
		n++
	}
	if n == 0 {
		return 0
	}
	mean := sum / float64(n)
	variance := sumSq/float64(n) - mean*mean
	if variance < 0 {
		variance = 0
	}
	return 1.0 / (variance + 1e-6)
}

// ChooseSide picks the side of the background with more blank space for the
// product photo: the left and right thirds are scored, highest wins, ties go
// left.
func ChooseSide(bg image.Image) Anchor {
	b := bg.Bounds()
	w := b.Dx()
	h := b.Dy()
	left := imaging.Crop(bg, image.Rect(b.Min.X, b.Min.Y, b.Min.X+w/3, b.Min.Y+h))
	right := imaging.Crop(bg, image.Rect(b.Max.X-w/3, b.Min.Y, b.Max.X, b.Max.Y))
	if Blankness(left) >= Blankness(right) {
		return LeftCenter
	}
	return RightCenter
}

// PickBestAsset selects a product photo from the candidate paths. Candidates
// with genuine partial transparency are preferred since they composite
// cleanly over a generated background; within each group the first-listed
// candidate wins. Unreadable files are skipped. Returns false when nothing
// usable is found.
func PickBestAsset(paths []string) (string, bool) {
	var transparent, opaque []string
	for _, p := range paths {
		img, err := imaging.Open(p)
		if err != nil {
			continue
		}
		if hasTransparency(img) {
			transparent = append(transparent, p)
		} else {
			opaque = append(opaque, p)
		}
	}
	if len(transparent) > 0 {
		return transparent[0], true
	}
	if len(opaque) > 0 {
		return opaque[0], true
	}
	return "", false
}

func hasTransparency(img image.Image) bool {
	nrgba := imaging.Clone(img)
	for i := 3; i < len(nrgba.Pix); i += 4 {
		if nrgba.Pix[i] < 0xff {
			return true
		}
	}
	return false
}
