package banner

import "image"

// Anchor is a placement slot on the canvas. Overlays are pinned to one of
// eight corner/edge/center positions, inset by a margin.
type Anchor int

const (
	TopLeft Anchor = iota
	TopCenter
	TopRight
	LeftCenter
	RightCenter
	BottomLeft
	BottomCenter
	BottomRight
)

var anchorNames = map[Anchor]string{
	TopLeft:      "Top-Left",
	TopCenter:    "Top-Center",
	TopRight:     "Top-Right",
	LeftCenter:   "Left-Center",
	RightCenter:  "Right-Center",
	BottomLeft:   "Bottom-Left",
	BottomCenter: "Bottom-Center",
	BottomRight:  "Bottom-Right",
}

func (a Anchor) String() string {
	if s, ok := anchorNames[a]; ok {
		return s
	}
	return "Top-Left"
}

// ParseAnchor maps a position label to an Anchor. Unknown labels fall back
// to the given default rather than erroring; placement is never fatal.
func ParseAnchor(s string, fallback Anchor) Anchor {
	for a, name := range anchorNames {
		if name == s {
			return a
		}
	}
	return fallback
}

// Offset returns the top-left point at which an overlay of size (ow, oh)
// should be drawn on a canvas of size (bw, bh), inset by margin pixels.
func (a Anchor) Offset(bw, bh, ow, oh, margin int) image.Point {
	switch a {
	case TopLeft:
		return image.Pt(margin, margin)
	case TopCenter:
		return image.Pt((bw-ow)/2, margin)
	case TopRight:
		return image.Pt(bw-ow-margin, margin)
	case LeftCenter:
		return image.Pt(margin, (bh-oh)/2)
	case RightCenter:
		return image.Pt(bw-ow-margin, (bh-oh)/2)
	case BottomLeft:
		return image.Pt(margin, bh-oh-margin)
	case BottomCenter:
		return image.Pt((bw-ow)/2, bh-oh-margin)
	case BottomRight:
		return image.Pt(bw-ow-margin, bh-oh-margin)
	}
	return image.Pt(margin, margin)
}
