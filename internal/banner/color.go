package banner

import (
	"image/color"
	"strconv"
	"strings"
)

// ParseHexColor converts "#rrggbb" (leading '#' optional) to an opaque
// color. Malformed input falls back to white; a bad color picker value must
// not break a render.
func ParseHexColor(s string) color.NRGBA {
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 {
		return white
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return white
	}
	return color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}
}
