package banner

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// Script selects which set of well-known font locations to probe.
type Script int

const (
	ScriptLatin Script = iota
	ScriptDevanagari
)

var systemFontPaths = map[Script][]string{
	ScriptLatin: {
		"DejaVuSans.ttf",
		"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
	},
	ScriptDevanagari: {
		"NotoSansDevanagari-Regular.ttf",
		"/usr/share/fonts/truetype/noto/NotoSansDevanagari-Regular.ttf",
		"/System/Library/Fonts/Supplemental/NotoSansDevanagari-Regular.ttf",
	},
}

// ResolveFace loads a font face at sizePx, probing an ordered chain: the
// caller-supplied path, then well-known system locations for the script,
// then the embedded Go Regular, and finally a built-in bitmap face. The
// chain always terminates with a usable face.
func ResolveFace(path string, script Script, sizePx int) font.Face {
	if sizePx < 1 {
		sizePx = 12
	}

	candidates := []string{}
	if path != "" {
		candidates = append(candidates, path)
	}
	candidates = append(candidates, systemFontPaths[script]...)

	for _, p := range candidates {
		if face := faceFromFile(p, sizePx); face != nil {
			return face
		}
	}

	if f, err := truetype.Parse(goregular.TTF); err == nil {
		return newFace(f, sizePx)
	}
	return basicfont.Face7x13
}

func faceFromFile(path string, sizePx int) font.Face {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil
	}
	return newFace(f, sizePx)
}

func newFace(f *truetype.Font, sizePx int) font.Face {
	// DPI 72 makes point size equal pixel size.
	return truetype.NewFace(f, &truetype.Options{
		Size:    float64(sizePx),
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
