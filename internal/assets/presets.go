package assets

import "sort"

// FestivalPresets maps each supported festival to its default background
// prompt. The prompt is sent to the background generator when the caller
// opts into the preset and supplies no prompt of their own.
var FestivalPresets = map[string]string{
	"Diwali":    "Warm golden festive lights, soft bokeh, deep maroon + gold accents, elegant clean backdrop",
	"Holi":      "Color splash background with powdery gradients, vibrant pink yellow blue, clean and bright",
	"Christmas": "Cozy warm lights bokeh, soft red & green accents, subtle snow sparkle, premium feel",
	"Eid":       "Royal night sky gradient, moon & star motifs, warm lantern glow, elegant geometric pattern",
	"New Year":  "Fireworks bokeh, confetti gradient, glossy premium look, dark-to-light vignette",
}

// FestivalNames returns the supported festival names in stable order.
func FestivalNames() []string {
	names := make([]string, 0, len(FestivalPresets))
	for name := range FestivalPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetPrompt returns the preset prompt for a festival, or "" for an
// unknown one.
func PresetPrompt(festival string) string {
	return FestivalPresets[festival]
}
