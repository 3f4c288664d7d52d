package ramp

import "strings"

// Built-in ramps. The sampled colors follow the well known palettes of the
// same names.
var (
	// Cubehelix is Green's cubehelix: black to white through a rotating hue.
	Cubehelix = mustHex("#000000", "#1a1530", "#163d4e", "#1f6642", "#53792f",
		"#a07949", "#d07e93", "#cf9cda", "#c1caf3", "#d2eeef", "#ffffff")

	// BrownGreen is the diverging brown to blue-green palette.
	BrownGreen = mustHex("#543005", "#8c510a", "#bf812d", "#dfc27d", "#f6e8c3",
		"#f5f5f5", "#c7eae5", "#80cdc1", "#35978f", "#01665e", "#003c30")

	// Viridis is the perceptually uniform purple to yellow palette.
	Viridis = mustHex("#440154", "#482878", "#3e4989", "#31688e", "#26828e",
		"#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725")

	// Greys runs from white to black.
	Greys = mustHex("#ffffff", "#000000")
)

var presets = map[string]*Ramp{
	"cubehelix":  Cubehelix,
	"browngreen": BrownGreen,
	"viridis":    Viridis,
	"greys":      Greys,
}

// ByName returns a built-in ramp by case-insensitive name. Dashes and
// underscores are ignored, so "brown-green" and "BROWN_GREEN" both match.
func ByName(name string) (*Ramp, bool) {
	key := strings.ToLower(strings.NewReplacer("-", "", "_", "").Replace(name))
	r, ok := presets[key]
	return r, ok
}

// Names returns the names accepted by ByName.
func Names() []string {
	return []string{"browngreen", "cubehelix", "greys", "viridis"}
}
