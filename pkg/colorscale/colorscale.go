// Package colorscale resolves color schemes into normalized stop lists for
// amplitude rendering. Named schemes use fixed, hand-tuned tables; a custom
// scheme spreads a user-supplied color list evenly over [0,1].
package colorscale

import (
	"sort"

	"github.com/lucasb-eyer/go-colorful"

	"seiscube/internal/models"
)

// FallbackScheme is used for unknown scheme names and unusable custom
// lists. Falling back instead of erroring keeps a bad color setting from
// blanking the scene.
const FallbackScheme = "seismic"

// CustomScheme is the scheme name selecting ColorSpec.Custom.
const CustomScheme = "custom"

// schemes holds the fixed stop tables. The seismic map is a diverging
// blue-white-red scale centered at 0.5 so zero amplitude reads as white.
var schemes = map[string][]models.ColorStop{
	"seismic": {
		{Pos: 0.0, Color: "#000080"},
		{Pos: 0.25, Color: "#0000ff"},
		{Pos: 0.5, Color: "#ffffff"},
		{Pos: 0.75, Color: "#ff0000"},
		{Pos: 1.0, Color: "#800000"},
	},
	"viridis": {
		{Pos: 0.0, Color: "#440154"},
		{Pos: 0.125, Color: "#482374"},
		{Pos: 0.25, Color: "#404387"},
		{Pos: 0.375, Color: "#345e8d"},
		{Pos: 0.5, Color: "#29788e"},
		{Pos: 0.625, Color: "#21918c"},
		{Pos: 0.75, Color: "#3dbc74"},
		{Pos: 0.875, Color: "#90d743"},
		{Pos: 1.0, Color: "#fde725"},
	},
	"hot": {
		{Pos: 0.0, Color: "#000000"},
		{Pos: 0.375, Color: "#e60000"},
		{Pos: 0.75, Color: "#ffd200"},
		{Pos: 1.0, Color: "#ffffff"},
	},
	"cool": {
		{Pos: 0.0, Color: "#00ffff"},
		{Pos: 0.5, Color: "#7f80ff"},
		{Pos: 1.0, Color: "#ff00ff"},
	},
	"grayscale": {
		{Pos: 0.0, Color: "#000000"},
		{Pos: 1.0, Color: "#ffffff"},
	},
	"jet": {
		{Pos: 0.0, Color: "#000083"},
		{Pos: 0.125, Color: "#0000ff"},
		{Pos: 0.375, Color: "#00ffff"},
		{Pos: 0.625, Color: "#ffff00"},
		{Pos: 0.875, Color: "#ff0000"},
		{Pos: 1.0, Color: "#800000"},
	},
}

// Resolve maps a ColorSpec to an ordered stop list with the first stop at 0
// and the last at 1. Unknown scheme names and custom lists with fewer than
// two parseable colors resolve to the seismic table.
func Resolve(spec models.ColorSpec) []models.ColorStop {
	if spec.Scheme == CustomScheme {
		if stops, ok := resolveCustom(spec.Custom); ok {
			return stops
		}
		return clone(schemes[FallbackScheme])
	}
	if stops, ok := schemes[spec.Scheme]; ok {
		return clone(stops)
	}
	return clone(schemes[FallbackScheme])
}

// resolveCustom spreads n colors over evenly spaced stops i/(n-1). Every
// color must parse as a hex value; otherwise the whole list is rejected.
func resolveCustom(colors []string) ([]models.ColorStop, bool) {
	if len(colors) < 2 {
		return nil, false
	}
	stops := make([]models.ColorStop, len(colors))
	n := float64(len(colors) - 1)
	for i, raw := range colors {
		c, err := colorful.Hex(raw)
		if err != nil {
			return nil, false
		}
		stops[i] = models.ColorStop{Pos: float64(i) / n, Color: c.Hex()}
	}
	// Pin the last stop to exactly 1 against float rounding.
	stops[len(stops)-1].Pos = 1
	return stops, true
}

// Schemes returns the named scheme identifiers in sorted order, plus the
// custom marker last, for UI pickers.
func Schemes() []string {
	names := make([]string, 0, len(schemes)+1)
	for name := range schemes {
		names = append(names, name)
	}
	sort.Strings(names)
	return append(names, CustomScheme)
}

// Interpolate samples a resolved stop list at position t in [0,1], blending
// in RGB space between the bracketing stops.
func Interpolate(stops []models.ColorStop, t float64) string {
	if len(stops) == 0 {
		return "#000000"
	}
	if t <= stops[0].Pos {
		return stops[0].Color
	}
	last := stops[len(stops)-1]
	if t >= last.Pos {
		return last.Color
	}
	for i := 1; i < len(stops); i++ {
		if t > stops[i].Pos {
			continue
		}
		lo, hi := stops[i-1], stops[i]
		c0, err0 := colorful.Hex(lo.Color)
		c1, err1 := colorful.Hex(hi.Color)
		if err0 != nil || err1 != nil {
			return lo.Color
		}
		frac := (t - lo.Pos) / (hi.Pos - lo.Pos)
		return c0.BlendRgb(c1, frac).Hex()
	}
	return last.Color
}

func clone(stops []models.ColorStop) []models.ColorStop {
	out := make([]models.ColorStop, len(stops))
	copy(out, stops)
	return out
}
