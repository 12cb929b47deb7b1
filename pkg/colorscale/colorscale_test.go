package colorscale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seiscube/internal/models"
)

func TestResolveCustomEvenStops(t *testing.T) {
	stops := Resolve(models.ColorSpec{
		Scheme: CustomScheme,
		Custom: []string{"#000000", "#808080", "#ffffff"},
	})

	require.Len(t, stops, 3)
	assert.Equal(t, 0.0, stops[0].Pos)
	assert.Equal(t, 0.5, stops[1].Pos)
	assert.Equal(t, 1.0, stops[2].Pos)
	assert.Equal(t, "#000000", stops[0].Color)
	assert.Equal(t, "#808080", stops[1].Color)
	assert.Equal(t, "#ffffff", stops[2].Color)
}

func TestResolveCustomTooFewColorsFallsBack(t *testing.T) {
	stops := Resolve(models.ColorSpec{Scheme: CustomScheme, Custom: []string{"#ff0000"}})
	assert.Equal(t, Resolve(models.ColorSpec{Scheme: FallbackScheme}), stops,
		"a single-color custom list must fall back to the seismic table")
}

func TestResolveCustomBadColorFallsBack(t *testing.T) {
	stops := Resolve(models.ColorSpec{
		Scheme: CustomScheme,
		Custom: []string{"#ff0000", "not-a-color"},
	})
	assert.Equal(t, Resolve(models.ColorSpec{Scheme: FallbackScheme}), stops)
}

func TestResolveUnknownSchemeFallsBack(t *testing.T) {
	stops := Resolve(models.ColorSpec{Scheme: "xyz"})
	assert.Equal(t, Resolve(models.ColorSpec{Scheme: "seismic"}), stops)
}

func TestAllSchemesAreNormalized(t *testing.T) {
	for _, name := range Schemes() {
		if name == CustomScheme {
			continue
		}
		stops := Resolve(models.ColorSpec{Scheme: name})
		require.NotEmpty(t, stops, "scheme %s", name)
		assert.Equal(t, 0.0, stops[0].Pos, "scheme %s must start at 0", name)
		assert.Equal(t, 1.0, stops[len(stops)-1].Pos, "scheme %s must end at 1", name)
		for i := 1; i < len(stops); i++ {
			assert.Greater(t, stops[i].Pos, stops[i-1].Pos,
				"scheme %s stops must be strictly increasing", name)
		}
	}
}

func TestSeismicIsCenteredDiverging(t *testing.T) {
	stops := Resolve(models.ColorSpec{Scheme: "seismic"})
	mid := stops[len(stops)/2]
	assert.Equal(t, 0.5, mid.Pos)
	assert.Equal(t, "#ffffff", mid.Color, "zero amplitude must map to white")
}

func TestResolveReturnsACopy(t *testing.T) {
	a := Resolve(models.ColorSpec{Scheme: "grayscale"})
	a[0].Color = "#123456"
	b := Resolve(models.ColorSpec{Scheme: "grayscale"})
	assert.Equal(t, "#000000", b[0].Color, "mutating a resolved scale must not affect the table")
}

func TestInterpolate(t *testing.T) {
	stops := []models.ColorStop{
		{Pos: 0, Color: "#000000"},
		{Pos: 1, Color: "#ffffff"},
	}

	assert.Equal(t, "#000000", Interpolate(stops, -0.5))
	assert.Equal(t, "#ffffff", Interpolate(stops, 2))
	assert.Equal(t, "#808080", Interpolate(stops, 0.5))
}
