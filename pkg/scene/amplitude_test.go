package scene

import (
	"testing"

	"seiscube/internal/models"
)

func f(v float64) *float64 { return &v }

// TestResolveAmplitudeRangePrefersDisplayBounds verifies that the
// percentile-clipped display range wins over the true extrema
func TestResolveAmplitudeRangePrefersDisplayBounds(t *testing.T) {
	min, max := ResolveAmplitudeRange(models.AmplitudeStats{
		DisplayMin: f(1), DisplayMax: f(2),
		ActualMin: f(0), ActualMax: f(3),
	})

	if min != 1 || max != 2 {
		t.Errorf("Expected range (1, 2), got (%f, %f)", min, max)
	}
}

// TestResolveAmplitudeRangeFallsBackToActual verifies the second step of
// the fallback chain
func TestResolveAmplitudeRangeFallsBackToActual(t *testing.T) {
	min, max := ResolveAmplitudeRange(models.AmplitudeStats{
		ActualMin: f(0), ActualMax: f(3),
	})

	if min != 0 || max != 3 {
		t.Errorf("Expected range (0, 3), got (%f, %f)", min, max)
	}
}

// TestResolveAmplitudeRangeGenericBounds verifies the generic min/max step
func TestResolveAmplitudeRangeGenericBounds(t *testing.T) {
	min, max := ResolveAmplitudeRange(models.AmplitudeStats{
		Min: f(-5), Max: f(5),
	})

	if min != -5 || max != 5 {
		t.Errorf("Expected range (-5, 5), got (%f, %f)", min, max)
	}
}

// TestResolveAmplitudeRangeDefaults verifies the 0..1 default for empty
// statistics
func TestResolveAmplitudeRangeDefaults(t *testing.T) {
	min, max := ResolveAmplitudeRange(models.AmplitudeStats{})

	if min != 0 || max != 1 {
		t.Errorf("Expected range (0, 1), got (%f, %f)", min, max)
	}
}

// TestResolveAmplitudeRangeIndependentBounds verifies that each bound falls
// back independently of the other
func TestResolveAmplitudeRangeIndependentBounds(t *testing.T) {
	min, max := ResolveAmplitudeRange(models.AmplitudeStats{
		DisplayMin: f(-1),
		ActualMax:  f(4),
	})

	if min != -1 || max != 4 {
		t.Errorf("Expected range (-1, 4), got (%f, %f)", min, max)
	}
}
