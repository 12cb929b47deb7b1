package scene

import "seiscube/internal/models"

// ResolveAmplitudeRange picks the display amplitude bounds from the cube's
// statistics. Each bound falls back independently: the percentile-clipped
// display range (best contrast), then the true extrema, then a generic
// min/max, then the 0..1 default. Missing statistics are not an error.
func ResolveAmplitudeRange(s models.AmplitudeStats) (min, max float64) {
	min = firstValue(0, s.DisplayMin, s.ActualMin, s.Min)
	max = firstValue(1, s.DisplayMax, s.ActualMax, s.Max)
	return min, max
}

// firstValue returns the first non-nil candidate, or def when all are nil.
func firstValue(def float64, candidates ...*float64) float64 {
	for _, c := range candidates {
		if c != nil {
			return *c
		}
	}
	return def
}
