package models

// AxisRange describes the physical extent of one cube axis.
type AxisRange struct {
	// Min is the first coordinate value along the axis (trace number or
	// sample time/depth).
	Min float64 `json:"min"`

	// Max is the last coordinate value along the axis.
	Max float64 `json:"max"`

	// Count is the number of discrete positions along the axis. It is
	// required for the continuously sampled depth axis and informational
	// for the two trace axes.
	Count int `json:"count,omitempty"`
}

// AmplitudeStats carries the amplitude statistics computed for a cube.
// All fields are optional: the statistics a server reports depend on what
// it managed to compute, so consumers must go through
// scene.ResolveAmplitudeRange instead of reading fields directly.
type AmplitudeStats struct {
	// ActualMin and ActualMax are the true data extrema.
	ActualMin *float64 `json:"actual_min,omitempty"`
	ActualMax *float64 `json:"actual_max,omitempty"`

	// DisplayMin and DisplayMax are the percentile-clipped bounds
	// preferred for display contrast.
	DisplayMin *float64 `json:"display_min,omitempty"`
	DisplayMax *float64 `json:"display_max,omitempty"`

	// Min and Max are generic bounds some servers report instead of the
	// fields above.
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`

	// Mean and Std are the first two moments of the amplitude values.
	Mean *float64 `json:"mean,omitempty"`
	Std  *float64 `json:"std,omitempty"`

	// P1, P5, P95 and P99 are amplitude percentiles.
	P1  *float64 `json:"p1,omitempty"`
	P5  *float64 `json:"p5,omitempty"`
	P95 *float64 `json:"p95,omitempty"`
	P99 *float64 `json:"p99,omitempty"`
}

// Geometry describes the survey orientation derived from trace coordinates.
type Geometry struct {
	// InlineAzimuth is the compass bearing of the inline direction in
	// degrees from north, nil when the survey carried no coordinates.
	InlineAzimuth *float64 `json:"inline_azimuth,omitempty"`

	// XlineAzimuth is the compass bearing of the crossline direction in
	// degrees from north.
	XlineAzimuth *float64 `json:"xline_azimuth,omitempty"`

	// HasCoordinates reports whether the azimuths were computed from real
	// trace coordinates rather than defaulted.
	HasCoordinates bool `json:"has_coordinates"`
}

// CubeDescriptor is the immutable per-upload metadata for a seismic cube.
// A new upload replaces the whole descriptor; it is never partially mutated.
type CubeDescriptor struct {
	// Shape is (inline count, crossline count, sample count).
	Shape [3]int `json:"shape"`

	// InlineRange and XlineRange are the integer trace-number bounds of
	// the two horizontal axes.
	InlineRange AxisRange `json:"inline_range"`
	XlineRange  AxisRange `json:"xline_range"`

	// SampleRange is the continuous time/depth extent of the vertical
	// axis together with its discretization count.
	SampleRange AxisRange `json:"sample_range"`

	// Amplitude holds the cube's amplitude statistics.
	Amplitude AmplitudeStats `json:"amplitude_range"`

	// Geometry holds the survey orientation.
	Geometry Geometry `json:"geometry"`

	// MemoryUsageMB is the in-memory size of the cube data.
	MemoryUsageMB float64 `json:"memory_usage_mb"`
}

// ClampIndex restricts idx to the valid index range of the given axis.
func (c *CubeDescriptor) ClampIndex(t SliceType, idx int) int {
	n := c.Shape[int(t)]
	if idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}
