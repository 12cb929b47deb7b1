// Package cube holds a seismic data volume in memory and serves the slice
// payloads and metadata the viewer consumes. It owns no file format: the
// volume arrives already decoded.
package cube

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"seiscube/internal/models"
)

// Volume is a regularly sampled seismic cube stored row-major as
// inline × crossline × sample.
type Volume struct {
	// data is the amplitude volume as a 1D array in row-major order.
	data []float64

	// inlineCoords, xlineCoords and sampleCoords give the physical
	// coordinate of each index along the three axes.
	inlineCoords []float64
	xlineCoords  []float64
	sampleCoords []float64

	// geometry is the survey orientation.
	geometry models.Geometry
}

// New builds a Volume and validates that the data length matches the
// coordinate vectors.
func New(data []float64, inlineCoords, xlineCoords, sampleCoords []float64) (*Volume, error) {
	ni, nx, ns := len(inlineCoords), len(xlineCoords), len(sampleCoords)
	if ni == 0 || nx == 0 || ns == 0 {
		return nil, fmt.Errorf("volume axes must be non-empty, got (%d, %d, %d)", ni, nx, ns)
	}
	if len(data) != ni*nx*ns {
		return nil, fmt.Errorf("volume data has %d values, want %d for shape (%d, %d, %d)",
			len(data), ni*nx*ns, ni, nx, ns)
	}
	return &Volume{
		data:         data,
		inlineCoords: inlineCoords,
		xlineCoords:  xlineCoords,
		sampleCoords: sampleCoords,
		geometry:     ComputeGeometry(nil, nil, nil),
	}, nil
}

// Shape returns (inline count, crossline count, sample count).
func (v *Volume) Shape() (ni, nx, ns int) {
	return len(v.inlineCoords), len(v.xlineCoords), len(v.sampleCoords)
}

// At returns the amplitude at the given axis indices.
func (v *Volume) At(i, x, s int) float64 {
	_, nx, ns := v.Shape()
	return v.data[(i*nx+x)*ns+s]
}

// SetGeometry overrides the survey orientation.
func (v *Volume) SetGeometry(g models.Geometry) { v.geometry = g }

// Slice extracts the 2D payload for one slice. Inline and crossline slices
// are oriented with rows following the sample axis; the depth slice with
// rows following the crossline axis, so rows always correspond to the
// payload's Y coordinates. NaN and infinite amplitudes are cleaned to zero.
func (v *Volume) Slice(t models.SliceType, idx int) (*models.SlicePayload, error) {
	ni, nx, ns := v.Shape()

	var rows, cols int
	var x, y []float64
	var at func(r, c int) float64

	switch t {
	case models.InlineSlice:
		if idx < 0 || idx >= ni {
			return nil, fmt.Errorf("inline index %d out of bounds (max: %d)", idx, ni-1)
		}
		rows, cols = ns, nx
		x, y = v.xlineCoords, v.sampleCoords
		at = func(r, c int) float64 { return v.At(idx, c, r) }
	case models.XlineSlice:
		if idx < 0 || idx >= nx {
			return nil, fmt.Errorf("xline index %d out of bounds (max: %d)", idx, nx-1)
		}
		rows, cols = ns, ni
		x, y = v.inlineCoords, v.sampleCoords
		at = func(r, c int) float64 { return v.At(c, idx, r) }
	case models.SampleSlice:
		if idx < 0 || idx >= ns {
			return nil, fmt.Errorf("sample index %d out of bounds (max: %d)", idx, ns-1)
		}
		rows, cols = nx, ni
		x, y = v.inlineCoords, v.xlineCoords
		at = func(r, c int) float64 { return v.At(c, r, idx) }
	default:
		return nil, fmt.Errorf("invalid slice type %v", t)
	}

	vals := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		row := make([]float64, cols)
		for c := 0; c < cols; c++ {
			row[c] = cleanValue(at(r, c))
		}
		vals[r] = row
	}
	grid, err := models.NewGrid(vals)
	if err != nil {
		return nil, fmt.Errorf("building %v slice grid: %w", t, err)
	}
	return &models.SlicePayload{
		Data:        grid,
		Coordinates: models.SliceCoordinates{X: x, Y: y},
	}, nil
}

// Info computes the cube descriptor: axis ranges, amplitude statistics with
// percentile-clipped display bounds, survey geometry and memory footprint.
func (v *Volume) Info() *models.CubeDescriptor {
	ni, nx, ns := v.Shape()

	clean := make([]float64, len(v.data))
	for i, val := range v.data {
		clean[i] = cleanValue(val)
	}

	actualMin := floats.Min(clean)
	actualMax := floats.Max(clean)
	mean := stat.Mean(clean, nil)
	std := stat.StdDev(clean, nil)

	sorted := make([]float64, len(clean))
	copy(sorted, clean)
	sort.Float64s(sorted)
	p1 := stat.Quantile(0.01, stat.Empirical, sorted, nil)
	p5 := stat.Quantile(0.05, stat.Empirical, sorted, nil)
	p95 := stat.Quantile(0.95, stat.Empirical, sorted, nil)
	p99 := stat.Quantile(0.99, stat.Empirical, sorted, nil)

	return &models.CubeDescriptor{
		Shape: [3]int{ni, nx, ns},
		InlineRange: models.AxisRange{
			Min: floats.Min(v.inlineCoords), Max: floats.Max(v.inlineCoords), Count: ni,
		},
		XlineRange: models.AxisRange{
			Min: floats.Min(v.xlineCoords), Max: floats.Max(v.xlineCoords), Count: nx,
		},
		SampleRange: models.AxisRange{
			Min: floats.Min(v.sampleCoords), Max: floats.Max(v.sampleCoords), Count: ns,
		},
		Amplitude: models.AmplitudeStats{
			ActualMin:  &actualMin,
			ActualMax:  &actualMax,
			DisplayMin: &p5,
			DisplayMax: &p95,
			Mean:       &mean,
			Std:        &std,
			P1:         &p1,
			P5:         &p5,
			P95:        &p95,
			P99:        &p99,
		},
		Geometry:      v.geometry,
		MemoryUsageMB: float64(len(v.data)*8) / (1024 * 1024),
	}
}

// CornerPoint is the physical (x, y) location of a survey corner trace.
type CornerPoint struct {
	X, Y float64
}

// ComputeGeometry derives the axis azimuths from three survey corners:
// origin at (min inline, min xline), inlineEnd at (max inline, min xline),
// xlineEnd at (min inline, max xline). Missing corners yield the default
// north/east orientation with HasCoordinates false.
func ComputeGeometry(origin, inlineEnd, xlineEnd *CornerPoint) models.Geometry {
	if origin == nil || inlineEnd == nil || xlineEnd == nil {
		inl, xl := 0.0, 90.0
		return models.Geometry{InlineAzimuth: &inl, XlineAzimuth: &xl}
	}
	inl := azimuth(origin, inlineEnd)
	xl := azimuth(origin, xlineEnd)
	return models.Geometry{InlineAzimuth: &inl, XlineAzimuth: &xl, HasCoordinates: true}
}

// azimuth is the compass bearing from a to b in degrees from north.
func azimuth(a, b *CornerPoint) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	deg := math.Atan2(dx, dy) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

func cleanValue(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
