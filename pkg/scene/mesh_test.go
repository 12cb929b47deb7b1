package scene

import (
	"testing"

	"seiscube/internal/models"
)

func testCube() *models.CubeDescriptor {
	return &models.CubeDescriptor{
		Shape:       [3]int{3, 3, 3},
		InlineRange: models.AxisRange{Min: 100, Max: 102, Count: 3},
		XlineRange:  models.AxisRange{Min: 200, Max: 202, Count: 3},
		SampleRange: models.AxisRange{Min: 0, Max: 8, Count: 3},
	}
}

func mustGrid(t *testing.T, vals [][]float64) models.Grid {
	t.Helper()
	g, err := models.NewGrid(vals)
	if err != nil {
		t.Fatalf("Failed to build grid: %v", err)
	}
	return g
}

func testStops() []models.ColorStop {
	return []models.ColorStop{{Pos: 0, Color: "#000000"}, {Pos: 1, Color: "#ffffff"}}
}

// TestFixedCoordinateTraceAxes verifies that inline and crossline indices
// are direct trace-number offsets
func TestFixedCoordinateTraceAxes(t *testing.T) {
	cube := testCube()

	if fc := FixedCoordinate(models.InlineSlice, 1, cube); fc != 101 {
		t.Errorf("Expected inline fixed coordinate 101, got %f", fc)
	}
	if fc := FixedCoordinate(models.XlineSlice, 2, cube); fc != 202 {
		t.Errorf("Expected xline fixed coordinate 202, got %f", fc)
	}
}

// TestFixedCoordinateSampleAxis verifies the sample-axis rescaling: index 0
// maps to range.Min, index count-1 to range.Max, monotonically in between
func TestFixedCoordinateSampleAxis(t *testing.T) {
	cube := &models.CubeDescriptor{
		SampleRange: models.AxisRange{Min: 100, Max: 2100, Count: 501},
	}

	if fc := FixedCoordinate(models.SampleSlice, 0, cube); fc != 100 {
		t.Errorf("Expected fixed coordinate 100 at index 0, got %f", fc)
	}
	if fc := FixedCoordinate(models.SampleSlice, 500, cube); fc != 2100 {
		t.Errorf("Expected fixed coordinate 2100 at last index, got %f", fc)
	}

	prev := FixedCoordinate(models.SampleSlice, 0, cube)
	for idx := 1; idx <= 500; idx++ {
		fc := FixedCoordinate(models.SampleSlice, idx, cube)
		if fc <= prev {
			t.Fatalf("Fixed coordinate must increase monotonically, got %f after %f at index %d", fc, prev, idx)
		}
		prev = fc
	}
}

// TestFixedCoordinateDegenerateSampleAxis verifies the single-sample guard
func TestFixedCoordinateDegenerateSampleAxis(t *testing.T) {
	cube := &models.CubeDescriptor{
		SampleRange: models.AxisRange{Min: 50, Max: 50, Count: 1},
	}
	if fc := FixedCoordinate(models.SampleSlice, 0, cube); fc != 50 {
		t.Errorf("Expected fixed coordinate 50 for a single-sample axis, got %f", fc)
	}
}

// TestBuildSliceSurfaceBroadcast verifies the mesh broadcasting for an
// inline slice: the fixed axis is constant, the free axes replicate the
// payload coordinate vectors
func TestBuildSliceSurfaceBroadcast(t *testing.T) {
	cube := testCube()
	payload := &models.SlicePayload{
		Data: mustGrid(t, [][]float64{{1, 2, 3}, {4, 5, 6}}),
		Coordinates: models.SliceCoordinates{
			X: []float64{200, 201, 202}, // crossline
			Y: []float64{0, 4},          // sample
		},
	}

	surf, ok := BuildSliceSurface(models.InlineSlice, 1, cube, payload, testStops(), -1, 1)
	if !ok {
		t.Fatal("Expected a surface for a valid payload")
	}

	if surf.XMesh.Rows() != 2 || surf.XMesh.Cols() != 3 {
		t.Fatalf("Expected mesh shape (2, 3), got (%d, %d)", surf.XMesh.Rows(), surf.XMesh.Cols())
	}
	for r := 0; r < 2; r++ {
		for c := 0; c < 3; c++ {
			if surf.XMesh.At(r, c) != 101 {
				t.Errorf("Expected constant inline coordinate 101 at (%d,%d), got %f", r, c, surf.XMesh.At(r, c))
			}
			if surf.YMesh.At(r, c) != payload.Coordinates.X[c] {
				t.Errorf("Expected crossline coordinate %f at (%d,%d), got %f",
					payload.Coordinates.X[c], r, c, surf.YMesh.At(r, c))
			}
			if surf.ZMesh.At(r, c) != payload.Coordinates.Y[r] {
				t.Errorf("Expected sample coordinate %f at (%d,%d), got %f",
					payload.Coordinates.Y[r], r, c, surf.ZMesh.At(r, c))
			}
		}
	}

	if surf.CMin != -1 || surf.CMax != 1 {
		t.Errorf("Expected color range (-1, 1), got (%f, %f)", surf.CMin, surf.CMax)
	}
	if surf.ShowColorbar {
		t.Error("Inline slice must not carry the shared colorbar")
	}
}

// TestBuildSliceSurfaceSingleRow verifies that a payload degenerated to one
// line still yields 2D meshes of shape (1, N) matching the color grid
func TestBuildSliceSurfaceSingleRow(t *testing.T) {
	cube := testCube()
	payload := &models.SlicePayload{
		Data: models.NewGridFromRow([]float64{7, 8, 9}),
		Coordinates: models.SliceCoordinates{
			X: []float64{200, 201, 202},
			Y: []float64{0},
		},
	}

	surf, ok := BuildSliceSurface(models.InlineSlice, 0, cube, payload, testStops(), 0, 1)
	if !ok {
		t.Fatal("Expected a surface for a single-row payload")
	}

	for name, g := range map[string]models.Grid{
		"x": surf.XMesh, "y": surf.YMesh, "z": surf.ZMesh, "color": surf.ColorValues,
	} {
		if g.Rows() != 1 || g.Cols() != 3 {
			t.Errorf("Expected %s grid shape (1, 3), got (%d, %d)", name, g.Rows(), g.Cols())
		}
	}
}

// TestBuildSliceSurfaceSkipsMalformedPayloads verifies the degradation
// policy: missing or inconsistent payloads yield no primitive, not an error
func TestBuildSliceSurfaceSkipsMalformedPayloads(t *testing.T) {
	cube := testCube()

	if _, ok := BuildSliceSurface(models.InlineSlice, 0, cube, nil, testStops(), 0, 1); ok {
		t.Error("Expected no surface for a nil payload")
	}

	mismatched := &models.SlicePayload{
		Data: mustGrid(t, [][]float64{{1, 2}, {3, 4}}),
		Coordinates: models.SliceCoordinates{
			X: []float64{200, 201, 202},
			Y: []float64{0, 4},
		},
	}
	if _, ok := BuildSliceSurface(models.InlineSlice, 0, cube, mismatched, testStops(), 0, 1); ok {
		t.Error("Expected no surface when coordinates disagree with the grid shape")
	}
}

// TestBuildSliceSurfaceColorbarPolicy verifies that only the depth slice
// carries the shared colorbar legend
func TestBuildSliceSurfaceColorbarPolicy(t *testing.T) {
	cube := testCube()
	payload := &models.SlicePayload{
		Data: mustGrid(t, [][]float64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}),
		Coordinates: models.SliceCoordinates{
			X: []float64{100, 101, 102},
			Y: []float64{200, 201, 202},
		},
	}

	surf, ok := BuildSliceSurface(models.SampleSlice, 1, cube, payload, testStops(), 0, 1)
	if !ok {
		t.Fatal("Expected a surface for the sample slice")
	}
	if !surf.ShowColorbar {
		t.Error("Sample slice must carry the shared colorbar")
	}
	if surf.ZMesh.At(0, 0) != 4 {
		t.Errorf("Expected sample slice fixed coordinate 4, got %f", surf.ZMesh.At(0, 0))
	}
}
