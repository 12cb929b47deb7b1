package scene

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"seiscube/internal/models"
)

// sceneAxis indexes the three scene axes: x carries inline trace numbers,
// y crossline trace numbers, z sample time/depth.
type sceneAxis int

const (
	axisX sceneAxis = iota
	axisY
	axisZ
)

// axisRole describes how one slice type maps onto the scene axes: which
// axis is held at the fixed coordinate, which follows the payload's column
// coordinates and which its row coordinates. The three slice builders are
// the same algorithm under different role bindings.
type axisRole struct {
	fixed sceneAxis
	col   sceneAxis
	row   sceneAxis
}

var sliceRoles = map[models.SliceType]axisRole{
	models.InlineSlice: {fixed: axisX, col: axisY, row: axisZ},
	models.XlineSlice:  {fixed: axisY, col: axisX, row: axisZ},
	models.SampleSlice: {fixed: axisZ, col: axisX, row: axisY},
}

// FixedCoordinate computes the physical coordinate of the slicing axis for
// a given slice index. Inline and crossline indices are direct trace-number
// offsets; the sample axis is continuously sampled, so the index is rescaled
// against the true sampling interval.
func FixedCoordinate(t models.SliceType, idx int, cube *models.CubeDescriptor) float64 {
	switch t {
	case models.InlineSlice:
		return cube.InlineRange.Min + float64(idx)
	case models.XlineSlice:
		return cube.XlineRange.Min + float64(idx)
	default:
		r := cube.SampleRange
		if r.Count < 2 {
			return r.Min
		}
		return r.Min + float64(idx)*(r.Max-r.Min)/float64(r.Count-1)
	}
}

// BuildSliceSurface converts one slice payload into a Surface lying in the
// plane orthogonal to the slicing axis. A nil or malformed payload yields
// no primitive: partial cube data degrades the scene instead of aborting it.
func BuildSliceSurface(t models.SliceType, idx int, cube *models.CubeDescriptor,
	p *models.SlicePayload, stops []models.ColorStop, cmin, cmax float64) (*models.Surface, bool) {

	if cube == nil || !p.Valid() {
		return nil, false
	}

	role := sliceRoles[t]
	fixed := FixedCoordinate(t, idx, cube)
	rows := len(p.Coordinates.Y)
	cols := len(p.Coordinates.X)

	// Broadcast the coordinate vectors into three grids of the payload's
	// shape: the column coordinate repeats down rows, the row coordinate
	// across columns, the fixed axis is constant everywhere.
	meshes := [3]*mat.Dense{
		mat.NewDense(rows, cols, nil),
		mat.NewDense(rows, cols, nil),
		mat.NewDense(rows, cols, nil),
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			meshes[role.fixed].Set(r, c, fixed)
			meshes[role.col].Set(r, c, p.Coordinates.X[c])
			meshes[role.row].Set(r, c, p.Coordinates.Y[r])
		}
	}

	return &models.Surface{
		XMesh:       denseToGrid(meshes[axisX]),
		YMesh:       denseToGrid(meshes[axisY]),
		ZMesh:       denseToGrid(meshes[axisZ]),
		ColorValues: p.Data,
		Colorscale:  stops,
		CMin:        cmin,
		CMax:        cmax,
		Label:       sliceLabel(t, fixed),
		// The depth slice carries the one shared colorbar; the other two
		// suppress theirs to avoid duplicate legends.
		ShowColorbar: t == models.SampleSlice,
	}, true
}

func sliceLabel(t models.SliceType, fixed float64) string {
	switch t {
	case models.InlineSlice:
		return fmt.Sprintf("Inline %.0f", fixed)
	case models.XlineSlice:
		return fmt.Sprintf("Crossline %.0f", fixed)
	default:
		return fmt.Sprintf("Depth %.1f", fixed)
	}
}

func denseToGrid(d *mat.Dense) models.Grid {
	rows, _ := d.Dims()
	vals := make([][]float64, rows)
	for r := 0; r < rows; r++ {
		vals[r] = d.RawRowView(r)
	}
	g, _ := models.NewGrid(vals)
	return g
}
