package scene

import "seiscube/internal/models"

// Colors and widths for the wireframe and the orientation gizmo.
const (
	outlineColor = "#888888"
	outlineWidth = 2.0

	inlineAxisColor = "#ff0000"
	xlineAxisColor  = "#00cc00"
	depthAxisColor  = "#0000ff"
	axisVectorWidth = 6.0

	// axisVectorScale is the fraction of each axis span covered by its
	// orientation vector.
	axisVectorScale = 0.15
)

// corner is one of the cube's 8 corners in scene coordinates
// (x=inline, y=xline, z=sample).
type corner struct {
	x, y, z float64
}

// boxCorners returns the canonical corner ordering: bottom face
// counter-clockwise starting at the min corner, then the top face in the
// same order.
func boxCorners(inline, xline, sample models.AxisRange) [8]corner {
	return [8]corner{
		{inline.Min, xline.Min, sample.Min},
		{inline.Max, xline.Min, sample.Min},
		{inline.Max, xline.Max, sample.Min},
		{inline.Min, xline.Max, sample.Min},
		{inline.Min, xline.Min, sample.Max},
		{inline.Max, xline.Min, sample.Max},
		{inline.Max, xline.Max, sample.Max},
		{inline.Min, xline.Max, sample.Max},
	}
}

// boxEdges lists the 12 corner pairs closing the box: 4 bottom, 4 top,
// 4 vertical.
var boxEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// BuildOutline derives the cube's wireframe bounding box from the three
// axis ranges: exactly 12 line segments whose endpoints differ in exactly
// one coordinate.
func BuildOutline(inline, xline, sample models.AxisRange) []models.LineSegment {
	corners := boxCorners(inline, xline, sample)
	edges := make([]models.LineSegment, 0, len(boxEdges))
	for _, e := range boxEdges {
		a, b := corners[e[0]], corners[e[1]]
		edges = append(edges, models.LineSegment{
			X0: a.x, Y0: a.y, Z0: a.z,
			X1: b.x, Y1: b.y, Z1: b.z,
			Color: outlineColor,
			Width: outlineWidth,
		})
	}
	return edges
}

// BuildAxisVectors derives the orientation gizmo: three segments anchored
// at the min corner, one per axis, each scaled to 15% of that axis's span
// and colored distinctly.
func BuildAxisVectors(inline, xline, sample models.AxisRange) []models.LineSegment {
	ox, oy, oz := inline.Min, xline.Min, sample.Min
	return []models.LineSegment{
		{
			X0: ox, Y0: oy, Z0: oz,
			X1: ox + axisVectorScale*(inline.Max-inline.Min), Y1: oy, Z1: oz,
			Color: inlineAxisColor,
			Width: axisVectorWidth,
		},
		{
			X0: ox, Y0: oy, Z0: oz,
			X1: ox, Y1: oy + axisVectorScale*(xline.Max-xline.Min), Z1: oz,
			Color: xlineAxisColor,
			Width: axisVectorWidth,
		},
		{
			X0: ox, Y0: oy, Z0: oz,
			X1: ox, Y1: oy, Z1: oz + axisVectorScale*(sample.Max-sample.Min),
			Color: depthAxisColor,
			Width: axisVectorWidth,
		},
	}
}
