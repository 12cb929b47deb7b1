// Package scene builds renderable primitives from seismic cube state: the
// wireframe outline, the orientation gizmo, and one parametric surface per
// visible slice, all sharing a single amplitude color range. Composition is
// a pure function of the view state, so the scene can be rebuilt from
// scratch on every state change.
package scene

import (
	"fmt"

	"seiscube/internal/models"
	"seiscube/pkg/colorscale"
)

// horizontalPadding is the fixed margin added to the inline and crossline
// display ranges so slice surfaces never touch the plot border.
const horizontalPadding = 10.0

// defaultCamera is the fixed initial camera pose.
var defaultCamera = Camera{X: 1.6, Y: 1.6, Z: 0.9}

// ViewState is the full input of a recomputation: the cube, the navigation
// state and the loaded payloads. It is treated as immutable by Compose.
type ViewState struct {
	Cube       *models.CubeDescriptor
	Indices    models.SliceIndices
	Visibility models.SliceVisibility
	Payloads   map[models.SliceType]*models.SlicePayload
	Color      models.ColorSpec
}

// AxisSpan is a display range; Start > End renders the axis descending.
type AxisSpan struct {
	Start, End float64
}

// Camera is the render surface's eye position.
type Camera struct {
	X, Y, Z float64
}

// Layout describes everything about the scene that is not a primitive.
type Layout struct {
	XAxis, YAxis, ZAxis    AxisSpan
	XTitle, YTitle, ZTitle string
	Camera                 Camera
	Annotation             string
}

// ScenePlan is the ordered primitive list plus its layout, ready for a
// render surface.
type ScenePlan struct {
	Primitives []models.RenderPrimitive
	Layout     Layout
}

// Compose assembles the outline, the visible slice surfaces and the
// orientation vectors into one ordered plan. It tolerates any subset of
// payloads, down to none (outline and axes only). Equal inputs produce
// element-wise equal plans.
func Compose(state ViewState) (ScenePlan, error) {
	if state.Cube == nil {
		return ScenePlan{}, &models.VizError{Stage: "compose", Err: fmt.Errorf("no cube loaded")}
	}
	cube := state.Cube

	stops := colorscale.Resolve(state.Color)
	cmin, cmax := ResolveAmplitudeRange(cube.Amplitude)

	prims := make([]models.RenderPrimitive, 0, 16)
	for _, e := range BuildOutline(cube.InlineRange, cube.XlineRange, cube.SampleRange) {
		prims = append(prims, e)
	}
	for _, t := range models.SliceTypes {
		if !state.Visibility.Get(t) {
			continue
		}
		surf, ok := BuildSliceSurface(t, state.Indices.Get(t), cube, state.Payloads[t], stops, cmin, cmax)
		if !ok {
			continue
		}
		prims = append(prims, *surf)
	}
	for _, v := range BuildAxisVectors(cube.InlineRange, cube.XlineRange, cube.SampleRange) {
		prims = append(prims, v)
	}

	return ScenePlan{
		Primitives: prims,
		Layout: Layout{
			XAxis: AxisSpan{
				Start: cube.InlineRange.Min - horizontalPadding,
				End:   cube.InlineRange.Max + horizontalPadding,
			},
			YAxis: AxisSpan{
				Start: cube.XlineRange.Min - horizontalPadding,
				End:   cube.XlineRange.Max + horizontalPadding,
			},
			// Depth increases downward, so the vertical axis is reversed.
			ZAxis: AxisSpan{
				Start: cube.SampleRange.Max,
				End:   cube.SampleRange.Min,
			},
			XTitle:     "Inline",
			YTitle:     "Crossline",
			ZTitle:     "Depth",
			Camera:     defaultCamera,
			Annotation: azimuthAnnotation(cube.Geometry),
		},
	}, nil
}

// azimuthAnnotation reports the survey orientation to one decimal, with a
// placeholder when the survey carried no coordinates.
func azimuthAnnotation(g models.Geometry) string {
	return fmt.Sprintf("Inline azimuth: %s | Crossline azimuth: %s",
		formatAzimuth(g.InlineAzimuth), formatAzimuth(g.XlineAzimuth))
}

func formatAzimuth(deg *float64) string {
	if deg == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f°", *deg)
}
