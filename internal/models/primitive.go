package models

// ColorSpec selects the amplitude color mapping: either one of the named
// schemes or an ordered list of custom colors.
type ColorSpec struct {
	// Scheme is a named scheme ("seismic", "viridis", ...) or "custom".
	Scheme string `yaml:"scheme"`

	// Custom is the ordered color list used when Scheme is "custom".
	// At least two colors are required; fewer falls back to seismic.
	Custom []string `yaml:"custom,omitempty"`
}

// ColorStop is one entry of a resolved colorscale: a normalized position in
// [0,1] and its CSS color value.
type ColorStop struct {
	Pos   float64
	Color string
}

// RenderPrimitive is one renderable element of the scene: either a
// LineSegment or a Surface.
type RenderPrimitive interface {
	primitive()
}

// LineSegment is a straight 3D segment, used for the bounding-box outline
// and the orientation axis vectors.
type LineSegment struct {
	X0, Y0, Z0 float64
	X1, Y1, Z1 float64
	Color      string
	Width      float64
}

func (LineSegment) primitive() {}

// Surface is a parametric 3D surface with per-cell color values. The four
// grids share one shape.
type Surface struct {
	XMesh, YMesh, ZMesh Grid

	// ColorValues holds the raw amplitudes mapped through Colorscale.
	ColorValues Grid

	// Colorscale is the resolved stop list applied to ColorValues.
	Colorscale []ColorStop

	// CMin and CMax pin the color range so amplitudes compare across
	// slices.
	CMin, CMax float64

	// Label names the slice for hover text and the colorbar title.
	Label string

	// ShowColorbar marks the single surface that carries the shared
	// colorbar legend.
	ShowColorbar bool
}

func (Surface) primitive() {}
