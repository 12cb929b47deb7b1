// Package render turns a composed scene plan into a plotly-style figure
// document. The actual pixel rendering belongs to the plotting surface; this
// package only owns the figure contract: an ordered trace list, a layout,
// and a display configuration.
package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"os"

	"seiscube/internal/models"
	"seiscube/pkg/scene"
)

// Options is the render surface configuration.
type Options struct {
	// DisplayModeBar shows the interactive toolbar.
	DisplayModeBar bool `json:"displayModeBar"`

	// Responsive resizes the plot with its container.
	Responsive bool `json:"responsive"`
}

// Renderer submits a scene plan to a render surface.
type Renderer interface {
	Draw(plan scene.ScenePlan, opts Options) error
}

// Figure is the serialized form the plotting surface accepts.
type Figure struct {
	Data   []any  `json:"data"`
	Layout layout `json:"layout"`
}

type layout struct {
	Scene       figScene       `json:"scene"`
	Annotations []annotation   `json:"annotations"`
	Margin      map[string]int `json:"margin"`
}

type figScene struct {
	XAxis  figAxis   `json:"xaxis"`
	YAxis  figAxis   `json:"yaxis"`
	ZAxis  figAxis   `json:"zaxis"`
	Camera figCamera `json:"camera"`
}

type figAxis struct {
	Title string     `json:"title"`
	Range [2]float64 `json:"range"`
}

type figCamera struct {
	Eye eye `json:"eye"`
}

type eye struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type annotation struct {
	Text      string  `json:"text"`
	ShowArrow bool    `json:"showarrow"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	XRef      string  `json:"xref"`
	YRef      string  `json:"yref"`
}

type lineTrace struct {
	Type      string     `json:"type"`
	Mode      string     `json:"mode"`
	X         [2]float64 `json:"x"`
	Y         [2]float64 `json:"y"`
	Z         [2]float64 `json:"z"`
	Line      lineStyle  `json:"line"`
	HoverInfo string     `json:"hoverinfo"`
	ShowLeg   bool       `json:"showlegend"`
}

type lineStyle struct {
	Color string  `json:"color"`
	Width float64 `json:"width"`
}

type surfaceTrace struct {
	Type         string      `json:"type"`
	X            models.Grid `json:"x"`
	Y            models.Grid `json:"y"`
	Z            models.Grid `json:"z"`
	SurfaceColor models.Grid `json:"surfacecolor"`
	Colorscale   [][2]any    `json:"colorscale"`
	CMin         float64     `json:"cmin"`
	CMax         float64     `json:"cmax"`
	Name         string      `json:"name"`
	ShowScale    bool        `json:"showscale"`
	ColorBar     *colorBar   `json:"colorbar,omitempty"`
}

type colorBar struct {
	Title string `json:"title"`
}

// BuildFigure maps the scene plan onto the figure contract, preserving the
// primitive order.
func BuildFigure(plan scene.ScenePlan) (Figure, error) {
	data := make([]any, 0, len(plan.Primitives))
	for i, prim := range plan.Primitives {
		switch p := prim.(type) {
		case models.LineSegment:
			data = append(data, lineTrace{
				Type:      "scatter3d",
				Mode:      "lines",
				X:         [2]float64{p.X0, p.X1},
				Y:         [2]float64{p.Y0, p.Y1},
				Z:         [2]float64{p.Z0, p.Z1},
				Line:      lineStyle{Color: p.Color, Width: p.Width},
				HoverInfo: "skip",
			})
		case models.Surface:
			trace := surfaceTrace{
				Type:         "surface",
				X:            p.XMesh,
				Y:            p.YMesh,
				Z:            p.ZMesh,
				SurfaceColor: p.ColorValues,
				Colorscale:   stopsToScale(p.Colorscale),
				CMin:         p.CMin,
				CMax:         p.CMax,
				Name:         p.Label,
				ShowScale:    p.ShowColorbar,
			}
			if p.ShowColorbar {
				trace.ColorBar = &colorBar{Title: "Amplitude"}
			}
			data = append(data, trace)
		default:
			return Figure{}, fmt.Errorf("primitive %d has unknown type %T", i, prim)
		}
	}

	return Figure{
		Data: data,
		Layout: layout{
			Scene: figScene{
				XAxis:  figAxis{Title: plan.Layout.XTitle, Range: [2]float64{plan.Layout.XAxis.Start, plan.Layout.XAxis.End}},
				YAxis:  figAxis{Title: plan.Layout.YTitle, Range: [2]float64{plan.Layout.YAxis.Start, plan.Layout.YAxis.End}},
				ZAxis:  figAxis{Title: plan.Layout.ZTitle, Range: [2]float64{plan.Layout.ZAxis.Start, plan.Layout.ZAxis.End}},
				Camera: figCamera{Eye: eye{X: plan.Layout.Camera.X, Y: plan.Layout.Camera.Y, Z: plan.Layout.Camera.Z}},
			},
			Annotations: []annotation{{
				Text: plan.Layout.Annotation,
				X:    0, Y: 1,
				XRef: "paper", YRef: "paper",
			}},
			Margin: map[string]int{"l": 0, "r": 0, "t": 30, "b": 0},
		},
	}, nil
}

func stopsToScale(stops []models.ColorStop) [][2]any {
	scale := make([][2]any, len(stops))
	for i, s := range stops {
		scale[i] = [2]any{s.Pos, s.Color}
	}
	return scale
}

// HTMLRenderer writes the figure into a self-contained HTML document.
type HTMLRenderer struct {
	// Path is the output document location.
	Path string
}

var pageTemplate = template.Must(template.New("viewer").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Seismic Cube Viewer</title>
<script src="https://cdn.plot.ly/plotly-2.35.2.min.js"></script>
<style>html, body, #viewer { margin: 0; width: 100%; height: 100%; }</style>
</head>
<body>
<div id="viewer"></div>
<script>
var figure = {{.Figure}};
var config = {{.Config}};
Plotly.newPlot("viewer", figure.data, figure.layout, config);
</script>
</body>
</html>
`))

// Draw serializes the plan and writes the HTML document.
func (r *HTMLRenderer) Draw(plan scene.ScenePlan, opts Options) error {
	fig, err := BuildFigure(plan)
	if err != nil {
		return fmt.Errorf("building figure: %w", err)
	}
	figJSON, err := json.Marshal(fig)
	if err != nil {
		return fmt.Errorf("encoding figure: %w", err)
	}
	cfgJSON, err := json.Marshal(opts)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	f, err := os.Create(r.Path)
	if err != nil {
		return fmt.Errorf("creating output document: %w", err)
	}
	defer f.Close()

	page := struct {
		Figure template.JS
		Config template.JS
	}{
		Figure: template.JS(figJSON),
		Config: template.JS(cfgJSON),
	}
	if err := pageTemplate.Execute(f, page); err != nil {
		return fmt.Errorf("writing output document: %w", err)
	}
	return nil
}
