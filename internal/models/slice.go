package models

import (
	"encoding/json"
	"fmt"
)

// SliceType identifies which cube axis a slice holds fixed.
type SliceType int

const (
	// InlineSlice holds the inline axis fixed.
	InlineSlice SliceType = iota

	// XlineSlice holds the crossline axis fixed.
	XlineSlice

	// SampleSlice holds the time/depth axis fixed.
	SampleSlice
)

// SliceTypes lists the three slice types in canonical order.
var SliceTypes = [3]SliceType{InlineSlice, XlineSlice, SampleSlice}

// String returns the wire name of the slice type.
func (t SliceType) String() string {
	switch t {
	case InlineSlice:
		return "inline"
	case XlineSlice:
		return "xline"
	case SampleSlice:
		return "sample"
	}
	return fmt.Sprintf("SliceType(%d)", int(t))
}

// ParseSliceType maps a wire name back to a SliceType.
func ParseSliceType(s string) (SliceType, error) {
	switch s {
	case "inline":
		return InlineSlice, nil
	case "xline":
		return XlineSlice, nil
	case "sample":
		return SampleSlice, nil
	}
	return 0, fmt.Errorf("invalid slice type %q (must be inline, xline, or sample)", s)
}

// SliceIndices holds the zero-based slice position along each axis.
type SliceIndices struct {
	Inline int
	Xline  int
	Sample int
}

// Get returns the index for the given axis.
func (s SliceIndices) Get(t SliceType) int {
	switch t {
	case InlineSlice:
		return s.Inline
	case XlineSlice:
		return s.Xline
	default:
		return s.Sample
	}
}

// With returns a copy of s with the given axis set to idx.
func (s SliceIndices) With(t SliceType, idx int) SliceIndices {
	switch t {
	case InlineSlice:
		s.Inline = idx
	case XlineSlice:
		s.Xline = idx
	default:
		s.Sample = idx
	}
	return s
}

// SliceVisibility holds the independent visibility toggle for each slice.
// Any subset may be active at once, including none.
type SliceVisibility struct {
	Inline bool
	Xline  bool
	Sample bool
}

// Get returns the visibility flag for the given axis.
func (v SliceVisibility) Get(t SliceType) bool {
	switch t {
	case InlineSlice:
		return v.Inline
	case XlineSlice:
		return v.Xline
	default:
		return v.Sample
	}
}

// Toggled returns a copy of v with the given axis flipped.
func (v SliceVisibility) Toggled(t SliceType) SliceVisibility {
	switch t {
	case InlineSlice:
		v.Inline = !v.Inline
	case XlineSlice:
		v.Xline = !v.Xline
	default:
		v.Sample = !v.Sample
	}
	return v
}

// Grid is a rectangular 2D array of float64 values. A boundary slice can
// degenerate to a single line; Grid resolves that case once at construction
// so every consumer can rely on two dimensions.
type Grid struct {
	vals [][]float64
}

// NewGrid builds a Grid from row-major values, rejecting ragged input.
func NewGrid(vals [][]float64) (Grid, error) {
	if len(vals) == 0 {
		return Grid{}, fmt.Errorf("grid must have at least one row")
	}
	cols := len(vals[0])
	for i, row := range vals {
		if len(row) != cols {
			return Grid{}, fmt.Errorf("grid row %d has %d values, want %d", i, len(row), cols)
		}
	}
	return Grid{vals: vals}, nil
}

// NewGridFromRow wraps a single row of values as a (1, N) grid.
func NewGridFromRow(row []float64) Grid {
	return Grid{vals: [][]float64{row}}
}

// Rows returns the number of rows, zero for the zero Grid.
func (g Grid) Rows() int { return len(g.vals) }

// Cols returns the number of columns, zero for the zero Grid.
func (g Grid) Cols() int {
	if len(g.vals) == 0 {
		return 0
	}
	return len(g.vals[0])
}

// At returns the value at row r, column c.
func (g Grid) At(r, c int) float64 { return g.vals[r][c] }

// Values returns the underlying row-major values. Callers must not mutate.
func (g Grid) Values() [][]float64 { return g.vals }

// IsZero reports whether the grid holds no data.
func (g Grid) IsZero() bool { return len(g.vals) == 0 }

// Transposed returns a new grid with rows and columns swapped.
func (g Grid) Transposed() Grid {
	if g.IsZero() {
		return Grid{}
	}
	rows, cols := g.Rows(), g.Cols()
	vals := make([][]float64, cols)
	for c := 0; c < cols; c++ {
		vals[c] = make([]float64, rows)
		for r := 0; r < rows; r++ {
			vals[c][r] = g.vals[r][c]
		}
	}
	return Grid{vals: vals}
}

// MarshalJSON encodes the grid as a 2D JSON array.
func (g Grid) MarshalJSON() ([]byte, error) {
	return json.Marshal(g.vals)
}

// UnmarshalJSON accepts either a 2D array or a bare 1D row, wrapping the
// latter into a single-row grid.
func (g *Grid) UnmarshalJSON(data []byte) error {
	var vals [][]float64
	if err := json.Unmarshal(data, &vals); err == nil {
		grid, err := NewGrid(vals)
		if err != nil {
			return err
		}
		*g = grid
		return nil
	}
	var row []float64
	if err := json.Unmarshal(data, &row); err != nil {
		return fmt.Errorf("grid must be a 1D or 2D numeric array: %w", err)
	}
	*g = NewGridFromRow(row)
	return nil
}

// SliceCoordinates carries the physical coordinate vectors for the two free
// axes of a slice: X for the columns of the data grid, Y for the rows.
type SliceCoordinates struct {
	X []float64 `json:"x"`
	Y []float64 `json:"y"`
}

// SlicePayload is the transient sample data for one slice, refetched on
// every index change.
type SlicePayload struct {
	// Data is the 2D sample grid; rows correspond to Coordinates.Y and
	// columns to Coordinates.X.
	Data Grid `json:"data"`

	// Coordinates holds the free-axis coordinate vectors.
	Coordinates SliceCoordinates `json:"coordinates"`
}

// Valid reports whether the payload carries a usable grid with coordinate
// vectors matching its two dimensions.
func (p *SlicePayload) Valid() bool {
	if p == nil || p.Data.IsZero() {
		return false
	}
	return len(p.Coordinates.X) == p.Data.Cols() && len(p.Coordinates.Y) == p.Data.Rows()
}
