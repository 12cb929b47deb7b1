package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seiscube/internal/models"
	"seiscube/pkg/cube"
	"seiscube/pkg/scene"
)

const cubeInfoJSON = `{
	"shape": [3, 3, 3],
	"inline_range": {"min": 100, "max": 102, "count": 3},
	"xline_range": {"min": 200, "max": 202, "count": 3},
	"sample_range": {"min": 0.0, "max": 8.0, "count": 3},
	"amplitude_range": {
		"actual_min": -2.5, "actual_max": 2.5,
		"display_min": -1.0, "display_max": 1.0,
		"mean": 0.0, "std": 0.8,
		"p1": -2.0, "p5": -1.0, "p95": 1.0, "p99": 2.0
	},
	"geometry": {"inline_azimuth": 45.0, "xline_azimuth": 135.0, "has_coordinates": true},
	"memory_usage_mb": 0.2
}`

func TestCubeInfoDecodesBackendDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/cube-info", r.URL.Path)
		_, _ = io.WriteString(w, cubeInfoJSON)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	info, err := c.CubeInfo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, [3]int{3, 3, 3}, info.Shape)
	assert.Equal(t, 100.0, info.InlineRange.Min)
	assert.Equal(t, 3, info.SampleRange.Count)
	require.NotNil(t, info.Amplitude.DisplayMin)
	assert.Equal(t, -1.0, *info.Amplitude.DisplayMin)
	require.NotNil(t, info.Geometry.InlineAzimuth)
	assert.Equal(t, 45.0, *info.Geometry.InlineAzimuth)
	assert.True(t, info.Geometry.HasCoordinates)
}

func TestSliceDecodesPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/slice/inline/2", r.URL.Path)
		_, _ = io.WriteString(w, `{
			"data": [[1, 2], [3, 4]],
			"coordinates": {"x": [200, 201], "y": [0, 4]}
		}`)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	payload, err := c.Slice(context.Background(), models.InlineSlice, 2)
	require.NoError(t, err)

	assert.True(t, payload.Valid())
	assert.Equal(t, 2, payload.Data.Rows())
	assert.Equal(t, 4.0, payload.Data.At(1, 1))
}

// TestSliceNormalizesSampleOrientation covers the backend's depth-slice
// layout for a non-square 3 inline x 2 crossline survey: data arrives with
// rows following the inline axis and must come out rows-follow-Y, with
// every amplitude still under its original (inline, crossline) pair.
func TestSliceNormalizesSampleOrientation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/slice/sample/1", r.URL.Path)
		_, _ = io.WriteString(w, `{
			"data": [[1, 2], [3, 4], [5, 6]],
			"coordinates": {"x": [100, 101, 102], "y": [200, 201]}
		}`)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	payload, err := c.Slice(context.Background(), models.SampleSlice, 1)
	require.NoError(t, err)

	require.True(t, payload.Valid())
	assert.Equal(t, 2, payload.Data.Rows())
	assert.Equal(t, 3, payload.Data.Cols())
	// Row 0 is crossline 200 across inlines 100..102, row 1 crossline 201.
	assert.Equal(t, [][]float64{{1, 3, 5}, {2, 4, 6}}, payload.Data.Values())
	assert.Equal(t, []float64{100, 101, 102}, payload.Coordinates.X)
	assert.Equal(t, []float64{200, 201}, payload.Coordinates.Y)
}

func TestSliceWrapsDegenerateRow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{
			"data": [5, 6, 7],
			"coordinates": {"x": [200, 201, 202], "y": [0]}
		}`)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	payload, err := c.Slice(context.Background(), models.InlineSlice, 0)
	require.NoError(t, err)

	assert.Equal(t, 1, payload.Data.Rows())
	assert.Equal(t, 3, payload.Data.Cols())
	assert.True(t, payload.Valid())
}

func TestServerErrorBecomesFetchError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"error": "Index 99 out of bounds for inline (max: 2)"}`)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	_, err := c.Slice(context.Background(), models.InlineSlice, 99)
	require.Error(t, err)

	var fetchErr *models.FetchError
	require.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, fetchErr.Error(), "out of bounds")
}

func TestUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/upload", r.URL.Path)

		file, header, err := r.FormFile("files")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "survey.sgy", header.Filename)

		body, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "fake seismic bytes", string(body))

		_, _ = io.WriteString(w, `{
			"message": "Files uploaded and processed successfully",
			"files": ["survey.sgy"],
			"cube_info": `+cubeInfoJSON+`,
			"cube_id": "663d2a",
			"session_id": "abc123"
		}`)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	result, err := c.Upload(context.Background(), "survey.sgy", strings.NewReader("fake seismic bytes"))
	require.NoError(t, err)

	assert.Equal(t, "663d2a", result.CubeID)
	assert.Equal(t, "abc123", result.SessionID)
	assert.Equal(t, [3]int{3, 3, 3}, result.CubeInfo.Shape)
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"status": "healthy"}`)
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, time.Second)
	assert.NoError(t, c.Health(context.Background()))
}

// TestLocalFetcherEndToEnd walks the full pipeline offline: a demo-sized
// volume served through the Fetcher boundary, composed into a scene whose
// inline surface sits at the expected trace coordinate.
func TestLocalFetcherEndToEnd(t *testing.T) {
	vol := cube.Demo(3, 3, 3)
	f := NewLocalFetcher(vol)
	ctx := context.Background()

	info, err := f.CubeInfo(ctx)
	require.NoError(t, err)
	assert.Equal(t, [3]int{3, 3, 3}, info.Shape)
	assert.Equal(t, 100.0, info.InlineRange.Min)
	assert.Equal(t, 102.0, info.InlineRange.Max)

	payload, err := f.Slice(ctx, models.InlineSlice, 1)
	require.NoError(t, err)
	require.True(t, payload.Valid())

	plan, err := scene.Compose(scene.ViewState{
		Cube:       info,
		Indices:    models.SliceIndices{Inline: 1},
		Visibility: models.SliceVisibility{Inline: true},
		Payloads:   map[models.SliceType]*models.SlicePayload{models.InlineSlice: payload},
		Color:      models.ColorSpec{Scheme: "seismic"},
	})
	require.NoError(t, err)

	var surf *models.Surface
	for _, p := range plan.Primitives {
		if s, ok := p.(models.Surface); ok {
			surf = &s
			break
		}
	}
	require.NotNil(t, surf, "expected the inline surface in the plan")
	assert.Equal(t, 101.0, surf.XMesh.At(0, 0), "inline slice 1 must sit at trace 101")
	assert.Equal(t, "Inline 101", surf.Label)
}
