// Package client is the viewer's fetch boundary: it retrieves cube metadata
// and slice payloads either from the backend HTTP API or from an in-memory
// volume. The viewer treats a failed fetch as an absent payload for that
// axis, so partial data degrades the scene instead of aborting it.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"seiscube/internal/models"
)

// Fetcher retrieves cube metadata and slice payloads.
type Fetcher interface {
	// CubeInfo returns the current cube descriptor.
	CubeInfo(ctx context.Context) (*models.CubeDescriptor, error)

	// Slice returns the payload for one slice, keyed by type and index.
	Slice(ctx context.Context, t models.SliceType, idx int) (*models.SlicePayload, error)
}

// UploadResult is the server's response to a successful cube upload. The
// cube and session identifiers are opaque to the viewer.
type UploadResult struct {
	Message   string                `json:"message"`
	Files     []string              `json:"files"`
	CubeInfo  models.CubeDescriptor `json:"cube_info"`
	CubeID    string                `json:"cube_id"`
	SessionID string                `json:"session_id"`
}

// HTTPClient talks to the seismic cube backend API.
type HTTPClient struct {
	baseURL string
	httpc   *http.Client
}

// NewHTTPClient builds a client for the given base URL ("http://host:5000").
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		baseURL: baseURL,
		httpc:   &http.Client{Timeout: timeout},
	}
}

// CubeInfo fetches the descriptor of the currently loaded cube.
func (c *HTTPClient) CubeInfo(ctx context.Context) (*models.CubeDescriptor, error) {
	var info models.CubeDescriptor
	if err := c.getJSON(ctx, "/api/cube-info", &info); err != nil {
		return nil, &models.FetchError{Op: "cube-info", Err: err}
	}
	return &info, nil
}

// Slice fetches one slice payload.
//
// The backend emits depth slices with rows following the inline axis, i.e.
// transposed against the rows-follow-Y payload contract the inline and
// crossline slices already satisfy. Normalize here so consumers see one
// orientation regardless of slice type.
func (c *HTTPClient) Slice(ctx context.Context, t models.SliceType, idx int) (*models.SlicePayload, error) {
	var payload models.SlicePayload
	path := fmt.Sprintf("/api/slice/%s/%d", t, idx)
	if err := c.getJSON(ctx, path, &payload); err != nil {
		return nil, &models.FetchError{Op: fmt.Sprintf("slice %s %d", t, idx), Err: err}
	}
	if t == models.SampleSlice {
		payload.Data = payload.Data.Transposed()
	}
	return &payload, nil
}

// Health checks that the backend is reachable.
func (c *HTTPClient) Health(ctx context.Context) error {
	var status struct {
		Status string `json:"status"`
	}
	if err := c.getJSON(ctx, "/api/health", &status); err != nil {
		return &models.FetchError{Op: "health", Err: err}
	}
	return nil
}

// Upload posts one already-decoded seismic file to the backend and returns
// the new cube's descriptor and identifiers.
func (c *HTTPClient) Upload(ctx context.Context, filename string, r io.Reader) (*UploadResult, error) {
	pr, pw := io.Pipe()
	mw := multipart.NewWriter(pw)
	go func() {
		part, err := mw.CreateFormFile("files", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, r); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(mw.Close())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/upload", pr)
	if err != nil {
		return nil, &models.FetchError{Op: "upload", Err: err}
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, &models.FetchError{Op: "upload", Err: err}
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, &models.FetchError{Op: "upload", Err: err}
	}
	var result UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, &models.FetchError{Op: "upload", Err: fmt.Errorf("decoding response: %w", err)}
	}
	return &result, nil
}

func (c *HTTPClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// checkStatus turns a non-2xx response into an error carrying the server's
// error message when it sent one.
func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		return fmt.Errorf("server returned %s: %s", resp.Status, body.Error)
	}
	return fmt.Errorf("server returned %s", resp.Status)
}
