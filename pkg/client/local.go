package client

import (
	"context"

	"seiscube/internal/models"
	"seiscube/pkg/cube"
)

// LocalFetcher serves an in-memory volume through the Fetcher interface,
// for offline viewing and tests.
type LocalFetcher struct {
	vol *cube.Volume
}

// NewLocalFetcher wraps a volume.
func NewLocalFetcher(vol *cube.Volume) *LocalFetcher {
	return &LocalFetcher{vol: vol}
}

// CubeInfo computes the volume's descriptor.
func (f *LocalFetcher) CubeInfo(_ context.Context) (*models.CubeDescriptor, error) {
	return f.vol.Info(), nil
}

// Slice extracts one slice payload from the volume.
func (f *LocalFetcher) Slice(_ context.Context, t models.SliceType, idx int) (*models.SlicePayload, error) {
	return f.vol.Slice(t, idx)
}
