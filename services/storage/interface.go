package storage

import (
	"context"
	"io"
)

// Asset is an uploaded media file.
type Asset struct {
	PublicID string
	URL      string
}

// MediaStore stores vendor portfolio media.
type MediaStore interface {
	Upload(ctx context.Context, file io.Reader, folder, name string) (Asset, error)
	Delete(ctx context.Context, publicID string) error
}

// PortfolioFolder is where a service's portfolio images live.
func PortfolioFolder(serviceID string) string {
	return "portfolio/" + serviceID
}
