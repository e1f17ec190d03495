package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

var ErrNotConfigured = errors.New("cloudinary credentials not set in configuration")

// CloudinaryStore implements MediaStore on Cloudinary.
type CloudinaryStore struct {
	cld    *cloudinary.Cloudinary
	logger *zap.Logger
}

// NewCloudinaryStore connects with explicit credentials.
func NewCloudinaryStore(cloudName, apiKey, apiSecret string, logger *zap.Logger) (*CloudinaryStore, error) {
	if cloudName == "" || apiKey == "" || apiSecret == "" {
		return nil, ErrNotConfigured
	}
	cld, err := cloudinary.NewFromParams(cloudName, apiKey, apiSecret)
	if err != nil {
		return nil, fmt.Errorf("storage: failed to initialize Cloudinary: %w", err)
	}
	return NewCloudinaryStoreWithClient(cld, logger), nil
}

func NewCloudinaryStoreWithClient(cld *cloudinary.Cloudinary, logger *zap.Logger) *CloudinaryStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CloudinaryStore{cld: cld, logger: logger}
}

// Upload stores file under folder. name (usually the original filename)
// seeds the public ID; Cloudinary appends a unique suffix.
func (s *CloudinaryStore) Upload(ctx context.Context, file io.Reader, folder, name string) (Asset, error) {
	params := uploader.UploadParams{
		Folder:         folder,
		UseFilename:    api.Bool(true),
		UniqueFilename: api.Bool(true),
		Overwrite:      api.Bool(false),
	}
	if base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name)); base != "" && base != "." {
		params.FilenameOverride = base
	}

	resp, err := s.cld.Upload.Upload(ctx, file, params)
	if err != nil {
		return Asset{}, fmt.Errorf("storage: upload failed: %w", err)
	}
	if resp.Error.Message != "" {
		return Asset{}, fmt.Errorf("storage: upload rejected: %s", resp.Error.Message)
	}

	s.logger.Info("media uploaded", zap.String("publicId", resp.PublicID), zap.String("folder", folder))
	return Asset{PublicID: resp.PublicID, URL: resp.SecureURL}, nil
}

// Delete removes an asset by public ID.
func (s *CloudinaryStore) Delete(ctx context.Context, publicID string) error {
	resp, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("storage: delete %s failed: %w", publicID, err)
	}
	if resp.Error.Message != "" {
		return fmt.Errorf("storage: delete %s rejected: %s", publicID, resp.Error.Message)
	}
	return nil
}
