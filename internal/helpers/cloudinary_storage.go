package helpers

import (
	"bytes"
	"context"
	"fmt"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// CloudinaryStorage keeps images as Cloudinary assets. Public ids are the
// storage key without its file extension.
type CloudinaryStorage struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryStorage(cld *cloudinary.Cloudinary) *CloudinaryStorage {
	return &CloudinaryStorage{cld: cld}
}

func cloudinaryPublicID(key string) string {
	return strings.TrimSuffix(key, path.Ext(key))
}

func (s *CloudinaryStorage) Upload(ctx context.Context, key string, content []byte, contentType string) (string, error) {
	overwrite := false
	uploadResult, err := s.cld.Upload.Upload(ctx, bytes.NewReader(content), uploader.UploadParams{
		PublicID:  cloudinaryPublicID(key),
		Overwrite: &overwrite,
		Tags:      []string{"eventboard"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image %s: %w", key, err)
	}
	if uploadResult.Error.Message != "" {
		return "", fmt.Errorf("failed to upload image %s: %s", key, uploadResult.Error.Message)
	}
	if uploadResult.SecureURL == "" {
		return "", fmt.Errorf("no secure url for %s", key)
	}

	return uploadResult.SecureURL, nil
}

func (s *CloudinaryStorage) Delete(ctx context.Context, key string) error {
	res, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: cloudinaryPublicID(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete image %s: %w", key, err)
	}
	if res.Error.Message != "" {
		return fmt.Errorf("failed to delete image %s: %s", key, res.Error.Message)
	}
	return nil
}
