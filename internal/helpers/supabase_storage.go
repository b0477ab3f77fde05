package helpers

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	storage_go "github.com/supabase-community/storage-go"
)

const storagePath = "/storage/v1"

// SupabaseStorage keeps images in a public Supabase Storage bucket.
//
// storage-go writes per-upload headers into the client it was called on, so
// every call gets its own client instead of sharing the one on supabase.Client.
type SupabaseStorage struct {
	url    string
	key    string
	bucket string
}

func NewSupabaseStorage(supabaseURL, apiKey, bucket string) *SupabaseStorage {
	return &SupabaseStorage{
		url:    strings.TrimSuffix(supabaseURL, "/"),
		key:    apiKey,
		bucket: bucket,
	}
}

func (s *SupabaseStorage) newClient() *storage_go.Client {
	return storage_go.NewClient(s.url+storagePath, s.key, map[string]string{"apikey": s.key})
}

// escapeKey escapes each segment of key; storage-go joins paths into URLs
// without escaping them.
func escapeKey(key string) string {
	segments := strings.Split(key, "/")
	for i, seg := range segments {
		segments[i] = url.PathEscape(seg)
	}
	return strings.Join(segments, "/")
}

func (s *SupabaseStorage) Upload(ctx context.Context, key string, content []byte, contentType string) (string, error) {
	client := s.newClient()
	escaped := escapeKey(key)

	upsert := false
	_, err := client.UploadFile(s.bucket, escaped, bytes.NewReader(content), storage_go.FileOptions{
		ContentType: &contentType,
		Upsert:      &upsert,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload %s to bucket %s: %w", key, s.bucket, err)
	}

	publicURL := client.GetPublicUrl(s.bucket, escaped).SignedURL
	if publicURL == "" {
		return "", fmt.Errorf("no public url for %s", key)
	}
	return publicURL, nil
}

func (s *SupabaseStorage) Delete(ctx context.Context, key string) error {
	if _, err := s.newClient().RemoveFile(s.bucket, []string{key}); err != nil {
		return fmt.Errorf("failed to remove %s from bucket %s: %w", key, s.bucket, err)
	}
	return nil
}
