package asset

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/nownpp/wonder-science-hub/internal/domain"
	"github.com/nownpp/wonder-science-hub/internal/pkg/id"
)

// ObjectStore is the S3 contract for content assets.
type ObjectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
	PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error)
	Delete(ctx context.Context, key string) error
}

// Uploaded describes a stored asset.
type Uploaded struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

// Folders assets can be uploaded into.
const (
	FolderThumbnails = "thumbnails"
	FolderFiles      = "files"
)

const presignTTL = 15 * time.Minute

type Service interface {
	// Upload stores the stream under a fresh key in the folder and returns a
	// presigned URL usable immediately by the client.
	Upload(ctx context.Context, folder, filename string, r io.Reader, contentType string) (*Uploaded, error)
	// Link returns a time-limited download URL for an existing key.
	Link(ctx context.Context, key string) (string, error)
	Remove(ctx context.Context, key string) error
}

type service struct {
	store ObjectStore
}

func NewService(store ObjectStore) Service {
	return &service{store: store}
}

func (s *service) Upload(ctx context.Context, folder, filename string, r io.Reader, contentType string) (*Uploaded, error) {
	if folder != FolderThumbnails && folder != FolderFiles {
		return nil, fmt.Errorf("unknown asset folder %q: %w", folder, domain.ErrBadRequest)
	}
	ext := strings.ToLower(path.Ext(filename))
	key := fmt.Sprintf("%s/%s%s", folder, id.New(), ext)
	if _, err := s.store.Upload(ctx, key, r, contentType); err != nil {
		return nil, err
	}
	url, err := s.store.PresignedURL(ctx, key, presignTTL)
	if err != nil {
		return nil, err
	}
	return &Uploaded{Key: key, URL: url}, nil
}

func (s *service) Link(ctx context.Context, key string) (string, error) {
	return s.store.PresignedURL(ctx, key, presignTTL)
}

func (s *service) Remove(ctx context.Context, key string) error {
	return s.store.Delete(ctx, key)
}
