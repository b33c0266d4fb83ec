package asset

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nownpp/wonder-science-hub/internal/domain"
)

type mockObjectStore struct{ mock.Mock }

func (m *mockObjectStore) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, r, contentType)
	return args.String(0), args.Error(1)
}
func (m *mockObjectStore) PresignedURL(ctx context.Context, key string, ttl time.Duration) (string, error) {
	args := m.Called(ctx, key, ttl)
	return args.String(0), args.Error(1)
}
func (m *mockObjectStore) Delete(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func TestUpload_GeneratesKeyInFolder(t *testing.T) {
	store := &mockObjectStore{}
	store.On("Upload", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "thumbnails/") && strings.HasSuffix(key, ".png")
	}), mock.Anything, "image/png").Return("s3://bucket/key", nil)
	store.On("PresignedURL", mock.Anything, mock.Anything, mock.Anything).Return("https://signed.example.com/x", nil)

	svc := NewService(store)
	uploaded, err := svc.Upload(context.Background(), FolderThumbnails, "volcano.PNG", strings.NewReader("img"), "image/png")

	require.NoError(t, err)
	assert.Equal(t, "https://signed.example.com/x", uploaded.URL)
	assert.NotContains(t, uploaded.Key, "volcano", "client filename must not leak into the key")
	store.AssertExpectations(t)
}

func TestUpload_RejectsUnknownFolder(t *testing.T) {
	svc := NewService(&mockObjectStore{})
	_, err := svc.Upload(context.Background(), "secrets", "x.pdf", strings.NewReader("doc"), "application/pdf")
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}
