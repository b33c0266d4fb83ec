package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nownpp/wonder-science-hub/internal/domain"
)

type mockVideoStore struct{ mock.Mock }

func (m *mockVideoStore) Put(ctx context.Context, v *domain.Video) error {
	return m.Called(ctx, v).Error(0)
}
func (m *mockVideoStore) Get(ctx context.Context, videoID string) (*domain.Video, error) {
	args := m.Called(ctx, videoID)
	if v, _ := args.Get(0).(*domain.Video); v != nil {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockVideoStore) List(ctx context.Context, category, grade string) ([]domain.Video, error) {
	args := m.Called(ctx, category, grade)
	return args.Get(0).([]domain.Video), args.Error(1)
}
func (m *mockVideoStore) Update(ctx context.Context, videoID string, updates map[string]interface{}) error {
	return m.Called(ctx, videoID, updates).Error(0)
}
func (m *mockVideoStore) IncrementViews(ctx context.Context, videoID string) error {
	return m.Called(ctx, videoID).Error(0)
}
func (m *mockVideoStore) Delete(ctx context.Context, videoID string) error {
	return m.Called(ctx, videoID).Error(0)
}

func strPtr(s string) *string { return &s }

func newVideoService(videos *mockVideoStore) Service {
	return NewService(videos, nil, nil)
}

func TestCreateVideo_AssignsIDAndDefaults(t *testing.T) {
	videos := &mockVideoStore{}
	var stored *domain.Video
	videos.On("Put", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*domain.Video)
	}).Return(nil)

	svc := newVideoService(videos)
	v, err := svc.CreateVideo(context.Background(), domain.CreateVideoRequest{
		Title: "Volcano eruptions", VideoURL: "https://cdn.example.com/v.mp4",
	})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEmpty(t, v.VideoID)
	assert.Equal(t, "general", v.Category)
	assert.Zero(t, v.ViewsCount)
	assert.False(t, v.CreatedAt.IsZero())
}

func TestCreateVideo_KeepsExplicitCategory(t *testing.T) {
	videos := &mockVideoStore{}
	videos.On("Put", mock.Anything, mock.Anything).Return(nil)

	svc := newVideoService(videos)
	v, err := svc.CreateVideo(context.Background(), domain.CreateVideoRequest{
		Title: "Gravity", VideoURL: "https://cdn.example.com/g.mp4", Category: "physics",
	})

	require.NoError(t, err)
	assert.Equal(t, "physics", v.Category)
}

func TestUpdateVideo_OnlySendsSetFields(t *testing.T) {
	videos := &mockVideoStore{}
	videos.On("Update", mock.Anything, "v1", map[string]interface{}{
		"title":    "New title",
		"category": "chemistry",
	}).Return(nil)

	svc := newVideoService(videos)
	err := svc.UpdateVideo(context.Background(), "v1", domain.UpdateVideoRequest{
		Title:    strPtr("New title"),
		Category: strPtr("chemistry"),
	})

	require.NoError(t, err)
	videos.AssertExpectations(t)
}

func TestUpdateVideo_NoFieldsIsNoop(t *testing.T) {
	videos := &mockVideoStore{}
	svc := newVideoService(videos)

	err := svc.UpdateVideo(context.Background(), "v1", domain.UpdateVideoRequest{})

	require.NoError(t, err)
	videos.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestListVideos_PassesFilter(t *testing.T) {
	videos := &mockVideoStore{}
	videos.On("List", mock.Anything, "physics", "5").Return([]domain.Video{{VideoID: "v1"}}, nil)

	svc := newVideoService(videos)
	got, err := svc.ListVideos(context.Background(), Filter{Category: "physics", Grade: "5"})

	require.NoError(t, err)
	assert.Len(t, got, 1)
	videos.AssertExpectations(t)
}

func TestRecordView_Propagates(t *testing.T) {
	videos := &mockVideoStore{}
	videos.On("IncrementViews", mock.Anything, "missing").Return(domain.ErrNotFound)

	svc := newVideoService(videos)
	err := svc.RecordView(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
