package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/nownpp/wonder-science-hub/internal/domain"
)

// --- mocks ---

type mockNotificationStore struct{ mock.Mock }

func (m *mockNotificationStore) Put(ctx context.Context, n *domain.Notification) error {
	return m.Called(ctx, n).Error(0)
}
func (m *mockNotificationStore) Get(ctx context.Context, notificationID string) (*domain.Notification, error) {
	args := m.Called(ctx, notificationID)
	if n, _ := args.Get(0).(*domain.Notification); n != nil {
		return n, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockNotificationStore) List(ctx context.Context) ([]domain.Notification, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Notification), args.Error(1)
}
func (m *mockNotificationStore) Delete(ctx context.Context, notificationID string) error {
	return m.Called(ctx, notificationID).Error(0)
}

type mockVoteStore struct{ mock.Mock }

func (m *mockVoteStore) Put(ctx context.Context, v *domain.NotificationVote) error {
	return m.Called(ctx, v).Error(0)
}
func (m *mockVoteStore) ListByNotification(ctx context.Context, notificationID string) ([]domain.NotificationVote, error) {
	args := m.Called(ctx, notificationID)
	return args.Get(0).([]domain.NotificationVote), args.Error(1)
}

type mockAnnouncer struct{ mock.Mock }

func (m *mockAnnouncer) Announce(ctx context.Context, subject, message string) error {
	return m.Called(ctx, subject, message).Error(0)
}

// --- List ---

func TestList_FiltersExpiredAndOtherGrades(t *testing.T) {
	grade5 := "5"
	grade6 := "6"
	expired := time.Now().Add(-time.Hour)
	store := &mockNotificationStore{}
	store.On("List", mock.Anything).Return([]domain.Notification{
		{NotificationID: "a", Title: "everyone", CreatedAt: time.Now().Add(-3 * time.Hour)},
		{NotificationID: "b", Title: "grade 5 only", TargetGrade: &grade5, CreatedAt: time.Now().Add(-2 * time.Hour)},
		{NotificationID: "c", Title: "grade 6 only", TargetGrade: &grade6, CreatedAt: time.Now().Add(-time.Hour)},
		{NotificationID: "d", Title: "gone", ExpiresAt: &expired, CreatedAt: time.Now()},
	}, nil)

	svc := NewService(store, &mockVoteStore{}, nil)
	visible, err := svc.List(context.Background(), "5")

	require.NoError(t, err)
	require.Len(t, visible, 2)
	// Newest first.
	assert.Equal(t, "b", visible[0].NotificationID)
	assert.Equal(t, "a", visible[1].NotificationID)
}

func TestList_EmptyGradeSeesEverythingLive(t *testing.T) {
	grade5 := "5"
	store := &mockNotificationStore{}
	store.On("List", mock.Anything).Return([]domain.Notification{
		{NotificationID: "a", CreatedAt: time.Now()},
		{NotificationID: "b", TargetGrade: &grade5, CreatedAt: time.Now()},
	}, nil)

	svc := NewService(store, &mockVoteStore{}, nil)
	visible, err := svc.List(context.Background(), "")

	require.NoError(t, err)
	assert.Len(t, visible, 2)
}

// --- Create ---

func TestCreate_DefaultsTypeAndBroadcasts(t *testing.T) {
	store := &mockNotificationStore{}
	announcer := &mockAnnouncer{}
	store.On("Put", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.Type == "info" && n.NotificationID != ""
	})).Return(nil)
	announcer.On("Announce", mock.Anything, "Science fair", "Friday at noon").Return(nil)

	svc := NewService(store, &mockVoteStore{}, announcer)
	n, err := svc.Create(context.Background(), domain.CreateNotificationRequest{
		Title: "Science fair", Content: "Friday at noon",
	})

	require.NoError(t, err)
	assert.Equal(t, "info", n.Type)
	store.AssertExpectations(t)
	announcer.AssertExpectations(t)
}

func TestCreate_BroadcastFailureIsNotFatal(t *testing.T) {
	store := &mockNotificationStore{}
	announcer := &mockAnnouncer{}
	store.On("Put", mock.Anything, mock.Anything).Return(nil)
	announcer.On("Announce", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("sns down"))

	svc := NewService(store, &mockVoteStore{}, announcer)
	_, err := svc.Create(context.Background(), domain.CreateNotificationRequest{Title: "t", Content: "c"})

	assert.NoError(t, err)
}

func TestCreate_ParsesExpiry(t *testing.T) {
	expiry := "2026-09-30T12:00:00Z"
	store := &mockNotificationStore{}
	store.On("Put", mock.Anything, mock.MatchedBy(func(n *domain.Notification) bool {
		return n.ExpiresAt != nil && n.ExpiresAt.Equal(time.Date(2026, 9, 30, 12, 0, 0, 0, time.UTC))
	})).Return(nil)

	svc := NewService(store, &mockVoteStore{}, nil)
	_, err := svc.Create(context.Background(), domain.CreateNotificationRequest{
		Title: "t", Content: "c", ExpiresAt: &expiry,
	})

	require.NoError(t, err)
	store.AssertExpectations(t)
}

func TestCreate_RejectsMalformedExpiry(t *testing.T) {
	expiry := "tomorrow"
	svc := NewService(&mockNotificationStore{}, &mockVoteStore{}, nil)
	_, err := svc.Create(context.Background(), domain.CreateNotificationRequest{
		Title: "t", Content: "c", ExpiresAt: &expiry,
	})
	assert.ErrorIs(t, err, domain.ErrBadRequest)
}

// --- CastVote ---

func TestCastVote_HappyPath(t *testing.T) {
	store := &mockNotificationStore{}
	votes := &mockVoteStore{}
	store.On("Get", mock.Anything, "n1").Return(&domain.Notification{NotificationID: "n1", AllowVoting: true}, nil)
	votes.On("Put", mock.Anything, mock.MatchedBy(func(v *domain.NotificationVote) bool {
		return v.NotificationID == "n1" && v.UserID == "u1" && v.Vote == "yes"
	})).Return(nil)

	svc := NewService(store, votes, nil)
	err := svc.CastVote(context.Background(), "n1", "u1", "yes")

	require.NoError(t, err)
	votes.AssertExpectations(t)
}

func TestCastVote_VotingDisabled(t *testing.T) {
	store := &mockNotificationStore{}
	votes := &mockVoteStore{}
	store.On("Get", mock.Anything, "n1").Return(&domain.Notification{NotificationID: "n1", AllowVoting: false}, nil)

	svc := NewService(store, votes, nil)
	err := svc.CastVote(context.Background(), "n1", "u1", "yes")

	assert.ErrorIs(t, err, domain.ErrForbidden)
	votes.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
}

func TestCastVote_UnknownAnnouncement(t *testing.T) {
	store := &mockNotificationStore{}
	store.On("Get", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	svc := NewService(store, &mockVoteStore{}, nil)
	err := svc.CastVote(context.Background(), "missing", "u1", "yes")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
