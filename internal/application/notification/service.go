package notification

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/nownpp/wonder-science-hub/internal/domain"
	"github.com/nownpp/wonder-science-hub/internal/pkg/id"
)

type NotificationStore interface {
	Put(ctx context.Context, n *domain.Notification) error
	Get(ctx context.Context, notificationID string) (*domain.Notification, error)
	List(ctx context.Context) ([]domain.Notification, error)
	Delete(ctx context.Context, notificationID string) error
}

type VoteStore interface {
	Put(ctx context.Context, v *domain.NotificationVote) error
	ListByNotification(ctx context.Context, notificationID string) ([]domain.NotificationVote, error)
}

// Announcer is the optional broadcast hook fired on create; nil disables it.
type Announcer interface {
	Announce(ctx context.Context, subject, message string) error
}

type Service interface {
	// List returns live announcements, newest first, limited to those visible
	// to the given grade (grade-targeted rows for other grades are dropped;
	// untargeted rows always pass). Empty grade sees everything.
	List(ctx context.Context, grade string) ([]domain.Notification, error)
	Create(ctx context.Context, req domain.CreateNotificationRequest) (*domain.Notification, error)
	Delete(ctx context.Context, notificationID string) error
	CastVote(ctx context.Context, notificationID, userID, vote string) error
	ListVotes(ctx context.Context, notificationID string) ([]domain.NotificationVote, error)
}

type service struct {
	notifications NotificationStore
	votes         VoteStore
	announcer     Announcer
}

func NewService(notifications NotificationStore, votes VoteStore, announcer Announcer) Service {
	return &service{notifications: notifications, votes: votes, announcer: announcer}
}

func (s *service) List(ctx context.Context, grade string) ([]domain.Notification, error) {
	all, err := s.notifications.List(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	visible := make([]domain.Notification, 0, len(all))
	for _, n := range all {
		if n.ExpiresAt != nil && now.After(*n.ExpiresAt) {
			continue
		}
		if grade != "" && n.TargetGrade != nil && *n.TargetGrade != grade {
			continue
		}
		visible = append(visible, n)
	}
	sort.Slice(visible, func(i, j int) bool {
		return visible[i].CreatedAt.After(visible[j].CreatedAt)
	})
	return visible, nil
}

func (s *service) Create(ctx context.Context, req domain.CreateNotificationRequest) (*domain.Notification, error) {
	n := &domain.Notification{
		NotificationID: id.New(),
		Title:          req.Title,
		Content:        req.Content,
		Type:           req.Type,
		AllowVoting:    req.AllowVoting,
		TargetGrade:    req.TargetGrade,
		CreatedAt:      time.Now().UTC(),
	}
	if n.Type == "" {
		n.Type = "info"
	}
	if req.ExpiresAt != nil && *req.ExpiresAt != "" {
		t, err := time.Parse(time.RFC3339, *req.ExpiresAt)
		if err != nil {
			return nil, fmt.Errorf("expires_at must be RFC 3339: %w", domain.ErrBadRequest)
		}
		n.ExpiresAt = &t
	}
	if err := s.notifications.Put(ctx, n); err != nil {
		return nil, err
	}
	if s.announcer != nil {
		// Broadcast is best effort; the row is already persisted.
		if err := s.announcer.Announce(ctx, n.Title, n.Content); err != nil {
			slog.Warn("announcement broadcast failed", "notification_id", n.NotificationID, "err", err)
		}
	}
	return n, nil
}

func (s *service) Delete(ctx context.Context, notificationID string) error {
	return s.notifications.Delete(ctx, notificationID)
}

func (s *service) CastVote(ctx context.Context, notificationID, userID, vote string) error {
	n, err := s.notifications.Get(ctx, notificationID)
	if err != nil {
		return err
	}
	if !n.AllowVoting {
		return fmt.Errorf("voting is disabled for this announcement: %w", domain.ErrForbidden)
	}
	return s.votes.Put(ctx, &domain.NotificationVote{
		NotificationID: notificationID,
		UserID:         userID,
		Vote:           vote,
		CreatedAt:      time.Now().UTC(),
	})
}

func (s *service) ListVotes(ctx context.Context, notificationID string) ([]domain.NotificationVote, error) {
	return s.votes.ListByNotification(ctx, notificationID)
}
