package progress

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nownpp/wonder-science-hub/internal/domain"
)

type ProgressStore interface {
	Put(ctx context.Context, p *domain.StudentProgress) error
	Get(ctx context.Context, userID, contentKey string) (*domain.StudentProgress, error)
	ListByUser(ctx context.Context, userID string) ([]domain.StudentProgress, error)
}

type Service interface {
	// Upsert merges the request into the student's existing record for the
	// content item (creating it on first touch). Time spent accumulates;
	// completion and percentage only move forward via explicit values.
	Upsert(ctx context.Context, userID string, req domain.UpsertProgressRequest) (*domain.StudentProgress, error)
	ListByUser(ctx context.Context, userID string) ([]domain.StudentProgress, error)
}

type service struct {
	store ProgressStore
}

func NewService(store ProgressStore) Service {
	return &service{store: store}
}

func (s *service) Upsert(ctx context.Context, userID string, req domain.UpsertProgressRequest) (*domain.StudentProgress, error) {
	key := ContentKey(req.ContentType, req.ContentID)
	record, err := s.store.Get(ctx, userID, key)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		record = &domain.StudentProgress{
			UserID:      userID,
			ContentKey:  key,
			ContentType: req.ContentType,
			ContentID:   req.ContentID,
		}
	}
	if req.Completed != nil {
		record.Completed = *req.Completed
	}
	if req.ProgressPercentage != nil {
		record.ProgressPercentage = *req.ProgressPercentage
	}
	if req.TimeSpentSeconds != nil {
		record.TimeSpentSeconds += *req.TimeSpentSeconds
	}
	record.LastAccessedAt = time.Now().UTC()

	if err := s.store.Put(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *service) ListByUser(ctx context.Context, userID string) ([]domain.StudentProgress, error) {
	return s.store.ListByUser(ctx, userID)
}

// ContentKey builds the sort key joining content type and id.
func ContentKey(contentType, contentID string) string {
	return fmt.Sprintf("%s#%s", contentType, contentID)
}
