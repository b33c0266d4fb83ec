package domain

import "time"

// Notification is an announcement shown on the dashboards. Optionally
// grade-targeted, optionally expiring, optionally open for voting.
type Notification struct {
	NotificationID string     `json:"id" dynamodbav:"notification_id"`
	Title          string     `json:"title" dynamodbav:"title"`
	Content        string     `json:"content" dynamodbav:"content"`
	Type           string     `json:"type" dynamodbav:"type"` // "info" | "event" | "poll"
	AllowVoting    bool       `json:"allow_voting" dynamodbav:"allow_voting"`
	TargetGrade    *string    `json:"target_grade" dynamodbav:"target_grade"`
	ExpiresAt      *time.Time `json:"expires_at" dynamodbav:"expires_at"`
	CreatedAt      time.Time  `json:"created_at" dynamodbav:"created_at"`
}

// NotificationVote is one user's vote on a poll-type announcement.
// PK: notification_id, SK: user_id — casting again overwrites.
type NotificationVote struct {
	NotificationID string    `json:"notification_id" dynamodbav:"notification_id"`
	UserID         string    `json:"user_id" dynamodbav:"user_id"`
	Vote           string    `json:"vote" dynamodbav:"vote"`
	CreatedAt      time.Time `json:"created_at" dynamodbav:"created_at"`
}

type CreateNotificationRequest struct {
	Title       string  `json:"title" validate:"required"`
	Content     string  `json:"content" validate:"required"`
	Type        string  `json:"type"`
	AllowVoting bool    `json:"allow_voting"`
	TargetGrade *string `json:"target_grade"`
	ExpiresAt   *string `json:"expires_at"` // RFC 3339
}

type CastVoteRequest struct {
	Vote string `json:"vote" validate:"required"`
}
