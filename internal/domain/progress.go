package domain

import "time"

// Content types a progress record can point at.
const (
	ContentVideo      = "video"
	ContentSimulation = "simulation"
	ContentFile       = "file"
)

// StudentProgress tracks one student's progress on one piece of content.
// PK: user_id, SK: content_key ("<content_type>#<content_id>").
type StudentProgress struct {
	UserID             string    `json:"user_id" dynamodbav:"user_id"`
	ContentKey         string    `json:"-" dynamodbav:"content_key"`
	ContentType        string    `json:"content_type" dynamodbav:"content_type"`
	ContentID          string    `json:"content_id" dynamodbav:"content_id"`
	Completed          bool      `json:"completed" dynamodbav:"completed"`
	ProgressPercentage int       `json:"progress_percentage" dynamodbav:"progress_percentage"`
	TimeSpentSeconds   int64     `json:"time_spent_seconds" dynamodbav:"time_spent_seconds"`
	LastAccessedAt     time.Time `json:"last_accessed_at" dynamodbav:"last_accessed_at"`
}

type UpsertProgressRequest struct {
	ContentType        string `json:"content_type" validate:"required,oneof=video simulation file"`
	ContentID          string `json:"content_id" validate:"required"`
	Completed          *bool  `json:"completed"`
	ProgressPercentage *int   `json:"progress_percentage" validate:"omitempty,min=0,max=100"`
	TimeSpentSeconds   *int64 `json:"time_spent_seconds" validate:"omitempty,min=0"`
}
