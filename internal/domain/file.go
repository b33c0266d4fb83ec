package domain

import "time"

// StudyFile is a downloadable document (worksheet, summary, exam PDF).
type StudyFile struct {
	FileID         string    `json:"id" dynamodbav:"file_id"`
	Title          string    `json:"title" dynamodbav:"title"`
	Description    *string   `json:"description" dynamodbav:"description"`
	FileURL        string    `json:"file_url" dynamodbav:"file_url"`
	ThumbnailURL   *string   `json:"thumbnail_url" dynamodbav:"thumbnail_url"`
	Category       string    `json:"category" dynamodbav:"category"`
	Grade          *string   `json:"grade" dynamodbav:"grade"`
	DownloadsCount int64     `json:"downloads_count" dynamodbav:"downloads_count"`
	CreatedAt      time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

type CreateStudyFileRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  *string `json:"description"`
	FileURL      string  `json:"file_url" validate:"required,url"`
	ThumbnailURL *string `json:"thumbnail_url"`
	Category     string  `json:"category"`
	Grade        *string `json:"grade"`
}

type UpdateStudyFileRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	FileURL      *string `json:"file_url" validate:"omitempty,url"`
	ThumbnailURL *string `json:"thumbnail_url"`
	Category     *string `json:"category"`
	Grade        *string `json:"grade"`
}
