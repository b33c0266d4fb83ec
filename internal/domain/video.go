package domain

import "time"

type Video struct {
	VideoID      string    `json:"id" dynamodbav:"video_id"`
	Title        string    `json:"title" dynamodbav:"title"`
	Description  *string   `json:"description" dynamodbav:"description"`
	VideoURL     string    `json:"video_url" dynamodbav:"video_url"`
	ThumbnailURL *string   `json:"thumbnail_url" dynamodbav:"thumbnail_url"`
	Category     string    `json:"category" dynamodbav:"category"`
	Grade        *string   `json:"grade" dynamodbav:"grade"`
	ViewsCount   int64     `json:"views_count" dynamodbav:"views_count"`
	CreatedAt    time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

type CreateVideoRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  *string `json:"description"`
	VideoURL     string  `json:"video_url" validate:"required,url"`
	ThumbnailURL *string `json:"thumbnail_url"`
	Category     string  `json:"category"`
	Grade        *string `json:"grade"`
}

type UpdateVideoRequest struct {
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	VideoURL     *string `json:"video_url" validate:"omitempty,url"`
	ThumbnailURL *string `json:"thumbnail_url"`
	Category     *string `json:"category"`
	Grade        *string `json:"grade"`
}
