package domain

import "time"

// Simulation is an interactive experiment. It either links out to an external
// URL or embeds its own HTML document (authored in the dashboard editor).
type Simulation struct {
	SimulationID  string    `json:"id" dynamodbav:"simulation_id"`
	Title         string    `json:"title" dynamodbav:"title"`
	Description   *string   `json:"description" dynamodbav:"description"`
	SimulationURL *string   `json:"simulation_url" dynamodbav:"simulation_url"`
	HTMLCode      *string   `json:"html_code" dynamodbav:"html_code"`
	ThumbnailURL  *string   `json:"thumbnail_url" dynamodbav:"thumbnail_url"`
	Category      string    `json:"category" dynamodbav:"category"`
	Grade         *string   `json:"grade" dynamodbav:"grade"`
	Difficulty    *string   `json:"difficulty" dynamodbav:"difficulty"`
	PlaysCount    int64     `json:"plays_count" dynamodbav:"plays_count"`
	CreatedAt     time.Time `json:"created_at" dynamodbav:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" dynamodbav:"updated_at"`
}

type CreateSimulationRequest struct {
	Title         string  `json:"title" validate:"required"`
	Description   *string `json:"description"`
	SimulationURL *string `json:"simulation_url" validate:"omitempty,url"`
	HTMLCode      *string `json:"html_code"`
	ThumbnailURL  *string `json:"thumbnail_url"`
	Category      string  `json:"category"`
	Grade         *string `json:"grade"`
	Difficulty    *string `json:"difficulty"`
}

type UpdateSimulationRequest struct {
	Title         *string `json:"title"`
	Description   *string `json:"description"`
	SimulationURL *string `json:"simulation_url" validate:"omitempty,url"`
	HTMLCode      *string `json:"html_code"`
	ThumbnailURL  *string `json:"thumbnail_url"`
	Category      *string `json:"category"`
	Grade         *string `json:"grade"`
	Difficulty    *string `json:"difficulty"`
}
