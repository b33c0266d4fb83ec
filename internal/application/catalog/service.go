package catalog

import (
	"context"
	"time"

	"github.com/nownpp/wonder-science-hub/internal/domain"
	"github.com/nownpp/wonder-science-hub/internal/pkg/id"
)

// VideoStore, SimulationStore and StudyFileStore are the persistence contracts
// the catalog needs; the dynamo repos satisfy them.
type VideoStore interface {
	Put(ctx context.Context, v *domain.Video) error
	Get(ctx context.Context, videoID string) (*domain.Video, error)
	List(ctx context.Context, category, grade string) ([]domain.Video, error)
	Update(ctx context.Context, videoID string, updates map[string]interface{}) error
	IncrementViews(ctx context.Context, videoID string) error
	Delete(ctx context.Context, videoID string) error
}

type SimulationStore interface {
	Put(ctx context.Context, s *domain.Simulation) error
	Get(ctx context.Context, simulationID string) (*domain.Simulation, error)
	List(ctx context.Context, category, grade string) ([]domain.Simulation, error)
	Update(ctx context.Context, simulationID string, updates map[string]interface{}) error
	IncrementPlays(ctx context.Context, simulationID string) error
	Delete(ctx context.Context, simulationID string) error
}

type StudyFileStore interface {
	Put(ctx context.Context, f *domain.StudyFile) error
	Get(ctx context.Context, fileID string) (*domain.StudyFile, error)
	List(ctx context.Context, category, grade string) ([]domain.StudyFile, error)
	Update(ctx context.Context, fileID string, updates map[string]interface{}) error
	IncrementDownloads(ctx context.Context, fileID string) error
	Delete(ctx context.Context, fileID string) error
}

// Filter narrows catalog listings; empty fields match everything.
type Filter struct {
	Category string
	Grade    string
}

// Service exposes the content catalog: videos, simulations and study files.
// Listing and counter bumps are public; mutation is handler-gated to teachers.
type Service interface {
	ListVideos(ctx context.Context, f Filter) ([]domain.Video, error)
	GetVideo(ctx context.Context, videoID string) (*domain.Video, error)
	CreateVideo(ctx context.Context, req domain.CreateVideoRequest) (*domain.Video, error)
	UpdateVideo(ctx context.Context, videoID string, req domain.UpdateVideoRequest) error
	DeleteVideo(ctx context.Context, videoID string) error
	RecordView(ctx context.Context, videoID string) error

	ListSimulations(ctx context.Context, f Filter) ([]domain.Simulation, error)
	GetSimulation(ctx context.Context, simulationID string) (*domain.Simulation, error)
	CreateSimulation(ctx context.Context, req domain.CreateSimulationRequest) (*domain.Simulation, error)
	UpdateSimulation(ctx context.Context, simulationID string, req domain.UpdateSimulationRequest) error
	DeleteSimulation(ctx context.Context, simulationID string) error
	RecordPlay(ctx context.Context, simulationID string) error

	ListFiles(ctx context.Context, f Filter) ([]domain.StudyFile, error)
	GetFile(ctx context.Context, fileID string) (*domain.StudyFile, error)
	CreateFile(ctx context.Context, req domain.CreateStudyFileRequest) (*domain.StudyFile, error)
	UpdateFile(ctx context.Context, fileID string, req domain.UpdateStudyFileRequest) error
	DeleteFile(ctx context.Context, fileID string) error
	RecordDownload(ctx context.Context, fileID string) error
}

type service struct {
	videos VideoStore
	sims   SimulationStore
	files  StudyFileStore
}

func NewService(videos VideoStore, sims SimulationStore, files StudyFileStore) Service {
	return &service{videos: videos, sims: sims, files: files}
}

const defaultCategory = "general"

// ── Videos ──────────────────────────────────────────────────────────────────

func (s *service) ListVideos(ctx context.Context, f Filter) ([]domain.Video, error) {
	return s.videos.List(ctx, f.Category, f.Grade)
}

func (s *service) GetVideo(ctx context.Context, videoID string) (*domain.Video, error) {
	return s.videos.Get(ctx, videoID)
}

func (s *service) CreateVideo(ctx context.Context, req domain.CreateVideoRequest) (*domain.Video, error) {
	now := time.Now().UTC()
	v := &domain.Video{
		VideoID:      id.New(),
		Title:        req.Title,
		Description:  req.Description,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Category:     orDefault(req.Category),
		Grade:        req.Grade,
		ViewsCount:   0,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.videos.Put(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) UpdateVideo(ctx context.Context, videoID string, req domain.UpdateVideoRequest) error {
	updates := map[string]interface{}{}
	setStr(updates, "title", req.Title)
	setStr(updates, "description", req.Description)
	setStr(updates, "video_url", req.VideoURL)
	setStr(updates, "thumbnail_url", req.ThumbnailURL)
	setStr(updates, "category", req.Category)
	setStr(updates, "grade", req.Grade)
	if len(updates) == 0 {
		return nil
	}
	return s.videos.Update(ctx, videoID, updates)
}

func (s *service) DeleteVideo(ctx context.Context, videoID string) error {
	return s.videos.Delete(ctx, videoID)
}

func (s *service) RecordView(ctx context.Context, videoID string) error {
	return s.videos.IncrementViews(ctx, videoID)
}

// ── Simulations ─────────────────────────────────────────────────────────────

func (s *service) ListSimulations(ctx context.Context, f Filter) ([]domain.Simulation, error) {
	return s.sims.List(ctx, f.Category, f.Grade)
}

func (s *service) GetSimulation(ctx context.Context, simulationID string) (*domain.Simulation, error) {
	return s.sims.Get(ctx, simulationID)
}

func (s *service) CreateSimulation(ctx context.Context, req domain.CreateSimulationRequest) (*domain.Simulation, error) {
	now := time.Now().UTC()
	sim := &domain.Simulation{
		SimulationID:  id.New(),
		Title:         req.Title,
		Description:   req.Description,
		SimulationURL: req.SimulationURL,
		HTMLCode:      req.HTMLCode,
		ThumbnailURL:  req.ThumbnailURL,
		Category:      orDefault(req.Category),
		Grade:         req.Grade,
		Difficulty:    req.Difficulty,
		PlaysCount:    0,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.sims.Put(ctx, sim); err != nil {
		return nil, err
	}
	return sim, nil
}

func (s *service) UpdateSimulation(ctx context.Context, simulationID string, req domain.UpdateSimulationRequest) error {
	updates := map[string]interface{}{}
	setStr(updates, "title", req.Title)
	setStr(updates, "description", req.Description)
	setStr(updates, "simulation_url", req.SimulationURL)
	setStr(updates, "html_code", req.HTMLCode)
	setStr(updates, "thumbnail_url", req.ThumbnailURL)
	setStr(updates, "category", req.Category)
	setStr(updates, "grade", req.Grade)
	setStr(updates, "difficulty", req.Difficulty)
	if len(updates) == 0 {
		return nil
	}
	return s.sims.Update(ctx, simulationID, updates)
}

func (s *service) DeleteSimulation(ctx context.Context, simulationID string) error {
	return s.sims.Delete(ctx, simulationID)
}

func (s *service) RecordPlay(ctx context.Context, simulationID string) error {
	return s.sims.IncrementPlays(ctx, simulationID)
}

// ── Study files ─────────────────────────────────────────────────────────────

func (s *service) ListFiles(ctx context.Context, f Filter) ([]domain.StudyFile, error) {
	return s.files.List(ctx, f.Category, f.Grade)
}

func (s *service) GetFile(ctx context.Context, fileID string) (*domain.StudyFile, error) {
	return s.files.Get(ctx, fileID)
}

func (s *service) CreateFile(ctx context.Context, req domain.CreateStudyFileRequest) (*domain.StudyFile, error) {
	now := time.Now().UTC()
	f := &domain.StudyFile{
		FileID:         id.New(),
		Title:          req.Title,
		Description:    req.Description,
		FileURL:        req.FileURL,
		ThumbnailURL:   req.ThumbnailURL,
		Category:       orDefault(req.Category),
		Grade:          req.Grade,
		DownloadsCount: 0,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.files.Put(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) UpdateFile(ctx context.Context, fileID string, req domain.UpdateStudyFileRequest) error {
	updates := map[string]interface{}{}
	setStr(updates, "title", req.Title)
	setStr(updates, "description", req.Description)
	setStr(updates, "file_url", req.FileURL)
	setStr(updates, "thumbnail_url", req.ThumbnailURL)
	setStr(updates, "category", req.Category)
	setStr(updates, "grade", req.Grade)
	if len(updates) == 0 {
		return nil
	}
	return s.files.Update(ctx, fileID, updates)
}

func (s *service) DeleteFile(ctx context.Context, fileID string) error {
	return s.files.Delete(ctx, fileID)
}

func (s *service) RecordDownload(ctx context.Context, fileID string) error {
	return s.files.IncrementDownloads(ctx, fileID)
}

func orDefault(category string) string {
	if category == "" {
		return defaultCategory
	}
	return category
}

func setStr(updates map[string]interface{}, field string, v *string) {
	if v != nil {
		updates[field] = *v
	}
}
