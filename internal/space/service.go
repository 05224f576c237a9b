package space

import (
	"context"
	"fmt"
	"io"
	"path"
	"slices"
	"strings"

	"github.com/google/uuid"

	"github.com/coworkly/coworkly-backend/internal/audit"
	"github.com/coworkly/coworkly-backend/internal/pkg/storage"
)

const (
	thumbnailMaxWidth  = 640
	thumbnailMaxHeight = 480
)

// CreateRequest carries the fields for creating a space.
type CreateRequest struct {
	Subtitle    string
	Description string
	Address     string
	Places      int
	Price       float64
	Schedule    string
	Services    []string
}

// UpdateRequest carries optional fields for updating a space.
// Nil fields are left unchanged.
type UpdateRequest struct {
	Subtitle    *string
	Description *string
	Address     *string
	Places      *int
	Price       *float64
	Schedule    *string
	Services    []string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest, actorID string) (*Space, error)
	GetByID(ctx context.Context, id string) (*Space, error)
	List(ctx context.Context, filter Filter) ([]*Space, int, error)
	Update(ctx context.Context, id string, req UpdateRequest, actorID string) (*Space, error)
	Delete(ctx context.Context, id string, actorID string) error

	AddImage(ctx context.Context, id string, filename string, content io.Reader, actorID string) (*Space, error)
	RemoveImage(ctx context.Context, id string, imagePath string, actorID string) (*Space, error)
	GetImage(ctx context.Context, imagePath string) (io.ReadCloser, error)
}

type service struct {
	repo      Repository
	store     storage.Storage
	processor *storage.ImageProcessor
	auditor   audit.Recorder
}

func NewService(repo Repository, store storage.Storage, processor *storage.ImageProcessor, auditor audit.Recorder) Service {
	return &service{
		repo:      repo,
		store:     store,
		processor: processor,
		auditor:   auditor,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest, actorID string) (*Space, error) {
	if err := validateSchedule(req.Schedule); err != nil {
		return nil, err
	}

	sp := &Space{
		Subtitle:    req.Subtitle,
		Description: req.Description,
		Address:     req.Address,
		Places:      req.Places,
		Price:       req.Price,
		Schedule:    req.Schedule,
		Services:    req.Services,
	}

	if err := s.repo.Create(ctx, sp); err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, actorID, audit.ActionCreate, "spaces", sp.ID, nil, sp)
	return sp, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Space, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Space, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, actorID string) (*Space, error) {
	sp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	old := *sp

	if req.Subtitle != nil {
		sp.Subtitle = *req.Subtitle
	}
	if req.Description != nil {
		sp.Description = *req.Description
	}
	if req.Address != nil {
		sp.Address = *req.Address
	}
	if req.Places != nil {
		sp.Places = *req.Places
	}
	if req.Price != nil {
		sp.Price = *req.Price
	}
	if req.Schedule != nil {
		if err := validateSchedule(*req.Schedule); err != nil {
			return nil, err
		}
		sp.Schedule = *req.Schedule
	}
	if req.Services != nil {
		sp.Services = req.Services
	}

	if err := s.repo.Update(ctx, sp); err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, actorID, audit.ActionUpdate, "spaces", sp.ID, &old, sp)
	return sp, nil
}

func (s *service) Delete(ctx context.Context, id string, actorID string) error {
	sp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	for _, img := range sp.Images {
		if err := s.store.Delete(ctx, img); err != nil {
			return fmt.Errorf("delete space image failed: %w", err)
		}
		if err := s.store.Delete(ctx, thumbnailPath(img)); err != nil {
			return fmt.Errorf("delete space thumbnail failed: %w", err)
		}
	}

	s.auditor.Record(ctx, actorID, audit.ActionDelete, "spaces", id, sp, nil)
	return nil
}

func (s *service) AddImage(ctx context.Context, id string, filename string, content io.Reader, actorID string) (*Space, error) {
	sp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	old := *sp

	ext := strings.ToLower(path.Ext(filename))
	if ext == "" {
		ext = ".jpg"
	}
	imagePath := fmt.Sprintf("spaces/%s/%s%s", id, uuid.NewString(), ext)

	// The upload is read twice: once for the original, once for the
	// thumbnail, so buffer it.
	data, err := io.ReadAll(content)
	if err != nil {
		return nil, fmt.Errorf("read image upload failed: %w", err)
	}

	if err := s.store.Save(ctx, imagePath, strings.NewReader(string(data))); err != nil {
		return nil, fmt.Errorf("save space image failed: %w", err)
	}

	thumb, err := s.processor.GenerateThumbnail(strings.NewReader(string(data)), thumbnailMaxWidth, thumbnailMaxHeight)
	if err != nil {
		return nil, fmt.Errorf("generate thumbnail failed: %w", err)
	}
	if err := s.store.Save(ctx, thumbnailPath(imagePath), thumb); err != nil {
		return nil, fmt.Errorf("save thumbnail failed: %w", err)
	}

	sp.Images = append(sp.Images, imagePath)
	if err := s.repo.Update(ctx, sp); err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, actorID, audit.ActionUpdate, "spaces", sp.ID, &old, sp)
	return sp, nil
}

func (s *service) RemoveImage(ctx context.Context, id string, imagePath string, actorID string) (*Space, error) {
	sp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	old := *sp

	idx := slices.Index(sp.Images, imagePath)
	if idx < 0 {
		return nil, ErrImageNotFound
	}
	sp.Images = slices.Delete(sp.Images, idx, idx+1)

	if err := s.repo.Update(ctx, sp); err != nil {
		return nil, err
	}

	if err := s.store.Delete(ctx, imagePath); err != nil {
		return nil, fmt.Errorf("delete space image failed: %w", err)
	}
	if err := s.store.Delete(ctx, thumbnailPath(imagePath)); err != nil {
		return nil, fmt.Errorf("delete space thumbnail failed: %w", err)
	}

	s.auditor.Record(ctx, actorID, audit.ActionUpdate, "spaces", sp.ID, &old, sp)
	return sp, nil
}

func (s *service) GetImage(ctx context.Context, imagePath string) (io.ReadCloser, error) {
	return s.store.Get(ctx, imagePath)
}

func validateSchedule(raw string) error {
	schedule, err := ParseSchedule(raw)
	if err != nil {
		return err
	}
	return schedule.Validate()
}

func thumbnailPath(imagePath string) string {
	ext := path.Ext(imagePath)
	return strings.TrimSuffix(imagePath, ext) + "_thumb.jpg"
}
