package amenity

import (
	"context"

	"github.com/coworkly/coworkly-backend/internal/audit"
)

// CreateRequest carries the fields for creating an amenity.
type CreateRequest struct {
	Name     string
	ImageURL string
}

// UpdateRequest carries optional fields for updating an amenity.
type UpdateRequest struct {
	Name     *string
	ImageURL *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest, actorID string) (*Amenity, error)
	GetByID(ctx context.Context, id string) (*Amenity, error)
	List(ctx context.Context) ([]*Amenity, error)
	Update(ctx context.Context, id string, req UpdateRequest, actorID string) (*Amenity, error)
	Delete(ctx context.Context, id string, actorID string) error
}

type service struct {
	repo    Repository
	auditor audit.Recorder
}

func NewService(repo Repository, auditor audit.Recorder) Service {
	return &service{repo: repo, auditor: auditor}
}

func (s *service) Create(ctx context.Context, req CreateRequest, actorID string) (*Amenity, error) {
	a := &Amenity{Name: req.Name, ImageURL: req.ImageURL}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, actorID, audit.ActionCreate, "amenities", a.ID, nil, a)
	return a, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Amenity, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Amenity, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, actorID string) (*Amenity, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	old := *a

	if req.Name != nil {
		a.Name = *req.Name
	}
	if req.ImageURL != nil {
		a.ImageURL = *req.ImageURL
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, actorID, audit.ActionUpdate, "amenities", a.ID, &old, a)
	return a, nil
}

func (s *service) Delete(ctx context.Context, id string, actorID string) error {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.auditor.Record(ctx, actorID, audit.ActionDelete, "amenities", id, a, nil)
	return nil
}
