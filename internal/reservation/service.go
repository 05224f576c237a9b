package reservation

import (
	"context"
	"fmt"

	"github.com/coworkly/coworkly-backend/internal/space"
)

// CreateRequest carries the fields for creating a reservation. Start
// and End are "<date> <time>" strings as submitted by legacy clients.
type CreateRequest struct {
	SpaceID string
	Start   string
	End     string
}

type Service interface {
	Create(ctx context.Context, userID string, req CreateRequest) (*Reservation, error)
	List(ctx context.Context, filter Filter) ([]*Reservation, int, error)
}

type service struct {
	repo     Repository
	spaceSvc space.Service
}

func NewService(repo Repository, spaceSvc space.Service) Service {
	return &service{repo: repo, spaceSvc: spaceSvc}
}

func (s *service) Create(ctx context.Context, userID string, req CreateRequest) (*Reservation, error) {
	period, err := ParsePeriod(fmt.Sprintf("%s|%s", req.Start, req.End))
	if err != nil {
		return nil, err
	}

	// The space must exist before a period is pinned to it.
	if _, err := s.spaceSvc.GetByID(ctx, req.SpaceID); err != nil {
		return nil, err
	}

	exists, err := s.repo.Exists(ctx, userID, req.SpaceID, period.String())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyExists
	}

	res := &Reservation{
		UserID:  userID,
		SpaceID: req.SpaceID,
		Period:  period,
		Active:  true,
	}

	if err := s.repo.Create(ctx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Reservation, int, error) {
	return s.repo.List(ctx, filter)
}
