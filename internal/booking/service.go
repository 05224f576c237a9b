package booking

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/coworkly/coworkly-backend/internal/audit"
	"github.com/coworkly/coworkly-backend/internal/email"
	"github.com/coworkly/coworkly-backend/internal/space"
	"github.com/coworkly/coworkly-backend/internal/user"
)

// CreateRequest carries the fields for creating a booking.
type CreateRequest struct {
	SpaceID   string
	StartTime time.Time
	EndTime   time.Time
}

type Service interface {
	Create(ctx context.Context, userID, userEmail string, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Cancel(ctx context.Context, id, actorID string) (*Booking, error)
	UpdateStatus(ctx context.Context, id, status, actorID string) (*Booking, error)
	Availability(ctx context.Context, spaceID string, date time.Time) (*Availability, error)
}

type service struct {
	repo     Repository
	spaceSvc space.Service
	userSvc  user.Service
	sender   email.Sender
	auditor  audit.Recorder
	now      func() time.Time
}

func NewService(repo Repository, spaceSvc space.Service, userSvc user.Service, sender email.Sender, auditor audit.Recorder) Service {
	return &service{
		repo:     repo,
		spaceSvc: spaceSvc,
		userSvc:  userSvc,
		sender:   sender,
		auditor:  auditor,
		now:      time.Now,
	}
}

func (s *service) Create(ctx context.Context, userID, userEmail string, req CreateRequest) (*Booking, error) {
	start := req.StartTime.UTC()
	end := req.EndTime.UTC()

	if !start.Before(end) {
		return nil, ErrInvalidTimeRange
	}
	if !sameDate(start, end) {
		return nil, ErrInvalidTimeRange
	}
	if start.Before(s.now()) {
		return nil, ErrInPast
	}

	sp, err := s.spaceSvc.GetByID(ctx, req.SpaceID)
	if err != nil {
		return nil, err
	}

	if err := s.checkWithinSchedule(sp, start, end); err != nil {
		return nil, err
	}

	overlap, err := s.repo.HasOverlap(ctx, req.SpaceID, start, end, "")
	if err != nil {
		return nil, err
	}
	if overlap {
		return nil, ErrTimeConflict
	}

	b := &Booking{
		UserID:    userID,
		SpaceID:   req.SpaceID,
		StartTime: start,
		EndTime:   end,
		Status:    StatusPending,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, userID, audit.ActionCreate, "bookings", b.ID, nil, b)
	s.sendConfirmation(ctx, userEmail, b, sp)

	return b, nil
}

func (s *service) checkWithinSchedule(sp *space.Space, start, end time.Time) error {
	day := space.DayOf(start)
	if !day.IsBookable() {
		return ErrWeekend
	}

	schedule, err := sp.ParsedSchedule()
	if err != nil {
		return err
	}

	startMin := minuteOfDay(start)
	endMin := minuteOfDay(end)

	// The booking must fit entirely within a single schedule block.
	for _, block := range schedule.BlocksOn(day) {
		if block.Start <= startMin && endMin <= block.End {
			return nil
		}
	}
	return ErrOutsideSchedule
}

func (s *service) sendConfirmation(ctx context.Context, to string, b *Booking, sp *space.Space) {
	if s.sender == nil || to == "" {
		return
	}

	msg := email.BookingConfirmation(to, sp.Subtitle, b.StartTime, b.EndTime)
	if err := s.sender.Send(ctx, msg); err != nil {
		log.Warn().Err(err).
			Str("booking_id", b.ID).
			Msg("failed to send booking confirmation email")
	}
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Cancel(ctx context.Context, id, actorID string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if b.Status == StatusCancelled || b.Status == StatusCompleted {
		return nil, ErrInvalidStatus
	}

	old := *b
	if err := s.repo.UpdateStatus(ctx, id, StatusCancelled); err != nil {
		return nil, err
	}
	b.Status = StatusCancelled

	s.auditor.Record(ctx, actorID, audit.ActionUpdate, "bookings", id, &old, b)
	s.sendCancellation(ctx, b)
	return b, nil
}

func (s *service) sendCancellation(ctx context.Context, b *Booking) {
	if s.sender == nil {
		return
	}

	owner, err := s.userSvc.GetByID(ctx, b.UserID)
	if err != nil {
		log.Warn().Err(err).Str("booking_id", b.ID).Msg("failed to look up booking owner for cancellation email")
		return
	}
	sp, err := s.spaceSvc.GetByID(ctx, b.SpaceID)
	if err != nil {
		log.Warn().Err(err).Str("booking_id", b.ID).Msg("failed to look up space for cancellation email")
		return
	}

	msg := email.BookingCancellation(owner.Email, sp.Subtitle, b.StartTime, b.EndTime)
	if err := s.sender.Send(ctx, msg); err != nil {
		log.Warn().Err(err).
			Str("booking_id", b.ID).
			Msg("failed to send booking cancellation email")
	}
}

func (s *service) UpdateStatus(ctx context.Context, id, status, actorID string) (*Booking, error) {
	if !IsValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	old := *b
	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	b.Status = status

	s.auditor.Record(ctx, actorID, audit.ActionUpdate, "bookings", id, &old, b)
	return b, nil
}

func (s *service) Availability(ctx context.Context, spaceID string, date time.Time) (*Availability, error) {
	sp, err := s.spaceSvc.GetByID(ctx, spaceID)
	if err != nil {
		return nil, err
	}

	schedule, err := sp.ParsedSchedule()
	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.ListForDate(ctx, spaceID, date)
	if err != nil {
		return nil, err
	}

	return ComputeAvailability(schedule, bookings, date, spaceID), nil
}

func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
