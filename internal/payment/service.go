package payment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/coworkly/coworkly-backend/internal/audit"
	"github.com/coworkly/coworkly-backend/internal/email"
	"github.com/coworkly/coworkly-backend/internal/reservation"
	"github.com/coworkly/coworkly-backend/internal/user"
)

// MethodCard payments go through the Stripe gateway when configured.
const MethodCard = "card"

// CreateRequest carries the fields for recording a payment.
type CreateRequest struct {
	UserID             string
	ReservationUserID  string
	ReservationSpaceID string
	ReservationPeriod  string
	Amount             float64
	Status             string
	PaymentMethod      string
}

// UpdateRequest carries optional fields for updating a payment.
type UpdateRequest struct {
	Amount        *float64
	Status        *string
	PaymentMethod *string
}

// CreateResult bundles the stored payment with the gateway handle a
// card client needs to finish the charge.
type CreateResult struct {
	Payment      *Payment
	ClientSecret string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest, actorID string) (*CreateResult, error)
	GetByID(ctx context.Context, id string) (*Payment, error)
	ListPending(ctx context.Context, filter Filter) ([]*Payment, int, error)
	ListCompleted(ctx context.Context, filter Filter) ([]*Payment, int, error)
	Update(ctx context.Context, id string, req UpdateRequest, actorID string) (*Payment, error)
}

type service struct {
	repo    Repository
	resRepo reservation.Repository
	userSvc user.Service
	gateway Gateway
	sender  email.Sender
	auditor audit.Recorder
	now     func() time.Time
}

func NewService(repo Repository, resRepo reservation.Repository, userSvc user.Service, gateway Gateway, sender email.Sender, auditor audit.Recorder) Service {
	return &service{
		repo:    repo,
		resRepo: resRepo,
		userSvc: userSvc,
		gateway: gateway,
		sender:  sender,
		auditor: auditor,
		now:     time.Now,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest, actorID string) (*CreateResult, error) {
	if req.Amount < 0 {
		return nil, ErrInvalidAmount
	}
	if req.Status != StatusPending && req.Status != StatusCompleted {
		return nil, ErrInvalidStatus
	}

	// The referenced reservation must exist.
	period, err := reservation.ParsePeriod(req.ReservationPeriod)
	if err != nil {
		return nil, err
	}
	exists, err := s.resRepo.Exists(ctx, req.ReservationUserID, req.ReservationSpaceID, period.String())
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, reservation.ErrNotFound
	}

	p := &Payment{
		UserID:             req.UserID,
		ReservationUserID:  req.ReservationUserID,
		ReservationSpaceID: req.ReservationSpaceID,
		ReservationPeriod:  period.String(),
		Amount:             req.Amount,
		Status:             req.Status,
		PaymentMethod:      req.PaymentMethod,
	}
	if p.Status == StatusCompleted {
		now := s.now().UTC()
		p.PaymentDate = &now
	}

	result := &CreateResult{Payment: p}

	if p.Status == StatusPending && p.PaymentMethod == MethodCard && s.gateway != nil {
		intent, err := s.gateway.CreateIntent(ctx, p.Amount, fmt.Sprintf("Reservation %s", p.ReservationPeriod))
		if err != nil {
			return nil, err
		}
		p.StripeIntentID = &intent.ID
		result.ClientSecret = intent.ClientSecret
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, actorID, audit.ActionCreate, "payments", p.ID, nil, p)
	if p.Status == StatusCompleted {
		s.sendReceipt(ctx, p)
	}

	return result, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Payment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListPending(ctx context.Context, filter Filter) ([]*Payment, int, error) {
	return s.repo.ListPending(ctx, filter)
}

func (s *service) ListCompleted(ctx context.Context, filter Filter) ([]*Payment, int, error) {
	return s.repo.ListCompleted(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, actorID string) (*Payment, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Completed payments are immutable.
	if p.Status == StatusCompleted {
		return nil, ErrAlreadyCompleted
	}
	old := *p

	if req.Amount != nil {
		if *req.Amount < 0 {
			return nil, ErrInvalidAmount
		}
		p.Amount = *req.Amount
	}
	if req.PaymentMethod != nil {
		p.PaymentMethod = *req.PaymentMethod
	}

	completed := false
	if req.Status != nil {
		if !IsValidStatus(*req.Status) {
			return nil, ErrInvalidStatus
		}
		p.Status = *req.Status
		if p.Status == StatusCompleted {
			now := s.now().UTC()
			p.PaymentDate = &now
			completed = true
		}
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.auditor.Record(ctx, actorID, audit.ActionUpdate, "payments", p.ID, &old, p)
	if completed {
		s.sendReceipt(ctx, p)
	}

	return p, nil
}

func (s *service) sendReceipt(ctx context.Context, p *Payment) {
	if s.sender == nil || p.PaymentDate == nil {
		return
	}

	u, err := s.userSvc.GetByID(ctx, p.UserID)
	if err != nil {
		if !errors.Is(err, user.ErrNotFound) {
			log.Warn().Err(err).Str("payment_id", p.ID).Msg("failed to load payer for receipt")
		}
		return
	}

	msg := email.PaymentReceipt(u.Email, p.Amount, *p.PaymentDate)
	if err := s.sender.Send(ctx, msg); err != nil {
		log.Warn().Err(err).Str("payment_id", p.ID).Msg("failed to send payment receipt")
	}
}
