package contact

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/coworkly/coworkly-backend/internal/email"
)

type CreateRequest struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

type Service interface {
	Submit(ctx context.Context, req CreateRequest) (*Message, error)
	GetByID(ctx context.Context, id string) (*Message, error)
	List(ctx context.Context, filter Filter) ([]*Message, int, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	sender email.Sender
	inbox  string
}

// NewService creates the contact service. The inbox address receives a
// copy of every submission; forwarding is best effort and never fails
// the request.
func NewService(repo Repository, sender email.Sender, inbox string) Service {
	return &service{repo: repo, sender: sender, inbox: inbox}
}

func (s *service) Submit(ctx context.Context, req CreateRequest) (*Message, error) {
	msg := &Message{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Body:    req.Body,
	}
	if err := s.repo.Create(ctx, msg); err != nil {
		return nil, err
	}

	if s.sender != nil && s.inbox != "" {
		notification := email.ContactNotification(s.inbox, msg.Name, msg.Email, msg.Subject, msg.Body)
		if err := s.sender.Send(ctx, notification); err != nil {
			log.Warn().Err(err).Str("contact_id", msg.ID).Msg("failed to forward contact message")
		}
	}
	return msg, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Message, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Message, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
