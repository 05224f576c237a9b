package http

import (
	"time"

	"github.com/coworkly/coworkly-backend/internal/contact"
	"github.com/coworkly/coworkly-backend/internal/pkg/request"
)

type MessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func NewResponse(m *contact.Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Subject:   m.Subject,
		Body:      m.Body,
		CreatedAt: m.CreatedAt,
	}
}

type SubmitRequest struct {
	Name    string `json:"name" binding:"required,max=128"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required,max=256"`
	Body    string `json:"body" binding:"required,max=4096"`
}

type ListMessagesRequest struct {
	request.ListParams
}
