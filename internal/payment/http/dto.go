package http

import (
	"time"

	"github.com/coworkly/coworkly-backend/internal/payment"
	"github.com/coworkly/coworkly-backend/internal/pkg/request"
)

type PaymentResponse struct {
	ID                 string     `json:"id"`
	UserID             string     `json:"user_id"`
	ReservationUserID  string     `json:"reservation_user_id"`
	ReservationSpaceID string     `json:"reservation_space_id"`
	ReservationPeriod  string     `json:"reservation_period"`
	Amount             float64    `json:"amount"`
	Status             string     `json:"status"`
	PaymentMethod      string     `json:"payment_method"`
	PaymentDate        *time.Time `json:"payment_date"`
	ClientSecret       string     `json:"client_secret,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

func NewResponse(p *payment.Payment) PaymentResponse {
	return PaymentResponse{
		ID:                 p.ID,
		UserID:             p.UserID,
		ReservationUserID:  p.ReservationUserID,
		ReservationSpaceID: p.ReservationSpaceID,
		ReservationPeriod:  p.ReservationPeriod,
		Amount:             p.Amount,
		Status:             p.Status,
		PaymentMethod:      p.PaymentMethod,
		PaymentDate:        p.PaymentDate,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}

type CreateRequest struct {
	UserID             string  `json:"user_id" binding:"required,uuid"`
	ReservationUserID  string  `json:"reservation_user_id" binding:"required,uuid"`
	ReservationSpaceID string  `json:"reservation_space_id" binding:"required,uuid"`
	ReservationPeriod  string  `json:"reservation_period" binding:"required"`
	Amount             float64 `json:"amount" binding:"required,gte=0"`
	Status             string  `json:"status" binding:"required,oneof=pending completed"`
	PaymentMethod      string  `json:"payment_method" binding:"required,max=50"`
}

type UpdateRequest struct {
	Amount        *float64 `json:"amount" binding:"omitempty,gte=0"`
	Status        *string  `json:"status" binding:"omitempty,oneof=pending completed failed refunded"`
	PaymentMethod *string  `json:"payment_method" binding:"omitempty,max=50"`
}

type ListPaymentsRequest struct {
	request.ListParams
	UserID string `form:"user_id" binding:"omitempty,uuid"`
}
