package http

import (
	"time"

	"github.com/coworkly/coworkly-backend/internal/pkg/request"
	"github.com/coworkly/coworkly-backend/internal/reservation"
)

type ReservationResponse struct {
	UserID    string    `json:"user_id"`
	SpaceID   string    `json:"space_id"`
	Period    string    `json:"reservation_period"`
	StartDate string    `json:"start_date"`
	EndDate   string    `json:"end_date"`
	Active    bool      `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewResponse(r *reservation.Reservation) ReservationResponse {
	return ReservationResponse{
		UserID:    r.UserID,
		SpaceID:   r.SpaceID,
		Period:    r.Period.String(),
		StartDate: r.Period.Start.Format("2006-01-02 15:04"),
		EndDate:   r.Period.End.Format("2006-01-02 15:04"),
		Active:    r.Active,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type CreateRequest struct {
	SpaceID string `json:"space_id" binding:"required,uuid"`
	Start   string `json:"start_date" binding:"required"`
	End     string `json:"end_date" binding:"required"`
}

type ListReservationsRequest struct {
	request.ListParams
	UserID    string `form:"user_id" binding:"omitempty,uuid"`
	SpaceID   string `form:"space_id" binding:"omitempty,uuid"`
	StartDate string `form:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"omitempty,datetime=2006-01-02"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=created_at updated_at reservation_period"`
}
