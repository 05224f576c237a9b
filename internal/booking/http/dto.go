package http

import (
	"time"

	"github.com/coworkly/coworkly-backend/internal/booking"
	"github.com/coworkly/coworkly-backend/internal/pkg/request"
	"github.com/coworkly/coworkly-backend/internal/space"
)

type BookingResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	SpaceID   string    `json:"space_id"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		SpaceID:   b.SpaceID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		Status:    b.Status,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

type CreateRequest struct {
	SpaceID   string    `json:"space_id" binding:"required,uuid"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}

type ListBookingsRequest struct {
	request.ListParams
	SpaceID string     `form:"space_id" binding:"omitempty,uuid"`
	Status  string     `form:"status" binding:"omitempty,oneof=pending confirmed cancelled completed"`
	From    *time.Time `form:"from" time_format:"2006-01-02"`
	To      *time.Time `form:"to" time_format:"2006-01-02"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending confirmed cancelled completed"`
}

type AvailabilityRequest struct {
	Date  string `form:"date" binding:"required"`
	Start string `form:"start" binding:"omitempty"`
}

type IntervalResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type AvailabilityResponse struct {
	Date          string             `json:"date"`
	ClosedReason  string             `json:"closed_reason,omitempty"`
	OpenIntervals []IntervalResponse `json:"open_intervals"`
	StartSlots    []string           `json:"start_slots"`
	EndSlots      []string           `json:"end_slots,omitempty"`
}

func NewAvailabilityResponse(a *booking.Availability) AvailabilityResponse {
	resp := AvailabilityResponse{
		Date:          a.Date.UTC().Format("2006-01-02"),
		ClosedReason:  string(a.ClosedReason),
		OpenIntervals: make([]IntervalResponse, 0, len(a.OpenIntervals)),
		StartSlots:    formatSlots(a.StartSlots),
	}
	for _, iv := range a.OpenIntervals {
		resp.OpenIntervals = append(resp.OpenIntervals, IntervalResponse{
			Start: iv.Start.String(),
			End:   iv.End.String(),
		})
	}
	return resp
}

func formatSlots(slots []space.TimeOfDay) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.String())
	}
	return out
}
