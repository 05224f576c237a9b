package booking

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("booking not found")
	ErrInvalidTimeRange = errors.New("end time must be after start time")
	ErrInPast           = errors.New("booking starts in the past")
	ErrWeekend          = errors.New("space is closed on weekends")
	ErrOutsideSchedule  = errors.New("booking is outside the space schedule")
	ErrTimeConflict     = errors.New("time slot is already booked")
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrForbidden        = errors.New("not allowed to modify this booking")
)

// Booking statuses.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// IsValidStatus reports whether s is a known booking status.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Booking is a reservation of a space for a time range. Times are
// stored in UTC.
type Booking struct {
	ID        string
	UserID    string
	SpaceID   string
	StartTime time.Time
	EndTime   time.Time
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	UserID    string
	SpaceID   string
	Status    string
	From      *time.Time
	To        *time.Time
	Page      int
	PageSize  int
	SortOrder string
}
