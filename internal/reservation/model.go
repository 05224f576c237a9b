package reservation

import (
	"errors"
	"time"
)

var (
	ErrNotFound      = errors.New("reservation not found")
	ErrAlreadyExists = errors.New("reservation already exists for this period")
	ErrInvalidPeriod = errors.New("invalid reservation period")
)

// Reservation is a legacy period-string reservation. The table has no
// surrogate key: (user_id, space_id, period) is the primary key.
type Reservation struct {
	UserID    string
	SpaceID   string
	Period    Period
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Filter defines parameters for listing reservations.
type Filter struct {
	UserID    string
	SpaceID   string
	StartDate string // YYYY-MM-DD, inclusive lower bound on the period start
	EndDate   string // YYYY-MM-DD, inclusive upper bound on the period end
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
