package payment

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("payment not found")
	ErrAlreadyCompleted = errors.New("completed payments cannot be modified")
	ErrInvalidStatus    = errors.New("invalid payment status")
	ErrInvalidAmount    = errors.New("amount must not be negative")
)

// Payment statuses.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusRefunded  = "refunded"
)

// IsValidStatus reports whether s is a known payment status.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed, StatusRefunded:
		return true
	}
	return false
}

// Payment records money owed or received for a reservation. The
// reservation is referenced by its composite key.
type Payment struct {
	ID                 string
	UserID             string
	ReservationUserID  string
	ReservationSpaceID string
	ReservationPeriod  string
	Amount             float64
	Status             string
	PaymentMethod      string
	// PaymentDate is stamped when the payment completes, nil before.
	PaymentDate    *time.Time
	StripeIntentID *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Filter defines parameters for listing payments.
type Filter struct {
	UserID    string
	Page      int
	PageSize  int
	SortOrder string
}
