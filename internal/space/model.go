package space

import (
	"errors"
	"time"
)

var (
	ErrNotFound         = errors.New("space not found")
	ErrInvalidSchedule  = errors.New("invalid schedule")
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
	ErrInvalidDate      = errors.New("invalid date")
	ErrImageNotFound    = errors.New("image not found")
)

// Space is a bookable coworking space.
type Space struct {
	ID          string
	Subtitle    string
	Description string
	Address     string
	Places      int
	Price       float64
	Schedule    string
	Images      []string
	Services    []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ParsedSchedule parses the stored schedule string. Stored schedules
// are validated on write, so an error here means corrupted data.
func (s *Space) ParsedSchedule() (Schedule, error) {
	return ParseSchedule(s.Schedule)
}

// Filter defines parameters for listing spaces.
type Filter struct {
	Keyword   string
	MinPlaces int
	MaxPrice  float64
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
