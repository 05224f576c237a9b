package amenity

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("amenity not found")

// Amenity is a catalog entry for a service a space can offer, shown as
// an icon on space pages.
type Amenity struct {
	ID        string
	Name      string
	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
