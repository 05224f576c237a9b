package contact

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("contact message not found")

// Message is a contact form submission from a visitor.
type Message struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Body      string
	CreatedAt time.Time
}

type Filter struct {
	Page      int
	PageSize  int
	SortOrder string
}
