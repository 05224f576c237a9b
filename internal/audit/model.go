package audit

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("audit entry not found")

// Action values recorded in the trail.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Entry represents one recorded admin action.
type Entry struct {
	ID        string
	AdminID   string
	Action    string
	TableName string
	RecordID  string
	OldValues []byte // JSON snapshot before the change, nil for creates
	NewValues []byte // JSON snapshot after the change, nil for deletes
	CreatedAt time.Time
}

// Filter defines parameters for listing audit entries.
type Filter struct {
	Action    string
	TableName string
	AdminID   string
	From      *time.Time
	To        *time.Time
	Page      int
	PageSize  int
	SortOrder string
}
