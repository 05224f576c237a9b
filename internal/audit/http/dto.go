package http

import (
	"encoding/json"
	"time"

	"github.com/coworkly/coworkly-backend/internal/audit"
	"github.com/coworkly/coworkly-backend/internal/pkg/request"
)

type EntryResponse struct {
	ID        string          `json:"id"`
	AdminID   string          `json:"admin_id"`
	Action    string          `json:"action"`
	TableName string          `json:"table_name"`
	RecordID  string          `json:"record_id"`
	OldValues json.RawMessage `json:"old_values"`
	NewValues json.RawMessage `json:"new_values"`
	CreatedAt time.Time       `json:"created_at"`
}

func NewResponse(e *audit.Entry) EntryResponse {
	return EntryResponse{
		ID:        e.ID,
		AdminID:   e.AdminID,
		Action:    e.Action,
		TableName: e.TableName,
		RecordID:  e.RecordID,
		OldValues: e.OldValues,
		NewValues: e.NewValues,
		CreatedAt: e.CreatedAt,
	}
}

type ListEntriesRequest struct {
	request.ListParams
	Action    string     `form:"action" binding:"omitempty,oneof=create update delete"`
	TableName string     `form:"table_name" binding:"omitempty,max=64"`
	AdminID   string     `form:"admin_id" binding:"omitempty,uuid"`
	From      *time.Time `form:"from" time_format:"2006-01-02"`
	To        *time.Time `form:"to" time_format:"2006-01-02"`
}
