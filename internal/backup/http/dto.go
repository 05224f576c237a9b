package http

import (
	"time"

	"github.com/coworkly/coworkly-backend/internal/backup"
)

type BackupResponse struct {
	Name      string    `json:"name"`
	Size      int64     `json:"size"`
	CreatedAt time.Time `json:"created_at"`
}

func NewResponse(b *backup.Info) BackupResponse {
	return BackupResponse{
		Name:      b.Name,
		Size:      b.Size,
		CreatedAt: b.CreatedAt,
	}
}

type ByNameRequest struct {
	Name string `uri:"name" binding:"required"`
}
