package backup

import (
	"net/http"
	"time"

	"github.com/coworkly/coworkly-backend/internal/pkg/apperror"
)

var (
	ErrNotFound    = apperror.New(http.StatusNotFound, "backup not found")
	ErrInvalidName = apperror.New(http.StatusBadRequest, "invalid backup name")
)

// Info describes a dump file on disk.
type Info struct {
	Name      string
	Size      int64
	CreatedAt time.Time
}
