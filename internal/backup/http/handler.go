package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coworkly/coworkly-backend/internal/backup"
	"github.com/coworkly/coworkly-backend/internal/pkg/response"
)

type Handler struct {
	service backup.Service
}

func NewHandler(service backup.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	backups, err := h.service.List()
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BackupResponse, len(backups))
	for i, b := range backups {
		items[i] = NewResponse(b)
	}

	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Create(c *gin.Context) {
	info, err := h.service.Create(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewResponse(info))
}

func (h *Handler) Restore(c *gin.Context) {
	var req ByNameRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Restore(c.Request.Context(), req.Name); err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "database restored"})
}

func (h *Handler) Delete(c *gin.Context) {
	var req ByNameRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	if err := h.service.Delete(req.Name); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
