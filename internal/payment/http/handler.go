package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coworkly/coworkly-backend/internal/auth"
	"github.com/coworkly/coworkly-backend/internal/payment"
	"github.com/coworkly/coworkly-backend/internal/pkg/request"
	"github.com/coworkly/coworkly-backend/internal/pkg/response"
	"github.com/coworkly/coworkly-backend/internal/reservation"
)

type Handler struct {
	service payment.Service
}

func NewHandler(service payment.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := payment.CreateRequest{
		UserID:             body.UserID,
		ReservationUserID:  body.ReservationUserID,
		ReservationSpaceID: body.ReservationSpaceID,
		ReservationPeriod:  body.ReservationPeriod,
		Amount:             body.Amount,
		Status:             body.Status,
		PaymentMethod:      body.PaymentMethod,
	}

	result, err := h.service.Create(c.Request.Context(), req, auth.GetUserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := NewResponse(result.Payment)
	resp.ClientSecret = result.ClientSecret
	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(p))
}

func (h *Handler) ListPending(c *gin.Context) {
	h.list(c, h.service.ListPending)
}

func (h *Handler) ListCompleted(c *gin.Context) {
	h.list(c, h.service.ListCompleted)
}

func (h *Handler) list(c *gin.Context, fetch func(context.Context, payment.Filter) ([]*payment.Payment, int, error)) {
	var req ListPaymentsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := payment.Filter{
		UserID:    req.UserID,
		Page:      req.Page,
		PageSize:  req.PageSize,
		SortOrder: req.SortOrder,
	}

	payments, total, err := fetch(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		items[i] = NewResponse(p)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Update(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := payment.UpdateRequest{
		Amount:        body.Amount,
		Status:        body.Status,
		PaymentMethod: body.PaymentMethod,
	}

	p, err := h.service.Update(c.Request.Context(), uri.ID, req, auth.GetUserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(p))
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, payment.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "payment not found"})
	case errors.Is(err, reservation.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "the specified reservation does not exist"})
	case errors.Is(err, reservation.ErrInvalidPeriod),
		errors.Is(err, payment.ErrInvalidStatus),
		errors.Is(err, payment.ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, payment.ErrAlreadyCompleted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		response.Error(c, err)
	}
}
