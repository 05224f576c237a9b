package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/coworkly/coworkly-backend/internal/auth"
	"github.com/coworkly/coworkly-backend/internal/booking"
	"github.com/coworkly/coworkly-backend/internal/pkg/request"
	"github.com/coworkly/coworkly-backend/internal/pkg/response"
	"github.com/coworkly/coworkly-backend/internal/space"
	"github.com/coworkly/coworkly-backend/internal/user"
)

type Handler struct {
	service     booking.Service
	userService user.Service
}

func NewHandler(service booking.Service, userService user.Service) *Handler {
	return &Handler{
		service:     service,
		userService: userService,
	}
}

// isAdmin checks whether the authenticated user has the admin flag.
func (h *Handler) isAdmin(c *gin.Context) bool {
	userID := auth.GetUserID(c)
	if userID == "" {
		return false
	}

	u, err := h.userService.GetByID(c.Request.Context(), userID)
	if err != nil {
		return false
	}
	return u.IsAdmin
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	req := booking.CreateRequest{
		SpaceID:   body.SpaceID,
		StartTime: body.StartTime,
		EndTime:   body.EndTime,
	}

	b, err := h.service.Create(c.Request.Context(), auth.GetUserID(c), auth.GetUserEmail(c), req)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewResponse(b))
}

func (h *Handler) List(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := booking.Filter{
		SpaceID:   req.SpaceID,
		Status:    req.Status,
		From:      req.From,
		To:        req.To,
		Page:      req.Page,
		PageSize:  req.PageSize,
		SortOrder: strings.ToUpper(req.SortOrder),
	}

	// Regular users only see their own bookings.
	if !h.isAdmin(c) {
		filter.UserID = auth.GetUserID(c)
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	if b.UserID != auth.GetUserID(c) && !h.isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	c.JSON(http.StatusOK, NewResponse(b))
}

func (h *Handler) Cancel(c *gin.Context) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), req.ID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	// Only the owner or an admin may cancel.
	if b.UserID != auth.GetUserID(c) && !h.isAdmin(c) {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}

	cancelled, err := h.service.Cancel(c.Request.Context(), req.ID, auth.GetUserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(cancelled))
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var body UpdateStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	b, err := h.service.UpdateStatus(c.Request.Context(), uri.ID, body.Status, auth.GetUserID(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, NewResponse(b))
}

// Availability returns the open intervals and offerable start slots of
// a space for a date. When a start query parameter is given, end slots
// within the enclosing open interval are included too.
func (h *Handler) Availability(c *gin.Context) {
	var uri request.ByIDRequest
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return
	}

	var query AvailabilityRequest
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	date, err := space.ParseDate(query.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date, expected YYYY-MM-DD"})
		return
	}

	availability, err := h.service.Availability(c.Request.Context(), uri.ID, date)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := NewAvailabilityResponse(availability)

	if query.Start != "" {
		start, err := space.ParseTimeOfDay(query.Start)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start time, expected HH:MM"})
			return
		}
		if iv, ok := booking.EnclosingInterval(availability.OpenIntervals, start); ok {
			resp.EndSlots = formatSlots(booking.EndSlots(start, iv, booking.DefaultGranularity))
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
	case errors.Is(err, space.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "space not found"})
	case errors.Is(err, booking.ErrInvalidTimeRange),
		errors.Is(err, booking.ErrInPast),
		errors.Is(err, booking.ErrWeekend),
		errors.Is(err, booking.ErrOutsideSchedule),
		errors.Is(err, booking.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrTimeConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		response.Error(c, err)
	}
}
