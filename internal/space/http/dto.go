package http

import (
	"time"

	"github.com/coworkly/coworkly-backend/internal/pkg/request"
	"github.com/coworkly/coworkly-backend/internal/space"
)

type SpaceResponse struct {
	ID          string    `json:"id"`
	Subtitle    string    `json:"subtitle"`
	Description string    `json:"description"`
	Address     string    `json:"address"`
	Places      int       `json:"places"`
	Price       float64   `json:"price"`
	Schedule    string    `json:"schedule"`
	Images      []string  `json:"images"`
	Services    []string  `json:"services"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewResponse(s *space.Space) SpaceResponse {
	images := s.Images
	if images == nil {
		images = []string{}
	}
	services := s.Services
	if services == nil {
		services = []string{}
	}

	return SpaceResponse{
		ID:          s.ID,
		Subtitle:    s.Subtitle,
		Description: s.Description,
		Address:     s.Address,
		Places:      s.Places,
		Price:       s.Price,
		Schedule:    s.Schedule,
		Images:      images,
		Services:    services,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

type ListSpacesRequest struct {
	request.ListParams
	Keyword   string  `form:"keyword" binding:"omitempty,max=100"`
	MinPlaces int     `form:"min_places" binding:"omitempty,min=1"`
	MaxPrice  float64 `form:"max_price" binding:"omitempty,gt=0"`
	SortBy    string  `form:"sort_by" binding:"omitempty,oneof=created_at price places subtitle"`
}

type CreateRequest struct {
	Subtitle    string   `json:"subtitle" binding:"required,max=255"`
	Description string   `json:"description" binding:"omitempty"`
	Address     string   `json:"address" binding:"required,max=255"`
	Places      int      `json:"places" binding:"required,min=1"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Schedule    string   `json:"schedule" binding:"required"`
	Services    []string `json:"services" binding:"omitempty,dive,uuid"`
}

type UpdateRequest struct {
	Subtitle    *string  `json:"subtitle" binding:"omitempty,max=255"`
	Description *string  `json:"description" binding:"omitempty"`
	Address     *string  `json:"address" binding:"omitempty,max=255"`
	Places      *int     `json:"places" binding:"omitempty,min=1"`
	Price       *float64 `json:"price" binding:"omitempty,gt=0"`
	Schedule    *string  `json:"schedule" binding:"omitempty"`
	Services    []string `json:"services" binding:"omitempty,dive,uuid"`
}

type RemoveImageRequest struct {
	Path string `json:"path" binding:"required"`
}
