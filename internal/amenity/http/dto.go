package http

import (
	"time"

	"github.com/coworkly/coworkly-backend/internal/amenity"
)

type AmenityResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewResponse(a *amenity.Amenity) AmenityResponse {
	return AmenityResponse{
		ID:        a.ID,
		Name:      a.Name,
		ImageURL:  a.ImageURL,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

type CreateRequest struct {
	Name     string `json:"name" binding:"required,max=100"`
	ImageURL string `json:"image_url" binding:"required,url"`
}

type UpdateRequest struct {
	Name     *string `json:"name" binding:"omitempty,max=100"`
	ImageURL *string `json:"image_url" binding:"omitempty,url"`
}
