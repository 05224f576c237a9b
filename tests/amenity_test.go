package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	amenityHttp "github.com/coworkly/coworkly-backend/internal/amenity/http"
)

func TestAmenityCRUD(t *testing.T) {
	clearTables()

	admin := createTestUser(t, "admin@example.com", "password123", true)
	adminToken := generateToken(admin.ID, admin.Email)

	var amenityID string

	t.Run("Admin creates an amenity", func(t *testing.T) {
		payload := amenityHttp.CreateRequest{
			Name:     "High-speed WiFi",
			ImageURL: "https://cdn.example.com/icons/wifi.svg",
		}
		w := executeRequest("POST", "/v1/services", payload, adminToken)
		require.Equal(t, http.StatusCreated, w.Code)

		var resp amenityHttp.AmenityResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		amenityID = resp.ID
	})

	t.Run("Anyone can list amenities", func(t *testing.T) {
		w := executeRequest("GET", "/v1/services", nil, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Admin deletes the amenity", func(t *testing.T) {
		w := executeRequest("DELETE", "/v1/services/"+amenityID, nil, adminToken)
		assert.Equal(t, http.StatusNoContent, w.Code)

		wGet := executeRequest("GET", "/v1/services/"+amenityID, nil, "")
		assert.Equal(t, http.StatusNotFound, wGet.Code)
	})
}
