package tests

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingHttp "github.com/coworkly/coworkly-backend/internal/booking/http"
)

func TestBookingFlow(t *testing.T) {
	clearTables()

	admin := createTestUser(t, "admin@example.com", "password123", true)
	alice := createTestUser(t, "alice@example.com", "password123", false)
	bob := createTestUser(t, "bob@example.com", "password123", false)

	adminToken := generateToken(admin.ID, admin.Email)
	aliceToken := generateToken(alice.ID, alice.Email)
	bobToken := generateToken(bob.ID, bob.Email)

	sp := createTestSpace(t, adminToken, "Meeting Room A", "monday-09:00-17:00")

	// 2027-01-04 is a Monday, comfortably in the future.
	monday := time.Date(2027, 1, 4, 0, 0, 0, 0, time.UTC)
	at := func(hour int) time.Time { return monday.Add(time.Duration(hour) * time.Hour) }

	var bookingID string

	t.Run("Create booking", func(t *testing.T) {
		payload := bookingHttp.CreateRequest{
			SpaceID:   sp.ID,
			StartTime: at(10),
			EndTime:   at(12),
		}
		w := executeRequest("POST", "/v1/bookings", payload, aliceToken)
		require.Equal(t, http.StatusCreated, w.Code, "Booking should succeed: %s", w.Body.String())

		var resp bookingHttp.BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "pending", resp.Status)
		bookingID = resp.ID
	})

	t.Run("Overlapping booking is rejected", func(t *testing.T) {
		payload := bookingHttp.CreateRequest{
			SpaceID:   sp.ID,
			StartTime: at(11),
			EndTime:   at(13),
		}
		w := executeRequest("POST", "/v1/bookings", payload, bobToken)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Weekend booking is rejected", func(t *testing.T) {
		saturday := monday.AddDate(0, 0, 5)
		payload := bookingHttp.CreateRequest{
			SpaceID:   sp.ID,
			StartTime: saturday.Add(10 * time.Hour),
			EndTime:   saturday.Add(11 * time.Hour),
		}
		w := executeRequest("POST", "/v1/bookings", payload, bobToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Booking outside opening hours is rejected", func(t *testing.T) {
		payload := bookingHttp.CreateRequest{
			SpaceID:   sp.ID,
			StartTime: at(18),
			EndTime:   at(19),
		}
		w := executeRequest("POST", "/v1/bookings", payload, bobToken)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Availability reflects the booking", func(t *testing.T) {
		w := executeRequest("GET", "/v1/spaces/"+sp.ID+"/availability?date=2027-01-04", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp bookingHttp.AvailabilityResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Empty(t, resp.ClosedReason)
		assert.Equal(t, []bookingHttp.IntervalResponse{
			{Start: "09:00", End: "10:00"},
			{Start: "12:00", End: "17:00"},
		}, resp.OpenIntervals)
		assert.Equal(t, []string{"09:00", "12:00", "13:00", "14:00", "15:00", "16:00"}, resp.StartSlots)
	})

	t.Run("Availability on a weekend is closed", func(t *testing.T) {
		w := executeRequest("GET", "/v1/spaces/"+sp.ID+"/availability?date=2027-01-09", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp bookingHttp.AvailabilityResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "weekend", resp.ClosedReason)
		assert.Empty(t, resp.OpenIntervals)
	})

	t.Run("End slots for a chosen start time", func(t *testing.T) {
		w := executeRequest("GET", "/v1/spaces/"+sp.ID+"/availability?date=2027-01-04&start=12:00", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp bookingHttp.AvailabilityResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, []string{"13:00", "14:00", "15:00", "16:00", "17:00"}, resp.EndSlots)
	})

	t.Run("Other user cannot cancel the booking", func(t *testing.T) {
		w := executeRequest("POST", "/v1/bookings/"+bookingID+"/cancel", nil, bobToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Admin confirms the booking", func(t *testing.T) {
		payload := bookingHttp.UpdateStatusRequest{Status: "confirmed"}
		w := executeRequest("PATCH", "/v1/bookings/"+bookingID+"/status", payload, adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		var resp bookingHttp.BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "confirmed", resp.Status)
	})

	t.Run("Owner cancels the booking", func(t *testing.T) {
		w := executeRequest("POST", "/v1/bookings/"+bookingID+"/cancel", nil, aliceToken)
		require.Equal(t, http.StatusOK, w.Code)

		var resp bookingHttp.BookingResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "cancelled", resp.Status)
	})

	t.Run("Availability is full again after cancellation", func(t *testing.T) {
		w := executeRequest("GET", "/v1/spaces/"+sp.ID+"/availability?date=2027-01-04", nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp bookingHttp.AvailabilityResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, []bookingHttp.IntervalResponse{
			{Start: "09:00", End: "17:00"},
		}, resp.OpenIntervals)
	})
}
