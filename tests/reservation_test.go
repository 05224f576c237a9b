package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	paymentHttp "github.com/coworkly/coworkly-backend/internal/payment/http"
	reservationHttp "github.com/coworkly/coworkly-backend/internal/reservation/http"
)

func TestReservationAndPaymentFlow(t *testing.T) {
	clearTables()

	admin := createTestUser(t, "admin@example.com", "password123", true)
	alice := createTestUser(t, "alice@example.com", "password123", false)

	adminToken := generateToken(admin.ID, admin.Email)
	aliceToken := generateToken(alice.ID, alice.Email)

	sp := createTestSpace(t, adminToken, "Private Office", "monday-09:00-17:00")

	var period string

	t.Run("Create reservation", func(t *testing.T) {
		payload := reservationHttp.CreateRequest{
			SpaceID: sp.ID,
			Start:   "2027-02-01 09:00",
			End:     "2027-02-28 17:00",
		}
		w := executeRequest("POST", "/v1/reservations", payload, aliceToken)
		require.Equal(t, http.StatusCreated, w.Code, "Create reservation should succeed: %s", w.Body.String())

		var resp reservationHttp.ReservationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, alice.ID, resp.UserID)
		period = resp.Period
	})

	t.Run("Duplicate reservation is rejected", func(t *testing.T) {
		payload := reservationHttp.CreateRequest{
			SpaceID: sp.ID,
			Start:   "2027-02-01 09:00",
			End:     "2027-02-28 17:00",
		}
		w := executeRequest("POST", "/v1/reservations", payload, aliceToken)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Invalid period is rejected", func(t *testing.T) {
		payload := reservationHttp.CreateRequest{
			SpaceID: sp.ID,
			Start:   "2027-03-28 17:00",
			End:     "2027-03-01 09:00",
		}
		w := executeRequest("POST", "/v1/reservations", payload, aliceToken)
		assert.Equal(t, http.StatusBadRequest, w.Code, "End before start should be rejected")
	})

	t.Run("Own reservations", func(t *testing.T) {
		w := executeRequest("GET", "/v1/reservations/mine", nil, aliceToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Member cannot list all reservations", func(t *testing.T) {
		w := executeRequest("GET", "/v1/reservations", nil, aliceToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	var paymentID string

	t.Run("Admin records a completed payment", func(t *testing.T) {
		payload := paymentHttp.CreateRequest{
			UserID:             alice.ID,
			ReservationUserID:  alice.ID,
			ReservationSpaceID: sp.ID,
			ReservationPeriod:  period,
			Amount:             400.0,
			Status:             "completed",
			PaymentMethod:      "transfer",
		}
		w := executeRequest("POST", "/v1/payments", payload, adminToken)
		require.Equal(t, http.StatusCreated, w.Code, "Create payment should succeed: %s", w.Body.String())

		var resp paymentHttp.PaymentResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotNil(t, resp.PaymentDate, "Completed payments get a payment date")
		paymentID = resp.ID
	})

	t.Run("Completed payment is immutable", func(t *testing.T) {
		status := "refunded"
		payload := paymentHttp.UpdateRequest{Status: &status}
		w := executeRequest("PATCH", "/v1/payments/"+paymentID, payload, adminToken)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Payment for unknown reservation is rejected", func(t *testing.T) {
		payload := paymentHttp.CreateRequest{
			UserID:             alice.ID,
			ReservationUserID:  alice.ID,
			ReservationSpaceID: sp.ID,
			ReservationPeriod:  "2030-01-01 09:00|2030-01-31 17:00",
			Amount:             100.0,
			Status:             "pending",
			PaymentMethod:      "transfer",
		}
		w := executeRequest("POST", "/v1/payments", payload, adminToken)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
