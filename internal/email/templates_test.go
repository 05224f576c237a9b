package email

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBookingConfirmation(t *testing.T) {
	start := time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 9, 11, 0, 0, 0, time.UTC)

	msg := BookingConfirmation("user@example.com", "Open Desk Loft", start, end)

	assert.Equal(t, "user@example.com", msg.To)
	assert.Equal(t, "Booking received: Open Desk Loft", msg.Subject)
	assert.Contains(t, msg.Body, "Monday, 9 June 2025")
	assert.Contains(t, msg.Body, "09:00 - 11:00 (UTC)")
}

func TestBookingConfirmationNormalizesTimezone(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	assert.NoError(t, err)

	start := time.Date(2025, 6, 9, 18, 0, 0, 0, tokyo) // 09:00 UTC
	end := time.Date(2025, 6, 9, 20, 0, 0, 0, tokyo)

	msg := BookingConfirmation("user@example.com", "Open Desk Loft", start, end)
	assert.Contains(t, msg.Body, "09:00 - 11:00 (UTC)")
}

func TestContactNotification(t *testing.T) {
	msg := ContactNotification("inbox@coworkly.test", "Jordan", "jordan@example.com", "Meeting rooms", "Do you rent meeting rooms?")

	assert.Equal(t, "inbox@coworkly.test", msg.To)
	assert.Equal(t, "Contact form: Meeting rooms", msg.Subject)
	assert.Contains(t, msg.Body, "Jordan <jordan@example.com>")
	assert.Contains(t, msg.Body, "Do you rent meeting rooms?")
}
