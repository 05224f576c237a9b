package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	contactHttp "github.com/coworkly/coworkly-backend/internal/contact/http"
)

func TestContactForm(t *testing.T) {
	clearTables()

	admin := createTestUser(t, "admin@example.com", "password123", true)
	member := createTestUser(t, "member@example.com", "password123", false)

	adminToken := generateToken(admin.ID, admin.Email)
	memberToken := generateToken(member.ID, member.Email)

	t.Run("Anyone can submit the contact form", func(t *testing.T) {
		payload := contactHttp.SubmitRequest{
			Name:    "Visitor",
			Email:   "visitor@example.com",
			Subject: "Opening hours",
			Body:    "Are you open on public holidays?",
		}
		w := executeRequest("POST", "/v1/contact", payload, "")
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("Missing fields are rejected", func(t *testing.T) {
		payload := contactHttp.SubmitRequest{Name: "Visitor"}
		w := executeRequest("POST", "/v1/contact", payload, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Member cannot read the mailbox", func(t *testing.T) {
		w := executeRequest("GET", "/v1/contact", nil, memberToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Admin can read the mailbox", func(t *testing.T) {
		w := executeRequest("GET", "/v1/contact", nil, adminToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}
