package tests

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userHttp "github.com/coworkly/coworkly-backend/internal/user/http"
)

func TestAuthFlow(t *testing.T) {
	clearTables()

	// Variable shared between sub-tests
	var accessToken string

	t.Run("Register User", func(t *testing.T) {
		registerPayload := userHttp.RegisterRequest{
			Name:     "Tester",
			Email:    "test@example.com",
			Password: "password123",
		}
		w := executeRequest("POST", "/v1/auth/register", registerPayload, "")
		assert.Equal(t, http.StatusCreated, w.Code, "Register should succeed")
	})

	t.Run("Duplicate Register", func(t *testing.T) {
		registerPayload := userHttp.RegisterRequest{
			Name:     "Tester",
			Email:    "test@example.com",
			Password: "password123",
		}
		wDuplicate := executeRequest("POST", "/v1/auth/register", registerPayload, "")
		assert.Equal(t, http.StatusConflict, wDuplicate.Code, "Duplicate email should return 409")
	})

	t.Run("Login", func(t *testing.T) {
		loginPayload := userHttp.LoginRequest{
			Email:    "test@example.com",
			Password: "password123",
		}
		wLogin := executeRequest("POST", "/v1/auth/login", loginPayload, "")

		// Use require because we need the token for the next step
		require.Equal(t, http.StatusOK, wLogin.Code, "Login should succeed")

		var loginResp userHttp.LoginResponse
		err := json.Unmarshal(wLogin.Body.Bytes(), &loginResp)
		require.NoError(t, err, "Should parse login response")
		assert.NotEmpty(t, loginResp.AccessToken, "Access token should not be empty")

		// Save token for next step
		accessToken = loginResp.AccessToken
	})

	t.Run("Get Current User", func(t *testing.T) {
		wMe := executeRequest("GET", "/v1/me", nil, accessToken)
		assert.Equal(t, http.StatusOK, wMe.Code, "Get Me should succeed")
	})

	t.Run("Login with Wrong Password", func(t *testing.T) {
		payload := userHttp.LoginRequest{
			Email:    "test@example.com",
			Password: "wrongpassword",
		}
		w := executeRequest("POST", "/v1/auth/login", payload, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "Should return 401 for wrong password")
	})

	t.Run("Login with Non-existent Email", func(t *testing.T) {
		payload := userHttp.LoginRequest{
			Email:    "ghost@example.com",
			Password: "password123",
		}
		w := executeRequest("POST", "/v1/auth/login", payload, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "Should return 401 for non-existent user")
	})

	t.Run("Get Me with Invalid Token", func(t *testing.T) {
		w := executeRequest("GET", "/v1/me", nil, "invalid-token-string")
		assert.Equal(t, http.StatusUnauthorized, w.Code, "Should return 401 for invalid token")
	})
}

func TestUserManagementPermissions(t *testing.T) {
	clearTables()

	admin := createTestUser(t, "admin@example.com", "password123", true)
	member := createTestUser(t, "member@example.com", "password123", false)

	adminToken := generateToken(admin.ID, admin.Email)
	memberToken := generateToken(member.ID, member.Email)

	t.Run("Member cannot list users", func(t *testing.T) {
		w := executeRequest("GET", "/v1/users", nil, memberToken)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Admin can list users", func(t *testing.T) {
		w := executeRequest("GET", "/v1/users", nil, adminToken)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Admin can deactivate a user", func(t *testing.T) {
		inactive := false
		payload := userHttp.UpdateUserRequest{IsActive: &inactive}
		w := executeRequest("PATCH", "/v1/users/"+member.ID, payload, adminToken)
		require.Equal(t, http.StatusOK, w.Code)

		var resp userHttp.UserResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.IsActive)
	})

	t.Run("Deactivated user cannot login", func(t *testing.T) {
		payload := userHttp.LoginRequest{
			Email:    "member@example.com",
			Password: "password123",
		}
		w := executeRequest("POST", "/v1/auth/login", payload, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
