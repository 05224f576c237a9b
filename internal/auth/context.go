package auth

import "github.com/gin-gonic/gin"

// Gin context keys under which AuthRequired stores the caller identity.
const (
	ctxUserID    = "userID"
	ctxUserEmail = "userEmail"
)

// GetUserID returns the authenticated caller's id, or "" when the
// request did not pass AuthRequired.
func GetUserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

// GetUserEmail returns the authenticated caller's email, or "".
func GetUserEmail(c *gin.Context) string {
	return c.GetString(ctxUserEmail)
}
