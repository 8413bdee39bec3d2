//go:build unit

package api_test

import (
	"net/http"

	"lionrewards/internal/domain/user"

	"github.com/gin-gonic/gin"
)

const testUserID int64 = 7

// fakeAuth stands in for RequireAuth: any Authorization header authenticates as testUserID.
func fakeAuth(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
		return
	}
	c.Set("user_id", testUserID)
	c.Set("user_role", user.RoleMember)
	c.Next()
}
