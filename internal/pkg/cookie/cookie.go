package cookie

import (
	"github.com/gin-gonic/gin"
)

// Set by the identity service on sign-in; this service only reads it.
const AccessTokenCookieName = "access_token"

func GetAccessToken(c *gin.Context) string {
	token, _ := c.Cookie(AccessTokenCookieName)
	return token
}
