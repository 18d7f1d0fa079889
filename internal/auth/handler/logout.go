package handler

import (
	"net/http"

	"identity-service/internal/session"

	"github.com/gin-gonic/gin"
)

// Logout clears the session cookie. Tokens are not server-tracked, so there
// is nothing else to revoke; the response is idempotent.
func (h *Handler) Logout(c *gin.Context) {
	session.ClearCookie(c.Writer, h.cookieOpts)

	c.JSON(http.StatusOK, gin.H{
		"ok":      true,
		"message": "Logged out",
	})
}
