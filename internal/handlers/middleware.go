package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const ctxUserID = "userId"

// errCredentials is the single 401 body for every identity failure: missing
// or malformed header, invalid or expired token, or a subject that no longer
// resolves to a user. Uniform on purpose.
const errCredentials = "could not validate credentials"

// identityMiddleware extracts the bearer token, validates it, and resolves
// it to an existing user. Nothing behind /api/v1 runs without it.
func (h *Handler) identityMiddleware(c *gin.Context) {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errCredentials})
		return
	}

	user, err := h.services.ResolveUser(c.Request.Context(), parts[1])
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": errCredentials})
		return
	}

	c.Set(ctxUserID, user.ID)
	c.Next()
}

// currentUserID reads the identity the middleware attached.
func currentUserID(c *gin.Context) (int, bool) {
	v, ok := c.Get(ctxUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}
