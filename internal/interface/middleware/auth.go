package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/quillpress/quillpress/pkg/helpers"
	"github.com/quillpress/quillpress/pkg/response"
)

// CtxUserIDKey is the Gin context key carrying the authenticated user id.
const CtxUserIDKey = "userID"

// Mode controls how Auth treats a request without a token.
type Mode int

const (
	// Required rejects requests that carry no bearer token.
	Required Mode = iota
	// Optional lets anonymous requests through with no identity attached.
	Optional
)

// Auth extracts a bearer token from the Authorization header, verifies it,
// and injects the user id into the context. A present-but-invalid token is
// rejected in both modes; only absence is mode-dependent. The user's
// continued existence is not re-checked per request; the token's claim is
// trusted for its validity window.
func Auth(jwt *helpers.JWTManager, mode Mode) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			if mode == Required {
				response.Fail(c, http.StatusUnauthorized, "missing access token")
				c.Abort()
				return
			}
			c.Next()
			return
		}

		claims, err := jwt.ParseToken(token)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		c.Set(CtxUserIDKey, claims.Subject)
		c.Next()
	}
}

// Identity returns the authenticated user id, or "" for anonymous requests.
func Identity(c *gin.Context) string {
	return c.GetString(CtxUserIDKey)
}
