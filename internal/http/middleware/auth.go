package middleware

import (
	"errors"
	"net/http"
	"strings"

	"laundry/internal/auth"
	"laundry/internal/domain"
	"laundry/internal/http/response"

	"github.com/gin-gonic/gin"
)

const rolesKey = "roles"

// Auth authenticates the bearer token, derives the caller's role set
// and runs it through the rule table before any handler executes.
// Public routes skip the whole chain; every other route needs at least
// a valid token.
func Auth(verifier auth.TokenVerifier, extractor auth.RoleExtractor, rules *auth.RuleTable) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions || rules.IsPublic(c.Request.URL.Path) {
			c.Next()
			return
		}

		token, err := extractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			response.FromDomainError(c, domain.UnauthenticatedError{Msg: err.Error(), Err: err})
			c.Abort()
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			response.FromDomainError(c, domain.UnauthenticatedError{Msg: "invalid token", Err: err})
			c.Abort()
			return
		}

		roles := extractor.Extract(claims)
		if err := rules.Authorize(roles, c.Request.URL.Path); err != nil {
			response.FromDomainError(c, err)
			c.Abort()
			return
		}

		c.Set(rolesKey, roles)
		c.Next()
	}
}

func extractBearerToken(header string) (string, error) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", errors.New("missing bearer token")
	}
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return "", errors.New("invalid authorization scheme")
	}
	token := strings.TrimSpace(header[len(prefix):])
	if token == "" {
		return "", errors.New("missing bearer token")
	}
	return token, nil
}

// GetRoles returns the role set the auth middleware stored for this
// request, if any.
func GetRoles(c *gin.Context) (auth.RoleSet, bool) {
	v, ok := c.Get(rolesKey)
	if !ok {
		return nil, false
	}
	roles, ok := v.(auth.RoleSet)
	return roles, ok
}
