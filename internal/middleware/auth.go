// Package middleware carries the per-request authorization guard applied to
// every protected route.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/md-ali-0/skillsync-server/internal/auth/domain"
	"github.com/md-ali-0/skillsync-server/internal/auth/service"
	autherror "github.com/md-ali-0/skillsync-server/internal/errors"
)

const principalKey = "principal"

// TokenVerifier is the slice of the token service the guard needs.
type TokenVerifier interface {
	Verify(tokenString string, purpose service.TokenPurpose) (*service.JWTCustomClaims, error)
}

// Guard authenticates the bearer token and enforces the route's role
// allow-list. An empty allow-list admits any authenticated principal. The
// guard is stateless; the principal lives only in the request context.
func Guard(tokens TokenVerifier, roles ...domain.Role) fiber.Handler {
	allowed := make(map[domain.Role]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			return autherror.ErrMissingToken
		}

		claims, err := tokens.Verify(token, service.PurposeAccess)
		if err != nil {
			return autherror.ErrInvalidToken
		}

		role := domain.Role(claims.Role)
		if len(allowed) > 0 {
			if _, ok := allowed[role]; !ok {
				return autherror.ErrForbidden
			}
		}

		c.Locals(principalKey, domain.Principal{UserID: claims.UserID, Role: role})

		return c.Next()
	}
}

// PrincipalFrom returns the principal the guard attached to the request.
func PrincipalFrom(c *fiber.Ctx) (domain.Principal, bool) {
	p, ok := c.Locals(principalKey).(domain.Principal)
	return p, ok
}
