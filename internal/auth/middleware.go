package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	apperrors "github.com/spec-kit/storefront-service/pkg/util"
)

const subjectKey = "auth_subject"

// Middleware validates bearer tokens on protected routes and exposes the
// resolved subject email to handlers. It deliberately does not hit the
// store: a token for a since-deleted account still passes the gate, and
// the profile endpoint answers 404 on its own lookup.
type Middleware struct {
	tokens *TokenManager
}

// NewMiddleware constructs middleware around the token manager.
func NewMiddleware(tokens *TokenManager) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewInvalidToken("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewInvalidToken("invalid authorization header")
	}

	email, err := m.tokens.Verify(parts[1])
	if err != nil {
		return err
	}

	c.Locals(subjectKey, email)
	return c.Next()
}

// SubjectFromContext retrieves the authenticated email.
func SubjectFromContext(c *fiber.Ctx) (string, bool) {
	val := c.Locals(subjectKey)
	if val == nil {
		return "", false
	}
	email, ok := val.(string)
	return email, ok && email != ""
}
