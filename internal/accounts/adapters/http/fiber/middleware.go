package fiber

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"peakdash-service/internal/accounts/core/domain"
	"peakdash-service/internal/accounts/core/usecase"
	"peakdash-service/internal/logging"

	"github.com/gofiber/fiber/v2"
)

const sessionLocalsKey = "session"

type Authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.Session, error)
}

// RequireSession resolves the bearer token and stores the session in the request locals.
// Handlers read it with SessionFrom and hand it to usecases explicitly.
func RequireSession(auth Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := bearerToken(c.Get(fiber.HeaderAuthorization))

		session, err := auth.Authenticate(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, usecase.ErrUnauthenticated) {
				return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
					Error:   "unauthenticated",
					Message: err.Error(),
				})
			}
			logging.Ctx(c.UserContext()).Error().Err(err).Msg("session lookup failed")
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Error: "internal_server_error",
			})
		}

		c.Locals(sessionLocalsKey, session)
		return c.Next()
	}
}

// SessionFrom returns the session stored by RequireSession.
func SessionFrom(c *fiber.Ctx) (domain.Session, bool) {
	s, ok := c.Locals(sessionLocalsKey).(domain.Session)
	return s, ok
}

func bearerToken(header string) string {
	const prefix = "bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return strings.TrimSpace(header[len(prefix):])
	}
	return ""
}
