package handler

import (
	"strings"

	"github.com/brigere/shield-api/internal/auth/domain"
	"github.com/brigere/shield-api/internal/auth/service"
	"github.com/brigere/shield-api/pkg/constant"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// AuthRequired gates protected routes: it requires a well-formed bearer
// token that verifies against the access secret and is not on the
// revocation denylist, then attaches the caller's identity to the request.
//
// Every failure returns the identical 401 body so a caller cannot tell
// which check rejected it.
func AuthRequired(tokens service.TokenGenerator, revocations domain.RevocationStore, log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			log.Warn().Msg("no authorization header provided")
			return unauthorized(c)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != constant.BearerScheme {
			log.Warn().Msg("invalid authorization header format")
			return unauthorized(c)
		}

		claims, err := tokens.VerifyAccessToken(parts[1])
		if err != nil {
			log.Warn().Err(err).Msg("access token verification failed")
			return unauthorized(c)
		}

		// Revocation is checked independently of signature validity: a
		// signed-out token still carries a valid signature.
		revoked, err := revocations.IsRevoked(c.UserContext(), claims.TokenID)
		if err != nil {
			log.Error().Err(err).Msg("revocation store lookup failed")
			return unauthorized(c)
		}
		if revoked {
			log.Warn().Str("token_id", claims.TokenID).Msg("revoked token presented")
			return unauthorized(c)
		}

		c.Locals(constant.LocalsUserID, claims.UserID)
		c.Locals(constant.LocalsEmail, claims.Email)

		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": "invalid or expired token",
	})
}

func bearerToken(authHeader string) string {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 {
		return ""
	}
	return parts[1]
}
