package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/kizunaworks/sasaeru/internal/types"
)

// Session validates that the request carries the staff session cookie
func Session(cookieName, secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		session := c.Cookies(cookieName)
		if session == "" {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: "Session cookie \"" + cookieName + "\" not found",
				Type:    "authorization.session",
			}
		}

		if subtle.ConstantTimeCompare([]byte(session), []byte(secret)) != 1 {
			return &types.CustomError{
				Code:    fiber.StatusForbidden,
				Message: "Invalid session",
				Type:    "authorization.session",
			}
		}

		return c.Next()
	}
}
