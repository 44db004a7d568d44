package middleware

import (
	"go-purchase-tracker/internal/auth"
	"go-purchase-tracker/internal/handler"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth resolves the caller's identity through the injected
// authenticator and stores the credential for downstream handlers.
func RequireAuth(authenticator auth.Authenticator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cred, err := authenticator.Authenticate(c)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).
				JSON(handler.ErrorResponse("Invalid or missing credentials", handler.CodeUnauthorized))
		}

		auth.Store(c, cred)
		return c.Next()
	}
}

// RequirePrivilege checks that the resolved credential holds the grant for the
// (securable, permission) pair. Routes compose RequireAuth and
// RequirePrivilege, so no handler is reachable without both checks.
func RequirePrivilege(code string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cred := auth.FromContext(c)
		if cred == nil || !cred.HasPrivilege(code) {
			return c.Status(fiber.StatusForbidden).
				JSON(handler.ErrorResponse("Forbidden: requires '"+code+"' privilege", handler.CodeForbidden))
		}
		return c.Next()
	}
}
