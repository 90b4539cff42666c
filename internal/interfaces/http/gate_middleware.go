package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mate-social/internal/application/gate"
)

// GateMiddleware protege una ruta con una regla del Authorization Gate:
//   - PENDING → 204 con Retry-After (la sesión o el perfil todavía cargan).
//   - DENIED  → 302 a /login (sin sesión) o /home (rol insuficiente).
//   - ALLOWED → continúa.
//
// La regla se evalúa en cada petición contra el estado actual de la sesión.
func GateMiddleware(src gate.SessionSource, rule gate.Rule) fiber.Handler {
	return func(c *fiber.Ctx) error {
		d := rule.Check(src)
		switch d.Status {
		case gate.StatusPending:
			c.Set(fiber.HeaderRetryAfter, "1")
			return c.SendStatus(fiber.StatusNoContent)
		case gate.StatusDenied:
			return c.Redirect(d.Redirect, fiber.StatusFound)
		}
		return c.Next()
	}
}
