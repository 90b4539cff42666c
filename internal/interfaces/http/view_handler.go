package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mate-social/internal/application/dto"
	"github.com/jhoicas/mate-social/internal/application/gate"
	"github.com/jhoicas/mate-social/internal/application/session"
)

// ViewHandler destinos de redirección del gate. La UI del navegador los reemplaza;
// aquí solo describen la vista.
type ViewHandler struct {
	sess *session.Manager
}

// NewViewHandler construye el handler.
func NewViewHandler(sess *session.Manager) *ViewHandler {
	return &ViewHandler{sess: sess}
}

// Home vista principal (requiere sesión).
func (h *ViewHandler) Home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"view": "home", "session": dto.NewSessionResponse(h.sess.Snapshot())})
}

// Login vista de login. Con sesión activa redirige a /home.
func (h *ViewHandler) Login(c *fiber.Ctx) error {
	if h.sess.Token() != "" {
		return c.Redirect(gate.RedirectHome, fiber.StatusFound)
	}
	return c.JSON(fiber.Map{"view": "login"})
}
