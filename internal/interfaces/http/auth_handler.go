package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mate-social/internal/application/auth"
	"github.com/jhoicas/mate-social/internal/application/dto"
	"github.com/jhoicas/mate-social/internal/application/session"
)

// viewCloser vista con estado efímero que se desmonta al cerrar sesión.
type viewCloser interface {
	Close()
}

// AuthHandler maneja login, logout, estado de sesión y alta de cuentas.
type AuthHandler struct {
	uc    *auth.AuthUseCase
	sess  *session.Manager
	views []viewCloser
}

// NewAuthHandler construye el handler de auth. views se cierran en cada logout.
func NewAuthHandler(uc *auth.AuthUseCase, sess *session.Manager, views ...viewCloser) *AuthHandler {
	return &AuthHandler{uc: uc, sess: sess, views: views}
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      200   {object}  dto.SessionResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/session/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	state, err := h.uc.Login(c.Context(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewSessionResponse(state))
}

// Logout godoc
// @Summary      Cerrar sesión
// @Description  Borra el token persistido, descarta el perfil y desmonta las vistas abiertas.
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.MessageResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/session/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	for _, v := range h.views {
		v.Close()
	}
	// El estado en memoria ya quedó limpio aunque falle el borrado persistido.
	if err := h.uc.Logout(c.Context()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: "Sesión cerrada"})
}

// Session godoc
// @Summary      Estado de sesión
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Router       /api/session [get]
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	return c.JSON(dto.NewSessionResponse(h.sess.Snapshot()))
}

// RefreshProfile godoc
// @Summary      Volver a pedir el perfil
// @Tags         session
// @Produce      json
// @Success      200  {object}  dto.SessionResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      503  {object}  dto.ErrorResponse
// @Router       /api/session/profile/refresh [post]
func (h *AuthHandler) RefreshProfile(c *fiber.Ctx) error {
	if _, err := h.sess.RefreshProfile(c.Context()); err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewSessionResponse(h.sess.Snapshot()))
}

// Register godoc
// @Summary      Registrar usuario común
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, email, password, confirm_password"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      503   {object}  dto.ErrorResponse
// @Router       /api/users/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.Register(c.Context(), in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Registro exitoso. Ahora puedes iniciar sesión."})
}

// CreateEmployee godoc
// @Summary      Crear Administrador Empleado
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, email, password, confirm_password"
// @Success      201   {object}  dto.MessageResponse
// @Success      204   "sesión cargando"
// @Success      302   "sin sesión o sin rol de administrador"
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Router       /api/admin/employees [post]
func (h *AuthHandler) CreateEmployee(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.uc.CreateAdminEmployee(c.Context(), in); err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "Administrador empleado creado"})
}
