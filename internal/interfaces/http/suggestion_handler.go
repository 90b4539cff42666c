package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mate-social/internal/application/dto"
	"github.com/jhoicas/mate-social/internal/application/suggestion"
	"github.com/jhoicas/mate-social/internal/domain"
)

// SuggestionHandler resumen de solicitudes (administradores) y alta de solicitudes (usuarios comunes).
type SuggestionHandler struct {
	wf *suggestion.Workflow
}

// NewSuggestionHandler construye el handler.
func NewSuggestionHandler(wf *suggestion.Workflow) *SuggestionHandler {
	return &SuggestionHandler{wf: wf}
}

// List godoc
// @Summary      Resumen de solicitudes por ubicación
// @Description  Ordenado por el backend (más solicitudes primero). Ante un fallo se devuelve el último resumen válido.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.SuggestionListResponse
// @Success      204  "sesión cargando"
// @Success      302  "sin sesión o sin rol de administrador"
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/admin/suggestions [get]
func (h *SuggestionHandler) List(c *fiber.Ctx) error {
	_, err := h.wf.ListSuggestions(c.Context())
	if err != nil && isAccessError(err) {
		return writeError(c, err)
	}
	out := h.list()
	if err != nil && !discarded(err) {
		out.Error = domain.UserMessage(err)
	}
	return c.JSON(out)
}

// StartAccept godoc
// @Summary      Aceptar una ubicación (paso 1)
// @Description  Pone la ubicación en modo "aceptar"; cualquier otra queda cancelada.
// @Tags         admin
// @Produce      json
// @Param        id   path  int  true  "codigo_ubicacion"
// @Success      200  {object}  dto.SuggestionListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/admin/suggestions/{id}/start [post]
func (h *SuggestionHandler) StartAccept(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.wf.StartAccept(id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.list())
}

// CancelAccept godoc
// @Summary      Cancelar la aceptación en curso
// @Tags         admin
// @Produce      json
// @Success      200  {object}  dto.SuggestionListResponse
// @Router       /api/admin/suggestions/cancel [post]
func (h *SuggestionHandler) CancelAccept(c *fiber.Ctx) error {
	h.wf.CancelAccept()
	return c.JSON(h.list())
}

// Accept godoc
// @Summary      Aceptar una ubicación (paso 2)
// @Description  Crea el dispenser en la ubicación en modo "aceptar". Nombre y foto son obligatorios.
// @Tags         admin
// @Accept       mpfd
// @Produce      json
// @Param        name   formData  string  true  "Nombre del dispenser"
// @Param        photo  formData  file    true  "Foto"
// @Success      201  {object}  dto.DispenserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/admin/suggestions/accept [post]
func (h *SuggestionHandler) Accept(c *fiber.Ctx) error {
	var in dto.AcceptSuggestionRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	photo, err := photoFrom(c, "photo")
	if err != nil {
		return writeError(c, err)
	}
	d, err := h.wf.SubmitAccept(c.Context(), in.Name, photo)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewDispenserResponse(*d))
}

// RequestPlacement godoc
// @Summary      Solicitar un dispenser en una ubicación
// @Tags         solicitudes
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CoordinateDTO  true  "latitude, longitude"
// @Success      201   {object}  dto.PlacementRequestResponse
// @Success      204   "sesión cargando"
// @Success      302   "sin sesión o no es usuario común"
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/solicitudes [post]
func (h *SuggestionHandler) RequestPlacement(c *fiber.Ctx) error {
	var in dto.CoordinateDTO
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	req, err := h.wf.RequestPlacement(c.Context(), in.Entity())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewPlacementRequestResponse(req))
}

func (h *SuggestionHandler) list() dto.SuggestionListResponse {
	return dto.NewSuggestionListResponse(h.wf.Suggestions(), h.wf.Accepting())
}
