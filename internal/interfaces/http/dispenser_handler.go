package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mate-social/internal/application/dispenser"
	"github.com/jhoicas/mate-social/internal/application/dto"
	"github.com/jhoicas/mate-social/internal/domain"
	"github.com/jhoicas/mate-social/internal/domain/entity"
)

// DispenserHandler listado, mapa y ABM de dispensers.
type DispenserHandler struct {
	ctrl *dispenser.Controller
}

// NewDispenserHandler construye el handler.
func NewDispenserHandler(ctrl *dispenser.Controller) *DispenserHandler {
	return &DispenserHandler{ctrl: ctrl}
}

// List godoc
// @Summary      Listar dispensers
// @Description  Lectura pública. Si el backend falla se devuelve la última lista válida con el error.
// @Tags         dispensers
// @Produce      json
// @Success      200  {object}  dto.DispenserListResponse
// @Router       /api/dispensers [get]
func (h *DispenserHandler) List(c *fiber.Ctx) error {
	_, err := h.ctrl.List(c.Context())
	out := dto.NewDispenserListResponse(h.ctrl.Dispensers())
	if err != nil && !discarded(err) {
		out.Error = domain.UserMessage(err)
	}
	return c.JSON(out)
}

// Map godoc
// @Summary      Vista de mapa
// @Description  Centro y zoom iniciales, un marcador por dispenser y el estado de selección.
// @Tags         map
// @Produce      json
// @Success      200  {object}  dto.MapResponse
// @Router       /api/map [get]
func (h *DispenserHandler) Map(c *fiber.Ctx) error {
	_, err := h.ctrl.List(c.Context())
	out := dto.MapResponse{
		Center:    dto.NewCoordinateDTO(entity.DefaultMapCenter),
		Zoom:      entity.DefaultMapZoom,
		Markers:   dto.NewMarkers(h.ctrl.Markers()),
		Selecting: h.ctrl.Selecting(),
	}
	if err != nil && !discarded(err) {
		out.Error = domain.UserMessage(err)
	}
	return c.JSON(out)
}

// ArmSelection godoc
// @Summary      Armar selección de coordenada
// @Description  El próximo click en el mapa se captura como ubicación del formulario.
// @Tags         map
// @Produce      json
// @Success      200  {object}  dto.FormResponse
// @Success      204  "sesión cargando"
// @Success      302  "sin sesión o rol insuficiente"
// @Router       /api/map/select [post]
func (h *DispenserHandler) ArmSelection(c *fiber.Ctx) error {
	h.ctrl.ArmSelection()
	return c.JSON(h.form())
}

// CancelSelection godoc
// @Summary      Cancelar selección de coordenada
// @Tags         map
// @Produce      json
// @Success      200  {object}  dto.FormResponse
// @Success      204  "sesión cargando"
// @Success      302  "sin sesión o rol insuficiente"
// @Router       /api/map/select [delete]
func (h *DispenserHandler) CancelSelection(c *fiber.Ctx) error {
	h.ctrl.CancelSelection()
	return c.JSON(h.form())
}

// MapClick godoc
// @Summary      Click en el mapa
// @Description  Solo tiene efecto si la selección está armada; se captura una única vez.
// @Tags         map
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CoordinateDTO  true  "latitude, longitude"
// @Success      200   {object}  dto.MapClickResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Success      204   "sesión cargando"
// @Success      302   "sin sesión o rol insuficiente"
// @Router       /api/map/click [post]
func (h *DispenserHandler) MapClick(c *fiber.Ctx) error {
	var in dto.CoordinateDTO
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	at := in.Entity()
	if err := at.Validate(); err != nil {
		return writeError(c, domain.NewValidationError("ubicacion", err.Error()))
	}
	captured := h.ctrl.MapClick(at)
	return c.JSON(dto.MapClickResponse{Captured: captured, Form: h.form()})
}

// Form godoc
// @Summary      Formulario pendiente
// @Tags         dispensers
// @Produce      json
// @Success      200  {object}  dto.FormResponse
// @Router       /api/dispensers/form [get]
func (h *DispenserHandler) Form(c *fiber.Ctx) error {
	return c.JSON(h.form())
}

// ResetForm godoc
// @Summary      Descartar formulario
// @Tags         dispensers
// @Produce      json
// @Success      200  {object}  dto.FormResponse
// @Router       /api/dispensers/form [delete]
func (h *DispenserHandler) ResetForm(c *fiber.Ctx) error {
	h.ctrl.ResetForm()
	return c.JSON(h.form())
}

// StartEdit godoc
// @Summary      Cargar un dispenser en el formulario
// @Tags         dispensers
// @Produce      json
// @Param        id   path  int  true  "codigo_dispenser"
// @Success      200  {object}  dto.FormResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dispensers/{id}/edit [post]
func (h *DispenserHandler) StartEdit(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.ctrl.StartEdit(id); err != nil {
		return writeError(c, err)
	}
	return c.JSON(h.form())
}

// Create godoc
// @Summary      Crear dispenser
// @Description  Multipart. Si no se envían latitude/longitude se usa la coordenada capturada en el mapa.
// @Tags         dispensers
// @Accept       mpfd
// @Produce      json
// @Param        name       formData  string  true   "Nombre"
// @Param        active     formData  bool    false  "Activo"
// @Param        permanent  formData  bool    false  "Permanente"
// @Param        latitude   formData  string  false  "Latitud"
// @Param        longitude  formData  string  false  "Longitud"
// @Param        photo      formData  file    false  "Foto"
// @Success      201  {object}  dto.DispenserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/dispensers [post]
func (h *DispenserHandler) Create(c *fiber.Ctx) error {
	if err := h.bindForm(c); err != nil {
		return writeError(c, err)
	}
	d, err := h.ctrl.Create(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.NewDispenserResponse(*d))
}

// Update godoc
// @Summary      Editar dispenser
// @Tags         dispensers
// @Accept       mpfd
// @Produce      json
// @Param        id         path      int     true   "codigo_dispenser"
// @Param        name       formData  string  true   "Nombre"
// @Param        active     formData  bool    false  "Activo"
// @Param        permanent  formData  bool    false  "Permanente"
// @Param        latitude   formData  string  false  "Latitud"
// @Param        longitude  formData  string  false  "Longitud"
// @Param        photo      formData  file    false  "Foto"
// @Success      200  {object}  dto.DispenserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dispensers/{id} [put]
func (h *DispenserHandler) Update(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.bindForm(c); err != nil {
		return writeError(c, err)
	}
	d, err := h.ctrl.Update(c.Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.NewDispenserResponse(*d))
}

// Delete godoc
// @Summary      Eliminar dispenser
// @Tags         dispensers
// @Param        id   path  int  true  "codigo_dispenser"
// @Success      204
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/dispensers/{id} [delete]
func (h *DispenserHandler) Delete(c *fiber.Ctx) error {
	id, err := idParam(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := h.ctrl.Remove(c.Context(), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// bindForm vuelca el multipart sobre el formulario del controlador.
func (h *DispenserHandler) bindForm(c *fiber.Ctx) error {
	var in dto.DispenserFormRequest
	if err := c.BodyParser(&in); err != nil {
		return domain.NewValidationError("", "Formulario inválido")
	}
	at, ok, err := coordinateFrom(in.Latitude, in.Longitude)
	if err != nil {
		return err
	}
	photo, err := photoFrom(c, "photo")
	if err != nil {
		return err
	}

	h.ctrl.SetFields(dispenser.Fields{Name: in.Name, Active: in.Active, Permanent: in.Permanent})
	if ok {
		h.ctrl.SetCoordinate(at)
	}
	if photo != nil {
		h.ctrl.AttachPhoto(photo)
	}
	return nil
}

func (h *DispenserHandler) form() dto.FormResponse {
	return newFormResponse(h.ctrl.Form(), h.ctrl.Selecting())
}

func newFormResponse(f dispenser.Form, selecting bool) dto.FormResponse {
	out := dto.FormResponse{
		EditingID: f.EditingID,
		Name:      f.Name,
		Active:    f.Active,
		Permanent: f.Permanent,
		HasPhoto:  !f.Photo.IsEmpty(),
		Selecting: selecting,
	}
	if f.Coordinate != nil {
		at := dto.NewCoordinateDTO(*f.Coordinate)
		out.Coordinate = &at
	}
	return out
}
