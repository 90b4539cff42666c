package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mate-social/internal/application/report"
)

// ReportHandler exporta el reporte administrativo en PDF.
type ReportHandler struct {
	uc *report.ReportUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.ReportUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Export godoc
// @Summary      Reporte PDF de solicitudes y dispensers
// @Tags         admin
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Success      204  "sesión cargando"
// @Success      302  "sin sesión o sin rol de administrador"
// @Failure      403  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/admin/report.pdf [get]
func (h *ReportHandler) Export(c *fiber.Ctx) error {
	pdf, err := h.uc.Export(c.Context())
	if err != nil {
		return writeError(c, err)
	}
	filename := fmt.Sprintf("reporte-mate-%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}
