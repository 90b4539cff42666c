package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mate-social/internal/application/dto"
	"github.com/jhoicas/mate-social/internal/domain"
)

// writeError traduce un error de aplicación a status HTTP + dto.ErrorResponse.
// El mensaje es siempre el que vería el usuario (domain.UserMessage).
func writeError(c *fiber.Ctx, err error) error {
	status, body := errorResponse(err)
	return c.Status(status).JSON(body)
}

func errorResponse(err error) (int, dto.ErrorResponse) {
	msg := domain.UserMessage(err)
	if msg == "" {
		msg = err.Error()
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		body := dto.ErrorResponse{Code: "VALIDATION", Message: msg}
		if ve.Field != "" {
			body.Fields = map[string][]string{ve.Field: {ve.Message}}
		}
		return fiber.StatusBadRequest, body
	}

	var ae *domain.APIError
	if errors.As(err, &ae) {
		switch ae.Kind {
		case domain.KindAuth:
			return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "INVALID_CREDENTIALS", Message: msg}
		case domain.KindUnauthorized:
			return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "SESSION_EXPIRED", Message: msg}
		case domain.KindForbidden:
			return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: msg}
		case domain.KindNotFound:
			return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: msg}
		case domain.KindBackendValidation:
			return fiber.StatusBadRequest, dto.ErrorResponse{Code: "BACKEND_VALIDATION", Message: msg, Fields: ae.Fields}
		case domain.KindServer:
			return fiber.StatusBadGateway, dto.ErrorResponse{Code: "BACKEND_ERROR", Message: msg}
		case domain.KindConnectivity:
			return fiber.StatusServiceUnavailable, dto.ErrorResponse{Code: "BACKEND_UNREACHABLE", Message: msg}
		}
		return fiber.StatusBadGateway, dto.ErrorResponse{Code: "UNEXPECTED", Message: msg}
	}

	switch {
	case errors.Is(err, domain.ErrNoSession):
		return fiber.StatusUnauthorized, dto.ErrorResponse{Code: "NO_SESSION", Message: msg}
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, dto.ErrorResponse{Code: "FORBIDDEN", Message: msg}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Code: "NOT_FOUND", Message: msg}
	case errors.Is(err, domain.ErrBusy):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "BUSY", Message: msg}
	case errors.Is(err, domain.ErrClosed), errors.Is(err, domain.ErrStaleResponse):
		return fiber.StatusConflict, dto.ErrorResponse{Code: "DISCARDED", Message: msg}
	}
	return fiber.StatusInternalServerError, dto.ErrorResponse{Code: "INTERNAL", Message: msg}
}

// discarded indica respuestas que la vista ya no debe aplicar (vista cerrada o pedido viejo).
func discarded(err error) bool {
	return errors.Is(err, domain.ErrClosed) || errors.Is(err, domain.ErrStaleResponse)
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}

// isAccessError fallos de sesión o permisos: se informan como error, no como lista vacía.
func isAccessError(err error) bool {
	return errors.Is(err, domain.ErrNoSession) || errors.Is(err, domain.ErrForbidden) || errors.Is(err, domain.ErrUnauthorized)
}
