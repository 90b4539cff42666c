package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound      = errors.New("recurso no encontrado")
	ErrInvalidInput  = errors.New("entrada inválida")
	ErrUnauthorized  = errors.New("no autorizado")
	ErrForbidden     = errors.New("acceso denegado")
	ErrNoSession     = errors.New("no hay sesión activa")
	ErrBusy          = errors.New("ya hay una operación en curso")
	ErrClosed        = errors.New("la vista fue cerrada")
	ErrStaleResponse = errors.New("respuesta descartada por obsoleta")

	// ErrResponseTooLarge la respuesta del backend supera el límite de lectura.
	ErrResponseTooLarge = errors.New("respuesta del backend demasiado grande")
)

// ValidationError error local, previo a la red, asociado a un campo.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + ": " + e.Message
}

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NewValidationError construye un error de validación.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// ErrorKind clasifica los fallos del backend.
type ErrorKind string

const (
	KindAuth              ErrorKind = "auth"               // 400 en login
	KindUnauthorized      ErrorKind = "unauthorized"       // 401
	KindForbidden         ErrorKind = "forbidden"          // 403
	KindNotFound          ErrorKind = "not_found"          // 404
	KindBackendValidation ErrorKind = "backend_validation" // 400 con errores por campo
	KindServer            ErrorKind = "server"             // 5xx
	KindConnectivity      ErrorKind = "connectivity"       // sin respuesta
	KindUnexpected        ErrorKind = "unexpected"
)

// APIError fallo de una llamada al backend REST.
type APIError struct {
	Kind   ErrorKind
	Status int                 // 0 si no hubo respuesta
	Detail string              // campo "detail" del backend, si existe
	Fields map[string][]string // errores por campo (DRF)
	Body   []byte              // cuerpo crudo de la respuesta
	Err    error               // causa de transporte, si la hubo
}

func (e *APIError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("backend %s: %v", e.Kind, e.Err)
	case e.Detail != "":
		return fmt.Sprintf("backend %s (HTTP %d): %s", e.Kind, e.Status, e.Detail)
	default:
		return fmt.Sprintf("backend %s (HTTP %d)", e.Kind, e.Status)
	}
}

func (e *APIError) Unwrap() error { return e.Err }

// Is mapea la clase del error a los sentinelas de dominio.
func (e *APIError) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.Kind == KindUnauthorized
	case ErrForbidden:
		return e.Kind == KindForbidden
	case ErrNotFound:
		return e.Kind == KindNotFound
	}
	return false
}

// fieldOrder prioridad al mostrar errores por campo: el primero que aparezca gana.
var fieldOrder = []string{"username", "email", "password", "nombre_dispenser", "foto", "latitud", "longitud", "codigo_ubicacion"}

var fieldLabels = map[string]string{
	"username":         "Usuario",
	"email":            "Email",
	"password":         "Contraseña",
	"nombre_dispenser": "Nombre",
	"foto":             "Foto",
	"latitud":          "Latitud",
	"longitud":         "Longitud",
	"codigo_ubicacion": "Ubicación",
}

// FirstFieldError devuelve el primer error por campo según la prioridad conocida;
// los campos desconocidos se consideran después, en orden alfabético.
func (e *APIError) FirstFieldError() (field, message string, ok bool) {
	if len(e.Fields) == 0 {
		return "", "", false
	}
	for _, f := range fieldOrder {
		if msgs := e.Fields[f]; len(msgs) > 0 {
			return f, msgs[0], true
		}
	}
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if msgs := e.Fields[k]; len(msgs) > 0 {
			return k, msgs[0], true
		}
	}
	return "", "", false
}

// UserMessage traduce cualquier error a un mensaje apto para mostrar al usuario.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	var ae *APIError
	if errors.As(err, &ae) {
		return apiMessage(ae)
	}
	switch {
	case errors.Is(err, ErrNoSession):
		return "No hay sesión activa"
	case errors.Is(err, ErrForbidden):
		return "No tienes permisos para realizar esta acción."
	case errors.Is(err, ErrBusy):
		return "Ya hay una operación en curso, espera a que termine."
	case errors.Is(err, ErrClosed), errors.Is(err, ErrStaleResponse):
		return ""
	case errors.Is(err, ErrNotFound):
		return "Recurso no encontrado"
	}
	return "Ocurrió un error inesperado"
}

func apiMessage(e *APIError) string {
	if errors.Is(e.Err, ErrResponseTooLarge) {
		return "La respuesta del servidor es demasiado grande para procesarla."
	}
	switch e.Kind {
	case KindAuth:
		return "Credenciales no válidas. Revisa tu usuario/contraseña."
	case KindUnauthorized:
		return "Tu sesión expiró. Inicia sesión nuevamente."
	case KindForbidden:
		return "No tienes permisos para realizar esta acción."
	case KindServer:
		return "Error del servidor. Intenta más tarde."
	case KindConnectivity:
		return "No se pudo conectar con el servidor. Revisa tu conexión de internet."
	case KindNotFound:
		if e.Detail != "" {
			return e.Detail
		}
		return "Recurso no encontrado"
	case KindBackendValidation:
		if f, msg, ok := e.FirstFieldError(); ok {
			if label, known := fieldLabels[f]; known {
				return label + ": " + msg
			}
			return f + ": " + msg
		}
		if e.Detail != "" {
			return e.Detail
		}
		if body := strings.TrimSpace(string(e.Body)); body != "" {
			return body
		}
	}
	return "Ocurrió un error inesperado"
}
