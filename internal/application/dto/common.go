package dto

// ErrorResponse cuerpo de error HTTP. Fields replica los errores por campo del backend.
type ErrorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  map[string][]string `json:"fields,omitempty"`
}

// MessageResponse respuesta simple de confirmación.
type MessageResponse struct {
	Message string `json:"message"`
}

// CoordinateDTO par latitud/longitud. Acepta números o strings decimales.
type CoordinateDTO struct {
	Latitude  Decimal `json:"latitude" swaggertype:"string" example:"-34.6037"`
	Longitude Decimal `json:"longitude" swaggertype:"string" example:"-58.3816"`
}
