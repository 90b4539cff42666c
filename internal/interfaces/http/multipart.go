package http

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mate-social/internal/domain"
	"github.com/jhoicas/mate-social/internal/domain/entity"
)

const (
	// MaxPhotoBytes tamaño máximo aceptado para una foto.
	MaxPhotoBytes = 5 << 20
	// BodyLimit límite de cuerpo para fiber.Config: una foto máxima más los campos del formulario.
	BodyLimit     = MaxPhotoBytes + 1<<20
)

// photoFrom lee el archivo field de un multipart. nil si la petición no trae archivo.
func photoFrom(c *fiber.Ctx, field string) (*entity.Photo, error) {
	if !bytes.HasPrefix(c.Request().Header.ContentType(), []byte(fiber.MIMEMultipartForm)) {
		return nil, nil
	}
	form, err := c.MultipartForm()
	if err != nil {
		return nil, fmt.Errorf("multipart: %w", err)
	}
	files := form.File[field]
	if len(files) == 0 {
		return nil, nil
	}
	fh := files[0]
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("abrir %s: %w", field, err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxPhotoBytes+1))
	if err != nil {
		return nil, fmt.Errorf("leer %s: %w", field, err)
	}
	if len(data) > MaxPhotoBytes {
		return nil, domain.NewValidationError("foto", "La imagen supera los 5 MB")
	}
	return &entity.Photo{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(fiber.HeaderContentType),
		Data:        data,
	}, nil
}

// coordinateFrom parsea latitud/longitud opcionales del formulario.
// ok=false si no vino ninguna de las dos.
func coordinateFrom(lat, lng string) (entity.Coordinate, bool, error) {
	lat, lng = strings.TrimSpace(lat), strings.TrimSpace(lng)
	if lat == "" && lng == "" {
		return entity.Coordinate{}, false, nil
	}
	la, err := decimal.NewFromString(lat)
	if err != nil {
		return entity.Coordinate{}, false, domain.NewValidationError("latitud", "Latitud inválida")
	}
	lo, err := decimal.NewFromString(lng)
	if err != nil {
		return entity.Coordinate{}, false, domain.NewValidationError("longitud", "Longitud inválida")
	}
	at := entity.Coordinate{Latitude: la, Longitude: lo}
	if err := at.Validate(); err != nil {
		return entity.Coordinate{}, false, domain.NewValidationError("ubicacion", err.Error())
	}
	return at, true, nil
}

// idParam lee el parámetro :id como entero positivo.
func idParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError("id", "Identificador inválido")
	}
	return id, nil
}
