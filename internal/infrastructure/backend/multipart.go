package backend

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"strconv"

	"github.com/jhoicas/mate-social/internal/domain/entity"
)

// formBuilder arma un cuerpo multipart/form-data. El primer error se conserva y
// se devuelve en build.
type formBuilder struct {
	buf bytes.Buffer
	w   *multipart.Writer
	err error
}

func newFormBuilder() *formBuilder {
	f := &formBuilder{}
	f.w = multipart.NewWriter(&f.buf)
	return f
}

func (f *formBuilder) field(name, value string) *formBuilder {
	if f.err == nil {
		f.err = f.w.WriteField(name, value)
	}
	return f
}

func (f *formBuilder) boolField(name string, v bool) *formBuilder {
	return f.field(name, strconv.FormatBool(v))
}

func (f *formBuilder) file(name string, p *entity.Photo) *formBuilder {
	if f.err != nil || p.IsEmpty() {
		return f
	}
	filename := p.Filename
	if filename == "" {
		filename = "foto.jpg"
	}
	contentType := p.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, name, filename))
	h.Set("Content-Type", contentType)
	part, err := f.w.CreatePart(h)
	if err != nil {
		f.err = err
		return f
	}
	_, f.err = part.Write(p.Data)
	return f
}

func (f *formBuilder) build() (*bytes.Buffer, string, error) {
	if f.err != nil {
		return nil, "", fmt.Errorf("backend: armar multipart: %w", f.err)
	}
	if err := f.w.Close(); err != nil {
		return nil, "", fmt.Errorf("backend: cerrar multipart: %w", err)
	}
	return &f.buf, f.w.FormDataContentType(), nil
}

// dispenserForm campos del alta/edición: nombre_dispenser, estado, permanencia, latitud, longitud, foto?.
func dispenserForm(in entity.DispenserInput) (*bytes.Buffer, string, error) {
	c := in.Coordinate.Normalized()
	return newFormBuilder().
		field("nombre_dispenser", in.Name).
		boolField("estado", in.Active).
		boolField("permanencia", in.Permanent).
		field("latitud", c.Latitude.String()).
		field("longitud", c.Longitude.String()).
		file("foto", in.Photo).
		build()
}
