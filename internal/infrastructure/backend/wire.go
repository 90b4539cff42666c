package backend

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/mate-social/internal/domain/entity"
)

// ── Estructuras del protocolo REST (nombres de campo del backend) ─────────────

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type accountRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type personaDTO struct {
	CodigoPersona   int64  `json:"codigo_persona"`
	Nombre          string `json:"nombre"`
	Apellido        string `json:"apellido"`
	Direccion       string `json:"direccion"`
	Telefono        string `json:"telefono"`
	FechaNacimiento string `json:"fecha_nacimiento"`
}

type profileDTO struct {
	ID        int64       `json:"id"`
	Username  string      `json:"username"`
	Email     string      `json:"email"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Persona   *personaDTO `json:"persona"`
	Grupos    []string    `json:"grupos"`
}

// decimal.Decimal acepta tanto números JSON (FloatField) como strings (DecimalField).
type ubicacionDTO struct {
	CodigoUbicacion int64           `json:"codigo_ubicacion"`
	Latitud         decimal.Decimal `json:"latitud"`
	Longitud        decimal.Decimal `json:"longitud"`
}

type imagenDTO struct {
	CodigoImagen int64  `json:"codigo_imagen"`
	RutaImagen   string `json:"ruta_imagen"`
}

type dispenserDTO struct {
	CodigoDispenser int64        `json:"codigo_dispenser"`
	NombreDispenser string       `json:"nombre_dispenser"`
	Estado          bool         `json:"estado"`
	Permanencia     bool         `json:"permanencia"`
	Ubicacion       ubicacionDTO `json:"ubicacion"`
	Imagenes        []imagenDTO  `json:"imagenes"`
}

type suggestionDTO struct {
	CodigoUbicacion int64           `json:"codigo_ubicacion"`
	Latitud         decimal.Decimal `json:"latitud"`
	Longitud        decimal.Decimal `json:"longitud"`
	Total           int             `json:"total"`
	Ultima          *time.Time      `json:"ultima"`
}

type placementRequestDTO struct {
	Latitud  decimal.Decimal `json:"latitud"`
	Longitud decimal.Decimal `json:"longitud"`
}

type placementResponseDTO struct {
	CodigoSolicitud int64        `json:"codigo_solicitud"`
	FechaSolicitud  time.Time    `json:"fecha_solicitud"`
	Ubicacion       ubicacionDTO `json:"ubicacion"`
}

// ── Mapeo a entidades ─────────────────────────────────────────────────────────

func (p profileDTO) toEntity() *entity.Profile {
	out := &entity.Profile{
		ID:        p.ID,
		Username:  p.Username,
		Email:     p.Email,
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Groups:    append([]string(nil), p.Grupos...),
	}
	if p.Persona != nil {
		birth, _ := time.Parse("2006-01-02", p.Persona.FechaNacimiento)
		out.Persona = &entity.Persona{
			ID:        p.Persona.CodigoPersona,
			Name:      p.Persona.Nombre,
			LastName:  p.Persona.Apellido,
			Address:   p.Persona.Direccion,
			Phone:     p.Persona.Telefono,
			BirthDate: birth,
		}
	}
	return out
}

func (u ubicacionDTO) toEntity() entity.Location {
	return entity.Location{
		ID:         u.CodigoUbicacion,
		Coordinate: entity.Coordinate{Latitude: u.Latitud, Longitude: u.Longitud},
	}
}

func (d dispenserDTO) toEntity() entity.Dispenser {
	out := entity.Dispenser{
		ID:        d.CodigoDispenser,
		Name:      d.NombreDispenser,
		Active:    d.Estado,
		Permanent: d.Permanencia,
		Location:  d.Ubicacion.toEntity(),
		Images:    make([]entity.Image, 0, len(d.Imagenes)),
	}
	for _, img := range d.Imagenes {
		out.Images = append(out.Images, entity.Image{ID: img.CodigoImagen, Path: img.RutaImagen})
	}
	return out
}

func (s suggestionDTO) toEntity() entity.LocationSuggestion {
	return entity.LocationSuggestion{
		LocationID:      s.CodigoUbicacion,
		Coordinate:      entity.Coordinate{Latitude: s.Latitud, Longitude: s.Longitud},
		RequestCount:    s.Total,
		LastRequestedAt: s.Ultima,
	}
}
