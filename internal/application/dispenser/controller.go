// Package dispenser controla el listado público de dispensers, su alta/edición/baja
// por personal autorizado y la selección de coordenadas en el mapa.
package dispenser

import (
	"context"
	"strings"
	"sync"

	"golang.org/x/text/unicode/norm"

	"github.com/jhoicas/mate-social/internal/application/ports"
	"github.com/jhoicas/mate-social/internal/domain"
	"github.com/jhoicas/mate-social/internal/domain/entity"
	"github.com/jhoicas/mate-social/pkg/logger"
)

// SessionSource token y capacidades de la sesión actual (session.Manager).
type SessionSource interface {
	Token() string
	Capabilities() entity.Capabilities
}

// Fields campos editables del formulario.
type Fields struct {
	Name      string
	Active    bool
	Permanent bool
}

// Form estado efímero del formulario de alta/edición.
type Form struct {
	EditingID  int64 // 0 = alta
	Fields
	Coordinate *entity.Coordinate
	Photo      *entity.Photo
}

// Controller estado de la vista de dispensers. Seguro para uso concurrente.
type Controller struct {
	gw   ports.DispenserGateway
	sess SessionSource
	log  *logger.Logger

	mu          sync.Mutex
	items       []entity.Dispenser
	listErr     error
	listSeq     uint64
	listApplied uint64
	form        Form
	selecting   bool
	busy        bool
	gen         uint64 // se incrementa en Close
}

// NewController crea el controlador con la lista vacía.
func NewController(gw ports.DispenserGateway, sess SessionSource, log *logger.Logger) *Controller {
	if log == nil {
		log = logger.NewNop()
	}
	return &Controller{gw: gw, sess: sess, log: log.Named("dispensers")}
}

// ─── Listado ──────────────────────────────────────────────────────────────────

// List obtiene todos los dispensers (no requiere sesión). Ante un error se conserva
// la última lista válida y el error queda disponible en LastError.
func (c *Controller) List(ctx context.Context) ([]entity.Dispenser, error) {
	c.mu.Lock()
	c.listSeq++
	seq, gen := c.listSeq, c.gen
	c.mu.Unlock()

	items, err := c.gw.ListDispensers(ctx, c.sess.Token())

	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return nil, domain.ErrClosed
	}
	if seq <= c.listApplied {
		return nil, domain.ErrStaleResponse
	}
	c.listApplied = seq
	if err != nil {
		c.log.Warn().Err(err).Msg("no se pudo obtener la lista de dispensers")
		c.listErr = err
		return c.snapshotLocked(), err
	}
	c.items = items
	c.listErr = nil
	return c.snapshotLocked(), nil
}

// Dispensers última lista válida.
func (c *Controller) Dispensers() []entity.Dispenser {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Markers marcadores del mapa para la última lista válida.
func (c *Controller) Markers() []entity.Marker {
	return entity.MarkersFor(c.Dispensers())
}

// LastError error del último listado (nil si fue exitoso).
func (c *Controller) LastError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.listErr
}

func (c *Controller) snapshotLocked() []entity.Dispenser {
	out := make([]entity.Dispenser, len(c.items))
	copy(out, c.items)
	return out
}

// ─── Formulario ───────────────────────────────────────────────────────────────

// Form copia del formulario actual.
func (c *Controller) Form() Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// SetFields reemplaza nombre, estado y permanencia.
func (c *Controller) SetFields(f Fields) {
	c.mu.Lock()
	c.form.Fields = f
	c.mu.Unlock()
}

// SetCoordinate fija la coordenada sin pasar por el mapa.
func (c *Controller) SetCoordinate(at entity.Coordinate) {
	c.mu.Lock()
	c.form.Coordinate = &at
	c.mu.Unlock()
}

// AttachPhoto adjunta (o quita, con nil) la foto del formulario.
func (c *Controller) AttachPhoto(p *entity.Photo) {
	c.mu.Lock()
	c.form.Photo = p
	c.mu.Unlock()
}

// StartEdit carga en el formulario un dispenser de la lista actual.
func (c *Controller) StartEdit(id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range c.items {
		if d.ID == id {
			at := d.Location.Coordinate
			c.form = Form{
				EditingID:  d.ID,
				Fields:     Fields{Name: d.Name, Active: d.Active, Permanent: d.Permanent},
				Coordinate: &at,
			}
			c.selecting = false
			return nil
		}
	}
	return domain.ErrNotFound
}

// ResetForm descarta el formulario y desarma la selección.
func (c *Controller) ResetForm() {
	c.mu.Lock()
	c.resetLocked()
	c.mu.Unlock()
}

func (c *Controller) resetLocked() {
	c.form = Form{}
	c.selecting = false
}

// ─── Selección de coordenadas ────────────────────────────────────────────────

// ArmSelection habilita la captura de un único click en el mapa.
func (c *Controller) ArmSelection() {
	c.mu.Lock()
	c.selecting = true
	c.mu.Unlock()
}

// CancelSelection desarma la captura sin tocar la coordenada ya elegida.
func (c *Controller) CancelSelection() {
	c.mu.Lock()
	c.selecting = false
	c.mu.Unlock()
}

// Selecting indica si el próximo click será capturado.
func (c *Controller) Selecting() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selecting
}

// MapClick captura la coordenada si la selección está armada y la desarma.
// Un click sin selección armada no tiene efecto. Devuelve si hubo captura.
func (c *Controller) MapClick(at entity.Coordinate) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.selecting {
		return false
	}
	c.form.Coordinate = &at
	c.selecting = false
	return true
}

// ─── Mutaciones ───────────────────────────────────────────────────────────────

// Submit crea o actualiza según el formulario esté editando un registro.
func (c *Controller) Submit(ctx context.Context) (*entity.Dispenser, error) {
	if id := c.Form().EditingID; id != 0 {
		return c.Update(ctx, id)
	}
	return c.Create(ctx)
}

// Create da de alta un dispenser con el formulario actual.
func (c *Controller) Create(ctx context.Context) (*entity.Dispenser, error) {
	return c.save(ctx, 0)
}

// Update edita el dispenser id con el formulario actual.
func (c *Controller) Update(ctx context.Context, id int64) (*entity.Dispenser, error) {
	if id <= 0 {
		return nil, domain.NewValidationError("id", "Dispenser inválido")
	}
	return c.save(ctx, id)
}

func (c *Controller) save(ctx context.Context, id int64) (*entity.Dispenser, error) {
	token, err := c.authorize()
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return nil, domain.ErrBusy
	}
	in, err := inputFrom(c.form)
	if err != nil {
		c.mu.Unlock()
		return nil, err
	}
	c.busy = true
	gen := c.gen
	c.mu.Unlock()
	defer c.release()

	var d *entity.Dispenser
	if id == 0 {
		d, err = c.gw.CreateDispenser(ctx, token, in)
	} else {
		d, err = c.gw.UpdateDispenser(ctx, token, id, in)
	}
	if err != nil {
		c.log.Warn().Err(err).Int64("id", id).Msg("no se pudo guardar el dispenser")
		return nil, err
	}

	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return nil, domain.ErrClosed
	}
	c.resetLocked()
	c.mu.Unlock()

	c.refetch(ctx)
	return d, nil
}

// Remove elimina un dispenser. Si estaba en edición, el formulario se descarta.
func (c *Controller) Remove(ctx context.Context, id int64) error {
	token, err := c.authorize()
	if err != nil {
		return err
	}

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return domain.ErrBusy
	}
	c.busy = true
	gen := c.gen
	c.mu.Unlock()
	defer c.release()

	if err := c.gw.DeleteDispenser(ctx, token, id); err != nil {
		c.log.Warn().Err(err).Int64("id", id).Msg("no se pudo eliminar el dispenser")
		return err
	}

	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		return domain.ErrClosed
	}
	if c.form.EditingID == id {
		c.resetLocked()
	}
	c.mu.Unlock()

	c.refetch(ctx)
	return nil
}

// Busy indica si hay una mutación en curso.
func (c *Controller) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Close desmonta la vista: descarta formulario y selección; las respuestas que
// lleguen después se ignoran.
func (c *Controller) Close() {
	c.mu.Lock()
	c.gen++
	c.resetLocked()
	c.mu.Unlock()
}

func (c *Controller) authorize() (string, error) {
	token := c.sess.Token()
	if token == "" {
		return "", domain.ErrNoSession
	}
	if !c.sess.Capabilities().IsAdminOrEmployee {
		return "", domain.ErrForbidden
	}
	return token, nil
}

func (c *Controller) release() {
	c.mu.Lock()
	c.busy = false
	c.mu.Unlock()
}

// refetch relista tras una mutación confirmada. Su fallo no invalida la mutación.
func (c *Controller) refetch(ctx context.Context) {
	if _, err := c.List(ctx); err != nil {
		c.log.Warn().Err(err).Msg("relistado tras mutación incompleto")
	}
}

// inputFrom valida el formulario y arma el payload.
func inputFrom(f Form) (entity.DispenserInput, error) {
	name := NormalizeName(f.Name)
	if name == "" {
		return entity.DispenserInput{}, domain.NewValidationError("nombre_dispenser", "El nombre es obligatorio")
	}
	if f.Coordinate == nil {
		return entity.DispenserInput{}, domain.NewValidationError("ubicacion", "Selecciona una ubicación en el mapa")
	}
	if err := f.Coordinate.Validate(); err != nil {
		return entity.DispenserInput{}, domain.NewValidationError("ubicacion", err.Error())
	}
	var photo *entity.Photo
	if !f.Photo.IsEmpty() {
		photo = f.Photo
	}
	return entity.DispenserInput{
		Name:       name,
		Active:     f.Active,
		Permanent:  f.Permanent,
		Coordinate: *f.Coordinate,
		Photo:      photo,
	}, nil
}

// NormalizeName recorta espacios y normaliza a NFC.
func NormalizeName(s string) string {
	return norm.NFC.String(strings.TrimSpace(s))
}
