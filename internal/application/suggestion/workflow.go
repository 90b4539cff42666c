// Package suggestion implementa el flujo administrativo sobre las solicitudes de
// ubicación y el alta de solicitudes por parte de usuarios comunes.
package suggestion

import (
	"context"
	"sync"

	"github.com/jhoicas/mate-social/internal/application/dispenser"
	"github.com/jhoicas/mate-social/internal/application/ports"
	"github.com/jhoicas/mate-social/internal/domain"
	"github.com/jhoicas/mate-social/internal/domain/entity"
	"github.com/jhoicas/mate-social/pkg/logger"
)

// Workflow estado de la vista de solicitudes. Seguro para uso concurrente.
// Solo una ubicación puede estar en modo "aceptar" a la vez.
type Workflow struct {
	gw   ports.SuggestionGateway
	sess dispenser.SessionSource
	log  *logger.Logger

	mu          sync.Mutex
	items       []entity.LocationSuggestion
	listErr     error
	listSeq     uint64
	listApplied uint64
	accepting   int64 // 0 = ninguna
	busy        bool
	gen         uint64
}

// NewWorkflow crea el flujo con la lista vacía.
func NewWorkflow(gw ports.SuggestionGateway, sess dispenser.SessionSource, log *logger.Logger) *Workflow {
	if log == nil {
		log = logger.NewNop()
	}
	return &Workflow{gw: gw, sess: sess, log: log.Named("suggestions")}
}

// ListSuggestions obtiene el resumen (solo administradores). El orden es el del backend.
// Ante un error se conserva la última lista válida.
func (w *Workflow) ListSuggestions(ctx context.Context) ([]entity.LocationSuggestion, error) {
	token, err := w.require(entity.IsAdmin)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	w.listSeq++
	seq, gen := w.listSeq, w.gen
	w.mu.Unlock()

	items, err := w.gw.ListSuggestions(ctx, token)

	w.mu.Lock()
	defer w.mu.Unlock()
	if gen != w.gen {
		return nil, domain.ErrClosed
	}
	if seq <= w.listApplied {
		return nil, domain.ErrStaleResponse
	}
	w.listApplied = seq
	if err != nil {
		w.log.Warn().Err(err).Msg("no se pudo obtener el resumen de solicitudes")
		w.listErr = err
		return w.snapshotLocked(), err
	}
	w.items = items
	w.listErr = nil
	return w.snapshotLocked(), nil
}

// Suggestions última lista válida.
func (w *Workflow) Suggestions() []entity.LocationSuggestion {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

// LastError error del último listado.
func (w *Workflow) LastError() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.listErr
}

func (w *Workflow) snapshotLocked() []entity.LocationSuggestion {
	out := make([]entity.LocationSuggestion, len(w.items))
	copy(out, w.items)
	return out
}

// StartAccept pone una ubicación en modo "aceptar"; cancela la anterior si la había.
func (w *Workflow) StartAccept(locationID int64) error {
	if locationID <= 0 {
		return domain.NewValidationError("codigo_ubicacion", "No hay una ubicación seleccionada")
	}
	w.mu.Lock()
	w.accepting = locationID
	w.mu.Unlock()
	return nil
}

// CancelAccept sale del modo "aceptar".
func (w *Workflow) CancelAccept() {
	w.mu.Lock()
	w.accepting = 0
	w.mu.Unlock()
}

// Accepting ubicación en modo "aceptar" (0 si ninguna).
func (w *Workflow) Accepting() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.accepting
}

// SubmitAccept convierte la ubicación en modo "aceptar" en un dispenser. Nombre y
// foto se validan antes de cualquier llamada; se hace exactamente una llamada al
// backend y, si tiene éxito, se sale del modo "aceptar" y se relista.
func (w *Workflow) SubmitAccept(ctx context.Context, name string, photo *entity.Photo) (*entity.Dispenser, error) {
	token, err := w.require(entity.IsAdmin)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	if w.busy {
		w.mu.Unlock()
		return nil, domain.ErrBusy
	}
	locationID := w.accepting
	name = dispenser.NormalizeName(name)
	switch {
	case locationID == 0:
		err = domain.NewValidationError("codigo_ubicacion", "No hay una ubicación seleccionada")
	case name == "":
		err = domain.NewValidationError("nombre_dispenser", "El nombre es obligatorio")
	case photo.IsEmpty():
		err = domain.NewValidationError("foto", "La imagen es obligatoria")
	}
	if err != nil {
		w.mu.Unlock()
		return nil, err
	}
	w.busy = true
	gen := w.gen
	w.mu.Unlock()
	defer w.release()

	d, err := w.gw.AcceptSuggestion(ctx, token, locationID, name, *photo)
	if err != nil {
		w.log.Warn().Err(err).Int64("codigo_ubicacion", locationID).Msg("no se pudo aceptar la solicitud")
		return nil, err
	}

	w.mu.Lock()
	if gen != w.gen {
		w.mu.Unlock()
		return nil, domain.ErrClosed
	}
	if w.accepting == locationID {
		w.accepting = 0
	}
	w.mu.Unlock()

	if _, err := w.ListSuggestions(ctx); err != nil {
		w.log.Warn().Err(err).Msg("relistado tras aceptar incompleto")
	}
	return d, nil
}

// AcceptSuggestion atajo de StartAccept + SubmitAccept.
func (w *Workflow) AcceptSuggestion(ctx context.Context, locationID int64, name string, photo *entity.Photo) (*entity.Dispenser, error) {
	if err := w.StartAccept(locationID); err != nil {
		return nil, err
	}
	return w.SubmitAccept(ctx, name, photo)
}

// RequestPlacement registra una solicitud de instalación (solo usuarios comunes).
func (w *Workflow) RequestPlacement(ctx context.Context, at entity.Coordinate) (*entity.PlacementRequest, error) {
	token, err := w.require(entity.IsNormalUser)
	if err != nil {
		return nil, err
	}
	if err := at.Validate(); err != nil {
		return nil, domain.NewValidationError("ubicacion", err.Error())
	}
	req, err := w.gw.CreatePlacementRequest(ctx, token, at.Normalized())
	if err != nil {
		w.log.Warn().Err(err).Str("coordenada", at.String()).Msg("no se pudo registrar la solicitud")
		return nil, err
	}
	return req, nil
}

// Close desmonta la vista: sale del modo "aceptar" y descarta respuestas tardías.
func (w *Workflow) Close() {
	w.mu.Lock()
	w.gen++
	w.accepting = 0
	w.mu.Unlock()
}

func (w *Workflow) require(pred entity.RolePredicate) (string, error) {
	token := w.sess.Token()
	if token == "" {
		return "", domain.ErrNoSession
	}
	if !pred(w.sess.Capabilities()) {
		return "", domain.ErrForbidden
	}
	return token, nil
}

func (w *Workflow) release() {
	w.mu.Lock()
	w.busy = false
	w.mu.Unlock()
}
