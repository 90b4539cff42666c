// Package gate decide si una vista protegida se muestra, se pospone o redirige.
// La decisión se recalcula en cada evaluación; nunca se cachea.
package gate

import "github.com/jhoicas/mate-social/internal/domain/entity"

// Status resultado de evaluar una regla.
type Status int

const (
	StatusPending Status = iota // sesión o perfil cargando: no mostrar nada
	StatusDenied                // redirigir
	StatusAllowed
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "PENDING"
	case StatusDenied:
		return "DENIED"
	case StatusAllowed:
		return "ALLOWED"
	}
	return "UNKNOWN"
}

// Destinos de redirección.
const (
	RedirectLogin = "/login"
	RedirectHome  = "/home"
)

// Decision resultado de la evaluación; Redirect solo aplica a StatusDenied.
type Decision struct {
	Status   Status
	Redirect string
}

// SessionSource cualquier cosa que exponga el estado de sesión (session.Manager).
type SessionSource interface {
	Snapshot() entity.SessionState
}

// Rule regla de acceso. Con predicado nil basta estar autenticado.
type Rule struct {
	predicate entity.RolePredicate
}

// RequireAuthenticated exige un token.
func RequireAuthenticated() Rule {
	return Rule{}
}

// RequireRole exige token y que el predicado de rol se cumpla.
func RequireRole(pred entity.RolePredicate) Rule {
	return Rule{predicate: pred}
}

// Evaluate aplica la regla sobre una foto del estado de sesión.
func (r Rule) Evaluate(s entity.SessionState) Decision {
	switch {
	case s.Loading:
		return Decision{Status: StatusPending}
	case !s.Authenticated():
		return Decision{Status: StatusDenied, Redirect: RedirectLogin}
	case s.ProfileLoading:
		return Decision{Status: StatusPending}
	case r.predicate != nil && !r.predicate(s.Capabilities()):
		return Decision{Status: StatusDenied, Redirect: RedirectHome}
	}
	return Decision{Status: StatusAllowed}
}

// Check evalúa contra el estado actual de la fuente.
func (r Rule) Check(src SessionSource) Decision {
	return r.Evaluate(src.Snapshot())
}
