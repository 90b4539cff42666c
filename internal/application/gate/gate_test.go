package gate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/mate-social/internal/application/gate"
	"github.com/jhoicas/mate-social/internal/domain/entity"
)

func profileWith(groups ...string) *entity.Profile {
	return &entity.Profile{Username: "u", Groups: groups}
}

func TestEvaluate_Estados(t *testing.T) {
	admin := gate.RequireRole(entity.IsAdmin)
	cases := []struct {
		name  string
		rule  gate.Rule
		state entity.SessionState
		want  gate.Decision
	}{
		{"cargando sesion", gate.RequireAuthenticated(), entity.SessionState{Loading: true}, gate.Decision{Status: gate.StatusPending}},
		{"sin token", gate.RequireAuthenticated(), entity.SessionState{}, gate.Decision{Status: gate.StatusDenied, Redirect: "/login"}},
		{"autenticado", gate.RequireAuthenticated(), entity.SessionState{Token: "t"}, gate.Decision{Status: gate.StatusAllowed}},
		{"perfil cargando", admin, entity.SessionState{Token: "t", ProfileLoading: true}, gate.Decision{Status: gate.StatusPending}},
		{"rol sin token", admin, entity.SessionState{}, gate.Decision{Status: gate.StatusDenied, Redirect: "/login"}},
		{"rol insuficiente", admin, entity.SessionState{Token: "t", Profile: profileWith("Usuario Comun")}, gate.Decision{Status: gate.StatusDenied, Redirect: "/home"}},
		{"sin perfil", admin, entity.SessionState{Token: "t"}, gate.Decision{Status: gate.StatusDenied, Redirect: "/home"}},
		{"admin", admin, entity.SessionState{Token: "t", Profile: profileWith("Administrador")}, gate.Decision{Status: gate.StatusAllowed}},
		{"empleado en vista de personal", gate.RequireRole(entity.IsAdminOrEmployee), entity.SessionState{Token: "t", Profile: profileWith("Administrador Empleado")}, gate.Decision{Status: gate.StatusAllowed}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.rule.Evaluate(tc.state))
		})
	}
}

type fakeSource struct{ state entity.SessionState }

func (f *fakeSource) Snapshot() entity.SessionState { return f.state }

func TestCheck_SeReevaluaEnCadaLlamada(t *testing.T) {
	src := &fakeSource{state: entity.SessionState{Token: "t", Profile: profileWith("Administrador")}}
	rule := gate.RequireRole(entity.IsAdmin)
	assert.Equal(t, gate.StatusAllowed, rule.Check(src).Status)

	src.state.Profile = profileWith("Usuario Comun")
	assert.Equal(t, gate.StatusDenied, rule.Check(src).Status)

	src.state.Token = ""
	assert.Equal(t, "/login", rule.Check(src).Redirect)
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "PENDING", gate.StatusPending.String())
	assert.Equal(t, "DENIED", gate.StatusDenied.String())
	assert.Equal(t, "ALLOWED", gate.StatusAllowed.String())
}
