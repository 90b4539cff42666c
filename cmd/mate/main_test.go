package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mate-social/internal/domain"
	"github.com/jhoicas/mate-social/internal/infrastructure/backend"
	"github.com/jhoicas/mate-social/internal/infrastructure/tokenstore"
	"github.com/jhoicas/mate-social/pkg/config"
)

// fakeServer backend mínimo: ana/Secret1 es administradora.
func fakeServer(t *testing.T, posts *atomic.Int32) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/api-token-auth/", func(w http.ResponseWriter, r *http.Request) {
		var in struct{ Username, Password string }
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.Username != "ana" || in.Password != "Secret1" {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"non_field_errors":["Unable to log in with provided credentials."]}`))
			return
		}
		_, _ = w.Write([]byte(`{"token":"abc123"}`))
	})
	mux.HandleFunc("/api/users/profile/", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Token abc123" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"detail":"Token inválido."}`))
			return
		}
		_, _ = w.Write([]byte(`{"id": 1, "username": "ana", "email": "ana@mate.com", "first_name": "Ana", "grupos": ["Administrador"]}`))
	})
	mux.HandleFunc("/api/dispensers/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			posts.Add(1)
			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"codigo_dispenser": 2, "nombre_dispenser": "Nuevo"}`))
			return
		}
		_, _ = w.Write([]byte(`[
			{"codigo_dispenser": 1, "nombre_dispenser": "Plaza", "estado": true, "permanencia": false,
			 "ubicacion": {"codigo_ubicacion": 4, "latitud": "-34.6037", "longitud": "-58.3816"}}
		]`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestApp(srv *httptest.Server, tokens *tokenstore.MemoryStore) *app {
	cfg := &config.Config{Session: config.SessionConfig{LogoutOn401: true}}
	return newApp(backend.NewClient(srv.URL, 2*time.Second, nil), tokens, cfg, nil)
}

// invoke simula una invocación nueva del binario sobre el mismo almacenamiento.
func invoke(t *testing.T, srv *httptest.Server, tokens *tokenstore.MemoryStore, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := newTestApp(srv, tokens).run(context.Background(), args, &out)
	return out.String(), err
}

func TestCLI_LoginWhoamiLogout(t *testing.T) {
	var posts atomic.Int32
	srv := fakeServer(t, &posts)
	tokens := tokenstore.NewMemoryStore()

	out, err := invoke(t, srv, tokens, "login", "-u", "ana", "-p", "Secret1")
	require.NoError(t, err)
	assert.Contains(t, out, "Sesión iniciada como Ana (Administrador)")

	saved, _ := tokens.Get(context.Background())
	assert.Equal(t, "abc123", saved, "el token queda persistido para la próxima invocación")

	out, err = invoke(t, srv, tokens, "whoami")
	require.NoError(t, err)
	assert.Contains(t, out, "ana@mate.com")

	out, err = invoke(t, srv, tokens, "logout")
	require.NoError(t, err)
	assert.Contains(t, out, "Sesión cerrada")

	_, err = invoke(t, srv, tokens, "whoami")
	assert.ErrorIs(t, err, domain.ErrNoSession)
	assert.Equal(t, "No hay sesión activa", message(err))
}

func TestCLI_LoginCredencialesInvalidas(t *testing.T) {
	var posts atomic.Int32
	srv := fakeServer(t, &posts)

	_, err := invoke(t, srv, tokenstore.NewMemoryStore(), "login", "-u", "ana", "-p", "otra")
	require.Error(t, err)
	assert.Equal(t, "Credenciales no válidas. Revisa tu usuario/contraseña.", message(err))
}

func TestCLI_ListarDispensersSinSesion(t *testing.T) {
	var posts atomic.Int32
	srv := fakeServer(t, &posts)

	out, err := invoke(t, srv, tokenstore.NewMemoryStore(), "dispensers", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Plaza")
	assert.Contains(t, out, "-34.6037,-58.3816")
}

func TestCLI_CrearSinNombreNoLlamaAlBackend(t *testing.T) {
	var posts atomic.Int32
	srv := fakeServer(t, &posts)
	tokens := tokenstore.NewMemoryStore()
	require.NoError(t, tokens.Set(context.Background(), "abc123"))

	_, err := invoke(t, srv, tokens, "dispensers", "create", "-name", "  ", "-lat", "-34.6", "-lng", "-58.4")
	require.Error(t, err)
	assert.Equal(t, "El nombre es obligatorio", message(err))
	assert.Zero(t, posts.Load())

	out, err := invoke(t, srv, tokens, "dispensers", "create", "-name", "Nuevo", "-lat", "-34.6", "-lng", "-58.4", "-active")
	require.NoError(t, err)
	assert.Contains(t, out, `Dispenser 2 "Nuevo" guardado`)
	assert.Equal(t, int32(1), posts.Load())
}

func TestCLI_UsoIncorrecto(t *testing.T) {
	var posts atomic.Int32
	srv := fakeServer(t, &posts)

	for _, args := range [][]string{nil, {"bailar"}, {"dispensers"}, {"admin", "x"}, {"login", "-zz"}} {
		_, err := invoke(t, srv, tokenstore.NewMemoryStore(), args...)
		assert.ErrorIs(t, err, errUsage, "%v", args)
	}
}

func TestParseCoordinate(t *testing.T) {
	at, err := parseCoordinate(" -34.60375 ", "-58.38164")
	require.NoError(t, err)
	assert.Equal(t, "-34.6038", at.Normalized().Latitude.String())

	_, err = parseCoordinate("abc", "1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = parseCoordinate("95", "1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
