package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mate-social/internal/domain"
	"github.com/jhoicas/mate-social/internal/domain/entity"
	"github.com/jhoicas/mate-social/internal/infrastructure/backend"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return backend.NewClient(srv.URL+"/", 5*time.Second, nil, backend.WithHTTPClient(srv.Client()))
}

// ─── Autenticación ───────────────────────────────────────────────────────────

func TestObtainToken_CredencialesValidas(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api-token-auth/", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ana", body["username"])
		assert.Equal(t, "Secret1", body["password"])
		_, _ = w.Write([]byte(`{"token":"abc123"}`))
	})

	token, err := c.ObtainToken(context.Background(), "ana", "Secret1")
	require.NoError(t, err)
	assert.Equal(t, "abc123", token)
}

func TestObtainToken_400EsCredencialesInvalidas(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"non_field_errors":["Unable to log in with provided credentials."]}`))
	})

	_, err := c.ObtainToken(context.Background(), "ana", "mala")
	var ae *domain.APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, domain.KindAuth, ae.Kind)
	assert.Equal(t, "Credenciales no válidas. Revisa tu usuario/contraseña.", domain.UserMessage(err))
}

func TestObtainToken_SinRespuestaEsConectividad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := backend.NewClient(url, time.Second, nil)
	_, err := c.ObtainToken(context.Background(), "ana", "Secret1")
	var ae *domain.APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, domain.KindConnectivity, ae.Kind)
	assert.Zero(t, ae.Status)
}

func TestRegister_ErroresPorCampo(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/register/", r.URL.Path)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"password":["muy corta"],"email":["ya existe"]}`))
	})

	err := c.Register(context.Background(), entity.AccountInput{Username: "ana", Email: "a@b.co", Password: "x"})
	var ae *domain.APIError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, domain.KindBackendValidation, ae.Kind)
	assert.Equal(t, "Email: ya existe", domain.UserMessage(err))
}

func TestCreateAdminEmployee_403(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Token tok", r.Header.Get("Authorization"))
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"detail":"No tiene permiso"}`))
	})

	err := c.CreateAdminEmployee(context.Background(), "tok", entity.AccountInput{Username: "emp"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

// ─── Perfil ──────────────────────────────────────────────────────────────────

func TestGetProfile_MapeaGruposYPersona(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/users/profile/", r.URL.Path)
		assert.Equal(t, "Token abc123", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`{
			"id": 7, "username": "ana", "email": "ana@example.com",
			"first_name": "Ana", "last_name": "Pérez",
			"persona": {"codigo_persona": 3, "nombre": "Ana", "apellido": "Pérez", "fecha_nacimiento": "1990-05-01"},
			"grupos": ["Administrador"]
		}`))
	})

	p, err := c.GetProfile(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)
	assert.True(t, p.Capabilities().IsAdmin)
	require.NotNil(t, p.Persona)
	assert.Equal(t, 1990, p.Persona.BirthDate.Year())
}

func TestGetProfile_401(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"detail":"Token inválido."}`))
	})

	_, err := c.GetProfile(context.Background(), "viejo")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

// ─── Dispensers ──────────────────────────────────────────────────────────────

func TestListDispensers_AceptaNumerosYStrings(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(`[
			{"codigo_dispenser": 1, "nombre_dispenser": "Plaza", "estado": true, "permanencia": false,
			 "ubicacion": {"codigo_ubicacion": 4, "latitud": -34.6037, "longitud": "-58.3816"},
			 "imagenes": [{"codigo_imagen": 9, "ruta_imagen": "/media/a.jpg"}]}
		]`))
	})

	items, err := c.ListDispensers(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Plaza", items[0].Name)
	assert.Equal(t, "-34.6037", items[0].Location.Coordinate.Latitude.String())
	assert.Equal(t, "-58.3816", items[0].Location.Coordinate.Longitude.String())
	assert.Equal(t, "/media/a.jpg", items[0].Images[0].Path)
}

func TestCreateDispenser_Multipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/dispensers/", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "Plaza", r.FormValue("nombre_dispenser"))
		assert.Equal(t, "true", r.FormValue("estado"))
		assert.Equal(t, "false", r.FormValue("permanencia"))
		assert.Equal(t, "-34.6038", r.FormValue("latitud"))
		assert.Equal(t, "-58.3816", r.FormValue("longitud"))

		f, hdr, err := r.FormFile("foto")
		require.NoError(t, err)
		data, _ := io.ReadAll(f)
		assert.Equal(t, "plaza.jpg", hdr.Filename)
		assert.Equal(t, []byte("jpeg"), data)

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"codigo_dispenser": 2, "nombre_dispenser": "Plaza", "estado": true,
			"ubicacion": {"codigo_ubicacion": 5, "latitud": "-34.6038", "longitud": "-58.3816"}}`))
	})

	in := entity.DispenserInput{
		Name:   "Plaza",
		Active: true,
		Coordinate: entity.Coordinate{
			Latitude:  decimal.RequireFromString("-34.60375"),
			Longitude: decimal.RequireFromString("-58.38161"),
		},
		Photo: &entity.Photo{Filename: "plaza.jpg", ContentType: "image/jpeg", Data: []byte("jpeg")},
	}
	d, err := c.CreateDispenser(context.Background(), "tok", in)
	require.NoError(t, err)
	assert.Equal(t, int64(2), d.ID)
}

func TestUpdateDispenser_SinFoto(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/dispensers/2/", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		_, _, err := r.FormFile("foto")
		assert.ErrorIs(t, err, http.ErrMissingFile)
		_, _ = w.Write([]byte(`{"codigo_dispenser": 2, "nombre_dispenser": "Nuevo"}`))
	})

	d, err := c.UpdateDispenser(context.Background(), "tok", 2, entity.DispenserInput{Name: "Nuevo", Coordinate: entity.NewCoordinate(1, 2)})
	require.NoError(t, err)
	assert.Equal(t, "Nuevo", d.Name)
}

func TestDeleteDispenser(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/api/dispensers/3/", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeleteDispenser(context.Background(), "tok", 3))
}

func TestDeleteDispenser_5xx(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := c.DeleteDispenser(context.Background(), "tok", 3)
	var ae *domain.APIError
	require.True(t, errors.As(err, &ae))
	assert.Equal(t, domain.KindServer, ae.Kind)
}

// bigDispenserList JSON con n dispensers de nombre largo.
func bigDispenserList(n int) string {
	item := `{"codigo_dispenser": 1, "nombre_dispenser": "` + strings.Repeat("x", 200) +
		`", "estado": true, "permanencia": false, "ubicacion": {"codigo_ubicacion": 4, "latitud": "-34.6", "longitud": "-58.4"}}`
	return "[" + strings.TrimSuffix(strings.Repeat(item+",", n), ",") + "]"
}

func TestListDispensers_ListadoMayorA1MB(t *testing.T) {
	body := bigDispenserList(6000)
	require.Greater(t, len(body), 1<<20)
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(body))
	})

	items, err := c.ListDispensers(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, items, 6000)
}

func TestListDispensers_RespuestaQueSuperaElLimite(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(bigDispenserList(10)))
	}))
	t.Cleanup(srv.Close)
	c := backend.NewClient(srv.URL, 5*time.Second, nil, backend.WithHTTPClient(srv.Client()), backend.WithMaxResponseBytes(512))

	_, err := c.ListDispensers(context.Background(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrResponseTooLarge)
	assert.Equal(t, "La respuesta del servidor es demasiado grande para procesarla.", domain.UserMessage(err))
}

// ─── Solicitudes ─────────────────────────────────────────────────────────────

func TestListSuggestions_RespetaOrden(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/solicitudes/summary/", r.URL.Path)
		_, _ = w.Write([]byte(`[
			{"codigo_ubicacion": 8, "latitud": "-34.6000", "longitud": "-58.4000", "total": 5, "ultima": "2024-03-01T10:00:00Z"},
			{"codigo_ubicacion": 2, "latitud": "-34.7000", "longitud": "-58.5000", "total": 1, "ultima": null}
		]`))
	})

	items, err := c.ListSuggestions(context.Background(), "tok")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(8), items[0].LocationID)
	assert.Equal(t, 5, items[0].RequestCount)
	require.NotNil(t, items[0].LastRequestedAt)
	assert.Nil(t, items[1].LastRequestedAt)
}

func TestAcceptSuggestion_Multipart(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/solicitudes/accept/", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "8", r.FormValue("codigo_ubicacion"))
		assert.Equal(t, "Parque", r.FormValue("nombre_dispenser"))
		_, _, err := r.FormFile("foto")
		require.NoError(t, err)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"codigo_dispenser": 11, "nombre_dispenser": "Parque"}`))
	})

	d, err := c.AcceptSuggestion(context.Background(), "tok", 8, "Parque", entity.Photo{Filename: "p.png", Data: []byte{1}})
	require.NoError(t, err)
	assert.Equal(t, int64(11), d.ID)
}

func TestCreatePlacementRequest_CoordenadasNormalizadas(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/solicitudes/", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "-34.6038", body["latitud"])
		assert.Equal(t, "-58.3816", body["longitud"])
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"codigo_solicitud": 1, "fecha_solicitud": "2024-03-01T10:00:00Z",
			"ubicacion": {"codigo_ubicacion": 8, "latitud": "-34.6038", "longitud": "-58.3816"}}`))
	})

	at := entity.Coordinate{
		Latitude:  decimal.RequireFromString("-34.60375"),
		Longitude: decimal.RequireFromString("-58.38164"),
	}
	req, err := c.CreatePlacementRequest(context.Background(), "tok", at)
	require.NoError(t, err)
	assert.Equal(t, int64(8), req.Location.ID)
}
