package suggestion_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/mate-social/internal/application/suggestion"
	"github.com/jhoicas/mate-social/internal/domain"
	"github.com/jhoicas/mate-social/internal/domain/entity"
)

type MockSuggestionGateway struct {
	mock.Mock
}

func (m *MockSuggestionGateway) ListSuggestions(ctx context.Context, token string) ([]entity.LocationSuggestion, error) {
	args := m.Called(ctx, token)
	if v := args.Get(0); v != nil {
		return v.([]entity.LocationSuggestion), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSuggestionGateway) AcceptSuggestion(ctx context.Context, token string, locationID int64, name string, photo entity.Photo) (*entity.Dispenser, error) {
	args := m.Called(ctx, token, locationID, name, photo)
	if v := args.Get(0); v != nil {
		return v.(*entity.Dispenser), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSuggestionGateway) CreatePlacementRequest(ctx context.Context, token string, at entity.Coordinate) (*entity.PlacementRequest, error) {
	args := m.Called(ctx, token, at)
	if v := args.Get(0); v != nil {
		return v.(*entity.PlacementRequest), args.Error(1)
	}
	return nil, args.Error(1)
}

type fakeSession struct {
	token  string
	groups []string
}

func (f fakeSession) Token() string                     { return f.token }
func (f fakeSession) Capabilities() entity.Capabilities { return entity.CapabilitiesFor(f.groups) }

var (
	admin    = fakeSession{token: "tok", groups: []string{"Administrador"}}
	employee = fakeSession{token: "tok", groups: []string{"Administrador Empleado"}}
	common   = fakeSession{token: "tok", groups: []string{"Usuario Comun"}}
	photo    = &entity.Photo{Filename: "p.jpg", ContentType: "image/jpeg", Data: []byte{0xff, 0xd8}}
	summary  = []entity.LocationSuggestion{
		{LocationID: 8, Coordinate: entity.NewCoordinate(-34.6, -58.4), RequestCount: 5},
		{LocationID: 2, Coordinate: entity.NewCoordinate(-34.7, -58.5), RequestCount: 1},
	}
)

func TestListSuggestions_SoloAdministrador(t *testing.T) {
	gw := &MockSuggestionGateway{}
	gw.On("ListSuggestions", mock.Anything, "tok").Return(summary, nil)

	_, err := suggestion.NewWorkflow(gw, employee, nil).ListSuggestions(context.Background())
	assert.ErrorIs(t, err, domain.ErrForbidden)
	_, err = suggestion.NewWorkflow(gw, fakeSession{}, nil).ListSuggestions(context.Background())
	assert.ErrorIs(t, err, domain.ErrNoSession)

	items, err := suggestion.NewWorkflow(gw, admin, nil).ListSuggestions(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(8), items[0].LocationID, "se respeta el orden del backend")
}

func TestStartAccept_UnaALaVez(t *testing.T) {
	w := suggestion.NewWorkflow(&MockSuggestionGateway{}, admin, nil)
	require.NoError(t, w.StartAccept(8))
	require.NoError(t, w.StartAccept(2))
	assert.Equal(t, int64(2), w.Accepting())
	w.CancelAccept()
	assert.Zero(t, w.Accepting())
	assert.Error(t, w.StartAccept(0))
}

func TestSubmitAccept_ValidacionLocalSinLlamadas(t *testing.T) {
	gw := &MockSuggestionGateway{}
	w := suggestion.NewWorkflow(gw, admin, nil)

	_, err := w.SubmitAccept(context.Background(), "Parque", photo)
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin ubicación seleccionada")

	require.NoError(t, w.StartAccept(8))
	_, err = w.SubmitAccept(context.Background(), "Parque", nil)
	assert.Equal(t, "La imagen es obligatoria", domain.UserMessage(err))

	_, err = w.SubmitAccept(context.Background(), "   ", photo)
	assert.Equal(t, "El nombre es obligatorio", domain.UserMessage(err))

	gw.AssertNotCalled(t, "AcceptSuggestion", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	assert.Equal(t, int64(8), w.Accepting())
}

func TestAcceptSuggestion_UnaLlamadaYRelista(t *testing.T) {
	gw := &MockSuggestionGateway{}
	gw.On("AcceptSuggestion", mock.Anything, "tok", int64(8), "Parque", *photo).
		Return(&entity.Dispenser{ID: 11, Name: "Parque"}, nil).Once()
	gw.On("ListSuggestions", mock.Anything, "tok").Return(summary[1:], nil).Once()

	w := suggestion.NewWorkflow(gw, admin, nil)
	d, err := w.AcceptSuggestion(context.Background(), 8, " Parque ", photo)
	require.NoError(t, err)
	assert.Equal(t, int64(11), d.ID)
	assert.Zero(t, w.Accepting())
	assert.Len(t, w.Suggestions(), 1)
	gw.AssertNumberOfCalls(t, "AcceptSuggestion", 1)
	gw.AssertExpectations(t)
}

func TestAcceptSuggestion_ErrorConservaModoAceptar(t *testing.T) {
	gw := &MockSuggestionGateway{}
	gw.On("AcceptSuggestion", mock.Anything, "tok", int64(8), "Parque", *photo).
		Return(nil, &domain.APIError{Kind: domain.KindBackendValidation, Status: 400, Detail: "Ubicación sin solicitudes pendientes"})

	w := suggestion.NewWorkflow(gw, admin, nil)
	_, err := w.AcceptSuggestion(context.Background(), 8, "Parque", photo)
	assert.Equal(t, "Ubicación sin solicitudes pendientes", domain.UserMessage(err))
	assert.Equal(t, int64(8), w.Accepting())
}

func TestRequestPlacement_SoloUsuarioComun(t *testing.T) {
	gw := &MockSuggestionGateway{}
	at := entity.NewCoordinate(-34.60375, -58.38164)
	gw.On("CreatePlacementRequest", mock.Anything, "tok", at.Normalized()).
		Return(&entity.PlacementRequest{ID: 1}, nil).Once()

	_, err := suggestion.NewWorkflow(gw, admin, nil).RequestPlacement(context.Background(), at)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = suggestion.NewWorkflow(gw, common, nil).RequestPlacement(context.Background(), entity.NewCoordinate(100, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req, err := suggestion.NewWorkflow(gw, common, nil).RequestPlacement(context.Background(), at)
	require.NoError(t, err)
	assert.Equal(t, int64(1), req.ID)
	gw.AssertExpectations(t)
}
