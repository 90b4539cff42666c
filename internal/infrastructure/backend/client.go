// Package backend implementa los puertos de application/ports sobre la API REST
// del backend (Django REST Framework).
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/jhoicas/mate-social/internal/application/ports"
	"github.com/jhoicas/mate-social/internal/domain"
	"github.com/jhoicas/mate-social/pkg/logger"
)

// Verificar en tiempo de compilación que Client implementa los puertos.
var (
	_ ports.AuthGateway       = (*Client)(nil)
	_ ports.ProfileGateway    = (*Client)(nil)
	_ ports.DispenserGateway  = (*Client)(nil)
	_ ports.SuggestionGateway = (*Client)(nil)
)

const (
	// DefaultMaxResponseBytes alcanza para listados de miles de dispensers.
	DefaultMaxResponseBytes = 16 << 20
	requestIDHeader         = "X-Request-ID"
)

// Client adaptador HTTP del backend. Usa net/http con un transport instrumentado por OpenTelemetry.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxBody    int64
	log        *logger.Logger
}

// Option configura el Client.
type Option func(*Client)

// WithHTTPClient reemplaza el *http.Client (tests, proxies).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithMaxResponseBytes cambia el tamaño máximo de respuesta aceptado.
func WithMaxResponseBytes(n int64) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxBody = n
		}
	}
}

// NewClient construye el adaptador. baseURL sin barra final, p. ej. "http://localhost:8000".
func NewClient(baseURL string, timeout time.Duration, log *logger.Logger, opts ...Option) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if log == nil {
		log = logger.NewNop()
	}
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
		maxBody: DefaultMaxResponseBytes,
		log:     log,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// BaseURL devuelve la URL base configurada.
func (c *Client) BaseURL() string { return c.baseURL }

// request describe una llamada al backend.
type request struct {
	method      string
	path        string
	token       string
	body        io.Reader
	contentType string
}

func jsonRequest(method, path, token string, payload any) (request, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return request{}, fmt.Errorf("backend: serializar request: %w", err)
	}
	return request{method: method, path: path, token: token, body: bytes.NewReader(raw), contentType: "application/json"}, nil
}

// do ejecuta la llamada y decodifica la respuesta en out (si no es nil).
// Cualquier fallo se devuelve como *domain.APIError.
func (c *Client) do(ctx context.Context, r request, out any) error {
	req, err := http.NewRequestWithContext(ctx, r.method, c.baseURL+r.path, r.body)
	if err != nil {
		return fmt.Errorf("backend: crear HTTP request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, reqID)
	if r.contentType != "" {
		req.Header.Set("Content-Type", r.contentType)
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Token "+r.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Warn().Err(err).Str("method", r.method).Str("path", r.path).Str("request_id", reqID).
			Msg("backend sin respuesta")
		if ctx.Err() != nil {
			return &domain.APIError{Kind: domain.KindConnectivity, Err: ctx.Err()}
		}
		return &domain.APIError{Kind: domain.KindConnectivity, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBody+1))
	if err != nil {
		return &domain.APIError{Kind: domain.KindConnectivity, Status: resp.StatusCode, Err: fmt.Errorf("leer respuesta: %w", err)}
	}
	if int64(len(raw)) > c.maxBody {
		c.log.Error().Str("method", r.method).Str("path", r.path).Int64("limit", c.maxBody).Str("request_id", reqID).
			Msg("respuesta del backend truncada")
		return &domain.APIError{Kind: domain.KindUnexpected, Status: resp.StatusCode, Err: domain.ErrResponseTooLarge}
	}

	c.log.Debug().Str("method", r.method).Str("path", r.path).Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).Str("request_id", reqID).Msg("backend")

	if resp.StatusCode >= http.StatusBadRequest {
		return classify(resp.StatusCode, raw)
	}
	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &domain.APIError{Kind: domain.KindUnexpected, Status: resp.StatusCode, Body: raw, Err: fmt.Errorf("deserializar respuesta: %w", err)}
	}
	return nil
}

// classify convierte una respuesta de error en *domain.APIError, extrayendo "detail"
// y los errores por campo con el formato de DRF ({"campo": ["mensaje", ...]}).
func classify(status int, body []byte) *domain.APIError {
	e := &domain.APIError{Status: status, Body: body}
	switch {
	case status == http.StatusUnauthorized:
		e.Kind = domain.KindUnauthorized
	case status == http.StatusForbidden:
		e.Kind = domain.KindForbidden
	case status == http.StatusNotFound:
		e.Kind = domain.KindNotFound
	case status >= http.StatusInternalServerError:
		e.Kind = domain.KindServer
	case status == http.StatusBadRequest:
		e.Kind = domain.KindBackendValidation
	default:
		e.Kind = domain.KindUnexpected
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return e
	}
	for k, v := range payload {
		if k == "detail" {
			_ = json.Unmarshal(v, &e.Detail)
			continue
		}
		var msgs []string
		if err := json.Unmarshal(v, &msgs); err == nil && len(msgs) > 0 {
			if e.Fields == nil {
				e.Fields = map[string][]string{}
			}
			e.Fields[k] = msgs
			continue
		}
		var msg string
		if err := json.Unmarshal(v, &msg); err == nil && msg != "" {
			if e.Fields == nil {
				e.Fields = map[string][]string{}
			}
			e.Fields[k] = []string{msg}
		}
	}
	return e
}
