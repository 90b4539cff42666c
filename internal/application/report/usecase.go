// Package report arma el reporte administrativo (solicitudes pendientes y dispensers).
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/mate-social/internal/application/ports"
	"github.com/jhoicas/mate-social/internal/domain"
	"github.com/jhoicas/mate-social/internal/domain/entity"
	"github.com/jhoicas/mate-social/pkg/logger"
)

// SessionSource sesión actual (session.Manager).
type SessionSource interface {
	Token() string
	Profile() *entity.Profile
}

// ReportUseCase genera el PDF a partir de datos frescos del backend.
type ReportUseCase struct {
	suggestions ports.SuggestionGateway
	dispensers  ports.DispenserGateway
	generator   ports.ReportGenerator
	sess        SessionSource
	source      string
	log         *logger.Logger
	now         func() time.Time
}

// NewReportUseCase construye el caso de uso. source es la URL del backend.
func NewReportUseCase(
	suggestions ports.SuggestionGateway,
	dispensers ports.DispenserGateway,
	generator ports.ReportGenerator,
	sess SessionSource,
	source string,
	log *logger.Logger,
) *ReportUseCase {
	if log == nil {
		log = logger.NewNop()
	}
	return &ReportUseCase{
		suggestions: suggestions,
		dispensers:  dispensers,
		generator:   generator,
		sess:        sess,
		source:      source,
		log:         log.Named("report"),
		now:         time.Now,
	}
}

// Export devuelve el PDF. Solo administradores.
func (uc *ReportUseCase) Export(ctx context.Context) ([]byte, error) {
	token := uc.sess.Token()
	if token == "" {
		return nil, domain.ErrNoSession
	}
	profile := uc.sess.Profile()
	if !profile.Capabilities().IsAdmin {
		return nil, domain.ErrForbidden
	}

	suggestions, err := uc.suggestions.ListSuggestions(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("reporte: %w", err)
	}
	dispensers, err := uc.dispensers.ListDispensers(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("reporte: %w", err)
	}

	pdf, err := uc.generator.GenerateReport(ctx, ports.ReportData{
		GeneratedAt: uc.now(),
		GeneratedBy: profile.DisplayName(),
		Source:      uc.source,
		Suggestions: suggestions,
		Dispensers:  dispensers,
	})
	if err != nil {
		return nil, err
	}
	uc.log.Info().Int("suggestions", len(suggestions)).Int("dispensers", len(dispensers)).Int("bytes", len(pdf)).Msg("reporte generado")
	return pdf, nil
}
