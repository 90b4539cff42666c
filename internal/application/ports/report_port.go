package ports

import (
	"context"
	"time"

	"github.com/jhoicas/mate-social/internal/domain/entity"
)

// ReportData contenido del reporte administrativo.
type ReportData struct {
	GeneratedAt time.Time
	GeneratedBy string
	Source      string // URL del backend consultado; se imprime como QR
	Suggestions []entity.LocationSuggestion
	Dispensers  []entity.Dispenser
}

// ReportGenerator genera la representación PDF del reporte.
type ReportGenerator interface {
	GenerateReport(ctx context.Context, data ReportData) ([]byte, error)
}
