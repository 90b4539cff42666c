// Package pdf implementa el reporte administrativo de solicitudes y dispensers.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Mate Social + título  │  Fecha + Generado por       │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: solicitudes pendientes / dispensers activos        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA 1: Ubicación | Latitud | Longitud | Total | Última    │
//	│  TABLA 2: Código | Nombre | Estado | Permanente | Coordenada │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: QR con la URL del backend                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/mate-social/internal/application/ports"
	"github.com/jhoicas/mate-social/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 46, Green: 125, Blue: 50}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
)

var _ ports.ReportGenerator = (*MarotoReportGenerator)(nil)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoReportGenerator implementa ports.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateReport genera el PDF y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateReport(_ context.Context, data ports.ReportData) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de solicitudes y dispensers", true).
		WithAuthor(nonEmpty(data.GeneratedBy, "Mate Social"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(data))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(sectionTitle("SOLICITUDES PENDIENTES POR UBICACIÓN"))
	m.AddRows(suggestionHeaderRow())
	if len(data.Suggestions) == 0 {
		m.AddRows(emptyRow("No hay solicitudes pendientes."))
	}
	m.AddRows(suggestionRows(data.Suggestions)...)

	m.AddRows(line.NewRow(4))
	m.AddRows(sectionTitle("DISPENSERS REGISTRADOS"))
	m.AddRows(dispenserHeaderRow())
	if len(data.Dispensers) == 0 {
		m.AddRows(emptyRow("No hay dispensers registrados."))
	}
	m.AddRows(dispenserRows(data.Dispensers)...)

	if data.Source != "" {
		m.AddRows(line.NewRow(3))
		m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
		m.AddRows(footerRow(data.Source))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(data ports.ReportData) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New("Mate Social", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Reporte administrativo", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Fecha: "+data.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New("Generado por: "+nonEmpty(data.GeneratedBy, "—"), props.Text{
				Size: 8, Align: align.Right, Top: 8, Color: colorGray,
			}),
		),
	)
}

// summaryRow totales: solicitudes pendientes y dispensers activos.
func summaryRow(data ports.ReportData) core.Row {
	pending := 0
	for _, s := range data.Suggestions {
		pending += s.RequestCount
	}
	active := 0
	for _, d := range data.Dispensers {
		if d.Active {
			active++
		}
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("RESUMEN", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Solicitudes pendientes: %d en %d ubicaciones   |   Dispensers: %d (%d activos)",
				pending, len(data.Suggestions), len(data.Dispensers), active,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func sectionTitle(label string) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 9, Color: colorPrimary, Top: 2}),
	))
}

func emptyRow(label string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(label, props.Text{Size: 8, Color: colorGray, Top: 1, Align: align.Center}),
	))
}

type header struct {
	label string
	size  int
	align align.Type
}

func tableHeader(cols ...header) core.Row {
	r := row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary})
	for _, h := range cols {
		r.Add(col.New(h.size).Add(text.New(h.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: h.align,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		})))
	}
	return r
}

func suggestionHeaderRow() core.Row {
	return tableHeader(
		header{"Ubicación", 2, align.Center},
		header{"Latitud", 3, align.Right},
		header{"Longitud", 3, align.Right},
		header{"Total", 1, align.Center},
		header{"Última solicitud", 3, align.Right},
	)
}

// suggestionRows una fila por ubicación, en el orden recibido.
func suggestionRows(items []entity.LocationSuggestion) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, s := range items {
		last := "—"
		if s.LastRequestedAt != nil {
			last = s.LastRequestedAt.Format("02/01/2006 15:04")
		}
		result = append(result, row.New(7).Add(
			cell(2, strconv.FormatInt(s.LocationID, 10), align.Center),
			cell(3, s.Coordinate.Latitude.StringFixed(entity.CoordinateDecimals), align.Right),
			cell(3, s.Coordinate.Longitude.StringFixed(entity.CoordinateDecimals), align.Right),
			cell(1, strconv.Itoa(s.RequestCount), align.Center),
			cell(3, last, align.Right),
		))
	}
	return result
}

func dispenserHeaderRow() core.Row {
	return tableHeader(
		header{"Código", 1, align.Center},
		header{"Nombre", 4, align.Left},
		header{"Estado", 2, align.Center},
		header{"Permanente", 2, align.Center},
		header{"Coordenada", 3, align.Right},
	)
}

func dispenserRows(items []entity.Dispenser) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, d := range items {
		c := d.Location.Coordinate
		result = append(result, row.New(7).Add(
			cell(1, strconv.FormatInt(d.ID, 10), align.Center),
			cell(4, d.Name, align.Left),
			cell(2, yesNo(d.Active, "Activo", "Inactivo"), align.Center),
			cell(2, yesNo(d.Permanent, "Sí", "No"), align.Center),
			cell(3, c.Latitude.StringFixed(entity.CoordinateDecimals)+", "+c.Longitude.StringFixed(entity.CoordinateDecimals), align.Right),
		))
	}
	return result
}

func footerRow(source string) core.Row {
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(source, props.Rect{Percent: 95, Center: true})),
		col.New(9).Add(
			text.New("Datos obtenidos de:", props.Text{Size: 8, Top: 6, Left: 3, Color: colorGray}),
			text.New(source, props.Text{Style: fontstyle.Bold, Size: 9, Top: 12, Left: 3, Color: colorPrimary}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func cell(size int, value string, a align.Type) core.Col {
	return col.New(size).Add(text.New(value, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
}

func yesNo(v bool, yes, no string) string {
	if v {
		return yes
	}
	return no
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
