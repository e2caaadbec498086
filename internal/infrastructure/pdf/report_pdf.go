// Package pdf renderiza el reporte de ventas como documento A4 con Maroto v2.
//
// Layout de la página:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: MyFoodTruck — Reporte de Ventas │ Rango de fechas  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Fecha | Vendedor | Método | Items | Total            │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: por método de pago / TOTAL GENERAL / # ventas      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/myfoodtruck/pos-api/internal/application/dto"
	"github.com/myfoodtruck/pos-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// Etiquetas legibles de los métodos de pago.
var methodLabels = map[string]string{
	entity.PaymentCash:     "Efectivo",
	entity.PaymentCard:     "Tarjeta",
	entity.PaymentTransfer: "Transferencia",
}

// ── Generator ─────────────────────────────────────────────────────────────────

// SalesReportGenerator implementa http.ReportPDFGenerator usando Maroto v2.
type SalesReportGenerator struct {
	appName string
}

// NewSalesReportGenerator construye el generador.
func NewSalesReportGenerator(appName string) *SalesReportGenerator {
	return &SalesReportGenerator{appName: appName}
}

// GenerateSalesReportPDF genera el PDF del reporte y devuelve sus bytes.
func (g *SalesReportGenerator) GenerateSalesReportPDF(sales []dto.SaleResponse, summary dto.ReportSummary, start, end string) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Reporte de Ventas", true).
		WithAuthor(g.appName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(start, end))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(tableHeaderRow())
	for _, s := range sales {
		m.AddRows(saleRow(s))
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range summaryRows(summary) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre de la app (izq) y rango de fechas (der).
func (g *SalesReportGenerator) headerRow(start, end string) core.Row {
	rango := "Histórico completo"
	if start != "" && end != "" {
		rango = start + " a " + end
	}
	return row.New(14).Add(
		col.New(7).Add(
			text.New(g.appName, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New("Reporte de Ventas", props.Text{Size: 9, Top: 9, Color: colorGray}),
		),
		col.New(5).Add(
			text.New(rango, props.Text{Size: 10, Align: align.Right, Top: 4, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}
	return row.New(7).Add(
		col.New(3).Add(text.New("Fecha", header)),
		col.New(3).Add(text.New("Vendedor", header)),
		col.New(2).Add(text.New("Método", header)),
		col.New(2).Add(text.New("Items", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right})),
		col.New(2).Add(text.New("Total", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Align: align.Right})),
	)
}

func saleRow(s dto.SaleResponse) core.Row {
	cell := props.Text{Size: 8}
	items := 0
	for _, it := range s.Items {
		items += it.Quantity
	}
	return row.New(6).Add(
		col.New(3).Add(text.New(s.Date.Format("02/01/2006 15:04"), cell)),
		col.New(3).Add(text.New(s.SellerName, cell)),
		col.New(2).Add(text.New(methodLabel(s.PaymentMethod), cell)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", items), props.Text{Size: 8, Align: align.Right})),
		col.New(2).Add(text.New("$"+s.Total.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
	)
}

// summaryRows: totales por método de pago y total general.
func summaryRows(summary dto.ReportSummary) []core.Row {
	rows := make([]core.Row, 0, len(methodLabels)+2)
	for _, method := range []string{entity.PaymentCash, entity.PaymentCard, entity.PaymentTransfer} {
		total, ok := summary.TotalByMethod[method]
		if !ok {
			continue
		}
		rows = append(rows, row.New(5).Add(
			col.New(8),
			col.New(2).Add(text.New(methodLabel(method), props.Text{Size: 8, Color: colorGray})),
			col.New(2).Add(text.New("$"+total.StringFixed(2), props.Text{Size: 8, Align: align.Right})),
		))
	}
	rows = append(rows,
		row.New(7).Add(
			col.New(8),
			col.New(2).Add(text.New("TOTAL", props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary})),
			col.New(2).Add(text.New("$"+summary.Total.StringFixed(2), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary})),
		),
		row.New(5).Add(
			col.New(8),
			col.New(4).Add(text.New(fmt.Sprintf("%d ventas en el período", summary.Count), props.Text{Size: 8, Color: colorGray})),
		),
	)
	return rows
}

func methodLabel(method string) string {
	if label, ok := methodLabels[method]; ok {
		return label
	}
	return method
}
