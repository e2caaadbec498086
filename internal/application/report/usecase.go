package report

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/myfoodtruck/pos-api/internal/application/dto"
	"github.com/myfoodtruck/pos-api/internal/domain"
	"github.com/myfoodtruck/pos-api/internal/domain/entity"
	"github.com/myfoodtruck/pos-api/internal/domain/repository"
)

// dateLayout formato de las fechas que envía el cliente (?start=2026-08-31).
const dateLayout = "2006-01-02"

// SalesReportUseCase lectura del libro de ventas por rango de fechas.
// Solo lee: las ventas nunca se modifican después de insertadas.
type SalesReportUseCase struct {
	saleRepo repository.SaleRepository
}

// NewSalesReportUseCase construye el caso de uso.
func NewSalesReportUseCase(saleRepo repository.SaleRepository) *SalesReportUseCase {
	return &SalesReportUseCase{saleRepo: saleRepo}
}

// SalesReport devuelve las ventas ordenadas de la más nueva a la más vieja.
// Si start y end vienen dados, el filtro es inclusivo con granularidad de día
// en hora local del servidor: desde las 00:00:00.000 de start hasta las
// 23:59:59.999 de end. Con strings vacíos se lista todo el historial.
func (uc *SalesReportUseCase) SalesReport(start, end string) ([]dto.SaleResponse, error) {
	var from, to *time.Time
	if start != "" && end != "" {
		startDay, err := time.ParseInLocation(dateLayout, start, time.Local)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		endDay, err := time.ParseInLocation(dateLayout, end, time.Local)
		if err != nil {
			return nil, domain.ErrInvalidInput
		}
		f := startDay
		// Construir el corte con reloj de pared: sumar 24h se corre en los
		// días de cambio de hora (23h/25h locales).
		t := time.Date(endDay.Year(), endDay.Month(), endDay.Day(), 23, 59, 59, 999_000_000, time.Local)
		from, to = &f, &t
	}

	sales, err := uc.saleRepo.ListByDateRange(from, to)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SaleResponse, 0, len(sales))
	for _, s := range sales {
		out = append(out, toSaleResponse(s))
	}
	return out, nil
}

// Summarize es el fold puro sobre el reporte: conteo, total general y totales
// agrupados por método de pago.
func Summarize(sales []dto.SaleResponse) dto.ReportSummary {
	summary := dto.ReportSummary{
		Count:         len(sales),
		Total:         decimal.Zero,
		TotalByMethod: map[string]decimal.Decimal{},
	}
	for _, s := range sales {
		summary.Total = summary.Total.Add(s.Total)
		summary.TotalByMethod[s.PaymentMethod] = summary.TotalByMethod[s.PaymentMethod].Add(s.Total)
	}
	return summary
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	items := make([]dto.SaleItemRequest, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemRequest{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return dto.SaleResponse{
		ID:            s.ID,
		Items:         items,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		Date:          s.Date,
		SellerID:      s.SellerID,
		SellerName:    s.SellerName,
	}
}
