package http

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/myfoodtruck/pos-api/internal/application/dto"
	"github.com/myfoodtruck/pos-api/internal/application/report"
	"github.com/myfoodtruck/pos-api/internal/domain"
)

// ReportPDFGenerator renderiza el reporte de ventas como documento PDF.
type ReportPDFGenerator interface {
	GenerateSalesReportPDF(sales []dto.SaleResponse, summary dto.ReportSummary, start, end string) ([]byte, error)
}

// ReportHandler reporte de ventas (solo admin).
type ReportHandler struct {
	uc  *report.SalesReportUseCase
	pdf ReportPDFGenerator
}

// NewReportHandler construye el handler de reportes.
func NewReportHandler(uc *report.SalesReportUseCase, pdf ReportPDFGenerator) *ReportHandler {
	return &ReportHandler{uc: uc, pdf: pdf}
}

// SalesReport godoc
// @Summary      Ventas por rango de fechas, la más nueva primero
// @Tags         admin
// @Security     Bearer
// @Produce      json
// @Param        start  query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        end    query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200    {array}  dto.SaleResponse
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/admin/sales-report [get]
func (h *ReportHandler) SalesReport(c *fiber.Ctx) error {
	out, err := h.uc.SalesReport(c.Query("start"), c.Query("end"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "las fechas deben tener formato YYYY-MM-DD"})
		}
		return internalError(c, err)
	}
	return c.JSON(out)
}

// SalesReportPDF godoc
// @Summary      Reporte de ventas en PDF con totales por método de pago
// @Tags         admin
// @Security     Bearer
// @Produce      application/pdf
// @Param        start  query  string  false  "Fecha inicial YYYY-MM-DD"
// @Param        end    query  string  false  "Fecha final YYYY-MM-DD"
// @Success      200    {file}  binary
// @Failure      400    {object}  dto.ErrorResponse
// @Router       /api/admin/sales-report/pdf [get]
func (h *ReportHandler) SalesReportPDF(c *fiber.Ctx) error {
	start, end := c.Query("start"), c.Query("end")
	salesList, err := h.uc.SalesReport(start, end)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "las fechas deben tener formato YYYY-MM-DD"})
		}
		return internalError(c, err)
	}

	pdfBytes, err := h.pdf.GenerateSalesReportPDF(salesList, report.Summarize(salesList), start, end)
	if err != nil {
		return internalError(c, err)
	}

	filename := fmt.Sprintf("reporte-ventas-%s.pdf", time.Now().Format("20060102"))
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
