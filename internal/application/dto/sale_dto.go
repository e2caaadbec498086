package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaleItemRequest línea del carrito enviada por el cliente.
// UnitPrice es el precio que mostró la pantalla del POS; se guarda tal cual
// como foto histórica (el servidor no lo recalcula contra el catálogo).
type SaleItemRequest struct {
	ProductID string          `json:"productId" validate:"required"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity" validate:"min=1"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// RegisterSaleRequest entrada de POST /api/vendedor/sales.
type RegisterSaleRequest struct {
	Items         []SaleItemRequest `json:"items" validate:"required,min=1"`
	Total         decimal.Decimal   `json:"total"`
	PaymentMethod string            `json:"paymentMethod" validate:"required,oneof=cash card transfer"`
}

// SaleResponse salida de una venta registrada.
type SaleResponse struct {
	ID            string            `json:"id"`
	Items         []SaleItemRequest `json:"items"`
	Total         decimal.Decimal   `json:"total"`
	PaymentMethod string            `json:"paymentMethod"`
	Date          time.Time         `json:"date"`
	SellerID      string            `json:"sellerId"`
	SellerName    string            `json:"sellerName"`
}

// RegisterSaleResponse resultado de la venta más las alertas de stock mínimo generadas.
type RegisterSaleResponse struct {
	Result SaleResponse `json:"result"`
	Alerts []string     `json:"alerts"`
}

// ReportSummary agregados del reporte: totales por método de pago y conteo.
// Es un fold puro sobre la lista de ventas devuelta; lo consume la exportación PDF.
type ReportSummary struct {
	Count         int                        `json:"count"`
	Total         decimal.Decimal            `json:"total"`
	TotalByMethod map[string]decimal.Decimal `json:"totalByMethod"`
}
