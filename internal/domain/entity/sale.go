package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Métodos de pago válidos para Sale.
const (
	PaymentCash     = "cash"
	PaymentCard     = "card"
	PaymentTransfer = "transfer"
)

// ValidPaymentMethod indica si el método pertenece al conjunto cerrado cash|card|transfer.
func ValidPaymentMethod(m string) bool {
	return m == PaymentCash || m == PaymentCard || m == PaymentTransfer
}

// SaleItem es una línea de venta con el precio unitario congelado al momento de vender.
// Se guarda tal cual la envió el cliente; ediciones posteriores del producto no la alteran.
type SaleItem struct {
	ProductID string          `json:"productId"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// Sale es un registro inmutable del libro de ventas: una vez insertado no existe
// ruta de actualización ni borrado. SellerID/SellerName son la foto del usuario
// que vendió, independiente de ediciones posteriores a ese usuario.
type Sale struct {
	ID            string
	Items         []SaleItem
	Total         decimal.Decimal
	PaymentMethod string // cash, card, transfer
	Date          time.Time // asignada por el servidor, nunca por el cliente
	SellerID      string
	SellerName    string
}
