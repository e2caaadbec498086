package repository

import (
	"time"

	"github.com/myfoodtruck/pos-api/internal/domain/entity"
)

// SaleRepository puerto de persistencia para el libro de ventas (append-only).
// No expone Update ni Delete: las ventas son inmutables una vez creadas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	// ListByDateRange devuelve ventas ordenadas por fecha descendente (la más nueva primero).
	// start/end en nil listan todo el historial.
	ListByDateRange(start, end *time.Time) ([]*entity.Sale, error)
}
