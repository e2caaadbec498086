package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto vendible con su stock actual.
// CategoryName es una copia desnormalizada del nombre de la categoría al momento
// de crear/editar el producto; puede quedar desfasada si la categoría se renombra.
// Stock nunca baja de cero: las ventas lo recortan (clamp) en lugar de dejarlo negativo.
type Product struct {
	ID           string
	Name         string
	Price        decimal.Decimal // precio de venta
	CategoryID   string          // referencia, no propiedad: borrar la categoría no borra el producto
	CategoryName string
	Stock        int
	MinStock     int // umbral de alerta de stock mínimo
	Description  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
