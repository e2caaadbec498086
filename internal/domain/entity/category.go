package entity

import "time"

// Category representa una categoría de productos del menú.
type Category struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
