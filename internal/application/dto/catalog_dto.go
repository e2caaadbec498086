package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateCategoryRequest entrada para crear/editar una categoría.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=200"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CreateProductRequest entrada para crear/editar un producto.
// CategoryName llega del cliente y se guarda desnormalizado junto al producto.
type CreateProductRequest struct {
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   string          `json:"categoryId" validate:"required"`
	CategoryName string          `json:"categoryName"`
	Stock        int             `json:"stock" validate:"min=0"`
	MinStock     int             `json:"minStock" validate:"min=0"`
	Description  string          `json:"description"`
}

// ProductResponse salida de un producto con su stock actual.
type ProductResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	CategoryID   string          `json:"categoryId"`
	CategoryName string          `json:"categoryName"`
	Stock        int             `json:"stock"`
	MinStock     int             `json:"minStock"`
	Description  string          `json:"description,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// POSCategory es una categoría con sus productos anidados: el modelo de lectura
// que consume la pantalla del punto de venta.
type POSCategory struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Products []ProductResponse `json:"products"`
}
