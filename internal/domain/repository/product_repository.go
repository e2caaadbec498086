package repository

import "github.com/myfoodtruck/pos-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	// GetByIDForUpdate obtiene el producto bloqueando su fila (SELECT FOR UPDATE).
	// Solo tiene sentido dentro de una transacción; fuera de una tx se comporta como GetByID.
	GetByIDForUpdate(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) error
	// UpdateStock fija el stock del producto al valor dado (ya recortado por el caso de uso).
	UpdateStock(id string, stock int) error
	Delete(id string) error
}
