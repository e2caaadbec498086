package repository

import "github.com/myfoodtruck/pos-api/internal/domain/entity"

// CategoryRepository puerto de persistencia para categorías.
// Delete no toca los productos que referencian la categoría (referencia, no propiedad).
type CategoryRepository interface {
	Create(category *entity.Category) error
	GetByID(id string) (*entity.Category, error)
	List() ([]*entity.Category, error)
	Update(category *entity.Category) error
	Delete(id string) error
}
