package sales

import (
	"github.com/myfoodtruck/pos-api/internal/application/dto"
	"github.com/myfoodtruck/pos-api/internal/application/usecase"
	"github.com/myfoodtruck/pos-api/internal/domain/repository"
)

// PosDataUseCase arma el modelo de lectura de la pantalla del punto de venta:
// cada categoría con sus productos anidados. El cruce por categoryId se hace
// aquí (en el consumidor del catálogo), no en los repositorios.
type PosDataUseCase struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository
}

// NewPosDataUseCase construye el caso de uso.
func NewPosDataUseCase(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) *PosDataUseCase {
	return &PosDataUseCase{categoryRepo: categoryRepo, productRepo: productRepo}
}

// PosData devuelve las categorías con sus productos, cruzadas por igualdad
// de categoryId. Productos con categoryId colgante (categoría borrada) no
// aparecen en ninguna agrupación.
func (uc *PosDataUseCase) PosData() ([]dto.POSCategory, error) {
	categories, err := uc.categoryRepo.List()
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}

	out := make([]dto.POSCategory, 0, len(categories))
	for _, cat := range categories {
		group := dto.POSCategory{
			ID:       cat.ID,
			Name:     cat.Name,
			Products: []dto.ProductResponse{},
		}
		for _, p := range products {
			if p.CategoryID == cat.ID {
				group.Products = append(group.Products, usecase.ToProductResponse(p))
			}
		}
		out = append(out, group)
	}
	return out, nil
}
