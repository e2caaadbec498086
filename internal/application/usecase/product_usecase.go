package usecase

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/myfoodtruck/pos-api/internal/application/dto"
	"github.com/myfoodtruck/pos-api/internal/domain"
	"github.com/myfoodtruck/pos-api/internal/domain/entity"
	"github.com/myfoodtruck/pos-api/internal/domain/repository"
)

// ProductUseCase CRUD administrativo de productos.
type ProductUseCase struct {
	productRepo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(productRepo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{productRepo: productRepo}
}

// List devuelve todos los productos.
func (uc *ProductUseCase) List() ([]dto.ProductResponse, error) {
	products, err := uc.productRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductResponse(p))
	}
	return out, nil
}

// Create registra un producto nuevo. Precio negativo y stocks negativos se rechazan.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := validateProduct(in); err != nil {
		return nil, err
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Price:        in.Price,
		CategoryID:   in.CategoryID,
		CategoryName: in.CategoryName,
		Stock:        in.Stock,
		MinStock:     in.MinStock,
		Description:  in.Description,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.productRepo.Create(product); err != nil {
		return nil, err
	}
	resp := ToProductResponse(product)
	return &resp, nil
}

// Update edita un producto, incluido su stock y el CategoryName desnormalizado.
// Ediciones de precio no tocan ventas históricas: cada venta guarda su foto.
func (uc *ProductUseCase) Update(id string, in dto.CreateProductRequest) error {
	if err := validateProduct(in); err != nil {
		return err
	}
	product, err := uc.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	product.Name = in.Name
	product.Price = in.Price
	product.CategoryID = in.CategoryID
	product.CategoryName = in.CategoryName
	product.Stock = in.Stock
	product.MinStock = in.MinStock
	product.Description = in.Description
	product.UpdatedAt = time.Now()
	return uc.productRepo.Update(product)
}

// Delete elimina un producto por ID. Las ventas que lo referencian no cambian.
func (uc *ProductUseCase) Delete(id string) error {
	return uc.productRepo.Delete(id)
}

func validateProduct(in dto.CreateProductRequest) error {
	if in.Name == "" || in.CategoryID == "" {
		return domain.ErrInvalidInput
	}
	if in.Price.LessThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	if in.Stock < 0 || in.MinStock < 0 {
		return domain.ErrInvalidInput
	}
	return nil
}

// ToProductResponse mapea la entidad a su representación pública.
func ToProductResponse(p *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		CategoryID:   p.CategoryID,
		CategoryName: p.CategoryName,
		Stock:        p.Stock,
		MinStock:     p.MinStock,
		Description:  p.Description,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}
