package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/myfoodtruck/pos-api/internal/application/dto"
	"github.com/myfoodtruck/pos-api/internal/domain"
	"github.com/myfoodtruck/pos-api/internal/domain/entity"
	"github.com/myfoodtruck/pos-api/internal/domain/repository"
	"github.com/myfoodtruck/pos-api/pkg/jwt"
)

// RegisterSaleUseCase convierte un carrito en un registro de venta durable y
// consistente con el stock. Todo el descuento más la inserción de la venta
// corren dentro de una sola transacción con bloqueo de fila por producto
// (SELECT FOR UPDATE), de modo que dos ventas concurrentes sobre el mismo
// producto no se pisen la actualización de stock.
type RegisterSaleUseCase struct {
	txRunner TxRunner
}

// NewRegisterSaleUseCase construye el caso de uso.
func NewRegisterSaleUseCase(txRunner TxRunner) *RegisterSaleUseCase {
	return &RegisterSaleUseCase{txRunner: txRunner}
}

// RegisterSale procesa el carrito en orden de entrada:
//
//  1. Busca cada producto; si ya no existe, la línea se omite sin fallar la venta.
//  2. Descuenta la cantidad del stock recortando en cero (nunca queda negativo,
//     aunque se pida más de lo disponible).
//  3. Si el stock post-venta sin recortar queda en o bajo el mínimo configurado,
//     acumula una alerta legible con el remanente ya recortado.
//  4. Inserta la venta con los items y el total tal como los envió el cliente,
//     fecha del servidor y la foto del vendedor tomada de la sesión.
//
// Devuelve la venta insertada y las alertas acumuladas.
func (uc *RegisterSaleUseCase) RegisterSale(ctx context.Context, seller jwt.Identity, in dto.RegisterSaleRequest) (*dto.RegisterSaleResponse, error) {
	if len(in.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}
	if !entity.ValidPaymentMethod(in.PaymentMethod) {
		return nil, domain.ErrInvalidInput
	}
	for _, item := range in.Items {
		if item.ProductID == "" || item.Quantity < 1 {
			return nil, domain.ErrInvalidInput
		}
	}

	now := time.Now()
	sale := &entity.Sale{
		ID:            uuid.New().String(),
		Items:         toSaleItems(in.Items),
		Total:         in.Total,
		PaymentMethod: in.PaymentMethod,
		Date:          now,
		SellerID:      seller.UserID,
		SellerName:    seller.Name,
	}

	var alerts []string
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, saleRepo repository.SaleRepository) error {
		for _, item := range in.Items {
			product, err := productRepo.GetByIDForUpdate(item.ProductID)
			if err != nil {
				return err
			}
			if product == nil {
				// Producto borrado entre el armado del carrito y la confirmación:
				// la línea se omite, la venta sigue.
				continue
			}

			newStock := product.Stock - item.Quantity
			clamped := newStock
			if clamped < 0 {
				clamped = 0
			}
			if err := productRepo.UpdateStock(product.ID, clamped); err != nil {
				return err
			}

			// La comparación usa el valor sin recortar; el mensaje, el remanente real.
			if newStock <= product.MinStock {
				alerts = append(alerts, fmt.Sprintf("¡Alerta! %s ha alcanzado el stock mínimo (%d restantes).", product.Name, clamped))
			}
		}
		return saleRepo.Create(sale)
	})
	if err != nil {
		return nil, err
	}

	if alerts == nil {
		alerts = []string{}
	}
	return &dto.RegisterSaleResponse{
		Result: toSaleResponse(sale),
		Alerts: alerts,
	}, nil
}

func toSaleItems(items []dto.SaleItemRequest) []entity.SaleItem {
	out := make([]entity.SaleItem, 0, len(items))
	for _, it := range items {
		out = append(out, entity.SaleItem{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return out
}

func toSaleResponse(s *entity.Sale) dto.SaleResponse {
	items := make([]dto.SaleItemRequest, 0, len(s.Items))
	for _, it := range s.Items {
		items = append(items, dto.SaleItemRequest{
			ProductID: it.ProductID,
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
		})
	}
	return dto.SaleResponse{
		ID:            s.ID,
		Items:         items,
		Total:         s.Total,
		PaymentMethod: s.PaymentMethod,
		Date:          s.Date,
		SellerID:      s.SellerID,
		SellerName:    s.SellerName,
	}
}
