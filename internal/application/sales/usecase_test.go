package sales_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myfoodtruck/pos-api/internal/application/dto"
	"github.com/myfoodtruck/pos-api/internal/application/sales"
	"github.com/myfoodtruck/pos-api/internal/domain"
	"github.com/myfoodtruck/pos-api/internal/domain/entity"
	"github.com/myfoodtruck/pos-api/internal/domain/repository"
	"github.com/myfoodtruck/pos-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductRepo struct {
	products map[string]*entity.Product
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	m := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		m[p.ID] = p
	}
	return &fakeProductRepo{products: m}
}

func (r *fakeProductRepo) Create(p *entity.Product) error { r.products[p.ID] = p; return nil }

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetByIDForUpdate(id string) (*entity.Product, error) {
	return r.GetByID(id)
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) error { r.products[p.ID] = p; return nil }

func (r *fakeProductRepo) UpdateStock(id string, stock int) error {
	p, ok := r.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}

func (r *fakeProductRepo) Delete(id string) error { delete(r.products, id); return nil }

type fakeSaleRepo struct {
	created []*entity.Sale
}

func (r *fakeSaleRepo) Create(s *entity.Sale) error {
	r.created = append(r.created, s)
	return nil
}

func (r *fakeSaleRepo) ListByDateRange(start, end *time.Time) ([]*entity.Sale, error) {
	return r.created, nil
}

// fakeTxRunner ejecuta el callback directo contra los fakes, sin transacción real.
type fakeTxRunner struct {
	productRepo *fakeProductRepo
	saleRepo    *fakeSaleRepo
}

func (t *fakeTxRunner) Run(ctx context.Context, fn func(repository.ProductRepository, repository.SaleRepository) error) error {
	return fn(t.productRepo, t.saleRepo)
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var testSeller = jwt.Identity{
	UserID:   "00000000-0000-0000-0000-000000000099",
	Username: "patricio",
	Name:     "Patricio",
	Role:     entity.RoleVendedor,
}

func buildUseCase(products ...*entity.Product) (*sales.RegisterSaleUseCase, *fakeProductRepo, *fakeSaleRepo) {
	pr := newFakeProductRepo(products...)
	sr := &fakeSaleRepo{}
	return sales.NewRegisterSaleUseCase(&fakeTxRunner{productRepo: pr, saleRepo: sr}), pr, sr
}

func producto(id, name string, stock, minStock int) *entity.Product {
	return &entity.Product{
		ID:       id,
		Name:     name,
		Price:    decimal.NewFromFloat(2.50),
		Stock:    stock,
		MinStock: minStock,
	}
}

func lineaCarrito(productID, name string, qty int, unitPrice float64) dto.SaleItemRequest {
	return dto.SaleItemRequest{
		ProductID: productID,
		Name:      name,
		Quantity:  qty,
		UnitPrice: decimal.NewFromFloat(unitPrice),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de descuento de stock y alertas
// ──────────────────────────────────────────────────────────────────────────────

// Venta normal: stock 10, mínimo 3, se venden 8 → stock queda en 2 y se genera alerta.
func TestRegisterSale_DescuentaStockYAlerta(t *testing.T) {
	uc, pr, sr := buildUseCase(producto("p1", "Empanada", 10, 3))

	resp, err := uc.RegisterSale(context.Background(), testSeller, dto.RegisterSaleRequest{
		Items:         []dto.SaleItemRequest{lineaCarrito("p1", "Empanada", 8, 2.50)},
		Total:         decimal.NewFromFloat(20.00),
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, pr.products["p1"].Stock, "stock debe quedar en 10-8=2")
	require.Len(t, resp.Alerts, 1, "2 <= mínimo 3 debe generar alerta")
	assert.Equal(t, "¡Alerta! Empanada ha alcanzado el stock mínimo (2 restantes).", resp.Alerts[0])
	require.Len(t, sr.created, 1, "la venta debe quedar insertada")
}

// Sobreventa: stock 5, se venden 8 → el stock se recorta en 0, nunca queda negativo,
// y la alerta reporta "0 restantes".
func TestRegisterSale_SobreventaRecortaEnCero(t *testing.T) {
	uc, pr, _ := buildUseCase(producto("p1", "Arepa", 5, 3))

	resp, err := uc.RegisterSale(context.Background(), testSeller, dto.RegisterSaleRequest{
		Items:         []dto.SaleItemRequest{lineaCarrito("p1", "Arepa", 8, 1.00)},
		Total:         decimal.NewFromFloat(8.00),
		PaymentMethod: entity.PaymentCard,
	})
	require.NoError(t, err)

	assert.Equal(t, 0, pr.products["p1"].Stock, "el stock nunca debe quedar negativo")
	require.Len(t, resp.Alerts, 1)
	assert.Equal(t, "¡Alerta! Arepa ha alcanzado el stock mínimo (0 restantes).", resp.Alerts[0])
}

// Stock holgado: no debe haber alerta si el remanente queda sobre el mínimo.
func TestRegisterSale_SinAlertaConStockHolgado(t *testing.T) {
	uc, pr, _ := buildUseCase(producto("p1", "Gaseosa", 20, 3))

	resp, err := uc.RegisterSale(context.Background(), testSeller, dto.RegisterSaleRequest{
		Items:         []dto.SaleItemRequest{lineaCarrito("p1", "Gaseosa", 5, 1.50)},
		Total:         decimal.NewFromFloat(7.50),
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	assert.Equal(t, 15, pr.products["p1"].Stock)
	assert.Empty(t, resp.Alerts, "15 > mínimo 3, no debe haber alerta")
	assert.NotNil(t, resp.Alerts, "alerts debe serializar como [] y no como null")
}

// Remanente exactamente en el mínimo → sí hay alerta (comparación <=).
func TestRegisterSale_AlertaEnElMinimoExacto(t *testing.T) {
	uc, _, _ := buildUseCase(producto("p1", "Jugo", 10, 3))

	resp, err := uc.RegisterSale(context.Background(), testSeller, dto.RegisterSaleRequest{
		Items:         []dto.SaleItemRequest{lineaCarrito("p1", "Jugo", 7, 1.80)},
		Total:         decimal.NewFromFloat(12.60),
		PaymentMethod: entity.PaymentTransfer,
	})
	require.NoError(t, err)

	require.Len(t, resp.Alerts, 1)
	assert.Equal(t, "¡Alerta! Jugo ha alcanzado el stock mínimo (3 restantes).", resp.Alerts[0])
}

// Producto borrado entre el armado del carrito y la confirmación: la línea se
// omite, las demás se procesan y la venta igual se registra.
func TestRegisterSale_OmiteProductoInexistente(t *testing.T) {
	uc, pr, sr := buildUseCase(producto("p1", "Empanada", 10, 3))

	resp, err := uc.RegisterSale(context.Background(), testSeller, dto.RegisterSaleRequest{
		Items: []dto.SaleItemRequest{
			lineaCarrito("fantasma", "Producto Borrado", 2, 5.00),
			lineaCarrito("p1", "Empanada", 1, 2.50),
		},
		Total:         decimal.NewFromFloat(12.50),
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err, "una línea de producto inexistente no debe fallar la venta")

	assert.Equal(t, 9, pr.products["p1"].Stock, "la línea existente sí descuenta stock")
	require.Len(t, sr.created, 1)
	// Los items se guardan tal cual llegaron, incluida la línea fantasma.
	assert.Len(t, sr.created[0].Items, 2)
	assert.Empty(t, resp.Alerts)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests del registro de venta (foto de items, total y vendedor)
// ──────────────────────────────────────────────────────────────────────────────

// Items y total se guardan tal cual los envió el cliente, sin recalcular.
func TestRegisterSale_GuardaItemsYTotalDelCliente(t *testing.T) {
	uc, _, sr := buildUseCase(producto("p1", "Empanada", 10, 3))

	// Total inconsistente a propósito: 1 x 2.50 pero total 99.99.
	resp, err := uc.RegisterSale(context.Background(), testSeller, dto.RegisterSaleRequest{
		Items:         []dto.SaleItemRequest{lineaCarrito("p1", "Empanada", 1, 2.50)},
		Total:         decimal.NewFromFloat(99.99),
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	require.Len(t, sr.created, 1)
	sale := sr.created[0]
	assert.True(t, sale.Total.Equal(decimal.NewFromFloat(99.99)),
		"el total se persiste tal cual, no se recalcula")
	assert.True(t, sale.Items[0].UnitPrice.Equal(decimal.NewFromFloat(2.50)))
	assert.True(t, resp.Result.Total.Equal(decimal.NewFromFloat(99.99)))
}

// La venta queda estampada con la identidad del vendedor de la sesión y fecha del servidor.
func TestRegisterSale_EstampaVendedorYFecha(t *testing.T) {
	uc, _, sr := buildUseCase(producto("p1", "Empanada", 10, 3))

	before := time.Now()
	resp, err := uc.RegisterSale(context.Background(), testSeller, dto.RegisterSaleRequest{
		Items:         []dto.SaleItemRequest{lineaCarrito("p1", "Empanada", 1, 2.50)},
		Total:         decimal.NewFromFloat(2.50),
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)
	after := time.Now()

	sale := sr.created[0]
	assert.Equal(t, testSeller.UserID, sale.SellerID)
	assert.Equal(t, testSeller.Name, sale.SellerName)
	assert.NotEmpty(t, sale.ID, "la venta debe recibir un id generado")
	assert.False(t, sale.Date.Before(before) || sale.Date.After(after),
		"la fecha la asigna el servidor al momento de la venta")
	assert.Equal(t, sale.ID, resp.Result.ID)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests de validación de entrada
// ──────────────────────────────────────────────────────────────────────────────

func TestRegisterSale_CarritoVacioRetornaError(t *testing.T) {
	uc, _, sr := buildUseCase()

	_, err := uc.RegisterSale(context.Background(), testSeller, dto.RegisterSaleRequest{
		Items:         nil,
		PaymentMethod: entity.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
	assert.Empty(t, sr.created, "no debe insertarse nada con carrito vacío")
}

func TestRegisterSale_MetodoDePagoInvalido(t *testing.T) {
	uc, pr, sr := buildUseCase(producto("p1", "Empanada", 10, 3))

	_, err := uc.RegisterSale(context.Background(), testSeller, dto.RegisterSaleRequest{
		Items:         []dto.SaleItemRequest{lineaCarrito("p1", "Empanada", 1, 2.50)},
		Total:         decimal.NewFromFloat(2.50),
		PaymentMethod: "bitcoin",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 10, pr.products["p1"].Stock, "el stock no debe tocarse")
	assert.Empty(t, sr.created)
}

func TestRegisterSale_CantidadMenorAUnoInvalida(t *testing.T) {
	uc, _, sr := buildUseCase(producto("p1", "Empanada", 10, 3))

	_, err := uc.RegisterSale(context.Background(), testSeller, dto.RegisterSaleRequest{
		Items:         []dto.SaleItemRequest{lineaCarrito("p1", "Empanada", 0, 2.50)},
		Total:         decimal.Zero,
		PaymentMethod: entity.PaymentCash,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, sr.created)
}

// Varias líneas en un mismo carrito se procesan en orden y acumulan sus alertas.
func TestRegisterSale_VariasLineasAcumulanAlertas(t *testing.T) {
	uc, pr, _ := buildUseCase(
		producto("p1", "Empanada", 4, 3),
		producto("p2", "Gaseosa", 50, 5),
	)

	resp, err := uc.RegisterSale(context.Background(), testSeller, dto.RegisterSaleRequest{
		Items: []dto.SaleItemRequest{
			lineaCarrito("p1", "Empanada", 2, 2.50),
			lineaCarrito("p2", "Gaseosa", 1, 1.50),
		},
		Total:         decimal.NewFromFloat(6.50),
		PaymentMethod: entity.PaymentCash,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, pr.products["p1"].Stock)
	assert.Equal(t, 49, pr.products["p2"].Stock)
	require.Len(t, resp.Alerts, 1, "solo la empanada cae al mínimo")
	assert.Contains(t, resp.Alerts[0], "Empanada")
}
