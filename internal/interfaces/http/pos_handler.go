package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/myfoodtruck/pos-api/internal/application/dto"
	"github.com/myfoodtruck/pos-api/internal/application/sales"
	"github.com/myfoodtruck/pos-api/internal/domain"
)

// POSHandler rutas del terminal de ventas (admin o vendedor).
type POSHandler struct {
	posDataUC      *sales.PosDataUseCase
	registerSaleUC *sales.RegisterSaleUseCase
}

// NewPOSHandler construye el handler del punto de venta.
func NewPOSHandler(posDataUC *sales.PosDataUseCase, registerSaleUC *sales.RegisterSaleUseCase) *POSHandler {
	return &POSHandler{posDataUC: posDataUC, registerSaleUC: registerSaleUC}
}

// PosData godoc
// @Summary      Categorías con sus productos para armar el carrito
// @Tags         vendedor
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.POSCategory
// @Router       /api/vendedor/pos-data [get]
func (h *POSHandler) PosData(c *fiber.Ctx) error {
	out, err := h.posDataUC.PosData()
	if err != nil {
		return internalError(c, err)
	}
	return c.JSON(out)
}

// RegisterSale godoc
// @Summary      Registrar una venta: descuenta stock y guarda el historial
// @Tags         vendedor
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterSaleRequest  true  "items, total, paymentMethod"
// @Success      201   {object}  dto.RegisterSaleResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/vendedor/sales [post]
func (h *POSHandler) RegisterSale(c *fiber.Ctx) error {
	var in dto.RegisterSaleRequest
	_ = c.BodyParser(&in) // cuerpo malformado se trata como vacío y cae en ErrEmptyCart
	out, err := h.registerSaleUC.RegisterSale(c.Context(), SessionIdentity(c), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyCart):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_CART", Message: "La venta no tiene productos."})
		case errors.Is(err, domain.ErrInvalidInput):
			return badInput(c)
		}
		return internalError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
