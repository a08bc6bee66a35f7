package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/agrilconnect-api/internal/application/checkout"
	"github.com/jhoicas/agrilconnect-api/internal/application/dto"
)

// CheckoutHandler creación de pedidos y confirmación del pago en línea.
type CheckoutHandler struct {
	uc *checkout.CheckoutUseCase
}

func NewCheckoutHandler(uc *checkout.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{uc: uc}
}

// PlaceOrder godoc
// @Summary      Confirmar pedido con el contenido del carrito
// @Description  cod: el pedido queda confirmed. razorpay: queda pending y se devuelve la sesión de pago.
// @Tags         checkout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CheckoutRequest  true  "Entrega y forma de pago"
// @Success      201   {object}  dto.CheckoutResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      402   {object}  dto.ErrorResponse
// @Router       /api/checkout [post]
func (h *CheckoutHandler) PlaceOrder(c *fiber.Ctx) error {
	var in dto.CheckoutRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.PlaceOrder(c.UserContext(), GetSession(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ConfirmPayment godoc
// @Summary      Resultado del pago en línea
// @Tags         checkout
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                     true  "ID del pedido"
// @Param        body  body  dto.ConfirmPaymentRequest  true  "Respuesta de la pasarela"
// @Success      200   {object}  dto.OrderResponse
// @Failure      402   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/payment [post]
func (h *CheckoutHandler) ConfirmPayment(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.ConfirmPaymentRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.ConfirmPayment(c.UserContext(), GetSession(c), id, in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
