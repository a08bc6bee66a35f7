package http

import (
	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/agrilconnect-api/internal/application/analytics"
	"github.com/jhoicas/agrilconnect-api/internal/application/dto"
	"github.com/jhoicas/agrilconnect-api/internal/application/usecase"
)

// DeliveryHandler panel de entregas y su tablero.
type DeliveryHandler struct {
	orders  *usecase.OrderUseCase
	summary *appanalytics.DeliverySummaryUseCase
}

func NewDeliveryHandler(orders *usecase.OrderUseCase, summary *appanalytics.DeliverySummaryUseCase) *DeliveryHandler {
	return &DeliveryHandler{orders: orders, summary: summary}
}

// List pedidos confirmados con entrega en ?date=YYYY-MM-DD (por defecto hoy).
// GET /api/admin/deliveries
func (h *DeliveryHandler) List(c *fiber.Ctx) error {
	out, err := h.orders.Deliveries(c.UserContext(), GetSession(c), c.Query("date"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetSummary contadores del día: programados, en preparación y entregados hoy.
// GET /api/admin/deliveries/summary
//
// Respuesta: DeliverySummaryResponse (date, scheduled, in_progress, delivered).
func (h *DeliveryHandler) GetSummary(c *fiber.Ctx) error {
	out, err := h.summary.GetSummary(c.UserContext(), GetSession(c), c.Query("date"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// UpdateStatus marca el pedido processing o delivered.
// PATCH /api/admin/deliveries/:id/status
func (h *DeliveryHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := pathID(c, "id")
	if err != nil {
		return writeError(c, err)
	}
	var in dto.DeliveryStatusRequest
	if err := parseBody(c, &in); err != nil {
		return writeError(c, err)
	}
	out, err := h.orders.MarkDelivery(c.UserContext(), GetSession(c), id, in.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}
