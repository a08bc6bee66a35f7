package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItemResponse línea del pedido con nombre y unidad del producto.
type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductUnit string          `json:"product_unit"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
}

// OrderCustomerResponse datos del negocio que hizo el pedido.
type OrderCustomerResponse struct {
	BusinessName string `json:"business_name"`
	OwnerName    string `json:"owner_name"`
	OwnerMobile  string `json:"owner_mobile"`
}

// OrderResponse salida de un pedido.
type OrderResponse struct {
	ID              string                 `json:"id"`
	UserID          string                 `json:"user_id"`
	Status          string                 `json:"status"`
	PaymentMethod   string                 `json:"payment_method"`
	TotalAmount     decimal.Decimal        `json:"total_amount"`
	DeliveryAddress string                 `json:"delivery_address"`
	DeliveryDate    time.Time              `json:"delivery_date"`
	CreatedAt       time.Time              `json:"created_at"`
	UpdatedAt       time.Time              `json:"updated_at"`
	Customer        *OrderCustomerResponse `json:"customer,omitempty"`
	Items           []OrderItemResponse    `json:"items"`
}

// OrderListResponse lista de pedidos.
type OrderListResponse struct {
	Items    []OrderResponse `json:"items"`
	Controls *PanelControls  `json:"controls,omitempty"`
}

// UpdateOrderStatusRequest nuevo estado del pedido.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed processing delivered cancelled"`
}

// DeliveryStatusRequest transición desde el panel de entregas.
type DeliveryStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=processing delivered"`
}

// DeliveryListResponse pedidos confirmados para un día de entrega.
type DeliveryListResponse struct {
	Date     string          `json:"date"`
	Items    []OrderResponse `json:"items"`
	Controls *PanelControls  `json:"controls,omitempty"`
}

// DeliverySummaryResponse contadores del tablero de entregas.
type DeliverySummaryResponse struct {
	Date       string `json:"date"`
	Scheduled  int    `json:"scheduled"`   // confirmados para el día
	InProgress int    `json:"in_progress"` // en preparación para el día
	Delivered  int    `json:"delivered"`   // marcados entregados ese día
}
