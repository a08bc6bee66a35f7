package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus estado del pedido.
// Progresión habitual: pending → confirmed → processing → delivered; cancelled es salida lateral.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

// OrderStatuses todos los estados en orden de progresión.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusDelivered, OrderStatusCancelled,
	}
}

// IsValid indica si s es un estado conocido.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// IsTerminal delivered y cancelled no avanzan en el flujo normal.
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

// CanTransition indica si el panel acepta pasar de from a to.
// Cualquier estado válido se acepta desde cualquier otro: el personal corrige
// estados a mano (p.ej. reabrir un pedido cancelado por error).
func CanTransition(from, to OrderStatus) bool {
	return to.IsValid()
}

// PaymentMethod forma de pago del pedido.
type PaymentMethod string

const (
	PaymentMethodCOD PaymentMethod = "cod"
	// PaymentMethodGateway pago en línea; el valor almacenado es "razorpay".
	PaymentMethodGateway PaymentMethod = "razorpay"
)

// IsValid indica si m es una forma de pago conocida.
func (m PaymentMethod) IsValid() bool {
	return m == PaymentMethodCOD || m == PaymentMethodGateway
}

// InitialStatus contra entrega confirma de inmediato; en línea espera el pago.
func (m PaymentMethod) InitialStatus() OrderStatus {
	if m == PaymentMethodCOD {
		return OrderStatusConfirmed
	}
	return OrderStatusPending
}

// Order pedido de un negocio cliente.
type Order struct {
	ID              string
	UserID          string
	Status          OrderStatus
	PaymentMethod   PaymentMethod
	TotalAmount     decimal.Decimal
	DeliveryAddress string
	DeliveryDate    time.Time
	GatewayOrderID  string // id del cobro en la pasarela; vacío en contra entrega
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items    []OrderItem
	Customer *OrderCustomer // datos del perfil para listados administrativos
}

// OrderItem línea de pedido con precio congelado al momento de la compra.
type OrderItem struct {
	ID          string
	OrderID     string
	ProductID   string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
	CreatedAt   time.Time
	ProductName string
	ProductUnit string
}

// OrderCustomer subconjunto del perfil mostrado junto al pedido.
type OrderCustomer struct {
	BusinessName string
	OwnerName    string
	OwnerMobile  string
}

// ItemsTotal suma de los totales de línea.
func (o *Order) ItemsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range o.Items {
		total = total.Add(it.TotalPrice)
	}
	return total
}

// ShortID prefijo de 8 caracteres usado en descripciones y recibos.
func (o *Order) ShortID() string {
	if len(o.ID) <= 8 {
		return o.ID
	}
	return o.ID[:8]
}
