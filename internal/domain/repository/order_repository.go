package repository

import (
	"context"
	"time"

	"github.com/jhoicas/agrilconnect-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para pedidos y sus líneas.
type OrderRepository interface {
	// Create inserta el pedido y sus Items (usar dentro de una transacción).
	Create(ctx context.Context, order *entity.Order) error
	// GetByID incluye Items y Customer.
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	// List todos los pedidos, del más reciente al más antiguo, con Items y Customer.
	List(ctx context.Context) ([]*entity.Order, error)
	// ListByUser pedidos de una cuenta, del más reciente al más antiguo.
	ListByUser(ctx context.Context, userID string) ([]*entity.Order, error)
	// ListByDeliveryWindow pedidos con el estado dado y delivery_date en [from, to).
	ListByDeliveryWindow(ctx context.Context, status entity.OrderStatus, from, to time.Time) ([]*entity.Order, error)
	// CountByStatusBetween cuenta pedidos con status cuyo updated_at cae en [from, to).
	CountByStatusBetween(ctx context.Context, status entity.OrderStatus, from, to time.Time) (int, error)
	// UpdateStatus actualiza sólo el estado; sin precondición sobre el estado actual.
	// Devuelve domain.ErrNotFound si el id no existe.
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error
	// SetGatewayOrderID guarda la referencia del cobro abierto en la pasarela.
	SetGatewayOrderID(ctx context.Context, id, gatewayOrderID string) error
	// CancelStalePending cancela pedidos en línea que siguen pending y fueron creados antes de before.
	// Devuelve cuántos se cancelaron.
	CancelStalePending(ctx context.Context, before time.Time) (int, error)
}
