package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/agrilconnect-api/internal/domain"
	"github.com/jhoicas/agrilconnect-api/internal/domain/entity"
	"github.com/jhoicas/agrilconnect-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

const orderSelect = `
	SELECT o.id, o.user_id, o.status, o.payment_method, o.total_amount, o.delivery_address,
		o.delivery_date, coalesce(o.gateway_order_id, ''), o.created_at, o.updated_at,
		bp.business_name, bp.owner_name, bp.owner_mobile
	FROM orders o
	LEFT JOIN business_profiles bp ON bp.user_id = o.user_id`

// OrderRepo implementación de OrderRepository: orders + order_items.
type OrderRepo struct {
	q Querier
}

// NewOrderRepository construye el adaptador de pedidos. Pasar pool o tx.
func NewOrderRepository(q Querier) *OrderRepo {
	return &OrderRepo{q: q}
}

// Create inserta cabecera y líneas. Llamar dentro de TxRunner.RunCheckout.
func (r *OrderRepo) Create(ctx context.Context, o *entity.Order) error {
	_, err := r.q.Exec(ctx, `
		INSERT INTO orders (id, user_id, status, payment_method, total_amount, delivery_address, delivery_date, gateway_order_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, nullif($8, ''), $9, $10)`,
		o.ID, o.UserID, string(o.Status), string(o.PaymentMethod), o.TotalAmount,
		o.DeliveryAddress, o.DeliveryDate, o.GatewayOrderID, o.CreatedAt, o.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	for i := range o.Items {
		it := &o.Items[i]
		it.OrderID = o.ID
		_, err := r.q.Exec(ctx, `
			INSERT INTO order_items (id, order_id, product_id, quantity, unit_price, total_price, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			it.ID, it.OrderID, it.ProductID, it.Quantity, it.UnitPrice, it.TotalPrice, it.CreatedAt,
		)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.ErrInvalidInput
			}
			return fmt.Errorf("insert order item: %w", err)
		}
	}
	return nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	list, err := r.list(ctx, orderSelect+` WHERE o.id = $1`, id)
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return list[0], nil
}

func (r *OrderRepo) List(ctx context.Context) ([]*entity.Order, error) {
	return r.list(ctx, orderSelect+` ORDER BY o.created_at DESC`)
}

func (r *OrderRepo) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	return r.list(ctx, orderSelect+` WHERE o.user_id = $1 ORDER BY o.created_at DESC`, userID)
}

// ListByDeliveryWindow ordena por fecha de entrega y luego por creación.
func (r *OrderRepo) ListByDeliveryWindow(ctx context.Context, status entity.OrderStatus, from, to time.Time) ([]*entity.Order, error) {
	return r.list(ctx,
		orderSelect+` WHERE o.status = $1 AND o.delivery_date >= $2 AND o.delivery_date < $3
			ORDER BY o.delivery_date, o.created_at`,
		string(status), from, to,
	)
}

func (r *OrderRepo) CountByStatusBetween(ctx context.Context, status entity.OrderStatus, from, to time.Time) (int, error) {
	var n int
	err := r.q.QueryRow(ctx,
		`SELECT count(*) FROM orders WHERE status = $1 AND updated_at >= $2 AND updated_at < $3`, string(status), from, to,
	).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count orders: %w", err)
	}
	return n, nil
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE orders SET status = $2, updated_at = now() WHERE id = $1`, id, string(status))
	if err != nil {
		return fmt.Errorf("update order status: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrderRepo) SetGatewayOrderID(ctx context.Context, id, gatewayOrderID string) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE orders SET gateway_order_id = $2, updated_at = now() WHERE id = $1`, id, gatewayOrderID)
	if err != nil {
		return fmt.Errorf("set gateway order id: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrderRepo) CancelStalePending(ctx context.Context, before time.Time) (int, error) {
	cmd, err := r.q.Exec(ctx, `
		UPDATE orders SET status = $1, updated_at = now()
		WHERE status = $2 AND payment_method = $3 AND created_at < $4`,
		string(entity.OrderStatusCancelled), string(entity.OrderStatusPending),
		string(entity.PaymentMethodGateway), before,
	)
	if err != nil {
		return 0, fmt.Errorf("cancel stale orders: %w", err)
	}
	return int(cmd.RowsAffected()), nil
}

// list ejecuta la consulta de cabeceras y adjunta las líneas en una segunda consulta.
func (r *OrderRepo) list(ctx context.Context, query string, args ...any) ([]*entity.Order, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()

	orders := make([]*entity.Order, 0)
	byID := make(map[string]*entity.Order)
	ids := make([]string, 0)
	for rows.Next() {
		var o entity.Order
		var status, method string
		var business, owner, ownerMobile *string
		if err := rows.Scan(&o.ID, &o.UserID, &status, &method, &o.TotalAmount, &o.DeliveryAddress,
			&o.DeliveryDate, &o.GatewayOrderID, &o.CreatedAt, &o.UpdatedAt, &business, &owner, &ownerMobile); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		o.Status = entity.OrderStatus(status)
		o.PaymentMethod = entity.PaymentMethod(method)
		o.Items = []entity.OrderItem{}
		if business != nil {
			o.Customer = &entity.OrderCustomer{
				BusinessName: deref(business),
				OwnerName:    deref(owner),
				OwnerMobile:  deref(ownerMobile),
			}
		}
		orders = append(orders, &o)
		byID[o.ID] = &o
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	rows.Close()

	if len(ids) == 0 {
		return orders, nil
	}
	if err := r.attachItems(ctx, ids, byID); err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepo) attachItems(ctx context.Context, ids []string, byID map[string]*entity.Order) error {
	rows, err := r.q.Query(ctx, `
		SELECT oi.id, oi.order_id, oi.product_id, oi.quantity, oi.unit_price, oi.total_price, oi.created_at,
			coalesce(p.name, ''), coalesce(p.unit, '')
		FROM order_items oi
		LEFT JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = ANY($1)
		ORDER BY oi.created_at, oi.id`, ids)
	if err != nil {
		return fmt.Errorf("list order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var it entity.OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Quantity, &it.UnitPrice,
			&it.TotalPrice, &it.CreatedAt, &it.ProductName, &it.ProductUnit); err != nil {
			return fmt.Errorf("scan order item: %w", err)
		}
		if o, ok := byID[it.OrderID]; ok {
			o.Items = append(o.Items, it)
		}
	}
	return rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
