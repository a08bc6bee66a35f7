package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/agrilconnect-api/internal/application/checkout"
	"github.com/jhoicas/agrilconnect-api/internal/application/dto"
	"github.com/jhoicas/agrilconnect-api/internal/application/ports"
	"github.com/jhoicas/agrilconnect-api/internal/application/session"
	"github.com/jhoicas/agrilconnect-api/internal/domain"
	"github.com/jhoicas/agrilconnect-api/internal/domain/entity"
	"github.com/jhoicas/agrilconnect-api/internal/domain/rbac"
	"github.com/jhoicas/agrilconnect-api/internal/domain/repository"
	"github.com/jhoicas/agrilconnect-api/pkg/logger"
)

// OrderConfig datos de la tienda usados en entregas y recibos.
type OrderConfig struct {
	StoreName string
	Location  *time.Location
	Now       func() time.Time
}

// OrderUseCase panel de pedidos, panel de entregas, historial del cliente y recibos.
type OrderUseCase struct {
	repo     repository.OrderRepository
	receipts ports.ReceiptRenderer
	cfg      OrderConfig
	log      *logger.Logger
}

func NewOrderUseCase(repo repository.OrderRepository, receipts ports.ReceiptRenderer, cfg OrderConfig, log *logger.Logger) *OrderUseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if log == nil {
		log = logger.Nop()
	}
	return &OrderUseCase{repo: repo, receipts: receipts, cfg: cfg, log: log.Component("orders")}
}

// List todos los pedidos, más recientes primero.
func (uc *OrderUseCase) List(ctx context.Context, s session.Session) (*dto.OrderListResponse, error) {
	ev := s.Permissions()
	if err := ev.Authorize(rbac.ActionRead, rbac.ResourceOrders); err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	controls := dto.ControlsFor(ev, rbac.ResourceOrders)
	return &dto.OrderListResponse{Items: dto.FromOrders(list), Controls: &controls}, nil
}

// Mine historial del cliente de la sesión.
func (uc *OrderUseCase) Mine(ctx context.Context, s session.Session) (*dto.OrderListResponse, error) {
	if !s.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	list, err := uc.repo.ListByUser(ctx, s.UserID)
	if err != nil {
		return nil, err
	}
	return &dto.OrderListResponse{Items: dto.FromOrders(list)}, nil
}

// Get un pedido: su dueño o un rol con lectura de pedidos.
func (uc *OrderUseCase) Get(ctx context.Context, s session.Session, id string) (*dto.OrderResponse, error) {
	o, err := uc.visible(ctx, s, id)
	if err != nil {
		return nil, err
	}
	out := dto.FromOrder(o)
	return &out, nil
}

// UpdateStatus cualquier estado válido, sin importar el actual.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, s session.Session, id, status string) (*dto.OrderResponse, error) {
	if err := s.Permissions().Authorize(rbac.ActionUpdate, rbac.ResourceOrders); err != nil {
		return nil, err
	}
	to := entity.OrderStatus(status)
	if !to.IsValid() {
		return nil, fmt.Errorf("estado %q: %w", status, domain.ErrInvalidInput)
	}
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if !entity.CanTransition(o.Status, to) {
		return nil, fmt.Errorf("%s → %s: %w", o.Status, to, domain.ErrConflict)
	}
	if err := uc.repo.UpdateStatus(ctx, id, to); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("order_id", id).
		Str("from", string(o.Status)).
		Str("to", string(to)).
		Str("by", s.UserID).
		Msg("estado de pedido actualizado")
	o.Status = to
	o.UpdatedAt = uc.cfg.Now().UTC()
	out := dto.FromOrder(o)
	return &out, nil
}

// Deliveries pedidos confirmados cuya entrega cae en date (YYYY-MM-DD; vacío = hoy).
func (uc *OrderUseCase) Deliveries(ctx context.Context, s session.Session, date string) (*dto.DeliveryListResponse, error) {
	ev := s.Permissions()
	if err := ev.Authorize(rbac.ActionRead, rbac.ResourceOrders); err != nil {
		return nil, err
	}
	day, err := ParseDay(date, uc.cfg.Location, uc.cfg.Now())
	if err != nil {
		return nil, err
	}
	from, to := checkout.DayBounds(day, uc.cfg.Location)
	list, err := uc.repo.ListByDeliveryWindow(ctx, entity.OrderStatusConfirmed, from, to)
	if err != nil {
		return nil, err
	}
	controls := dto.ControlsFor(ev, rbac.ResourceOrders)
	return &dto.DeliveryListResponse{
		Date:     day.Format("2006-01-02"),
		Items:    dto.FromOrders(list),
		Controls: &controls,
	}, nil
}

// MarkDelivery avance desde el panel de entregas: processing o delivered.
func (uc *OrderUseCase) MarkDelivery(ctx context.Context, s session.Session, id, status string) (*dto.OrderResponse, error) {
	to := entity.OrderStatus(status)
	if to != entity.OrderStatusProcessing && to != entity.OrderStatusDelivered {
		return nil, fmt.Errorf("estado de entrega %q: %w", status, domain.ErrInvalidInput)
	}
	return uc.UpdateStatus(ctx, s, id, status)
}

// Receipt PDF del pedido y nombre sugerido del archivo.
func (uc *OrderUseCase) Receipt(ctx context.Context, s session.Session, id string) ([]byte, string, error) {
	o, err := uc.visible(ctx, s, id)
	if err != nil {
		return nil, "", err
	}
	pdf, err := uc.receipts.RenderOrderReceipt(o, uc.cfg.StoreName)
	if err != nil {
		return nil, "", fmt.Errorf("recibo %s: %w", o.ShortID(), err)
	}
	return pdf, fmt.Sprintf("order-%s.pdf", o.ShortID()), nil
}

func (uc *OrderUseCase) visible(ctx context.Context, s session.Session, id string) (*entity.Order, error) {
	if !s.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	if o.UserID != s.UserID {
		if err := s.Permissions().Authorize(rbac.ActionRead, rbac.ResourceOrders); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// ParseDay interpreta YYYY-MM-DD en loc; vacío es el día actual.
func ParseDay(date string, loc *time.Location, now time.Time) (time.Time, error) {
	if date == "" {
		return now.In(loc), nil
	}
	day, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("fecha %q: %w", date, domain.ErrInvalidInput)
	}
	return day, nil
}
