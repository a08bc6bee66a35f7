// Package checkout convierte el carrito en un pedido y gestiona el pago en línea.
package checkout

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/agrilconnect-api/internal/application/dto"
	"github.com/jhoicas/agrilconnect-api/internal/application/ports"
	"github.com/jhoicas/agrilconnect-api/internal/application/session"
	"github.com/jhoicas/agrilconnect-api/internal/domain"
	"github.com/jhoicas/agrilconnect-api/internal/domain/entity"
	"github.com/jhoicas/agrilconnect-api/internal/domain/repository"
	"github.com/jhoicas/agrilconnect-api/pkg/logger"
)

const gatewayTimeout = 15 * time.Second

// TxRunner inserta pedido y líneas en una transacción.
type TxRunner interface {
	RunCheckout(ctx context.Context, fn func(orderRepo repository.OrderRepository) error) error
}

// Config parámetros de la tienda para el checkout.
type Config struct {
	StoreName string
	Currency  string
	Location  *time.Location
	Now       func() time.Time // nil → time.Now
}

// CheckoutUseCase arma pedidos desde el carrito y confirma pagos.
type CheckoutUseCase struct {
	tx       TxRunner
	orders   repository.OrderRepository
	products repository.ProductRepository
	profiles repository.ProfileRepository
	carts    repository.CartStore
	gateway  ports.PaymentGateway // nil: sólo contra entrega
	cfg      Config
	log      *logger.Logger
}

// NewCheckoutUseCase construye el caso de uso. gateway puede ser nil.
func NewCheckoutUseCase(
	tx TxRunner,
	orders repository.OrderRepository,
	products repository.ProductRepository,
	profiles repository.ProfileRepository,
	carts repository.CartStore,
	gateway ports.PaymentGateway,
	cfg Config,
	log *logger.Logger,
) *CheckoutUseCase {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	if cfg.Currency == "" {
		cfg.Currency = "INR"
	}
	if log == nil {
		log = logger.Nop()
	}
	return &CheckoutUseCase{
		tx: tx, orders: orders, products: products, profiles: profiles, carts: carts,
		gateway: gateway, cfg: cfg, log: log.Component("checkout"),
	}
}

// PlaceOrder crea el pedido con el contenido del carrito.
// Contra entrega: queda confirmed y se vacía el carrito.
// En línea: queda pending y se abre la sesión de pago; si la pasarela falla el pedido pasa a cancelled.
func (uc *CheckoutUseCase) PlaceOrder(ctx context.Context, s session.Session, in dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if !s.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	method := entity.PaymentMethod(in.PaymentMethod)
	if !method.IsValid() {
		return nil, fmt.Errorf("forma de pago %q: %w", in.PaymentMethod, domain.ErrInvalidInput)
	}
	if method == entity.PaymentMethodGateway && uc.gateway == nil {
		return nil, domain.ErrPaymentDisabled
	}
	address := strings.TrimSpace(in.DeliveryAddress)
	if address == "" {
		return nil, fmt.Errorf("dirección de entrega vacía: %w", domain.ErrInvalidInput)
	}
	deliveryAt, err := ParseDelivery(in.DeliveryDate, in.DeliveryTime, uc.cfg.Location, uc.cfg.Now())
	if err != nil {
		return nil, err
	}

	profile, err := uc.profiles.GetByUserID(ctx, s.UserID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileRequired
	}

	c, err := uc.carts.Load(ctx, s.UserID)
	if err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, domain.ErrEmptyCart
	}
	// Se cobra el precio vigente del catálogo, no el que quedó guardado en el carrito.
	for i, line := range c.Lines {
		p, err := uc.products.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil || !p.InStock {
			return nil, fmt.Errorf("producto %s no disponible: %w", line.Name, domain.ErrInvalidInput)
		}
		c.Lines[i].UnitPrice = p.Price
	}

	now := uc.cfg.Now().UTC()
	order := &entity.Order{
		ID:              uuid.New().String(),
		UserID:          s.UserID,
		Status:          method.InitialStatus(),
		PaymentMethod:   method,
		TotalAmount:     c.Total(),
		DeliveryAddress: address,
		DeliveryDate:    deliveryAt,
		CreatedAt:       now,
		UpdatedAt:       now,
		Items:           make([]entity.OrderItem, 0, len(c.Lines)),
		Customer: &entity.OrderCustomer{
			BusinessName: profile.BusinessName,
			OwnerName:    profile.OwnerName,
			OwnerMobile:  profile.OwnerMobile,
		},
	}
	for _, line := range c.Lines {
		order.Items = append(order.Items, entity.OrderItem{
			ID:          uuid.New().String(),
			OrderID:     order.ID,
			ProductID:   line.ProductID,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			TotalPrice:  line.Subtotal(),
			CreatedAt:   now,
			ProductName: line.Name,
			ProductUnit: line.Unit,
		})
	}

	if err := uc.tx.RunCheckout(ctx, func(orderRepo repository.OrderRepository) error {
		return orderRepo.Create(ctx, order)
	}); err != nil {
		return nil, err
	}
	uc.log.Info().
		Str("order_id", order.ID).
		Str("user_id", s.UserID).
		Str("payment_method", string(method)).
		Str("status", string(order.Status)).
		Str("total", order.TotalAmount.String()).
		Msg("pedido creado")

	if method == entity.PaymentMethodCOD {
		uc.clearCart(ctx, s.UserID)
		return &dto.CheckoutResponse{Order: dto.FromOrder(order)}, nil
	}

	gwCtx, cancel := context.WithTimeout(ctx, gatewayTimeout)
	defer cancel()
	sess, err := uc.gateway.CreateSession(gwCtx, ports.PaymentRequest{
		OrderID:       order.ID,
		Amount:        order.TotalAmount,
		Currency:      uc.cfg.Currency,
		Description:   "Order #" + order.ShortID(),
		CustomerEmail: s.Email,
		CustomerPhone: profile.OwnerMobile,
	})
	if err != nil {
		uc.cancel(ctx, order.ID, err.Error())
		return nil, fmt.Errorf("abrir pago: %v: %w", err, domain.ErrPaymentFailed)
	}
	if err := uc.orders.SetGatewayOrderID(ctx, order.ID, sess.GatewayOrderID); err != nil {
		uc.cancel(ctx, order.ID, err.Error())
		return nil, err
	}
	order.GatewayOrderID = sess.GatewayOrderID

	return &dto.CheckoutResponse{
		Order: dto.FromOrder(order),
		Payment: &dto.PaymentSessionResponse{
			KeyID:          sess.KeyID,
			GatewayOrderID: sess.GatewayOrderID,
			Amount:         sess.AmountMinor,
			Currency:       sess.Currency,
			Name:           uc.cfg.StoreName,
			Description:    sess.Description,
			Email:          sess.CustomerEmail,
			Contact:        sess.CustomerPhone,
		},
	}, nil
}

// ConfirmPayment registra el resultado del pago en línea.
// Firma válida → confirmed y carrito vacío. Fallo reportado o firma inválida → cancelled y ErrPaymentFailed.
func (uc *CheckoutUseCase) ConfirmPayment(ctx context.Context, s session.Session, orderID string, in dto.ConfirmPaymentRequest) (*dto.OrderResponse, error) {
	if !s.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	order, err := uc.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrNotFound
	}
	if order.UserID != s.UserID {
		return nil, domain.ErrForbidden
	}
	if order.PaymentMethod != entity.PaymentMethodGateway || order.Status != entity.OrderStatusPending {
		return nil, fmt.Errorf("pedido %s en estado %s: %w", order.ShortID(), order.Status, domain.ErrConflict)
	}

	verified := !in.Failed &&
		uc.gateway != nil &&
		in.GatewayOrderID != "" &&
		in.GatewayOrderID == order.GatewayOrderID &&
		uc.gateway.VerifySignature(in.GatewayOrderID, in.PaymentID, in.Signature)
	if !verified {
		reason := in.Reason
		if !in.Failed {
			reason = "firma de pago inválida"
		}
		uc.cancel(ctx, order.ID, reason)
		return nil, domain.ErrPaymentFailed
	}

	if err := uc.orders.UpdateStatus(ctx, order.ID, entity.OrderStatusConfirmed); err != nil {
		return nil, err
	}
	order.Status = entity.OrderStatusConfirmed
	uc.clearCart(ctx, s.UserID)
	uc.log.Info().Str("order_id", order.ID).Str("payment_id", in.PaymentID).Msg("pago confirmado")

	out := dto.FromOrder(order)
	return &out, nil
}

func (uc *CheckoutUseCase) cancel(ctx context.Context, orderID, reason string) {
	if err := uc.orders.UpdateStatus(ctx, orderID, entity.OrderStatusCancelled); err != nil {
		uc.log.Error().Err(err).Str("order_id", orderID).Msg("no se pudo cancelar el pedido tras fallo de pago")
		return
	}
	uc.log.Warn().Str("order_id", orderID).Str("reason", reason).Msg("pago fallido, pedido cancelado")
}

// clearCart el pedido ya existe; un fallo aquí sólo se registra.
func (uc *CheckoutUseCase) clearCart(ctx context.Context, userID string) {
	if err := uc.carts.Delete(ctx, userID); err != nil {
		uc.log.Error().Err(err).Str("user_id", userID).Msg("no se pudo vaciar el carrito")
	}
}
