package checkout_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agrilconnect-api/internal/application/checkout"
	"github.com/jhoicas/agrilconnect-api/internal/application/dto"
	"github.com/jhoicas/agrilconnect-api/internal/application/ports"
	"github.com/jhoicas/agrilconnect-api/internal/application/session"
	"github.com/jhoicas/agrilconnect-api/internal/domain"
	"github.com/jhoicas/agrilconnect-api/internal/domain/cart"
	"github.com/jhoicas/agrilconnect-api/internal/domain/entity"
	"github.com/jhoicas/agrilconnect-api/internal/domain/rbac"
	"github.com/jhoicas/agrilconnect-api/internal/mocks"
)

type fixture struct {
	orders   *mocks.OrderRepository
	products *mocks.ProductRepository
	profiles *mocks.ProfileRepository
	carts    *mocks.CartStore
	gateway  *mocks.PaymentGateway
	tx       *mocks.TxRunner
	uc       *checkout.CheckoutUseCase
}

func newFixture(withGateway bool) *fixture {
	f := &fixture{
		orders:   new(mocks.OrderRepository),
		products: new(mocks.ProductRepository),
		profiles: new(mocks.ProfileRepository),
		carts:    new(mocks.CartStore),
		gateway:  new(mocks.PaymentGateway),
	}
	f.tx = &mocks.TxRunner{Orders: f.orders}
	var gw ports.PaymentGateway
	if withGateway {
		gw = f.gateway
	}
	f.uc = checkout.NewCheckoutUseCase(f.tx, f.orders, f.products, f.profiles, f.carts, gw, checkout.Config{
		StoreName: "AgrilConnect",
		Currency:  "INR",
		Location:  ist,
		Now:       func() time.Time { return fixedNow },
	}, nil)
	return f
}

var buyer = session.New("u-1", "buyer@hotel.in", rbac.RoleUser)

func buyerProfile() *entity.BusinessProfile {
	return &entity.BusinessProfile{ID: "bp-1", UserID: "u-1", BusinessName: "Hotel Saffron", OwnerName: "Ravi", OwnerMobile: "9876543210"}
}

func tomatoes() *entity.Product {
	return &entity.Product{ID: "p-1", Name: "Tomatoes", Unit: "kg", Price: decimal.NewFromInt(40), InStock: true}
}

func coriander() *entity.Product {
	return &entity.Product{ID: "p-2", Name: "Coriander", Unit: "bunch", Price: decimal.NewFromInt(15), InStock: true}
}

// Tomatoes ×2 + Coriander ×1 = 95.
func filledCart(t *testing.T) *cart.Cart {
	c := cart.New("u-1")
	require.NoError(t, c.Add(tomatoes(), 2))
	require.NoError(t, c.Add(coriander(), 1))
	return c
}

func (f *fixture) stockAvailable() {
	f.products.On("GetByID", mock.Anything, "p-1").Return(tomatoes(), nil)
	f.products.On("GetByID", mock.Anything, "p-2").Return(coriander(), nil)
}

func request(method string) dto.CheckoutRequest {
	return dto.CheckoutRequest{
		DeliveryAddress: "12 MG Road, Bengaluru",
		DeliveryDate:    "2026-03-11",
		PaymentMethod:   method,
	}
}

// ─── Contra entrega ───

func TestPlaceOrder_ContraEntregaConfirmaYVaciaCarrito(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()
	f.profiles.On("GetByUserID", ctx, "u-1").Return(buyerProfile(), nil)
	f.carts.On("Load", ctx, "u-1").Return(filledCart(t), nil)
	f.stockAvailable()

	var created *entity.Order
	f.orders.On("Create", ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*entity.Order) }).
		Return(nil)
	f.carts.On("Delete", ctx, "u-1").Return(nil)

	out, err := f.uc.PlaceOrder(ctx, buyer, request("cod"))
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, entity.OrderStatusConfirmed, created.Status)
	assert.True(t, decimal.NewFromInt(95).Equal(created.TotalAmount), "total %s", created.TotalAmount)
	require.Len(t, created.Items, 2)
	assert.True(t, decimal.NewFromInt(80).Equal(created.Items[0].TotalPrice))
	assert.True(t, decimal.NewFromInt(15).Equal(created.Items[1].TotalPrice))
	assert.True(t, created.ItemsTotal().Equal(created.TotalAmount))
	assert.Equal(t, time.Date(2026, 3, 11, 9, 0, 0, 0, ist), created.DeliveryDate)

	assert.Nil(t, out.Payment)
	assert.Equal(t, "confirmed", out.Order.Status)
	f.carts.AssertCalled(t, "Delete", ctx, "u-1")
	f.gateway.AssertNotCalled(t, "CreateSession", mock.Anything, mock.Anything)
}

func TestPlaceOrder_CobraPrecioVigenteDelCatalogo(t *testing.T) {
	f := newFixture(false)
	ctx := context.Background()
	f.profiles.On("GetByUserID", ctx, "u-1").Return(buyerProfile(), nil)
	f.carts.On("Load", ctx, "u-1").Return(filledCart(t), nil)
	subido := tomatoes()
	subido.Price = decimal.NewFromInt(45)
	f.products.On("GetByID", mock.Anything, "p-1").Return(subido, nil)
	f.products.On("GetByID", mock.Anything, "p-2").Return(coriander(), nil)

	var created *entity.Order
	f.orders.On("Create", ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(args mock.Arguments) { created = args.Get(1).(*entity.Order) }).
		Return(nil)
	f.carts.On("Delete", ctx, "u-1").Return(nil)

	_, err := f.uc.PlaceOrder(ctx, buyer, request("cod"))
	require.NoError(t, err)
	require.NotNil(t, created)

	// 2 × 45 + 15
	assert.True(t, decimal.NewFromInt(105).Equal(created.TotalAmount), "total %s", created.TotalAmount)
	assert.True(t, decimal.NewFromInt(45).Equal(created.Items[0].UnitPrice))
	assert.True(t, decimal.NewFromInt(90).Equal(created.Items[0].TotalPrice))
	assert.True(t, created.ItemsTotal().Equal(created.TotalAmount))
}

// ─── Validaciones ───

func TestPlaceOrder_SinPerfil(t *testing.T) {
	f := newFixture(false)
	f.profiles.On("GetByUserID", mock.Anything, "u-1").Return(nil, nil)

	_, err := f.uc.PlaceOrder(context.Background(), buyer, request("cod"))
	assert.ErrorIs(t, err, domain.ErrProfileRequired)
	f.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlaceOrder_CarritoVacio(t *testing.T) {
	f := newFixture(false)
	f.profiles.On("GetByUserID", mock.Anything, "u-1").Return(buyerProfile(), nil)
	f.carts.On("Load", mock.Anything, "u-1").Return(cart.New("u-1"), nil)

	_, err := f.uc.PlaceOrder(context.Background(), buyer, request("cod"))
	assert.ErrorIs(t, err, domain.ErrEmptyCart)
}

func TestPlaceOrder_FechaDeHoyRechazada(t *testing.T) {
	f := newFixture(false)
	in := request("cod")
	in.DeliveryDate = "2026-03-10"

	_, err := f.uc.PlaceOrder(context.Background(), buyer, in)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	f.carts.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
}

func TestPlaceOrder_ProductoAgotadoDesdeQueSeAgrego(t *testing.T) {
	f := newFixture(false)
	f.profiles.On("GetByUserID", mock.Anything, "u-1").Return(buyerProfile(), nil)
	f.carts.On("Load", mock.Anything, "u-1").Return(filledCart(t), nil)
	out := tomatoes()
	out.InStock = false
	f.products.On("GetByID", mock.Anything, "p-1").Return(out, nil)

	_, err := f.uc.PlaceOrder(context.Background(), buyer, request("cod"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	f.orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlaceOrder_FormaDePagoDesconocida(t *testing.T) {
	f := newFixture(true)
	_, err := f.uc.PlaceOrder(context.Background(), buyer, request("cheque"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestPlaceOrder_PagoEnLineaSinPasarela(t *testing.T) {
	f := newFixture(false)
	_, err := f.uc.PlaceOrder(context.Background(), buyer, request("razorpay"))
	assert.ErrorIs(t, err, domain.ErrPaymentDisabled)
}

func TestPlaceOrder_SinSesion(t *testing.T) {
	f := newFixture(false)
	_, err := f.uc.PlaceOrder(context.Background(), session.Session{}, request("cod"))
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestPlaceOrder_FalloAlInsertarNoVaciaCarrito(t *testing.T) {
	f := newFixture(false)
	f.profiles.On("GetByUserID", mock.Anything, "u-1").Return(buyerProfile(), nil)
	f.carts.On("Load", mock.Anything, "u-1").Return(filledCart(t), nil)
	f.stockAvailable()
	f.orders.On("Create", mock.Anything, mock.Anything).Return(errors.New("db caída"))

	_, err := f.uc.PlaceOrder(context.Background(), buyer, request("cod"))
	require.Error(t, err)
	assert.True(t, f.tx.Rolled)
	f.carts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// ─── Pago en línea ───

func TestPlaceOrder_EnLineaQuedaPendienteConSesionDePago(t *testing.T) {
	f := newFixture(true)
	ctx := context.Background()
	f.profiles.On("GetByUserID", ctx, "u-1").Return(buyerProfile(), nil)
	f.carts.On("Load", ctx, "u-1").Return(filledCart(t), nil)
	f.stockAvailable()

	var created *entity.Order
	f.orders.On("Create", ctx, mock.Anything).
		Run(func(args mock.Arguments) { created = args.Get(1).(*entity.Order) }).
		Return(nil)
	f.gateway.On("CreateSession", mock.Anything, mock.MatchedBy(func(r ports.PaymentRequest) bool {
		return r.Amount.Equal(decimal.NewFromInt(95)) &&
			r.Currency == "INR" &&
			r.CustomerPhone == "9876543210" &&
			r.Description == "Order #"+r.OrderID[:8]
	})).Return(&ports.PaymentSession{
		GatewayOrderID: "order_RZP1", KeyID: "rzp_test", AmountMinor: 9500, Currency: "INR",
		Description: "Order #x", CustomerEmail: "buyer@hotel.in", CustomerPhone: "9876543210",
	}, nil)
	f.orders.On("SetGatewayOrderID", ctx, mock.Anything, "order_RZP1").Return(nil)

	out, err := f.uc.PlaceOrder(ctx, buyer, request("razorpay"))
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPending, created.Status)
	require.NotNil(t, out.Payment)
	assert.Equal(t, int64(9500), out.Payment.Amount)
	assert.Equal(t, "order_RZP1", out.Payment.GatewayOrderID)
	assert.Equal(t, "AgrilConnect", out.Payment.Name)
	f.carts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPlaceOrder_PasarelaFallaCancelaPedido(t *testing.T) {
	f := newFixture(true)
	f.profiles.On("GetByUserID", mock.Anything, "u-1").Return(buyerProfile(), nil)
	f.carts.On("Load", mock.Anything, "u-1").Return(filledCart(t), nil)
	f.stockAvailable()
	f.orders.On("Create", mock.Anything, mock.Anything).Return(nil)
	f.gateway.On("CreateSession", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))
	f.orders.On("UpdateStatus", mock.Anything, mock.Anything, entity.OrderStatusCancelled).Return(nil)

	_, err := f.uc.PlaceOrder(context.Background(), buyer, request("razorpay"))
	assert.ErrorIs(t, err, domain.ErrPaymentFailed)
	f.orders.AssertCalled(t, "UpdateStatus", mock.Anything, mock.Anything, entity.OrderStatusCancelled)
}

// ─── Confirmación del pago ───

func pendingOrder() *entity.Order {
	return &entity.Order{
		ID: "0a1b2c3d-0000-0000-0000-000000000001", UserID: "u-1",
		Status: entity.OrderStatusPending, PaymentMethod: entity.PaymentMethodGateway,
		TotalAmount: decimal.NewFromInt(95), GatewayOrderID: "order_RZP1",
	}
}

func confirmation() dto.ConfirmPaymentRequest {
	return dto.ConfirmPaymentRequest{GatewayOrderID: "order_RZP1", PaymentID: "pay_1", Signature: "sig"}
}

func TestConfirmPayment_FirmaValidaConfirma(t *testing.T) {
	f := newFixture(true)
	o := pendingOrder()
	f.orders.On("GetByID", mock.Anything, o.ID).Return(o, nil)
	f.gateway.On("VerifySignature", "order_RZP1", "pay_1", "sig").Return(true)
	f.orders.On("UpdateStatus", mock.Anything, o.ID, entity.OrderStatusConfirmed).Return(nil)
	f.carts.On("Delete", mock.Anything, "u-1").Return(nil)

	out, err := f.uc.ConfirmPayment(context.Background(), buyer, o.ID, confirmation())
	require.NoError(t, err)
	assert.Equal(t, "confirmed", out.Status)
	f.carts.AssertCalled(t, "Delete", mock.Anything, "u-1")
}

func TestConfirmPayment_FirmaInvalidaCancela(t *testing.T) {
	f := newFixture(true)
	o := pendingOrder()
	f.orders.On("GetByID", mock.Anything, o.ID).Return(o, nil)
	f.gateway.On("VerifySignature", "order_RZP1", "pay_1", "sig").Return(false)
	f.orders.On("UpdateStatus", mock.Anything, o.ID, entity.OrderStatusCancelled).Return(nil)

	_, err := f.uc.ConfirmPayment(context.Background(), buyer, o.ID, confirmation())
	assert.ErrorIs(t, err, domain.ErrPaymentFailed)
	f.carts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestConfirmPayment_FalloReportadoCancela(t *testing.T) {
	f := newFixture(true)
	o := pendingOrder()
	f.orders.On("GetByID", mock.Anything, o.ID).Return(o, nil)
	f.orders.On("UpdateStatus", mock.Anything, o.ID, entity.OrderStatusCancelled).Return(nil)

	_, err := f.uc.ConfirmPayment(context.Background(), buyer, o.ID, dto.ConfirmPaymentRequest{Failed: true, Reason: "card declined"})
	assert.ErrorIs(t, err, domain.ErrPaymentFailed)
	f.gateway.AssertNotCalled(t, "VerifySignature", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmPayment_OtroGatewayOrderIDCancela(t *testing.T) {
	f := newFixture(true)
	o := pendingOrder()
	f.orders.On("GetByID", mock.Anything, o.ID).Return(o, nil)
	f.orders.On("UpdateStatus", mock.Anything, o.ID, entity.OrderStatusCancelled).Return(nil)
	in := confirmation()
	in.GatewayOrderID = "order_OTRO"

	_, err := f.uc.ConfirmPayment(context.Background(), buyer, o.ID, in)
	assert.ErrorIs(t, err, domain.ErrPaymentFailed)
}

func TestConfirmPayment_PedidoAjeno(t *testing.T) {
	f := newFixture(true)
	o := pendingOrder()
	o.UserID = "u-2"
	f.orders.On("GetByID", mock.Anything, o.ID).Return(o, nil)

	_, err := f.uc.ConfirmPayment(context.Background(), buyer, o.ID, confirmation())
	assert.ErrorIs(t, err, domain.ErrForbidden)
	f.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmPayment_PedidoYaConfirmado(t *testing.T) {
	f := newFixture(true)
	o := pendingOrder()
	o.Status = entity.OrderStatusConfirmed
	f.orders.On("GetByID", mock.Anything, o.ID).Return(o, nil)

	_, err := f.uc.ConfirmPayment(context.Background(), buyer, o.ID, confirmation())
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestConfirmPayment_PedidoInexistente(t *testing.T) {
	f := newFixture(true)
	f.orders.On("GetByID", mock.Anything, "nope").Return(nil, nil)

	_, err := f.uc.ConfirmPayment(context.Background(), buyer, "nope", confirmation())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
