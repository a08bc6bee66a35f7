package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agrilconnect-api/internal/application/usecase"
	"github.com/jhoicas/agrilconnect-api/internal/domain"
	"github.com/jhoicas/agrilconnect-api/internal/domain/entity"
	"github.com/jhoicas/agrilconnect-api/internal/domain/rbac"
	"github.com/jhoicas/agrilconnect-api/internal/mocks"
)

var storeNow = time.Date(2026, 3, 10, 11, 0, 0, 0, time.UTC)

func newOrderUC() (*usecase.OrderUseCase, *mocks.OrderRepository, *mocks.ReceiptRenderer) {
	orders := new(mocks.OrderRepository)
	receipts := new(mocks.ReceiptRenderer)
	uc := usecase.NewOrderUseCase(orders, receipts, usecase.OrderConfig{
		StoreName: "AgrilConnect",
		Location:  time.UTC,
		Now:       func() time.Time { return storeNow },
	}, nil)
	return uc, orders, receipts
}

func order(status entity.OrderStatus) *entity.Order {
	return &entity.Order{
		ID: "5f0c7a21-aaaa-bbbb-cccc-000000000001", UserID: "u-buyer",
		Status: status, PaymentMethod: entity.PaymentMethodCOD, TotalAmount: decimal.NewFromInt(95),
	}
}

// ─── Panel de pedidos ───

func TestOrders_UserNoPuedeListar(t *testing.T) {
	uc, orders, _ := newOrderUC()

	_, err := uc.List(context.Background(), as(rbac.RoleUser))
	assert.ErrorIs(t, err, domain.ErrForbidden)
	orders.AssertNotCalled(t, "List", mock.Anything)
}

func TestOrders_StaffListaConControles(t *testing.T) {
	uc, orders, _ := newOrderUC()
	orders.On("List", mock.Anything).Return([]*entity.Order{order(entity.OrderStatusConfirmed)}, nil)

	out, err := uc.List(context.Background(), as(rbac.RoleStaff))
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.True(t, out.Controls.CanUpdate)
	assert.False(t, out.Controls.CanDelete)
}

// Cualquier estado válido se acepta, también desde un estado terminal.
func TestUpdateStatus_Permisivo(t *testing.T) {
	uc, orders, _ := newOrderUC()
	o := order(entity.OrderStatusCancelled)
	orders.On("GetByID", mock.Anything, o.ID).Return(o, nil)
	orders.On("UpdateStatus", mock.Anything, o.ID, entity.OrderStatusPending).Return(nil)

	out, err := uc.UpdateStatus(context.Background(), as(rbac.RoleStaff), o.ID, "pending")
	require.NoError(t, err)
	assert.Equal(t, "pending", out.Status)
}

func TestUpdateStatus_EstadoInvalido(t *testing.T) {
	uc, orders, _ := newOrderUC()

	_, err := uc.UpdateStatus(context.Background(), as(rbac.RoleAdmin), "o-1", "shipped")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatus_PedidoInexistente(t *testing.T) {
	uc, orders, _ := newOrderUC()
	orders.On("GetByID", mock.Anything, "o-x").Return(nil, nil)

	_, err := uc.UpdateStatus(context.Background(), as(rbac.RoleAdmin), "o-x", "confirmed")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ─── Panel de entregas ───

func TestDeliveries_ConfirmadosDelDia(t *testing.T) {
	uc, orders, _ := newOrderUC()
	from := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	orders.On("ListByDeliveryWindow", mock.Anything, entity.OrderStatusConfirmed, from, from.AddDate(0, 0, 1)).
		Return([]*entity.Order{order(entity.OrderStatusConfirmed)}, nil)

	out, err := uc.Deliveries(context.Background(), as(rbac.RoleStaff), "2026-03-12")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-12", out.Date)
	assert.Len(t, out.Items, 1)
}

func TestDeliveries_SinFechaUsaHoy(t *testing.T) {
	uc, orders, _ := newOrderUC()
	orders.On("ListByDeliveryWindow", mock.Anything, entity.OrderStatusConfirmed, mock.Anything, mock.Anything).
		Return([]*entity.Order{}, nil)

	out, err := uc.Deliveries(context.Background(), as(rbac.RoleManager), "")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-10", out.Date)
}

func TestMarkDelivery_SoloProcessingODelivered(t *testing.T) {
	uc, _, _ := newOrderUC()
	_, err := uc.MarkDelivery(context.Background(), as(rbac.RoleStaff), "o-1", "cancelled")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestMarkDelivery_Entregado(t *testing.T) {
	uc, orders, _ := newOrderUC()
	o := order(entity.OrderStatusProcessing)
	orders.On("GetByID", mock.Anything, o.ID).Return(o, nil)
	orders.On("UpdateStatus", mock.Anything, o.ID, entity.OrderStatusDelivered).Return(nil)

	out, err := uc.MarkDelivery(context.Background(), as(rbac.RoleStaff), o.ID, "delivered")
	require.NoError(t, err)
	assert.Equal(t, "delivered", out.Status)
}

// ─── Cliente ───

func TestMine_SoloPedidosPropios(t *testing.T) {
	uc, orders, _ := newOrderUC()
	s := as(rbac.RoleUser)
	orders.On("ListByUser", mock.Anything, s.UserID).Return([]*entity.Order{order(entity.OrderStatusConfirmed)}, nil)

	out, err := uc.Mine(context.Background(), s)
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)
	assert.Nil(t, out.Controls)
}

func TestReceipt_Dueno(t *testing.T) {
	uc, orders, receipts := newOrderUC()
	o := order(entity.OrderStatusConfirmed)
	o.UserID = "u-user"
	orders.On("GetByID", mock.Anything, o.ID).Return(o, nil)
	receipts.On("RenderOrderReceipt", o, "AgrilConnect").Return([]byte("%PDF-1.4"), nil)

	pdf, name, err := uc.Receipt(context.Background(), as(rbac.RoleUser), o.ID)
	require.NoError(t, err)
	assert.Equal(t, "order-5f0c7a21.pdf", name)
	assert.Equal(t, []byte("%PDF-1.4"), pdf)
}

func TestReceipt_AjenoSinPermiso(t *testing.T) {
	uc, orders, receipts := newOrderUC()
	o := order(entity.OrderStatusConfirmed)
	orders.On("GetByID", mock.Anything, o.ID).Return(o, nil)

	_, _, err := uc.Receipt(context.Background(), as(rbac.RoleUser), o.ID)
	assert.ErrorIs(t, err, domain.ErrForbidden)
	receipts.AssertNotCalled(t, "RenderOrderReceipt", mock.Anything, mock.Anything)
}

func TestReceipt_StaffPuedeVerCualquiera(t *testing.T) {
	uc, orders, receipts := newOrderUC()
	o := order(entity.OrderStatusConfirmed)
	orders.On("GetByID", mock.Anything, o.ID).Return(o, nil)
	receipts.On("RenderOrderReceipt", o, "AgrilConnect").Return(nil, errors.New("fuente no encontrada"))

	_, _, err := uc.Receipt(context.Background(), as(rbac.RoleStaff), o.ID)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrForbidden)
}
