package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/agrilconnect-api/internal/application/ports"
	"github.com/jhoicas/agrilconnect-api/internal/domain/entity"
	"github.com/jhoicas/agrilconnect-api/internal/domain/repository"
)

var (
	_ ports.PaymentGateway  = (*PaymentGateway)(nil)
	_ ports.ReceiptRenderer = (*ReceiptRenderer)(nil)
)

type PaymentGateway struct{ mock.Mock }

func (m *PaymentGateway) CreateSession(ctx context.Context, req ports.PaymentRequest) (*ports.PaymentSession, error) {
	args := m.Called(ctx, req)
	s, _ := args.Get(0).(*ports.PaymentSession)
	return s, args.Error(1)
}

func (m *PaymentGateway) VerifySignature(gatewayOrderID, paymentID, signature string) bool {
	return m.Called(gatewayOrderID, paymentID, signature).Bool(0)
}

type ReceiptRenderer struct{ mock.Mock }

func (m *ReceiptRenderer) RenderOrderReceipt(order *entity.Order, storeName string) ([]byte, error) {
	args := m.Called(order, storeName)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

// TxRunner ejecuta los callbacks sin transacción real, con los repos mock dados.
// Commit/rollback se simulan: si fn falla, Rolled queda en true.
type TxRunner struct {
	Users    repository.UserRepository
	Profiles repository.ProfileRepository
	Orders   repository.OrderRepository
	Rolled   bool
}

func (r *TxRunner) RunSignUp(ctx context.Context, fn func(repository.UserRepository, repository.ProfileRepository) error) error {
	err := fn(r.Users, r.Profiles)
	r.Rolled = err != nil
	return err
}

func (r *TxRunner) RunCheckout(ctx context.Context, fn func(repository.OrderRepository) error) error {
	err := fn(r.Orders)
	r.Rolled = err != nil
	return err
}
