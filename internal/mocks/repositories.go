// Package mocks implementaciones testify/mock de los puertos de dominio y aplicación, para tests.
package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jhoicas/agrilconnect-api/internal/domain/cart"
	"github.com/jhoicas/agrilconnect-api/internal/domain/entity"
	"github.com/jhoicas/agrilconnect-api/internal/domain/repository"
)

var (
	_ repository.ProductRepository  = (*ProductRepository)(nil)
	_ repository.CategoryRepository = (*CategoryRepository)(nil)
	_ repository.UserRepository     = (*UserRepository)(nil)
	_ repository.ProfileRepository  = (*ProfileRepository)(nil)
	_ repository.OrderRepository    = (*OrderRepository)(nil)
	_ repository.InquiryRepository  = (*InquiryRepository)(nil)
	_ repository.CartStore          = (*CartStore)(nil)
)

// ─── Products ─────────────────────────────────────────────────────────────────

type ProductRepository struct{ mock.Mock }

func (m *ProductRepository) Create(ctx context.Context, p *entity.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProductRepository) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.Product)
	return p, args.Error(1)
}

func (m *ProductRepository) Update(ctx context.Context, p *entity.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProductRepository) List(ctx context.Context) ([]*entity.Product, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Product)
	return list, args.Error(1)
}

func (m *ProductRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// ─── Categories ───────────────────────────────────────────────────────────────

type CategoryRepository struct{ mock.Mock }

func (m *CategoryRepository) Create(ctx context.Context, c *entity.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CategoryRepository) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*entity.Category)
	return c, args.Error(1)
}

func (m *CategoryRepository) Update(ctx context.Context, c *entity.Category) error {
	return m.Called(ctx, c).Error(0)
}

func (m *CategoryRepository) List(ctx context.Context) ([]*entity.Category, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Category)
	return list, args.Error(1)
}

func (m *CategoryRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// ─── Users ────────────────────────────────────────────────────────────────────

type UserRepository struct{ mock.Mock }

func (m *UserRepository) Create(ctx context.Context, u *entity.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*entity.User)
	return u, args.Error(1)
}

func (m *UserRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// ─── Business profiles ────────────────────────────────────────────────────────

type ProfileRepository struct{ mock.Mock }

func (m *ProfileRepository) Create(ctx context.Context, p *entity.BusinessProfile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProfileRepository) GetByID(ctx context.Context, id string) (*entity.BusinessProfile, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*entity.BusinessProfile)
	return p, args.Error(1)
}

func (m *ProfileRepository) GetByUserID(ctx context.Context, userID string) (*entity.BusinessProfile, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(*entity.BusinessProfile)
	return p, args.Error(1)
}

func (m *ProfileRepository) GetByBusinessName(ctx context.Context, name string) (*entity.BusinessProfile, error) {
	args := m.Called(ctx, name)
	p, _ := args.Get(0).(*entity.BusinessProfile)
	return p, args.Error(1)
}

func (m *ProfileRepository) Update(ctx context.Context, p *entity.BusinessProfile) error {
	return m.Called(ctx, p).Error(0)
}

func (m *ProfileRepository) List(ctx context.Context) ([]*entity.BusinessProfile, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.BusinessProfile)
	return list, args.Error(1)
}

func (m *ProfileRepository) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

// ─── Orders ───────────────────────────────────────────────────────────────────

type OrderRepository struct{ mock.Mock }

func (m *OrderRepository) Create(ctx context.Context, o *entity.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *OrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*entity.Order)
	return o, args.Error(1)
}

func (m *OrderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	args := m.Called(ctx)
	list, _ := args.Get(0).([]*entity.Order)
	return list, args.Error(1)
}

func (m *OrderRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Order, error) {
	args := m.Called(ctx, userID)
	list, _ := args.Get(0).([]*entity.Order)
	return list, args.Error(1)
}

func (m *OrderRepository) ListByDeliveryWindow(ctx context.Context, status entity.OrderStatus, from, to time.Time) ([]*entity.Order, error) {
	args := m.Called(ctx, status, from, to)
	list, _ := args.Get(0).([]*entity.Order)
	return list, args.Error(1)
}

func (m *OrderRepository) CountByStatusBetween(ctx context.Context, status entity.OrderStatus, from, to time.Time) (int, error) {
	args := m.Called(ctx, status, from, to)
	return args.Int(0), args.Error(1)
}

func (m *OrderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *OrderRepository) SetGatewayOrderID(ctx context.Context, id, gatewayOrderID string) error {
	return m.Called(ctx, id, gatewayOrderID).Error(0)
}

func (m *OrderRepository) CancelStalePending(ctx context.Context, before time.Time) (int, error) {
	args := m.Called(ctx, before)
	return args.Int(0), args.Error(1)
}

// ─── Inquiries ────────────────────────────────────────────────────────────────

type InquiryRepository struct{ mock.Mock }

func (m *InquiryRepository) Create(ctx context.Context, in *entity.Inquiry) error {
	return m.Called(ctx, in).Error(0)
}

func (m *InquiryRepository) List(ctx context.Context, status entity.InquiryStatus) ([]*entity.Inquiry, error) {
	args := m.Called(ctx, status)
	list, _ := args.Get(0).([]*entity.Inquiry)
	return list, args.Error(1)
}

func (m *InquiryRepository) UpdateStatus(ctx context.Context, id string, status entity.InquiryStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

// ─── Cart ─────────────────────────────────────────────────────────────────────

type CartStore struct{ mock.Mock }

func (m *CartStore) Load(ctx context.Context, userID string) (*cart.Cart, error) {
	args := m.Called(ctx, userID)
	c, _ := args.Get(0).(*cart.Cart)
	return c, args.Error(1)
}

func (m *CartStore) Save(ctx context.Context, c *cart.Cart) error {
	return m.Called(ctx, c).Error(0)
}

// Update se resuelve con las expectativas de Load y Save.
func (m *CartStore) Update(ctx context.Context, userID string, fn func(*cart.Cart) error) (*cart.Cart, error) {
	c, err := m.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := fn(c); err != nil {
		return nil, err
	}
	if err := m.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (m *CartStore) Delete(ctx context.Context, userID string) error {
	return m.Called(ctx, userID).Error(0)
}
