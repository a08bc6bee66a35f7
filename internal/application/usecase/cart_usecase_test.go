package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/agrilconnect-api/internal/application/dto"
	"github.com/jhoicas/agrilconnect-api/internal/application/session"
	"github.com/jhoicas/agrilconnect-api/internal/application/usecase"
	"github.com/jhoicas/agrilconnect-api/internal/domain"
	"github.com/jhoicas/agrilconnect-api/internal/domain/cart"
	"github.com/jhoicas/agrilconnect-api/internal/domain/entity"
	"github.com/jhoicas/agrilconnect-api/internal/domain/rbac"
	"github.com/jhoicas/agrilconnect-api/internal/mocks"
)

func newCartUC() (*usecase.CartUseCase, *mocks.CartStore, *mocks.ProductRepository) {
	carts := new(mocks.CartStore)
	products := new(mocks.ProductRepository)
	return usecase.NewCartUseCase(carts, products), carts, products
}

func TestCart_AgregarDosVecesUnaLinea(t *testing.T) {
	uc, carts, products := newCartUC()
	s := as(rbac.RoleUser)
	c := cart.New(s.UserID)
	carts.On("Load", mock.Anything, s.UserID).Return(c, nil)
	carts.On("Save", mock.Anything, c).Return(nil)
	products.On("GetByID", mock.Anything, "p-1").
		Return(&entity.Product{ID: "p-1", Name: "Tomatoes", Unit: "kg", Price: decimal.NewFromInt(40), InStock: true}, nil)

	_, err := uc.Add(context.Background(), s, dto.AddCartItemRequest{ProductID: "p-1", Quantity: 1})
	require.NoError(t, err)
	out, err := uc.Add(context.Background(), s, dto.AddCartItemRequest{ProductID: "p-1", Quantity: 1})
	require.NoError(t, err)

	require.Len(t, out.Lines, 1)
	assert.Equal(t, 2, out.Lines[0].Quantity)
	assert.True(t, decimal.NewFromInt(80).Equal(out.Total))
}

func TestCart_ProductoInexistente(t *testing.T) {
	uc, carts, products := newCartUC()
	s := as(rbac.RoleUser)
	carts.On("Load", mock.Anything, s.UserID).Return(cart.New(s.UserID), nil)
	products.On("GetByID", mock.Anything, "nope").Return(nil, nil)

	_, err := uc.Add(context.Background(), s, dto.AddCartItemRequest{ProductID: "nope", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	carts.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestCart_CantidadCeroEliminaLinea(t *testing.T) {
	uc, carts, _ := newCartUC()
	s := as(rbac.RoleUser)
	c := cart.New(s.UserID)
	require.NoError(t, c.Add(&entity.Product{ID: "p-1", Price: decimal.NewFromInt(40), InStock: true}, 3))
	carts.On("Load", mock.Anything, s.UserID).Return(c, nil)
	carts.On("Save", mock.Anything, c).Return(nil)

	out, err := uc.UpdateQuantity(context.Background(), s, "p-1", 0)
	require.NoError(t, err)
	assert.Empty(t, out.Lines)
	assert.True(t, out.Total.IsZero())
}

func TestCart_SinSesion(t *testing.T) {
	uc, carts, _ := newCartUC()

	_, err := uc.Get(context.Background(), session.Session{})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	carts.AssertNotCalled(t, "Load", mock.Anything, mock.Anything)
}

func TestCart_ConflictoAlGuardarSePropaga(t *testing.T) {
	uc, carts, products := newCartUC()
	s := as(rbac.RoleUser)
	carts.On("Load", mock.Anything, s.UserID).Return(cart.New(s.UserID), nil)
	carts.On("Save", mock.Anything, mock.Anything).Return(domain.ErrConflict)
	products.On("GetByID", mock.Anything, "p-1").
		Return(&entity.Product{ID: "p-1", Price: decimal.NewFromInt(40), InStock: true}, nil)

	out, err := uc.Add(context.Background(), s, dto.AddCartItemRequest{ProductID: "p-1", Quantity: 1})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Nil(t, out)
}
