package usecase

import (
	"context"

	"github.com/jhoicas/agrilconnect-api/internal/application/dto"
	"github.com/jhoicas/agrilconnect-api/internal/application/session"
	"github.com/jhoicas/agrilconnect-api/internal/domain"
	"github.com/jhoicas/agrilconnect-api/internal/domain/cart"
	"github.com/jhoicas/agrilconnect-api/internal/domain/repository"
)

// CartUseCase carrito del cliente de la sesión.
type CartUseCase struct {
	carts    repository.CartStore
	products repository.ProductRepository
}

func NewCartUseCase(carts repository.CartStore, products repository.ProductRepository) *CartUseCase {
	return &CartUseCase{carts: carts, products: products}
}

func (uc *CartUseCase) Get(ctx context.Context, s session.Session) (*dto.CartResponse, error) {
	c, err := uc.load(ctx, s)
	if err != nil {
		return nil, err
	}
	return toCartResponse(c), nil
}

// Add agrega unidades; el precio se toma del producto en este momento.
func (uc *CartUseCase) Add(ctx context.Context, s session.Session, in dto.AddCartItemRequest) (*dto.CartResponse, error) {
	if !s.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	p, err := uc.products.GetByID(ctx, in.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return uc.update(ctx, s, func(c *cart.Cart) error {
		return c.Add(p, in.Quantity)
	})
}

// UpdateQuantity cantidad <= 0 elimina la línea.
func (uc *CartUseCase) UpdateQuantity(ctx context.Context, s session.Session, productID string, qty int) (*dto.CartResponse, error) {
	return uc.update(ctx, s, func(c *cart.Cart) error {
		return c.UpdateQuantity(productID, qty)
	})
}

func (uc *CartUseCase) Remove(ctx context.Context, s session.Session, productID string) (*dto.CartResponse, error) {
	return uc.update(ctx, s, func(c *cart.Cart) error {
		c.Remove(productID)
		return nil
	})
}

func (uc *CartUseCase) Clear(ctx context.Context, s session.Session) error {
	if !s.IsAuthenticated() {
		return domain.ErrUnauthorized
	}
	return uc.carts.Delete(ctx, s.UserID)
}

func (uc *CartUseCase) load(ctx context.Context, s session.Session) (*cart.Cart, error) {
	if !s.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	return uc.carts.Load(ctx, s.UserID)
}

// update lectura-modificación-escritura del carrito sin perder escrituras concurrentes.
func (uc *CartUseCase) update(ctx context.Context, s session.Session, fn func(*cart.Cart) error) (*dto.CartResponse, error) {
	if !s.IsAuthenticated() {
		return nil, domain.ErrUnauthorized
	}
	c, err := uc.carts.Update(ctx, s.UserID, fn)
	if err != nil {
		return nil, err
	}
	return toCartResponse(c), nil
}

func toCartResponse(c *cart.Cart) *dto.CartResponse {
	lines := make([]dto.CartLineResponse, 0, len(c.Lines))
	for _, l := range c.Lines {
		lines = append(lines, dto.CartLineResponse{
			ProductID: l.ProductID,
			Name:      l.Name,
			Unit:      l.Unit,
			UnitPrice: l.UnitPrice,
			Quantity:  l.Quantity,
			Subtotal:  l.Subtotal(),
		})
	}
	return &dto.CartResponse{Lines: lines, Total: c.Total(), ItemCount: c.ItemCount()}
}
