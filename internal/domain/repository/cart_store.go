package repository

import (
	"context"

	"github.com/jhoicas/agrilconnect-api/internal/domain/cart"
)

// CartStore guarda el carrito de cada cuenta. Load devuelve un carrito vacío si no existe.
// Update aplica fn de forma atómica respecto a otras escrituras del mismo carrito y devuelve
// domain.ErrConflict si no lo logra tras varios reintentos.
type CartStore interface {
	Load(ctx context.Context, userID string) (*cart.Cart, error)
	Save(ctx context.Context, c *cart.Cart) error
	Update(ctx context.Context, userID string, fn func(*cart.Cart) error) (*cart.Cart, error)
	Delete(ctx context.Context, userID string) error
}
