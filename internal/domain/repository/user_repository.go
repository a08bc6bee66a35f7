package repository

import (
	"context"

	"github.com/jhoicas/agrilconnect-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para las cuentas de acceso.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Delete(ctx context.Context, id string) error
}
