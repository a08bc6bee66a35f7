package repository

import (
	"context"

	"github.com/jhoicas/agrilconnect-api/internal/domain/entity"
)

// ProfileRepository define el puerto de persistencia para BusinessProfile.
// Los métodos Get devuelven (nil, nil) cuando no existe el registro.
type ProfileRepository interface {
	Create(ctx context.Context, profile *entity.BusinessProfile) error
	GetByID(ctx context.Context, id string) (*entity.BusinessProfile, error)
	GetByUserID(ctx context.Context, userID string) (*entity.BusinessProfile, error)
	GetByBusinessName(ctx context.Context, businessName string) (*entity.BusinessProfile, error)
	Update(ctx context.Context, profile *entity.BusinessProfile) error
	// List devuelve los perfiles del más reciente al más antiguo.
	List(ctx context.Context) ([]*entity.BusinessProfile, error)
	Delete(ctx context.Context, id string) error
}
