package repository

import (
	"context"

	"github.com/jhoicas/agrilconnect-api/internal/domain/entity"
)

// InquiryRepository define el puerto de persistencia para consultas de contacto.
type InquiryRepository interface {
	Create(ctx context.Context, inquiry *entity.Inquiry) error
	// List filtra por estado si status no es vacío; del más reciente al más antiguo.
	List(ctx context.Context, status entity.InquiryStatus) ([]*entity.Inquiry, error)
	UpdateStatus(ctx context.Context, id string, status entity.InquiryStatus) error
}
