package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/agrilconnect-api/internal/application/dto"
	"github.com/jhoicas/agrilconnect-api/internal/application/session"
	"github.com/jhoicas/agrilconnect-api/internal/domain"
	"github.com/jhoicas/agrilconnect-api/internal/domain/entity"
	"github.com/jhoicas/agrilconnect-api/internal/domain/rbac"
	"github.com/jhoicas/agrilconnect-api/internal/domain/repository"
)

// InquiryUseCase formulario público de contacto y su panel de seguimiento.
type InquiryUseCase struct {
	repo repository.InquiryRepository
}

func NewInquiryUseCase(repo repository.InquiryRepository) *InquiryUseCase {
	return &InquiryUseCase{repo: repo}
}

// Submit registra la consulta en estado pending. Todos los campos son obligatorios.
func (uc *InquiryUseCase) Submit(ctx context.Context, in dto.ContactRequest) (*dto.ContactResponse, error) {
	inq := &entity.Inquiry{
		ID:        uuid.New().String(),
		Name:      strings.TrimSpace(in.Name),
		Business:  strings.TrimSpace(in.Business),
		Email:     strings.TrimSpace(in.Email),
		Phone:     strings.TrimSpace(in.Phone),
		Message:   strings.TrimSpace(in.Message),
		Status:    entity.InquiryStatusPending,
		CreatedAt: time.Now().UTC(),
	}
	if inq.Name == "" || inq.Business == "" || inq.Email == "" || inq.Phone == "" || inq.Message == "" {
		return nil, fmt.Errorf("todos los campos son obligatorios: %w", domain.ErrInvalidInput)
	}
	if err := uc.repo.Create(ctx, inq); err != nil {
		return nil, err
	}
	return &dto.ContactResponse{Success: true, Data: dto.FromInquiry(inq)}, nil
}

// List filtra por estado si status no es vacío.
func (uc *InquiryUseCase) List(ctx context.Context, s session.Session, status string) (*dto.InquiryListResponse, error) {
	ev := s.Permissions()
	if err := ev.Authorize(rbac.ActionRead, rbac.ResourceInquiries); err != nil {
		return nil, err
	}
	st := entity.InquiryStatus(status)
	if st != "" && !st.IsValid() {
		return nil, fmt.Errorf("estado %q: %w", status, domain.ErrInvalidInput)
	}
	list, err := uc.repo.List(ctx, st)
	if err != nil {
		return nil, err
	}
	controls := dto.ControlsFor(ev, rbac.ResourceInquiries)
	return &dto.InquiryListResponse{Items: dto.FromInquiries(list), Controls: &controls}, nil
}

func (uc *InquiryUseCase) UpdateStatus(ctx context.Context, s session.Session, id, status string) error {
	if err := s.Permissions().Authorize(rbac.ActionUpdate, rbac.ResourceInquiries); err != nil {
		return err
	}
	st := entity.InquiryStatus(status)
	if !st.IsValid() {
		return fmt.Errorf("estado %q: %w", status, domain.ErrInvalidInput)
	}
	return uc.repo.UpdateStatus(ctx, id, st)
}
