package usecase

import (
	"context"
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

// CategoryUseCase panel de categorías. La lectura también la usa el catálogo público.
type CategoryUseCase struct {
	repo repository.CategoryRepository
}

func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo}
}

// List todas las categorías con los controles del rol de s (una sesión vacía equivale a user).
func (uc *CategoryUseCase) List(ctx context.Context, s session.Session) (*dto.CategoryListResponse, error) {
	ev := s.Permissions()
	if err := ev.Authorize(rbac.ActionRead, rbac.ResourceCategories); err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	controls := dto.ControlsFor(ev, rbac.ResourceCategories)
	return &dto.CategoryListResponse{Items: dto.FromCategories(list), Controls: &controls}, nil
}

func (uc *CategoryUseCase) Create(ctx context.Context, s session.Session, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if err := s.Permissions().Authorize(rbac.ActionCreate, rbac.ResourceCategories); err != nil {
		return nil, err
	}
	c := &entity.Category{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if c.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	out := dto.FromCategory(c)
	return &out, nil
}

func (uc *CategoryUseCase) Update(ctx context.Context, s session.Session, id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if err := s.Permissions().Authorize(rbac.ActionUpdate, rbac.ResourceCategories); err != nil {
		return nil, err
	}
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	if name := strings.TrimSpace(in.Name); name != "" {
		c.Name = name
	}
	if in.Description != nil {
		c.Description = in.Description
	}
	if err := uc.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	out := dto.FromCategory(c)
	return &out, nil
}

// Delete falla con ErrConflict si la categoría aún tiene productos.
func (uc *CategoryUseCase) Delete(ctx context.Context, s session.Session, id string) error {
	if err := s.Permissions().Authorize(rbac.ActionDelete, rbac.ResourceCategories); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, id)
}
