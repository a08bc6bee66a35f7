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
	"github.com/jhoicas/agrilconnect-api/internal/domain/catalog"
	"github.com/jhoicas/agrilconnect-api/internal/domain/entity"
	"github.com/jhoicas/agrilconnect-api/internal/domain/rbac"
	"github.com/jhoicas/agrilconnect-api/internal/domain/repository"
	"github.com/jhoicas/agrilconnect-api/pkg/logger"
)

// ProductUseCase catálogo público y panel de productos.
type ProductUseCase struct {
	repo       repository.ProductRepository
	categories repository.CategoryRepository
	log        *logger.Logger
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, categories repository.CategoryRepository, log *logger.Logger) *ProductUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ProductUseCase{repo: repo, categories: categories, log: log.Component("products")}
}

// Catalog lista pública, filtrada por nombre de categoría y texto libre.
func (uc *ProductUseCase) Catalog(ctx context.Context, f dto.ProductFilter) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	var cats []*entity.Category
	if f.Category != "" {
		if cats, err = uc.categories.List(ctx); err != nil {
			return nil, err
		}
	}
	filtered := catalog.Apply(products, cats, catalog.Filter{Category: f.Category, Query: f.Query})
	return &dto.ProductListResponse{Items: dto.FromProducts(filtered)}, nil
}

// GetByID ficha pública de un producto.
func (uc *ProductUseCase) GetByID(ctx context.Context, id string) (*dto.ProductResponse, error) {
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	out := dto.FromProduct(p)
	return &out, nil
}

// List panel de productos con los controles del rol.
func (uc *ProductUseCase) List(ctx context.Context, s session.Session) (*dto.ProductListResponse, error) {
	ev := s.Permissions()
	if err := ev.Authorize(rbac.ActionRead, rbac.ResourceProducts); err != nil {
		return nil, err
	}
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	controls := dto.ControlsFor(ev, rbac.ResourceProducts)
	return &dto.ProductListResponse{Items: dto.FromProducts(list), Controls: &controls}, nil
}

// Create alta de producto. El precio debe ser positivo.
func (uc *ProductUseCase) Create(ctx context.Context, s session.Session, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := s.Permissions().Authorize(rbac.ActionCreate, rbac.ResourceProducts); err != nil {
		return nil, err
	}
	if !in.Price.IsPositive() {
		return nil, fmt.Errorf("precio debe ser mayor que cero: %w", domain.ErrInvalidInput)
	}
	now := time.Now().UTC()
	p := &entity.Product{
		ID:          uuid.New().String(),
		CategoryID:  in.CategoryID,
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Unit:        strings.TrimSpace(in.Unit),
		Description: in.Description,
		ImageURL:    in.ImageURL,
		InStock:     in.InStock == nil || *in.InStock,
		IsSeasonal:  in.IsSeasonal,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if p.IsSeasonal {
		p.SeasonalPeriod = in.SeasonalPeriod
	}
	if err := uc.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	uc.log.Info().Str("product_id", p.ID).Str("by", s.UserID).Msg("producto creado")
	out := dto.FromProduct(p)
	return &out, nil
}

// Update edición parcial.
func (uc *ProductUseCase) Update(ctx context.Context, s session.Session, id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := s.Permissions().Authorize(rbac.ActionUpdate, rbac.ResourceProducts); err != nil {
		return nil, err
	}
	p, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	if in.CategoryID != nil {
		p.CategoryID = *in.CategoryID
	}
	if in.Name != nil {
		p.Name = strings.TrimSpace(*in.Name)
	}
	if in.Price != nil {
		if !in.Price.IsPositive() {
			return nil, fmt.Errorf("precio debe ser mayor que cero: %w", domain.ErrInvalidInput)
		}
		p.Price = *in.Price
	}
	if in.Unit != nil {
		p.Unit = strings.TrimSpace(*in.Unit)
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if in.ImageURL != nil {
		p.ImageURL = in.ImageURL
	}
	if in.InStock != nil {
		p.InStock = *in.InStock
	}
	if in.IsSeasonal != nil {
		p.IsSeasonal = *in.IsSeasonal
	}
	if in.SeasonalPeriod != nil {
		p.SeasonalPeriod = in.SeasonalPeriod
	}
	if !p.IsSeasonal {
		p.SeasonalPeriod = nil
	}
	p.UpdatedAt = time.Now().UTC()
	if err := uc.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	out := dto.FromProduct(p)
	return &out, nil
}

// Delete baja de producto. Falla con ErrConflict si hay pedidos que lo referencian.
func (uc *ProductUseCase) Delete(ctx context.Context, s session.Session, id string) error {
	if err := s.Permissions().Authorize(rbac.ActionDelete, rbac.ResourceProducts); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}
	uc.log.Info().Str("product_id", id).Str("by", s.UserID).Msg("producto eliminado")
	return nil
}
