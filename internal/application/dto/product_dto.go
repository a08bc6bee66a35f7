package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	CategoryID     string          `json:"category_id" validate:"required,uuid"`
	Name           string          `json:"name" validate:"required,min=1,max=200"`
	Price          decimal.Decimal `json:"price"`
	Unit           string          `json:"unit" validate:"required,max=32"`
	Description    string          `json:"description" validate:"max=2000"`
	ImageURL       *string         `json:"image_url" validate:"omitempty,url"`
	InStock        *bool           `json:"in_stock"`
	IsSeasonal     bool            `json:"is_seasonal"`
	SeasonalPeriod *string         `json:"seasonal_period" validate:"omitempty,max=120"`
}

// UpdateProductRequest entrada parcial; los campos nil no se modifican.
type UpdateProductRequest struct {
	CategoryID     *string          `json:"category_id" validate:"omitempty,uuid"`
	Name           *string          `json:"name" validate:"omitempty,min=1,max=200"`
	Price          *decimal.Decimal `json:"price"`
	Unit           *string          `json:"unit" validate:"omitempty,min=1,max=32"`
	Description    *string          `json:"description" validate:"omitempty,max=2000"`
	ImageURL       *string          `json:"image_url" validate:"omitempty,url"`
	InStock        *bool            `json:"in_stock"`
	IsSeasonal     *bool            `json:"is_seasonal"`
	SeasonalPeriod *string          `json:"seasonal_period" validate:"omitempty,max=120"`
}

// ProductFilter parámetros del catálogo público.
type ProductFilter struct {
	Category string `query:"category"`
	Query    string `query:"q"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID             string          `json:"id"`
	CategoryID     string          `json:"category_id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	Unit           string          `json:"unit"`
	Description    string          `json:"description"`
	ImageURL       *string         `json:"image_url"`
	InStock        bool            `json:"in_stock"`
	IsSeasonal     bool            `json:"is_seasonal"`
	SeasonalPeriod *string         `json:"seasonal_period"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos; Controls sólo en el panel administrativo.
type ProductListResponse struct {
	Items    []ProductResponse `json:"items"`
	Controls *PanelControls    `json:"controls,omitempty"`
}
