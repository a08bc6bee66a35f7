package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo (verdura, fruta, hierba).
// Price es el precio por Unit (kg, manojo, pieza).
type Product struct {
	ID             string
	CategoryID     string
	Name           string
	Price          decimal.Decimal
	Unit           string
	Description    string
	ImageURL       *string
	InStock        bool
	IsSeasonal     bool
	SeasonalPeriod *string // ej. "junio a agosto"; sólo si IsSeasonal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
