package dto

import "github.com/shopspring/decimal"

// AddCartItemRequest agrega unidades de un producto.
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"gte=1"`
}

// UpdateCartItemRequest fija la cantidad; <= 0 elimina la línea.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity"`
}

// CartLineResponse línea del carrito.
type CartLineResponse struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartResponse carrito con totales.
type CartResponse struct {
	Lines     []CartLineResponse `json:"lines"`
	Total     decimal.Decimal    `json:"total"`
	ItemCount int                `json:"item_count"`
}
