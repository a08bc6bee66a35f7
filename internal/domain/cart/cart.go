// Package cart modela el carrito de compras de un negocio cliente.
// Una línea por producto; el total es Σ precio unitario × cantidad.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/agrilconnect-api/internal/domain"
	"github.com/jhoicas/agrilconnect-api/internal/domain/entity"
)

// Line línea del carrito con los datos del producto copiados al agregarlo.
type Line struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Unit      string          `json:"unit"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
}

// Subtotal precio unitario × cantidad.
func (l Line) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart carrito de un usuario. El orden de las líneas es el de inserción.
type Cart struct {
	UserID string `json:"user_id"`
	Lines  []Line `json:"lines"`
}

// New crea un carrito vacío.
func New(userID string) *Cart {
	return &Cart{UserID: userID, Lines: []Line{}}
}

// Add agrega qty unidades del producto. Si ya existe la línea, incrementa su cantidad.
func (c *Cart) Add(p *entity.Product, qty int) error {
	if p == nil || qty <= 0 {
		return domain.ErrInvalidInput
	}
	if !p.InStock {
		return domain.ErrInvalidInput
	}
	if i := c.index(p.ID); i >= 0 {
		c.Lines[i].Quantity += qty
		return nil
	}
	c.Lines = append(c.Lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Unit:      p.Unit,
		UnitPrice: p.Price,
		Quantity:  qty,
	})
	return nil
}

// Remove elimina la línea del producto. No falla si no existe.
func (c *Cart) Remove(productID string) {
	if i := c.index(productID); i >= 0 {
		c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
	}
}

// UpdateQuantity fija la cantidad de una línea. Cantidad <= 0 elimina la línea.
// Devuelve domain.ErrNotFound si el producto no está en el carrito.
func (c *Cart) UpdateQuantity(productID string, qty int) error {
	i := c.index(productID)
	if i < 0 {
		return domain.ErrNotFound
	}
	if qty <= 0 {
		c.Remove(productID)
		return nil
	}
	c.Lines[i].Quantity = qty
	return nil
}

// Total Σ subtotales.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.Lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

// ItemCount número total de unidades.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}
	return n
}

// IsEmpty true si no hay líneas.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Clear vacía el carrito.
func (c *Cart) Clear() {
	c.Lines = []Line{}
}

func (c *Cart) index(productID string) int {
	for i, l := range c.Lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}
