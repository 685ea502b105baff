package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine representa una línea del carrito: un producto con su cantidad
// y el precio unitario tomado del catálogo al momento de armar la venta.
type CartLine struct {
	ProductID uuid.UUID
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// NewCartLine crea una línea validando sus invariantes
func NewCartLine(productID uuid.UUID, name string, unitPrice decimal.Decimal, quantity int) (*CartLine, error) {
	if productID == uuid.Nil {
		return nil, ErrProductNotFound
	}
	if name == "" {
		return nil, ErrProductNameRequired
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unitPrice.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}

	return &CartLine{
		ProductID: productID,
		Name:      name,
		UnitPrice: unitPrice,
		Quantity:  quantity,
	}, nil
}

// Subtotal calcula unit_price * quantity
func (l *CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart es el carrito en memoria de una sesión de checkout.
// Mantiene las líneas en orden de inserción, con una única línea por producto:
// agregar un producto que ya existe suma cantidades en lugar de duplicar.
type Cart struct {
	lines []CartLine
	index map[uuid.UUID]int
}

// NewCart crea un carrito vacío
func NewCart() *Cart {
	return &Cart{
		index: make(map[uuid.UUID]int),
	}
}

// AddLine agrega una línea al carrito. Si el producto ya está presente,
// las cantidades se fusionan y el precio se actualiza al de la línea nueva.
func (c *Cart) AddLine(line CartLine) {
	if i, ok := c.index[line.ProductID]; ok {
		c.lines[i].Quantity += line.Quantity
		c.lines[i].UnitPrice = line.UnitPrice
		return
	}
	c.index[line.ProductID] = len(c.lines)
	c.lines = append(c.lines, line)
}

// RemoveLine quita la línea de un producto, si existe
func (c *Cart) RemoveLine(productID uuid.UUID) {
	i, ok := c.index[productID]
	if !ok {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
	delete(c.index, productID)
	for j := i; j < len(c.lines); j++ {
		c.index[c.lines[j].ProductID] = j
	}
}

// UpdateQuantity cambia la cantidad de una línea existente
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	i, ok := c.index[productID]
	if !ok {
		return ErrProductNotFound
	}
	c.lines[i].Quantity = quantity
	return nil
}

// Lines retorna las líneas en orden de inserción
func (c *Cart) Lines() []CartLine {
	return c.lines
}

// IsEmpty indica si el carrito no tiene líneas
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Subtotal suma los subtotales de todas las líneas
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for i := range c.lines {
		subtotal = subtotal.Add(c.lines[i].Subtotal())
	}
	return subtotal
}

// Clear vacía el carrito; se invoca después de un checkout exitoso
func (c *Cart) Clear() {
	c.lines = nil
	c.index = make(map[uuid.UUID]int)
}
