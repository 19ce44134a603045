package domain

import "github.com/shopspring/decimal"

type CartLine struct {
	ProductID int64
	Title     string
	Price     decimal.Decimal
	Image     string
	Quantity  int
}

func (l CartLine) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart is an insertion-ordered collection of lines with at most
// one line per product.
type Cart struct {
	lines []CartLine
}

// Add merges quantity into an existing line for the same product
// or appends a new line.
func (c *Cart) Add(p Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	if i, ok := c.index(p.ProductID); ok {
		c.lines[i].Quantity += quantity
		return
	}

	var image string
	if len(p.Images) != 0 {
		image = p.Images[0]
	}
	c.lines = append(c.lines, CartLine{
		ProductID: p.ProductID,
		Title:     p.Title,
		Price:     p.Price,
		Image:     image,
		Quantity:  quantity,
	})
}

// SetQuantity sets the line quantity, clamped to a minimum of 1.
// The line is kept even when quantity drops to zero or below.
// It reports whether a line for productID exists.
func (c *Cart) SetQuantity(productID int64, quantity int) bool {
	i, ok := c.index(productID)
	if !ok {
		return false
	}
	c.lines[i].Quantity = max(1, quantity)
	return true
}

// Remove deletes the line for productID if present.
func (c *Cart) Remove(productID int64) {
	i, ok := c.index(productID)
	if !ok {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the lines in insertion order.
func (c *Cart) Lines() []CartLine {
	lines := make([]CartLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

// Total returns the sum of price times quantity over all lines.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (c *Cart) index(productID int64) (int, bool) {
	for i, l := range c.lines {
		if l.ProductID == productID {
			return i, true
		}
	}
	return 0, false
}
