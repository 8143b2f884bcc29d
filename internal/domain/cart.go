package domain

import "time"

// Cart accumulates purchase intent for one checkout session. It holds at most
// one line per distinct product; re-adding a product merges quantities.
// Adding to a cart never reserves stock; stock is only consumed at checkout.
type Cart struct {
	ID         string    `json:"id"`
	CustomerID string    `json:"customer_id"`
	Lines      []Line    `json:"lines"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Line is one (product, quantity) pairing inside a cart. UnitPrice is the
// catalog price captured at add time; checkout recomputes totals from live
// catalog state.
type Line struct {
	ProductName string  `json:"product_name"`
	UnitPrice   float64 `json:"unit_price"`
	Quantity    int     `json:"quantity"`
}

// Total returns the line total (unit price times quantity).
func (l Line) Total() float64 {
	return l.UnitPrice * float64(l.Quantity)
}

// Subtotal sums all line totals. An empty cart has a subtotal of 0.
func (c *Cart) Subtotal() float64 {
	var subtotal float64
	for _, line := range c.Lines {
		subtotal += line.Total()
	}
	return subtotal
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// ItemCount returns the total number of units across all lines.
func (c *Cart) ItemCount() int {
	var count int
	for _, line := range c.Lines {
		count += line.Quantity
	}
	return count
}

// FindLineIndex returns the index of the line for the given product name, or
// -1 if the cart has no such line.
func (c *Cart) FindLineIndex(productName string) int {
	for i := range c.Lines {
		if c.Lines[i].ProductName == productName {
			return i
		}
	}
	return -1
}

// Snapshot returns a copy of the cart lines, insulating callers from later
// mutation.
func (c *Cart) Snapshot() []Line {
	lines := make([]Line, len(c.Lines))
	copy(lines, c.Lines)
	return lines
}
