package entity

// CartItem is a single line item in a cart. Its name lives in the owning
// cart's items map, not on the item itself.
type CartItem struct {
	Qty          int
	Price        float64 // extended price for the line (qty * unit)
	PricePerUnit float64
	ImageURL     string
}

// Cart carries the line items keyed by product name together with the
// totals the client declared. It is parsed once per request and never
// mutated afterwards; the declared totals are cross-checked against the
// item sums during validation.
type Cart struct {
	Items      map[string]CartItem
	TotalQty   int
	TotalPrice float64
}

// SumQty returns the computed total quantity across all line items.
func (c *Cart) SumQty() int {
	var sum int
	for _, it := range c.Items {
		sum += it.Qty
	}
	return sum
}

// SumPrice returns the computed total price across all line items.
func (c *Cart) SumPrice() float64 {
	var sum float64
	for _, it := range c.Items {
		sum += it.Price
	}
	return sum
}

// OrderRequest is one inbound order submission. It is request-scoped:
// constructed by the HTTP layer, discarded after the response is written.
type OrderRequest struct {
	Phone    string
	Email    string
	Honeypot string // the form calls this "verification"; genuine clients leave it empty
	Shipping string
	Cart     Cart
	CFToken  string // Cloudflare Turnstile response token
}

// OrderOutcome is the result of a processed order. The ID is generated
// fresh per accepted request; collisions are possible but not checked.
type OrderOutcome struct {
	OrderID string
	Success bool
	Message string
}
