package app

import (
	"math"
	"regexp"

	"github.com/greengrove/order-intake/internal/order-intake/core/domain/entity"
)

const (
	// minOrderQty is the smallest order we deliver.
	minOrderQty = 3

	// priceTolerance absorbs float rounding when comparing the declared
	// total against the sum of line prices.
	priceTolerance = 0.01
)

// phonePattern accepts North-American numbers: optional +1/1 prefix, then
// 3-3-4 digit groups separated by any mix of spaces, dots, or hyphens.
var phonePattern = regexp.MustCompile(`^(\+?1 *[ -.])?(\d{3}) *[ .-]?(\d{3}) *[ .-]?(\d{4}) *$`)

// emailPattern checks syntax only. Deliverability of the domain is a
// separate anti-abuse gate.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// ValidateRequest checks the request shape and the cart's internal
// consistency. It fails fast: the returned error describes the first
// violated constraint only.
func ValidateRequest(req *entity.OrderRequest) error {
	if !phonePattern.MatchString(req.Phone) {
		return &StructuralError{Field: "phone", Msg: "Please enter a valid phone number."}
	}
	if !emailPattern.MatchString(req.Email) {
		return &StructuralError{Field: "email", Msg: "Please enter a valid email address."}
	}
	return validateCart(&req.Cart)
}

// validateCart checks per-item constraints, then the declared aggregates
// against the computed sums, then the minimum order size. The minimum-size
// check runs last so it always operates on an already-verified quantity.
func validateCart(cart *entity.Cart) error {
	for name, it := range cart.Items {
		if it.Qty <= 0 {
			return &StructuralError{Field: name, Msg: "Quantity must be greater than 0."}
		}
		if it.Price < 0 || it.PricePerUnit < 0 {
			return &StructuralError{Field: name, Msg: "Price must be non-negative."}
		}
	}
	if cart.TotalQty < 0 || cart.TotalPrice < 0 {
		return &StructuralError{Field: "order", Msg: "Order totals must be non-negative."}
	}
	if cart.SumQty() != cart.TotalQty {
		return &CartMismatchError{Kind: "quantity"}
	}
	if math.Abs(cart.SumPrice()-cart.TotalPrice) > priceTolerance {
		return &CartMismatchError{Kind: "price"}
	}
	if cart.TotalQty < minOrderQty {
		return &MinimumOrderError{Min: minOrderQty}
	}
	return nil
}
