package app

import "fmt"

// The error types below are the full rejection taxonomy of the intake
// pipeline. Each Error() string is safe to show to the caller; anything
// not in this taxonomy must be mapped to a generic message at the HTTP
// boundary, never surfaced directly.

// StructuralError is a per-field constraint violation found while
// validating the request shape. Validation fails fast, so Field names the
// first violation encountered, not all of them.
type StructuralError struct {
	Field string
	Msg   string
}

func (e *StructuralError) Error() string { return e.Msg }

// CartMismatchError means a declared cart aggregate does not match the
// computed sum over line items. Kind is "quantity" or "price".
type CartMismatchError struct {
	Kind string
}

func (e *CartMismatchError) Error() string {
	if e.Kind == "price" {
		return "Total price does not match sum of item prices"
	}
	return "Total quantity does not match sum of item quantities"
}

// MinimumOrderError means the declared total quantity is below the
// minimum delivery size.
type MinimumOrderError struct {
	Min int
}

func (e *MinimumOrderError) Error() string {
	return fmt.Sprintf("Our minimum order size for delivery is %d items.", e.Min)
}

// BusinessHoursError means the request arrived outside the operating
// window.
type BusinessHoursError struct{}

func (e *BusinessHoursError) Error() string {
	return "Our business hours are Mon-Sat 8am-8pm."
}

// VerificationError means the human-verification token was rejected, or
// the verification service could not be reached. Both cases reject.
type VerificationError struct {
	Err error
}

func (e *VerificationError) Error() string { return "Security check failed" }

func (e *VerificationError) Unwrap() error { return e.Err }

// InvalidDomainError means the email domain is disposable, unresolvable,
// or has no MX/NS records. DNS failures reject rather than retry: a
// transient resolver hiccup is rare next to abuse traffic, and a false
// rejection costs less than accepting an unreachable address.
type InvalidDomainError struct {
	Domain string
	Err    error
}

func (e *InvalidDomainError) Error() string { return "Please provide a valid email address." }

func (e *InvalidDomainError) Unwrap() error { return e.Err }

// DispatchError means the order emails could not be sent. The order is
// not accepted; the client may retry the whole request.
type DispatchError struct {
	Err error
}

func (e *DispatchError) Error() string {
	return "Failed to send order confirmation. Please try again."
}

func (e *DispatchError) Unwrap() error { return e.Err }
