package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/greengrove/order-intake/internal/order-intake/core/app"
	"github.com/greengrove/order-intake/internal/order-intake/core/domain/entity"
	"github.com/greengrove/order-intake/internal/pkg/requestmeta"
)

// Handler handles the single order-intake endpoint.
type Handler struct {
	orders *app.OrderService
}

func NewHandler(orders *app.OrderService) *Handler {
	return &Handler{orders: orders}
}

// PlaceOrder decodes the submission, runs it through the intake pipeline,
// and writes exactly one response.
func (h *Handler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "Invalid request body.")
		return
	}

	slog.InfoContext(r.Context(), "order received",
		"request_id", requestmeta.RequestID(r.Context()),
		"items", len(req.Order.Items),
	)

	outcome, err := h.orders.PlaceOrder(r.Context(), mapRequestToEntity(&req))
	if err != nil {
		writeRejection(r.Context(), w, err)
		return
	}

	writeJSON(w, http.StatusOK, PlaceOrderResponse{
		Success: outcome.Success,
		OrderID: outcome.OrderID,
		Message: outcome.Message,
	})
}

// mapRequestToEntity converts the wire format to the domain request.
func mapRequestToEntity(req *PlaceOrderRequest) *entity.OrderRequest {
	items := make(map[string]entity.CartItem, len(req.Order.Items))
	for name, it := range req.Order.Items {
		items[name] = entity.CartItem{
			Qty:          it.Qty,
			Price:        it.Price,
			PricePerUnit: it.PricePerUnit,
			ImageURL:     it.ImageURL,
		}
	}
	return &entity.OrderRequest{
		Phone:    req.Phone,
		Email:    req.Email,
		Honeypot: req.Verification,
		Shipping: req.Shipping,
		Cart: entity.Cart{
			Items:      items,
			TotalQty:   req.Order.TotalQty,
			TotalPrice: req.Order.TotalPrice,
		},
		CFToken: req.CFToken,
	}
}

// writeRejection maps the pipeline error taxonomy to HTTP responses.
// Validation and anti-abuse rejections are 400s with their own messages;
// dispatch failures and anything unexpected are 500s with deliberately
// generic messages, the details stay in the server log.
func writeRejection(ctx context.Context, w http.ResponseWriter, err error) {
	var (
		structuralErr *app.StructuralError
		mismatchErr   *app.CartMismatchError
		minErr        *app.MinimumOrderError
		hoursErr      *app.BusinessHoursError
		verifyErr     *app.VerificationError
		domainErr     *app.InvalidDomainError
		dispatchErr   *app.DispatchError
	)
	switch {
	case errors.As(err, &structuralErr):
		writeError(w, http.StatusBadRequest, "invalid_request", structuralErr.Error())
	case errors.As(err, &mismatchErr):
		writeError(w, http.StatusBadRequest, "cart_mismatch", mismatchErr.Error())
	case errors.As(err, &minErr):
		writeError(w, http.StatusBadRequest, "minimum_order", minErr.Error())
	case errors.As(err, &hoursErr):
		writeError(w, http.StatusBadRequest, "outside_business_hours", hoursErr.Error())
	case errors.As(err, &verifyErr):
		writeError(w, http.StatusBadRequest, "verification_failed", verifyErr.Error())
	case errors.As(err, &domainErr):
		writeError(w, http.StatusBadRequest, "invalid_email_domain", domainErr.Error())
	case errors.As(err, &dispatchErr):
		writeError(w, http.StatusInternalServerError, "dispatch_failed", dispatchErr.Error())
	default:
		slog.ErrorContext(ctx, "unexpected error processing order", "error", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "Network error. Please try again.")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{
		Error:   code,
		Message: msg,
	})
}
