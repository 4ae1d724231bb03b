package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/greengrove/order-intake/internal/order-intake/core/domain/entity"
	"github.com/greengrove/order-intake/internal/order-intake/core/ports"
	"github.com/greengrove/order-intake/internal/pkg/requestmeta"
)

// MsgOrderPlaced is the user-facing message on every accepted order.
const MsgOrderPlaced = "Order placed successfully"

// OrderService orchestrates one order submission end to end: structural
// validation, business-hours gate, anti-abuse pipeline, and notification
// dispatch. It holds no mutable state, so a single instance serves
// concurrent requests.
type OrderService struct {
	hours      *BusinessHours
	verifier   ports.TokenVerifier
	resolver   ports.DomainResolver
	blocklist  ports.Blocklist
	dispatcher ports.NotificationDispatcher
}

func NewOrderService(
	hours *BusinessHours,
	verifier ports.TokenVerifier,
	resolver ports.DomainResolver,
	blocklist ports.Blocklist,
	dispatcher ports.NotificationDispatcher,
) *OrderService {
	return &OrderService{
		hours:      hours,
		verifier:   verifier,
		resolver:   resolver,
		blocklist:  blocklist,
		dispatcher: dispatcher,
	}
}

// PlaceOrder runs the intake pipeline. The gate order is fixed:
// structural validation, hours, honeypot, token verification, email
// domain, dispatch. Reordering changes which rejection the caller sees
// first, so don't.
func (s *OrderService) PlaceOrder(ctx context.Context, req *entity.OrderRequest) (*entity.OrderOutcome, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	// Generated once the shape is known to be valid, and reused on the
	// honeypot path below so bot and human responses are indistinguishable.
	orderID := NewOrderID()

	if err := s.hours.Check(); err != nil {
		return nil, err
	}

	if req.Honeypot != "" {
		// A filled honeypot field marks an automated submission. We answer
		// with the same success body a genuine order gets and silently skip
		// verification and dispatch, so probing bots never see a rejection
		// signal. Logged server-side only.
		slog.WarnContext(ctx, "honeypot triggered",
			"client_ip", requestmeta.ClientIP(ctx),
			"value", req.Honeypot,
		)
		return &entity.OrderOutcome{OrderID: orderID, Success: true, Message: MsgOrderPlaced}, nil
	}

	human, err := s.verifier.Verify(ctx, req.CFToken)
	if err != nil {
		slog.ErrorContext(ctx, "token verification call failed", "error", err)
		return nil, &VerificationError{Err: err}
	}
	if !human {
		return nil, &VerificationError{}
	}

	email := strings.ToLower(req.Email)
	if err := s.checkEmailDomain(ctx, email); err != nil {
		return nil, err
	}

	if err := s.dispatcher.Dispatch(ctx, req, orderID); err != nil {
		slog.ErrorContext(ctx, "order notification dispatch failed",
			"order_id", orderID,
			"error", err,
		)
		return nil, &DispatchError{Err: err}
	}

	slog.InfoContext(ctx, "order accepted",
		"order_id", orderID,
		"request_id", requestmeta.RequestID(ctx),
		"total_qty", req.Cart.TotalQty,
	)
	return &entity.OrderOutcome{OrderID: orderID, Success: true, Message: MsgOrderPlaced}, nil
}

// checkEmailDomain is the deliverability heuristic: not on the disposable
// blocklist, and the domain publishes both MX and NS records. Every
// resolver failure rejects (fail closed).
func (s *OrderService) checkEmailDomain(ctx context.Context, email string) error {
	domain := emailDomain(email)

	if s.blocklist.Contains(domain) {
		slog.WarnContext(ctx, "blocked disposable email domain", "domain", domain)
		return &InvalidDomainError{Domain: domain}
	}

	mx, err := s.resolver.LookupMX(ctx, domain)
	if err != nil || len(mx) == 0 {
		slog.WarnContext(ctx, "blocked email domain without MX records", "domain", domain, "error", err)
		return &InvalidDomainError{Domain: domain, Err: err}
	}

	ns, err := s.resolver.LookupNS(ctx, domain)
	if err != nil || len(ns) == 0 {
		slog.WarnContext(ctx, "blocked email domain without NS records", "domain", domain, "error", err)
		return &InvalidDomainError{Domain: domain, Err: err}
	}

	return nil
}

// emailDomain returns the part after the last '@', lowercased.
func emailDomain(email string) string {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return ""
	}
	return strings.ToLower(email[at+1:])
}

// NewOrderID returns a fresh 8-character uppercase order identifier. It
// is the first group of a random UUID; unique with high probability, but
// collisions are not checked.
func NewOrderID() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
