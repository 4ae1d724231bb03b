package ports

import (
	"context"
	"net"

	"github.com/greengrove/order-intake/internal/order-intake/core/domain/entity"
)

// TokenVerifier redeems a human-verification token against the challenge
// service. A transport error counts as a failed verification upstream.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (bool, error)
}

// DomainResolver answers the DNS questions the email-domain check needs.
type DomainResolver interface {
	LookupMX(ctx context.Context, domain string) ([]*net.MX, error)
	LookupNS(ctx context.Context, domain string) ([]*net.NS, error)
}

// Blocklist reports whether a domain is a known disposable-email provider.
type Blocklist interface {
	Contains(domain string) bool
}

// NotificationDispatcher renders and sends the order emails (owner notice
// and customer confirmation) for an accepted order.
type NotificationDispatcher interface {
	Dispatch(ctx context.Context, order *entity.OrderRequest, orderID string) error
}
