// Package dnscheck adapts the system resolver to the DomainResolver port.
package dnscheck

import (
	"context"
	"net"
	"time"
)

const defaultTimeout = 5 * time.Second

type Resolver struct {
	r       *net.Resolver
	timeout time.Duration
}

// NewResolver wraps net.DefaultResolver with a per-lookup deadline so a
// stalled DNS query fails the domain gate instead of blocking the request.
func NewResolver(timeout time.Duration) *Resolver {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Resolver{r: net.DefaultResolver, timeout: timeout}
}

func (r *Resolver) LookupMX(ctx context.Context, domain string) ([]*net.MX, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.r.LookupMX(ctx, domain)
}

func (r *Resolver) LookupNS(ctx context.Context, domain string) ([]*net.NS, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	return r.r.LookupNS(ctx, domain)
}
