package app

import (
	"context"
	"errors"
	"net"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/greengrove/order-intake/internal/order-intake/core/domain/entity"
)

var orderIDPattern = regexp.MustCompile(`^[0-9A-F]{8}$`)

// MockVerifier implements ports.TokenVerifier for testing.
type MockVerifier struct {
	OK        bool
	Err       error
	Calls     int
	LastToken string
}

func (m *MockVerifier) Verify(_ context.Context, token string) (bool, error) {
	m.Calls++
	m.LastToken = token
	return m.OK, m.Err
}

// MockResolver implements ports.DomainResolver for testing.
type MockResolver struct {
	MX      []*net.MX
	NS      []*net.NS
	MXErr   error
	NSErr   error
	MXCalls int
	NSCalls int
}

func (m *MockResolver) LookupMX(_ context.Context, _ string) ([]*net.MX, error) {
	m.MXCalls++
	return m.MX, m.MXErr
}

func (m *MockResolver) LookupNS(_ context.Context, _ string) ([]*net.NS, error) {
	m.NSCalls++
	return m.NS, m.NSErr
}

// MockBlocklist implements ports.Blocklist for testing.
type MockBlocklist struct {
	Blocked map[string]bool
}

func (m *MockBlocklist) Contains(domain string) bool {
	return m.Blocked[domain]
}

// MockDispatcher implements ports.NotificationDispatcher for testing.
type MockDispatcher struct {
	Err      error
	Calls    int
	OrderIDs []string
}

func (m *MockDispatcher) Dispatch(_ context.Context, _ *entity.OrderRequest, orderID string) error {
	m.Calls++
	m.OrderIDs = append(m.OrderIDs, orderID)
	return m.Err
}

type serviceFixture struct {
	svc        *OrderService
	verifier   *MockVerifier
	resolver   *MockResolver
	blocklist  *MockBlocklist
	dispatcher *MockDispatcher
}

// newServiceFixture builds a service whose gates all pass by default:
// business-hours clock fixed at Monday noon Eastern, verifier accepting,
// resolver returning MX and NS records, empty blocklist.
func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()

	mondayNoon := easternTime(t, 2026, time.March, 2, 12, 0)
	hours, err := NewBusinessHours(func() time.Time { return mondayNoon })
	require.NoError(t, err)

	f := &serviceFixture{
		verifier: &MockVerifier{OK: true},
		resolver: &MockResolver{
			MX: []*net.MX{{Host: "mx1.example.com.", Pref: 10}},
			NS: []*net.NS{{Host: "ns1.example.com."}},
		},
		blocklist:  &MockBlocklist{Blocked: map[string]bool{}},
		dispatcher: &MockDispatcher{},
	}
	f.svc = NewOrderService(hours, f.verifier, f.resolver, f.blocklist, f.dispatcher)
	return f
}

func TestPlaceOrder_Accepted(t *testing.T) {
	f := newServiceFixture(t)

	outcome, err := f.svc.PlaceOrder(context.Background(), validOrderRequest())

	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Regexp(t, orderIDPattern, outcome.OrderID)
	assert.Equal(t, "Order placed successfully", outcome.Message)
	assert.Equal(t, 1, f.verifier.Calls)
	assert.Equal(t, "tok-ok", f.verifier.LastToken)
	assert.Equal(t, 1, f.dispatcher.Calls)
	assert.Equal(t, []string{outcome.OrderID}, f.dispatcher.OrderIDs)
}

func TestPlaceOrder_FreshIDPerRequest(t *testing.T) {
	f := newServiceFixture(t)

	first, err := f.svc.PlaceOrder(context.Background(), validOrderRequest())
	require.NoError(t, err)
	second, err := f.svc.PlaceOrder(context.Background(), validOrderRequest())
	require.NoError(t, err)

	// No deduplication by content: identical submissions each get their
	// own id and their own dispatch.
	assert.NotEqual(t, first.OrderID, second.OrderID)
	assert.Equal(t, 2, f.dispatcher.Calls)
}

func TestPlaceOrder_HoneypotSilentlyAccepts(t *testing.T) {
	f := newServiceFixture(t)
	req := validOrderRequest()
	req.Honeypot = "filled by a bot"

	outcome, err := f.svc.PlaceOrder(context.Background(), req)

	// Externally indistinguishable from a genuine acceptance.
	require.NoError(t, err)
	assert.True(t, outcome.Success)
	assert.Regexp(t, orderIDPattern, outcome.OrderID)
	assert.Equal(t, "Order placed successfully", outcome.Message)

	// But nothing downstream runs: no verification, no DNS, no emails.
	assert.Zero(t, f.verifier.Calls)
	assert.Zero(t, f.resolver.MXCalls)
	assert.Zero(t, f.dispatcher.Calls)
}

func TestPlaceOrder_StructuralRejectionPrecedesHours(t *testing.T) {
	f := newServiceFixture(t)
	sunday := easternTime(t, 2026, time.March, 1, 12, 0)
	hours, err := NewBusinessHours(func() time.Time { return sunday })
	require.NoError(t, err)
	f.svc = NewOrderService(hours, f.verifier, f.resolver, f.blocklist, f.dispatcher)

	req := validOrderRequest()
	req.Phone = "bogus"

	_, err = f.svc.PlaceOrder(context.Background(), req)

	var structuralErr *StructuralError
	assert.ErrorAs(t, err, &structuralErr)
}

func TestPlaceOrder_RejectedOutsideBusinessHours(t *testing.T) {
	f := newServiceFixture(t)
	tuesdayNight := easternTime(t, 2026, time.March, 3, 21, 0)
	hours, err := NewBusinessHours(func() time.Time { return tuesdayNight })
	require.NoError(t, err)
	f.svc = NewOrderService(hours, f.verifier, f.resolver, f.blocklist, f.dispatcher)

	outcome, err := f.svc.PlaceOrder(context.Background(), validOrderRequest())

	var hoursErr *BusinessHoursError
	require.ErrorAs(t, err, &hoursErr)
	assert.Nil(t, outcome)
	assert.Zero(t, f.verifier.Calls)
	assert.Zero(t, f.dispatcher.Calls)
}

func TestPlaceOrder_VerificationDeclined(t *testing.T) {
	f := newServiceFixture(t)
	f.verifier.OK = false

	_, err := f.svc.PlaceOrder(context.Background(), validOrderRequest())

	var verifyErr *VerificationError
	require.ErrorAs(t, err, &verifyErr)
	assert.Equal(t, "Security check failed", err.Error())
	assert.Zero(t, f.resolver.MXCalls, "domain check must not run after a declined token")
	assert.Zero(t, f.dispatcher.Calls)
}

func TestPlaceOrder_VerificationTransportErrorRejects(t *testing.T) {
	f := newServiceFixture(t)
	f.verifier.Err = errors.New("siteverify timeout")

	_, err := f.svc.PlaceOrder(context.Background(), validOrderRequest())

	var verifyErr *VerificationError
	require.ErrorAs(t, err, &verifyErr)
	assert.ErrorContains(t, verifyErr.Unwrap(), "siteverify timeout")
}

func TestPlaceOrder_DisposableDomainRejected(t *testing.T) {
	f := newServiceFixture(t)
	f.blocklist.Blocked["mailinator.com"] = true
	req := validOrderRequest()
	req.Email = "bot@Mailinator.com"

	_, err := f.svc.PlaceOrder(context.Background(), req)

	var domainErr *InvalidDomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "mailinator.com", domainErr.Domain)
	assert.Zero(t, f.resolver.MXCalls, "blocklisted domains skip DNS entirely")
	assert.Zero(t, f.dispatcher.Calls)
}

func TestPlaceOrder_MissingMXRejected(t *testing.T) {
	f := newServiceFixture(t)
	f.resolver.MX = nil

	_, err := f.svc.PlaceOrder(context.Background(), validOrderRequest())

	var domainErr *InvalidDomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "Please provide a valid email address.", err.Error())
	assert.Zero(t, f.resolver.NSCalls, "NS lookup is skipped once MX fails")
	assert.Zero(t, f.dispatcher.Calls)
}

func TestPlaceOrder_DNSErrorFailsClosed(t *testing.T) {
	f := newServiceFixture(t)
	f.resolver.MXErr = &net.DNSError{Err: "no such host", Name: "example.com", IsNotFound: true}

	_, err := f.svc.PlaceOrder(context.Background(), validOrderRequest())

	var domainErr *InvalidDomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Zero(t, f.dispatcher.Calls)
}

func TestPlaceOrder_MissingNSRejected(t *testing.T) {
	f := newServiceFixture(t)
	f.resolver.NS = nil

	_, err := f.svc.PlaceOrder(context.Background(), validOrderRequest())

	var domainErr *InvalidDomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, 1, f.resolver.MXCalls)
	assert.Zero(t, f.dispatcher.Calls)
}

func TestPlaceOrder_DispatchFailure(t *testing.T) {
	f := newServiceFixture(t)
	f.dispatcher.Err = errors.New("ses throttled")

	outcome, err := f.svc.PlaceOrder(context.Background(), validOrderRequest())

	var dispatchErr *DispatchError
	require.ErrorAs(t, err, &dispatchErr)
	assert.Nil(t, outcome)
	assert.Equal(t, "Failed to send order confirmation. Please try again.", err.Error())
	assert.ErrorContains(t, dispatchErr.Unwrap(), "ses throttled")
}

func TestNewOrderID_Format(t *testing.T) {
	seen := make(map[string]bool)
	for range 64 {
		id := NewOrderID()
		assert.Regexp(t, orderIDPattern, id)
		seen[id] = true
	}
	// Random ids; 64 draws colliding would point at a broken generator.
	assert.Greater(t, len(seen), 60)
}

func TestEmailDomain(t *testing.T) {
	assert.Equal(t, "example.com", emailDomain("User@Example.COM"))
	assert.Equal(t, "b.com", emailDomain(`weird@a@b.com`))
	assert.Equal(t, "", emailDomain("no-at-sign"))
}
