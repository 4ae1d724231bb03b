package middlewares

import (
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/greengrove/order-intake/internal/pkg/requestmeta"
)

// AttachRequestMetadata copies the chi request id and the client address
// into typed context values so the core pipeline can log them. Must be
// mounted after middleware.RequestID and middleware.RealIP.
func AttachRequestMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestmeta.WithRequestID(r.Context(), middleware.GetReqID(r.Context()))
		ctx = requestmeta.WithClientIP(ctx, r.RemoteAddr)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
