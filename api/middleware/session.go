package middleware

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/bizgrow/bizgrow-backend/pkg/logger"
)

const sessionHeader = "X-Shopper-Session"

// ShopperSession binds each request to a shopper session. The client sends
// the session id back on every call; when absent a fresh UUID is minted and
// echoed so the next request carries it. The cart is keyed on this value.
// The store id from the route is bound alongside it so downstream scoping
// (idempotency, logging) sees both.
func ShopperSession(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := strings.TrimSpace(r.Header.Get(sessionHeader))
			if sessionID == "" || uuid.Validate(sessionID) != nil {
				sessionID = uuid.NewString()
			}

			w.Header().Set(sessionHeader, sessionID)

			ctx := WithSessionID(r.Context(), sessionID)
			if storeID := chi.URLParam(r, "storeID"); storeID != "" {
				ctx = WithStoreID(ctx, storeID)
			}
			if logg != nil {
				ctx = logg.WithSessionID(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
