package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bizgrow/bizgrow-backend/api/controllers"
	"github.com/bizgrow/bizgrow-backend/api/middleware"
	cartsvc "github.com/bizgrow/bizgrow-backend/internal/cart"
	cataloguesvc "github.com/bizgrow/bizgrow-backend/internal/catalogue"
	checkoutsvc "github.com/bizgrow/bizgrow-backend/internal/checkout"
	ordersvc "github.com/bizgrow/bizgrow-backend/internal/orders"
	"github.com/bizgrow/bizgrow-backend/pkg/config"
	"github.com/bizgrow/bizgrow-backend/pkg/logger"
	"github.com/bizgrow/bizgrow-backend/pkg/metrics"
	"github.com/bizgrow/bizgrow-backend/pkg/redis"
)

// Deps carries everything the HTTP surface needs.
type Deps struct {
	Config      *config.Config
	Logger      *logger.Logger
	DBPinger    controllers.Pinger
	CachePinger controllers.Pinger
	Idempotency redis.IdempotencyStore
	HTTPMetrics *metrics.HTTPMetrics
	MetricsHTTP http.Handler
	Catalogue   cataloguesvc.Service
	Cart        cartsvc.Service
	Checkout    checkoutsvc.Service
	Orders      ordersvc.Service
}

// NewRouter wires the middleware chain and the storefront routes.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()
	logg := deps.Logger

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(deps.Config))
		r.Get("/ready", controllers.HealthReady(deps.Config, deps.DBPinger, deps.CachePinger, logg))
	})

	metricsHandler := deps.MetricsHTTP
	if metricsHandler == nil {
		metricsHandler = promhttp.Handler()
	}
	r.Method(http.MethodGet, "/metrics", metricsHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalogue/{storeSlug}", controllers.GetCatalogue(deps.Catalogue, logg))
		r.Get("/orders/{orderID}", controllers.GetOrder(deps.Orders, logg))

		r.Route("/stores/{storeID}", func(r chi.Router) {
			r.Use(middleware.ShopperSession(logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.GetCart(deps.Cart, logg))
				r.Delete("/", controllers.ClearCart(deps.Cart, logg))
				r.Post("/items", controllers.AddCartItem(deps.Cart, logg))
				r.Patch("/items/{productID}", controllers.UpdateCartItem(deps.Cart, logg))
				r.Delete("/items/{productID}", controllers.RemoveCartItem(deps.Cart, logg))
			})

			r.With(middleware.Idempotency(deps.Idempotency, logg, deps.Config.Checkout.IdempotencyTTL)).
				Post("/checkout", controllers.Checkout(deps.Checkout, logg))
		})
	})

	return r
}
