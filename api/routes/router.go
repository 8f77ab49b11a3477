package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/lizzumiko/storefront-reports/api/controllers"
	"github.com/lizzumiko/storefront-reports/api/middleware"
	"github.com/lizzumiko/storefront-reports/internal/reports"
	"github.com/lizzumiko/storefront-reports/pkg/config"
	"github.com/lizzumiko/storefront-reports/pkg/db"
	"github.com/lizzumiko/storefront-reports/pkg/logger"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	reportsService reports.Service,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/reports", func(r chi.Router) {
		r.Get("/customers", controllers.CustomerDirectory(reportsService, logg))
		r.Get("/orders-with-item-count", controllers.OrdersWithItemCount(reportsService, logg))
		r.Get("/products-by-price", controllers.ProductsByPrice(reportsService, logg))
		r.Get("/pending-orders", controllers.PendingOrders(reportsService, logg))
		r.Get("/order-count-per-customer", controllers.OrderCountPerCustomer(reportsService, logg))
		r.Get("/top-customers", controllers.TopCustomersByValue(reportsService, logg))
		r.Get("/recent-orders", controllers.RecentOrders(reportsService, logg))
		r.Get("/total-sold-per-product", controllers.TotalSoldPerProduct(reportsService, logg))
		r.Get("/discounted-orders", controllers.DiscountedOrders(reportsService, logg))
		r.Get("/electronics", controllers.ElectronicsReport(reportsService, logg))
	})

	return r
}
