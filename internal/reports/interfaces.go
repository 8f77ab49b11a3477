package reports

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/lizzumiko/storefront-reports/pkg/db/models"
)

// Repository is the read-only data source behind every report. Collections
// come back in stable source order (creation order) with the relations each
// report navigates already resolved.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	ListCustomers(ctx context.Context) ([]models.Customer, error)
	ListOrders(ctx context.Context) ([]models.Order, error)
	ListOrderItems(ctx context.Context) ([]models.OrderItem, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
}

// Service exposes the ten report operations. Each is stateless and
// idempotent: repeated calls over an unchanged dataset yield identical
// ordered output. Row ordering is part of the contract.
type Service interface {
	CustomerDirectory(ctx context.Context) ([]CustomerRow, error)
	OrdersWithItemCount(ctx context.Context) ([]OrderItemCountRow, error)
	ProductsByPrice(ctx context.Context) ([]ProductPriceRow, error)
	PendingOrders(ctx context.Context) ([]PendingOrderRow, error)
	OrderCountPerCustomer(ctx context.Context) ([]CustomerOrderCountRow, error)
	TopCustomersByValue(ctx context.Context) ([]CustomerValueRow, error)
	RecentOrders(ctx context.Context, asOf time.Time) ([]RecentOrderRow, error)
	TotalSoldPerProduct(ctx context.Context) ([]ProductSalesRow, error)
	DiscountedOrders(ctx context.Context) ([]DiscountedOrderRow, error)
	ElectronicsReport(ctx context.Context) ([]ElectronicsProductRow, error)
}
