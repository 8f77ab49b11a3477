package reports

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/multierr"

	"github.com/lizzumiko/storefront-reports/internal/render"
	"github.com/lizzumiko/storefront-reports/pkg/logger"
	"github.com/lizzumiko/storefront-reports/pkg/metrics"
)

const dateLayout = "2006-01-02"

// RunnerParams carries the dependencies for the sequential report runner.
type RunnerParams struct {
	Service Service
	Sink    render.Sink
	Logger  *logger.Logger
	Metrics *metrics.ReportMetrics
	// Now supplies the evaluation time for date-windowed reports; defaults
	// to time.Now in UTC.
	Now func() time.Time
}

// Runner executes every report in a fixed sequence against one service,
// rendering each result into the sink. A failed report is recorded and the
// remaining reports still run.
type Runner struct {
	service Service
	sink    render.Sink
	logg    *logger.Logger
	metrics *metrics.ReportMetrics
	now     func() time.Time
}

// NewRunner builds a runner with the required dependencies.
func NewRunner(params RunnerParams) (*Runner, error) {
	if params.Service == nil {
		return nil, fmt.Errorf("reports service required")
	}
	if params.Sink == nil {
		return nil, fmt.Errorf("render sink required")
	}
	now := params.Now
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &Runner{
		service: params.Service,
		sink:    params.Sink,
		logg:    params.Logger,
		metrics: params.Metrics,
		now:     now,
	}, nil
}

type reportRun struct {
	name  string
	title string
	run   func(ctx context.Context) ([]string, error)
}

// RunAll executes the ten reports in order, returning the combined error of
// any that failed.
func (r *Runner) RunAll(ctx context.Context) error {
	runs := []reportRun{
		{name: "customer_directory", title: "Customers", run: r.customerDirectory},
		{name: "orders_with_item_count", title: "Orders With Item Count", run: r.ordersWithItemCount},
		{name: "products_by_price", title: "Products By Descending Price", run: r.productsByPrice},
		{name: "pending_orders", title: "Pending Orders With Total Price", run: r.pendingOrders},
		{name: "order_count_per_customer", title: "Order Count Per Customer", run: r.orderCountPerCustomer},
		{name: "top_customers_by_value", title: "Top Customers By Order Value", run: r.topCustomersByValue},
		{name: "recent_orders", title: "Recent Orders", run: r.recentOrders},
		{name: "total_sold_per_product", title: "Total Sold Per Product", run: r.totalSoldPerProduct},
		{name: "discounted_orders", title: "Discounted Orders", run: r.discountedOrders},
		{name: "electronics_report", title: "Electronics Products", run: r.electronicsReport},
	}

	var combined error
	for _, rep := range runs {
		repCtx := ctx
		if r.logg != nil {
			repCtx = r.logg.WithReport(ctx, rep.name)
		}
		start := time.Now()
		lines, err := rep.run(repCtx)
		r.metrics.ObserveDuration(rep.name, time.Since(start))
		if err != nil {
			r.metrics.IncFailure(rep.name)
			if r.logg != nil {
				r.logg.Error(repCtx, "report failed", err)
			}
			combined = multierr.Append(combined, fmt.Errorf("%s: %w", rep.name, err))
			continue
		}
		r.metrics.IncSuccess(rep.name)

		r.sink.Title(rep.title)
		for _, line := range lines {
			r.sink.Row(line)
		}
	}
	return combined
}

func (r *Runner) customerDirectory(ctx context.Context) ([]string, error) {
	rows, err := r.service.CustomerDirectory(ctx)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s - %s", row.Name, row.Email))
	}
	return lines, nil
}

func (r *Runner) ordersWithItemCount(ctx context.Context) ([]string, error) {
	rows, err := r.service.OrdersWithItemCount(ctx)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("Order %s | Customer: %s | Status: %s | Total Items: %d",
			shortID(row.OrderID.String()), row.Customer, row.Status, row.ItemCount))
	}
	return lines, nil
}

func (r *Runner) productsByPrice(ctx context.Context) ([]string, error) {
	rows, err := r.service.ProductsByPrice(ctx)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s - $%s", row.Name, row.Price.StringFixed(2)))
	}
	return lines, nil
}

func (r *Runner) pendingOrders(ctx context.Context) ([]string, error) {
	rows, err := r.service.PendingOrders(ctx)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("Order %s | Customer: %s | Date: %s | Total: $%s",
			shortID(row.OrderID.String()), row.Customer, row.OrderDate.Format(dateLayout), row.Total.StringFixed(2)))
	}
	return lines, nil
}

func (r *Runner) orderCountPerCustomer(ctx context.Context) ([]string, error) {
	rows, err := r.service.OrderCountPerCustomer(ctx)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s - Orders: %d", row.Customer, row.OrderCount))
	}
	return lines, nil
}

func (r *Runner) topCustomersByValue(ctx context.Context) ([]string, error) {
	rows, err := r.service.TopCustomersByValue(ctx)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s - Total Order Value: $%s", row.Customer, row.TotalValue.StringFixed(2)))
	}
	return lines, nil
}

func (r *Runner) recentOrders(ctx context.Context) ([]string, error) {
	rows, err := r.service.RecentOrders(ctx, r.now())
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("Order %s | Date: %s | Customer: %s",
			shortID(row.OrderID.String()), row.OrderDate.Format(dateLayout), row.Customer))
	}
	return lines, nil
}

func (r *Runner) totalSoldPerProduct(ctx context.Context) ([]string, error) {
	rows, err := r.service.TotalSoldPerProduct(ctx)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s - Sold: %d", row.Product, row.TotalSold))
	}
	return lines, nil
}

func (r *Runner) discountedOrders(ctx context.Context) ([]string, error) {
	rows, err := r.service.DiscountedOrders(ctx)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("Order %s | Customer: %s | Discounted Products: %s",
			shortID(row.OrderID.String()), row.Customer, row.DiscountedProducts))
	}
	return lines, nil
}

func (r *Runner) electronicsReport(ctx context.Context) ([]string, error) {
	rows, err := r.service.ElectronicsReport(ctx)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0)
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("Product: %s", row.Product))
		topStore := "(none)"
		if row.TopStore != nil {
			topStore = *row.TopStore
		}
		lines = append(lines, fmt.Sprintf("Top Store: %s", topStore))
		lines = append(lines, "Orders:")
		for _, ref := range row.Orders {
			lines = append(lines, fmt.Sprintf("  Order %s, Date: %s", shortID(ref.OrderID.String()), ref.OrderDate.Format(dateLayout)))
		}
	}
	return lines, nil
}

// shortID trims a UUID to its first segment for console display.
func shortID(id string) string {
	if at := strings.IndexByte(id, '-'); at > 0 {
		return id[:at]
	}
	return id
}
