package reports

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lizzumiko/storefront-reports/internal/render"
	pkgerrors "github.com/lizzumiko/storefront-reports/pkg/errors"
	"github.com/lizzumiko/storefront-reports/pkg/metrics"
)

type stubService struct {
	recentErr error
	recentRow []RecentOrderRow
	asOfSeen  time.Time
}

func (s *stubService) CustomerDirectory(context.Context) ([]CustomerRow, error) {
	return []CustomerRow{{Name: "Ada Hart", Email: "ada@example.com"}}, nil
}

func (s *stubService) OrdersWithItemCount(context.Context) ([]OrderItemCountRow, error) {
	return nil, nil
}

func (s *stubService) ProductsByPrice(context.Context) ([]ProductPriceRow, error) {
	return []ProductPriceRow{{Name: "Monitor", Price: decimal.RequireFromString("180.00")}}, nil
}

func (s *stubService) PendingOrders(context.Context) ([]PendingOrderRow, error) {
	return nil, nil
}

func (s *stubService) OrderCountPerCustomer(context.Context) ([]CustomerOrderCountRow, error) {
	return nil, nil
}

func (s *stubService) TopCustomersByValue(context.Context) ([]CustomerValueRow, error) {
	return nil, nil
}

func (s *stubService) RecentOrders(_ context.Context, asOf time.Time) ([]RecentOrderRow, error) {
	s.asOfSeen = asOf
	return s.recentRow, s.recentErr
}

func (s *stubService) TotalSoldPerProduct(context.Context) ([]ProductSalesRow, error) {
	return nil, nil
}

func (s *stubService) DiscountedOrders(context.Context) ([]DiscountedOrderRow, error) {
	return nil, nil
}

func (s *stubService) ElectronicsReport(context.Context) ([]ElectronicsProductRow, error) {
	top := "Harbor"
	return []ElectronicsProductRow{{
		Product: "Monitor",
		Orders: []OrderRef{{
			OrderID:   uuid.MustParse("83a4ec1a-0000-4000-8000-000000000001"),
			OrderDate: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		}},
		TopStore: &top,
	}}, nil
}

func TestNewRunner_RequiresServiceAndSink(t *testing.T) {
	var buf bytes.Buffer
	_, err := NewRunner(RunnerParams{Sink: render.NewConsole(&buf)})
	require.Error(t, err)

	_, err = NewRunner(RunnerParams{Service: &stubService{}})
	require.Error(t, err)
}

func TestRunAll_RendersEverySection(t *testing.T) {
	var buf bytes.Buffer
	asOf := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	runner, err := NewRunner(RunnerParams{
		Service: &stubService{},
		Sink:    render.NewConsole(&buf),
		Now:     func() time.Time { return asOf },
	})
	require.NoError(t, err)

	require.NoError(t, runner.RunAll(context.Background()))

	out := buf.String()
	for _, title := range []string{
		"=== Customers ===",
		"=== Orders With Item Count ===",
		"=== Products By Descending Price ===",
		"=== Pending Orders With Total Price ===",
		"=== Order Count Per Customer ===",
		"=== Top Customers By Order Value ===",
		"=== Recent Orders ===",
		"=== Total Sold Per Product ===",
		"=== Discounted Orders ===",
		"=== Electronics Products ===",
	} {
		assert.Contains(t, out, title)
	}
	assert.Contains(t, out, "Ada Hart - ada@example.com")
	assert.Contains(t, out, "Monitor - $180.00")
	assert.Contains(t, out, "Top Store: Harbor")
	assert.Contains(t, out, "Order 83a4ec1a, Date: 2024-03-05")
}

func TestRunAll_PassesNowToRecentOrders(t *testing.T) {
	var buf bytes.Buffer
	svc := &stubService{}
	asOf := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	runner, err := NewRunner(RunnerParams{
		Service: svc,
		Sink:    render.NewConsole(&buf),
		Now:     func() time.Time { return asOf },
	})
	require.NoError(t, err)

	require.NoError(t, runner.RunAll(context.Background()))
	assert.Equal(t, asOf, svc.asOfSeen)
}

func TestRunAll_IsolatesFailures(t *testing.T) {
	var buf bytes.Buffer
	svc := &stubService{recentErr: pkgerrors.New(pkgerrors.CodeDependency, "list orders")}
	runner, err := NewRunner(RunnerParams{
		Service: svc,
		Sink:    render.NewConsole(&buf),
		Metrics: metrics.NewReportMetrics(nil),
	})
	require.NoError(t, err)

	err = runner.RunAll(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "recent_orders")

	out := buf.String()
	// A failed report skips its section; the rest still render.
	assert.NotContains(t, out, "=== Recent Orders ===")
	assert.Contains(t, out, "=== Customers ===")
	assert.Contains(t, out, "=== Electronics Products ===")
}
