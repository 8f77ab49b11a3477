package reports

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lizzumiko/storefront-reports/pkg/db/models"
	pkgerrors "github.com/lizzumiko/storefront-reports/pkg/errors"
)

const (
	// electronicsCategory is matched case-sensitively against category names.
	electronicsCategory = "Electronics"

	topCustomersLimit = 3

	defaultRecentOrderWindowDays = 30

	productNameDelimiter = ", "
)

// ServiceParams carries the dependencies for the report service.
type ServiceParams struct {
	Repo Repository
	// RecentOrderWindowDays bounds the recent orders report; zero means the
	// default 30-day window.
	RecentOrderWindowDays int
}

type service struct {
	repo             Repository
	recentWindowDays int
}

// NewService builds the report service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("reports repository required")
	}
	days := params.RecentOrderWindowDays
	if days <= 0 {
		days = defaultRecentOrderWindowDays
	}
	return &service{repo: params.Repo, recentWindowDays: days}, nil
}

func (s *service) CustomerDirectory(ctx context.Context) ([]CustomerRow, error) {
	customers, err := s.repo.ListCustomers(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list customers")
	}

	rows := make([]CustomerRow, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, CustomerRow{Name: c.FullName(), Email: c.Email})
	}
	return rows, nil
}

func (s *service) OrdersWithItemCount(ctx context.Context) ([]OrderItemCountRow, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}

	rows := make([]OrderItemCountRow, 0, len(orders))
	for _, o := range orders {
		customer, err := orderCustomer(o)
		if err != nil {
			return nil, err
		}
		count := 0
		for _, item := range o.Items {
			count += item.Qty
		}
		rows = append(rows, OrderItemCountRow{
			OrderID:   o.ID,
			Customer:  customer.FullName(),
			Status:    o.Status,
			ItemCount: count,
		})
	}
	return rows, nil
}

func (s *service) ProductsByPrice(ctx context.Context) ([]ProductPriceRow, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}

	rows := make([]ProductPriceRow, 0, len(products))
	for _, p := range products {
		rows = append(rows, ProductPriceRow{Name: p.Name, Price: p.Price})
	}
	// Stable keeps source order for equal prices.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Price.GreaterThan(rows[j].Price)
	})
	return rows, nil
}

func (s *service) PendingOrders(ctx context.Context) ([]PendingOrderRow, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}

	rows := make([]PendingOrderRow, 0)
	for _, o := range orders {
		if o.Status != models.OrderStatusPending {
			continue
		}
		customer, err := orderCustomer(o)
		if err != nil {
			return nil, err
		}
		total := decimal.Zero
		for _, item := range o.Items {
			total = total.Add(item.LineTotal())
		}
		rows = append(rows, PendingOrderRow{
			OrderID:   o.ID,
			Customer:  customer.FullName(),
			OrderDate: o.OrderDate,
			Total:     total,
		})
	}
	return rows, nil
}

func (s *service) OrderCountPerCustomer(ctx context.Context) ([]CustomerOrderCountRow, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}

	groups := groupBy(orders, func(o models.Order) uuid.UUID { return o.CustomerID })
	rows := make([]CustomerOrderCountRow, 0, len(groups))
	for _, g := range groups {
		customer, err := orderCustomer(g.items[0])
		if err != nil {
			return nil, err
		}
		rows = append(rows, CustomerOrderCountRow{
			Customer:   customer.FullName(),
			OrderCount: len(g.items),
		})
	}
	return rows, nil
}

func (s *service) TopCustomersByValue(ctx context.Context) ([]CustomerValueRow, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}

	groups := groupBy(orders, func(o models.Order) uuid.UUID { return o.CustomerID })
	rows := make([]CustomerValueRow, 0, len(groups))
	for _, g := range groups {
		customer, err := orderCustomer(g.items[0])
		if err != nil {
			return nil, err
		}
		total := decimal.Zero
		for _, o := range g.items {
			for _, item := range o.Items {
				total = total.Add(item.LineTotal())
			}
		}
		rows = append(rows, CustomerValueRow{
			Customer:   customer.FullName(),
			TotalValue: total,
		})
	}
	// Stable sort: ties keep first-seen customer order.
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalValue.GreaterThan(rows[j].TotalValue)
	})
	if len(rows) > topCustomersLimit {
		rows = rows[:topCustomersLimit]
	}
	return rows, nil
}

func (s *service) RecentOrders(ctx context.Context, asOf time.Time) ([]RecentOrderRow, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}

	cutoff := asOf.AddDate(0, 0, -s.recentWindowDays)
	rows := make([]RecentOrderRow, 0)
	for _, o := range orders {
		// Cutoff boundary is inclusive.
		if o.OrderDate.Before(cutoff) {
			continue
		}
		customer, err := orderCustomer(o)
		if err != nil {
			return nil, err
		}
		rows = append(rows, RecentOrderRow{
			OrderID:   o.ID,
			Customer:  customer.FullName(),
			OrderDate: o.OrderDate,
		})
	}
	return rows, nil
}

func (s *service) TotalSoldPerProduct(ctx context.Context) ([]ProductSalesRow, error) {
	items, err := s.repo.ListOrderItems(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list order items")
	}

	groups := groupBy(items, func(i models.OrderItem) uuid.UUID { return i.ProductID })
	rows := make([]ProductSalesRow, 0, len(groups))
	for _, g := range groups {
		product, err := itemProduct(g.items[0])
		if err != nil {
			return nil, err
		}
		total := 0
		for _, item := range g.items {
			total += item.Qty
		}
		rows = append(rows, ProductSalesRow{Product: product.Name, TotalSold: total})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalSold > rows[j].TotalSold
	})
	return rows, nil
}

func (s *service) DiscountedOrders(ctx context.Context) ([]DiscountedOrderRow, error) {
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}

	rows := make([]DiscountedOrderRow, 0)
	for _, o := range orders {
		names := make([]string, 0)
		seen := make(map[string]struct{})
		for _, item := range o.Items {
			if !item.Discount.IsPositive() {
				continue
			}
			product, err := itemProduct(item)
			if err != nil {
				return nil, err
			}
			if _, dup := seen[product.Name]; dup {
				continue
			}
			seen[product.Name] = struct{}{}
			names = append(names, product.Name)
		}
		if len(names) == 0 {
			continue
		}
		customer, err := orderCustomer(o)
		if err != nil {
			return nil, err
		}
		rows = append(rows, DiscountedOrderRow{
			OrderID:            o.ID,
			Customer:           customer.FullName(),
			DiscountedProducts: strings.Join(names, productNameDelimiter),
		})
	}
	return rows, nil
}

func (s *service) ElectronicsReport(ctx context.Context) ([]ElectronicsProductRow, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list products")
	}
	orders, err := s.repo.ListOrders(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list orders")
	}

	// Each order contributes at most one reference per product it contains.
	ordersByProduct := make(map[uuid.UUID][]OrderRef)
	for _, o := range orders {
		inOrder := make(map[uuid.UUID]struct{})
		for _, item := range o.Items {
			if _, dup := inOrder[item.ProductID]; dup {
				continue
			}
			inOrder[item.ProductID] = struct{}{}
			ordersByProduct[item.ProductID] = append(ordersByProduct[item.ProductID], OrderRef{
				OrderID:   o.ID,
				OrderDate: o.OrderDate,
			})
		}
	}

	rows := make([]ElectronicsProductRow, 0)
	for _, p := range products {
		if !hasCategory(p, electronicsCategory) {
			continue
		}
		row := ElectronicsProductRow{
			Product: p.Name,
			Orders:  ordersByProduct[p.ID],
		}
		top, err := topStockedStore(p)
		if err != nil {
			return nil, err
		}
		row.TopStore = top
		rows = append(rows, row)
	}
	return rows, nil
}

func hasCategory(p models.Product, name string) bool {
	for _, c := range p.Categories {
		if c.Name == name {
			return true
		}
	}
	return false
}

// topStockedStore returns the name of the store with the highest stock
// quantity, keeping the first store on ties. A product with no stock records
// yields nil, not an error.
func topStockedStore(p models.Product) (*string, error) {
	var best *models.Stock
	for i := range p.Stocks {
		stock := &p.Stocks[i]
		if best == nil || stock.Quantity > best.Quantity {
			best = stock
		}
	}
	if best == nil {
		return nil, nil
	}
	if best.Store == nil {
		return nil, pkgerrors.New(pkgerrors.CodeIntegrity,
			fmt.Sprintf("stock for product %s references missing store %s", best.ProductID, best.StoreID))
	}
	return &best.Store.Name, nil
}

// orderCustomer resolves the owning customer, failing loudly on a dangling
// reference. The dataset is expected to be referentially intact, so silent
// skipping would hide a data-source defect.
func orderCustomer(o models.Order) (*models.Customer, error) {
	if o.Customer == nil {
		return nil, pkgerrors.New(pkgerrors.CodeIntegrity,
			fmt.Sprintf("order %s references missing customer %s", o.ID, o.CustomerID))
	}
	return o.Customer, nil
}

func itemProduct(i models.OrderItem) (*models.Product, error) {
	if i.Product == nil {
		return nil, pkgerrors.New(pkgerrors.CodeIntegrity,
			fmt.Sprintf("order item %s references missing product %s", i.ID, i.ProductID))
	}
	return i.Product, nil
}
