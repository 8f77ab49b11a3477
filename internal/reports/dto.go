package reports

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CustomerRow lists one customer in the directory report.
type CustomerRow struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// OrderItemCountRow pairs an order with the summed quantity of its items.
type OrderItemCountRow struct {
	OrderID   uuid.UUID `json:"order_id"`
	Customer  string    `json:"customer"`
	Status    string    `json:"status"`
	ItemCount int       `json:"item_count"`
}

// ProductPriceRow lists one product in the price-ranked report.
type ProductPriceRow struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// PendingOrderRow exposes a pending order with its computed total.
type PendingOrderRow struct {
	OrderID   uuid.UUID       `json:"order_id"`
	Customer  string          `json:"customer"`
	OrderDate time.Time       `json:"order_date"`
	Total     decimal.Decimal `json:"total"`
}

// CustomerOrderCountRow pairs a customer with how many orders they placed.
type CustomerOrderCountRow struct {
	Customer   string `json:"customer"`
	OrderCount int    `json:"order_count"`
}

// CustomerValueRow pairs a customer with the total value of their orders.
type CustomerValueRow struct {
	Customer   string          `json:"customer"`
	TotalValue decimal.Decimal `json:"total_value"`
}

// RecentOrderRow lists an order inside the recency window.
type RecentOrderRow struct {
	OrderID   uuid.UUID `json:"order_id"`
	Customer  string    `json:"customer"`
	OrderDate time.Time `json:"order_date"`
}

// ProductSalesRow pairs a product with the total quantity sold.
type ProductSalesRow struct {
	Product   string `json:"product"`
	TotalSold int    `json:"total_sold"`
}

// DiscountedOrderRow lists an order holding at least one discounted item,
// with the discounted product names joined into one delimited string.
type DiscountedOrderRow struct {
	OrderID            uuid.UUID `json:"order_id"`
	Customer           string    `json:"customer"`
	DiscountedProducts string    `json:"discounted_products"`
}

// OrderRef identifies an order inside the electronics cross-report.
type OrderRef struct {
	OrderID   uuid.UUID `json:"order_id"`
	OrderDate time.Time `json:"order_date"`
}

// ElectronicsProductRow summarizes one electronics product: the orders that
// contain it and the store holding the most stock (nil when unstocked).
type ElectronicsProductRow struct {
	Product  string     `json:"product"`
	Orders   []OrderRef `json:"orders"`
	TopStore *string    `json:"top_store,omitempty"`
}
