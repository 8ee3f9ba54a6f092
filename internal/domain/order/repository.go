package order

import (
	"context"

	domcart "example.com/dropship-manager/internal/domain/cart"
)

// Overview are the dashboard counters shown on the admin landing page.
// Revenue covers shipped and delivered orders only.
type Overview struct {
	TotalOrders      int64
	PendingOrders    int64
	ProcessingOrders int64
	TotalRevenue     float64
}

type Repository interface {
	// CreateBatch turns every cart line into one order inside a single
	// transaction. Stock is checked and decremented per line; any failing
	// line rolls back the whole batch.
	CreateBatch(ctx context.Context, customer Customer, lines []domcart.Line) ([]*Order, error)

	// Create inserts a single order as-is (CSV import path, no stock
	// movement).
	Create(ctx context.Context, o *Order) (*Order, error)

	List(ctx context.Context) ([]*Order, error)
	GetByID(ctx context.Context, id int64) (*Order, error)
	UpdateStatus(ctx context.Context, id int64, status Status, trackingNumber string) (*Order, error)

	Overview(ctx context.Context) (*Overview, error)
}
