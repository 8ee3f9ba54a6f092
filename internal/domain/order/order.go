package order

import "time"

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// Customer is the buyer contact captured at checkout.
type Customer struct {
	Name  string
	Email string
}

// Order is one fulfillable unit: a single product and quantity for one
// customer. A checkout with several cart lines produces several orders, all
// created in one transaction. Reference is the public identifier handed to
// customers and suppliers; ID is internal.
type Order struct {
	ID             int64
	Reference      string
	CustomerName   string
	CustomerEmail  string
	ProductID      int64
	ProductName    string
	Quantity       int64
	UnitPrice      float64
	TotalAmount    float64
	Status         Status
	TrackingNumber string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
