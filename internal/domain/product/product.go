package product

import "time"

type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusOutOfStock Status = "out_of_stock"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive, StatusOutOfStock:
		return true
	default:
		return false
	}
}

type Product struct {
	ID                int64
	Name              string
	Description       string
	SKU               string
	Price             float64
	Cost              float64
	SupplierID        int64
	SupplierProductID string
	ImageURL          string
	Category          string
	ProductType       string
	Status            Status
	StockQuantity     int64
	CreatedAt         time.Time
}

// Sellable reports whether the product may appear in a cart: active and with
// stock left.
func (p *Product) Sellable() bool {
	return p.Status == StatusActive && p.StockQuantity > 0
}

type ListFilter struct {
	Status     Status
	SupplierID int64
	Search     string
}
