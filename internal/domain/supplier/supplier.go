package supplier

import "time"

// Supplier is an external fulfillment or affiliate source configured by an
// administrator. Type names the import mapping profile used for its CSV
// feeds ("aliexpress", "printful", "generic", ...).
type Supplier struct {
	ID           int64
	Name         string
	Type         string
	ContactEmail string
	WebsiteURL   string
	Active       bool
	CreatedAt    time.Time
}
