package cart

// Line is one product-and-quantity pair in a cart. Name, ImageURL and
// UnitPrice are copied from the catalog when the line is added and are not
// kept in sync with later catalog edits; checkout charges the captured price.
type Line struct {
	ProductID int64
	Name      string
	ImageURL  string
	UnitPrice float64
	Quantity  int64
}

// Cart holds the lines of a single shopping session. Lines keep insertion
// order and there is at most one line per product id.
//
// A Cart has exactly one writer: the session store that owns it serializes
// all access, so the methods here are not safe for concurrent use on their
// own.
type Cart struct {
	SessionID string
	lines     []Line
}

func New(sessionID string) *Cart {
	return &Cart{SessionID: sessionID}
}

// AddItem merges l into the cart: an existing line for the same product id
// gets its quantity incremented, otherwise l is appended. A non-positive
// quantity counts as 1.
func (c *Cart) AddItem(l Line) {
	if l.Quantity <= 0 {
		l.Quantity = 1
	}
	for i := range c.lines {
		if c.lines[i].ProductID == l.ProductID {
			c.lines[i].Quantity += l.Quantity
			return
		}
	}
	c.lines = append(c.lines, l)
}

// RemoveItem deletes the line for productID. Removing an absent product is a
// no-op.
func (c *Cart) RemoveItem(productID int64) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity replaces the quantity of an existing line. A quantity of zero
// or less removes the line instead. Unlike RemoveItem, targeting a product
// that is not in the cart is reported as ErrLineNotFound.
func (c *Cart) SetQuantity(productID, quantity int64) error {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return nil
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return nil
		}
	}
	return ErrLineNotFound
}

// Quantity returns the current quantity for productID, zero if absent.
func (c *Cart) Quantity(productID int64) int64 {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			return c.lines[i].Quantity
		}
	}
	return 0
}

func (c *Cart) TotalItemCount() int64 {
	var n int64
	for i := range c.lines {
		n += c.lines[i].Quantity
	}
	return n
}

func (c *Cart) TotalPrice() float64 {
	var total float64
	for i := range c.lines {
		total += c.lines[i].UnitPrice * float64(c.lines[i].Quantity)
	}
	return total
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Snapshot is a read-only view of a cart, safe to hand out after the store
// lock is released.
type Snapshot struct {
	SessionID  string
	Lines      []Line
	TotalItems int64
	TotalPrice float64
}

func (c *Cart) Snapshot() Snapshot {
	return Snapshot{
		SessionID:  c.SessionID,
		Lines:      c.Lines(),
		TotalItems: c.TotalItemCount(),
		TotalPrice: c.TotalPrice(),
	}
}
