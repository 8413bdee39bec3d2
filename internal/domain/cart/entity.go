package cart

import "time"

// NewItem is a pending selection before it has been stored.
type NewItem struct {
	userID    int64
	voucherID int64
	quantity  Quantity
	addedAt   time.Time
}

func NewCartItem(userID, voucherID int64, quantity Quantity, addedAt time.Time) (*NewItem, error) {
	if err := ValidateVoucherID(voucherID); err != nil {
		return nil, err
	}
	return &NewItem{
		userID:    userID,
		voucherID: voucherID,
		quantity:  quantity,
		addedAt:   addedAt,
	}, nil
}

func (i *NewItem) UserID() int64      { return i.userID }
func (i *NewItem) VoucherID() int64   { return i.voucherID }
func (i *NewItem) Quantity() Quantity { return i.quantity }
func (i *NewItem) AddedAt() time.Time { return i.addedAt }

// Line is a stored cart row enriched with the voucher's current title and cost.
type Line struct {
	CartID     int64
	VoucherID  int64
	Title      string
	CostPoints int64
	Quantity   int32
}

func (l Line) Subtotal() int64 {
	return l.CostPoints * int64(l.Quantity)
}

// Cart is the ordered set of a user's lines as read under the checkout lock.
type Cart struct {
	userID int64
	lines  []Line
}

func Reconstruct(userID int64, lines []Line) *Cart {
	return &Cart{userID: userID, lines: lines}
}

func (c *Cart) UserID() int64 { return c.userID }
func (c *Cart) Lines() []Line { return c.lines }
func (c *Cart) IsEmpty() bool { return len(c.lines) == 0 }

func (c *Cart) CartIDs() []int64 {
	ids := make([]int64, len(c.lines))
	for i, l := range c.lines {
		ids[i] = l.CartID
	}
	return ids
}

func (c *Cart) Total() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.Subtotal()
	}
	return total
}
