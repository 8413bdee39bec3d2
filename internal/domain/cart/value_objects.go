package cart

import "errors"

var (
	ErrInvalidQuantity  = errors.New("quantity must be between 1 and 10000")
	ErrInvalidVoucherID = errors.New("voucher id must be positive")
	ErrInvalidCartID    = errors.New("cart id must be positive")
)

const DefaultQuantity = 1

// Bounded so cost_points * quantity summed over a cart stays far inside int64.
const maxQuantity = 10000

type Quantity struct {
	value int32
}

func NewQuantity(n int) (Quantity, error) {
	if n < 1 || n > maxQuantity {
		return Quantity{}, ErrInvalidQuantity
	}
	return Quantity{value: int32(n)}, nil
}

func (q Quantity) Int32() int32 {
	return q.value
}

func (q Quantity) Int() int {
	return int(q.value)
}

func ValidateVoucherID(id int64) error {
	if id <= 0 {
		return ErrInvalidVoucherID
	}
	return nil
}

func ValidateCartID(id int64) error {
	if id <= 0 {
		return ErrInvalidCartID
	}
	return nil
}
