//go:build unit

package cart_test

import (
	"testing"
	"time"

	"lionrewards/internal/domain/cart"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQuantity(t *testing.T) {
	testCases := []struct {
		name  string
		n     int
		errIs error
	}{
		{name: "minimum", n: 1},
		{name: "maximum", n: 10000},
		{name: "zero", n: 0, errIs: cart.ErrInvalidQuantity},
		{name: "negative", n: -2, errIs: cart.ErrInvalidQuantity},
		{name: "above maximum", n: 10001, errIs: cart.ErrInvalidQuantity},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			q, err := cart.NewQuantity(tc.n)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.n, q.Int())
			assert.Equal(t, int32(tc.n), q.Int32())
		})
	}
}

func TestNewQuantity_MessageNamesBothBounds(t *testing.T) {
	_, err := cart.NewQuantity(10001)
	require.Error(t, err)
	assert.Equal(t, "quantity must be between 1 and 10000", err.Error())
}

func TestCart_CartIDs(t *testing.T) {
	c := cart.Reconstruct(7, []cart.Line{
		{CartID: 3, VoucherID: 1, CostPoints: 10, Quantity: 1},
		{CartID: 9, VoucherID: 2, CostPoints: 15, Quantity: 2},
	})
	if diff := cmp.Diff([]int64{3, 9}, c.CartIDs()); diff != "" {
		t.Errorf("cart ids mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, cart.Reconstruct(7, nil).CartIDs())
}

func TestNewCartItem(t *testing.T) {
	q, err := cart.NewQuantity(2)
	require.NoError(t, err)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	item, err := cart.NewCartItem(5, 3, q, now)
	require.NoError(t, err)
	assert.Equal(t, int64(5), item.UserID())
	assert.Equal(t, int64(3), item.VoucherID())
	assert.Equal(t, 2, item.Quantity().Int())
	assert.Equal(t, now, item.AddedAt())

	_, err = cart.NewCartItem(5, 0, q, now)
	assert.ErrorIs(t, err, cart.ErrInvalidVoucherID)
}

func TestCart_Total(t *testing.T) {
	t.Run("sums cost times quantity", func(t *testing.T) {
		c := cart.Reconstruct(1, []cart.Line{
			{CartID: 1, VoucherID: 1, Title: "Coffee", CostPoints: 10, Quantity: 2},
			{CartID: 2, VoucherID: 2, Title: "Lunch", CostPoints: 15, Quantity: 1},
		})
		assert.False(t, c.IsEmpty())
		assert.Equal(t, int64(35), c.Total())
	})

	t.Run("zero cost vouchers contribute nothing", func(t *testing.T) {
		c := cart.Reconstruct(1, []cart.Line{{CartID: 1, VoucherID: 4, CostPoints: 0, Quantity: 3}})
		assert.Equal(t, int64(0), c.Total())
	})

	t.Run("empty cart", func(t *testing.T) {
		c := cart.Reconstruct(1, nil)
		assert.True(t, c.IsEmpty())
		assert.Equal(t, int64(0), c.Total())
	})

	t.Run("lines keep insertion order", func(t *testing.T) {
		lines := []cart.Line{
			{CartID: 9, VoucherID: 2, CostPoints: 15, Quantity: 1},
			{CartID: 3, VoucherID: 1, CostPoints: 10, Quantity: 1},
		}
		c := cart.Reconstruct(1, lines)
		if diff := cmp.Diff(lines, c.Lines()); diff != "" {
			t.Errorf("lines mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestValidateIDs(t *testing.T) {
	assert.NoError(t, cart.ValidateCartID(1))
	assert.ErrorIs(t, cart.ValidateCartID(0), cart.ErrInvalidCartID)
	assert.NoError(t, cart.ValidateVoucherID(1))
	assert.ErrorIs(t, cart.ValidateVoucherID(-1), cart.ErrInvalidVoucherID)
}
