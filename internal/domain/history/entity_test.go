//go:build unit

package history_test

import (
	"strings"
	"testing"
	"time"

	"lionrewards/internal/domain/history"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntry(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	t.Run("basic success case", func(t *testing.T) {
		e, err := history.NewEntry(7, 2, "  Lunch  ", 3, now)
		require.NoError(t, err)
		assert.Equal(t, int64(7), e.UserID())
		assert.Equal(t, int64(2), e.VoucherID())
		assert.Equal(t, "Lunch", e.Title())
		assert.Equal(t, int32(3), e.Quantity())
		assert.Equal(t, now, e.RedeemedAt())
		assert.Nil(t, e.RedemptionID())
	})

	t.Run("redemption id is attached without touching the original", func(t *testing.T) {
		e, err := history.NewEntry(7, 2, "Lunch", 1, now)
		require.NoError(t, err)
		id := uuid.New()
		tied := e.WithRedemption(id)
		require.NotNil(t, tied.RedemptionID())
		assert.Equal(t, id, *tied.RedemptionID())
		assert.Nil(t, e.RedemptionID())
	})

	testCases := []struct {
		name      string
		voucherID int64
		title     string
		quantity  int
		at        time.Time
		errIs     error
	}{
		{name: "zero voucher id", voucherID: 0, title: "Lunch", quantity: 1, at: now, errIs: history.ErrInvalidVoucherID},
		{name: "blank title", voucherID: 1, title: "   ", quantity: 1, at: now, errIs: history.ErrInvalidTitle},
		{name: "title too long", voucherID: 1, title: strings.Repeat("a", 101), quantity: 1, at: now, errIs: history.ErrInvalidTitle},
		{name: "title at limit", voucherID: 1, title: strings.Repeat("a", 100), quantity: 1, at: now},
		{name: "zero quantity", voucherID: 1, title: "Lunch", quantity: 0, at: now, errIs: history.ErrInvalidQuantity},
		{name: "quantity at limit", voucherID: 1, title: "Lunch", quantity: 10000, at: now},
		{name: "quantity above limit", voucherID: 1, title: "Lunch", quantity: 10001, at: now, errIs: history.ErrInvalidQuantity},
		{name: "quantity past int32", voucherID: 1, title: "Lunch", quantity: 1<<32 + 1, at: now, errIs: history.ErrInvalidQuantity},
		{name: "zero time", voucherID: 1, title: "Lunch", quantity: 1, errIs: history.ErrInvalidRedeemedAt},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := history.NewEntry(1, tc.voucherID, tc.title, tc.quantity, tc.at)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}
