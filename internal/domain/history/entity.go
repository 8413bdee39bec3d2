package history

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

var (
	ErrNoEntries         = errors.New("at least one history item is required")
	ErrInvalidVoucherID  = errors.New("voucher id must be positive")
	ErrInvalidTitle      = errors.New("voucher title must be 1-100 characters")
	ErrInvalidQuantity   = errors.New("quantity must be between 1 and 10000")
	ErrInvalidRedeemedAt = errors.New("redeemed at must be set")
)

const (
	maxTitleLength = 100
	// same cap as a cart line, so every checkout line fits
	maxQuantity = 10000
)

// Entry is one append-only row of a user's redemption log.
type Entry struct {
	userID       int64
	redemptionID *uuid.UUID
	voucherID    int64
	title        string
	quantity     int32
	redeemedAt   time.Time
}

func NewEntry(userID, voucherID int64, title string, quantity int, redeemedAt time.Time) (Entry, error) {
	if voucherID <= 0 {
		return Entry{}, ErrInvalidVoucherID
	}
	title = strings.TrimSpace(title)
	if title == "" || utf8.RuneCountInString(title) > maxTitleLength {
		return Entry{}, ErrInvalidTitle
	}
	if quantity < 1 || quantity > maxQuantity {
		return Entry{}, ErrInvalidQuantity
	}
	if redeemedAt.IsZero() {
		return Entry{}, ErrInvalidRedeemedAt
	}
	return Entry{
		userID:     userID,
		voucherID:  voucherID,
		title:      title,
		quantity:   int32(quantity),
		redeemedAt: redeemedAt,
	}, nil
}

// WithRedemption ties the entry to the checkout that produced it.
func (e Entry) WithRedemption(id uuid.UUID) Entry {
	e.redemptionID = &id
	return e
}

func (e Entry) UserID() int64            { return e.userID }
func (e Entry) RedemptionID() *uuid.UUID { return e.redemptionID }
func (e Entry) VoucherID() int64         { return e.voucherID }
func (e Entry) Title() string            { return e.title }
func (e Entry) Quantity() int32          { return e.quantity }
func (e Entry) RedeemedAt() time.Time    { return e.redeemedAt }
