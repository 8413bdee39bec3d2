package queries

import (
	"time"

	"github.com/google/uuid"
)

// CartItemView is a cart row joined with the voucher's current title and cost
type CartItemView struct {
	CartID     int64     `json:"cart_id"`
	VoucherID  int64     `json:"voucher_id"`
	Title      string    `json:"title"`
	CostPoints int64     `json:"cost_points"`
	Quantity   int32     `json:"quantity"`
	AddedAt    time.Time `json:"added_at"`
}

type CartView struct {
	Items []*CartItemView `json:"cart"`
	Total int64           `json:"total"`
}

// HistoryEntryView represents one redeemed line; RedemptionID is nil for entries logged outside checkout
type HistoryEntryView struct {
	HistoryID    int64      `json:"history_id"`
	RedemptionID *uuid.UUID `json:"redemption_id,omitempty"`
	VoucherID    int64      `json:"voucher_id"`
	VoucherTitle string     `json:"voucher_title"`
	Quantity     int32      `json:"quantity"`
	RedeemedAt   time.Time  `json:"redeemed_at"`
}

type VideoTaskView struct {
	TaskID     int64  `json:"task_id"`
	Title      string `json:"title"`
	YoutubeID  string `json:"youtube_id"`
	PointValue int32  `json:"point_value"`
}

type VoucherView struct {
	VoucherID   int64     `json:"voucher_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CostPoints  int64     `json:"cost_points"`
	CreatedAt   time.Time `json:"created_at"`
}
