package response

import (
	"time"

	"lionrewards/internal/usecase/queries"
)

type HistoryEntryResponse struct {
	HistoryID    int64   `json:"history_id"`
	RedemptionID *string `json:"redemption_id,omitempty"`
	VoucherID    int64   `json:"voucher_id"`
	VoucherTitle string  `json:"voucher_title"`
	Quantity     int32   `json:"quantity"`
	RedeemedAt   string  `json:"redeemed_at"`
}

type HistoryResponse struct {
	History []HistoryEntryResponse `json:"history"`
}

func FromHistoryViews(entries []*queries.HistoryEntryView) *HistoryResponse {
	res := &HistoryResponse{History: make([]HistoryEntryResponse, len(entries))}
	for i, e := range entries {
		item := HistoryEntryResponse{
			HistoryID:    e.HistoryID,
			VoucherID:    e.VoucherID,
			VoucherTitle: e.VoucherTitle,
			Quantity:     e.Quantity,
			RedeemedAt:   e.RedeemedAt.UTC().Format(time.RFC3339),
		}
		if e.RedemptionID != nil {
			id := e.RedemptionID.String()
			item.RedemptionID = &id
		}
		res.History[i] = item
	}
	return res
}
