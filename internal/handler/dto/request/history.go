package request

import "lionrewards/internal/usecase/commands"

type HistoryItemRequest struct {
	VoucherID int64  `json:"voucher_id" binding:"required,gt=0"`
	Title     string `json:"title" binding:"required,max=100"`
	Quantity  int    `json:"quantity" binding:"required,min=1,max=10000"`
}

type LogHistoryRequest struct {
	Items []HistoryItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r *LogHistoryRequest) ToCommand() []commands.HistoryItem {
	items := make([]commands.HistoryItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = commands.HistoryItem{
			VoucherID: it.VoucherID,
			Title:     it.Title,
			Quantity:  it.Quantity,
		}
	}
	return items
}
