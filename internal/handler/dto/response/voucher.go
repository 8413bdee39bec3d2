package response

import (
	"lionrewards/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type VoucherResponse struct {
	VoucherID   int64  `json:"voucher_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CostPoints  int64  `json:"cost_points"`
}

type VoucherListResponse struct {
	Vouchers []VoucherResponse `json:"vouchers"`
}

func FromVoucherViews(vouchers []*queries.VoucherView) (*VoucherListResponse, error) {
	res := &VoucherListResponse{Vouchers: []VoucherResponse{}}
	if err := copier.Copy(&res.Vouchers, vouchers); err != nil {
		return nil, err
	}
	return res, nil
}
