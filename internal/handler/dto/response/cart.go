package response

import (
	"lionrewards/internal/usecase/commands"
	"lionrewards/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type CartItemResponse struct {
	CartID     int64  `json:"cart_id"`
	VoucherID  int64  `json:"voucher_id"`
	Title      string `json:"title"`
	CostPoints int64  `json:"cost_points"`
	Quantity   int32  `json:"quantity"`
}

type CartResponse struct {
	Cart  []CartItemResponse `json:"cart"`
	Total int64              `json:"total"`
}

type AddToCartResponse struct {
	Message string `json:"message"`
	CartID  int64  `json:"cart_id"`
}

type CheckoutResponse struct {
	Message      string `json:"message"`
	TotalCost    int64  `json:"totalCost"`
	Points       int64  `json:"points"`
	RedemptionID string `json:"redemption_id"`
}

func FromCartView(v *queries.CartView) (*CartResponse, error) {
	res := &CartResponse{Cart: []CartItemResponse{}, Total: v.Total}
	if err := copier.Copy(&res.Cart, v.Items); err != nil {
		return nil, err
	}
	return res, nil
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		Message:      "Checkout successful",
		TotalCost:    r.TotalCost,
		Points:       r.Balance,
		RedemptionID: r.RedemptionID.String(),
	}
}
