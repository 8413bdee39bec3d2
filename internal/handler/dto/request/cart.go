package request

type AddToCartRequest struct {
	VoucherID int64 `json:"voucher_id" binding:"required,gt=0"`
	Quantity  *int  `json:"quantity" binding:"omitempty,min=1"`
}

type UpdateCartRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}
