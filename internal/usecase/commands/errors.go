package commands

import "lionrewards/internal/pkg/errs"

var (
	ErrValidation         = errs.New("validation failed")
	ErrVoucherNotFound    = errs.New("voucher not found")
	ErrCartItemNotFound   = errs.New("cart item not found")
	ErrEmptyCart          = errs.New("cart is empty")
	ErrInsufficientPoints = errs.New("insufficient points")
	ErrCheckoutFailed     = errs.New("checkout failed")
	ErrVideoTaskNotFound  = errs.New("video task not found")
	ErrAlreadyCompleted   = errs.New("video task already completed")
	ErrTransactionFailed  = errs.New("transaction failed")
)
