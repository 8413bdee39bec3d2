package api

import (
	"net/http"
	"strconv"

	"lionrewards/internal/handler/httperr"
	"lionrewards/internal/handler/middleware"
	"lionrewards/internal/pkg/errs"
	"lionrewards/internal/usecase/commands"
	"lionrewards/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var (
	errUnauthenticated = errs.New("user not authenticated")
	errInvalidPathID   = errs.New("path id must be a positive integer")
)

// respondError maps use case sentinels to status codes; anything unrecognised is a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, err.Error(), nil)
	case errs.Is(err, commands.ErrVoucherNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Voucher not found", nil)
	case errs.Is(err, commands.ErrCartItemNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Cart item not found", nil)
	case errs.Is(err, commands.ErrVideoTaskNotFound), errs.Is(err, queries.ErrVideoTaskNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Task not found", nil)
	case errs.Is(err, commands.ErrEmptyCart):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Cart is empty", nil)
	case errs.Is(err, commands.ErrAlreadyCompleted):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Task already completed", nil)
	case errs.Is(err, commands.ErrInsufficientPoints):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Insufficient points", nil)
	case errs.Is(err, commands.ErrCheckoutFailed):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Checkout failed", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}

func requireUserID(c *gin.Context) (int64, bool) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return 0, false
	}
	return userID, true
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, errInvalidPathID, "Invalid "+name, nil)
		return 0, false
	}
	return id, true
}
