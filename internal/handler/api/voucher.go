package api

import (
	"net/http"

	resdto "lionrewards/internal/handler/dto/response"
	"lionrewards/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type VoucherHandler struct {
	q queries.VoucherQueries
}

func NewVoucherHandler(q queries.VoucherQueries) *VoucherHandler {
	return &VoucherHandler{q: q}
}

// @Summary List vouchers
// @Description Voucher catalog, cheapest first
// @Tags vouchers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.VoucherListResponse
// @Router /vouchers [get]
func (h *VoucherHandler) List(c *gin.Context) {
	vouchers, err := h.q.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromVoucherViews(vouchers)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
