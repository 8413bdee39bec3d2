package api

import (
	"net/http"

	reqdto "lionrewards/internal/handler/dto/request"
	resdto "lionrewards/internal/handler/dto/response"
	"lionrewards/internal/handler/httperr"
	"lionrewards/internal/usecase/commands"
	"lionrewards/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cmds     commands.CartCommands
	checkout commands.CheckoutCommands
	q        queries.CartQueries
}

func NewCartHandler(cmds commands.CartCommands, checkout commands.CheckoutCommands, q queries.CartQueries) *CartHandler {
	return &CartHandler{cmds: cmds, checkout: checkout, q: q}
}

// @Summary View cart
// @Description List the current user's cart items with voucher title, cost and the cart total
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CartResponse
// @Failure 401 {object} httperr.Response
// @Router /cart [get]
func (h *CartHandler) View(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	view, err := h.q.GetCart(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromCartView(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Add to cart
// @Description Add a voucher to the cart; every call creates a new line
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.AddToCartRequest true "Voucher and optional quantity"
// @Success 201 {object} resdto.AddToCartResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cart [post]
func (h *CartHandler) Add(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req reqdto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	cartID, err := h.cmds.AddItem(c.Request.Context(), userID, req.VoucherID, req.Quantity)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.AddToCartResponse{Message: "Added to cart", CartID: cartID})
}

// @Summary Update cart item
// @Description Change the quantity of one of the current user's cart lines
// @Tags cart
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param cart_id path int true "Cart item ID"
// @Param request body reqdto.UpdateCartRequest true "New quantity"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /cart/{cart_id} [put]
func (h *CartHandler) Update(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	cartID, ok := parseIDParam(c, "cart_id")
	if !ok {
		return
	}
	var req reqdto.UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cmds.UpdateItem(c.Request.Context(), userID, cartID, req.Quantity); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Cart updated"})
}

// @Summary Remove cart item
// @Description Remove a cart line; removing an absent line still succeeds
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Param cart_id path int true "Cart item ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Router /cart/{cart_id} [delete]
func (h *CartHandler) Remove(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	cartID, ok := parseIDParam(c, "cart_id")
	if !ok {
		return
	}
	if err := h.cmds.RemoveItem(c.Request.Context(), userID, cartID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{Message: "Removed from cart"})
}

// @Summary Checkout
// @Description Redeem every voucher in the cart in one transaction
// @Tags cart
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /cart/checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	result, err := h.checkout.Checkout(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCheckoutResult(result))
}
