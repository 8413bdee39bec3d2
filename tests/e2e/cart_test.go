//go:build e2e

package e2e

import (
	"fmt"
	"net/http"
	"testing"

	resdto "lionrewards/internal/handler/dto/response"
	"lionrewards/tests/common/dbtest"
	"lionrewards/tests/common/httptest"

	"github.com/stretchr/testify/suite"
)

type CartE2ETestSuite struct {
	SharedSuite
}

func TestCartE2ETestSuite(t *testing.T) {
	suite.Run(t, new(CartE2ETestSuite))
}

func (s *CartE2ETestSuite) TestAddToCart() {
	s.Run("success: quantity defaults to one", func() {
		token := s.JWT.Member(s.T(), 701)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/cart",
			map[string]any{"voucher_id": dbtest.VoucherCoffeeID}, token)

		var body resdto.AddToCartResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &body)
		s.Equal("Added to cart", body.Message)
		s.Positive(body.CartID)

		view := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/cart", nil, token)
		var cartBody resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), view, http.StatusOK, &cartBody)
		s.Require().Len(cartBody.Cart, 1)
		s.Equal(int32(1), cartBody.Cart[0].Quantity)
		s.Equal("Coffee", cartBody.Cart[0].Title)
		s.Equal(int64(10), cartBody.Total)
	})

	s.Run("success: the same voucher twice gives two lines", func() {
		token := s.JWT.Member(s.T(), 702)
		for range 2 {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/cart",
				map[string]any{"voucher_id": dbtest.VoucherLunchID, "quantity": 2}, token)
			httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, nil)
		}
		s.Equal(2, dbtest.CountRows(s.T(), s.DB, "cart", 702))
	})

	s.Run("error: unknown voucher", func() {
		token := s.JWT.Member(s.T(), 703)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/cart",
			map[string]any{"voucher_id": 9999}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Voucher not found")
		s.Equal(0, dbtest.CountRows(s.T(), s.DB, "cart", 703))
	})

	s.Run("error: zero quantity", func() {
		token := s.JWT.Member(s.T(), 704)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/cart",
			map[string]any{"voucher_id": dbtest.VoucherCoffeeID, "quantity": 0}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})

	s.Run("error: admins have no cart", func() {
		token := s.JWT.Admin(s.T(), 705)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/cart",
			map[string]any{"voucher_id": dbtest.VoucherCoffeeID}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Insufficient permissions")
	})
}

func (s *CartE2ETestSuite) TestUpdateCart() {
	s.Run("success", func() {
		const userID int64 = 711
		cartID := dbtest.AddCartItem(s.T(), s.DB, userID, dbtest.VoucherCoffeeID, 1)
		token := s.JWT.Member(s.T(), userID)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, fmt.Sprintf("/cart/%d", cartID),
			map[string]any{"quantity": 4}, token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)

		view := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/cart", nil, token)
		var cartBody resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), view, http.StatusOK, &cartBody)
		s.Equal(int64(40), cartBody.Total)
	})

	s.Run("error: another user's line is not found", func() {
		cartID := dbtest.AddCartItem(s.T(), s.DB, 712, dbtest.VoucherCoffeeID, 1)
		token := s.JWT.Member(s.T(), 713)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, fmt.Sprintf("/cart/%d", cartID),
			map[string]any{"quantity": 3}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Cart item not found")
	})

	s.Run("error: invalid cart id", func() {
		token := s.JWT.Member(s.T(), 714)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPut, "/cart/abc",
			map[string]any{"quantity": 3}, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid cart_id")
	})
}

func (s *CartE2ETestSuite) TestRemoveFromCart() {
	s.Run("success: removal is idempotent", func() {
		const userID int64 = 721
		cartID := dbtest.AddCartItem(s.T(), s.DB, userID, dbtest.VoucherCoffeeID, 1)
		token := s.JWT.Member(s.T(), userID)
		path := fmt.Sprintf("/cart/%d", cartID)

		for range 2 {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, path, nil, token)
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
		}
		s.Equal(0, dbtest.CountRows(s.T(), s.DB, "cart", userID))
	})

	s.Run("success: another user's line is left alone", func() {
		cartID := dbtest.AddCartItem(s.T(), s.DB, 722, dbtest.VoucherCoffeeID, 1)
		token := s.JWT.Member(s.T(), 723)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, fmt.Sprintf("/cart/%d", cartID), nil, token)
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, nil)
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "cart", 722))
	})
}
