//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"lionrewards/internal/domain/cart"
	"lionrewards/internal/handler/api"
	resdto "lionrewards/internal/handler/dto/response"
	"lionrewards/internal/pkg/errs"
	"lionrewards/internal/usecase/commands"
	"lionrewards/internal/usecase/queries"
	"lionrewards/tests/common/httptest"
	"lionrewards/tests/common/testutil"
	commandsmock "lionrewards/tests/mock/commands"
	queriesmock "lionrewards/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CartHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCartCommands
	mockCheckout *commandsmock.MockCheckoutCommands
	mockQueries  *queriesmock.MockCartQueries
	handler      *api.CartHandler
}

func (s *CartHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCartCommands(s.mockCtrl)
	s.mockCheckout = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockCartQueries(s.mockCtrl)
	s.handler = api.NewCartHandler(s.mockCommands, s.mockCheckout, s.mockQueries)

	s.router.GET("/cart", fakeAuth, s.handler.View)
	s.router.POST("/cart", fakeAuth, s.handler.Add)
	s.router.PUT("/cart/:cart_id", fakeAuth, s.handler.Update)
	s.router.DELETE("/cart/:cart_id", fakeAuth, s.handler.Remove)
	s.router.POST("/cart/checkout", fakeAuth, s.handler.Checkout)
}

func (s *CartHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCartHandlerSuite(t *testing.T) {
	suite.Run(t, new(CartHandlerTestSuite))
}

type testCaseCart struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// View
// ================================================================================

func (s *CartHandlerTestSuite) TestView() {
	s.Run("success: items with total", func() {
		s.mockQueries.EXPECT().GetCart(gomock.Any(), testUserID).Return(&queries.CartView{
			Items: []*queries.CartItemView{
				{CartID: 1, VoucherID: 1, Title: "Coffee", CostPoints: 10, Quantity: 2},
				{CartID: 2, VoucherID: 2, Title: "Lunch", CostPoints: 15, Quantity: 1},
			},
			Total: 35,
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "bearer-token")

		var body resdto.CartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(35), body.Total)
		s.Len(body.Cart, 2)
		s.Equal("Coffee", body.Cart[0].Title)
		s.Equal(int64(10), body.Cart[0].CostPoints)
	})

	s.Run("success: empty cart serialises as an empty list", func() {
		s.mockQueries.EXPECT().GetCart(gomock.Any(), testUserID).
			Return(&queries.CartView{Items: []*queries.CartItemView{}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "bearer-token")
		s.Equal(http.StatusOK, rec.Code)
		s.JSONEq(`{"cart":[],"total":0}`, rec.Body.String())
	})

	s.Run("error: 401 without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/cart", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})
}

// ================================================================================
// Add
// ================================================================================

func (s *CartHandlerTestSuite) TestAdd() {
	reqBody := map[string]any{"voucher_id": 2, "quantity": 1}

	s.Run("success: 201 with the new cart id", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), testUserID, int64(2), gomock.Any()).Return(int64(31), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart", reqBody, "bearer-token")

		var body resdto.AddToCartResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(int64(31), body.CartID)
		s.Equal("Added to cart", body.Message)
	})

	s.Run("success: missing quantity is passed as nil", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), testUserID, int64(2), gomock.Nil()).Return(int64(32), nil)

		req := testutil.DtoMap(s.T(), reqBody, testutil.Field("quantity", nil))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart", req, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	validation := []testCaseCart{
		{name: "missing voucher_id", mutate: testutil.Field("voucher_id", nil), expectCode: http.StatusBadRequest},
		{name: "zero voucher_id", mutate: testutil.Field("voucher_id", 0), expectCode: http.StatusBadRequest},
		{name: "quantity zero", mutate: testutil.Field("quantity", 0), expectCode: http.StatusBadRequest},
		{name: "quantity negative", mutate: testutil.Field("quantity", -1), expectCode: http.StatusBadRequest},
		{name: "voucher_id not a number", mutate: testutil.Field("voucher_id", "two"), expectCode: http.StatusBadRequest},
	}
	for _, tc := range validation {
		s.Run("error: "+tc.name, func() {
			req := testutil.DtoMap(s.T(), reqBody, tc.mutate)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart", req, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
		})
	}

	s.Run("error: 404 unknown voucher", func() {
		s.mockCommands.EXPECT().AddItem(gomock.Any(), testUserID, int64(2), gomock.Any()).
			Return(int64(0), errs.Mark(errors.New("no rows"), commands.ErrVoucherNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Voucher not found")
	})
}

// ================================================================================
// Update / Remove
// ================================================================================

func (s *CartHandlerTestSuite) TestUpdate() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().UpdateItem(gomock.Any(), testUserID, int64(9), 3).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/9", map[string]any{"quantity": 3}, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 on quantity zero", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/9", map[string]any{"quantity": 0}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: 400 on non numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/abc", map[string]any{"quantity": 1}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid cart_id")
	})

	s.Run("error: 404 when the row is missing or belongs to someone else", func() {
		s.mockCommands.EXPECT().UpdateItem(gomock.Any(), testUserID, int64(9), 2).
			Return(errs.Mark(errors.New("0 rows"), commands.ErrCartItemNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/cart/9", map[string]any{"quantity": 2}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Cart item not found")
	})
}

func (s *CartHandlerTestSuite) TestRemove() {
	s.Run("success: repeated removal is still 200", func() {
		s.mockCommands.EXPECT().RemoveItem(gomock.Any(), testUserID, int64(9)).Return(nil).Times(2)

		for range 2 {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/cart/9", nil, "bearer-token")
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
		}
	})
}

// ================================================================================
// Checkout
// ================================================================================

func (s *CartHandlerTestSuite) TestCheckout() {
	s.Run("success: reports total and new balance", func() {
		id := uuid.New()
		s.mockCheckout.EXPECT().Checkout(gomock.Any(), testUserID).Return(&commands.CheckoutResult{
			RedemptionID: id,
			TotalCost:    35,
			Balance:      65,
			Items:        []cart.Line{{CartID: 1, VoucherID: 1, CostPoints: 10, Quantity: 2}},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/checkout", nil, "bearer-token")

		var body resdto.CheckoutResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int64(35), body.TotalCost)
		s.Equal(int64(65), body.Points)
		s.Equal(id.String(), body.RedemptionID)
		s.Equal("Checkout successful", body.Message)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			err            error
			expectedStatus int
			expectedMsg    string
		}{
			{name: "empty cart", err: commands.ErrEmptyCart, expectedStatus: http.StatusBadRequest, expectedMsg: "Cart is empty"},
			{name: "insufficient points", err: errs.Mark(errors.New("short"), commands.ErrInsufficientPoints), expectedStatus: http.StatusUnprocessableEntity, expectedMsg: "Insufficient points"},
			{name: "rolled back", err: errs.Mark(errors.New("disk full"), commands.ErrCheckoutFailed), expectedStatus: http.StatusInternalServerError, expectedMsg: "Checkout failed"},
			{name: "unknown", err: errors.New("???"), expectedStatus: http.StatusInternalServerError, expectedMsg: "Internal error"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCheckout.EXPECT().Checkout(gomock.Any(), testUserID).Return(nil, tc.err)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/cart/checkout", nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
