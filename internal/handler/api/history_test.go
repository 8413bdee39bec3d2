//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"lionrewards/internal/handler/api"
	resdto "lionrewards/internal/handler/dto/response"
	"lionrewards/internal/usecase/commands"
	"lionrewards/internal/usecase/queries"
	"lionrewards/tests/common/httptest"
	commandsmock "lionrewards/tests/mock/commands"
	queriesmock "lionrewards/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type HistoryHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockHistoryCommands
	mockQueries  *queriesmock.MockHistoryQueries
}

func (s *HistoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockHistoryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockHistoryQueries(s.mockCtrl)
	h := api.NewHistoryHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/history", fakeAuth, h.List)
	s.router.POST("/history", fakeAuth, h.Log)
}

func (s *HistoryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHistoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(HistoryHandlerTestSuite))
}

func (s *HistoryHandlerTestSuite) TestList() {
	id := uuid.New()
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	s.mockQueries.EXPECT().GetHistory(gomock.Any(), testUserID).Return([]*queries.HistoryEntryView{
		{HistoryID: 2, RedemptionID: &id, VoucherID: 1, VoucherTitle: "Coffee", Quantity: 2, RedeemedAt: at},
		{HistoryID: 1, VoucherID: 2, VoucherTitle: "Lunch", Quantity: 1, RedeemedAt: at.Add(-time.Hour)},
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/history", nil, "bearer-token")

	var body resdto.HistoryResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body.History, 2)
	s.Require().NotNil(body.History[0].RedemptionID)
	s.Equal(id.String(), *body.History[0].RedemptionID)
	s.Equal("2025-03-01T09:00:00Z", body.History[0].RedeemedAt)
	s.Nil(body.History[1].RedemptionID)
}

func (s *HistoryHandlerTestSuite) TestLog() {
	valid := map[string]any{"items": []map[string]any{
		{"voucher_id": 1, "title": "Coffee", "quantity": 2},
	}}

	s.Run("success", func() {
		s.mockCommands.EXPECT().LogEntries(gomock.Any(), testUserID, []commands.HistoryItem{
			{VoucherID: 1, Title: "Coffee", Quantity: 2},
		}).Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/history", valid, "bearer-token")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	invalid := []struct {
		name string
		body map[string]any
	}{
		{name: "missing items", body: map[string]any{}},
		{name: "empty items", body: map[string]any{"items": []any{}}},
		{name: "item without title", body: map[string]any{"items": []map[string]any{{"voucher_id": 1, "quantity": 1}}}},
		{name: "item with zero quantity", body: map[string]any{"items": []map[string]any{{"voucher_id": 1, "title": "x", "quantity": 0}}}},
		{name: "quantity above cap", body: map[string]any{"items": []map[string]any{{"voucher_id": 1, "title": "x", "quantity": 10001}}}},
		{name: "title too long", body: map[string]any{"items": []map[string]any{{"voucher_id": 1, "title": strings.Repeat("a", 101), "quantity": 1}}}},
	}
	for _, tc := range invalid {
		s.Run("error: "+tc.name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/history", tc.body, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
		})
	}
}
